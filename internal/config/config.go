// Package config builds the hashbench configuration from defaults, an optional JSONC config file,
// the environment (optionally extended by a .env file) and command line flags.
package config

import (
	"math"
	"strconv"
	"strings"

	"github.com/dchest/uniuri"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/internal/storage"
	"github.com/pkg/errors"
)

// Field names, shared by environment variables and command line flags
const (
	FieldKeys            = "keys"
	FieldKeyLength       = "key-length"
	FieldInitialCapacity = "initial-capacity"
	FieldLoadFactor      = "load-factor"
	FieldMethods         = "methods"
)

// EnvConfig - Environment variable naming the JSONC config file
const EnvConfig = "HASHBENCH_CONFIG"

// envFields - Environment variables and the field each one sets
var envFields = map[string]string{
	"HASHBENCH_KEYS":             FieldKeys,
	"HASHBENCH_KEY_LENGTH":       FieldKeyLength,
	"HASHBENCH_INITIAL_CAPACITY": FieldInitialCapacity,
	"HASHBENCH_LOAD_FACTOR":      FieldLoadFactor,
	"HASHBENCH_METHODS":          FieldMethods,
}

// Config - Benchmark configuration
//   - Keys is the number of string keys, and also of integer keys, to run through each hash map
//   - KeyLength is the length of generated string keys
//   - InitialCapacity and LoadFactor are passed on to every hash map created
//   - Methods lists the collision methods to benchmark
type Config struct {
	Keys            int      `json:"keys"`
	KeyLength       int      `json:"keyLength"`
	InitialCapacity int64    `json:"initialCapacity"`
	LoadFactor      float64  `json:"loadFactor"`
	Methods         []string `json:"methods"`
}

// Default - Returns the configuration used when nothing else is given
func Default() Config {
	return Config{
		Keys:            10000,
		KeyLength:       16,
		InitialCapacity: storage.DefaultInitialCapacity,
		LoadFactor:      storage.DefaultLoadFactor,
		Methods:         []string{crt.SeparateChainingName, crt.LinearProbingName},
	}
}

// Set - Sets one field from its text form
//   - name is one of the Field constants
//   - value is the text to parse, methods are comma separated
func (C *Config) Set(name, value string) (err error) {
	value = strings.TrimSpace(value)

	switch name {
	case FieldKeys:
		C.Keys, err = strconv.Atoi(value)
	case FieldKeyLength:
		C.KeyLength, err = strconv.Atoi(value)
	case FieldInitialCapacity:
		C.InitialCapacity, err = strconv.ParseInt(value, 10, 64)
	case FieldLoadFactor:
		C.LoadFactor, err = strconv.ParseFloat(value, 64)
	case FieldMethods:
		C.Methods = nil
		for _, m := range strings.Split(value, ",") {
			if m = strings.TrimSpace(m); m != "" {
				C.Methods = append(C.Methods, m)
			}
		}
	default:
		err = errors.Errorf("unknown field %q", name)
	}

	return errors.Wrapf(err, "set %s", name)
}

// Validate - Checks that the configuration can be run
func (C *Config) Validate() (err error) {
	if C.Keys <= 0 {
		return errors.Errorf("keys must be a positive value, got %d", C.Keys)
	}
	if C.KeyLength <= 0 {
		return errors.Errorf("key length must be a positive value, got %d", C.KeyLength)
	}
	if available := MaxKeys(C.KeyLength); C.Keys > available {
		return errors.Errorf("only %d distinct keys of length %d exist, got %d keys", available, C.KeyLength, C.Keys)
	}
	if err = storage.ValidateConf(C.InitialCapacity, C.LoadFactor); err != nil {
		return errors.Wrap(err, "hash map configuration")
	}
	if len(C.Methods) == 0 {
		return errors.New("at least one collision method is needed")
	}
	for _, m := range C.Methods {
		if _, err = crt.Parse(m); err != nil {
			return errors.Wrap(err, "collision method")
		}
	}

	return
}

// MaxKeys - Returns the number of distinct string keys of the given length that can be generated,
// capped at math.MaxInt
func MaxKeys(keyLength int) (count int) {
	chars := len(uniuri.StdChars)

	count = 1
	for i := 0; i < keyLength; i++ {
		if count > math.MaxInt/chars {
			return math.MaxInt
		}
		count *= chars
	}

	return
}
