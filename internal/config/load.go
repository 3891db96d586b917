package config

import (
	"os"

	"github.com/joho/godotenv"
	json "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
)

// LookupEnv - Function type of os.LookupEnv
type LookupEnv func(key string) (value string, ok bool)

// Load - Builds the configuration from defaults, then the config file, then the environment.
//   - fs is the file system to read the .env and config files from
//   - dotEnvPath is a .env file whose variables are used when not set in the real environment, a missing file is ignored
//   - configPath is the JSONC config file, if empty the HASHBENCH_CONFIG variable is used, if that is empty too no file is read
//   - lookupEnv is the real environment, normally os.LookupEnv
func Load(fs afero.Fs, dotEnvPath, configPath string, lookupEnv LookupEnv) (conf Config, err error) {
	conf = Default()

	dotEnv, err := readDotEnv(fs, dotEnvPath)
	if err != nil {
		return
	}

	env := func(key string) (string, bool) {
		if value, ok := lookupEnv(key); ok {
			return value, true
		}
		value, ok := dotEnv[key]
		return value, ok
	}

	if configPath == "" {
		configPath, _ = env(EnvConfig)
	}
	if configPath != "" {
		if err = conf.readFile(fs, configPath); err != nil {
			return
		}
	}

	err = conf.applyEnv(env)

	return
}

// readDotEnv - Reads variables from a .env file
func readDotEnv(fs afero.Fs, path string) (vars map[string]string, err error) {
	if path == "" {
		return
	}

	f, err := fs.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		err = nil
		return
	}
	if err != nil {
		err = errors.Wrap(err, "open .env")
		return
	}
	defer func() { _ = f.Close() }()

	vars, err = godotenv.Parse(f)
	if err != nil {
		err = errors.Wrap(err, "parse .env")
	}

	return
}

// readFile - Overlays the configuration with fields present in a JSONC file
func (C *Config) readFile(fs afero.Fs, path string) error {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}

	if err = json.ConfigCompatibleWithStandardLibrary.Unmarshal(jsonc.ToJSON(content), C); err != nil {
		return errors.Wrap(err, "decode config")
	}

	return nil
}

// applyEnv - Overlays the configuration with fields set in the environment
func (C *Config) applyEnv(env LookupEnv) error {
	for variable, field := range envFields {
		value, ok := env(variable)
		if !ok || value == "" {
			continue
		}
		if err := C.Set(field, value); err != nil {
			return errors.Wrapf(err, "environment variable %s", variable)
		}
	}

	return nil
}
