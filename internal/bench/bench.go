// Package bench runs every hash map operation over generated keys for each configured collision method
// and reports how long each phase took.
package bench

import (
	"io"
	"log"
	"time"

	"github.com/dchest/uniuri"
	"github.com/gostonefire/memhashmap"
	"github.com/gostonefire/memhashmap/internal/config"
	"github.com/gostonefire/memhashmap/key"
	json "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// Key kinds benchmarked for every collision method
const (
	KindString  = "string"
	KindInteger = "integer"
)

// PhaseResult - Outcome of running one operation over all keys
type PhaseResult struct {
	Phase      string        `json:"phase"`
	Operations int           `json:"operations"`
	Duration   time.Duration `json:"durationNs"`
}

// MethodReport - Results for one collision method and key kind. Stat is taken after the update phase,
// when every key is present.
type MethodReport struct {
	CollisionMethod string                 `json:"collisionMethod"`
	KeyKind         string                 `json:"keyKind"`
	Phases          []PhaseResult          `json:"phases"`
	Stat            memhashmap.HashMapStat `json:"stat"`
}

// Report - Results of a complete benchmark run
type Report struct {
	Config  config.Config  `json:"config"`
	Results []MethodReport `json:"results"`
}

// Run - Runs the benchmark for every collision method in conf, first with string keys then with integer keys.
// Every phase verifies the hash map contents and a mismatch aborts the run with an error.
func Run(conf config.Config, logger *log.Logger) (report Report, err error) {
	report.Config = conf

	stringKeys, err := StringKeys(conf.Keys, conf.KeyLength)
	if err != nil {
		return
	}
	intKeys := make([]key.Integer[int], conf.Keys)
	for i := range intKeys {
		intKeys[i] = key.Int(i)
	}

	hmConf := memhashmap.Conf{InitialCapacity: conf.InitialCapacity, LoadFactor: conf.LoadFactor}

	for _, method := range conf.Methods {
		hmConf.CollisionMethod = method

		var result MethodReport
		logger.Printf("running %s with %d %s keys", method, len(stringKeys), KindString)
		result, err = runMethod[key.String](hmConf, KindString, stringKeys)
		if err != nil {
			return
		}
		report.Results = append(report.Results, result)

		logger.Printf("running %s with %d %s keys", method, len(intKeys), KindInteger)
		result, err = runMethod[key.Integer[int]](hmConf, KindInteger, intKeys)
		if err != nil {
			return
		}
		report.Results = append(report.Results, result)
	}

	return
}

// StringKeys - Returns n distinct random keys of the given length, or an error if fewer than n such keys exist
func StringKeys(n, length int) (keys []key.String, err error) {
	if length <= 0 || n > config.MaxKeys(length) {
		err = errors.Errorf("cannot generate %d distinct keys of length %d", n, length)
		return
	}

	keys = make([]key.String, 0, n)
	seen := make(map[string]struct{}, n)
	for len(keys) < n {
		k := uniuri.NewLen(length)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, key.String(k))
	}

	return
}

// WriteJSON - Writes the report as indented JSON
func WriteJSON(w io.Writer, report Report) error {
	enc := json.ConfigDefault.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(report), "encode report")
}

func runMethod[K key.Key](conf memhashmap.Conf, kind string, keys []K) (result MethodReport, err error) {
	hm, info, err := memhashmap.NewHashMap[K, int](conf)
	if err != nil {
		err = errors.Wrapf(err, "create %s hash map", conf.CollisionMethod)
		return
	}

	result = MethodReport{CollisionMethod: info.CollisionMethod, KeyKind: kind}
	n := len(keys)

	phases := []struct {
		name       string
		operations int
		run        func() error
	}{
		{name: "set", operations: n, run: func() error {
			for i, k := range keys {
				hm.Set(k, i)
			}
			return expectSize(hm, int64(n))
		}},
		{name: "get", operations: n, run: func() error {
			for i, k := range keys {
				if v, found := hm.Get(k); !found || v != i {
					return errors.Errorf("get %s: got %d, %t want %d", k, v, found, i)
				}
			}
			return nil
		}},
		{name: "update", operations: n, run: func() error {
			for i, k := range keys {
				hm.Set(k, -i)
			}
			result.Stat = hm.Stat(false)
			return expectSize(hm, int64(n))
		}},
		{name: "delete", operations: (n + 1) / 2, run: func() error {
			for i := 0; i < n; i += 2 {
				if !hm.Delete(keys[i]) {
					return errors.Errorf("delete %s: not found", keys[i])
				}
			}
			return expectSize(hm, int64(n/2))
		}},
		{name: "has", operations: n, run: func() error {
			for i, k := range keys {
				if hm.Has(k) != (i%2 == 1) {
					return errors.Errorf("has %s: wrong presence after delete", k)
				}
			}
			return nil
		}},
		{name: "clear", operations: 1, run: func() error {
			hm.Clear()
			return expectSize(hm, 0)
		}},
	}

	for _, phase := range phases {
		start := time.Now()
		if err = phase.run(); err != nil {
			err = errors.Wrapf(err, "%s %s keys, phase %s", conf.CollisionMethod, kind, phase.name)
			return
		}
		result.Phases = append(result.Phases, PhaseResult{Phase: phase.name, Operations: phase.operations, Duration: time.Since(start)})
	}

	return
}

func expectSize[K key.Key](hm *memhashmap.HashMap[K, int], want int64) error {
	if got := hm.Size(); got != want {
		return errors.Errorf("size is %d, want %d", got, want)
	}
	return nil
}
