// Command hashbench runs every hash map operation over generated keys, once per collision method,
// and prints the timings as JSON.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gostonefire/memhashmap/internal/bench"
	"github.com/gostonefire/memhashmap/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

func main() {
	log.SetPrefix("hashbench: ")

	configPath := flag.String("config", "", "JSONC config file, overrides "+config.EnvConfig)
	envPath := flag.String("env", ".env", ".env file read for variables not set in the environment")
	flag.String(config.FieldKeys, "", "number of keys per key kind")
	flag.String(config.FieldKeyLength, "", "length of generated string keys")
	flag.String(config.FieldInitialCapacity, "", "initial capacity of every hash map")
	flag.String(config.FieldLoadFactor, "", "load factor of every hash map")
	flag.String(config.FieldMethods, "", "comma separated collision methods, chaining and/or linear")
	flag.Parse()

	conf, err := config.Load(afero.NewOsFs(), *envPath, *configPath, os.LookupEnv)
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	flag.Visit(func(f *flag.Flag) {
		if err != nil || f.Name == "config" || f.Name == "env" {
			return
		}
		err = errors.Wrap(conf.Set(f.Name, f.Value.String()), "flag")
	})
	if err != nil {
		log.Fatalf("apply flags: %v", err)
	}

	if err = conf.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	report, err := bench.Run(conf, log.Default())
	if err != nil {
		log.Fatalf("benchmark failed: %v", err)
	}

	if err = bench.WriteJSON(os.Stdout, report); err != nil {
		log.Fatalf("write report: %v", err)
	}
}
