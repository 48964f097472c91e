package config

import (
	"errors"
	"io/fs"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read by Load when it exists.
const DefaultEnvFile = ".env"

// Load reads ./.env, when present, and the process environment into a
// validated Config. Process variables win over file values.
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//		return err
//	}
//	log := cfg.NewLogger()
func Load() (Config, error) {
	vars, err := godotenv.Read(DefaultEnvFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Join(ErrReadingEnvFile, err)
		}
		vars = map[string]string{}
	}
	return parse(vars)
}

// LoadFiles is Load with explicit env files in place of ./.env. Every file
// must exist; later files override earlier ones.
func LoadFiles(paths ...string) (Config, error) {
	vars := map[string]string{}
	for _, p := range paths {
		file, err := godotenv.Read(p)
		if err != nil {
			return Config{}, errors.Join(ErrReadingEnvFile, err)
		}
		maps.Copy(vars, file)
	}
	return parse(vars)
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// parse overlays the process environment on the file values without
// touching os.Environ.
func parse(vars map[string]string) (Config, error) {
	maps.Copy(vars, env.ToMap(os.Environ()))

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      Prefix,
		Environment: vars,
	}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
