package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cache            sync.Map // reflect.Type -> any
	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v according to its `env` tags.
// The first successful result for a type is cached and returned on later
// calls, so a config struct is parsed at most once per process.
//
// The default .env file in the working directory is loaded the first time
// Load runs; a missing file is not an error.
//
//	type ServiceConfig struct {
//		Env          string `env:"APP_ENV" envDefault:"development"`
//		KeywordsFile string `env:"DEVICE_KEYWORDS_FILE"`
//	}
//
//	var cfg ServiceConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	if cached, ok := cache.Load(key); ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	actual, _ := cache.LoadOrStore(key, parsed)
	*v = actual.(T)
	return nil
}

// MustLoad is like Load but panics on failure. Use it for configuration the
// process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reload drops the cached value for T and parses the environment again.
func Reload[T any](v *T) error {
	cache.Delete(reflect.TypeFor[T]())
	return Load(v)
}

// LoadEnv loads variables from the given .env files into the process
// environment, falling back to ./.env when no path is given. Files listed
// later take precedence over earlier ones; variables already present in the
// process environment are overridden.
func LoadEnv(paths ...string) error {
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// ResetCache forgets every cached configuration. Intended for tests.
func ResetCache() {
	cache.Clear()
}
