// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct parsing and
// github.com/joho/godotenv for .env files. Each configuration type is parsed
// once and cached for the lifetime of the process.
//
// # Usage
//
//	type ServiceConfig struct {
//	    Env          string `env:"APP_ENV" envDefault:"development"`
//	    KeywordsFile string `env:"DEVICE_KEYWORDS_FILE"`
//	}
//
//	func main() {
//	    config.MustLoadEnv("./config/.env")
//
//	    var cfg ServiceConfig
//	    config.MustLoad(&cfg)
//	}
//
// Keyword overrides for the classifier come for free because
// device.Keywords carries env tags:
//
//	var kw device.Keywords
//	_ = config.Load(&kw) // reads DEVICE_TV_KEYWORDS, DEVICE_TABLET_KEYWORDS, ...
//
// # Error Handling
//
// Load returns ErrParsingConfig joined with the underlying parser error,
// LoadEnv returns ErrLoadingEnvFile, and a nil target yields ErrNilPointer.
//
// # Testing Helpers
//
// ResetCache clears all cached values; Reload re-parses a single type after
// the environment changed.
package config
