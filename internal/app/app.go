package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/devicedetector/internal/api"
	"github.com/dmitrymomot/devicedetector/pkg/config"
	"github.com/dmitrymomot/devicedetector/pkg/device"
	"github.com/dmitrymomot/devicedetector/pkg/httpserver"
	"github.com/dmitrymomot/devicedetector/pkg/logger"
)

// ServiceName tags every log record.
const ServiceName = "devicedetector"

// ErrServer is returned by Run when the HTTP server fails.
var ErrServer = errors.New("http server failed")

// Config is the service configuration read from the environment.
type Config struct {
	Env          string `env:"APP_ENV" envDefault:"development"`
	LogLevel     string `env:"LOG_LEVEL"`
	KeywordsFile string `env:"DEVICE_KEYWORDS_FILE"`
}

// ResolveKeywords layers keyword sources: built-in defaults, then the YAML
// file (when path is set), then non-empty groups from overrides.
func ResolveKeywords(path string, overrides device.Keywords) (device.Keywords, error) {
	kw := device.DefaultKeywords()
	if path != "" {
		fromFile, err := device.LoadKeywordsFile(path)
		if err != nil {
			return device.Keywords{}, err
		}
		kw = kw.Merge(fromFile)
	}
	return kw.Merge(overrides), nil
}

// KeywordsHook returns a server start hook that logs the size of each
// keyword group in use.
func KeywordsHook(keywords device.Keywords) func(*slog.Logger) {
	return func(l *slog.Logger) {
		l.Info("device classifier ready",
			slog.Int("tv", len(keywords.TV)),
			slog.Int("tablet", len(keywords.Tablet)),
			slog.Int("mobile", len(keywords.Mobile)),
			slog.Int("desktop", len(keywords.Desktop)),
		)
	}
}

// NewLogger builds the service logger for cfg.
func NewLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, ServiceName),
		logger.WithContextExtractors(device.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	return logger.New(opts...)
}

// Run loads configuration, starts the HTTP API and blocks until ctx is
// cancelled or the process is signalled.
func Run(ctx context.Context) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	log := NewLogger(cfg)
	logger.SetAsDefault(log)

	var overrides device.Keywords
	if err := config.Load(&overrides); err != nil {
		return err
	}
	keywords, err := ResolveKeywords(cfg.KeywordsFile, overrides)
	if err != nil {
		return err
	}
	if keywords.IsEmpty() {
		log.Warn("keyword configuration is empty; only ROBOT, android and other will be reported")
	}

	var srvCfg httpserver.Config
	if err := config.Load(&srvCfg); err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(srvCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(KeywordsHook(keywords)),
		httpserver.WithStopHook(func(l *slog.Logger) { l.Info("device classifier stopped") }),
	)
	if err := srv.Run(ctx, api.Router(keywords, log)); err != nil {
		log.Error("http server failed", logger.Error(err))
		return errors.Join(ErrServer, err)
	}
	return nil
}
