package config

import (
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/schemakit/pkg/logger"
	"github.com/dmitrymomot/schemakit/pkg/schema"
	"github.com/dmitrymomot/schemakit/pkg/validator"
)

// Prefix is prepended to every variable name Config reads.
const Prefix = "SCHEMAKIT_"

// Config holds the process settings shared by the CLI and the HTTP server.
type Config struct {
	Env       string `env:"ENV" envDefault:"development"`
	Service   string `env:"SERVICE" envDefault:"schemakit"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT"` // empty picks the environment default

	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MaxBodyBytes    int64         `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	// SchemaDir, when set, is scanned for schema documents on startup.
	SchemaDir string `env:"SCHEMA_DIR"`

	AbortEarly   bool `env:"ABORT_EARLY"`
	AllowUnknown bool `env:"ALLOW_UNKNOWN" envDefault:"true"`
	StripUnknown bool `env:"STRIP_UNKNOWN"`
	Concurrency  int  `env:"CONCURRENCY" envDefault:"1"`
}

// Validate checks value ranges that the env parser cannot express.
func (c Config) Validate() error {
	rules := []validator.Rule{
		validator.OneOf("env", c.Env, []any{
			logger.EnvDevelopment, logger.EnvStaging, logger.EnvProduction, "prod", "stage",
		}),
		validator.Min("concurrency", c.Concurrency, 1),
		validator.Min("max_body_bytes", c.MaxBodyBytes, 1),
		validator.Min("shutdown_timeout", c.ShutdownTimeout, time.Millisecond),
	}
	if c.HTTPAddr == "" {
		rules = append(rules, failed(validator.RequiredError("http_addr")))
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		rules = append(rules, failed(validator.CustomError("log_level", validator.KindEnum, err.Error(), c.LogLevel)))
	}
	if c.LogFormat != "" {
		if _, err := logger.ParseFormat(c.LogFormat); err != nil {
			rules = append(rules, failed(validator.CustomError("log_format", validator.KindEnum, err.Error(), c.LogFormat)))
		}
	}

	if err := validator.Apply(rules...); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

func failed(err validator.ValidationError) validator.Rule {
	return validator.Rule{Check: func() bool { return false }, Error: err}
}

// SchemaOptions translates the validation settings into engine options.
func (c Config) SchemaOptions(log *slog.Logger) []schema.Option {
	opts := []schema.Option{
		schema.WithAllowUnknown(c.AllowUnknown),
		schema.WithConcurrency(c.Concurrency),
		schema.WithLogger(log),
	}
	if c.AbortEarly {
		opts = append(opts, schema.WithAbortEarly())
	}
	if c.StripUnknown {
		opts = append(opts, schema.WithStripUnknown())
	}
	return opts
}

// NewLogger builds the process logger. Invalid level and format names fall
// back to the environment defaults; Validate reports them.
func (c Config) NewLogger(opts ...logger.Option) *slog.Logger {
	base := []logger.Option{logger.WithEnvironment(c.Env, c.Service)}
	if lvl, err := logger.ParseLevel(c.LogLevel); err == nil {
		base = append(base, logger.WithLevel(lvl))
	}
	if f, err := logger.ParseFormat(c.LogFormat); err == nil && c.LogFormat != "" {
		base = append(base, logger.WithFormat(f))
	}
	return logger.New(append(base, opts...)...)
}
