package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joeshaw/envdecode"
	"github.com/sirupsen/logrus"
)

var ErrUnknownLogFormat = errors.New("unknown log format")

// Config holds everything that can be set from the environment
type Config struct {
	Addr           string   `env:"HANABI_ADDR,default=:8000,strict"`
	LogLevel       string   `env:"HANABI_LOG_LEVEL,default=info,strict"`
	LogFormat      string   `env:"HANABI_LOG_FORMAT,default=text,strict"`
	AllowedOrigins []string `env:"HANABI_ALLOWED_ORIGINS,default=*,strict"`
	MaxSessions    int      `env:"HANABI_MAX_SESSIONS,default=64,strict"`
}

// Load reads the configuration from the environment
func Load() (Config, error) {
	var cfg Config
	err := envdecode.Decode(&cfg)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("HANABI_LOG_LEVEL: %w", err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("HANABI_LOG_FORMAT: %w: %q", ErrUnknownLogFormat, c.LogFormat)
	}
	return nil
}

// Logger builds a logger writing to stderr
func (c Config) Logger() *logrus.Logger {
	return c.LoggerTo(os.Stderr)
}

// LoggerTo builds a logger writing to w. An unparseable level falls back to info.
func (c Config) LoggerTo(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if strings.ToLower(c.LogFormat) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return logger
}
