package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/gommon/log"
)

const PREFIX = "ATC"

var (
	ErrInvalidWindowSize  = errors.New("window_width and window_height must be positive")
	ErrInvalidFlights     = errors.New("flights must be positive")
	ErrInvalidMaxMessages = errors.New("max_messages must be positive")
	ErrInvalidLogLevel    = errors.New("log_level must be DEBUG, INFO, WARN, ERROR or OFF")
)

type Config struct {
	WindowWidth  int    `envconfig:"WINDOW_WIDTH" default:"1024"`
	WindowHeight int    `envconfig:"WINDOW_HEIGHT" default:"768"`
	Flights      int    `envconfig:"FLIGHTS" default:"30"`
	Seed         int64  `envconfig:"SEED" default:"0"` // 0 seeds from the clock
	LogLevel     string `envconfig:"LOG_LEVEL" default:"INFO"`
	MaxMessages  int    `envconfig:"MAX_MESSAGES" default:"50"`
}

// Load reads an optional env file, then ATC_* variables.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(PREFIX, &cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Validate(cfg *Config) error {
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return ErrInvalidWindowSize
	}
	if cfg.Flights <= 0 {
		return ErrInvalidFlights
	}
	if cfg.MaxMessages <= 0 {
		return ErrInvalidMaxMessages
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	return nil
}

func ParseLevel(level string) (log.Lvl, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return log.DEBUG, nil
	case "INFO":
		return log.INFO, nil
	case "WARN", "WARNING":
		return log.WARN, nil
	case "ERROR":
		return log.ERROR, nil
	case "OFF":
		return log.OFF, nil
	default:
		return log.INFO, fmt.Errorf("%w: %s", ErrInvalidLogLevel, level)
	}
}

// NewLogger builds a prefixed logger at the configured level.
func (c *Config) NewLogger(prefix string) *log.Logger {
	l := log.New(prefix)
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		lvl = log.INFO
	}
	l.SetLevel(lvl)
	return l
}
