package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
)

var errInvalidConfig = errors.New("invalid config")

// Config is read from the environment, after .env has been loaded.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	TemplateGlob string `env:"PORTFOLIO_TEMPLATES" envDefault:"templates/*"`
	// ContentPath overrides the embedded portfolio content when set.
	ContentPath string `env:"PORTFOLIO_CONTENT"`

	SkillSettleTimeout time.Duration `env:"SKILL_SETTLE_TIMEOUT" envDefault:"2s"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return Config{}, fmt.Errorf("%w: GIN_MODE %q", errInvalidConfig, cfg.GinMode)
	}
	return cfg, nil
}
