package config

import (
	"github.com/caarlos0/env/v11"
)

// LogConfig is read before the logger exists, so parse errors are returned
// instead of logged.
type LogConfig struct {
	File       string `env:"FOOTIX_LOG_FILE"`
	MaxSizeMB  int    `env:"FOOTIX_LOG_MAX_SIZE_MB" envDefault:"50"`
	MaxBackups int    `env:"FOOTIX_LOG_MAX_BACKUPS" envDefault:"3"`
	MaxAgeDays int    `env:"FOOTIX_LOG_MAX_AGE_DAYS" envDefault:"28"`
}

func LoadLogConfig() (*LogConfig, error) {
	c := &LogConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	return c, nil
}
