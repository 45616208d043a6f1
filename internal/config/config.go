package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the environment-driven configuration. Everything has a sensible
// default; the app never requires env setup.
type Config struct {
	// DBPath overrides the default ~/.pawmate.db location.
	DBPath string `env:"PAWMATE_DB"`

	// ReminderTime is the local clock time (HH:MM) for the daily reminder.
	ReminderTime string `env:"PAWMATE_REMINDER_TIME" envDefault:"09:00"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}
