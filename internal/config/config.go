package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/karanvs/studybuddy/internal/db"
)

// Defaults for the reminder window.
const (
	DefaultReminderStartHour = 8
	DefaultReminderEndHour   = 22
)

// Config carries the process-wide settings read from the environment.
type Config struct {
	DBPath            string
	Owner             string
	ReminderStartHour int
	ReminderEndHour   int
}

// Load reads .env if present, then the environment, falling back to defaults.
// A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		DBPath:            os.Getenv("STUDYBUDDY_DB"),
		Owner:             os.Getenv("STUDYBUDDY_USER"),
		ReminderStartHour: envHour("REMINDER_START_HOUR", DefaultReminderStartHour),
		ReminderEndHour:   envHour("REMINDER_END_HOUR", DefaultReminderEndHour),
	}

	if cfg.DBPath == "" {
		if path, err := db.DefaultPath(); err == nil {
			cfg.DBPath = path
		} else {
			cfg.DBPath = "studybuddy.db"
		}
	}
	if cfg.Owner == "" {
		cfg.Owner = os.Getenv("USER")
	}
	if cfg.Owner == "" {
		cfg.Owner = "student"
	}
	return cfg
}

func envHour(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			return h
		}
	}
	return fallback
}
