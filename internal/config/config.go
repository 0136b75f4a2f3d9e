// Package config loads game configuration from the environment.
//
// A `.env` file in the working directory is loaded first when present;
// variables already set in the environment win over the file.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full runtime configuration.
type Config struct {
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"warn"`
	WordsFile    string        `env:"HANGMAN_WORDS_FILE"`
	DailySalt    string        `env:"HANGMAN_DAILY_SALT"`
	LoadingDelay time.Duration `env:"HANGMAN_LOADING_DELAY" envDefault:"0s"`
	OutboxDB     string        `env:"HANGMAN_OUTBOX_DB"`
	SMTP         SMTP          `envPrefix:"SMTP_"`
}

// SMTP holds mail server settings for win notifications.
type SMTP struct {
	Host     string        `env:"HOST"`
	Port     int           `env:"PORT" envDefault:"465"`
	Username string        `env:"USERNAME"`
	Password string        `env:"PASSWORD"`
	From     string        `env:"FROM"`
	To       string        `env:"TO"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Enabled reports whether enough is configured to send mail.
func (s SMTP) Enabled() bool {
	return s.Host != "" && s.From != "" && s.To != ""
}

// Load reads the given dotenv files (".env" when none are given) and parses
// the environment into a Config. Missing dotenv files are ignored.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
