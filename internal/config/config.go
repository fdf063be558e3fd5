package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	API struct {
		URL     string `yaml:"url" env:"TRIVIA_API_URL"`
		Timeout string `yaml:"timeout" env:"TRIVIA_API_TIMEOUT"`
	} `yaml:"api"`
	Quiz struct {
		Amount      int    `yaml:"amount" env:"TRIVIA_AMOUNT"`
		Category    string `yaml:"category" env:"TRIVIA_CATEGORY"`
		Difficulty  string `yaml:"difficulty" env:"TRIVIA_DIFFICULTY"`
		Type        string `yaml:"type" env:"TRIVIA_TYPE"`
		MaxAttempts int    `yaml:"max_attempts" env:"TRIVIA_MAX_ATTEMPTS"`
	} `yaml:"quiz"`
	Cache struct {
		TTL string `yaml:"ttl" env:"TRIVIA_CACHE_TTL"`
	} `yaml:"cache"`
	Redis struct {
		Addr     string `yaml:"addr" env:"TRIVIA_REDIS_ADDR"`
		Password string `yaml:"password" env:"TRIVIA_REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"TRIVIA_REDIS_DB"`
	} `yaml:"redis"`
	Server struct {
		Port string `yaml:"port" env:"PORT"`
	} `yaml:"server"`
	Log struct {
		Env   string `yaml:"env" env:"TRIVIA_LOG_ENV"`
		Level string `yaml:"level" env:"TRIVIA_LOG_LEVEL"`
	} `yaml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	cfg.API.URL = "https://opentdb.com/api.php"
	cfg.API.Timeout = "10s"
	cfg.Quiz.Amount = 5
	cfg.Quiz.MaxAttempts = 5
	cfg.Server.Port = "8080"
	cfg.Log.Env = "development"
	cfg.Log.Level = "warn"
	return cfg
}

// Load reads YAML config from path on top of Default, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
