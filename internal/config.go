package internal

import (
	"fmt"
	"time"

	"chat-screener/ratelimit"
	"chat-screener/repositories"

	"github.com/Netflix/go-env"
)

// Config is read from the environment, after an optional .env file.
type Config struct {
	Host                string        `env:"HOST,default=0.0.0.0"`
	Port                int           `env:"PORT,default=8000"`
	MetricsPort         int           `env:"METRICS_PORT,default=9100"`
	LogLevel            string        `env:"LOG_LEVEL,default=INFO"`
	APIKey              string        `env:"API_KEY,default=api-key-default-123"`
	APIVersion          string        `env:"API_VERSION,default=1.0.0"`
	Timezone            string        `env:"API_TIMEZONE,default=UTC"`
	CorpusFilePath      string        `env:"CORPUS_FILE_PATH,default=data/corpus_filter.json"`
	SimilarityThreshold int           `env:"SIMILARITY_THRESHOLD,default=80"`
	StorageDriver       string        `env:"STORAGE_DRIVER,default=sqlite"`
	DatabaseURL         string        `env:"DATABASE_URL,default=data/messages.db"`
	BadgerFilepath      string        `env:"BADGER_FILEPATH,default=data/badger"`
	RedisAddr           string        `env:"REDIS_ADDR"`
	SubmitRateLimit     string        `env:"SUBMIT_RATE_LIMIT,default=100/1h"`
	RetrieveRateLimit   string        `env:"RETRIEVE_RATE_LIMIT,default=500/1h"`
	HealthRateLimit     string        `env:"HEALTH_RATE_LIMIT,default=60/1m"`
	RequestTimeout      time.Duration `env:"REQUEST_TIMEOUT,default=10s"`
}

// RateRules holds the parsed per-route limits.
type RateRules struct {
	Submit   ratelimit.Rule
	Retrieve ratelimit.Rule
	Health   ratelimit.Rule
}

func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if config.SimilarityThreshold < 1 || config.SimilarityThreshold > 100 {
		return Config{}, fmt.Errorf("SIMILARITY_THRESHOLD must be within 1..100, got %d", config.SimilarityThreshold)
	}
	if config.RequestTimeout <= 0 {
		return Config{}, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", config.RequestTimeout)
	}
	return config, nil
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c Config) MetricsAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.MetricsPort)
}

func (c Config) Storage() repositories.Config {
	return repositories.Config{
		Driver:         c.StorageDriver,
		DatabaseURL:    c.DatabaseURL,
		BadgerFilepath: c.BadgerFilepath,
	}
}

func (c Config) RateRules() (RateRules, error) {
	submit, err := ratelimit.ParseRule("submit", c.SubmitRateLimit)
	if err != nil {
		return RateRules{}, fmt.Errorf("SUBMIT_RATE_LIMIT: %w", err)
	}
	retrieve, err := ratelimit.ParseRule("retrieve", c.RetrieveRateLimit)
	if err != nil {
		return RateRules{}, fmt.Errorf("RETRIEVE_RATE_LIMIT: %w", err)
	}
	health, err := ratelimit.ParseRule("health", c.HealthRateLimit)
	if err != nil {
		return RateRules{}, fmt.Errorf("HEALTH_RATE_LIMIT: %w", err)
	}
	return RateRules{Submit: submit, Retrieve: retrieve, Health: health}, nil
}
