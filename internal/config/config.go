package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	HTTP     HTTP
	Postgres Postgres
	Redis    Redis
	Marvel   Marvel
	Auth     Auth
	Spin     Spin
	Notifier Notifier
	Ops      Ops
}

type App struct {
	Name           string `env:"APP_NAME" envDefault:"heronexus"`
	Version        string `env:"APP_VERSION" envDefault:"dev"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"LOG_FORMAT" envDefault:"pretty"`
	LogFieldMaxLen int    `env:"LOG_FIELD_MAX_LEN" envDefault:"4096"`
}

type Auth struct {
	JWTSecret string `env:"AUTH_JWT_SECRET,notEmpty" json:"-"`
}

type Ops struct {
	MetricsListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
	ProbeListenAddress   string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	AsynqConcurrency     int    `env:"ASYNQ_CONCURRENCY" envDefault:"10"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	return Parse()
}

// Parse reads the process environment without touching .env files.
func Parse() (Config, error) {
	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.validate(); err != nil {
		return Config{}, fmt.Errorf("config.validate: %w", err)
	}

	return config, nil
}

func (c Config) validate() error {
	if len(c.Marvel.PublicKeys) != len(c.Marvel.PrivateKeys) {
		return errors.New("MARVEL_PUBLIC_KEYS and MARVEL_PRIVATE_KEYS must have the same length")
	}

	if c.Spin.MaxAttempts < 1 {
		return errors.New("SPIN_MAX_ATTEMPTS must be positive")
	}

	if c.Spin.RareChance < 0 || c.Spin.RareChance > 1 {
		return errors.New("SPIN_RARE_CHANCE must be within [0,1]")
	}

	return nil
}
