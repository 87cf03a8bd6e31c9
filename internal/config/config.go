package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Barrister"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host         string `envconfig:"DB_HOST" default:"localhost"`
		Port         int    `envconfig:"DB_PORT" default:"5432"`
		User         string `envconfig:"DB_USER" default:"postgres"`
		Password     string `envconfig:"DB_PASSWORD" default:""`
		Name         string `envconfig:"DB_NAME" default:"barrister"`
		MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
		MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		Secret string `envconfig:"AUTH_SECRET"`
	}

	Provider struct {
		BaseURL string        `envconfig:"PAYMENT_PROVIDER_URL"`
		Token   string        `envconfig:"PAYMENT_PROVIDER_TOKEN"`
		Timeout time.Duration `envconfig:"PAYMENT_PROVIDER_TIMEOUT" default:"30s"`
	}

	Billing struct {
		// DueDays is the default number of days a client has to pay a
		// sent invoice before it counts as overdue.
		DueDays int `envconfig:"INVOICE_DUE_DAYS" default:"30"`
		// PaymentGrace is how long a failed payment may sit before the
		// sweep job cancels it.
		PaymentGrace time.Duration `envconfig:"PAYMENT_GRACE_WINDOW" default:"24h"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
