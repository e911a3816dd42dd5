package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
)

// Config is the process configuration, read from the environment (and .env
// when present).
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	AppEnv          string        `env:"APP_ENV" envDefault:"development"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	PublicAppURL    string        `env:"PUBLIC_APP_URL" envDefault:"http://localhost:3000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Storage StorageConfig
	AWS     AWSConfig
	NATS    NATSConfig
}

type StorageConfig struct {
	Driver          string `env:"STORAGE_DRIVER" envDefault:"dynamodb"`
	DatabaseURL     string `env:"DATABASE_URL"`
	FirmOffersTable string `env:"FIRM_OFFERS_TABLE" envDefault:"firm_offers"`
	DealsTable      string `env:"DEALS_TABLE" envDefault:"deals"`
	ProposalsTable  string `env:"PROPOSALS_TABLE" envDefault:"proposals"`
}

// AWSConfig is local-friendly: DynamoDB Local ignores the static credentials
// but the SDK still requires them.
type AWSConfig struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
}

// NATSConfig is optional. With an empty URL notification intents are only logged.
type NATSConfig struct {
	URL           string `env:"NATS_URL"`
	SubjectPrefix string `env:"NOTIFICATIONS_SUBJECT_PREFIX" envDefault:"notifications.firm_offer"`
}

func Load() (Config, error) {
	return parse(env.Options{})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDynamoDB:
	case StoragePostgres:
		if strings.TrimSpace(c.Storage.DatabaseURL) == "" {
			return fmt.Errorf("DATABASE_URL is required when STORAGE_DRIVER=%s", StoragePostgres)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if strings.TrimSpace(c.PublicAppURL) == "" {
		return fmt.Errorf("PUBLIC_APP_URL must not be empty")
	}
	return nil
}

func (c Config) Development() bool {
	return c.AppEnv == "" || c.AppEnv == "development" || c.AppEnv == "local"
}
