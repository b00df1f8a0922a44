package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"

	"pagseguro_gateway/internal/domain/entities"
	"pagseguro_gateway/internal/infrastructure/database"
	"pagseguro_gateway/internal/infrastructure/pagseguro"
)

// Config is the process configuration, read from the environment once at startup.
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"local"`
	HTTPPort int    `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	PagSeguro PagSeguro

	// NATSURL enables event publishing when set.
	NATSURL        string `env:"NATS_URL"`
	CheckoutsTable string `env:"CHECKOUTS_TABLE" envDefault:"checkouts"`

	AWS AWS
}

type PagSeguro struct {
	Token     string `env:"PAGSEGURO_TOKEN"`
	PublicKey string `env:"PAGSEGURO_PUBLIC_KEY"`
	Email     string `env:"PAGSEGURO_EMAIL"`
	Sandbox   bool   `env:"PAGSEGURO_SANDBOX" envDefault:"true"`
	// ReferencePrefix accepts a template ("ORD-%s") or a bare prefix ("ORD-").
	ReferencePrefix string        `env:"PAGSEGURO_REFERENCE_PREFIX" envDefault:"%s"`
	UseShipping     bool          `env:"PAGSEGURO_USE_SHIPPING" envDefault:"true"`
	Currency        string        `env:"PAGSEGURO_CURRENCY" envDefault:"BRL"`
	StrictTaxID     bool          `env:"PAGSEGURO_STRICT_TAX_ID" envDefault:"false"`
	AbandonURLKey   string        `env:"PAGSEGURO_ABANDON_URL_KEY"`
	Timeout         time.Duration `env:"PAGSEGURO_TIMEOUT" envDefault:"30s"`
}

type AWS struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// PagSeguroConfig overlays the environment on the default endpoint set.
func (c Config) PagSeguroConfig() pagseguro.Config {
	cfg := pagseguro.NewConfig(c.PagSeguro.Sandbox)
	cfg.Currency = strings.ToUpper(c.PagSeguro.Currency)
	cfg.UseShipping = c.PagSeguro.UseShipping
	cfg.StrictTaxID = c.PagSeguro.StrictTaxID
	cfg.AbandonURLKey = c.PagSeguro.AbandonURLKey
	cfg.Timeout = c.PagSeguro.Timeout

	prefix := entities.ReferenceTemplate(c.PagSeguro.ReferencePrefix)
	if prefix != "" && !strings.Contains(string(prefix), "%s") {
		prefix = entities.NewReferenceTemplate(string(prefix))
	}
	cfg.ReferencePrefix = prefix
	return cfg
}

func (c Config) DynamoDB() database.Options {
	return database.Options{
		Region:          c.AWS.Region,
		AccessKeyID:     c.AWS.AccessKeyID,
		SecretAccessKey: c.AWS.SecretAccessKey,
		Endpoint:        c.AWS.DynamoDBEndpoint,
	}
}
