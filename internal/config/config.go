package config

import (
	"github.com/caarlos0/env/v11"
)

// Config holds all environment-driven settings. Defaults target the local
// development database.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"3001"`

	PostgresAddress  string `env:"POSTGRES_ADDRESS" envDefault:"localhost"`
	PostgresPort     string `env:"POSTGRES_PORT" envDefault:"5433"`
	PostgresDB       string `env:"POSTGRES_DB" envDefault:"postgres"`
	PostgresUsername string `env:"POSTGRES_USERNAME" envDefault:"postgres"`
	PostgresPassword string `env:"POSTGRES_PASSWORD" envDefault:"testpassword"`

	OperatorWorkers int `env:"OPERATOR_WORKERS" envDefault:"4"`

	// SeedDemoData inserts the two demo accounts at startup when absent.
	SeedDemoData bool `env:"SEED_DEMO_DATA" envDefault:"true"`
}

func ProcessEnvironmentVariables() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// PostgresDSN builds the connection string used by the server, the migration
// runner, and the integration tests.
func (c *Config) PostgresDSN() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
