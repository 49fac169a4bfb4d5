package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds the full environment-supplied configuration surface.
type Config struct {
	Port   int    `env:"PORT" envDefault:"8080"`
	AppEnv string `env:"APP_ENV" envDefault:"development"`

	// DatabaseURL wins over the discrete DB_* parameters when set.
	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      int    `env:"DB_PORT" envDefault:"5432"`
	DBName      string `env:"DB_NAME" envDefault:"contacts"`
	DBUser      string `env:"DB_USER" envDefault:"postgres"`
	DBPassword  string `env:"DB_PASSWORD"`

	SMTPHost   string `env:"SMTP_HOST" envDefault:"mail.misionantigua.org"`
	SMTPPort   int    `env:"SMTP_PORT" envDefault:"465"`
	SMTPSecure bool   `env:"SMTP_SECURE" envDefault:"true"`
	SMTPUser   string `env:"SMTP_USER"`
	SMTPPass   string `env:"SMTP_PASS"`

	AdminEmail string `env:"ADMIN_EMAIL" envDefault:"administracion@misionantigua.org"`
	FromName   string `env:"FROM_NAME" envDefault:"Misión Antigua"`
	FromEmail  string `env:"FROM_EMAIL"`

	FrontendURL string `env:"FRONTEND_URL" envDefault:"*"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// DSN returns the Postgres connection string: DATABASE_URL as-is when
// set, otherwise composed from the DB_* parameters.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// FromAddress is the sender address for outbound mail: FROM_EMAIL when
// set, otherwise the SMTP account itself.
func (c *Config) FromAddress() string {
	if c.FromEmail != "" {
		return c.FromEmail
	}
	return c.SMTPUser
}

// Production reports whether error details must be withheld from clients.
func (c *Config) Production() bool {
	return c.AppEnv == "production"
}

// SMTPImplicitTLS reports whether the relay expects implicit SSL/TLS.
// Port 465 always does, regardless of the SMTP_SECURE flag.
func (c *Config) SMTPImplicitTLS() bool {
	return c.SMTPSecure || c.SMTPPort == 465
}
