package config

import (
	"log"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const DefaultAbstractAPIURL = "https://emailvalidation.abstractapi.com/v1/"

type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// Origins allowed through the CORS gate outside development mode
	AppURL         string   `env:"APP_URL"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	// Deliverability check (Abstract email validation API)
	AbstractAPIKey string `env:"ABSTRACT_API_KEY"`
	AbstractAPIURL string `env:"ABSTRACT_API_URL" envDefault:"https://emailvalidation.abstractapi.com/v1/"`
	// SMTP relay. The service mailbox is both the envelope sender and the recipient.
	SMTPHost               string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort               string `env:"SMTP_PORT" envDefault:"465"`
	EmailUser              string `env:"EMAIL_USER"`
	EmailAppPassword       string `env:"EMAIL_APP_PASSWORD"`
	SMTPInsecureSkipVerify bool   `env:"SMTP_INSECURE_SKIP_VERIFY" envDefault:"true"`
}

func LoadConfig() (*Config, error) {
	// .env is optional; deployments inject the environment directly
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Sanitize: origins are compared byte for byte, a trailing slash never matches
	cfg.AppURL = strings.TrimRight(strings.TrimSpace(cfg.AppURL), "/")

	if cfg.EmailUser == "" || cfg.EmailAppPassword == "" {
		log.Println("WARNING: EMAIL_USER or EMAIL_APP_PASSWORD is missing. Contact form sends will fail.")
	}
	if cfg.AbstractAPIKey == "" {
		log.Println("WARNING: ABSTRACT_API_KEY is missing. Sender addresses will fail verification.")
	}

	return cfg, nil
}

// IsDevelopment reports whether the CORS gate should permit every origin
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// CORSOrigins returns the allow-list used by the CORS gate. Empty entries are
// dropped so an unset APP_URL never admits requests without an Origin header.
func (c *Config) CORSOrigins() []string {
	origins := make([]string, 0, len(c.AllowedOrigins)+1)
	for _, o := range append([]string{c.AppURL}, c.AllowedOrigins...) {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// SMTPAddr is the host:port of the relay
func (c *Config) SMTPAddr() string {
	return c.SMTPHost + ":" + c.SMTPPort
}
