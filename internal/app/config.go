package app

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/odyssey-erp/floorconsole/internal/apiclient"
)

// Config holds runtime configuration for the console server and floorctl.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development" validate:"required"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080" validate:"required"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty" validate:"oneof=pretty json"`

	// APIURL overrides the backend base URL floorctl talks to.
	APIURL       string `envconfig:"API_URL"`
	PublicOrigin string `envconfig:"PUBLIC_ORIGIN" default:"http://127.0.0.1:8080" validate:"omitempty,url"`

	UpstreamURL     string        `envconfig:"UPSTREAM_URL" default:"http://103.164.99.2:1101" validate:"required,url"`
	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"30s"`

	StaticDir          string `envconfig:"STATIC_DIR"`
	RateLimitPerMinute int    `envconfig:"RATE_LIMIT_PER_MINUTE" default:"120" validate:"min=1"`

	RedisAddr        string        `envconfig:"REDIS_ADDR"`
	RedisPassword    string        `envconfig:"REDIS_PASSWORD"`
	RedisDB          int           `envconfig:"REDIS_DB" default:"0" validate:"min=0"`
	SessionNamespace string        `envconfig:"SESSION_NAMESPACE" default:"default"`
	SessionTTL       time.Duration `envconfig:"SESSION_TTL" default:"720h"`
}

// DefaultEnvFile is the file floorctl env writes and LoadConfig reads.
const DefaultEnvFile = ".env"

// EnvFile returns the env file path, honouring ENV_FILE.
func EnvFile() string {
	if path := os.Getenv("ENV_FILE"); path != "" {
		return path
	}
	return DefaultEnvFile
}

// LoadConfig reads the env file, if any, then environment variables.
// Variables already set in the process win over the file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(EnvFile()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.checkProductionOrigin(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ErrInsecureOrigin is returned when production runs with a plain-HTTP
// PUBLIC_ORIGIN. Production turns on the HTTPS redirect, so every request to
// an http origin would bounce.
var ErrInsecureOrigin = errors.New("invalid config: PUBLIC_ORIGIN must use https when APP_ENV=production")

func (c *Config) checkProductionOrigin() error {
	if !c.IsProduction() || c.PublicOrigin == "" {
		return nil
	}
	u, err := url.Parse(c.PublicOrigin)
	if err != nil {
		return fmt.Errorf("invalid config: PUBLIC_ORIGIN: %w", err)
	}
	if u.Scheme != "https" {
		return fmt.Errorf("%w (got %s)", ErrInsecureOrigin, c.PublicOrigin)
	}
	return nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// APIBaseURL resolves the backend base URL for API clients.
func (c *Config) APIBaseURL() string {
	return apiclient.ResolveBaseURL(c.APIURL, c.AppEnv, c.PublicOrigin)
}
