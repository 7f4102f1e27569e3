package client

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces the environment variables this client recognizes:
// FINTRACK_API_URL and FINTRACK_PRODUCTION.
const envPrefix = "fintrack"

const (
	productionBaseURL = "https://api.fintrack.app"
	localBaseURL      = "http://localhost:5000"
)

// Config enumerates the recognized endpoint-resolution options. It is
// constructed once at startup (LoadConfig or by hand) and injected into
// New; the client never reads the environment after construction.
type Config struct {
	// APIURL overrides all URL resolution when non-empty.
	APIURL string `envconfig:"API_URL"`
	// Production selects the fixed production URL when APIURL is absent.
	Production bool `envconfig:"PRODUCTION"`
}

// LoadConfig reads Config from FINTRACK_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BaseURL resolves the backend base URL. Resolution order: explicit
// override, production URL when the production flag is set, local default
// otherwise. Pure; always returns a usable string.
func (c Config) BaseURL() string {
	if c.APIURL != "" {
		return strings.TrimRight(c.APIURL, "/")
	}
	if c.Production {
		return productionBaseURL
	}
	return localBaseURL
}
