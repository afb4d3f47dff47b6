package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_SERVER_URL points to a running server, e.g. http://localhost:8000. Empty skips the suite.
	ServerURL string `envconfig:"E2E_SERVER_URL"`
	APIKey    string `envconfig:"E2E_API_KEY" default:"api-key-default-123"`
	// E2E_DEBUG_JSON dumps full response bodies
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
