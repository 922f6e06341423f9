// Package config loads server configuration from environment variables
// and the YAML application config file (tickers, system prompts, seed data).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

const (
	// EnvKeySecretKey is the environment variable holding the JWT signing secret.
	EnvKeySecretKey = "SECRET_KEY"
	// DefaultPort is the listen port for local runs. Hosting platforms
	// override it through the PORT environment variable.
	DefaultPort = "5000"
	// DefaultAppConfigPath is where the YAML ticker/prompt config lives.
	DefaultAppConfigPath = "configs/app.yaml"
)

// ErrMissingSecretKey is returned when SECRET_KEY is not set. The server
// must refuse to start in that case rather than run with unsigned sessions.
var ErrMissingSecretKey = errors.New("SECRET_KEY is not set")

// Config holds process-level configuration resolved from the environment.
type Config struct {
	SecretKey     string  // JWT signing secret (required)
	Port          string  // HTTP listen port
	AppConfigPath string  // path to the YAML app config
	RiskFreeRate  float64 // annual risk-free rate for Sharpe/Sortino, default 0
}

// Load resolves configuration from environment variables.
// It fails when SECRET_KEY is missing so a misconfigured deployment is
// detected before the service binds its port.
func Load() (Config, error) {
	secret := os.Getenv(EnvKeySecretKey)
	if secret == "" {
		return Config{}, ErrMissingSecretKey
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = DefaultPort
	}

	path := os.Getenv("APP_CONFIG")
	if path == "" {
		path = DefaultAppConfigPath
	}

	var riskFree float64
	if v := os.Getenv("RISK_FREE_RATE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RISK_FREE_RATE %q: %w", v, err)
		}
		riskFree = f
	}

	return Config{
		SecretKey:     secret,
		Port:          port,
		AppConfigPath: path,
		RiskFreeRate:  riskFree,
	}, nil
}

// Addr returns the listen address for gin's Run.
func (c Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}
