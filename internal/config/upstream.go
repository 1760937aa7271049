package config

import (
	"fmt"
	"net/url"
	"time"
)

// UpstreamConfig holds configuration for the upstream employee API.
// It is read once at startup and never mutated afterwards.
type UpstreamConfig struct {
	// BaseURL is the employee collection endpoint, no trailing slash.
	BaseURL string
	// Timeout bounds every outbound HTTP call.
	Timeout time.Duration
}

// LoadUpstreamConfigFromEnv loads upstream configuration from environment variables.
func LoadUpstreamConfigFromEnv() UpstreamConfig {
	return UpstreamConfig{
		BaseURL: GetEnv("UPSTREAM_BASE_URL", "http://localhost:8112/api/v1/employee"),
		Timeout: GetEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),
	}
}

// Validate validates upstream configuration.
func (c UpstreamConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid UPSTREAM_BASE_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid UPSTREAM_BASE_URL scheme: %q (must be http or https)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL is missing a host")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("Timeout must be greater than 0")
	}
	return nil
}
