// Package config handles configuration for the auth server, including
// defaults, environment variables, JSON overlay, and command-line flags.
package config

import (
	"errors"
	"time"
)

// Config holds runtime settings for the auth server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing session tokens (HS256). It has no
//     default on purpose; the server refuses to start without one.
//   - TokenValidityDuration: session token lifetime.
//   - BcryptCost: work factor for password hashing.
type Config struct {
	Addr                  string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	BcryptCost            int
}

// LoadDefaults populates Config with development defaults. The signing
// secret is deliberately left empty.
func (c *Config) LoadDefaults() {
	c.Addr = ":5000"
	c.DatabaseDSN = ""
	c.SecretKey = ""
	c.TokenValidityDuration = 1 * time.Hour
	c.BcryptCost = 10
}

// Validate checks that the config is usable. Called once at startup.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("signing secret is not configured")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file, and command-line flags, in
// that order of increasing precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
