package auth

import (
	"fmt"

	"github.com/commercekit/storefront/auth/jwt"
	"github.com/commercekit/storefront/auth/password"
)

// Config holds all authentication configuration.
// It composes subpackage configs for loading from YAML/env via mapstructure.
type Config struct {
	// JWT configures the token issuer and verifier.
	JWT jwt.Config `mapstructure:"jwt"`

	// Password configures credential hashing.
	Password password.Config `mapstructure:"password"`
}

// ApplyDefaults sets sensible defaults for sub-configurations.
func (c *Config) ApplyDefaults() {
	c.JWT.ApplyDefaults()
	c.Password.ApplyDefaults()
}

// Validate checks all sub-configurations. A missing JWT secret fails here,
// which callers treat as fatal at startup.
func (c *Config) Validate() error {
	if err := c.JWT.Validate(); err != nil {
		return fmt.Errorf("auth.jwt: %w", err)
	}
	if err := c.Password.Validate(); err != nil {
		return fmt.Errorf("auth.password: %w", err)
	}
	return nil
}

// Describe returns a human-readable one-liner for the startup summary.
// Example: "JWT(HS256) TTL=1h0m0s password=bcrypt"
func (c *Config) Describe() string {
	return fmt.Sprintf("JWT(%s) TTL=%s password=%s", c.JWT.Method, c.JWT.TTL, c.Password.Algorithm)
}
