package server

import (
	"fmt"

	"github.com/commercekit/storefront/server/middleware"
)

// Config holds HTTP server settings.
type Config struct {
	Host         string                `mapstructure:"host" yaml:"host"`
	Port         int                   `mapstructure:"port" yaml:"port"`
	ReadTimeout  int                   `mapstructure:"read_timeout" yaml:"read_timeout"`   // seconds
	WriteTimeout int                   `mapstructure:"write_timeout" yaml:"write_timeout"` // seconds
	IdleTimeout  int                   `mapstructure:"idle_timeout" yaml:"idle_timeout"`   // seconds
	MaxBodySize  int64                 `mapstructure:"max_body_size" yaml:"max_body_size"` // bytes
	CORS         middleware.CORSConfig `mapstructure:"cors" yaml:"cors"`
}

// ApplyDefaults fills in zero-valued fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 30
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 30
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 120
	}
	if c.MaxBodySize == 0 {
		c.MaxBodySize = 4 << 20 // 4 MiB
	}
	c.CORS.ApplyDefaults()
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Port)
	}
	if c.ReadTimeout < 0 || c.WriteTimeout < 0 || c.IdleTimeout < 0 {
		return fmt.Errorf("server timeouts must be non-negative")
	}
	return nil
}
