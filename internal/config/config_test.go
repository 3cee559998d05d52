package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Env:        "production",
			Port:       "8420",
			JWTSecret:  "secure-secret-at-least-32-chars-long",
			DBPassword: "secure-password",
			DBSSLMode:  "require",
			StorageDir: "/var/lib/plantify",
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"valid production config", func(_ *Config) {}, false},
		{"missing port", func(c *Config) { c.Port = "" }, true},
		{"missing jwt secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"missing storage dir", func(c *Config) { c.StorageDir = "" }, true},
		{"default jwt secret in production", func(c *Config) { c.JWTSecret = "your-secret-key-change-in-production" }, true},
		{"short jwt secret in production", func(c *Config) { c.JWTSecret = "short" }, true},
		{"weak db password in production", func(c *Config) { c.DBPassword = "password" }, true},
		{"weak settings allowed in development", func(c *Config) {
			c.Env = "development"
			c.JWTSecret = "dev-secret"
			c.DBPassword = "password"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
