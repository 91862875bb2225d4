package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:       "8480",
			JWTSecret:  "secure-secret-at-least-32-chars-long",
			DBPassword: "secure-password",
			DBSSLMode:  "require",
			Env:        "development",
		}
	}

	t.Run("Valid Development", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("Missing Port", func(t *testing.T) {
		c := base()
		c.Port = ""
		assert.Error(t, c.Validate())
	})

	t.Run("Missing JWT Secret", func(t *testing.T) {
		c := base()
		c.JWTSecret = ""
		assert.Error(t, c.Validate())
	})

	t.Run("Production Rejects Default Secret", func(t *testing.T) {
		c := base()
		c.Env = "production"
		c.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, c.Validate())
	})

	t.Run("Production Rejects Short Secret", func(t *testing.T) {
		c := base()
		c.Env = "production"
		c.JWTSecret = "short"
		assert.Error(t, c.Validate())
	})

	t.Run("Production Rejects Weak DB Password", func(t *testing.T) {
		c := base()
		c.Env = "prod"
		c.DBPassword = "password"
		assert.Error(t, c.Validate())
	})

	t.Run("Development Tolerates Short Secret", func(t *testing.T) {
		c := base()
		c.JWTSecret = "short"
		assert.NoError(t, c.Validate())
	})
}
