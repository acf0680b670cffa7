package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProductionConfig() *Config {
	return &Config{
		JWTSecret:      "a-production-grade-secret-at-least-32-chars",
		Port:           "8190",
		DBHost:         "db.internal",
		DBPort:         "5432",
		DBUser:         "ripple",
		DBPassword:     "s3cure-db-pass",
		DBName:         "ripple",
		DBSSLMode:      "require",
		RedisURL:       "redis.internal:6379",
		AllowedOrigins: "https://app.example.com",
		Env:            "production",
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid production config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing port",
			mutate:  func(c *Config) { c.Port = "" },
			wantErr: "PORT is required",
		},
		{
			name:    "missing jwt secret",
			mutate:  func(c *Config) { c.JWTSecret = "" },
			wantErr: "JWT_SECRET is required",
		},
		{
			name: "default jwt secret in production",
			mutate: func(c *Config) {
				c.JWTSecret = "your-secret-key-change-in-production"
			},
			wantErr: "JWT_SECRET must be changed from the default value in production",
		},
		{
			name:    "short jwt secret in production",
			mutate:  func(c *Config) { c.JWTSecret = "too-short" },
			wantErr: "JWT_SECRET must be at least 32 characters in production",
		},
		{
			name:    "weak db password in production",
			mutate:  func(c *Config) { c.DBPassword = "password" },
			wantErr: "a strong DB_PASSWORD is required in production",
		},
		{
			name:    "ssl disabled in production",
			mutate:  func(c *Config) { c.DBSSLMode = "disable" },
			wantErr: "DB_SSLMODE must be enabled in production",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validProductionConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidateDevelopmentIsLenient(t *testing.T) {
	cfg := &Config{
		JWTSecret: "short-dev-secret",
		Port:      "8190",
		Env:       "development",
	}
	// Development tolerates weak secrets, warning only.
	assert.NoError(t, cfg.Validate())
}
