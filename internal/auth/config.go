package auth

import (
	"fmt"
	"time"

	"teampro-backend/internal/config"
)

const defaultIssuer = "teampro-backend"

// AuthConfig holds the token settings used by the auth service
type AuthConfig struct {
	JWTSecret  string
	Expiration time.Duration
	Issuer     string
}

// NewAuthConfig derives the auth settings from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		Expiration: cfg.JWTExpiration,
		Issuer:     defaultIssuer,
	}
}

// ValidateConfig validates the auth configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.Expiration <= 0 {
		return fmt.Errorf("token expiration must be positive")
	}
	if c.Issuer == "" {
		c.Issuer = defaultIssuer
	}
	return nil
}
