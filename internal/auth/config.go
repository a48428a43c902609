package auth

import (
	"fmt"
	"time"
)

const defaultIssuer = "xgrowth-backend"

// AuthConfig holds token settings
type AuthConfig struct {
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
}

// NewAuthConfig builds an AuthConfig, applying defaults for empty fields
func NewAuthConfig(secret, issuer string, ttlMinutes int) *AuthConfig {
	if issuer == "" {
		issuer = defaultIssuer
	}
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &AuthConfig{
		JWTSecret: secret,
		Issuer:    issuer,
		TokenTTL:  time.Duration(ttlMinutes) * time.Minute,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	return nil
}
