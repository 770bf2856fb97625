package auth

import (
	"strings"
	"time"

	"saas-portal-backend/internal/config"
	apperrors "saas-portal-backend/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret        string
	Issuer           string
	TokenTTL         time.Duration
	BcryptCost       int
	SuperAdminEmails []string
	ConsumeInvites   bool
}

// NewAuthConfig derives the auth configuration from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:        cfg.JWTSecret,
		Issuer:           "saas-portal-backend",
		TokenTTL:         cfg.JWTTTL(),
		BcryptCost:       bcrypt.DefaultCost,
		SuperAdminEmails: cfg.SuperAdminEmails,
		ConsumeInvites:   cfg.InviteConsumeOnJoin,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return apperrors.ErrJWTSecretMissing
	}
	if c.TokenTTL <= 0 {
		return apperrors.NewConfigurationError("token TTL must be positive")
	}
	if c.BcryptCost != 0 && (c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost) {
		return apperrors.NewConfigurationError("bcrypt cost out of range")
	}
	return nil
}

// IsSuperAdminEmail reports whether the email is on the super admin list
func (c *AuthConfig) IsSuperAdminEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, e := range c.SuperAdminEmails {
		if strings.ToLower(e) == email {
			return true
		}
	}
	return false
}
