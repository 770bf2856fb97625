package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"saas-portal-backend/internal/auth"
	"saas-portal-backend/internal/config"
	"saas-portal-backend/internal/database/models"
	apperrors "saas-portal-backend/internal/errors"
	"saas-portal-backend/internal/logger"
	"saas-portal-backend/internal/metrics"
	"saas-portal-backend/internal/repository"

	"github.com/cenkalti/backoff/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Registration outcomes
const (
	OutcomeJoinedExistingTeam = "joined_existing_team"
	OutcomeCompanyRegistered  = "company_registered"
)

var errProfilePending = errors.New("profile not provisioned yet")

// RegistrationConfig controls how long registration waits for provisioning
type RegistrationConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxAttempts     int
	TimeoutFallback string
}

// NewRegistrationConfig derives the registration settings from the application config
func NewRegistrationConfig(cfg *config.Config) RegistrationConfig {
	return RegistrationConfig{
		InitialInterval: cfg.ReconcileInitialInterval(),
		MaxInterval:     cfg.ReconcileMaxInterval(),
		MaxAttempts:     cfg.ReconcileMaxAttempts,
		TimeoutFallback: cfg.ReconcileTimeoutFallback,
	}
}

// RegistrationService reconciles a new identity with an organization
type RegistrationService struct {
	identity  IdentityServiceInterface
	profiles  repository.ProfileRepositoryInterface
	orgs      repository.OrganizationRepositoryInterface
	validator *validator.Validate
	config    RegistrationConfig
	metrics   *metrics.Metrics
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	identity IdentityServiceInterface,
	profiles repository.ProfileRepositoryInterface,
	orgs repository.OrganizationRepositoryInterface,
	validator *validator.Validate,
	cfg RegistrationConfig,
	m *metrics.Metrics,
) (*RegistrationService, error) {
	switch cfg.TimeoutFallback {
	case config.FallbackNewCompany, config.FallbackFail:
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidFallback, cfg.TimeoutFallback)
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	return &RegistrationService{
		identity:  identity,
		profiles:  profiles,
		orgs:      orgs,
		validator: validator,
		config:    cfg,
		metrics:   m,
	}, nil
}

// RegisterRequest represents the sign-up form
type RegisterRequest struct {
	CompanyName string `json:"company_name" validate:"required,max=200" example:"Acme"`
	FullName    string `json:"full_name" validate:"max=200" example:"Ana Lima"`
	Email       string `json:"email" validate:"required,email,max=255" example:"ana@acme.io"`
	Password    string `json:"password" validate:"required,min=6,max=72" example:"s3cret-pass"`
}

// RegisterResponse reports how the new identity was attached
type RegisterResponse struct {
	Outcome        string    `json:"outcome" example:"company_registered"`
	Message        string    `json:"message" example:"Company registered"`
	OrganizationID uuid.UUID `json:"organization_id"`
	UserID         uuid.UUID `json:"user_id"`
	AccessToken    string    `json:"access_token,omitempty"`
}

// Register signs the identity up and attaches its profile to an organization.
// An invite that provisioning matched always wins over the supplied company
// name; otherwise a new organization is created with the caller as admin.
func (s *RegistrationService) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	// Rules apply to the normalized values
	normalized := RegisterRequest{
		CompanyName: sanitizeText(req.CompanyName),
		FullName:    sanitizeText(req.FullName),
		Email:       normalizeEmail(req.Email),
		Password:    req.Password,
	}
	if err := s.validator.Struct(&normalized); err != nil {
		return nil, validationError(err)
	}

	companyName := normalized.CompanyName
	email := normalized.Email
	log := logger.WithContext(ctx).WithField("email", email)

	created, err := s.identity.SignUp(ctx, auth.SignUpRequest{
		Email:    email,
		Password: normalized.Password,
		FullName: normalized.FullName,
	})
	if err != nil {
		s.metrics.ObserveRegistration("signup_failed")
		return nil, err
	}
	userID := created.ID

	profile, attempts, err := s.awaitProvisioning(ctx, userID)
	s.metrics.ObserveProvisioningPolls(attempts)
	if err != nil {
		if !errors.Is(err, errProfilePending) {
			s.metrics.ObserveRegistration("failed")
			return nil, fmt.Errorf("failed to read profile: %w", err)
		}

		log.WithFields(map[string]interface{}{
			"attempts": attempts,
			"fallback": s.config.TimeoutFallback,
		}).Warn("profile not provisioned before timeout")

		if profile == nil || s.config.TimeoutFallback == config.FallbackFail {
			s.metrics.ObserveRegistration("provisioning_timeout")
			return nil, apperrors.ErrProvisioningTimeout
		}
	}

	resp := &RegisterResponse{UserID: userID}

	if profile.IsProvisioned() && profile.HasOrganization() {
		resp.Outcome = OutcomeJoinedExistingTeam
		resp.OrganizationID = *profile.OrganizationID
	} else {
		result, err := s.orgs.CreateWithAdmin(ctx, userID, companyName)
		if err != nil {
			s.metrics.ObserveRegistration("failed")
			return nil, fmt.Errorf("failed to create organization: %w", err)
		}
		resp.OrganizationID = result.Organization.ID
		resp.Outcome = OutcomeJoinedExistingTeam
		if result.Created {
			resp.Outcome = OutcomeCompanyRegistered
		}
	}
	resp.Message = outcomeMessage(resp.Outcome)

	token, err := s.identity.IssueToken(userID, email)
	if err != nil {
		log.WithError(err).Error("registered but failed to issue token")
	} else {
		resp.AccessToken = token.AccessToken
	}

	s.metrics.ObserveRegistration(resp.Outcome)
	log.WithFields(map[string]interface{}{
		"outcome":         resp.Outcome,
		"organization_id": resp.OrganizationID,
		"attempts":        attempts,
	}).Info("registration reconciled")

	return resp, nil
}

// awaitProvisioning polls the profile with exponential backoff until it is
// provisioned. On timeout it returns the last profile seen (possibly nil)
// together with errProfilePending.
func (s *RegistrationService) awaitProvisioning(ctx context.Context, userID uuid.UUID) (*models.Profile, int, error) {
	var (
		last     *models.Profile
		attempts int
	)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.config.InitialInterval
	b.MaxInterval = s.config.MaxInterval
	b.Multiplier = 2
	b.RandomizationFactor = 0.2

	profile, err := backoff.Retry(ctx, func() (*models.Profile, error) {
		attempts++
		p, err := s.profiles.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errProfilePending
			}
			return nil, backoff.Permanent(err)
		}
		last = p
		if !p.IsProvisioned() {
			return nil, errProfilePending
		}
		return p, nil
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(s.config.MaxAttempts)),
	)
	if err != nil {
		return last, attempts, err
	}
	return profile, attempts, nil
}

func outcomeMessage(outcome string) string {
	if outcome == OutcomeCompanyRegistered {
		return "Company registered"
	}
	return "Joined existing team"
}
