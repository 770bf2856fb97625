package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"saas-portal-backend/internal/database/models"
	apperrors "saas-portal-backend/internal/errors"
	"saas-portal-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Email string `json:"email" example:"ana@acme.io"`
	jwt.RegisteredClaims
}

// SignUpRequest carries the credentials of a new identity
type SignUpRequest struct {
	Email    string
	Password string
	FullName string
}

// TokenResponse is returned by a successful sign-in
type TokenResponse struct {
	AccessToken string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string    `json:"token_type" example:"Bearer"`
	ExpiresIn   int64     `json:"expires_in" example:"3600"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      uuid.UUID `json:"user_id"`
}

// AuthService provides identity management and session tokens
type AuthService struct {
	config     *AuthConfig
	identities repository.IdentityRepositoryInterface

	// revoked maps token IDs to their expiry; entries are swept once expired
	revoked     map[string]time.Time
	revokedLock sync.Mutex

	now func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, identities repository.IdentityRepositoryInterface) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	if config.BcryptCost == 0 {
		config.BcryptCost = bcrypt.DefaultCost
	}

	return &AuthService{
		config:     config,
		identities: identities,
		revoked:    make(map[string]time.Time),
		now:        time.Now,
	}, nil
}

// SignUp creates an identity and provisions its profile. The returned profile
// is the one provisioning produced; callers that must not rely on synchronous
// provisioning poll the profile store instead.
func (s *AuthService) SignUp(ctx context.Context, req SignUpRequest) (*models.Profile, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, apperrors.NewValidationError("email", "is required")
	}
	if req.Password == "" {
		return nil, apperrors.NewValidationError("password", "is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	identity := &models.Identity{
		Email:        email,
		PasswordHash: string(hash),
	}
	profile, err := s.identities.Register(ctx, identity, repository.ProvisionRequest{
		FullName:       req.FullName,
		IsSuperAdmin:   s.config.IsSuperAdminEmail(email),
		ConsumeInvites: s.config.ConsumeInvites,
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// SignIn verifies the credentials and issues a session token
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*TokenResponse, error) {
	identity, err := s.identities.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up identity: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.IssueToken(identity.ID, identity.Email)
}

// IssueToken signs a new session token for the identity
func (s *AuthService) IssueToken(userID uuid.UUID, email string) (*TokenResponse, error) {
	now := s.now()
	expiresAt := now.Add(s.config.TokenTTL)
	claims := &AuthClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			Issuer:    s.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.config.TokenTTL.Seconds()),
		ExpiresAt:   expiresAt,
		UserID:      userID,
	}, nil
}

// ValidateToken parses the token and returns the session it carries
func (s *AuthService) ValidateToken(tokenString string) (*Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	},
		jwt.WithIssuer(s.config.Issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject", apperrors.ErrInvalidToken)
	}

	if s.isRevoked(claims.ID) {
		return nil, apperrors.ErrTokenRevoked
	}

	session := &Session{
		UserID:  userID,
		Email:   claims.Email,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}

// SignOut revokes the session's token until it expires
func (s *AuthService) SignOut(session *Session) error {
	if session == nil || session.TokenID == "" {
		return apperrors.ErrSessionRequired
	}

	s.revokedLock.Lock()
	defer s.revokedLock.Unlock()
	s.sweepLocked()
	s.revoked[session.TokenID] = session.ExpiresAt
	return nil
}

func (s *AuthService) isRevoked(tokenID string) bool {
	s.revokedLock.Lock()
	defer s.revokedLock.Unlock()
	s.sweepLocked()
	_, revoked := s.revoked[tokenID]
	return revoked
}

// sweepLocked drops revocations whose token has expired anyway
func (s *AuthService) sweepLocked() {
	now := s.now()
	for id, exp := range s.revoked {
		if now.After(exp) {
			delete(s.revoked, id)
		}
	}
}
