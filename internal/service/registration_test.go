package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"saas-portal-backend/internal/auth"
	"saas-portal-backend/internal/config"
	"saas-portal-backend/internal/database/models"
	apperrors "saas-portal-backend/internal/errors"
	"saas-portal-backend/internal/mocks"
	"saas-portal-backend/internal/repository"
	"saas-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// RegistrationServiceTestSuite defines the test suite for RegistrationService
type RegistrationServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockIdentity *mocks.MockIdentityServiceInterface
	mockProfiles *mocks.MockProfileRepositoryInterface
	mockOrgs     *mocks.MockOrganizationRepositoryInterface
	ctx          context.Context
	userID       uuid.UUID
}

func (suite *RegistrationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockIdentity = mocks.NewMockIdentityServiceInterface(suite.ctrl)
	suite.mockProfiles = mocks.NewMockProfileRepositoryInterface(suite.ctrl)
	suite.mockOrgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.ctx = context.Background()
	suite.userID = uuid.New()
}

func (suite *RegistrationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RegistrationServiceTestSuite) newService(fallback string, attempts int) *service.RegistrationService {
	svc, err := service.NewRegistrationService(
		suite.mockIdentity,
		suite.mockProfiles,
		suite.mockOrgs,
		service.NewValidator(),
		service.RegistrationConfig{
			InitialInterval: time.Millisecond,
			MaxInterval:     2 * time.Millisecond,
			MaxAttempts:     attempts,
			TimeoutFallback: fallback,
		},
		nil,
	)
	suite.Require().NoError(err)
	return svc
}

func (suite *RegistrationServiceTestSuite) request() *service.RegisterRequest {
	return &service.RegisterRequest{
		CompanyName: "Acme",
		FullName:    "Ana Lima",
		Email:       "Ana@Acme.io",
		Password:    "s3cret-pass",
	}
}

func (suite *RegistrationServiceTestSuite) provisioned(orgID *uuid.UUID, role models.ProfileRole) *models.Profile {
	now := time.Now()
	return &models.Profile{
		BaseModel:      models.BaseModel{ID: suite.userID},
		Email:          "ana@acme.io",
		OrganizationID: orgID,
		Role:           role,
		ProvisionedAt:  &now,
	}
}

func (suite *RegistrationServiceTestSuite) expectSignUp() {
	suite.mockIdentity.EXPECT().
		SignUp(gomock.Any(), auth.SignUpRequest{Email: "ana@acme.io", Password: "s3cret-pass", FullName: "Ana Lima"}).
		Return(&models.Profile{BaseModel: models.BaseModel{ID: suite.userID}}, nil)
}

func (suite *RegistrationServiceTestSuite) expectToken() {
	suite.mockIdentity.EXPECT().
		IssueToken(suite.userID, "ana@acme.io").
		Return(&auth.TokenResponse{AccessToken: "token"}, nil)
}

// TestInvitedPathWins checks that an invite ignores the supplied company name
func (suite *RegistrationServiceTestSuite) TestInvitedPathWins() {
	orgID := uuid.New()
	suite.expectSignUp()
	suite.mockProfiles.EXPECT().GetByID(gomock.Any(), suite.userID).
		Return(suite.provisioned(&orgID, models.ProfileRoleMember), nil)
	// CreateWithAdmin must not be called
	suite.expectToken()

	resp, err := suite.newService(config.FallbackNewCompany, 3).Register(suite.ctx, suite.request())

	suite.NoError(err)
	suite.Equal(service.OutcomeJoinedExistingTeam, resp.Outcome)
	suite.Equal("Joined existing team", resp.Message)
	suite.Equal(orgID, resp.OrganizationID)
	suite.Equal("token", resp.AccessToken)
}

// TestNewCompanyPath checks that an uninvited identity gets a new organization
func (suite *RegistrationServiceTestSuite) TestNewCompanyPath() {
	orgID := uuid.New()
	suite.expectSignUp()
	suite.mockProfiles.EXPECT().GetByID(gomock.Any(), suite.userID).
		Return(suite.provisioned(nil, models.ProfileRoleMember), nil)
	suite.mockOrgs.EXPECT().CreateWithAdmin(gomock.Any(), suite.userID, "Acme").
		Return(&repository.AttachResult{
			Organization: &models.Organization{BaseModel: models.BaseModel{ID: orgID}, Name: "Acme"},
			Created:      true,
		}, nil)
	suite.expectToken()

	resp, err := suite.newService(config.FallbackNewCompany, 3).Register(suite.ctx, suite.request())

	suite.NoError(err)
	suite.Equal(service.OutcomeCompanyRegistered, resp.Outcome)
	suite.Equal("Company registered", resp.Message)
	suite.Equal(orgID, resp.OrganizationID)
	suite.Equal(suite.userID, resp.UserID)
}

// TestNewCompanyPathRaceWithInvite covers an invite landing between the poll and the transaction
func (suite *RegistrationServiceTestSuite) TestNewCompanyPathRaceWithInvite() {
	orgID := uuid.New()
	suite.expectSignUp()
	suite.mockProfiles.EXPECT().GetByID(gomock.Any(), suite.userID).
		Return(suite.provisioned(nil, models.ProfileRoleMember), nil)
	suite.mockOrgs.EXPECT().CreateWithAdmin(gomock.Any(), suite.userID, "Acme").
		Return(&repository.AttachResult{
			Organization: &models.Organization{BaseModel: models.BaseModel{ID: orgID}},
			Created:      false,
		}, nil)
	suite.expectToken()

	resp, err := suite.newService(config.FallbackNewCompany, 3).Register(suite.ctx, suite.request())

	suite.NoError(err)
	suite.Equal(service.OutcomeJoinedExistingTeam, resp.Outcome)
	suite.Equal(orgID, resp.OrganizationID)
}

// TestPollsUntilProvisioned checks the backoff loop keeps reading until provisioning finishes
func (suite *RegistrationServiceTestSuite) TestPollsUntilProvisioned() {
	orgID := uuid.New()
	suite.expectSignUp()
	gomock.InOrder(
		suite.mockProfiles.EXPECT().GetByID(gomock.Any(), suite.userID).Return(nil, gorm.ErrRecordNotFound),
		suite.mockProfiles.EXPECT().GetByID(gomock.Any(), suite.userID).
			Return(&models.Profile{BaseModel: models.BaseModel{ID: suite.userID}}, nil),
		suite.mockProfiles.EXPECT().GetByID(gomock.Any(), suite.userID).
			Return(suite.provisioned(&orgID, models.ProfileRoleAdmin), nil),
	)
	suite.expectToken()

	resp, err := suite.newService(config.FallbackNewCompany, 5).Register(suite.ctx, suite.request())

	suite.NoError(err)
	suite.Equal(service.OutcomeJoinedExistingTeam, resp.Outcome)
	suite.Equal(orgID, resp.OrganizationID)
}

// TestTimeoutFallbackNewCompany checks the default fallback creates the company
func (suite *RegistrationServiceTestSuite) TestTimeoutFallbackNewCompany() {
	orgID := uuid.New()
	suite.expectSignUp()
	suite.mockProfiles.EXPECT().GetByID(gomock.Any(), suite.userID).
		Return(&models.Profile{BaseModel: models.BaseModel{ID: suite.userID}}, nil).
		Times(3)
	suite.mockOrgs.EXPECT().CreateWithAdmin(gomock.Any(), suite.userID, "Acme").
		Return(&repository.AttachResult{
			Organization: &models.Organization{BaseModel: models.BaseModel{ID: orgID}},
			Created:      true,
		}, nil)
	suite.expectToken()

	resp, err := suite.newService(config.FallbackNewCompany, 3).Register(suite.ctx, suite.request())

	suite.NoError(err)
	suite.Equal(service.OutcomeCompanyRegistered, resp.Outcome)
}

// TestTimeoutFallbackFail checks the fail fallback reports a timeout and writes nothing
func (suite *RegistrationServiceTestSuite) TestTimeoutFallbackFail() {
	suite.expectSignUp()
	suite.mockProfiles.EXPECT().GetByID(gomock.Any(), suite.userID).
		Return(&models.Profile{BaseModel: models.BaseModel{ID: suite.userID}}, nil).
		Times(2)

	resp, err := suite.newService(config.FallbackFail, 2).Register(suite.ctx, suite.request())

	suite.Nil(resp)
	suite.True(apperrors.IsProvisioningTimeout(err))
}

// TestTimeoutWithoutProfile checks a profile that never appears always fails
func (suite *RegistrationServiceTestSuite) TestTimeoutWithoutProfile() {
	suite.expectSignUp()
	suite.mockProfiles.EXPECT().GetByID(gomock.Any(), suite.userID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(2)

	_, err := suite.newService(config.FallbackNewCompany, 2).Register(suite.ctx, suite.request())

	suite.ErrorIs(err, apperrors.ErrProvisioningTimeout)
}

// TestProfileReadErrorStopsPolling checks store errors are not retried
func (suite *RegistrationServiceTestSuite) TestProfileReadErrorStopsPolling() {
	suite.expectSignUp()
	suite.mockProfiles.EXPECT().GetByID(gomock.Any(), suite.userID).
		Return(nil, errors.New("connection reset")).
		Times(1)

	_, err := suite.newService(config.FallbackNewCompany, 5).Register(suite.ctx, suite.request())

	suite.Error(err)
	suite.Contains(err.Error(), "connection reset")
	suite.False(apperrors.IsProvisioningTimeout(err))
}

// TestSignUpFailureCreatesNothing checks no organization is created when sign-up fails
func (suite *RegistrationServiceTestSuite) TestSignUpFailureCreatesNothing() {
	suite.mockIdentity.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrIdentityExists)

	_, err := suite.newService(config.FallbackNewCompany, 3).Register(suite.ctx, suite.request())

	suite.ErrorIs(err, apperrors.ErrIdentityExists)
}

// TestValidation checks request validation happens before sign-up
func (suite *RegistrationServiceTestSuite) TestValidation() {
	svc := suite.newService(config.FallbackNewCompany, 3)

	req := suite.request()
	req.Email = "not-an-email"
	_, err := svc.Register(suite.ctx, req)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "email")

	req = suite.request()
	req.CompanyName = "<script>alert(1)</script>"
	_, err = svc.Register(suite.ctx, req)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "company_name")
}

// TestCompanyNameIsSanitized checks markup is stripped from the company name
func (suite *RegistrationServiceTestSuite) TestCompanyNameIsSanitized() {
	suite.expectSignUp()
	suite.mockProfiles.EXPECT().GetByID(gomock.Any(), suite.userID).
		Return(suite.provisioned(nil, models.ProfileRoleMember), nil)
	suite.mockOrgs.EXPECT().CreateWithAdmin(gomock.Any(), suite.userID, "Smith & Co").
		Return(&repository.AttachResult{Organization: &models.Organization{}, Created: true}, nil)
	suite.expectToken()

	req := suite.request()
	req.CompanyName = "<b>Smith & Co</b>"
	_, err := suite.newService(config.FallbackNewCompany, 3).Register(suite.ctx, req)

	suite.NoError(err)
}

// TestPaddedEmailIsAccepted checks surrounding whitespace and case are normalized before validation
func (suite *RegistrationServiceTestSuite) TestPaddedEmailIsAccepted() {
	suite.expectSignUp()
	suite.mockProfiles.EXPECT().GetByID(gomock.Any(), suite.userID).
		Return(suite.provisioned(nil, models.ProfileRoleMember), nil)
	suite.mockOrgs.EXPECT().CreateWithAdmin(gomock.Any(), suite.userID, "Acme").
		Return(&repository.AttachResult{Organization: &models.Organization{Name: "Acme"}, Created: true}, nil)
	suite.expectToken()

	req := suite.request()
	req.Email = "  Ana@Acme.io "
	req.CompanyName = "  Acme  "
	resp, err := suite.newService(config.FallbackNewCompany, 3).Register(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal(service.OutcomeCompanyRegistered, resp.Outcome)
}

// TestWhitespaceCompanyNameRejected checks a blank company name fails validation before sign-up
func (suite *RegistrationServiceTestSuite) TestWhitespaceCompanyNameRejected() {
	req := suite.request()
	req.CompanyName = "   "
	_, err := suite.newService(config.FallbackNewCompany, 3).Register(suite.ctx, req)

	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "company_name")
}

// TestInvalidFallback checks the constructor rejects unknown fallbacks
func (suite *RegistrationServiceTestSuite) TestInvalidFallback() {
	_, err := service.NewRegistrationService(nil, nil, nil, service.NewValidator(),
		service.RegistrationConfig{MaxAttempts: 1, TimeoutFallback: "retry"}, nil)
	suite.ErrorIs(err, apperrors.ErrInvalidFallback)
}

func TestRegistrationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegistrationServiceTestSuite))
}
