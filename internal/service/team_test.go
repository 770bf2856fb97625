package service_test

import (
	"context"
	"testing"
	"time"

	"saas-portal-backend/internal/auth"
	"saas-portal-backend/internal/database/models"
	apperrors "saas-portal-backend/internal/errors"
	"saas-portal-backend/internal/mocks"
	"saas-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockProfiles *mocks.MockProfileRepositoryInterface
	mockInvites  *mocks.MockInviteRepositoryInterface
	teamService  *service.TeamService
	ctx          context.Context
	orgID        uuid.UUID
	session      *auth.Session
}

func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProfiles = mocks.NewMockProfileRepositoryInterface(suite.ctrl)
	suite.mockInvites = mocks.NewMockInviteRepositoryInterface(suite.ctrl)
	suite.teamService = service.NewTeamService(suite.mockProfiles, suite.mockInvites, service.NewValidator(), nil)
	suite.ctx = context.Background()
	suite.orgID = uuid.New()
	suite.session = &auth.Session{UserID: uuid.New(), Email: "ana@acme.io"}
}

func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) caller(role models.ProfileRole, withOrg bool) *models.Profile {
	p := &models.Profile{
		BaseModel: models.BaseModel{ID: suite.session.UserID},
		FullName:  "Ana Lima",
		Email:     suite.session.Email,
		Role:      role,
	}
	if withOrg {
		orgID := suite.orgID
		p.OrganizationID = &orgID
	}
	return p
}

func (suite *TeamServiceTestSuite) TestInviteAsAdmin() {
	suite.mockProfiles.EXPECT().GetByID(gomock.Any(), suite.session.UserID).
		Return(suite.caller(models.ProfileRoleAdmin, true), nil)
	suite.mockInvites.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, invite *models.OrganizationInvite) error {
			suite.Equal("bo@acme.io", invite.Email)
			suite.Equal(suite.orgID, invite.OrganizationID)
			suite.Equal(models.ProfileRoleMember, invite.Role)
			suite.Require().NotNil(invite.InvitedBy)
			suite.Equal(suite.session.UserID, *invite.InvitedBy)
			invite.ID = uuid.New()
			invite.CreatedAt = time.Now()
			return nil
		})

	resp, err := suite.teamService.Invite(suite.ctx, suite.session, &service.InviteRequest{Email: " Bo@Acme.io "})

	suite.NoError(err)
	suite.Equal("bo@acme.io", resp.Email)
	suite.Equal(models.ProfileRoleMember, resp.Role)
	suite.Equal(suite.orgID, resp.OrganizationID)
	suite.NotEmpty(resp.CreatedAt)
}

func (suite *TeamServiceTestSuite) TestInviteTwiceCreatesTwoRows() {
	suite.mockProfiles.EXPECT().GetByID(gomock.Any(), suite.session.UserID).
		Return(suite.caller(models.ProfileRoleAdmin, true), nil).Times(2)
	suite.mockInvites.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	for i := 0; i < 2; i++ {
		_, err := suite.teamService.Invite(suite.ctx, suite.session, &service.InviteRequest{Email: "bo@acme.io"})
		suite.NoError(err)
	}
}

func (suite *TeamServiceTestSuite) TestInviteAsMemberDenied() {
	suite.mockProfiles.EXPECT().GetByID(gomock.Any(), suite.session.UserID).
		Return(suite.caller(models.ProfileRoleMember, true), nil)

	_, err := suite.teamService.Invite(suite.ctx, suite.session, &service.InviteRequest{Email: "bo@acme.io"})

	suite.ErrorIs(err, apperrors.ErrNotOrganizationAdmin)
}

func (suite *TeamServiceTestSuite) TestInviteWithoutOrganization() {
	suite.mockProfiles.EXPECT().GetByID(gomock.Any(), suite.session.UserID).
		Return(suite.caller(models.ProfileRoleAdmin, false), nil)

	_, err := suite.teamService.Invite(suite.ctx, suite.session, &service.InviteRequest{Email: "bo@acme.io"})

	suite.ErrorIs(err, apperrors.ErrNoOrganization)
}

func (suite *TeamServiceTestSuite) TestInviteValidation() {
	suite.mockProfiles.EXPECT().GetByID(gomock.Any(), suite.session.UserID).
		Return(suite.caller(models.ProfileRoleAdmin, true), nil).Times(2)

	_, err := suite.teamService.Invite(suite.ctx, suite.session, &service.InviteRequest{Email: ""})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.teamService.Invite(suite.ctx, suite.session, &service.InviteRequest{Email: "nope"})
	suite.True(apperrors.IsValidation(err))
}

func (suite *TeamServiceTestSuite) TestInviteWithoutSession() {
	_, err := suite.teamService.Invite(suite.ctx, nil, &service.InviteRequest{Email: "bo@acme.io"})
	suite.ErrorIs(err, apperrors.ErrSessionRequired)
}

func (suite *TeamServiceTestSuite) TestListTeam() {
	suite.mockProfiles.EXPECT().GetByID(gomock.Any(), suite.session.UserID).
		Return(suite.caller(models.ProfileRoleAdmin, true), nil)
	suite.mockProfiles.EXPECT().GetByOrganizationID(gomock.Any(), suite.orgID).
		Return([]models.Profile{
			*suite.caller(models.ProfileRoleAdmin, true),
			{BaseModel: models.BaseModel{ID: uuid.New()}, FullName: "Bo", Role: models.ProfileRoleMember},
		}, nil)
	suite.mockInvites.EXPECT().GetByOrganizationID(gomock.Any(), suite.orgID).
		Return([]models.OrganizationInvite{
			{Email: "cy@acme.io", Role: models.ProfileRoleMember},
			{Email: "cy@acme.io", Role: models.ProfileRoleMember},
		}, nil)

	resp, err := suite.teamService.ListTeam(suite.ctx, suite.session)

	suite.NoError(err)
	suite.Equal(models.ProfileRoleAdmin, resp.MyRole)
	suite.Require().NotNil(resp.OrganizationID)
	suite.Equal(suite.orgID, *resp.OrganizationID)
	suite.Len(resp.Members, 2)
	suite.Equal("Bo", resp.Members[1].FullName)
	suite.Len(resp.Invites, 2)
}

func (suite *TeamServiceTestSuite) TestListTeamWithoutOrganization() {
	suite.mockProfiles.EXPECT().GetByID(gomock.Any(), suite.session.UserID).
		Return(suite.caller(models.ProfileRoleMember, false), nil)

	resp, err := suite.teamService.ListTeam(suite.ctx, suite.session)

	suite.NoError(err)
	suite.Nil(resp.OrganizationID)
	suite.Empty(resp.Members)
	suite.NotNil(resp.Members)
	suite.Empty(resp.Invites)
}

func (suite *TeamServiceTestSuite) TestListTeamProfileMissing() {
	suite.mockProfiles.EXPECT().GetByID(gomock.Any(), suite.session.UserID).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.teamService.ListTeam(suite.ctx, suite.session)

	suite.ErrorIs(err, apperrors.ErrProfileNotFound)
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
