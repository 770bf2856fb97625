//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"saas-portal-backend/internal/database/models"
	apperrors "saas-portal-backend/internal/errors"
	"saas-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// IdentityRepositoryTestSuite tests identity registration and provisioning
type IdentityRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *IdentityRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

func (suite *IdentityRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewIdentityRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *IdentityRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.CleanTestDB()
}

func (suite *IdentityRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *IdentityRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *IdentityRepositoryTestSuite) TestRegisterWithoutInvite() {
	identity := &models.Identity{Email: "Solo@Example.com", PasswordHash: "hash"}

	profile, err := suite.repo.Register(suite.ctx, identity, ProvisionRequest{FullName: "Solo"})

	suite.NoError(err)
	suite.Equal(identity.ID, profile.ID)
	suite.Equal("solo@example.com", profile.Email)
	suite.False(profile.HasOrganization())
	suite.Equal(models.ProfileRoleMember, profile.Role)
	suite.True(profile.IsProvisioned())
}

func (suite *IdentityRepositoryTestSuite) TestRegisterMatchesMostRecentInvite() {
	db := suite.baseTestSuite.DB
	older := suite.factories.Organization.WithName("Old Co")
	newer := suite.factories.Organization.WithName("Acme")
	suite.Require().NoError(db.Create(older).Error)
	suite.Require().NoError(db.Create(newer).Error)

	first := suite.factories.Invite.Create(older.ID, "ana@acme.io")
	first.CreatedAt = time.Now().Add(-time.Hour)
	second := suite.factories.Invite.WithRole(newer.ID, "ana@acme.io", models.ProfileRoleAdmin)
	suite.Require().NoError(db.Create(first).Error)
	suite.Require().NoError(db.Create(second).Error)

	profile, err := suite.repo.Register(suite.ctx,
		&models.Identity{Email: "ANA@acme.io", PasswordHash: "hash"},
		ProvisionRequest{FullName: "Ana"})

	suite.NoError(err)
	suite.Require().True(profile.HasOrganization())
	suite.Equal(newer.ID, *profile.OrganizationID)
	suite.Equal(models.ProfileRoleAdmin, profile.Role)

	var remaining int64
	db.Model(&models.OrganizationInvite{}).Count(&remaining)
	suite.Equal(int64(2), remaining)
}

func (suite *IdentityRepositoryTestSuite) TestRegisterConsumesInvites() {
	db := suite.baseTestSuite.DB
	org := suite.factories.Organization.Create()
	suite.Require().NoError(db.Create(org).Error)
	suite.Require().NoError(db.Create(suite.factories.Invite.Create(org.ID, "bo@acme.io")).Error)
	suite.Require().NoError(db.Create(suite.factories.Invite.Create(org.ID, "bo@acme.io")).Error)

	_, err := suite.repo.Register(suite.ctx,
		&models.Identity{Email: "bo@acme.io", PasswordHash: "hash"},
		ProvisionRequest{ConsumeInvites: true})
	suite.NoError(err)

	var remaining int64
	db.Model(&models.OrganizationInvite{}).Where("email = ?", "bo@acme.io").Count(&remaining)
	suite.Zero(remaining)
}

func (suite *IdentityRepositoryTestSuite) TestRegisterSuperAdmin() {
	profile, err := suite.repo.Register(suite.ctx,
		&models.Identity{Email: "root@portal.io", PasswordHash: "hash"},
		ProvisionRequest{IsSuperAdmin: true})

	suite.NoError(err)
	suite.True(profile.IsSuperAdmin)
}

func (suite *IdentityRepositoryTestSuite) TestRegisterDuplicateEmail() {
	_, err := suite.repo.Register(suite.ctx, &models.Identity{Email: "dup@acme.io", PasswordHash: "h"}, ProvisionRequest{})
	suite.Require().NoError(err)

	_, err = suite.repo.Register(suite.ctx, &models.Identity{Email: "DUP@acme.io", PasswordHash: "h"}, ProvisionRequest{})
	suite.ErrorIs(err, apperrors.ErrIdentityExists)

	var profiles int64
	suite.baseTestSuite.DB.Model(&models.Profile{}).Count(&profiles)
	suite.Equal(int64(1), profiles)
}

func (suite *IdentityRepositoryTestSuite) TestGetByEmail() {
	identity := &models.Identity{Email: "find@acme.io", PasswordHash: "h"}
	_, err := suite.repo.Register(suite.ctx, identity, ProvisionRequest{})
	suite.Require().NoError(err)

	found, err := suite.repo.GetByEmail(suite.ctx, " Find@Acme.io ")
	suite.NoError(err)
	suite.Equal(identity.ID, found.ID)

	byID, err := suite.repo.GetByID(suite.ctx, identity.ID)
	suite.NoError(err)
	suite.Equal("find@acme.io", byID.Email)
}

func TestIdentityRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityRepositoryTestSuite))
}
