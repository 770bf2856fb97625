//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"saas-portal-backend/internal/database/models"
	apperrors "saas-portal-backend/internal/errors"
	"saas-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// OrgModuleRepositoryTestSuite tests license toggling against Postgres
type OrgModuleRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrgModuleRepository
	modules       *AppModuleRepository
	factories     *testutils.FactorySet
	ctx           context.Context
	orgID         uuid.UUID
}

func (suite *OrgModuleRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.repo = NewOrgModuleRepository(db)
	suite.modules = NewAppModuleRepository(db)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *OrgModuleRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.CleanTestDB()
}

func (suite *OrgModuleRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	db := suite.baseTestSuite.DB
	org := suite.factories.Organization.WithName("Acme")
	suite.Require().NoError(db.Create(org).Error)
	suite.orgID = org.ID
	catalog := suite.factories.Module.Catalog()
	suite.Require().NoError(db.Create(&catalog).Error)
}

func (suite *OrgModuleRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *OrgModuleRepositoryTestSuite) TestActivateAndDeactivate() {
	suite.NoError(suite.repo.Activate(suite.ctx, suite.orgID, "crm"))
	suite.NoError(suite.repo.Activate(suite.ctx, suite.orgID, "billing"))

	licenses, err := suite.repo.GetByOrganizationID(suite.ctx, suite.orgID)
	suite.NoError(err)
	suite.Require().Len(licenses, 2)
	suite.Equal("billing", licenses[0].ModuleKey)
	suite.True(licenses[0].Status.IsActive())

	removed, err := suite.repo.Deactivate(suite.ctx, suite.orgID, "crm")
	suite.NoError(err)
	suite.Equal(int64(1), removed)

	all, err := suite.repo.GetAll(suite.ctx)
	suite.NoError(err)
	suite.Require().Len(all, 1)
	suite.Equal("billing", all[0].ModuleKey)
}

func (suite *OrgModuleRepositoryTestSuite) TestActivateDuplicate() {
	suite.Require().NoError(suite.repo.Activate(suite.ctx, suite.orgID, "crm"))
	err := suite.repo.Activate(suite.ctx, suite.orgID, "crm")
	suite.ErrorIs(err, apperrors.ErrLicenseExists)
}

func (suite *OrgModuleRepositoryTestSuite) TestActivateUnknownReferences() {
	err := suite.repo.Activate(suite.ctx, suite.orgID, "payroll")
	suite.ErrorIs(err, apperrors.ErrModuleNotFound)

	err = suite.repo.Activate(suite.ctx, uuid.New(), "crm")
	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
}

func (suite *OrgModuleRepositoryTestSuite) TestDeactivateMissingRow() {
	removed, err := suite.repo.Deactivate(suite.ctx, suite.orgID, "inventory")
	suite.NoError(err)
	suite.Zero(removed)
}

func (suite *OrgModuleRepositoryTestSuite) TestModulesOrderedByKey() {
	modules, err := suite.modules.GetAll(suite.ctx)
	suite.NoError(err)
	suite.Require().Len(modules, 3)
	suite.Equal("billing", modules[0].Key)
	suite.Equal("inventory", modules[2].Key)
}

func (suite *OrgModuleRepositoryTestSuite) TestActivateReactivatesSuspended() {
	db := suite.baseTestSuite.DB
	suspended := suite.factories.License.Create(suite.orgID, "crm")
	suspended.Status = models.LicenseStatusSuspended
	suite.Require().NoError(db.Create(suspended).Error)

	suite.NoError(suite.repo.Activate(suite.ctx, suite.orgID, "crm"))

	licenses, err := suite.repo.GetByOrganizationID(suite.ctx, suite.orgID)
	suite.NoError(err)
	suite.Require().Len(licenses, 1)
	suite.True(licenses[0].Status.IsActive())

	err = suite.repo.Activate(suite.ctx, suite.orgID, "crm")
	suite.ErrorIs(err, apperrors.ErrLicenseExists)
}

func TestOrgModuleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrgModuleRepositoryTestSuite))
}
