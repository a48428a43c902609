//go:build integration
// +build integration

package repository

import (
	"testing"

	"xgrowth-backend/internal/database/models"
	"xgrowth-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CompanyRelationRepositoryTestSuite tests company and relation persistence
type CompanyRelationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	companies     *CompanyRepository
	relations     *CompanyRelationRepository
	factories     *testutils.FactorySet
}

func (suite *CompanyRelationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.companies = NewCompanyRepository(suite.baseTestSuite.DB)
	suite.relations = NewCompanyRelationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *CompanyRelationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *CompanyRelationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// company stores a company under a fresh organization
func (suite *CompanyRelationRepositoryTestSuite) company() *models.CompanyProfile {
	org := suite.factories.Organization.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(org).Error)
	c := suite.factories.Company.WithOrganization(org.ID)
	suite.Require().NoError(suite.companies.Create(c))
	return c
}

// TestGetByEmailDomain tests the case-insensitive domain lookup
func (suite *CompanyRelationRepositoryTestSuite) TestGetByEmailDomain() {
	c := suite.company()

	found, err := suite.companies.GetByEmailDomain(c.EmailDomain)
	suite.NoError(err)
	suite.Equal(c.ID, found.ID)

	_, err = suite.companies.GetByEmailDomain("missing.example.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestFindBetweenEitherOrder tests the symmetric lookup
func (suite *CompanyRelationRepositoryTestSuite) TestFindBetweenEitherOrder() {
	a, b := suite.company(), suite.company()
	rel := suite.factories.Relation.Between(a.ID, b.ID)
	suite.Require().NoError(suite.relations.Create(rel))

	found, err := suite.relations.FindBetween(b.ID, a.ID)
	suite.NoError(err)
	suite.Equal(rel.ID, found.ID)

	_, err = suite.relations.FindBetween(a.ID, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestReversedPairRejected tests the unordered pair index
func (suite *CompanyRelationRepositoryTestSuite) TestReversedPairRejected() {
	a, b := suite.company(), suite.company()
	suite.Require().NoError(suite.relations.Create(suite.factories.Relation.Between(a.ID, b.ID)))

	err := suite.relations.Create(suite.factories.Relation.Between(b.ID, a.ID))

	suite.Require().Error(err)
	suite.True(IsUniqueViolation(err))

	relations, err := suite.relations.ListByCompany(a.ID)
	suite.NoError(err)
	suite.Len(relations, 1)
}

// TestListActiveByCompanies tests disabled relations are excluded
func (suite *CompanyRelationRepositoryTestSuite) TestListActiveByCompanies() {
	a, b, c := suite.company(), suite.company(), suite.company()
	ab := suite.factories.Relation.Between(a.ID, b.ID)
	ca := suite.factories.Relation.Between(c.ID, a.ID)
	suite.Require().NoError(suite.relations.Create(ab))
	suite.Require().NoError(suite.relations.Create(ca))

	active, err := suite.relations.ListActiveByCompanies([]uuid.UUID{a.ID})
	suite.NoError(err)
	suite.Len(active, 2)

	suite.Require().NoError(suite.relations.SetDisabled(ca.ID, true, "tester"))
	active, err = suite.relations.ListActiveByCompanies([]uuid.UUID{a.ID})
	suite.NoError(err)
	suite.Require().Len(active, 1)
	suite.Equal(ab.ID, active[0].ID)

	all, err := suite.relations.ListByCompany(a.ID)
	suite.NoError(err)
	suite.Len(all, 2)
}

// TestSetDisabledMissing tests toggling an unknown relation
func (suite *CompanyRelationRepositoryTestSuite) TestSetDisabledMissing() {
	err := suite.relations.SetDisabled(uuid.New(), true, "tester")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestCompanyRelationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyRelationRepositoryTestSuite))
}
