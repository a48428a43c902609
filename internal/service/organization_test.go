package service_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"xgrowth-backend/internal/aggregation"
	"xgrowth-backend/internal/database/models"
	apperrors "xgrowth-backend/internal/errors"
	"xgrowth-backend/internal/mocks"
	"xgrowth-backend/internal/pipeline"
	"xgrowth-backend/internal/query"
	"xgrowth-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// OrganizationServiceTestSuite defines the test suite for OrganizationService
type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockOrgRepo         *mocks.MockOrganizationRepositoryInterface
	mockOrgTypeRepo     *mocks.MockOrganizationTypeRepositoryInterface
	mockCompanyRepo     *mocks.MockCompanyRepositoryInterface
	mockAggregates      *mocks.MockAggregateRepositoryInterface
	mockResolver        *mocks.MockRelationshipResolverInterface
	organizationService *service.OrganizationService
}

// SetupTest sets up the test suite
func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockOrgTypeRepo = mocks.NewMockOrganizationTypeRepositoryInterface(suite.ctrl)
	suite.mockCompanyRepo = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.mockAggregates = mocks.NewMockAggregateRepositoryInterface(suite.ctrl)
	suite.mockResolver = mocks.NewMockRelationshipResolverInterface(suite.ctrl)

	suite.organizationService = service.NewOrganizationService(
		suite.mockOrgRepo,
		suite.mockOrgTypeRepo,
		suite.mockCompanyRepo,
		suite.mockAggregates,
		suite.mockResolver,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization() {
	typeID := uuid.New()
	req := &service.CreateOrganizationRequest{
		Name:               "Packwise",
		Description:        "Flexible packaging",
		Website:            "https://packwise.example.com",
		OrganizationTypeID: &typeID,
		SkillIDs:           []string{"s1", "s2"},
	}

	suite.mockOrgRepo.EXPECT().GetByName("Packwise").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgTypeRepo.EXPECT().GetByID(typeID).Return(&models.OrganizationType{Name: "Supplier"}, nil)
	suite.mockOrgRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(org *models.Organization) error {
		suite.Equal("Packwise", org.Name)
		suite.Equal(pq.StringArray{"s1", "s2"}, org.SkillIDs)
		org.ID = uuid.New()
		return nil
	})

	resp, err := suite.organizationService.Create(req)

	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, resp.ID)
	suite.Equal(&typeID, resp.OrganizationTypeID)
	suite.Equal([]string{"s1", "s2"}, resp.SkillIDs)
	suite.Equal([]string{}, resp.RegionIDs)
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganizationValidationError() {
	req := &service.CreateOrganizationRequest{Website: "not a url"}

	resp, err := suite.organizationService.Create(req)

	suite.Error(err)
	suite.Nil(resp)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganizationDuplicateName() {
	suite.mockOrgRepo.EXPECT().GetByName("Packwise").Return(&models.Organization{Name: "Packwise"}, nil)

	resp, err := suite.organizationService.Create(&service.CreateOrganizationRequest{Name: "Packwise"})

	suite.ErrorIs(err, apperrors.ErrOrganizationExists)
	suite.Nil(resp)
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganizationUnknownType() {
	typeID := uuid.New()
	suite.mockOrgRepo.EXPECT().GetByName("Packwise").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgTypeRepo.EXPECT().GetByID(typeID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.organizationService.Create(&service.CreateOrganizationRequest{Name: "Packwise", OrganizationTypeID: &typeID})

	suite.ErrorIs(err, apperrors.ErrOrganizationTypeNotFound)
	suite.Nil(resp)
}

func (suite *OrganizationServiceTestSuite) TestGetOrganizationNotFound() {
	id := uuid.New()
	suite.mockOrgRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.organizationService.GetByID(id)

	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
	suite.Nil(resp)
}

func (suite *OrganizationServiceTestSuite) TestGetAllNormalizesPaging() {
	suite.mockOrgRepo.EXPECT().GetAll(20, 0).Return([]models.Organization{{Name: "A"}, {Name: "B"}}, int64(2), nil)

	resp, err := suite.organizationService.GetAll(0, 0)

	suite.Require().NoError(err)
	suite.Equal(1, resp.Page)
	suite.Equal(20, resp.PageSize)
	suite.Equal(int64(2), resp.Total)
	suite.Len(resp.Items, 2)
}

func (suite *OrganizationServiceTestSuite) TestGetAllCapsPageSize() {
	suite.mockOrgRepo.EXPECT().GetAll(20, 40).Return(nil, int64(0), nil)

	resp, err := suite.organizationService.GetAll(3, 500)

	suite.Require().NoError(err)
	suite.Equal(3, resp.Page)
	suite.NotNil(resp.Items)
}

func (suite *OrganizationServiceTestSuite) TestGetAllHugePageKeepsOffsetPositive() {
	suite.mockOrgRepo.EXPECT().GetAll(20, gomock.Any()).
		DoAndReturn(func(limit, offset int) ([]models.Organization, int64, error) {
			suite.GreaterOrEqual(offset, 0)
			return nil, int64(3), nil
		})

	resp, err := suite.organizationService.GetAll(math.MaxInt, 20)

	suite.Require().NoError(err)
	suite.Equal(math.MaxInt, resp.Page)
	suite.Empty(resp.Items)
}

func (suite *OrganizationServiceTestSuite) TestUpdateOrganization() {
	id := uuid.New()
	suite.mockOrgRepo.EXPECT().GetByID(id).Return(&models.Organization{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Packwise",
		PostCount: 4,
	}, nil)
	suite.mockOrgRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.organizationService.Update(id, &service.UpdateOrganizationRequest{
		Description: "Now with labels",
		RegionIDs:   []string{"r1"},
	})

	suite.Require().NoError(err)
	suite.Equal("Packwise", resp.Name)
	suite.Equal("Now with labels", resp.Description)
	suite.Equal(4, resp.PostCount)
	suite.Equal([]string{"r1"}, resp.RegionIDs)
}

func (suite *OrganizationServiceTestSuite) TestDeleteOrganization() {
	id := uuid.New()
	suite.mockOrgRepo.EXPECT().GetByID(id).Return(&models.Organization{BaseModel: models.BaseModel{ID: id}}, nil)
	suite.mockOrgRepo.EXPECT().Delete(id).Return(nil)

	suite.NoError(suite.organizationService.Delete(id))
}

func (suite *OrganizationServiceTestSuite) TestDeleteOrganizationNotFound() {
	id := uuid.New()
	suite.mockOrgRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.organizationService.Delete(id), apperrors.ErrOrganizationNotFound)
}

func (suite *OrganizationServiceTestSuite) TestDiscover() {
	ctx := context.Background()
	params := aggregation.DiscoveryParams{Search: "pack", Page: 2, PageSize: 5}
	docs := []query.Document{{"name": "Packwise"}}

	suite.mockAggregates.EXPECT().
		Aggregate(ctx, aggregation.CollectionOrganizations, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p pipeline.Pipeline) ([]query.Document, error) {
			suite.NoError(p.Validate())
			return docs, nil
		})
	suite.mockAggregates.EXPECT().
		Count(ctx, aggregation.CollectionOrganizations, gomock.Any()).
		Return(int64(6), nil)

	resp, err := suite.organizationService.Discover(ctx, params)

	suite.Require().NoError(err)
	suite.Equal(int64(6), resp.Total)
	suite.Equal(2, resp.Page)
	suite.Equal(5, resp.PageSize)
	suite.Equal(docs, resp.Items)
}

func (suite *OrganizationServiceTestSuite) TestDiscoverAggregateError() {
	suite.mockAggregates.EXPECT().Aggregate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	resp, err := suite.organizationService.Discover(context.Background(), aggregation.DiscoveryParams{})

	suite.Error(err)
	suite.Nil(resp)
}

func (suite *OrganizationServiceTestSuite) TestGetRelated() {
	id, other := uuid.New(), uuid.New()
	suite.mockOrgRepo.EXPECT().GetByID(id).Return(&models.Organization{BaseModel: models.BaseModel{ID: id}}, nil)
	suite.mockResolver.EXPECT().RelatedOrganizations(id).Return([]models.Organization{
		{BaseModel: models.BaseModel{ID: other}, Name: "Frostline Logistics"},
	}, nil)

	related, err := suite.organizationService.GetRelated(id)

	suite.Require().NoError(err)
	suite.Len(related, 1)
	suite.Equal(other, related[0].ID)
}

func (suite *OrganizationServiceTestSuite) TestGetCompanies() {
	id := uuid.New()
	suite.mockOrgRepo.EXPECT().GetByID(id).Return(&models.Organization{BaseModel: models.BaseModel{ID: id}}, nil)
	suite.mockCompanyRepo.EXPECT().GetByOrganizationID(id).Return([]models.CompanyProfile{
		{Name: "Nordic Foods Sweden", OrganizationID: id, EmailDomain: "nordicfoods.example.com"},
	}, nil)

	companies, err := suite.organizationService.GetCompanies(id)

	suite.Require().NoError(err)
	suite.Len(companies, 1)
	suite.Equal("nordicfoods.example.com", companies[0].EmailDomain)
}

func (suite *OrganizationServiceTestSuite) TestIncrementPostCountSwallowsErrors() {
	id := uuid.New()
	suite.mockOrgRepo.EXPECT().AdjustPostCount(id, 1).Return(errors.New("deadlock"))

	suite.NotPanics(func() {
		suite.organizationService.IncrementPostCount(context.Background(), id, 1)
	})
}

// TestOrganizationServiceTestSuite runs the test suite
func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
