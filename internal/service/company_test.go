package service_test

import (
	"testing"

	"xgrowth-backend/internal/database/models"
	apperrors "xgrowth-backend/internal/errors"
	"xgrowth-backend/internal/mocks"
	"xgrowth-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type CompanyServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockCompanyRepo *mocks.MockCompanyRepositoryInterface
	mockOrgRepo     *mocks.MockOrganizationRepositoryInterface
	mockResolver    *mocks.MockRelationshipResolverInterface
	companyService  *service.CompanyService
}

func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCompanyRepo = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockResolver = mocks.NewMockRelationshipResolverInterface(suite.ctrl)
	suite.companyService = service.NewCompanyService(suite.mockCompanyRepo, suite.mockOrgRepo, suite.mockResolver, validator.New())
}

func (suite *CompanyServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CompanyServiceTestSuite) TestCreateCompanyLowercasesDomain() {
	orgID := uuid.New()
	suite.mockOrgRepo.EXPECT().GetByID(orgID).Return(&models.Organization{BaseModel: models.BaseModel{ID: orgID}}, nil)
	suite.mockCompanyRepo.EXPECT().GetByEmailDomain("packwise.example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockCompanyRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.companyService.Create(&service.CreateCompanyRequest{
		Name:           "Packwise AB",
		OrganizationID: orgID,
		EmailDomain:    "Packwise.Example.com",
	})

	suite.Require().NoError(err)
	suite.Equal("packwise.example.com", resp.EmailDomain)
	suite.Equal(orgID, resp.OrganizationID)
}

func (suite *CompanyServiceTestSuite) TestCreateCompanyInvalidDomain() {
	resp, err := suite.companyService.Create(&service.CreateCompanyRequest{
		Name:           "Packwise AB",
		OrganizationID: uuid.New(),
		EmailDomain:    "not a domain",
	})

	suite.Error(err)
	suite.Nil(resp)
}

func (suite *CompanyServiceTestSuite) TestCreateCompanyUnknownOrganization() {
	orgID := uuid.New()
	suite.mockOrgRepo.EXPECT().GetByID(orgID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.companyService.Create(&service.CreateCompanyRequest{
		Name:           "Packwise AB",
		OrganizationID: orgID,
		EmailDomain:    "packwise.example.com",
	})

	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
	suite.Nil(resp)
}

func (suite *CompanyServiceTestSuite) TestCreateCompanyDuplicateDomain() {
	orgID := uuid.New()
	suite.mockOrgRepo.EXPECT().GetByID(orgID).Return(&models.Organization{}, nil)
	suite.mockCompanyRepo.EXPECT().GetByEmailDomain("packwise.example.com").Return(&models.CompanyProfile{}, nil)

	resp, err := suite.companyService.Create(&service.CreateCompanyRequest{
		Name:           "Packwise AB",
		OrganizationID: orgID,
		EmailDomain:    "packwise.example.com",
	})

	suite.ErrorIs(err, apperrors.ErrCompanyExists)
	suite.Nil(resp)
}

func (suite *CompanyServiceTestSuite) TestGetByEmailDomainNotFound() {
	suite.mockCompanyRepo.EXPECT().GetByEmailDomain("nope.example.com").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.companyService.GetByEmailDomain("nope.example.com")

	suite.ErrorIs(err, apperrors.ErrCompanyNotFound)
	suite.Nil(resp)
}

func (suite *CompanyServiceTestSuite) TestUpdateCompanyKeepsDomain() {
	id := uuid.New()
	suite.mockCompanyRepo.EXPECT().GetByID(id).Return(&models.CompanyProfile{
		BaseModel:   models.BaseModel{ID: id},
		Name:        "Old",
		EmailDomain: "packwise.example.com",
	}, nil)
	suite.mockCompanyRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.companyService.Update(id, &service.UpdateCompanyRequest{Name: "Packwise AB"})

	suite.Require().NoError(err)
	suite.Equal("Packwise AB", resp.Name)
	suite.Equal("packwise.example.com", resp.EmailDomain)
}

func (suite *CompanyServiceTestSuite) TestDeleteCompanyNotFound() {
	id := uuid.New()
	suite.mockCompanyRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.companyService.Delete(id), apperrors.ErrCompanyNotFound)
}

func (suite *CompanyServiceTestSuite) TestGetRelated() {
	id := uuid.New()
	suite.mockCompanyRepo.EXPECT().GetByID(id).Return(&models.CompanyProfile{BaseModel: models.BaseModel{ID: id}}, nil)
	suite.mockResolver.EXPECT().RelatedCompanyProfiles(id).Return([]models.CompanyProfile{
		{Name: "Frostline BV"},
		{Name: "Packwise AB"},
	}, nil)

	related, err := suite.companyService.GetRelated(id)

	suite.Require().NoError(err)
	suite.Len(related, 2)
	suite.Equal("Frostline BV", related[0].Name)
}

func TestCompanyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}
