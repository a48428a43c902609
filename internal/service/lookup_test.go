package service_test

import (
	"testing"

	"xgrowth-backend/internal/auth"
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

type LookupServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockLookupRepo *mocks.MockLookupValueRepositoryInterface
	lookupService  *service.LookupService
}

func (suite *LookupServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLookupRepo = mocks.NewMockLookupValueRepositoryInterface(suite.ctrl)
	suite.lookupService = service.NewLookupService(suite.mockLookupRepo, validator.New())
}

func (suite *LookupServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LookupServiceTestSuite) TestCreate() {
	suite.mockLookupRepo.EXPECT().GetByKindAndName(models.LookupKindSkill, "Packaging Design").Return(nil, gorm.ErrRecordNotFound)
	suite.mockLookupRepo.EXPECT().Create(gomock.Any()).Return(nil)

	value, err := suite.lookupService.Create(&service.CreateLookupValueRequest{Kind: "skill", Name: "Packaging Design"})

	suite.Require().NoError(err)
	suite.Equal(models.LookupKindSkill, value.Kind)
}

func (suite *LookupServiceTestSuite) TestCreateUnknownKind() {
	value, err := suite.lookupService.Create(&service.CreateLookupValueRequest{Kind: "planet", Name: "Mars"})

	suite.ErrorIs(err, apperrors.ErrInvalidLookupKind)
	suite.Nil(value)
}

func (suite *LookupServiceTestSuite) TestCreateSameNameOtherKindAllowed() {
	suite.mockLookupRepo.EXPECT().GetByKindAndName(models.LookupKindDepartment, "Sales").Return(nil, gorm.ErrRecordNotFound)
	suite.mockLookupRepo.EXPECT().Create(gomock.Any()).Return(nil)

	_, err := suite.lookupService.Create(&service.CreateLookupValueRequest{Kind: "department", Name: "Sales"})

	suite.NoError(err)
}

func (suite *LookupServiceTestSuite) TestGetByKind() {
	suite.mockLookupRepo.EXPECT().GetByKind(models.LookupKindRegion).Return([]models.LookupValue{{Name: "Nordics"}}, nil)

	values, err := suite.lookupService.GetByKind("region")

	suite.Require().NoError(err)
	suite.Len(values, 1)
}

func (suite *LookupServiceTestSuite) TestGetByKindUnknown() {
	values, err := suite.lookupService.GetByKind("galaxy")

	suite.ErrorIs(err, apperrors.ErrInvalidLookupKind)
	suite.Nil(values)
}

func (suite *LookupServiceTestSuite) TestRename() {
	id := uuid.New()
	principal := auth.Principal{UserID: uuid.New()}
	value := &models.LookupValue{BaseModel: models.BaseModel{ID: id}, Kind: models.LookupKindJobTitle, Name: "Buyer"}

	suite.mockLookupRepo.EXPECT().GetByID(id).Return(value, nil)
	suite.mockLookupRepo.EXPECT().GetByKindAndName(models.LookupKindJobTitle, "Procurement Manager").Return(nil, gorm.ErrRecordNotFound)
	suite.mockLookupRepo.EXPECT().Rename(value, "Procurement Manager", principal.UserID.String()).Return(nil)

	renamed, err := suite.lookupService.Rename(principal, id, &service.RenameLookupValueRequest{Name: "Procurement Manager"})

	suite.Require().NoError(err)
	suite.Equal("Procurement Manager", renamed.Name)
	suite.Equal(principal.UserID.String(), renamed.UpdatedBy)
}

func (suite *LookupServiceTestSuite) TestRenameUnchangedIsNoop() {
	id := uuid.New()
	suite.mockLookupRepo.EXPECT().GetByID(id).Return(&models.LookupValue{Kind: models.LookupKindCity, Name: "Madrid"}, nil)

	value, err := suite.lookupService.Rename(auth.Principal{}, id, &service.RenameLookupValueRequest{Name: "Madrid"})

	suite.Require().NoError(err)
	suite.Equal("Madrid", value.Name)
}

func (suite *LookupServiceTestSuite) TestRenameCollision() {
	id := uuid.New()
	suite.mockLookupRepo.EXPECT().GetByID(id).Return(&models.LookupValue{Kind: models.LookupKindCity, Name: "Madrid"}, nil)
	suite.mockLookupRepo.EXPECT().GetByKindAndName(models.LookupKindCity, "Hamburg").Return(&models.LookupValue{}, nil)

	value, err := suite.lookupService.Rename(auth.Principal{}, id, &service.RenameLookupValueRequest{Name: "Hamburg"})

	suite.ErrorIs(err, apperrors.ErrLookupValueExists)
	suite.Nil(value)
}

func TestLookupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LookupServiceTestSuite))
}
