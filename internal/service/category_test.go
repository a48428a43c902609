package service_test

import (
	"errors"
	"testing"

	"xgrowth-backend/internal/database/models"
	apperrors "xgrowth-backend/internal/errors"
	"xgrowth-backend/internal/mocks"
	"xgrowth-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockCategoryRepo *mocks.MockCategoryRepositoryInterface
	categoryService  *service.CategoryService
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCategoryRepo = mocks.NewMockCategoryRepositoryInterface(suite.ctrl)
	suite.categoryService = service.NewCategoryService(suite.mockCategoryRepo, validator.New())
}

func (suite *CategoryServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CategoryServiceTestSuite) TestCreate() {
	suite.mockCategoryRepo.EXPECT().GetByName("Packaging").Return(nil, gorm.ErrRecordNotFound)
	suite.mockCategoryRepo.EXPECT().Create(gomock.Any()).Return(nil)

	category, err := suite.categoryService.Create(&service.CreateCategoryRequest{Name: "Packaging"})

	suite.Require().NoError(err)
	suite.Equal("Packaging", category.Name)
}

func (suite *CategoryServiceTestSuite) TestCreateDuplicate() {
	suite.mockCategoryRepo.EXPECT().GetByName("Packaging").Return(&models.Category{Name: "Packaging"}, nil)

	category, err := suite.categoryService.Create(&service.CreateCategoryRequest{Name: "Packaging"})

	suite.ErrorIs(err, apperrors.ErrCategoryExists)
	suite.Nil(category)
}

func (suite *CategoryServiceTestSuite) TestCreateRepositoryError() {
	suite.mockCategoryRepo.EXPECT().GetByName("Packaging").Return(nil, errors.New("db down"))

	category, err := suite.categoryService.Create(&service.CreateCategoryRequest{Name: "Packaging"})

	suite.Error(err)
	suite.Nil(category)
}

func (suite *CategoryServiceTestSuite) TestUpdateSameNameSkipsUniquenessCheck() {
	id := uuid.New()
	suite.mockCategoryRepo.EXPECT().GetByID(id).Return(&models.Category{BaseModel: models.BaseModel{ID: id}, Name: "Packaging"}, nil)
	suite.mockCategoryRepo.EXPECT().Update(gomock.Any()).Return(nil)

	category, err := suite.categoryService.Update(id, &service.UpdateCategoryRequest{Name: "Packaging", Description: "Boxes"})

	suite.Require().NoError(err)
	suite.Equal("Boxes", category.Description)
}

func (suite *CategoryServiceTestSuite) TestUpdateToTakenName() {
	id := uuid.New()
	suite.mockCategoryRepo.EXPECT().GetByID(id).Return(&models.Category{BaseModel: models.BaseModel{ID: id}, Name: "Packaging"}, nil)
	suite.mockCategoryRepo.EXPECT().GetByName("Logistics").Return(&models.Category{Name: "Logistics"}, nil)

	category, err := suite.categoryService.Update(id, &service.UpdateCategoryRequest{Name: "Logistics"})

	suite.ErrorIs(err, apperrors.ErrCategoryExists)
	suite.Nil(category)
}

func (suite *CategoryServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()
	suite.mockCategoryRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.categoryService.Delete(id), apperrors.ErrCategoryNotFound)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func TestOrganizationTypeService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrganizationTypeRepositoryInterface(ctrl)
	svc := service.NewOrganizationTypeService(repo, validator.New())

	t.Run("create keeps capability flag", func(t *testing.T) {
		repo.EXPECT().GetByName("CPG Industry").Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().Create(gomock.Any()).Return(nil)

		orgType, err := svc.Create(&service.CreateOrganizationTypeRequest{Name: "CPG Industry", SeesAllPotentialClients: true})

		assert.NoError(t, err)
		assert.True(t, orgType.SeesAllPotentialClients)
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo.EXPECT().GetByName("Supplier").Return(&models.OrganizationType{}, nil)

		_, err := svc.Create(&service.CreateOrganizationTypeRequest{Name: "Supplier"})

		assert.ErrorIs(t, err, apperrors.ErrOrganizationTypeExists)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(id)

		assert.ErrorIs(t, err, apperrors.ErrOrganizationTypeNotFound)
	})
}
