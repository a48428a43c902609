package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"xgrowth-backend/internal/auth"
	"xgrowth-backend/internal/database/models"
	apperrors "xgrowth-backend/internal/errors"
	"xgrowth-backend/internal/events"
	"xgrowth-backend/internal/mocks"
	"xgrowth-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type CompanyRelationServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRelationRepo *mocks.MockCompanyRelationRepositoryInterface
	mockCompanyRepo  *mocks.MockCompanyRepositoryInterface
	mockPublisher    *mocks.MockPublisher
	relationService  *service.CompanyRelationService

	orgID     uuid.UUID
	mine      models.CompanyProfile
	theirs    models.CompanyProfile
	principal auth.Principal
}

func (suite *CompanyRelationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRelationRepo = mocks.NewMockCompanyRelationRepositoryInterface(suite.ctrl)
	suite.mockCompanyRepo = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.mockPublisher = mocks.NewMockPublisher(suite.ctrl)
	suite.relationService = service.NewCompanyRelationService(suite.mockRelationRepo, suite.mockCompanyRepo, suite.mockPublisher, validator.New())

	suite.orgID = uuid.New()
	suite.mine = models.CompanyProfile{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: suite.orgID}
	suite.theirs = models.CompanyProfile{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: uuid.New()}
	suite.principal = auth.Principal{UserID: uuid.New(), Role: models.RoleStandard, CompanyID: suite.mine.ID, OrganizationID: suite.orgID}
}

func (suite *CompanyRelationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CompanyRelationServiceTestSuite) expectCompanies() {
	suite.mockCompanyRepo.EXPECT().GetByID(suite.mine.ID).Return(&suite.mine, nil).AnyTimes()
	suite.mockCompanyRepo.EXPECT().GetByID(suite.theirs.ID).Return(&suite.theirs, nil).AnyTimes()
}

func (suite *CompanyRelationServiceTestSuite) TestConnect() {
	ctx := context.Background()
	suite.expectCompanies()
	suite.mockRelationRepo.EXPECT().FindBetween(suite.theirs.ID, suite.mine.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockRelationRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.CompanyRelation) error {
		r.ID = uuid.New()
		return nil
	})
	suite.mockPublisher.EXPECT().
		Publish(ctx, events.SubjectRelationCreated, gomock.AssignableToTypeOf(events.RelationCreated{})).
		Return(nil)

	relation, err := suite.relationService.Connect(ctx, suite.principal, &service.ConnectCompaniesRequest{
		CompanyAID: suite.theirs.ID,
		CompanyBID: suite.mine.ID,
	})

	suite.Require().NoError(err)
	suite.Equal(suite.theirs.ID, relation.CompanyAID)
	suite.Equal(suite.mine.ID, relation.CompanyBID)
	suite.False(relation.Disabled)
	suite.Equal(suite.principal.UserID.String(), relation.CreatedBy)
}

func (suite *CompanyRelationServiceTestSuite) TestConnectPublishFailureIsNotFatal() {
	suite.expectCompanies()
	suite.mockRelationRepo.EXPECT().FindBetween(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.mockRelationRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("circuit open"))

	relation, err := suite.relationService.Connect(context.Background(), suite.principal, &service.ConnectCompaniesRequest{
		CompanyAID: suite.mine.ID,
		CompanyBID: suite.theirs.ID,
	})

	suite.NoError(err)
	suite.NotNil(relation)
}

func (suite *CompanyRelationServiceTestSuite) TestConnectExistingInEitherOrder() {
	suite.expectCompanies()
	// stored as (theirs, mine); request arrives as (mine, theirs)
	suite.mockRelationRepo.EXPECT().FindBetween(suite.mine.ID, suite.theirs.ID).Return(&models.CompanyRelation{
		CompanyAID: suite.theirs.ID,
		CompanyBID: suite.mine.ID,
		Disabled:   true,
	}, nil)

	relation, err := suite.relationService.Connect(context.Background(), suite.principal, &service.ConnectCompaniesRequest{
		CompanyAID: suite.mine.ID,
		CompanyBID: suite.theirs.ID,
	})

	suite.ErrorIs(err, apperrors.ErrRelationExists)
	suite.Nil(relation)
}

func (suite *CompanyRelationServiceTestSuite) TestConnectLosesRaceToReversedPair() {
	suite.expectCompanies()
	suite.mockRelationRepo.EXPECT().FindBetween(suite.mine.ID, suite.theirs.ID).Return(nil, gorm.ErrRecordNotFound)
	// the reversed row landed between the check and the insert
	suite.mockRelationRepo.EXPECT().Create(gomock.Any()).
		Return(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_company_relations_unordered_pair"}))

	relation, err := suite.relationService.Connect(context.Background(), suite.principal, &service.ConnectCompaniesRequest{
		CompanyAID: suite.mine.ID,
		CompanyBID: suite.theirs.ID,
	})

	suite.ErrorIs(err, apperrors.ErrRelationExists)
	suite.Nil(relation)
}

func (suite *CompanyRelationServiceTestSuite) TestConnectSelf() {
	relation, err := suite.relationService.Connect(context.Background(), suite.principal, &service.ConnectCompaniesRequest{
		CompanyAID: suite.mine.ID,
		CompanyBID: suite.mine.ID,
	})

	suite.ErrorIs(err, apperrors.ErrSelfRelation)
	suite.Nil(relation)
}

func (suite *CompanyRelationServiceTestSuite) TestConnectUnknownCompany() {
	missing := uuid.New()
	suite.expectCompanies()
	suite.mockCompanyRepo.EXPECT().GetByID(missing).Return(nil, gorm.ErrRecordNotFound)

	relation, err := suite.relationService.Connect(context.Background(), suite.principal, &service.ConnectCompaniesRequest{
		CompanyAID: suite.mine.ID,
		CompanyBID: missing,
	})

	suite.ErrorIs(err, apperrors.ErrCompanyNotFound)
	suite.Nil(relation)
}

func (suite *CompanyRelationServiceTestSuite) TestConnectOutsiderForbidden() {
	other := models.CompanyProfile{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: uuid.New()}
	suite.expectCompanies()
	suite.mockCompanyRepo.EXPECT().GetByID(other.ID).Return(&other, nil)

	relation, err := suite.relationService.Connect(context.Background(), suite.principal, &service.ConnectCompaniesRequest{
		CompanyAID: suite.theirs.ID,
		CompanyBID: other.ID,
	})

	suite.ErrorIs(err, apperrors.ErrNotRelationMember)
	suite.Nil(relation)
}

func (suite *CompanyRelationServiceTestSuite) TestConnectAdminMayRelateAnyCompanies() {
	other := models.CompanyProfile{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: uuid.New()}
	suite.principal.Role = models.RoleAdmin
	suite.expectCompanies()
	suite.mockCompanyRepo.EXPECT().GetByID(other.ID).Return(&other, nil)
	suite.mockRelationRepo.EXPECT().FindBetween(suite.theirs.ID, other.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockRelationRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := suite.relationService.Connect(context.Background(), suite.principal, &service.ConnectCompaniesRequest{
		CompanyAID: suite.theirs.ID,
		CompanyBID: other.ID,
	})

	suite.NoError(err)
}

func (suite *CompanyRelationServiceTestSuite) TestDisableByMember() {
	id := uuid.New()
	suite.expectCompanies()
	suite.mockRelationRepo.EXPECT().GetByID(id).Return(&models.CompanyRelation{
		BaseModel:  models.BaseModel{ID: id},
		CompanyAID: suite.theirs.ID,
		CompanyBID: suite.mine.ID,
	}, nil)
	suite.mockRelationRepo.EXPECT().SetDisabled(id, true, suite.principal.UserID.String()).Return(nil)

	suite.NoError(suite.relationService.Disable(suite.principal, id))
}

func (suite *CompanyRelationServiceTestSuite) TestEnableByOutsiderForbidden() {
	id := uuid.New()
	other := models.CompanyProfile{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: uuid.New()}
	suite.expectCompanies()
	suite.mockCompanyRepo.EXPECT().GetByID(other.ID).Return(&other, nil)
	suite.mockRelationRepo.EXPECT().GetByID(id).Return(&models.CompanyRelation{
		BaseModel:  models.BaseModel{ID: id},
		CompanyAID: suite.theirs.ID,
		CompanyBID: other.ID,
	}, nil)

	suite.ErrorIs(suite.relationService.Enable(suite.principal, id), apperrors.ErrNotRelationMember)
}

func (suite *CompanyRelationServiceTestSuite) TestDisableNotFound() {
	id := uuid.New()
	suite.mockRelationRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.relationService.Disable(suite.principal, id), apperrors.ErrRelationNotFound)
}

func (suite *CompanyRelationServiceTestSuite) TestDelete() {
	id := uuid.New()
	suite.mockRelationRepo.EXPECT().GetByID(id).Return(&models.CompanyRelation{BaseModel: models.BaseModel{ID: id}}, nil)
	suite.mockRelationRepo.EXPECT().Delete(id).Return(nil)

	suite.NoError(suite.relationService.Delete(id))
}

func (suite *CompanyRelationServiceTestSuite) TestListByCompanyIncludesDisabled() {
	suite.expectCompanies()
	suite.mockRelationRepo.EXPECT().ListByCompany(suite.mine.ID).Return([]models.CompanyRelation{
		{CompanyAID: suite.mine.ID, CompanyBID: suite.theirs.ID, Disabled: true},
	}, nil)

	relations, err := suite.relationService.ListByCompany(suite.mine.ID)

	suite.Require().NoError(err)
	suite.Len(relations, 1)
	suite.True(relations[0].Disabled)
}

func TestCompanyRelationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyRelationServiceTestSuite))
}
