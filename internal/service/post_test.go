package service_test

import (
	"context"
	"errors"
	"testing"

	"xgrowth-backend/internal/aggregation"
	"xgrowth-backend/internal/auth"
	"xgrowth-backend/internal/database/models"
	apperrors "xgrowth-backend/internal/errors"
	"xgrowth-backend/internal/events"
	"xgrowth-backend/internal/mocks"
	"xgrowth-backend/internal/query"
	"xgrowth-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type PostServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockPosts      *mocks.MockPostRepositoryInterface
	mockRatings    *mocks.MockPostRatingRepositoryInterface
	mockPins       *mocks.MockPostPinRepositoryInterface
	mockBriefs     *mocks.MockBriefRepositoryInterface
	mockCompanies  *mocks.MockCompanyRepositoryInterface
	mockAggregates *mocks.MockAggregateRepositoryInterface
	mockOrgs       *mocks.MockOrganizationServiceInterface
	mockVisibility *mocks.MockVisibilityFilterBuilderInterface
	mockPublisher  *mocks.MockPublisher
	postService    *service.PostService

	ctx       context.Context
	principal auth.Principal
}

func (suite *PostServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPosts = mocks.NewMockPostRepositoryInterface(suite.ctrl)
	suite.mockRatings = mocks.NewMockPostRatingRepositoryInterface(suite.ctrl)
	suite.mockPins = mocks.NewMockPostPinRepositoryInterface(suite.ctrl)
	suite.mockBriefs = mocks.NewMockBriefRepositoryInterface(suite.ctrl)
	suite.mockCompanies = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.mockAggregates = mocks.NewMockAggregateRepositoryInterface(suite.ctrl)
	suite.mockOrgs = mocks.NewMockOrganizationServiceInterface(suite.ctrl)
	suite.mockVisibility = mocks.NewMockVisibilityFilterBuilderInterface(suite.ctrl)
	suite.mockPublisher = mocks.NewMockPublisher(suite.ctrl)

	suite.postService = service.NewPostService(service.PostServiceDeps{
		Posts:         suite.mockPosts,
		Ratings:       suite.mockRatings,
		Pins:          suite.mockPins,
		Briefs:        suite.mockBriefs,
		Companies:     suite.mockCompanies,
		Aggregates:    suite.mockAggregates,
		Organizations: suite.mockOrgs,
		Visibility:    suite.mockVisibility,
		Publisher:     suite.mockPublisher,
	}, validator.New())

	suite.ctx = context.Background()
	suite.principal = auth.Principal{
		UserID:         uuid.New(),
		Role:           models.RoleStandard,
		CompanyID:      uuid.New(),
		OrganizationID: uuid.New(),
	}
}

func (suite *PostServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PostServiceTestSuite) TestCreatePublishesAndCounts() {
	recipient := uuid.New()
	suite.mockPosts.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Post) error {
		suite.Equal(suite.principal.CompanyID, p.SupplierID)
		suite.Equal(suite.principal.UserID, p.CreatedByID)
		suite.Equal(pq.StringArray{recipient.String()}, p.RecipientCompanyIDs)
		p.ID = uuid.New()
		return nil
	})
	suite.mockOrgs.EXPECT().IncrementPostCount(suite.ctx, suite.principal.OrganizationID, 1)
	suite.mockPublisher.EXPECT().
		Publish(suite.ctx, events.SubjectPostPublished, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload any) error {
			event := payload.(events.PostPublished)
			suite.Equal("Selected Companies", event.Privacy)
			suite.Equal([]uuid.UUID{recipient}, event.RecipientCompanyIDs)
			return nil
		})

	post, err := suite.postService.Create(suite.ctx, suite.principal, &service.CreatePostRequest{
		Title:               "Recyclable pouches",
		Privacy:             "Selected Companies",
		RecipientCompanyIDs: []uuid.UUID{recipient},
	})

	suite.Require().NoError(err)
	suite.Equal(models.PrivacySelectedCompanies, post.Privacy)
}

func (suite *PostServiceTestSuite) TestCreateDraftCountsButDoesNotPublish() {
	suite.mockPosts.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockOrgs.EXPECT().IncrementPostCount(suite.ctx, suite.principal.OrganizationID, 1)

	post, err := suite.postService.Create(suite.ctx, suite.principal, &service.CreatePostRequest{
		Title:   "Work in progress",
		Privacy: "Public",
		IsDraft: true,
	})

	suite.Require().NoError(err)
	suite.True(post.IsDraft)
}

func (suite *PostServiceTestSuite) TestCreatePublishFailureIsNotFatal() {
	suite.mockPosts.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockOrgs.EXPECT().IncrementPostCount(gomock.Any(), gomock.Any(), 1)
	suite.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("no responders"))

	_, err := suite.postService.Create(suite.ctx, suite.principal, &service.CreatePostRequest{Title: "Offer", Privacy: "Public"})

	suite.NoError(err)
}

func (suite *PostServiceTestSuite) TestCreateRequiresOrganization() {
	suite.principal.OrganizationID = uuid.Nil

	post, err := suite.postService.Create(suite.ctx, suite.principal, &service.CreatePostRequest{Title: "Offer", Privacy: "Public"})

	suite.ErrorIs(err, apperrors.ErrUserHasNoOrganization)
	suite.Nil(post)
}

func (suite *PostServiceTestSuite) TestCreateInvalidPrivacy() {
	post, err := suite.postService.Create(suite.ctx, suite.principal, &service.CreatePostRequest{Title: "Offer", Privacy: "Friends"})

	suite.ErrorIs(err, apperrors.ErrInvalidPrivacy)
	suite.Nil(post)
}

func (suite *PostServiceTestSuite) TestCreateSelectedCompaniesNeedsRecipients() {
	post, err := suite.postService.Create(suite.ctx, suite.principal, &service.CreatePostRequest{Title: "Offer", Privacy: "Selected Companies"})

	var validationErr *apperrors.ValidationError
	suite.ErrorAs(err, &validationErr)
	suite.Nil(post)
}

func (suite *PostServiceTestSuite) TestCreateAnswerToClosedBrief() {
	briefID := uuid.New()
	suite.mockBriefs.EXPECT().GetByID(briefID).Return(&models.Brief{IsOpen: false}, nil)

	post, err := suite.postService.Create(suite.ctx, suite.principal, &service.CreatePostRequest{
		Title:   "Proposal",
		Privacy: "Public",
		BriefID: &briefID,
	})

	suite.ErrorIs(err, apperrors.ErrBriefClosed)
	suite.Nil(post)
}

func (suite *PostServiceTestSuite) TestCreateAnswerToMissingBrief() {
	briefID := uuid.New()
	suite.mockBriefs.EXPECT().GetByID(briefID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.postService.Create(suite.ctx, suite.principal, &service.CreatePostRequest{
		Title:   "Proposal",
		Privacy: "Public",
		BriefID: &briefID,
	})

	suite.ErrorIs(err, apperrors.ErrBriefNotFound)
}

func (suite *PostServiceTestSuite) TestGetDetailOwnPostSkipsVisibility() {
	id := uuid.New()
	suite.mockPosts.EXPECT().GetByID(id).Return(&models.Post{BaseModel: models.BaseModel{ID: id}, CreatedByID: suite.principal.UserID}, nil)
	suite.mockAggregates.EXPECT().Aggregate(suite.ctx, aggregation.CollectionPosts, gomock.Any()).
		Return([]query.Document{{"id": id.String(), "is_pinned": false}}, nil)

	doc, err := suite.postService.GetDetail(suite.ctx, suite.principal, id)

	suite.Require().NoError(err)
	suite.Equal(id.String(), doc["id"])
}

func (suite *PostServiceTestSuite) TestGetDetailVisible() {
	id := uuid.New()
	filter := query.And{query.Eq{Field: "id", Value: id.String()}}
	suite.mockPosts.EXPECT().GetByID(id).Return(&models.Post{BaseModel: models.BaseModel{ID: id}, CreatedByID: uuid.New()}, nil)
	suite.mockVisibility.EXPECT().
		Build(suite.principal, gomock.Any()).
		DoAndReturn(func(_ auth.Principal, opts service.VisibilityOptions) (query.Expr, error) {
			suite.True(opts.IncludeBriefPosts)
			suite.Equal(query.Eq{Field: "id", Value: id.String()}, opts.Extra)
			return filter, nil
		})
	suite.mockAggregates.EXPECT().Count(suite.ctx, aggregation.CollectionPosts, filter).Return(int64(1), nil)
	suite.mockAggregates.EXPECT().Aggregate(suite.ctx, aggregation.CollectionPosts, gomock.Any()).
		Return([]query.Document{{"id": id.String()}}, nil)

	doc, err := suite.postService.GetDetail(suite.ctx, suite.principal, id)

	suite.Require().NoError(err)
	suite.NotNil(doc)
}

func (suite *PostServiceTestSuite) TestGetDetailInvisibleIsNotFound() {
	id := uuid.New()
	suite.mockPosts.EXPECT().GetByID(id).Return(&models.Post{BaseModel: models.BaseModel{ID: id}, CreatedByID: uuid.New()}, nil)
	suite.mockVisibility.EXPECT().Build(gomock.Any(), gomock.Any()).Return(query.And{}, nil)
	suite.mockAggregates.EXPECT().Count(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

	doc, err := suite.postService.GetDetail(suite.ctx, suite.principal, id)

	suite.ErrorIs(err, apperrors.ErrPostNotFound)
	suite.Nil(doc)
}

func (suite *PostServiceTestSuite) TestGetDetailAdminIsFilteredLikeFeed() {
	id := uuid.New()
	suite.principal.Role = models.RoleAdmin
	suite.mockPosts.EXPECT().GetByID(id).Return(&models.Post{BaseModel: models.BaseModel{ID: id}, CreatedByID: uuid.New(), IsDraft: true}, nil)
	suite.expectVisible(0)

	doc, err := suite.postService.GetDetail(suite.ctx, suite.principal, id)

	suite.ErrorIs(err, apperrors.ErrPostNotFound)
	suite.Nil(doc)
}

func (suite *PostServiceTestSuite) TestGetDetailVisibilityFailure() {
	id := uuid.New()
	suite.mockPosts.EXPECT().GetByID(id).Return(&models.Post{CreatedByID: uuid.New()}, nil)
	suite.mockVisibility.EXPECT().Build(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrOrganizationNotFound)

	_, err := suite.postService.GetDetail(suite.ctx, suite.principal, id)

	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
}

func (suite *PostServiceTestSuite) TestFeedAppliesFilters() {
	categoryID := uuid.New()
	filter := query.And{}
	suite.mockVisibility.EXPECT().
		Build(suite.principal, gomock.Any()).
		DoAndReturn(func(_ auth.Principal, opts service.VisibilityOptions) (query.Expr, error) {
			suite.False(opts.IncludeBriefPosts)
			suite.Equal(query.And{
				query.Contains{Field: "title", Substring: "pouch"},
				query.Overlaps{Field: "category_ids", Values: []any{categoryID.String()}},
			}, opts.Extra)
			return filter, nil
		})
	suite.mockPosts.EXPECT().List(filter, 20, 0).Return([]models.Post{{Title: "Pouches"}}, int64(1), nil)

	resp, err := suite.postService.Feed(suite.principal, service.FeedParams{Search: "pouch", CategoryID: categoryID})

	suite.Require().NoError(err)
	suite.Equal(int64(1), resp.Total)
	suite.Len(resp.Items, 1)
}

func (suite *PostServiceTestSuite) TestFeedFailsClosed() {
	suite.mockVisibility.EXPECT().Build(gomock.Any(), gomock.Any()).Return(nil, errors.New("resolver down"))

	resp, err := suite.postService.Feed(suite.principal, service.FeedParams{})

	suite.Error(err)
	suite.Nil(resp)
}

func (suite *PostServiceTestSuite) TestUpdateByNonOwner() {
	id := uuid.New()
	suite.mockPosts.EXPECT().GetByID(id).Return(&models.Post{CreatedByID: uuid.New()}, nil)

	post, err := suite.postService.Update(suite.principal, id, &service.UpdatePostRequest{Title: "x", Privacy: "Public"})

	suite.ErrorIs(err, apperrors.ErrNotPostOwner)
	suite.Nil(post)
}

func (suite *PostServiceTestSuite) TestUpdateByAdmin() {
	id := uuid.New()
	suite.principal.Role = models.RoleAdmin
	suite.mockPosts.EXPECT().GetByID(id).Return(&models.Post{BaseModel: models.BaseModel{ID: id}, CreatedByID: uuid.New()}, nil)
	suite.mockPosts.EXPECT().Update(gomock.Any()).Return(nil)

	post, err := suite.postService.Update(suite.principal, id, &service.UpdatePostRequest{Title: "Moderated", Privacy: "My Organization"})

	suite.Require().NoError(err)
	suite.Equal("Moderated", post.Title)
	suite.Equal(suite.principal.UserID.String(), post.UpdatedBy)
}

func (suite *PostServiceTestSuite) TestDeleteDecrementsSupplierOrganization() {
	id, supplierID, supplierOrg := uuid.New(), uuid.New(), uuid.New()
	suite.mockPosts.EXPECT().GetByID(id).Return(&models.Post{
		BaseModel:   models.BaseModel{ID: id},
		CreatedByID: suite.principal.UserID,
		SupplierID:  supplierID,
	}, nil)
	suite.mockPosts.EXPECT().Delete(id).Return(nil)
	suite.mockCompanies.EXPECT().GetByID(supplierID).Return(&models.CompanyProfile{OrganizationID: supplierOrg}, nil)
	suite.mockOrgs.EXPECT().IncrementPostCount(suite.ctx, supplierOrg, -1)

	suite.NoError(suite.postService.Delete(suite.ctx, suite.principal, id))
}

// expectVisible answers the post visibility check with count matching posts.
func (suite *PostServiceTestSuite) expectVisible(count int64) {
	suite.mockVisibility.EXPECT().Build(suite.principal, gomock.Any()).Return(query.And{}, nil)
	suite.mockAggregates.EXPECT().Count(suite.ctx, aggregation.CollectionPosts, gomock.Any()).Return(count, nil)
}

func (suite *PostServiceTestSuite) TestRate() {
	postID := uuid.New()
	suite.mockPosts.EXPECT().GetByID(postID).Return(&models.Post{SupplierID: uuid.New(), CreatedByID: uuid.New()}, nil)
	suite.expectVisible(1)
	suite.mockCompanies.EXPECT().GetByID(gomock.Any()).Return(&models.CompanyProfile{OrganizationID: uuid.New()}, nil)
	suite.mockRatings.EXPECT().GetByPostAndUser(postID, suite.principal.UserID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockRatings.EXPECT().Create(gomock.Any()).Return(nil)

	rating, err := suite.postService.Rate(suite.ctx, suite.principal, postID, &service.RatePostRequest{Score: 4, Comment: "Fast delivery"})

	suite.Require().NoError(err)
	suite.Equal(4, rating.Score)
	suite.Equal(suite.principal.OrganizationID, rating.OrganizationID)
}

func (suite *PostServiceTestSuite) TestRateInvisiblePost() {
	postID := uuid.New()
	// A draft by someone else never passes the visibility filter.
	suite.mockPosts.EXPECT().GetByID(postID).
		Return(&models.Post{SupplierID: uuid.New(), CreatedByID: uuid.New(), IsDraft: true}, nil)
	suite.expectVisible(0)

	rating, err := suite.postService.Rate(suite.ctx, suite.principal, postID, &service.RatePostRequest{Score: 5})

	suite.ErrorIs(err, apperrors.ErrPostNotFound)
	suite.Nil(rating)
}

func (suite *PostServiceTestSuite) TestRateOwnOrganizationPost() {
	postID := uuid.New()
	suite.mockPosts.EXPECT().GetByID(postID).Return(&models.Post{SupplierID: suite.principal.CompanyID, CreatedByID: uuid.New()}, nil)
	suite.expectVisible(1)
	suite.mockCompanies.EXPECT().GetByID(suite.principal.CompanyID).Return(&models.CompanyProfile{OrganizationID: suite.principal.OrganizationID}, nil)

	rating, err := suite.postService.Rate(suite.ctx, suite.principal, postID, &service.RatePostRequest{Score: 5})

	suite.ErrorIs(err, apperrors.ErrCannotRateOwnPost)
	suite.Nil(rating)
}

func (suite *PostServiceTestSuite) TestRateTwice() {
	postID := uuid.New()
	suite.mockPosts.EXPECT().GetByID(postID).Return(&models.Post{SupplierID: uuid.New(), CreatedByID: uuid.New()}, nil)
	suite.expectVisible(1)
	suite.mockCompanies.EXPECT().GetByID(gomock.Any()).Return(&models.CompanyProfile{OrganizationID: uuid.New()}, nil)
	suite.mockRatings.EXPECT().GetByPostAndUser(postID, suite.principal.UserID).Return(&models.PostRating{}, nil)

	_, err := suite.postService.Rate(suite.ctx, suite.principal, postID, &service.RatePostRequest{Score: 3})

	suite.ErrorIs(err, apperrors.ErrAlreadyRated)
}

func (suite *PostServiceTestSuite) TestRateScoreOutOfRange() {
	_, err := suite.postService.Rate(suite.ctx, suite.principal, uuid.New(), &service.RatePostRequest{Score: 9})

	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *PostServiceTestSuite) TestPinAndDuplicate() {
	postID := uuid.New()
	suite.mockPosts.EXPECT().GetByID(postID).Return(&models.Post{CreatedByID: uuid.New()}, nil).Times(2)
	suite.mockVisibility.EXPECT().Build(suite.principal, gomock.Any()).Return(query.And{}, nil).Times(2)
	suite.mockAggregates.EXPECT().Count(suite.ctx, aggregation.CollectionPosts, gomock.Any()).Return(int64(1), nil).Times(2)
	gomock.InOrder(
		suite.mockPins.EXPECT().GetByPostAndUser(postID, suite.principal.UserID).Return(nil, gorm.ErrRecordNotFound),
		suite.mockPins.EXPECT().GetByPostAndUser(postID, suite.principal.UserID).Return(&models.PostPin{}, nil),
	)
	suite.mockPins.EXPECT().Create(gomock.Any()).Return(nil)

	suite.NoError(suite.postService.Pin(suite.ctx, suite.principal, postID))
	suite.ErrorIs(suite.postService.Pin(suite.ctx, suite.principal, postID), apperrors.ErrAlreadyPinned)
}

func (suite *PostServiceTestSuite) TestPinOwnDraft() {
	postID := uuid.New()
	suite.mockPosts.EXPECT().GetByID(postID).Return(&models.Post{CreatedByID: suite.principal.UserID, IsDraft: true}, nil)
	suite.mockPins.EXPECT().GetByPostAndUser(postID, suite.principal.UserID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockPins.EXPECT().Create(gomock.Any()).Return(nil)

	suite.NoError(suite.postService.Pin(suite.ctx, suite.principal, postID))
}

func (suite *PostServiceTestSuite) TestPinInvisiblePost() {
	postID := uuid.New()
	suite.mockPosts.EXPECT().GetByID(postID).Return(&models.Post{CreatedByID: uuid.New(), Privacy: models.PrivacyMyOrganization}, nil)
	suite.expectVisible(0)

	suite.ErrorIs(suite.postService.Pin(suite.ctx, suite.principal, postID), apperrors.ErrPostNotFound)
}

func (suite *PostServiceTestSuite) TestUnpinMissing() {
	postID := uuid.New()
	suite.mockPins.EXPECT().Delete(postID, suite.principal.UserID).Return(gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.postService.Unpin(suite.ctx, suite.principal, postID), apperrors.ErrPinNotFound)
}

func (suite *PostServiceTestSuite) TestListByBriefOwnerOnly() {
	briefID := uuid.New()
	suite.mockBriefs.EXPECT().GetByID(briefID).Return(&models.Brief{CompanyID: uuid.New()}, nil)

	resp, err := suite.postService.ListByBrief(suite.principal, briefID, 1, 20)

	suite.ErrorIs(err, apperrors.ErrNotBriefOwner)
	suite.Nil(resp)
}

func (suite *PostServiceTestSuite) TestListByBrief() {
	briefID := uuid.New()
	suite.mockBriefs.EXPECT().GetByID(briefID).Return(&models.Brief{CompanyID: suite.principal.CompanyID}, nil)
	suite.mockPosts.EXPECT().GetByBriefID(briefID, 20, 0).Return([]models.Post{{Title: "Proposal"}}, int64(1), nil)

	resp, err := suite.postService.ListByBrief(suite.principal, briefID, 0, 0)

	suite.Require().NoError(err)
	suite.Len(resp.Items, 1)
}

func TestPostServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostServiceTestSuite))
}
