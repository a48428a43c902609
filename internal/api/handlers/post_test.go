package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"xgrowth-backend/internal/api/handlers"
	"xgrowth-backend/internal/auth"
	"xgrowth-backend/internal/database/models"
	apperrors "xgrowth-backend/internal/errors"
	"xgrowth-backend/internal/mocks"
	"xgrowth-backend/internal/query"
	"xgrowth-backend/internal/service"
	"xgrowth-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PostHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockPosts *mocks.MockPostServiceInterface
	handler   *handlers.PostHandler
	principal auth.Principal
	httpSuite *testutils.HTTPTestSuite
}

func (suite *PostHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPosts = mocks.NewMockPostServiceInterface(suite.ctrl)
	suite.handler = handlers.NewPostHandler(suite.mockPosts)
	suite.principal = auth.Principal{
		UserID:         uuid.New(),
		Role:           models.RoleStandard,
		CompanyID:      uuid.New(),
		OrganizationID: uuid.New(),
	}
	suite.httpSuite = testutils.SetupHTTPTestAs(suite.principal)
	suite.registerRoutes(suite.httpSuite.Router)
}

func (suite *PostHandlerTestSuite) registerRoutes(r *gin.Engine) {
	r.GET("/posts", suite.handler.GetFeed)
	r.POST("/posts", suite.handler.CreatePost)
	r.GET("/posts/:id", suite.handler.GetPostDetail)
	r.PUT("/posts/:id", suite.handler.UpdatePost)
	r.DELETE("/posts/:id", suite.handler.DeletePost)
	r.POST("/posts/:id/ratings", suite.handler.RatePost)
	r.POST("/posts/:id/pin", suite.handler.PinPost)
	r.DELETE("/posts/:id/pin", suite.handler.UnpinPost)
}

func (suite *PostHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PostHandlerTestSuite) TestGetFeedPassesFilters() {
	categoryID, supplierID := uuid.New(), uuid.New()
	suite.mockPosts.EXPECT().
		Feed(suite.principal, service.FeedParams{
			Page:       3,
			PageSize:   10,
			Search:     "packaging",
			CategoryID: categoryID,
			SupplierID: supplierID,
		}).
		Return(&service.ListResponse[models.Post]{Items: []models.Post{{Title: "Eco packaging"}}, Total: 21, Page: 3, PageSize: 10}, nil)

	url := "/posts?search=packaging&category_id=" + categoryID.String() + "&supplier_id=" + supplierID.String() + "&page=3&page_size=10"
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, url, nil)

	var response service.ListResponse[models.Post]
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), int64(21), response.Total)
	assert.Equal(suite.T(), "Eco packaging", response.Items[0].Title)
}

func (suite *PostHandlerTestSuite) TestGetFeedInvalidCategory() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/posts?category_id=abc", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid category_id")
}

func (suite *PostHandlerTestSuite) TestGetFeedUnknownOrganizationFailsClosed() {
	suite.mockPosts.EXPECT().Feed(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrOrganizationNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/posts", nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func (suite *PostHandlerTestSuite) TestGetFeedRequiresPrincipal() {
	anonymous := testutils.SetupHTTPTest()
	suite.registerRoutes(anonymous.Router)

	recorder := anonymous.MakeRequest(http.MethodGet, "/posts", nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

func (suite *PostHandlerTestSuite) TestCreatePost() {
	suite.mockPosts.EXPECT().
		Create(gomock.Any(), suite.principal, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ auth.Principal, req *service.CreatePostRequest) (*models.Post, error) {
			assert.Equal(suite.T(), "Selected Companies", req.Privacy)
			assert.Len(suite.T(), req.RecipientCompanyIDs, 1)
			return &models.Post{Title: req.Title, Privacy: models.PrivacySelectedCompanies}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/posts", map[string]interface{}{
		"title":                 "Cold chain audit",
		"privacy":               "Selected Companies",
		"recipient_company_ids": []string{uuid.NewString()},
	})

	var response models.Post
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), "Cold chain audit", response.Title)
}

func (suite *PostHandlerTestSuite) TestCreatePostWithoutOrganization() {
	suite.mockPosts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUserHasNoOrganization)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/posts", map[string]interface{}{
		"title":   "Orphan",
		"privacy": "Public",
	})

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

func (suite *PostHandlerTestSuite) TestGetPostDetail() {
	postID := uuid.New()
	suite.mockPosts.EXPECT().
		GetDetail(gomock.Any(), suite.principal, postID).
		Return(query.Document{"id": postID.String(), "title": "Detail", "rating_count": 2}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/posts/"+postID.String(), nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "Detail", response["title"])
	assert.Equal(suite.T(), float64(2), response["rating_count"])
}

func (suite *PostHandlerTestSuite) TestGetPostDetailHiddenIsNotFound() {
	postID := uuid.New()
	suite.mockPosts.EXPECT().GetDetail(gomock.Any(), gomock.Any(), postID).Return(nil, apperrors.ErrPostNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/posts/"+postID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func (suite *PostHandlerTestSuite) TestUpdatePostNotOwner() {
	postID := uuid.New()
	suite.mockPosts.EXPECT().Update(suite.principal, postID, gomock.Any()).Return(nil, apperrors.ErrNotPostOwner)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/posts/"+postID.String(), map[string]interface{}{
		"title":   "Hijack",
		"privacy": "Public",
	})

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

func (suite *PostHandlerTestSuite) TestDeletePost() {
	postID := uuid.New()
	suite.mockPosts.EXPECT().Delete(gomock.Any(), suite.principal, postID).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/posts/"+postID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *PostHandlerTestSuite) TestRatePost() {
	postID := uuid.New()
	suite.mockPosts.EXPECT().
		Rate(gomock.Any(), suite.principal, postID, &service.RatePostRequest{Score: 4, Comment: "solid"}).
		Return(&models.PostRating{PostID: postID, Score: 4}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/posts/"+postID.String()+"/ratings", map[string]interface{}{
		"score":   4,
		"comment": "solid",
	})

	var response models.PostRating
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), 4, response.Score)
}

func (suite *PostHandlerTestSuite) TestRatePostTwice() {
	postID := uuid.New()
	suite.mockPosts.EXPECT().Rate(gomock.Any(), gomock.Any(), postID, gomock.Any()).Return(nil, apperrors.ErrAlreadyRated)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/posts/"+postID.String()+"/ratings", map[string]interface{}{
		"score": 5,
	})

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

func (suite *PostHandlerTestSuite) TestPinAndUnpin() {
	postID := uuid.New()
	suite.mockPosts.EXPECT().Pin(gomock.Any(), suite.principal, postID).Return(nil)
	suite.mockPosts.EXPECT().Unpin(gomock.Any(), suite.principal, postID).Return(apperrors.ErrPinNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/posts/"+postID.String()+"/pin", nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)

	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/posts/"+postID.String()+"/pin", nil)
	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func TestPostHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PostHandlerTestSuite))
}
