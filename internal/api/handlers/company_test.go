package handlers_test

import (
	"net/http"
	"testing"

	"xgrowth-backend/internal/api/handlers"
	"xgrowth-backend/internal/auth"
	"xgrowth-backend/internal/database/models"
	apperrors "xgrowth-backend/internal/errors"
	"xgrowth-backend/internal/mocks"
	"xgrowth-backend/internal/service"
	"xgrowth-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CompanyHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCompanies *mocks.MockCompanyServiceInterface
	mockRelations *mocks.MockCompanyRelationServiceInterface
	principal     auth.Principal
	httpSuite     *testutils.HTTPTestSuite
}

func (suite *CompanyHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCompanies = mocks.NewMockCompanyServiceInterface(suite.ctrl)
	suite.mockRelations = mocks.NewMockCompanyRelationServiceInterface(suite.ctrl)
	suite.principal = auth.Principal{
		UserID:         uuid.New(),
		Role:           models.RoleStandard,
		CompanyID:      uuid.New(),
		OrganizationID: uuid.New(),
	}

	companies := handlers.NewCompanyHandler(suite.mockCompanies, suite.mockRelations)
	relations := handlers.NewCompanyRelationHandler(suite.mockRelations)

	suite.httpSuite = testutils.SetupHTTPTestAs(suite.principal)
	r := suite.httpSuite.Router
	r.POST("/companies", companies.CreateCompany)
	r.GET("/companies/by-domain/:domain", companies.GetCompanyByDomain)
	r.GET("/companies/:id", companies.GetCompany)
	r.DELETE("/companies/:id", companies.DeleteCompany)
	r.GET("/companies/:id/related", companies.GetRelatedCompanies)
	r.GET("/companies/:id/relations", companies.GetCompanyRelations)
	r.POST("/company-relations", relations.ConnectCompanies)
	r.PUT("/company-relations/:id/disable", relations.DisableRelation)
	r.PUT("/company-relations/:id/enable", relations.EnableRelation)
	r.DELETE("/company-relations/:id", relations.DeleteRelation)
}

func (suite *CompanyHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CompanyHandlerTestSuite) TestCreateCompany() {
	orgID := uuid.New()
	suite.mockCompanies.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(req *service.CreateCompanyRequest) (*service.CompanyResponse, error) {
			assert.Equal(suite.T(), orgID, req.OrganizationID)
			return &service.CompanyResponse{ID: uuid.New(), Name: req.Name, OrganizationID: orgID, EmailDomain: "acme.com"}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/companies", map[string]interface{}{
		"name":            "Acme EU",
		"organization_id": orgID,
		"email_domain":    "ACME.com",
	})

	var response service.CompanyResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), "acme.com", response.EmailDomain)
}

func (suite *CompanyHandlerTestSuite) TestCreateCompanyInvalidBody() {
	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/companies", nil, map[string]string{"Content-Type": "application/json"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

func (suite *CompanyHandlerTestSuite) TestGetCompanyByDomainNotFound() {
	suite.mockCompanies.EXPECT().
		GetByEmailDomain("unknown.io").
		Return(nil, apperrors.ErrCompanyNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/companies/by-domain/unknown.io", nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func (suite *CompanyHandlerTestSuite) TestGetRelatedCompanies() {
	companyID := uuid.New()
	suite.mockCompanies.EXPECT().
		GetRelated(companyID).
		Return([]service.CompanyResponse{{ID: uuid.New(), Name: "Partner"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/companies/"+companyID.String()+"/related", nil)

	var response []service.CompanyResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response, 1)
}

func (suite *CompanyHandlerTestSuite) TestGetCompanyRelations() {
	companyID := uuid.New()
	suite.mockRelations.EXPECT().
		ListByCompany(companyID).
		Return([]models.CompanyRelation{{CompanyAID: companyID, CompanyBID: uuid.New(), Disabled: true}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/companies/"+companyID.String()+"/relations", nil)

	var response []models.CompanyRelation
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.True(suite.T(), response[0].Disabled)
}

func (suite *CompanyHandlerTestSuite) TestDeleteCompany() {
	companyID := uuid.New()
	suite.mockCompanies.EXPECT().Delete(companyID).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/companies/"+companyID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *CompanyHandlerTestSuite) TestConnectCompanies() {
	a, b := uuid.New(), uuid.New()
	suite.mockRelations.EXPECT().
		Connect(gomock.Any(), suite.principal, &service.ConnectCompaniesRequest{CompanyAID: a, CompanyBID: b}).
		Return(&models.CompanyRelation{CompanyAID: a, CompanyBID: b}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/company-relations", map[string]interface{}{
		"company_a_id": a,
		"company_b_id": b,
	})

	var response models.CompanyRelation
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), a, response.CompanyAID)
}

func (suite *CompanyHandlerTestSuite) TestConnectCompaniesErrors() {
	a, b := uuid.New(), uuid.New()
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"self relation", apperrors.ErrSelfRelation, http.StatusBadRequest},
		{"duplicate", apperrors.ErrRelationExists, http.StatusConflict},
		{"not a member", apperrors.ErrNotRelationMember, http.StatusForbidden},
		{"missing company", apperrors.ErrCompanyNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.mockRelations.EXPECT().Connect(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/company-relations", map[string]interface{}{
				"company_a_id": a,
				"company_b_id": b,
			})

			assert.Equal(suite.T(), tc.status, recorder.Code)
		})
	}
}

func (suite *CompanyHandlerTestSuite) TestDisableAndEnableRelation() {
	id := uuid.New()
	suite.mockRelations.EXPECT().Disable(suite.principal, id).Return(nil)
	suite.mockRelations.EXPECT().Enable(suite.principal, id).Return(apperrors.ErrRelationNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/company-relations/"+id.String()+"/disable", nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)

	recorder = suite.httpSuite.MakeRequest(http.MethodPut, "/company-relations/"+id.String()+"/enable", nil)
	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func (suite *CompanyHandlerTestSuite) TestDeleteRelationInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/company-relations/xyz", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid relation ID")
}

func TestCompanyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyHandlerTestSuite))
}
