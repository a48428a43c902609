package service_test

import (
	"errors"
	"testing"

	"xgrowth-backend/internal/auth"
	"xgrowth-backend/internal/database/models"
	apperrors "xgrowth-backend/internal/errors"
	"xgrowth-backend/internal/mocks"
	"xgrowth-backend/internal/query"
	"xgrowth-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type VisibilityFilterTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockOrgs      *mocks.MockOrganizationRepositoryInterface
	mockOrgTypes  *mocks.MockOrganizationTypeRepositoryInterface
	mockCompanies *mocks.MockCompanyRepositoryInterface
	mockResolver  *mocks.MockRelationshipResolverInterface
	builder       *service.VisibilityFilterBuilder

	orgID     uuid.UUID
	companyID uuid.UUID
	sibling   uuid.UUID
	related   uuid.UUID
	stranger  uuid.UUID
	principal auth.Principal
}

func (suite *VisibilityFilterTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockOrgTypes = mocks.NewMockOrganizationTypeRepositoryInterface(suite.ctrl)
	suite.mockCompanies = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.mockResolver = mocks.NewMockRelationshipResolverInterface(suite.ctrl)
	suite.builder = service.NewVisibilityFilterBuilder(suite.mockOrgs, suite.mockOrgTypes, suite.mockCompanies, suite.mockResolver)

	suite.orgID = uuid.New()
	suite.companyID = uuid.New()
	suite.sibling = uuid.New()
	suite.related = uuid.New()
	suite.stranger = uuid.New()
	suite.principal = auth.Principal{
		UserID:         uuid.New(),
		Role:           models.RoleStandard,
		CompanyID:      suite.companyID,
		OrganizationID: suite.orgID,
	}
}

func (suite *VisibilityFilterTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectViewer sets up an organization with two companies; typeID may be nil
func (suite *VisibilityFilterTestSuite) expectViewer(typeID *uuid.UUID) {
	suite.mockOrgs.EXPECT().GetByID(suite.orgID).Return(&models.Organization{
		BaseModel:          models.BaseModel{ID: suite.orgID},
		OrganizationTypeID: typeID,
	}, nil)
	suite.mockCompanies.EXPECT().GetByOrganizationID(suite.orgID).Return([]models.CompanyProfile{
		{BaseModel: models.BaseModel{ID: suite.companyID}, OrganizationID: suite.orgID},
		{BaseModel: models.BaseModel{ID: suite.sibling}, OrganizationID: suite.orgID},
	}, nil)
}

func post(privacy models.Privacy, supplier uuid.UUID, recipients ...uuid.UUID) query.Document {
	ids := make([]any, len(recipients))
	for i, r := range recipients {
		ids[i] = r.String()
	}
	return query.Document{
		"privacy":               string(privacy),
		"supplier_id":           supplier.String(),
		"recipient_company_ids": ids,
		"is_draft":              false,
		"brief_id":              nil,
	}
}

func (suite *VisibilityFilterTestSuite) TestStandardViewer() {
	suite.expectViewer(nil)
	suite.mockResolver.EXPECT().RelatedCompanies(suite.companyID).Return([]uuid.UUID{suite.related}, nil)

	filter, err := suite.builder.Build(suite.principal, service.VisibilityOptions{})
	suite.Require().NoError(err)

	cases := []struct {
		name    string
		doc     query.Document
		visible bool
	}{
		{"public post of a stranger", post(models.PrivacyPublic, suite.stranger), true},
		{"legacy all companies spelling", post(models.PrivacyAllCompanies, suite.stranger), true},
		{"own organization post from sibling", post(models.PrivacyMyOrganization, suite.sibling), true},
		{"another organization's internal post", post(models.PrivacyMyOrganization, suite.stranger), false},
		{"potential clients from related supplier", post(models.PrivacyPotentialClients, suite.related), true},
		{"potential clients from unrelated supplier", post(models.PrivacyPotentialClients, suite.stranger), false},
		{"selected companies naming a sibling", post(models.PrivacySelectedCompanies, suite.stranger, suite.sibling), true},
		{"selected companies naming others", post(models.PrivacySelectedCompanies, suite.stranger, suite.related), false},
		{"own company post of any privacy", post(models.PrivacySelectedCompanies, suite.companyID), true},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.Equal(tc.visible, query.Eval(filter, tc.doc))
		})
	}
}

func (suite *VisibilityFilterTestSuite) TestDraftsAndBriefPostsExcluded() {
	suite.expectViewer(nil)
	suite.mockResolver.EXPECT().RelatedCompanies(suite.companyID).Return(nil, nil)

	filter, err := suite.builder.Build(suite.principal, service.VisibilityOptions{})
	suite.Require().NoError(err)

	draft := post(models.PrivacyPublic, suite.companyID)
	draft["is_draft"] = true
	suite.False(query.Eval(filter, draft))

	answer := post(models.PrivacyPublic, suite.stranger)
	answer["brief_id"] = uuid.NewString()
	suite.False(query.Eval(filter, answer))
}

func (suite *VisibilityFilterTestSuite) TestIncludeBriefPostsAndExtra() {
	suite.expectViewer(nil)
	suite.mockResolver.EXPECT().RelatedCompanies(suite.companyID).Return(nil, nil)

	filter, err := suite.builder.Build(suite.principal, service.VisibilityOptions{
		IncludeBriefPosts: true,
		Extra:             query.Contains{Field: "title", Substring: "packaging"},
	})
	suite.Require().NoError(err)

	answer := post(models.PrivacyPublic, suite.stranger)
	answer["brief_id"] = uuid.NewString()
	answer["title"] = "Recyclable Packaging"
	suite.True(query.Eval(filter, answer))

	answer["title"] = "Freight offer"
	suite.False(query.Eval(filter, answer))
}

func (suite *VisibilityFilterTestSuite) TestCapabilityTypeSeesAllPotentialClients() {
	typeID := uuid.New()
	suite.expectViewer(&typeID)
	suite.mockOrgTypes.EXPECT().GetByID(typeID).Return(&models.OrganizationType{
		BaseModel:               models.BaseModel{ID: typeID},
		Name:                    "CPG Industry",
		SeesAllPotentialClients: true,
	}, nil)
	// no relationship lookup for capability holders

	filter, err := suite.builder.Build(suite.principal, service.VisibilityOptions{})
	suite.Require().NoError(err)

	suite.True(query.Eval(filter, post(models.PrivacyPotentialClients, suite.stranger)))
	suite.False(query.Eval(filter, post(models.PrivacyMyOrganization, suite.stranger)))
}

func (suite *VisibilityFilterTestSuite) TestTypeWithoutCapability() {
	typeID := uuid.New()
	suite.expectViewer(&typeID)
	suite.mockOrgTypes.EXPECT().GetByID(typeID).Return(&models.OrganizationType{
		BaseModel: models.BaseModel{ID: typeID},
		Name:      "CPG Industry",
	}, nil)
	suite.mockResolver.EXPECT().RelatedCompanies(suite.companyID).Return(nil, nil)

	filter, err := suite.builder.Build(suite.principal, service.VisibilityOptions{})
	suite.Require().NoError(err)

	suite.False(query.Eval(filter, post(models.PrivacyPotentialClients, suite.stranger)))
}

func (suite *VisibilityFilterTestSuite) TestDanglingTypeGrantsNothing() {
	typeID := uuid.New()
	suite.expectViewer(&typeID)
	suite.mockOrgTypes.EXPECT().GetByID(typeID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockResolver.EXPECT().RelatedCompanies(suite.companyID).Return(nil, nil)

	filter, err := suite.builder.Build(suite.principal, service.VisibilityOptions{})
	suite.Require().NoError(err)

	suite.False(query.Eval(filter, post(models.PrivacyPotentialClients, suite.stranger)))
}

func (suite *VisibilityFilterTestSuite) TestViewerWithoutCompany() {
	suite.principal.CompanyID = uuid.Nil
	suite.expectViewer(nil)

	filter, err := suite.builder.Build(suite.principal, service.VisibilityOptions{})
	suite.Require().NoError(err)

	suite.False(query.Eval(filter, post(models.PrivacyPotentialClients, suite.related)))
	suite.True(query.Eval(filter, post(models.PrivacyPublic, suite.related)))
}

func (suite *VisibilityFilterTestSuite) TestNoOrganization() {
	suite.principal.OrganizationID = uuid.Nil

	filter, err := suite.builder.Build(suite.principal, service.VisibilityOptions{})

	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
	suite.Nil(filter)
}

func (suite *VisibilityFilterTestSuite) TestUnknownOrganization() {
	suite.mockOrgs.EXPECT().GetByID(suite.orgID).Return(nil, gorm.ErrRecordNotFound)

	filter, err := suite.builder.Build(suite.principal, service.VisibilityOptions{})

	suite.ErrorIs(err, apperrors.ErrOrganizationNotFound)
	suite.Nil(filter)
}

func (suite *VisibilityFilterTestSuite) TestResolverFailureFailsClosed() {
	suite.expectViewer(nil)
	suite.mockResolver.EXPECT().RelatedCompanies(suite.companyID).Return(nil, errors.New("timeout"))

	filter, err := suite.builder.Build(suite.principal, service.VisibilityOptions{})

	suite.Error(err)
	suite.Nil(filter)
}

func (suite *VisibilityFilterTestSuite) TestTypeLookupFailureFailsClosed() {
	typeID := uuid.New()
	suite.mockOrgs.EXPECT().GetByID(suite.orgID).Return(&models.Organization{
		BaseModel:          models.BaseModel{ID: suite.orgID},
		OrganizationTypeID: &typeID,
	}, nil)
	suite.mockOrgTypes.EXPECT().GetByID(typeID).Return(nil, errors.New("connection reset"))

	filter, err := suite.builder.Build(suite.principal, service.VisibilityOptions{})

	suite.Error(err)
	suite.Nil(filter)
}

func TestVisibilityFilterTestSuite(t *testing.T) {
	suite.Run(t, new(VisibilityFilterTestSuite))
}
