package service

import (
	"context"

	"xgrowth-backend/internal/aggregation"
	"xgrowth-backend/internal/auth"
	"xgrowth-backend/internal/database/models"
	"xgrowth-backend/internal/query"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RelationshipResolverInterface defines the interface for relationship resolution
type RelationshipResolverInterface interface {
	RelatedCompanies(companyID uuid.UUID) ([]uuid.UUID, error)
	RelatedCompanyProfiles(companyID uuid.UUID) ([]models.CompanyProfile, error)
	RelatedOrganizations(orgID uuid.UUID) ([]models.Organization, error)
}

// VisibilityFilterBuilderInterface defines the interface for building post visibility filters
type VisibilityFilterBuilderInterface interface {
	Build(principal auth.Principal, opts VisibilityOptions) (query.Expr, error)
}

// OrganizationTypeServiceInterface defines the interface for organization type service
type OrganizationTypeServiceInterface interface {
	Create(req *CreateOrganizationTypeRequest) (*models.OrganizationType, error)
	GetByID(id uuid.UUID) (*models.OrganizationType, error)
	GetAll(page, pageSize int) (*ListResponse[models.OrganizationType], error)
	Update(id uuid.UUID, req *UpdateOrganizationTypeRequest) (*models.OrganizationType, error)
	Delete(id uuid.UUID) error
}

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	GetAll(page, pageSize int) (*ListResponse[OrganizationResponse], error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Delete(id uuid.UUID) error
	Discover(ctx context.Context, params aggregation.DiscoveryParams) (*ListResponse[query.Document], error)
	GetRelated(id uuid.UUID) ([]OrganizationResponse, error)
	GetCompanies(id uuid.UUID) ([]CompanyResponse, error)
	IncrementPostCount(ctx context.Context, orgID uuid.UUID, delta int)
}

// CompanyServiceInterface defines the interface for company service
type CompanyServiceInterface interface {
	Create(req *CreateCompanyRequest) (*CompanyResponse, error)
	GetByID(id uuid.UUID) (*CompanyResponse, error)
	GetByOrganization(orgID uuid.UUID) ([]CompanyResponse, error)
	GetByEmailDomain(domain string) (*CompanyResponse, error)
	Update(id uuid.UUID, req *UpdateCompanyRequest) (*CompanyResponse, error)
	Delete(id uuid.UUID) error
	GetRelated(id uuid.UUID) ([]CompanyResponse, error)
}

// CompanyRelationServiceInterface defines the interface for company relation service
type CompanyRelationServiceInterface interface {
	Connect(ctx context.Context, principal auth.Principal, req *ConnectCompaniesRequest) (*models.CompanyRelation, error)
	Disable(principal auth.Principal, id uuid.UUID) error
	Enable(principal auth.Principal, id uuid.UUID) error
	Delete(id uuid.UUID) error
	ListByCompany(companyID uuid.UUID) ([]models.CompanyRelation, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Create(req *CreateUserRequest) (*UserResponse, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
	GetAll(page, pageSize int) (*ListResponse[UserResponse], error)
	GetByOrganization(orgID uuid.UUID, page, pageSize int) (*ListResponse[UserResponse], error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Delete(id uuid.UUID) error
	Me(principal auth.Principal) (*UserResponse, error)
}

// CategoryServiceInterface defines the interface for category service
type CategoryServiceInterface interface {
	Create(req *CreateCategoryRequest) (*models.Category, error)
	GetAll(page, pageSize int) (*ListResponse[models.Category], error)
	Update(id uuid.UUID, req *UpdateCategoryRequest) (*models.Category, error)
	Delete(id uuid.UUID) error
}

// LookupServiceInterface defines the interface for lookup value service
type LookupServiceInterface interface {
	Create(req *CreateLookupValueRequest) (*models.LookupValue, error)
	GetByKind(kind string) ([]models.LookupValue, error)
	Rename(principal auth.Principal, id uuid.UUID, req *RenameLookupValueRequest) (*models.LookupValue, error)
	Delete(id uuid.UUID) error
}

// PostServiceInterface defines the interface for post service
type PostServiceInterface interface {
	Create(ctx context.Context, principal auth.Principal, req *CreatePostRequest) (*models.Post, error)
	GetDetail(ctx context.Context, principal auth.Principal, id uuid.UUID) (query.Document, error)
	Feed(principal auth.Principal, params FeedParams) (*ListResponse[models.Post], error)
	Update(principal auth.Principal, id uuid.UUID, req *UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, principal auth.Principal, id uuid.UUID) error
	Rate(ctx context.Context, principal auth.Principal, postID uuid.UUID, req *RatePostRequest) (*models.PostRating, error)
	Pin(ctx context.Context, principal auth.Principal, postID uuid.UUID) error
	Unpin(ctx context.Context, principal auth.Principal, postID uuid.UUID) error
	ListByBrief(principal auth.Principal, briefID uuid.UUID, page, pageSize int) (*ListResponse[models.Post], error)
}

// BriefServiceInterface defines the interface for brief service
type BriefServiceInterface interface {
	Create(principal auth.Principal, req *CreateBriefRequest) (*models.Brief, error)
	GetByID(id uuid.UUID) (*models.Brief, error)
	GetByCompany(companyID uuid.UUID, page, pageSize int) (*ListResponse[models.Brief], error)
	Update(principal auth.Principal, id uuid.UUID, req *UpdateBriefRequest) (*models.Brief, error)
	Close(principal auth.Principal, id uuid.UUID) (*models.Brief, error)
	Delete(principal auth.Principal, id uuid.UUID) error
}

// NotificationServiceInterface defines the interface for notification service
type NotificationServiceInterface interface {
	ListForUser(principal auth.Principal, unreadOnly bool, page, pageSize int) (*ListResponse[models.Notification], error)
	MarkRead(principal auth.Principal, id uuid.UUID) error
	MarkAllRead(principal auth.Principal) (int64, error)
	CreateForUsers(userIDs []uuid.UUID, input NotificationInput) (int, error)
	NotifyCompanies(companyIDs []uuid.UUID, exclude uuid.UUID, input NotificationInput) (int, error)
}
