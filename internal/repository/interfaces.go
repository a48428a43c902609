package repository

import (
	"context"

	"xgrowth-backend/internal/database/models"
	"xgrowth-backend/internal/pipeline"
	"xgrowth-backend/internal/query"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationTypeRepositoryInterface defines the interface for organization type repository operations
type OrganizationTypeRepositoryInterface interface {
	Create(orgType *models.OrganizationType) error
	GetByID(id uuid.UUID) (*models.OrganizationType, error)
	GetByName(name string) (*models.OrganizationType, error)
	GetAll(limit, offset int) ([]models.OrganizationType, int64, error)
	Update(orgType *models.OrganizationType) error
	Delete(id uuid.UUID) error
}

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByIDs(ids []uuid.UUID) ([]models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
	AdjustPostCount(id uuid.UUID, delta int) error
}

// CompanyRepositoryInterface defines the interface for company repository operations
type CompanyRepositoryInterface interface {
	Create(company *models.CompanyProfile) error
	GetByID(id uuid.UUID) (*models.CompanyProfile, error)
	GetByIDs(ids []uuid.UUID) ([]models.CompanyProfile, error)
	GetByEmailDomain(domain string) (*models.CompanyProfile, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.CompanyProfile, error)
	Update(company *models.CompanyProfile) error
	Delete(id uuid.UUID) error
}

// CompanyRelationRepositoryInterface defines the interface for company relation repository operations
type CompanyRelationRepositoryInterface interface {
	Create(relation *models.CompanyRelation) error
	GetByID(id uuid.UUID) (*models.CompanyRelation, error)
	FindBetween(a, b uuid.UUID) (*models.CompanyRelation, error)
	ListByCompany(companyID uuid.UUID) ([]models.CompanyRelation, error)
	ListActiveByCompanies(companyIDs []uuid.UUID) ([]models.CompanyRelation, error)
	SetDisabled(id uuid.UUID, disabled bool, updatedBy string) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.User, int64, error)
	GetByCompanyIDs(companyIDs []uuid.UUID) ([]models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// CategoryRepositoryInterface defines the interface for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	GetAll(limit, offset int) ([]models.Category, int64, error)
	Update(category *models.Category) error
	Delete(id uuid.UUID) error
}

// LookupValueRepositoryInterface defines the interface for lookup value repository operations
type LookupValueRepositoryInterface interface {
	Create(value *models.LookupValue) error
	GetByID(id uuid.UUID) (*models.LookupValue, error)
	GetByKind(kind models.LookupKind) ([]models.LookupValue, error)
	GetByKindAndName(kind models.LookupKind, name string) (*models.LookupValue, error)
	Rename(value *models.LookupValue, name, updatedBy string) error
	Delete(id uuid.UUID) error
}

// PostRepositoryInterface defines the interface for post repository operations
type PostRepositoryInterface interface {
	Create(post *models.Post) error
	GetByID(id uuid.UUID) (*models.Post, error)
	List(filter query.Expr, limit, offset int) ([]models.Post, int64, error)
	GetByBriefID(briefID uuid.UUID, limit, offset int) ([]models.Post, int64, error)
	Update(post *models.Post) error
	Delete(id uuid.UUID) error
}

// PostRatingRepositoryInterface defines the interface for post rating repository operations
type PostRatingRepositoryInterface interface {
	Create(rating *models.PostRating) error
	GetByPostAndUser(postID, userID uuid.UUID) (*models.PostRating, error)
	GetByPostID(postID uuid.UUID) ([]models.PostRating, error)
}

// PostPinRepositoryInterface defines the interface for post pin repository operations
type PostPinRepositoryInterface interface {
	Create(pin *models.PostPin) error
	GetByPostAndUser(postID, userID uuid.UUID) (*models.PostPin, error)
	Delete(postID, userID uuid.UUID) error
}

// BriefRepositoryInterface defines the interface for brief repository operations
type BriefRepositoryInterface interface {
	Create(brief *models.Brief) error
	GetByID(id uuid.UUID) (*models.Brief, error)
	GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.Brief, int64, error)
	Update(brief *models.Brief) error
	Delete(id uuid.UUID) error
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	CreateBatch(notifications []models.Notification) error
	GetByID(id uuid.UUID) (*models.Notification, error)
	GetByUserID(userID uuid.UUID, unreadOnly bool, limit, offset int) ([]models.Notification, int64, error)
	MarkRead(id uuid.UUID) error
	MarkAllRead(userID uuid.UUID) (int64, error)
}

// AggregateRepositoryInterface executes pipelines against stored collections
type AggregateRepositoryInterface interface {
	Aggregate(ctx context.Context, collection string, p pipeline.Pipeline) ([]query.Document, error)
	Count(ctx context.Context, collection string, filter query.Expr) (int64, error)
}
