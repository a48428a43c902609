package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"xgrowth-backend/internal/aggregation"
	"xgrowth-backend/internal/database/models"
	apperrors "xgrowth-backend/internal/errors"
	"xgrowth-backend/internal/logger"
	"xgrowth-backend/internal/query"
	"xgrowth-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo       repository.OrganizationRepositoryInterface
	orgTypes   repository.OrganizationTypeRepositoryInterface
	companies  repository.CompanyRepositoryInterface
	aggregates repository.AggregateRepositoryInterface
	resolver   RelationshipResolverInterface
	validator  *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	repo repository.OrganizationRepositoryInterface,
	orgTypes repository.OrganizationTypeRepositoryInterface,
	companies repository.CompanyRepositoryInterface,
	aggregates repository.AggregateRepositoryInterface,
	resolver RelationshipResolverInterface,
	validator *validator.Validate,
) *OrganizationService {
	return &OrganizationService{
		repo:       repo,
		orgTypes:   orgTypes,
		companies:  companies,
		aggregates: aggregates,
		resolver:   resolver,
		validator:  validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name               string     `json:"name" validate:"required,min=1,max=100"`
	Description        string     `json:"description,omitempty"`
	Logo               string     `json:"logo,omitempty" validate:"max=500"`
	Website            string     `json:"website,omitempty" validate:"omitempty,url,max=300"`
	OrganizationTypeID *uuid.UUID `json:"organization_type_id,omitempty"`
	SkillIDs           []string   `json:"skill_ids,omitempty"`
	SegmentIDs         []string   `json:"segment_ids,omitempty"`
	CertificationIDs   []string   `json:"certification_ids,omitempty"`
	RegionIDs          []string   `json:"region_ids,omitempty"`
	ProductIDs         []string   `json:"product_ids,omitempty"`
}

// UpdateOrganizationRequest represents the request to update an organization
type UpdateOrganizationRequest struct {
	Description        string     `json:"description,omitempty"`
	Logo               string     `json:"logo,omitempty" validate:"max=500"`
	Website            string     `json:"website,omitempty" validate:"omitempty,url,max=300"`
	OrganizationTypeID *uuid.UUID `json:"organization_type_id,omitempty"`
	SkillIDs           []string   `json:"skill_ids,omitempty"`
	SegmentIDs         []string   `json:"segment_ids,omitempty"`
	CertificationIDs   []string   `json:"certification_ids,omitempty"`
	RegionIDs          []string   `json:"region_ids,omitempty"`
	ProductIDs         []string   `json:"product_ids,omitempty"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Logo               string     `json:"logo"`
	Website            string     `json:"website"`
	OrganizationTypeID *uuid.UUID `json:"organization_type_id"`
	PostCount          int        `json:"post_count"`
	SkillIDs           []string   `json:"skill_ids"`
	SegmentIDs         []string   `json:"segment_ids"`
	CertificationIDs   []string   `json:"certification_ids"`
	RegionIDs          []string   `json:"region_ids"`
	ProductIDs         []string   `json:"product_ids"`
	CreatedAt          string     `json:"created_at"`
	UpdatedAt          string     `json:"updated_at"`
}

// Create creates a new organization
func (s *OrganizationService) Create(req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	if err := s.checkType(req.OrganizationTypeID); err != nil {
		return nil, err
	}

	org := &models.Organization{
		Name:               req.Name,
		Description:        req.Description,
		Logo:               req.Logo,
		Website:            req.Website,
		OrganizationTypeID: req.OrganizationTypeID,
		SkillIDs:           pq.StringArray(req.SkillIDs),
		SegmentIDs:         pq.StringArray(req.SegmentIDs),
		CertificationIDs:   pq.StringArray(req.CertificationIDs),
		RegionIDs:          pq.StringArray(req.RegionIDs),
		ProductIDs:         pq.StringArray(req.ProductIDs),
	}
	if err := s.repo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return toOrganizationResponse(org), nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

// GetAll retrieves all organizations with pagination
func (s *OrganizationService) GetAll(page, pageSize int) (*ListResponse[OrganizationResponse], error) {
	page, pageSize, offset := normalizePage(page, pageSize)

	orgs, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations: %w", err)
	}
	return newList(toOrganizationResponses(orgs), total, page, pageSize), nil
}

// Update updates an organization
func (s *OrganizationService) Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkType(req.OrganizationTypeID); err != nil {
		return nil, err
	}

	org.Description = req.Description
	org.Logo = req.Logo
	org.Website = req.Website
	org.OrganizationTypeID = req.OrganizationTypeID
	org.SkillIDs = pq.StringArray(req.SkillIDs)
	org.SegmentIDs = pq.StringArray(req.SegmentIDs)
	org.CertificationIDs = pq.StringArray(req.CertificationIDs)
	org.RegionIDs = pq.StringArray(req.RegionIDs)
	org.ProductIDs = pq.StringArray(req.ProductIDs)

	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	return toOrganizationResponse(org), nil
}

// Delete deletes an organization
func (s *OrganizationService) Delete(id uuid.UUID) error {
	if _, err := s.get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	return nil
}

// Discover runs the organization directory pipeline. Total counts every
// organization matching the filter, ignoring paging.
func (s *OrganizationService) Discover(ctx context.Context, params aggregation.DiscoveryParams) (*ListResponse[query.Document], error) {
	page, pageSize, _ := normalizePage(params.Page, params.PageSize)
	params.Page, params.PageSize = page, pageSize

	p, err := aggregation.OrganizationDiscovery(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPipelineInvalid, err)
	}

	docs, err := s.aggregates.Aggregate(ctx, aggregation.CollectionOrganizations, p)
	if err != nil {
		return nil, fmt.Errorf("failed to discover organizations: %w", err)
	}
	total, err := s.aggregates.Count(ctx, aggregation.CollectionOrganizations, aggregation.DiscoveryFilter(params))
	if err != nil {
		return nil, fmt.Errorf("failed to count organizations: %w", err)
	}
	return newList(docs, total, page, pageSize), nil
}

// GetRelated returns organizations connected to id through company relations
func (s *OrganizationService) GetRelated(id uuid.UUID) ([]OrganizationResponse, error) {
	if _, err := s.get(id); err != nil {
		return nil, err
	}
	orgs, err := s.resolver.RelatedOrganizations(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get related organizations: %w", err)
	}
	return toOrganizationResponses(orgs), nil
}

// GetCompanies returns the companies of an organization
func (s *OrganizationService) GetCompanies(id uuid.UUID) ([]CompanyResponse, error) {
	if _, err := s.get(id); err != nil {
		return nil, err
	}
	companies, err := s.companies.GetByOrganizationID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization companies: %w", err)
	}
	return toCompanyResponses(companies), nil
}

// IncrementPostCount adjusts the display counter of posts. Failures are
// logged and never returned; the counter is not kept in step with posts
// transactionally.
func (s *OrganizationService) IncrementPostCount(ctx context.Context, orgID uuid.UUID, delta int) {
	if err := s.repo.AdjustPostCount(orgID, delta); err != nil {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"organization_id": orgID,
			"delta":           delta,
		}).WithError(err).Warn("Failed to update organization post count")
	}
}

func (s *OrganizationService) get(id uuid.UUID) (*models.Organization, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

func (s *OrganizationService) checkType(id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.orgTypes.GetByID(*id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationTypeNotFound
		}
		return fmt.Errorf("failed to get organization type: %w", err)
	}
	return nil
}

func toOrganizationResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:                 org.ID,
		Name:               org.Name,
		Description:        org.Description,
		Logo:               org.Logo,
		Website:            org.Website,
		OrganizationTypeID: org.OrganizationTypeID,
		PostCount:          org.PostCount,
		SkillIDs:           nonNil(org.SkillIDs),
		SegmentIDs:         nonNil(org.SegmentIDs),
		CertificationIDs:   nonNil(org.CertificationIDs),
		RegionIDs:          nonNil(org.RegionIDs),
		ProductIDs:         nonNil(org.ProductIDs),
		CreatedAt:          org.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          org.UpdatedAt.Format(time.RFC3339),
	}
}

func toOrganizationResponses(orgs []models.Organization) []OrganizationResponse {
	out := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		out[i] = *toOrganizationResponse(&orgs[i])
	}
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
