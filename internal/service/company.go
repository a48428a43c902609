package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"xgrowth-backend/internal/database/models"
	apperrors "xgrowth-backend/internal/errors"
	"xgrowth-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyService handles business logic for companies
type CompanyService struct {
	repo      repository.CompanyRepositoryInterface
	orgs      repository.OrganizationRepositoryInterface
	resolver  RelationshipResolverInterface
	validator *validator.Validate
}

// NewCompanyService creates a new company service
func NewCompanyService(
	repo repository.CompanyRepositoryInterface,
	orgs repository.OrganizationRepositoryInterface,
	resolver RelationshipResolverInterface,
	validator *validator.Validate,
) *CompanyService {
	return &CompanyService{
		repo:      repo,
		orgs:      orgs,
		resolver:  resolver,
		validator: validator,
	}
}

// CreateCompanyRequest represents the request to create a company
type CreateCompanyRequest struct {
	Name           string    `json:"name" validate:"required,min=1,max=200"`
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	EmailDomain    string    `json:"email_domain" validate:"required,fqdn,max=100"`
	Description    string    `json:"description,omitempty"`
	Logo           string    `json:"logo,omitempty" validate:"max=500"`
}

// UpdateCompanyRequest represents the request to update a company
type UpdateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty" validate:"max=500"`
}

// CompanyResponse represents the response for company operations
type CompanyResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	OrganizationID uuid.UUID `json:"organization_id"`
	EmailDomain    string    `json:"email_domain"`
	Description    string    `json:"description"`
	Logo           string    `json:"logo"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// Create creates a new company under an existing organization
func (s *CompanyService) Create(req *CreateCompanyRequest) (*CompanyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.orgs.GetByID(req.OrganizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	domain := strings.ToLower(req.EmailDomain)
	existing, err := s.repo.GetByEmailDomain(domain)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing company by domain: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCompanyExists
	}

	company := &models.CompanyProfile{
		Name:           req.Name,
		OrganizationID: req.OrganizationID,
		EmailDomain:    domain,
		Description:    req.Description,
		Logo:           req.Logo,
	}
	if err := s.repo.Create(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return toCompanyResponse(company), nil
}

// GetByID retrieves a company by ID
func (s *CompanyService) GetByID(id uuid.UUID) (*CompanyResponse, error) {
	company, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByOrganization retrieves the companies of an organization
func (s *CompanyService) GetByOrganization(orgID uuid.UUID) ([]CompanyResponse, error) {
	companies, err := s.repo.GetByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get companies: %w", err)
	}
	return toCompanyResponses(companies), nil
}

// GetByEmailDomain retrieves the company registered for an email domain
func (s *CompanyService) GetByEmailDomain(domain string) (*CompanyResponse, error) {
	company, err := s.repo.GetByEmailDomain(domain)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return toCompanyResponse(company), nil
}

// Update updates a company
func (s *CompanyService) Update(id uuid.UUID, req *UpdateCompanyRequest) (*CompanyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	company, err := s.get(id)
	if err != nil {
		return nil, err
	}
	company.Name = req.Name
	company.Description = req.Description
	company.Logo = req.Logo

	if err := s.repo.Update(company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return toCompanyResponse(company), nil
}

// Delete deletes a company
func (s *CompanyService) Delete(id uuid.UUID) error {
	if _, err := s.get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}

// GetRelated returns the companies related to id ("suppliers you may like")
func (s *CompanyService) GetRelated(id uuid.UUID) ([]CompanyResponse, error) {
	if _, err := s.get(id); err != nil {
		return nil, err
	}
	companies, err := s.resolver.RelatedCompanyProfiles(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get related companies: %w", err)
	}
	return toCompanyResponses(companies), nil
}

func (s *CompanyService) get(id uuid.UUID) (*models.CompanyProfile, error) {
	company, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

func toCompanyResponse(c *models.CompanyProfile) *CompanyResponse {
	return &CompanyResponse{
		ID:             c.ID,
		Name:           c.Name,
		OrganizationID: c.OrganizationID,
		EmailDomain:    c.EmailDomain,
		Description:    c.Description,
		Logo:           c.Logo,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      c.UpdatedAt.Format(time.RFC3339),
	}
}

func toCompanyResponses(companies []models.CompanyProfile) []CompanyResponse {
	out := make([]CompanyResponse, len(companies))
	for i := range companies {
		out[i] = *toCompanyResponse(&companies[i])
	}
	return out
}
