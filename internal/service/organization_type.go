package service

import (
	"errors"
	"fmt"

	"xgrowth-backend/internal/database/models"
	apperrors "xgrowth-backend/internal/errors"
	"xgrowth-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationTypeService handles business logic for organization types
type OrganizationTypeService struct {
	repo      repository.OrganizationTypeRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationTypeService creates a new organization type service
func NewOrganizationTypeService(repo repository.OrganizationTypeRepositoryInterface, validator *validator.Validate) *OrganizationTypeService {
	return &OrganizationTypeService{
		repo:      repo,
		validator: validator,
	}
}

// CreateOrganizationTypeRequest represents the request to create an organization type
type CreateOrganizationTypeRequest struct {
	Name                    string `json:"name" validate:"required,min=1,max=100"`
	Description             string `json:"description,omitempty"`
	SeesAllPotentialClients bool   `json:"sees_all_potential_clients"`
}

// UpdateOrganizationTypeRequest represents the request to update an organization type
type UpdateOrganizationTypeRequest struct {
	Name                    string `json:"name" validate:"required,min=1,max=100"`
	Description             string `json:"description,omitempty"`
	SeesAllPotentialClients bool   `json:"sees_all_potential_clients"`
}

// Create creates a new organization type
func (s *OrganizationTypeService) Create(req *CreateOrganizationTypeRequest) (*models.OrganizationType, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization type: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOrganizationTypeExists
	}

	orgType := &models.OrganizationType{
		Name:                    req.Name,
		Description:             req.Description,
		SeesAllPotentialClients: req.SeesAllPotentialClients,
	}
	if err := s.repo.Create(orgType); err != nil {
		return nil, fmt.Errorf("failed to create organization type: %w", err)
	}
	return orgType, nil
}

// GetByID retrieves an organization type by ID
func (s *OrganizationTypeService) GetByID(id uuid.UUID) (*models.OrganizationType, error) {
	orgType, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationTypeNotFound
		}
		return nil, fmt.Errorf("failed to get organization type: %w", err)
	}
	return orgType, nil
}

// GetAll retrieves organization types with pagination
func (s *OrganizationTypeService) GetAll(page, pageSize int) (*ListResponse[models.OrganizationType], error) {
	page, pageSize, offset := normalizePage(page, pageSize)

	types, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization types: %w", err)
	}
	return newList(types, total, page, pageSize), nil
}

// Update updates an organization type
func (s *OrganizationTypeService) Update(id uuid.UUID, req *UpdateOrganizationTypeRequest) (*models.OrganizationType, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	orgType, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != orgType.Name {
		existing, err := s.repo.GetByName(req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing organization type: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrOrganizationTypeExists
		}
	}

	orgType.Name = req.Name
	orgType.Description = req.Description
	orgType.SeesAllPotentialClients = req.SeesAllPotentialClients
	if err := s.repo.Update(orgType); err != nil {
		return nil, fmt.Errorf("failed to update organization type: %w", err)
	}
	return orgType, nil
}

// Delete deletes an organization type
func (s *OrganizationTypeService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete organization type: %w", err)
	}
	return nil
}
