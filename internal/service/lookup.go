package service

import (
	"errors"
	"fmt"

	"xgrowth-backend/internal/auth"
	"xgrowth-backend/internal/database/models"
	apperrors "xgrowth-backend/internal/errors"
	"xgrowth-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LookupService manages reference values (skills, regions, job titles, ...)
type LookupService struct {
	repo      repository.LookupValueRepositoryInterface
	validator *validator.Validate
}

// NewLookupService creates a new lookup service
func NewLookupService(repo repository.LookupValueRepositoryInterface, validator *validator.Validate) *LookupService {
	return &LookupService{
		repo:      repo,
		validator: validator,
	}
}

// CreateLookupValueRequest represents the request to create a lookup value
type CreateLookupValueRequest struct {
	Kind string `json:"kind" validate:"required"`
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// RenameLookupValueRequest represents the request to rename a lookup value
type RenameLookupValueRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// Create creates a new lookup value
func (s *LookupService) Create(req *CreateLookupValueRequest) (*models.LookupValue, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	kind := models.LookupKind(req.Kind)
	if !kind.IsValid() {
		return nil, apperrors.ErrInvalidLookupKind
	}
	if err := s.checkName(kind, req.Name); err != nil {
		return nil, err
	}

	value := &models.LookupValue{Kind: kind, Name: req.Name}
	if err := s.repo.Create(value); err != nil {
		return nil, fmt.Errorf("failed to create lookup value: %w", err)
	}
	return value, nil
}

// GetByKind lists the values of one kind
func (s *LookupService) GetByKind(kind string) ([]models.LookupValue, error) {
	k := models.LookupKind(kind)
	if !k.IsValid() {
		return nil, apperrors.ErrInvalidLookupKind
	}
	values, err := s.repo.GetByKind(k)
	if err != nil {
		return nil, fmt.Errorf("failed to get lookup values: %w", err)
	}
	return values, nil
}

// Rename changes a value's name. Job title and department names copied onto
// users are updated in the same transaction.
func (s *LookupService) Rename(principal auth.Principal, id uuid.UUID, req *RenameLookupValueRequest) (*models.LookupValue, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	value, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if value.Name == req.Name {
		return value, nil
	}
	if err := s.checkName(value.Kind, req.Name); err != nil {
		return nil, err
	}

	if err := s.repo.Rename(value, req.Name, actor(principal)); err != nil {
		return nil, fmt.Errorf("failed to rename lookup value: %w", err)
	}
	value.Name = req.Name
	value.UpdatedBy = actor(principal)
	return value, nil
}

// Delete deletes a lookup value
func (s *LookupService) Delete(id uuid.UUID) error {
	if _, err := s.get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete lookup value: %w", err)
	}
	return nil
}

func (s *LookupService) get(id uuid.UUID) (*models.LookupValue, error) {
	value, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLookupValueNotFound
		}
		return nil, fmt.Errorf("failed to get lookup value: %w", err)
	}
	return value, nil
}

func (s *LookupService) checkName(kind models.LookupKind, name string) error {
	existing, err := s.repo.GetByKindAndName(kind, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing lookup value: %w", err)
	}
	if existing != nil {
		return apperrors.ErrLookupValueExists
	}
	return nil
}
