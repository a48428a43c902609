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

// CategoryService handles business logic for post categories
type CategoryService struct {
	repo      repository.CategoryRepositoryInterface
	validator *validator.Validate
}

// NewCategoryService creates a new category service
func NewCategoryService(repo repository.CategoryRepositoryInterface, validator *validator.Validate) *CategoryService {
	return &CategoryService{
		repo:      repo,
		validator: validator,
	}
}

// CreateCategoryRequest represents the request to create a category
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty"`
}

// UpdateCategoryRequest represents the request to update a category
type UpdateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty"`
}

// Create creates a new category
func (s *CategoryService) Create(req *CreateCategoryRequest) (*models.Category, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.checkName(req.Name); err != nil {
		return nil, err
	}

	category := &models.Category{Name: req.Name, Description: req.Description}
	if err := s.repo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// GetAll retrieves categories with pagination
func (s *CategoryService) GetAll(page, pageSize int) (*ListResponse[models.Category], error) {
	page, pageSize, offset := normalizePage(page, pageSize)

	categories, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return newList(categories, total, page, pageSize), nil
}

// Update updates a category
func (s *CategoryService) Update(id uuid.UUID, req *UpdateCategoryRequest) (*models.Category, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if req.Name != category.Name {
		if err := s.checkName(req.Name); err != nil {
			return nil, err
		}
	}

	category.Name = req.Name
	category.Description = req.Description
	if err := s.repo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// Delete deletes a category
func (s *CategoryService) Delete(id uuid.UUID) error {
	if _, err := s.get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func (s *CategoryService) get(id uuid.UUID) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) checkName(name string) error {
	existing, err := s.repo.GetByName(name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing category: %w", err)
	}
	if existing != nil {
		return apperrors.ErrCategoryExists
	}
	return nil
}
