package service

import (
	"errors"
	"fmt"
	"time"

	"xgrowth-backend/internal/auth"
	"xgrowth-backend/internal/database/models"
	apperrors "xgrowth-backend/internal/errors"
	"xgrowth-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BriefService handles business logic for briefs
type BriefService struct {
	repo      repository.BriefRepositoryInterface
	validator *validator.Validate
}

// NewBriefService creates a new brief service
func NewBriefService(repo repository.BriefRepositoryInterface, validator *validator.Validate) *BriefService {
	return &BriefService{
		repo:      repo,
		validator: validator,
	}
}

// CreateBriefRequest represents the request to create a brief
type CreateBriefRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdateBriefRequest represents the request to update a brief
type UpdateBriefRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// Create opens a brief for the principal's company
func (s *BriefService) Create(principal auth.Principal, req *CreateBriefRequest) (*models.Brief, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if principal.CompanyID == uuid.Nil {
		return nil, apperrors.ErrUserHasNoOrganization
	}

	brief := &models.Brief{
		BaseModel:   models.BaseModel{CreatedBy: actor(principal), UpdatedBy: actor(principal)},
		Title:       req.Title,
		Description: req.Description,
		CompanyID:   principal.CompanyID,
		CreatedByID: principal.UserID,
		DueDate:     req.DueDate,
		IsOpen:      true,
	}
	if err := s.repo.Create(brief); err != nil {
		return nil, fmt.Errorf("failed to create brief: %w", err)
	}
	return brief, nil
}

// GetByID retrieves a brief by ID
func (s *BriefService) GetByID(id uuid.UUID) (*models.Brief, error) {
	brief, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBriefNotFound
		}
		return nil, fmt.Errorf("failed to get brief: %w", err)
	}
	return brief, nil
}

// GetByCompany lists a company's briefs with pagination
func (s *BriefService) GetByCompany(companyID uuid.UUID, page, pageSize int) (*ListResponse[models.Brief], error) {
	page, pageSize, offset := normalizePage(page, pageSize)

	briefs, total, err := s.repo.GetByCompanyID(companyID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get briefs: %w", err)
	}
	return newList(briefs, total, page, pageSize), nil
}

// Update updates a brief
func (s *BriefService) Update(principal auth.Principal, id uuid.UUID, req *UpdateBriefRequest) (*models.Brief, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	brief, err := s.owned(principal, id)
	if err != nil {
		return nil, err
	}
	brief.Title = req.Title
	brief.Description = req.Description
	brief.DueDate = req.DueDate
	brief.UpdatedBy = actor(principal)

	if err := s.repo.Update(brief); err != nil {
		return nil, fmt.Errorf("failed to update brief: %w", err)
	}
	return brief, nil
}

// Close stops a brief from accepting answers. Closing twice is a no-op.
func (s *BriefService) Close(principal auth.Principal, id uuid.UUID) (*models.Brief, error) {
	brief, err := s.owned(principal, id)
	if err != nil {
		return nil, err
	}
	if !brief.IsOpen {
		return brief, nil
	}

	brief.IsOpen = false
	brief.UpdatedBy = actor(principal)
	if err := s.repo.Update(brief); err != nil {
		return nil, fmt.Errorf("failed to close brief: %w", err)
	}
	return brief, nil
}

// Delete deletes a brief
func (s *BriefService) Delete(principal auth.Principal, id uuid.UUID) error {
	if _, err := s.owned(principal, id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete brief: %w", err)
	}
	return nil
}

func (s *BriefService) owned(principal auth.Principal, id uuid.UUID) (*models.Brief, error) {
	brief, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() && brief.CompanyID != principal.CompanyID {
		return nil, apperrors.ErrNotBriefOwner
	}
	return brief, nil
}
