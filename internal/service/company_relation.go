package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"xgrowth-backend/internal/auth"
	"xgrowth-backend/internal/database/models"
	apperrors "xgrowth-backend/internal/errors"
	"xgrowth-backend/internal/events"
	"xgrowth-backend/internal/logger"
	"xgrowth-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyRelationService connects companies. A pair of companies has at
// most one relation row regardless of order.
type CompanyRelationService struct {
	repo      repository.CompanyRelationRepositoryInterface
	companies repository.CompanyRepositoryInterface
	publisher events.Publisher
	validator *validator.Validate
}

// NewCompanyRelationService creates a new company relation service
func NewCompanyRelationService(
	repo repository.CompanyRelationRepositoryInterface,
	companies repository.CompanyRepositoryInterface,
	publisher events.Publisher,
	validator *validator.Validate,
) *CompanyRelationService {
	return &CompanyRelationService{
		repo:      repo,
		companies: companies,
		publisher: publisher,
		validator: validator,
	}
}

// ConnectCompaniesRequest represents the request to relate two companies
type ConnectCompaniesRequest struct {
	CompanyAID uuid.UUID `json:"company_a_id" validate:"required"`
	CompanyBID uuid.UUID `json:"company_b_id" validate:"required"`
}

// Connect creates a relation between two distinct existing companies
func (s *CompanyRelationService) Connect(ctx context.Context, principal auth.Principal, req *ConnectCompaniesRequest) (*models.CompanyRelation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.CompanyAID == req.CompanyBID {
		return nil, apperrors.ErrSelfRelation
	}

	a, err := s.company(req.CompanyAID)
	if err != nil {
		return nil, err
	}
	b, err := s.company(req.CompanyBID)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() && principal.OrganizationID != a.OrganizationID && principal.OrganizationID != b.OrganizationID {
		return nil, apperrors.ErrNotRelationMember
	}

	existing, err := s.repo.FindBetween(a.ID, b.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing relation: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrRelationExists
	}

	relation := &models.CompanyRelation{
		BaseModel:  models.BaseModel{CreatedBy: actor(principal), UpdatedBy: actor(principal)},
		CompanyAID: a.ID,
		CompanyBID: b.ID,
	}
	if err := s.repo.Create(relation); err != nil {
		// A concurrent request stored the pair first, possibly reversed.
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrRelationExists
		}
		return nil, fmt.Errorf("failed to create relation: %w", err)
	}

	event := events.RelationCreated{
		RelationID:  relation.ID,
		CompanyAID:  relation.CompanyAID,
		CompanyBID:  relation.CompanyBID,
		CreatedByID: principal.UserID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, events.SubjectRelationCreated, event); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to publish relation created event")
	}
	return relation, nil
}

// Disable hides the relation from resolution without deleting it
func (s *CompanyRelationService) Disable(principal auth.Principal, id uuid.UUID) error {
	return s.setDisabled(principal, id, true)
}

// Enable re-activates a disabled relation
func (s *CompanyRelationService) Enable(principal auth.Principal, id uuid.UUID) error {
	return s.setDisabled(principal, id, false)
}

// Delete removes a relation
func (s *CompanyRelationService) Delete(id uuid.UUID) error {
	if _, err := s.get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete relation: %w", err)
	}
	return nil
}

// ListByCompany lists every relation of a company, disabled ones included
func (s *CompanyRelationService) ListByCompany(companyID uuid.UUID) ([]models.CompanyRelation, error) {
	if _, err := s.company(companyID); err != nil {
		return nil, err
	}
	relations, err := s.repo.ListByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list relations: %w", err)
	}
	return relations, nil
}

func (s *CompanyRelationService) setDisabled(principal auth.Principal, id uuid.UUID, disabled bool) error {
	relation, err := s.get(id)
	if err != nil {
		return err
	}
	if !principal.IsAdmin() {
		member, err := s.isMember(principal, relation)
		if err != nil {
			return err
		}
		if !member {
			return apperrors.ErrNotRelationMember
		}
	}

	if err := s.repo.SetDisabled(id, disabled, actor(principal)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRelationNotFound
		}
		return fmt.Errorf("failed to update relation: %w", err)
	}
	return nil
}

func (s *CompanyRelationService) isMember(principal auth.Principal, relation *models.CompanyRelation) (bool, error) {
	for _, id := range []uuid.UUID{relation.CompanyAID, relation.CompanyBID} {
		company, err := s.company(id)
		if err != nil {
			if errors.Is(err, apperrors.ErrCompanyNotFound) {
				continue
			}
			return false, err
		}
		if company.OrganizationID == principal.OrganizationID {
			return true, nil
		}
	}
	return false, nil
}

func (s *CompanyRelationService) get(id uuid.UUID) (*models.CompanyRelation, error) {
	relation, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRelationNotFound
		}
		return nil, fmt.Errorf("failed to get relation: %w", err)
	}
	return relation, nil
}

func (s *CompanyRelationService) company(id uuid.UUID) (*models.CompanyProfile, error) {
	company, err := s.companies.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}
