package repository

import (
	"xgrowth-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyRelationRepository handles database operations for company relations
type CompanyRelationRepository struct {
	db *gorm.DB
}

// Ensure CompanyRelationRepository implements CompanyRelationRepositoryInterface
var _ CompanyRelationRepositoryInterface = (*CompanyRelationRepository)(nil)

// NewCompanyRelationRepository creates a new company relation repository
func NewCompanyRelationRepository(db *gorm.DB) *CompanyRelationRepository {
	return &CompanyRelationRepository{db: db}
}

// Create creates a new relation
func (r *CompanyRelationRepository) Create(relation *models.CompanyRelation) error {
	return r.db.Create(relation).Error
}

// GetByID retrieves a relation by ID
func (r *CompanyRelationRepository) GetByID(id uuid.UUID) (*models.CompanyRelation, error) {
	var relation models.CompanyRelation
	if err := r.db.First(&relation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &relation, nil
}

// FindBetween retrieves the relation joining a and b, stored in either order
func (r *CompanyRelationRepository) FindBetween(a, b uuid.UUID) (*models.CompanyRelation, error) {
	var relation models.CompanyRelation
	err := r.db.
		Where("(company_a_id = ? AND company_b_id = ?) OR (company_a_id = ? AND company_b_id = ?)", a, b, b, a).
		First(&relation).Error
	if err != nil {
		return nil, err
	}
	return &relation, nil
}

// ListByCompany retrieves every relation touching a company, disabled ones included
func (r *CompanyRelationRepository) ListByCompany(companyID uuid.UUID) ([]models.CompanyRelation, error) {
	var relations []models.CompanyRelation
	err := r.db.
		Where("company_a_id = ? OR company_b_id = ?", companyID, companyID).
		Order("created_at ASC").
		Find(&relations).Error
	if err != nil {
		return nil, err
	}
	return relations, nil
}

// ListActiveByCompanies retrieves enabled relations touching any of the companies
func (r *CompanyRelationRepository) ListActiveByCompanies(companyIDs []uuid.UUID) ([]models.CompanyRelation, error) {
	var relations []models.CompanyRelation
	if len(companyIDs) == 0 {
		return relations, nil
	}
	err := r.db.
		Where("disabled = ?", false).
		Where(r.db.Where("company_a_id IN ?", companyIDs).Or("company_b_id IN ?", companyIDs)).
		Order("created_at ASC").
		Find(&relations).Error
	if err != nil {
		return nil, err
	}
	return relations, nil
}

// SetDisabled toggles a relation without deleting it
func (r *CompanyRelationRepository) SetDisabled(id uuid.UUID, disabled bool, updatedBy string) error {
	res := r.db.Model(&models.CompanyRelation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"disabled": disabled, "updated_by": updatedBy})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a relation
func (r *CompanyRelationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.CompanyRelation{}, "id = ?", id).Error
}
