package repository

import (
	"xgrowth-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BriefRepository handles database operations for briefs
type BriefRepository struct {
	db *gorm.DB
}

// Ensure BriefRepository implements BriefRepositoryInterface
var _ BriefRepositoryInterface = (*BriefRepository)(nil)

// NewBriefRepository creates a new brief repository
func NewBriefRepository(db *gorm.DB) *BriefRepository {
	return &BriefRepository{db: db}
}

// Create creates a new brief
func (r *BriefRepository) Create(brief *models.Brief) error {
	return r.db.Create(brief).Error
}

// GetByID retrieves a brief by ID
func (r *BriefRepository) GetByID(id uuid.UUID) (*models.Brief, error) {
	var brief models.Brief
	if err := r.db.First(&brief, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &brief, nil
}

// GetByCompanyID retrieves a company's briefs, open ones first
func (r *BriefRepository) GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.Brief, int64, error) {
	var briefs []models.Brief
	var total int64

	if err := r.db.Model(&models.Brief{}).Where("company_id = ?", companyID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Where("company_id = ?", companyID).
		Order("is_open DESC, created_at DESC").
		Limit(limit).Offset(offset).
		Find(&briefs).Error
	if err != nil {
		return nil, 0, err
	}
	return briefs, total, nil
}

// Update updates a brief
func (r *BriefRepository) Update(brief *models.Brief) error {
	return r.db.Save(brief).Error
}

// Delete deletes a brief; posts answering it keep their brief id
func (r *BriefRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Brief{}, "id = ?", id).Error
}
