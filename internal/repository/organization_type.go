package repository

import (
	"xgrowth-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationTypeRepository handles database operations for organization types
type OrganizationTypeRepository struct {
	db *gorm.DB
}

// Ensure OrganizationTypeRepository implements OrganizationTypeRepositoryInterface
var _ OrganizationTypeRepositoryInterface = (*OrganizationTypeRepository)(nil)

// NewOrganizationTypeRepository creates a new organization type repository
func NewOrganizationTypeRepository(db *gorm.DB) *OrganizationTypeRepository {
	return &OrganizationTypeRepository{db: db}
}

// Create creates a new organization type
func (r *OrganizationTypeRepository) Create(orgType *models.OrganizationType) error {
	return r.db.Create(orgType).Error
}

// GetByID retrieves an organization type by ID
func (r *OrganizationTypeRepository) GetByID(id uuid.UUID) (*models.OrganizationType, error) {
	var orgType models.OrganizationType
	if err := r.db.First(&orgType, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &orgType, nil
}

// GetByName retrieves an organization type by name
func (r *OrganizationTypeRepository) GetByName(name string) (*models.OrganizationType, error) {
	var orgType models.OrganizationType
	if err := r.db.First(&orgType, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &orgType, nil
}

// GetAll retrieves all organization types with pagination
func (r *OrganizationTypeRepository) GetAll(limit, offset int) ([]models.OrganizationType, int64, error) {
	var types []models.OrganizationType
	var total int64

	if err := r.db.Model(&models.OrganizationType{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&types).Error; err != nil {
		return nil, 0, err
	}
	return types, total, nil
}

// Update updates an organization type
func (r *OrganizationTypeRepository) Update(orgType *models.OrganizationType) error {
	return r.db.Save(orgType).Error
}

// Delete deletes an organization type
func (r *OrganizationTypeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.OrganizationType{}, "id = ?", id).Error
}
