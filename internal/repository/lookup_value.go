package repository

import (
	"xgrowth-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LookupValueRepository handles database operations for lookup values
type LookupValueRepository struct {
	db *gorm.DB
}

// Ensure LookupValueRepository implements LookupValueRepositoryInterface
var _ LookupValueRepositoryInterface = (*LookupValueRepository)(nil)

// NewLookupValueRepository creates a new lookup value repository
func NewLookupValueRepository(db *gorm.DB) *LookupValueRepository {
	return &LookupValueRepository{db: db}
}

// Create creates a new lookup value
func (r *LookupValueRepository) Create(value *models.LookupValue) error {
	return r.db.Create(value).Error
}

// GetByID retrieves a lookup value by ID
func (r *LookupValueRepository) GetByID(id uuid.UUID) (*models.LookupValue, error) {
	var value models.LookupValue
	if err := r.db.First(&value, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &value, nil
}

// GetByKind retrieves all values of a kind ordered by name
func (r *LookupValueRepository) GetByKind(kind models.LookupKind) ([]models.LookupValue, error) {
	var values []models.LookupValue
	if err := r.db.Where("kind = ?", kind).Order("name ASC").Find(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

// GetByKindAndName retrieves a single value
func (r *LookupValueRepository) GetByKindAndName(kind models.LookupKind, name string) (*models.LookupValue, error) {
	var value models.LookupValue
	if err := r.db.First(&value, "kind = ? AND name = ?", kind, name).Error; err != nil {
		return nil, err
	}
	return &value, nil
}

// Rename changes a value's name. Job titles and departments are copied onto
// users, so those copies are rewritten in the same transaction.
func (r *LookupValueRepository) Rename(value *models.LookupValue, name, updatedBy string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(value).Updates(map[string]interface{}{"name": name, "updated_by": updatedBy}).Error
		if err != nil {
			return err
		}

		var idColumn, nameColumn string
		switch value.Kind {
		case models.LookupKindJobTitle:
			idColumn, nameColumn = "job_title_id", "job_title"
		case models.LookupKindDepartment:
			idColumn, nameColumn = "department_id", "department"
		default:
			return nil
		}
		return tx.Model(&models.User{}).
			Where(idColumn+" = ?", value.ID).
			Update(nameColumn, name).Error
	})
}

// Delete deletes a lookup value
func (r *LookupValueRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.LookupValue{}, "id = ?", id).Error
}
