package repository

import (
	"strings"

	"xgrowth-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyRepository handles database operations for company profiles
type CompanyRepository struct {
	db *gorm.DB
}

// Ensure CompanyRepository implements CompanyRepositoryInterface
var _ CompanyRepositoryInterface = (*CompanyRepository)(nil)

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company
func (r *CompanyRepository) Create(company *models.CompanyProfile) error {
	return r.db.Create(company).Error
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(id uuid.UUID) (*models.CompanyProfile, error) {
	var company models.CompanyProfile
	if err := r.db.First(&company, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// GetByIDs retrieves companies by ID ordered by name
func (r *CompanyRepository) GetByIDs(ids []uuid.UUID) ([]models.CompanyProfile, error) {
	var companies []models.CompanyProfile
	if len(ids) == 0 {
		return companies, nil
	}
	if err := r.db.Where("id IN ?", ids).Order("name ASC").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// GetByEmailDomain retrieves the company registered for an email domain (case-insensitive)
func (r *CompanyRepository) GetByEmailDomain(domain string) (*models.CompanyProfile, error) {
	var company models.CompanyProfile
	if err := r.db.First(&company, "LOWER(email_domain) = ?", strings.ToLower(domain)).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// GetByOrganizationID retrieves all companies of an organization
func (r *CompanyRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.CompanyProfile, error) {
	var companies []models.CompanyProfile
	if err := r.db.Where("organization_id = ?", orgID).Order("name ASC").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// Update updates a company
func (r *CompanyRepository) Update(company *models.CompanyProfile) error {
	return r.db.Save(company).Error
}

// Delete deletes a company
func (r *CompanyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.CompanyProfile{}, "id = ?", id).Error
}
