package testutils

import (
	"fmt"
	"time"

	"xgrowth-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func newBase() models.BaseModel {
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// short returns a unique suffix for names guarded by unique indexes
func short() string {
	return uuid.NewString()[:8]
}

// OrganizationTypeFactory provides methods to create test OrganizationType data
type OrganizationTypeFactory struct{}

// Create creates a test OrganizationType with default values
func (f *OrganizationTypeFactory) Create() *models.OrganizationType {
	return &models.OrganizationType{
		BaseModel:   newBase(),
		Name:        "Agency " + short(),
		Description: "A test organization type",
	}
}

// CPG creates a type whose members see every potential-clients post
func (f *OrganizationTypeFactory) CPG() *models.OrganizationType {
	t := f.Create()
	t.Name = "CPG Industry " + short()
	t.SeesAllPotentialClients = true
	return t
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel:   newBase(),
		Name:        "Test Organization " + short(),
		Description: "A test organization for testing purposes",
		Website:     "https://example.com",
		SkillIDs:    pq.StringArray{},
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// WithType sets the organization type
func (f *OrganizationFactory) WithType(typeID uuid.UUID) *models.Organization {
	org := f.Create()
	org.OrganizationTypeID = &typeID
	return org
}

// CompanyFactory provides methods to create test CompanyProfile data
type CompanyFactory struct{}

// Create creates a test company under a random organization
func (f *CompanyFactory) Create() *models.CompanyProfile {
	s := short()
	return &models.CompanyProfile{
		BaseModel:      newBase(),
		Name:           "Company " + s,
		OrganizationID: uuid.New(),
		EmailDomain:    s + ".example.com",
	}
}

// WithOrganization creates a company under orgID
func (f *CompanyFactory) WithOrganization(orgID uuid.UUID) *models.CompanyProfile {
	c := f.Create()
	c.OrganizationID = orgID
	return c
}

// RelationFactory provides methods to create test CompanyRelation data
type RelationFactory struct{}

// Between creates an enabled relation from a to b
func (f *RelationFactory) Between(a, b uuid.UUID) *models.CompanyRelation {
	return &models.CompanyRelation{
		BaseModel:  newBase(),
		CompanyAID: a,
		CompanyBID: b,
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// Create creates a standard user without company
func (f *UserFactory) Create() *models.User {
	s := short()
	return &models.User{
		BaseModel: newBase(),
		Email:     fmt.Sprintf("user.%s@example.com", s),
		FirstName: "John",
		LastName:  "Doe",
		Role:      models.RoleStandard,
	}
}

// InCompany creates a user of company
func (f *UserFactory) InCompany(company *models.CompanyProfile) *models.User {
	u := f.Create()
	u.Email = fmt.Sprintf("user.%s@%s", short(), company.EmailDomain)
	u.CompanyID = &company.ID
	u.OrganizationID = &company.OrganizationID
	return u
}

// Admin creates an admin user
func (f *UserFactory) Admin() *models.User {
	u := f.Create()
	u.Role = models.RoleAdmin
	return u
}

// PostFactory provides methods to create test Post data
type PostFactory struct{}

// Create creates a published public post for supplier
func (f *PostFactory) Create(supplierID, creatorID uuid.UUID) *models.Post {
	return &models.Post{
		BaseModel:           newBase(),
		Title:               "Test post " + short(),
		Description:         "A test post",
		SupplierID:          supplierID,
		CreatedByID:         creatorID,
		Privacy:             models.PrivacyPublic,
		RecipientCompanyIDs: pq.StringArray{},
		CategoryIDs:         pq.StringArray{},
		UploadedFiles:       pq.StringArray{},
	}
}

// WithPrivacy creates a post with the given privacy
func (f *PostFactory) WithPrivacy(supplierID, creatorID uuid.UUID, privacy models.Privacy) *models.Post {
	p := f.Create(supplierID, creatorID)
	p.Privacy = privacy
	return p
}

// BriefFactory provides methods to create test Brief data
type BriefFactory struct{}

// Create creates an open brief for company
func (f *BriefFactory) Create(companyID, creatorID uuid.UUID) *models.Brief {
	return &models.Brief{
		BaseModel:   newBase(),
		Title:       "Test brief " + short(),
		CompanyID:   companyID,
		CreatedByID: creatorID,
		IsOpen:      true,
	}
}

// FactorySet contains all factories for easy access
type FactorySet struct {
	OrganizationType *OrganizationTypeFactory
	Organization     *OrganizationFactory
	Company          *CompanyFactory
	Relation         *RelationFactory
	User             *UserFactory
	Post             *PostFactory
	Brief            *BriefFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		OrganizationType: &OrganizationTypeFactory{},
		Organization:     &OrganizationFactory{},
		Company:          &CompanyFactory{},
		Relation:         &RelationFactory{},
		User:             &UserFactory{},
		Post:             &PostFactory{},
		Brief:            &BriefFactory{},
	}
}
