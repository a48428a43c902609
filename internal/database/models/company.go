package models

import (
	"github.com/google/uuid"
)

// CompanyProfile is a company under an organization. Posts are owned by
// companies and relations connect companies.
type CompanyProfile struct {
	BaseModel
	Name           string    `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index"`
	EmailDomain    string    `json:"email_domain" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	Description    string    `json:"description" gorm:"type:text"`
	Logo           string    `json:"logo" gorm:"size:500"`
}

// TableName returns the table name for CompanyProfile
func (CompanyProfile) TableName() string {
	return "companies"
}

// CompanyRelation is an undirected edge between two companies.
// The pair is unique in either order, enforced by an expression index created
// after migration.
type CompanyRelation struct {
	BaseModel
	CompanyAID uuid.UUID `json:"company_a_id" gorm:"type:uuid;not null;uniqueIndex:idx_company_relation_pair;index"`
	CompanyBID uuid.UUID `json:"company_b_id" gorm:"type:uuid;not null;uniqueIndex:idx_company_relation_pair;index"`
	Disabled   bool      `json:"disabled" gorm:"not null;default:false"`
}

// TableName returns the table name for CompanyRelation
func (CompanyRelation) TableName() string {
	return "company_relations"
}

// Other returns the opposite side of the relation, or false when companyID is on neither side
func (r *CompanyRelation) Other(companyID uuid.UUID) (uuid.UUID, bool) {
	switch companyID {
	case r.CompanyAID:
		return r.CompanyBID, true
	case r.CompanyBID:
		return r.CompanyAID, true
	}
	return uuid.Nil, false
}
