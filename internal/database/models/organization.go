package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrganizationType classifies organizations ("CPG Industry", "Agency", ...)
type OrganizationType struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"type:text"`
	// SeesAllPotentialClients lets members read every "Potential Clients" post,
	// not only posts of related companies.
	SeesAllPotentialClients bool `json:"sees_all_potential_clients" gorm:"not null;default:false"`
}

// TableName returns the table name for OrganizationType
func (OrganizationType) TableName() string {
	return "organization_types"
}

// Organization is the top-level tenant grouping one or more companies
type Organization struct {
	BaseModel
	Name               string         `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Description        string         `json:"description" gorm:"type:text"`
	Logo               string         `json:"logo" gorm:"size:500"`
	Website            string         `json:"website" gorm:"size:300"`
	OrganizationTypeID *uuid.UUID     `json:"organization_type_id" gorm:"type:uuid;index"`
	PostCount          int            `json:"post_count" gorm:"not null;default:0"`
	SkillIDs           pq.StringArray `json:"skill_ids" gorm:"type:text[]"`
	SegmentIDs         pq.StringArray `json:"segment_ids" gorm:"type:text[]"`
	CertificationIDs   pq.StringArray `json:"certification_ids" gorm:"type:text[]"`
	RegionIDs          pq.StringArray `json:"region_ids" gorm:"type:text[]"`
	ProductIDs         pq.StringArray `json:"product_ids" gorm:"type:text[]"`

	// Relationships
	OrganizationType *OrganizationType `json:"-" gorm:"foreignKey:OrganizationTypeID"`
	Companies        []CompanyProfile  `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
