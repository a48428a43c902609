package models

// Category tags posts
type Category struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"type:text"`
}

// TableName returns the table name for Category
func (Category) TableName() string {
	return "categories"
}

// LookupValue is a reference value of a given kind (skill, region, job title, ...)
type LookupValue struct {
	BaseModel
	Kind LookupKind `json:"kind" gorm:"type:varchar(30);not null;uniqueIndex:idx_lookup_kind_name"`
	Name string     `json:"name" gorm:"not null;size:100;uniqueIndex:idx_lookup_kind_name" validate:"required,min=1,max=100"`
}

// TableName returns the table name for LookupValue
func (LookupValue) TableName() string {
	return "lookup_values"
}
