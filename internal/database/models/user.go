package models

import (
	"github.com/google/uuid"
)

// User is a platform user. Company and organization are derived from the
// email domain when not given explicitly.
type User struct {
	BaseModel
	Email          string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	FirstName      string     `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName       string     `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Role           Role       `json:"role" gorm:"type:varchar(20);not null;default:'standard'"`
	CompanyID      *uuid.UUID `json:"company_id" gorm:"type:uuid;index"`
	OrganizationID *uuid.UUID `json:"organization_id" gorm:"type:uuid;index"`
	JobTitleID     *uuid.UUID `json:"job_title_id" gorm:"type:uuid;index"`
	JobTitle       string     `json:"job_title" gorm:"size:100"`
	DepartmentID   *uuid.UUID `json:"department_id" gorm:"type:uuid;index"`
	Department     string     `json:"department" gorm:"size:100"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
