package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Post is owned by a supplier company and shown according to its privacy
type Post struct {
	BaseModel
	Title               string         `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description         string         `json:"description" gorm:"type:text"`
	CreatedByID         uuid.UUID      `json:"created_by_id" gorm:"type:uuid;not null;index"`
	SupplierID          uuid.UUID      `json:"supplier_id" gorm:"type:uuid;not null;index"`
	RecipientCompanyIDs pq.StringArray `json:"recipient_company_ids" gorm:"type:text[]"`
	BriefID             *uuid.UUID     `json:"brief_id" gorm:"type:uuid;index"`
	Privacy             Privacy        `json:"privacy" gorm:"type:varchar(40);not null;index"`
	IsDraft             bool           `json:"is_draft" gorm:"not null;default:false"`
	CategoryIDs         pq.StringArray `json:"category_ids" gorm:"type:text[]"`
	UploadedFiles       pq.StringArray `json:"uploaded_files" gorm:"type:text[]"`
}

// TableName returns the table name for Post
func (Post) TableName() string {
	return "posts"
}

// PostRating is one user's score for a post
type PostRating struct {
	BaseModel
	PostID         uuid.UUID `json:"post_id" gorm:"type:uuid;not null;uniqueIndex:idx_post_rating_user"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_post_rating_user"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index"`
	Score          int       `json:"score" gorm:"not null"`
	Comment        string    `json:"comment" gorm:"type:text"`
}

// TableName returns the table name for PostRating
func (PostRating) TableName() string {
	return "post_ratings"
}

// PostPin marks a post as saved by a user
type PostPin struct {
	BaseModel
	PostID uuid.UUID `json:"post_id" gorm:"type:uuid;not null;uniqueIndex:idx_post_pin_user"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_post_pin_user"`
}

// TableName returns the table name for PostPin
func (PostPin) TableName() string {
	return "post_pins"
}

// Brief is a request for proposals; posts answering it carry its id
type Brief struct {
	BaseModel
	Title       string     `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string     `json:"description" gorm:"type:text"`
	CompanyID   uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index"`
	CreatedByID uuid.UUID  `json:"created_by_id" gorm:"type:uuid;not null"`
	DueDate     *time.Time `json:"due_date"`
	IsOpen      bool       `json:"is_open" gorm:"not null"`
}

// TableName returns the table name for Brief
func (Brief) TableName() string {
	return "briefs"
}

// Notification is an in-app message for a single user
type Notification struct {
	BaseModel
	UserID   uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index"`
	Kind     NotificationKind `json:"kind" gorm:"type:varchar(50);not null"`
	Title    string           `json:"title" gorm:"not null;size:200"`
	Body     string           `json:"body" gorm:"type:text"`
	EntityID *uuid.UUID       `json:"entity_id" gorm:"type:uuid"`
	Read     bool             `json:"read" gorm:"not null;default:false;index"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
