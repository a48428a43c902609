// Package events carries domain events between the API and background workers.
package events

import (
	"context"
	"time"

	"xgrowth-backend/internal/logger"

	"github.com/google/uuid"
)

//go:generate mockgen -source=events.go -destination=../mocks/events_mocks.go -package=mocks

// Subjects
const (
	SubjectPostPublished   = "xgrowth.posts.published"
	SubjectRelationCreated = "xgrowth.relations.created"
)

// PostPublished is emitted when a non-draft post is created
type PostPublished struct {
	PostID              uuid.UUID   `json:"post_id"`
	SupplierID          uuid.UUID   `json:"supplier_id"`
	CreatedByID         uuid.UUID   `json:"created_by_id"`
	Title               string      `json:"title"`
	Privacy             string      `json:"privacy"`
	RecipientCompanyIDs []uuid.UUID `json:"recipient_company_ids"`
	PublishedAt         time.Time   `json:"published_at"`
}

// RelationCreated is emitted when two companies get connected
type RelationCreated struct {
	RelationID  uuid.UUID `json:"relation_id"`
	CompanyAID  uuid.UUID `json:"company_a_id"`
	CompanyBID  uuid.UUID `json:"company_b_id"`
	CreatedByID uuid.UUID `json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Publisher publishes an event payload on a subject
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

// NoopPublisher drops events. Used when EVENTS_ENABLED is false.
type NoopPublisher struct{}

// Publish implements Publisher
func (NoopPublisher) Publish(ctx context.Context, subject string, _ any) error {
	logger.WithContext(ctx).WithField("subject", subject).Debug("Events disabled, dropping event")
	return nil
}
