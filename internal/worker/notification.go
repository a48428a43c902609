// Package worker holds background services run under the supervisor tree.
package worker

import (
	"context"
	"fmt"

	"xgrowth-backend/internal/database/models"
	"xgrowth-backend/internal/events"
	"xgrowth-backend/internal/logger"
	"xgrowth-backend/internal/metrics"
	"xgrowth-backend/internal/service"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const inboxSize = 256

// Notifier creates notifications for the users of companies
type Notifier interface {
	NotifyCompanies(companyIDs []uuid.UUID, exclude uuid.UUID, input service.NotificationInput) (int, error)
}

// NotificationWorker turns domain events into in-app notifications
type NotificationWorker struct {
	conn     *nats.Conn
	notifier Notifier
}

// NewNotificationWorker creates a worker consuming from conn
func NewNotificationWorker(conn *nats.Conn, notifier Notifier) *NotificationWorker {
	return &NotificationWorker{conn: conn, notifier: notifier}
}

// Serve implements suture.Service. Subscriptions live as long as ctx.
func (w *NotificationWorker) Serve(ctx context.Context) error {
	inbox := make(chan *nats.Msg, inboxSize)
	var subs []*nats.Subscription
	defer func() {
		for _, sub := range subs {
			_ = sub.Unsubscribe()
		}
	}()

	for _, subject := range []string{events.SubjectPostPublished, events.SubjectRelationCreated} {
		sub, err := w.conn.ChanSubscribe(subject, inbox)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
		subs = append(subs, sub)
	}
	logger.New().Info("Notification worker started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-inbox:
			err := w.Handle(msg.Subject, msg.Data)
			metrics.RecordEventConsumed(msg.Subject, err)
			if err != nil {
				logger.New().WithError(err).WithField("subject", msg.Subject).Error("Failed to handle event")
			}
		}
	}
}

// Handle processes one event payload
func (w *NotificationWorker) Handle(subject string, data []byte) error {
	switch subject {
	case events.SubjectPostPublished:
		var e events.PostPublished
		if err := events.Decode(data, &e); err != nil {
			return err
		}
		return w.postPublished(e)
	case events.SubjectRelationCreated:
		var e events.RelationCreated
		if err := events.Decode(data, &e); err != nil {
			return err
		}
		return w.relationCreated(e)
	}
	return fmt.Errorf("unexpected subject %q", subject)
}

// postPublished notifies recipients of posts shared with selected companies.
// Other privacy levels reach too many users to notify individually.
func (w *NotificationWorker) postPublished(e events.PostPublished) error {
	if models.Privacy(e.Privacy) != models.PrivacySelectedCompanies || len(e.RecipientCompanyIDs) == 0 {
		return nil
	}
	postID := e.PostID
	n, err := w.notifier.NotifyCompanies(e.RecipientCompanyIDs, e.CreatedByID, service.NotificationInput{
		Kind:     models.NotificationKindPostShared,
		Title:    "A post was shared with your company",
		Body:     e.Title,
		EntityID: &postID,
	})
	if err != nil {
		return err
	}
	logger.New().WithFields(map[string]interface{}{"post_id": e.PostID, "count": n}).Debug("Post notifications created")
	return nil
}

func (w *NotificationWorker) relationCreated(e events.RelationCreated) error {
	relationID := e.RelationID
	_, err := w.notifier.NotifyCompanies([]uuid.UUID{e.CompanyAID, e.CompanyBID}, e.CreatedByID, service.NotificationInput{
		Kind:     models.NotificationKindRelationCreated,
		Title:    "Your company has a new connection",
		EntityID: &relationID,
	})
	return err
}

// String implements fmt.Stringer for supervisor logs
func (w *NotificationWorker) String() string {
	return "notification-worker"
}
