package service

import (
	"errors"
	"fmt"

	"xgrowth-backend/internal/auth"
	"xgrowth-backend/internal/database/models"
	apperrors "xgrowth-backend/internal/errors"
	"xgrowth-backend/internal/metrics"
	"xgrowth-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationService manages in-app notifications
type NotificationService struct {
	repo  repository.NotificationRepositoryInterface
	users repository.UserRepositoryInterface
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface, users repository.UserRepositoryInterface) *NotificationService {
	return &NotificationService{
		repo:  repo,
		users: users,
	}
}

// NotificationInput is the content shared by a batch of notifications
type NotificationInput struct {
	Kind     models.NotificationKind
	Title    string
	Body     string
	EntityID *uuid.UUID
}

// ListForUser lists the principal's notifications, newest first
func (s *NotificationService) ListForUser(principal auth.Principal, unreadOnly bool, page, pageSize int) (*ListResponse[models.Notification], error) {
	if principal.UserID == uuid.Nil {
		return nil, apperrors.ErrMissingPrincipal
	}
	page, pageSize, offset := normalizePage(page, pageSize)

	notifications, total, err := s.repo.GetByUserID(principal.UserID, unreadOnly, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	return newList(notifications, total, page, pageSize), nil
}

// MarkRead marks one of the principal's notifications as read
func (s *NotificationService) MarkRead(principal auth.Principal, id uuid.UUID) error {
	notification, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to get notification: %w", err)
	}
	if notification.UserID != principal.UserID {
		return apperrors.ErrNotNotificationOwner
	}
	if notification.Read {
		return nil
	}
	if err := s.repo.MarkRead(id); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead marks every notification of the principal as read and returns how many changed
func (s *NotificationService) MarkAllRead(principal auth.Principal) (int64, error) {
	if principal.UserID == uuid.Nil {
		return 0, apperrors.ErrMissingPrincipal
	}
	n, err := s.repo.MarkAllRead(principal.UserID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return n, nil
}

// CreateForUsers stores one notification per user
func (s *NotificationService) CreateForUsers(userIDs []uuid.UUID, input NotificationInput) (int, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}
	notifications := make([]models.Notification, len(userIDs))
	for i, id := range userIDs {
		notifications[i] = models.Notification{
			BaseModel: models.BaseModel{CreatedBy: "system", UpdatedBy: "system"},
			UserID:    id,
			Kind:      input.Kind,
			Title:     input.Title,
			Body:      input.Body,
			EntityID:  input.EntityID,
		}
	}
	if err := s.repo.CreateBatch(notifications); err != nil {
		return 0, fmt.Errorf("failed to create notifications: %w", err)
	}
	metrics.NotificationsCreated.Add(float64(len(notifications)))
	return len(notifications), nil
}

// NotifyCompanies notifies every user of the given companies except exclude
func (s *NotificationService) NotifyCompanies(companyIDs []uuid.UUID, exclude uuid.UUID, input NotificationInput) (int, error) {
	if len(companyIDs) == 0 {
		return 0, nil
	}
	users, err := s.users.GetByCompanyIDs(companyIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to get company users: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		if u.ID != exclude {
			ids = append(ids, u.ID)
		}
	}
	return s.CreateForUsers(ids, input)
}
