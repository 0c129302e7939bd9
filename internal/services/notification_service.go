package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/uNik020/EWS-monitor-Backend/internal/models"
	"github.com/uNik020/EWS-monitor-Backend/internal/notifications"
	apperrors "github.com/uNik020/EWS-monitor-Backend/pkg/errors"
)

// NotifyInput defines attributes required to persist a notification.
type NotifyInput struct {
	User    string
	Title   string
	Message string
	AlertID string
}

// NotificationService owns notification records and their fan-out to
// connected stream subscribers.
type NotificationService struct {
	db  *gorm.DB
	hub *notifications.Hub
}

// NewNotificationService constructs a NotificationService. The hub is
// optional; without one, created notifications are persisted but not
// streamed.
func NewNotificationService(db *gorm.DB, hub *notifications.Hub) (*NotificationService, error) {
	if db == nil {
		return nil, errors.New("notification service: db is required")
	}
	return &NotificationService{db: db, hub: hub}, nil
}

// Notify persists a notification and broadcasts it to stream subscribers.
func (s *NotificationService) Notify(ctx context.Context, input NotifyInput) (*models.Notification, error) {
	ctx = ensureContext(ctx)

	user := strings.TrimSpace(input.User)
	if user == "" {
		return nil, errors.New("notification service: user is required")
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.New("notification service: title is required")
	}

	notification := models.Notification{
		User:    user,
		Title:   title,
		Message: input.Message,
		AlertID: input.AlertID,
	}

	if err := s.db.WithContext(ctx).Create(&notification).Error; err != nil {
		return nil, fmt.Errorf("notification service: create notification: %w", err)
	}

	if s.hub != nil {
		s.hub.Broadcast(user, notifications.Event{
			Event:        "notification.created",
			Notification: notification,
		})
	}

	return &notification, nil
}

// ListForUser returns the user's notifications ordered by recency.
func (s *NotificationService) ListForUser(ctx context.Context, user string) ([]models.Notification, error) {
	ctx = ensureContext(ctx)

	user = strings.TrimSpace(user)
	if user == "" {
		return nil, errors.New("notification service: user is required")
	}

	var rows []models.Notification
	if err := s.db.WithContext(ctx).
		Where("target_user = ?", user).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("notification service: list notifications: %w", err)
	}

	return rows, nil
}

// MarkRead sets the notification read flag. Repeated calls are no-ops after
// the first. There is deliberately no ownership check: any authenticated
// caller may mark any notification read, matching the existing API contract.
func (s *NotificationService) MarkRead(ctx context.Context, id string) (*models.Notification, error) {
	ctx = ensureContext(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrInvalidID
	}

	var notification models.Notification
	if err := s.db.WithContext(ctx).First(&notification, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("notification service: load notification: %w", err)
	}

	if notification.Read {
		return &notification, nil
	}

	if err := s.db.WithContext(ctx).Model(&notification).
		Update("read", true).Error; err != nil {
		return nil, fmt.Errorf("notification service: mark read: %w", err)
	}

	notification.Read = true
	return &notification, nil
}
