package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/uNik020/EWS-monitor-Backend/internal/models"
	apperrors "github.com/uNik020/EWS-monitor-Backend/pkg/errors"
	"github.com/uNik020/EWS-monitor-Backend/pkg/logger"
	"github.com/uNik020/EWS-monitor-Backend/pkg/metrics"
)

// Default paging applied when the caller omits or mangles the parameters.
const (
	DefaultPage  = 1
	DefaultLimit = 100
)

// SystemActor is recorded when neither an explicit actor nor a caller
// identity is available.
const SystemActor = "system"

// Timestamps inside history entries use millisecond precision with a fixed
// width so the textual form sorts chronologically.
const actionTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// statusByAction maps the fixed action vocabulary onto alert statuses.
var statusByAction = map[string]string{
	"approve":      models.StatusApproved,
	"stop":         models.StatusStopped,
	"request_info": models.StatusInfoRequested,
	"close":        models.StatusClosed,
}

// ListAlertsInput carries the supported alert listing filters.
type ListAlertsInput struct {
	Query    string
	Severity string
	Status   string
	Page     int
	Limit    int
}

// ApplyActionInput carries one lifecycle action against an alert.
// CallerEmail is the authenticated identity; Actor optionally overrides the
// attribution recorded in history and targeted by the notification.
type ApplyActionInput struct {
	AlertID     string
	Action      string
	Comment     string
	Actor       string
	CallerEmail string
}

// AlertService owns the alert lifecycle: action validation, the
// action-to-status mapping, the append-only history, and the best-effort
// notification side effect.
type AlertService struct {
	db            *gorm.DB
	notifications *NotificationService
	now           func() time.Time
}

// NewAlertService constructs an AlertService.
func NewAlertService(db *gorm.DB, notifications *NotificationService) (*AlertService, error) {
	if db == nil {
		return nil, errors.New("alert service: db is required")
	}
	if notifications == nil {
		return nil, errors.New("alert service: notification service is required")
	}
	return &AlertService{
		db:            db,
		notifications: notifications,
		now:           time.Now,
	}, nil
}

// List returns alerts matching the supplied filters, newest first, together
// with the total number of matches before paging.
func (s *AlertService) List(ctx context.Context, input ListAlertsInput) ([]models.Alert, int64, error) {
	ctx = ensureContext(ctx)

	page := input.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	query := s.db.WithContext(ctx).Model(&models.Alert{})
	if input.Severity != "" {
		query = query.Where("severity = ?", input.Severity)
	}
	if input.Status != "" {
		query = query.Where("status = ?", input.Status)
	}
	if q := strings.TrimSpace(input.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(company) LIKE ? OR LOWER(event_name) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("alert service: count alerts: %w", err)
	}

	var alerts []models.Alert
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&alerts).Error; err != nil {
		return nil, 0, fmt.Errorf("alert service: list alerts: %w", err)
	}

	return alerts, total, nil
}

// Get loads a single alert by id.
func (s *AlertService) Get(ctx context.Context, id string) (*models.Alert, error) {
	ctx = ensureContext(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrInvalidID
	}

	var alert models.Alert
	if err := s.db.WithContext(ctx).First(&alert, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAlertNotFound
		}
		return nil, fmt.Errorf("alert service: load alert: %w", err)
	}

	return &alert, nil
}

// CreateOne persists a single alert.
func (s *AlertService) CreateOne(ctx context.Context, alert *models.Alert) error {
	ctx = ensureContext(ctx)

	if err := s.db.WithContext(ctx).Create(alert).Error; err != nil {
		return fmt.Errorf("alert service: create alert: %w", err)
	}
	return nil
}

// CreateMany persists a batch of alerts.
func (s *AlertService) CreateMany(ctx context.Context, alerts []models.Alert) ([]models.Alert, error) {
	ctx = ensureContext(ctx)

	if len(alerts) == 0 {
		return []models.Alert{}, nil
	}

	if err := s.db.WithContext(ctx).Create(&alerts).Error; err != nil {
		return nil, fmt.Errorf("alert service: create alerts: %w", err)
	}
	return alerts, nil
}

// ApplyAction runs one lifecycle transition: it validates the action, maps
// it onto the new status, appends an immutable history entry, persists both
// in a single row update, and emits a notification as a best-effort side
// effect. There is no transition guard: any action is accepted from any
// current status, including alerts that are already Closed.
func (s *AlertService) ApplyAction(ctx context.Context, input ApplyActionInput) (*models.Alert, error) {
	ctx = ensureContext(ctx)

	action := strings.TrimSpace(input.Action)
	if action == "" {
		return nil, apperrors.ErrMissingAction
	}
	if _, ok := statusByAction[action]; !ok {
		metrics.AlertTransitions.WithLabelValues(action, "rejected").Inc()
		return nil, apperrors.NewBadRequest(fmt.Sprintf("unknown action %q", action))
	}
	if _, err := uuid.Parse(input.AlertID); err != nil {
		return nil, apperrors.ErrInvalidID
	}

	for {
		var alert models.Alert
		if err := s.db.WithContext(ctx).First(&alert, "id = ?", input.AlertID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrAlertNotFound
			}
			metrics.AlertTransitions.WithLabelValues(action, "error").Inc()
			return nil, fmt.Errorf("alert service: load alert: %w", err)
		}

		newStatus := s.statusFor(action, alert.Status)
		entry := s.newActionEntry(action, input)

		// Appending to a nil slice initialises it, covering alerts created
		// without any history.
		history := append(alert.History, entry)

		// Status and history move together in one UPDATE of the alert row, so
		// a reader can never observe the new history without the matching
		// status. The version guard makes the append a compare-and-swap:
		// a concurrent action on the same alert cannot erase this entry.
		res := s.db.WithContext(ctx).
			Model(&models.Alert{}).
			Where("id = ? AND version = ?", alert.ID, alert.Version).
			Updates(map[string]any{
				"status":  newStatus,
				"history": history,
				"version": alert.Version + 1,
			})
		if res.Error != nil {
			metrics.AlertTransitions.WithLabelValues(action, "error").Inc()
			return nil, fmt.Errorf("alert service: save transition: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			// Another writer advanced the row between our load and update.
			// Reload and re-append on top of its history.
			continue
		}

		alert.Status = newStatus
		alert.History = history
		alert.Version++
		metrics.AlertTransitions.WithLabelValues(action, "applied").Inc()

		s.emitNotification(ctx, &alert, entry, action, newStatus)

		return &alert, nil
	}
}

// statusFor maps an action onto the next status. Unknown actions leave the
// status unchanged; the valid path never reaches that branch because
// ApplyAction validates the vocabulary first.
func (s *AlertService) statusFor(action, current string) string {
	if next, ok := statusByAction[action]; ok {
		return next
	}
	return current
}

func (s *AlertService) newActionEntry(action string, input ApplyActionInput) models.ActionEntry {
	var comment *string
	if input.Comment != "" {
		c := input.Comment
		comment = &c
	}

	return models.ActionEntry{
		ID:        uuid.NewString(),
		Action:    action,
		Comment:   comment,
		Actor:     firstNonEmpty(input.Actor, input.CallerEmail, SystemActor),
		Timestamp: s.now().UTC().Format(actionTimestampLayout),
	}
}

// emitNotification creates the notification record for a transition. The
// alert mutation has already committed; a failure here is logged and counted
// but never surfaced, so callers treat the returned alert as the source of
// truth regardless of notification delivery.
func (s *AlertService) emitNotification(ctx context.Context, alert *models.Alert, entry models.ActionEntry, action, newStatus string) {
	target := firstNonEmpty(entry.Actor, SystemActor)

	_, err := s.notifications.Notify(ctx, NotifyInput{
		User:    target,
		Title:   fmt.Sprintf("Alert %s", newStatus),
		Message: fmt.Sprintf("Alert for %s (%s) was %s.", alert.Company, alert.EventName, action),
		AlertID: alert.ID,
	})
	if err != nil {
		metrics.NotificationsEmitted.WithLabelValues("failed").Inc()
		logger.WithModule("alerts").Error("notification emission failed",
			zap.String("alert_id", alert.ID),
			zap.String("action", action),
			zap.Error(err),
		)
		return
	}

	metrics.NotificationsEmitted.WithLabelValues("created").Inc()
}
