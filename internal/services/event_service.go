package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/uNik020/EWS-monitor-Backend/internal/models"
)

// EventService owns the event collection. Events are immutable once created.
type EventService struct {
	db *gorm.DB
}

// NewEventService constructs an EventService.
func NewEventService(db *gorm.DB) (*EventService, error) {
	if db == nil {
		return nil, errors.New("event service: db is required")
	}
	return &EventService{db: db}, nil
}

// CreateOne persists a single event.
func (s *EventService) CreateOne(ctx context.Context, event *models.Event) error {
	ctx = ensureContext(ctx)

	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("event service: create event: %w", err)
	}
	return nil
}

// CreateMany persists a batch of events.
func (s *EventService) CreateMany(ctx context.Context, events []models.Event) ([]models.Event, error) {
	ctx = ensureContext(ctx)

	if len(events) == 0 {
		return []models.Event{}, nil
	}

	if err := s.db.WithContext(ctx).Create(&events).Error; err != nil {
		return nil, fmt.Errorf("event service: create events: %w", err)
	}
	return events, nil
}

// List returns all events in reverse creation order.
func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	ctx = ensureContext(ctx)

	var events []models.Event
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("event service: list events: %w", err)
	}
	return events, nil
}
