package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uNik020/EWS-monitor-Backend/internal/models"
	"github.com/uNik020/EWS-monitor-Backend/internal/services"
	"github.com/uNik020/EWS-monitor-Backend/pkg/response"
)

// EventHandler exposes the event ingestion and listing endpoints.
type EventHandler struct {
	events *services.EventService
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(events *services.EventService) (*EventHandler, error) {
	if events == nil {
		return nil, errors.New("event handler: event service is required")
	}
	return &EventHandler{events: events}, nil
}

// Create accepts one event object or an array of event objects.
func (h *EventHandler) Create(c *gin.Context) {
	items, bulk, ok := bindSingleOrBulk[models.Event](c)
	if !ok {
		return
	}

	if bulk {
		created, err := h.events.CreateMany(requestContext(c), items)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, http.StatusCreated, created)
		return
	}

	event := items[0]
	if err := h.events.CreateOne(requestContext(c), &event); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, event)
}

// List returns all events, newest first.
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.events.List(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, events)
}
