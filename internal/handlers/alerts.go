package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uNik020/EWS-monitor-Backend/internal/models"
	"github.com/uNik020/EWS-monitor-Backend/internal/services"
	"github.com/uNik020/EWS-monitor-Backend/pkg/response"
)

// AlertHandler exposes the alert listing, retrieval, ingestion, and lifecycle
// action endpoints.
type AlertHandler struct {
	alerts *services.AlertService
}

// NewAlertHandler constructs an AlertHandler.
func NewAlertHandler(alerts *services.AlertService) (*AlertHandler, error) {
	if alerts == nil {
		return nil, errors.New("alert handler: alert service is required")
	}
	return &AlertHandler{alerts: alerts}, nil
}

// List returns alerts matching the optional q, severity, and status filters,
// paginated newest first.
func (h *AlertHandler) List(c *gin.Context) {
	input := services.ListAlertsInput{
		Query:    c.Query("q"),
		Severity: c.Query("severity"),
		Status:   c.Query("status"),
		Page:     parseIntQuery(c, "page", services.DefaultPage),
		Limit:    parseIntQuery(c, "limit", services.DefaultLimit),
	}

	alerts, total, err := h.alerts.List(requestContext(c), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	page := input.Page
	if page < 1 {
		page = services.DefaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = services.DefaultLimit
	}

	response.SuccessWithMeta(c, http.StatusOK, alerts, &response.Meta{
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Get returns a single alert by id.
func (h *AlertHandler) Get(c *gin.Context) {
	alert, err := h.alerts.Get(requestContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, alert)
}

// Create accepts one alert object or an array of alert objects and persists
// them, echoing back what was stored in the shape that arrived.
func (h *AlertHandler) Create(c *gin.Context) {
	items, bulk, ok := bindSingleOrBulk[models.Alert](c)
	if !ok {
		return
	}

	if bulk {
		created, err := h.alerts.CreateMany(requestContext(c), items)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, http.StatusCreated, created)
		return
	}

	alert := items[0]
	if err := h.alerts.CreateOne(requestContext(c), &alert); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, alert)
}

type actionRequest struct {
	Action  string `json:"action"`
	Comment string `json:"comment"`
	Actor   string `json:"actor"`
}

// PatchAction applies one lifecycle action to an alert and returns the
// updated record.
func (h *AlertHandler) PatchAction(c *gin.Context) {
	var req actionRequest
	if !bindAndValidate(c, &req) {
		return
	}

	alert, err := h.alerts.ApplyAction(requestContext(c), services.ApplyActionInput{
		AlertID:     c.Param("id"),
		Action:      req.Action,
		Comment:     req.Comment,
		Actor:       req.Actor,
		CallerEmail: callerEmail(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, alert)
}
