package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	iauth "github.com/uNik020/EWS-monitor-Backend/internal/auth"
	"github.com/uNik020/EWS-monitor-Backend/internal/notifications"
	"github.com/uNik020/EWS-monitor-Backend/internal/services"
	appErrors "github.com/uNik020/EWS-monitor-Backend/pkg/errors"
	"github.com/uNik020/EWS-monitor-Backend/pkg/response"
)

// NotificationHandler exposes the notification listing, mark-read, and live
// stream endpoints.
type NotificationHandler struct {
	notifications *services.NotificationService
	hub           *notifications.Hub
	jwt           *iauth.JWTService
}

// NewNotificationHandler constructs a NotificationHandler. The hub and jwt
// service are required for the stream endpoint.
func NewNotificationHandler(svc *services.NotificationService, hub *notifications.Hub, jwt *iauth.JWTService) (*NotificationHandler, error) {
	if svc == nil {
		return nil, errors.New("notification handler: notification service is required")
	}
	if hub == nil {
		return nil, errors.New("notification handler: hub is required")
	}
	if jwt == nil {
		return nil, errors.New("notification handler: jwt service is required")
	}
	return &NotificationHandler{notifications: svc, hub: hub, jwt: jwt}, nil
}

// List returns the caller's notifications, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	notifs, err := h.notifications.ListForUser(requestContext(c), callerEmail(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, notifs)
}

// MarkRead flips the read flag on a notification and returns the updated
// record. Any authenticated caller may mark any notification.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notif, err := h.notifications.MarkRead(requestContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, notif)
}

// Stream upgrades the connection to a WebSocket delivering the caller's
// notifications as they are created. Browsers cannot set headers on WebSocket
// handshakes, so the token may arrive as a query parameter instead.
func (h *NotificationHandler) Stream(c *gin.Context) {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		if authz := c.GetHeader("Authorization"); authz != "" {
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token = strings.TrimSpace(parts[1])
			}
		}
	}
	if token == "" {
		response.Error(c, appErrors.ErrNoToken)
		return
	}

	claims, err := h.jwt.Verify(token)
	if err != nil {
		response.Error(c, appErrors.ErrInvalidToken)
		return
	}

	h.hub.Serve(claims.Email, c.Writer, c.Request)
}
