package api

import (
	"github.com/gin-gonic/gin"

	"github.com/uNik020/EWS-monitor-Backend/internal/handlers"
)

func registerNotificationRoutes(group *gin.RouterGroup, h *handlers.NotificationHandler) {
	notifications := group.Group("/notifications")

	notifications.GET("", h.List)
	notifications.PATCH("/:id/read", h.MarkRead)
}
