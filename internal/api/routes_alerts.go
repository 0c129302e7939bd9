package api

import (
	"github.com/gin-gonic/gin"

	"github.com/uNik020/EWS-monitor-Backend/internal/handlers"
)

func registerAlertRoutes(group *gin.RouterGroup, h *handlers.AlertHandler) {
	alerts := group.Group("/alerts")

	alerts.GET("", h.List)
	alerts.POST("", h.Create)
	alerts.GET("/:id", h.Get)
	alerts.PATCH("/:id", h.PatchAction)
}
