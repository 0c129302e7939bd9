package api

import (
	"github.com/gin-gonic/gin"

	"github.com/uNik020/EWS-monitor-Backend/internal/handlers"
)

func registerCollectionRoutes(group *gin.RouterGroup, events *handlers.EventHandler, rules *handlers.RuleHandler) {
	group.GET("/events", events.List)
	group.POST("/events", events.Create)

	group.GET("/rules", rules.List)
	group.POST("/rules", rules.Create)
}
