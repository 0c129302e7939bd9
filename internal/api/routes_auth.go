package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uNik020/EWS-monitor-Backend/internal/handlers"
	"github.com/uNik020/EWS-monitor-Backend/internal/middleware"
)

func registerAuthRoutes(router *gin.Engine, h *handlers.AuthHandler, rateLimit int, rateWindow time.Duration) {
	login := router.Group("/api/auth")
	if rateLimit > 0 {
		if rateWindow <= 0 {
			rateWindow = time.Minute
		}
		login.Use(middleware.RateLimit(rateLimit, rateWindow))
	}

	login.POST("/login", h.Login)
}
