package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	appErrors "github.com/uNik020/EWS-monitor-Backend/pkg/errors"
	"github.com/uNik020/EWS-monitor-Backend/pkg/response"
)

// HealthHandler reports process and database liveness.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(db *gorm.DB) (*HealthHandler, error) {
	if db == nil {
		return nil, errors.New("health handler: db is required")
	}
	return &HealthHandler{db: db}, nil
}

// Check pings the database and reports service health.
func (h *HealthHandler) Check(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, "database unavailable"))
		return
	}

	if err := sqlDB.PingContext(requestContext(c)); err != nil {
		response.Error(c, appErrors.Wrap(err, "database unavailable"))
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "ok"})
}
