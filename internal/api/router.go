package api

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	iauth "github.com/uNik020/EWS-monitor-Backend/internal/auth"
	"github.com/uNik020/EWS-monitor-Backend/internal/handlers"
	"github.com/uNik020/EWS-monitor-Backend/internal/middleware"
	"github.com/uNik020/EWS-monitor-Backend/internal/notifications"
	"github.com/uNik020/EWS-monitor-Backend/internal/services"
)

// Dependencies bundles everything the router needs to assemble the API.
type Dependencies struct {
	DB       *gorm.DB
	JWT      *iauth.JWTService
	Verifier iauth.CredentialVerifier
	Hub      *notifications.Hub

	// AllowedOrigins restricts CORS; empty allows all origins.
	AllowedOrigins []string

	// LoginRateLimit caps login attempts per client within LoginRateWindow.
	// Zero disables the limiter.
	LoginRateLimit  int
	LoginRateWindow time.Duration
}

// NewRouter wires services, handlers, and middleware into a gin engine.
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	if deps.DB == nil {
		return nil, errors.New("api: db is required")
	}
	if deps.JWT == nil {
		return nil, errors.New("api: jwt service is required")
	}
	if deps.Verifier == nil {
		return nil, errors.New("api: credential verifier is required")
	}
	if deps.Hub == nil {
		return nil, errors.New("api: notification hub is required")
	}

	notificationSvc, err := services.NewNotificationService(deps.DB, deps.Hub)
	if err != nil {
		return nil, err
	}
	alertSvc, err := services.NewAlertService(deps.DB, notificationSvc)
	if err != nil {
		return nil, err
	}
	eventSvc, err := services.NewEventService(deps.DB)
	if err != nil {
		return nil, err
	}
	ruleSvc, err := services.NewRuleService(deps.DB)
	if err != nil {
		return nil, err
	}

	authHandler, err := handlers.NewAuthHandler(deps.Verifier, deps.JWT)
	if err != nil {
		return nil, err
	}
	alertHandler, err := handlers.NewAlertHandler(alertSvc)
	if err != nil {
		return nil, err
	}
	eventHandler, err := handlers.NewEventHandler(eventSvc)
	if err != nil {
		return nil, err
	}
	ruleHandler, err := handlers.NewRuleHandler(ruleSvc)
	if err != nil {
		return nil, err
	}
	notificationHandler, err := handlers.NewNotificationHandler(notificationSvc, deps.Hub, deps.JWT)
	if err != nil {
		return nil, err
	}
	healthHandler, err := handlers.NewHealthHandler(deps.DB)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(
		middleware.Recovery(),
		middleware.Logger(),
		middleware.Metrics(),
		middleware.SecurityHeaders(),
		middleware.CORS(deps.AllowedOrigins...),
	)

	registerMonitoringRoutes(router, healthHandler)
	registerAuthRoutes(router, authHandler, deps.LoginRateLimit, deps.LoginRateWindow)

	// The stream endpoint authenticates inside the handler because browser
	// WebSocket handshakes cannot carry an Authorization header.
	router.GET("/api/notifications/stream", notificationHandler.Stream)

	protected := router.Group("/api")
	protected.Use(middleware.Auth(deps.JWT))
	registerAlertRoutes(protected, alertHandler)
	registerCollectionRoutes(protected, eventHandler, ruleHandler)
	registerNotificationRoutes(protected, notificationHandler)

	return router, nil
}
