package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	iauth "github.com/uNik020/EWS-monitor-Backend/internal/auth"
	appErrors "github.com/uNik020/EWS-monitor-Backend/pkg/errors"
	"github.com/uNik020/EWS-monitor-Backend/pkg/logger"
	"github.com/uNik020/EWS-monitor-Backend/pkg/metrics"
	"github.com/uNik020/EWS-monitor-Backend/pkg/response"
)

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	verifier iauth.CredentialVerifier
	jwt      *iauth.JWTService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(verifier iauth.CredentialVerifier, jwt *iauth.JWTService) (*AuthHandler, error) {
	if verifier == nil {
		return nil, errors.New("auth handler: verifier is required")
	}
	if jwt == nil {
		return nil, errors.New("auth handler: jwt service is required")
	}
	return &AuthHandler{verifier: verifier, jwt: jwt}, nil
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges valid credentials for a signed bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	identity, err := h.verifier.Verify(requestContext(c), req.Email, req.Password)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("failure").Inc()
		if errors.Is(err, iauth.ErrInvalidCredentials) {
			response.Error(c, appErrors.ErrInvalidCredentials)
			return
		}
		logger.WithModule("auth").Error("credential verification failed", zap.Error(err))
		response.Error(c, appErrors.ErrInternalServer)
		return
	}

	token, err := h.jwt.Sign(identity.Email)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("failure").Inc()
		logger.WithModule("auth").Error("token signing failed", zap.Error(err))
		response.Error(c, appErrors.ErrInternalServer)
		return
	}

	metrics.AuthAttempts.WithLabelValues("success").Inc()
	response.Success(c, http.StatusOK, loginResponse{Token: token})
}
