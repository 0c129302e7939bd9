package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	iauth "github.com/uNik020/EWS-monitor-Backend/internal/auth"
	"github.com/uNik020/EWS-monitor-Backend/pkg/errors"
	"github.com/uNik020/EWS-monitor-Backend/pkg/response"
)

const (
	CtxClaimsKey = "authClaims"
	CtxEmailKey  = "authEmail"
)

// Auth enforces bearer token authentication using the supplied JWT service.
// The three rejection cases stay distinguishable: absent header, header
// without a token segment, and a token that fails verification.
func Auth(jwt *iauth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authz := c.GetHeader("Authorization")
		if authz == "" {
			response.Error(c, errors.ErrNoToken)
			c.Abort()
			return
		}

		token := extractBearerToken(authz)
		if token == "" {
			response.Error(c, errors.ErrBadHeader)
			c.Abort()
			return
		}

		claims, err := jwt.Verify(token)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			response.Error(c, errors.ErrInvalidToken)
			c.Abort()
			return
		}

		// Propagate identity into request context
		c.Set(CtxClaimsKey, claims)
		c.Set(CtxEmailKey, claims.Email)

		c.Next()
	}
}

func extractBearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
