package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/vkapoor/studentinfo/internal/app/models"
	"github.com/vkapoor/studentinfo/internal/app/models/dto"
	"github.com/vkapoor/studentinfo/internal/pkg/auth"
)

// Context keys set by the auth middleware
const (
	ContextUserIDKey   = "userID"
	ContextUsernameKey = "username"
)

// RoleResolver resolves the current role of a user. Roles are re-read per
// request so deactivation and role changes take effect before token expiry.
type RoleResolver interface {
	GetRoleByID(ctx context.Context, userID int64) (models.RoleType, error)
}

// AuthMiddleware guards protected routes
type AuthMiddleware struct {
	jwtService *auth.JWTService
	roles      RoleResolver
	logger     zerolog.Logger
}

// NewAuthMiddleware creates a new auth middleware instance
func NewAuthMiddleware(jwtService *auth.JWTService, roles RoleResolver, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		roles:      roles,
		logger:     logger,
	}
}

// RequireToken rejects requests without a valid bearer token and stores the
// caller identity in the request context.
func (m *AuthMiddleware) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewMessageResponse("Token is missing!"))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewMessageResponse("Token is invalid!"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			m.logger.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewMessageResponse("Token is invalid!"))
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}

// RequireRole allows only callers whose current role is one of the given
// roles. Must run after RequireToken.
func (m *AuthMiddleware) RequireRole(allowed ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewMessageResponse("Token is missing!"))
			return
		}

		role, err := m.roles.GetRoleByID(c.Request.Context(), userID)
		if err != nil {
			m.logger.Warn().Err(err).Int64("userID", userID).Msg("Role lookup failed")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewMessageResponse("Access denied!"))
			return
		}

		for _, r := range allowed {
			if role == r {
				c.Next()
				return
			}
		}

		m.logger.Warn().Int64("userID", userID).Str("role", string(role)).Str("path", c.Request.URL.Path).Msg("Access denied")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewMessageResponse("Access denied!"))
	}
}

// GetUserID reads the authenticated user's id from the request context
func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
