package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkapoor/studentinfo/internal/app/models"
	"github.com/vkapoor/studentinfo/internal/pkg/apperrors"
	"github.com/vkapoor/studentinfo/internal/pkg/auth"
)

type stubRoleResolver struct {
	roles map[int64]models.RoleType
}

func (s *stubRoleResolver) GetRoleByID(_ context.Context, userID int64) (models.RoleType, error) {
	role, ok := s.roles[userID]
	if !ok {
		return "", apperrors.ErrUserNotFound
	}
	return role, nil
}

func newTestRouter(t *testing.T, allowed ...models.RoleType) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "studentinfo-test",
	})

	resolver := &stubRoleResolver{roles: map[int64]models.RoleType{
		1: models.RoleHOD,
		2: models.RoleFaculty,
	}}

	mw := NewAuthMiddleware(jwtService, resolver, zerolog.Nop())

	router := gin.New()
	group := router.Group("/protected")
	group.Use(mw.RequireToken(), mw.RequireRole(allowed...))
	group.GET("", func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	return router, jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, userID int64, role models.RoleType) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken(&models.User{
		ID:       userID,
		Username: "someone@example.com",
		UserType: role,
	})
	require.NoError(t, err)
	return token
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireToken_Missing(t *testing.T) {
	router, _ := newTestRouter(t, models.RoleHOD)

	w := doRequest(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Token is missing!"}`, w.Body.String())
}

func TestRequireToken_Malformed(t *testing.T) {
	router, _ := newTestRouter(t, models.RoleHOD)

	for _, header := range []string{"garbage", "Bearer ", "Bearer not.a.token"} {
		w := doRequest(router, header)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"Token is invalid!"}`, w.Body.String())
	}
}

func TestRequireToken_Expired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, _ := newTestRouter(t, models.RoleHOD)

	expired := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    -time.Minute,
		TokenIssuer: "studentinfo-test",
	})
	token := tokenFor(t, expired, 1, models.RoleHOD)

	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Token is invalid!"}`, w.Body.String())
}

func TestRequireRole_Allowed(t *testing.T) {
	router, jwtService := newTestRouter(t, models.RoleHOD)

	token := tokenFor(t, jwtService, 1, models.RoleHOD)
	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":1}`, w.Body.String())
}

func TestRequireRole_Denied(t *testing.T) {
	router, jwtService := newTestRouter(t, models.RoleHOD)

	token := tokenFor(t, jwtService, 2, models.RoleFaculty)
	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"Access denied!"}`, w.Body.String())
}

func TestRequireRole_HODAllowedOnFacultyRoutes(t *testing.T) {
	router, jwtService := newTestRouter(t, models.RoleHOD, models.RoleFaculty)

	for userID, role := range map[int64]models.RoleType{1: models.RoleHOD, 2: models.RoleFaculty} {
		token := tokenFor(t, jwtService, userID, role)
		w := doRequest(router, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

// The role claim inside the token is not trusted. A token minted while the
// account existed stops working once the account is deactivated or removed.
func TestRequireRole_RevokedUser(t *testing.T) {
	router, jwtService := newTestRouter(t, models.RoleHOD)

	token := tokenFor(t, jwtService, 99, models.RoleHOD)
	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"Access denied!"}`, w.Body.String())
}
