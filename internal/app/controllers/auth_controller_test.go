package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/vkapoor/studentinfo/internal/app/models"
	"github.com/vkapoor/studentinfo/internal/app/models/dto"
	"github.com/vkapoor/studentinfo/internal/pkg/apperrors"
)

type fakeAuthService struct {
	resp *dto.LoginResponse
	err  error
}

func (f *fakeAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.LoginResponse, error) {
	return f.resp, f.err
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newLoginRouter(svc *fakeAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/login", NewAuthController(svc).Login)
	return router
}

func TestLogin_ReturnsToken(t *testing.T) {
	router := newLoginRouter(&fakeAuthService{
		resp: &dto.LoginResponse{
			Message: "Login successful!",
			Token:   "signed-token",
			User: dto.UserInfo{
				UserID:   1,
				Username: "hod@example.com",
				UserType: models.RoleHOD,
				FullName: "Dr. John Smith",
			},
		},
	})

	w := postJSON(router, "/api/login", `{"username":"hod@example.com","password":"hod123"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"message": "Login successful!",
		"token": "signed-token",
		"user": {
			"user_id": 1,
			"username": "hod@example.com",
			"user_type": "HOD",
			"full_name": "Dr. John Smith"
		}
	}`, w.Body.String())
}

func TestLogin_MissingFields(t *testing.T) {
	router := newLoginRouter(&fakeAuthService{})

	for _, body := range []string{`{}`, `{"username":"hod@example.com"}`, `not-json`} {
		w := postJSON(router, "/api/login", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Username and password required!"}`, w.Body.String())
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router := newLoginRouter(&fakeAuthService{err: apperrors.ErrInvalidCredentials})

	w := postJSON(router, "/api/login", `{"username":"hod@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Invalid credentials!"}`, w.Body.String())
}
