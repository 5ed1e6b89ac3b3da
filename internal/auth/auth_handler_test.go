package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go-hrm/internal/auth"
	autherrors "go-hrm/internal/auth/errors"
	authMock "go-hrm/internal/auth/mock"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	router := setupAuthRouter()
	router.POST("/login", handler.Login)

	t.Run("success", func(t *testing.T) {
		reqBody := auth.LoginRequest{
			Email:    "owner@example.com",
			Password: "password123",
		}
		body, _ := json.Marshal(reqBody)

		expectedResp := auth.AuthResponse{
			ID:    "user-1",
			Name:  "Owner",
			Email: "owner@example.com",
			Token: "access-token",
		}

		mockService.EXPECT().
			Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(expectedResp, nil)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, true, res["success"])
		data := res["data"].(map[string]interface{})
		assert.Equal(t, "owner@example.com", data["email"])
		assert.Equal(t, "access-token", data["token"])
	})

	t.Run("negative wrong credentials", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(auth.AuthResponse{}, autherrors.ErrInvalidCredentials)

		body, _ := json.Marshal(auth.LoginRequest{Email: "wrong@example.com", Password: "nope123"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid email or password")
	})

	t.Run("negative malformed body", func(t *testing.T) {
		// Service tidak boleh dipanggil untuk body yang gagal binding.
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"email":"not-an-email"}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	router := setupAuthRouter()
	router.POST("/register", handler.Register)

	t.Run("success", func(t *testing.T) {
		reqBody := auth.RegisterRequest{
			Name:            "New Owner",
			Email:           "new@example.com",
			Password:        "password123",
			ConfirmPassword: "password123",
		}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().
			Register(gomock.Any(), reqBody).
			Return(auth.AuthResponse{ID: "user-2", Name: "New Owner", Email: "new@example.com", Token: "t"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "User registered successfully")
	})

	t.Run("negative duplicate email", func(t *testing.T) {
		reqBody := auth.RegisterRequest{
			Name:            "New Owner",
			Email:           "new@example.com",
			Password:        "password123",
			ConfirmPassword: "password123",
		}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(auth.AuthResponse{}, autherrors.ErrEmailAlreadyRegistered)

		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "already exists")
	})
}

func TestHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	router := setupAuthRouter()
	router.GET("/me", func(c *gin.Context) { c.Set("owner_id", "user-1") }, handler.Me)
	router.GET("/me-anon", handler.Me)

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			GetMe(gomock.Any(), "user-1").
			Return(auth.AuthResponse{ID: "user-1", Name: "Owner", Email: "owner@example.com"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "owner@example.com")
	})

	t.Run("negative no principal in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me-anon", nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_VerifyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	router := setupAuthRouter()
	router.GET("/verify", handler.VerifyToken)

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			VerifyToken(gomock.Any(), "valid-token").
			Return(auth.AuthResponse{ID: "user-1", Email: "owner@example.com"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/verify", nil)
		req.Header.Set("Authorization", "Bearer valid-token")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Token is valid")
	})

	t.Run("negative missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/verify", nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "No token provided")
	})

	t.Run("negative expired token", func(t *testing.T) {
		mockService.EXPECT().
			VerifyToken(gomock.Any(), "stale-token").
			Return(auth.AuthResponse{}, autherrors.ErrTokenExpired)

		req := httptest.NewRequest(http.MethodGet, "/verify", nil)
		req.Header.Set("Authorization", "Bearer stale-token")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})
}
