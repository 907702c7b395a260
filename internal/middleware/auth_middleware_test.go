package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eventstay/hotel-booking-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestJWTService() *jwt.Service {
	return jwt.NewService("test-access-secret", "test-refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func setupTestRouter(jwtService *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(jwtService), func(c *gin.Context) {
		userCtx, _ := GetUserContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userCtx.UserID.String()})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := setupTestJWTService()
	router := setupTestRouter(jwtService)

	t.Run("Valid Token", func(t *testing.T) {
		userID := uuid.New()
		token, err := jwtService.GenerateAccessToken(userID, "attendee@example.com")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]string
		err = json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), response["user_id"])
	})

	t.Run("Missing Header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "MISSING_AUTH_HEADER")
	})

	t.Run("Malformed Header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc123")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_AUTH_FORMAT")
	})

	t.Run("Empty Token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer ")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Invalid Token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-real-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
	})

	t.Run("Expired Token", func(t *testing.T) {
		expired := jwt.NewService("test-access-secret", "test-refresh-secret", -time.Minute, time.Hour)
		token, err := expired.GenerateAccessToken(uuid.New(), "attendee@example.com")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})

	t.Run("Refresh Token Rejected", func(t *testing.T) {
		token, err := jwtService.GenerateRefreshToken(uuid.New(), "attendee@example.com")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetUserContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Missing", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		_, exists := GetUserContext(c)
		assert.False(t, exists)
	})

	t.Run("Present", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		userID := uuid.New()
		c.Set(UserContextKey, UserContext{UserID: userID, Email: "attendee@example.com"})

		userCtx, exists := GetUserContext(c)
		require.True(t, exists)
		assert.Equal(t, userID, userCtx.UserID)
	})
}
