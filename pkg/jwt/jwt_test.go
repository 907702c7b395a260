package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "test-access-secret"
	testRefreshSecret = "test-refresh-secret"
)

func newTestService() *Service {
	return NewService(testAccessSecret, testRefreshSecret, 15*time.Minute, 7*24*time.Hour)
}

func TestNewService(t *testing.T) {
	service := newTestService()

	assert.Equal(t, testAccessSecret, service.accessSecret)
	assert.Equal(t, testRefreshSecret, service.refreshSecret)
	assert.Equal(t, 15*time.Minute, service.accessTokenExpiry)
	assert.Equal(t, 7*24*time.Hour, service.refreshTokenExpiry)
}

func TestGenerateAccessToken(t *testing.T) {
	service := newTestService()
	userID := uuid.New()
	email := "attendee@example.com"

	token, err := service.GenerateAccessToken(userID, email)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, email, claims.Email)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestGenerateRefreshToken(t *testing.T) {
	service := newTestService()
	userID := uuid.New()

	token, err := service.GenerateRefreshToken(userID, "attendee@example.com")
	require.NoError(t, err)

	claims, err := service.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateAccessToken(t *testing.T) {
	service := newTestService()
	userID := uuid.New()

	t.Run("Wrong Token Type", func(t *testing.T) {
		refresh, err := service.GenerateRefreshToken(userID, "attendee@example.com")
		require.NoError(t, err)

		_, err = service.ValidateAccessToken(refresh)
		assert.Error(t, err)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		other := NewService("some-other-secret", testRefreshSecret, 15*time.Minute, time.Hour)
		token, err := other.GenerateAccessToken(userID, "attendee@example.com")
		require.NoError(t, err)

		_, err = service.ValidateAccessToken(token)
		assert.Error(t, err)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		_, err := service.ValidateAccessToken("not-a-jwt")
		assert.Error(t, err)
	})

	t.Run("Expired Token", func(t *testing.T) {
		expired := NewService(testAccessSecret, testRefreshSecret, -time.Minute, time.Hour)
		token, err := expired.GenerateAccessToken(userID, "attendee@example.com")
		require.NoError(t, err)

		_, err = service.ValidateAccessToken(token)
		assert.Error(t, err)
	})
}

func TestIsTokenExpired(t *testing.T) {
	service := newTestService()
	userID := uuid.New()

	t.Run("Fresh Token", func(t *testing.T) {
		token, err := service.GenerateAccessToken(userID, "attendee@example.com")
		require.NoError(t, err)

		assert.False(t, service.IsTokenExpired(token))
	})

	t.Run("Expired Token", func(t *testing.T) {
		expired := NewService(testAccessSecret, testRefreshSecret, -time.Minute, time.Hour)
		token, err := expired.GenerateAccessToken(userID, "attendee@example.com")
		require.NoError(t, err)

		assert.True(t, service.IsTokenExpired(token))
	})

	t.Run("Garbage Token", func(t *testing.T) {
		assert.False(t, service.IsTokenExpired("not-a-jwt"))
	})
}
