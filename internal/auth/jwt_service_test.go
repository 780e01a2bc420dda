package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateAccessToken(42, "owner@mabar.local", "owner")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "owner@mabar.local", claims.Email)
	assert.Equal(t, "owner", claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateAccessToken(1, "user@mabar.local", "user")
	assert.NoError(t, err)

	claims, err := NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	claims, err := NewJWTService("test-secret").ValidateToken("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
