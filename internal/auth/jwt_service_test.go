package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"phorum/internal/model"
)

func TestJWTService_SessionTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	user := &model.User{ID: 7, Username: "alice", Role: model.RoleRegular}

	token, sessionID, err := svc.GenerateSessionToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, sessionID)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, string(model.RoleRegular), claims.Role)
	assert.Equal(t, sessionID, claims.ID)

	extracted, err := svc.ExtractSessionID(token)
	assert.NoError(t, err)
	assert.Equal(t, sessionID, extracted)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	minter := NewJWTService("secret-a", time.Hour)
	verifier := NewJWTService("secret-b", time.Hour)

	token, _, err := minter.GenerateSessionToken(&model.User{ID: 7, Username: "alice"})
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID:   7,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "session-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	token, err := expired.SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
