package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService("secret", 0)
	id := uuid.New()

	signed, err := tokens.CreateToken(id, "admin")
	require.NoError(t, err)

	claims, err := tokens.ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, id.String(), claims.Subject)
}

func TestTokenExpiresAfterSevenDays(t *testing.T) {
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tokens := NewTokenService("secret", DefaultTokenTTL).WithClock(func() time.Time { return issued })

	signed, err := tokens.CreateToken(uuid.New(), "user")
	require.NoError(t, err)

	claims, err := tokens.ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, issued.Add(7*24*time.Hour), claims.ExpiresAt.Time.UTC())

	almost := tokens.WithClock(func() time.Time { return issued.Add(7*24*time.Hour - time.Minute) })
	_, err = almost.ValidateToken(signed)
	assert.NoError(t, err)

	late := tokens.WithClock(func() time.Time { return issued.Add(7*24*time.Hour + time.Minute) })
	_, err = late.ValidateToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejected(t *testing.T) {
	tokens := NewTokenService("secret", time.Hour)
	id := uuid.New()

	otherKey, err := NewTokenService("another-secret", time.Hour).CreateToken(id, "user")
	require.NoError(t, err)

	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{
		UserID: id.String(),
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: id.String(),
		Role:   "admin",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	badUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: "not-a-uuid",
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"empty", ""},
		{"signed with another key", otherKey},
		{"wrong algorithm", wrongAlg},
		{"no expiry", noExpiry},
		{"malformed user id", badUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.ValidateToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)

	assert.NoError(t, ComparePasswords(hash, "pw1"))
	assert.Error(t, ComparePasswords(hash, "pw2"))
}
