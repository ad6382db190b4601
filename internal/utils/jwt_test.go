package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundtrip(t *testing.T) {
	tok, err := SignJWT("s3cret", 42, "official", "a@x.com", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT("s3cret", tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "official", claims.Role)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestJWTWrongSecret(t *testing.T) {
	tok, err := SignJWT("s3cret", 42, "official", "a@x.com", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT("other", tok)
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	tok, err := SignJWT("s3cret", 42, "official", "a@x.com", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT("s3cret", tok)
	assert.Error(t, err)
}

func TestJWTGarbage(t *testing.T) {
	_, err := ParseJWT("s3cret", "not.a.token")
	assert.Error(t, err)
}
