package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJWTMakerRoundTrip(t *testing.T) {
	maker, err := NewJWTMaker(strings.Repeat("x", 32))
	require.NoError(t, err)

	accessToken, payload, err := maker.CreateToken("user-1", "nurse", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.Equal(t, "user-1", payload.Subject)
	require.Equal(t, "nurse", payload.Role)

	verified, err := maker.VerifyToken(accessToken)
	require.NoError(t, err)
	require.Equal(t, payload.ID, verified.ID)
	require.Equal(t, "user-1", verified.Subject)
	require.Equal(t, "nurse", verified.Role)
}

func TestJWTMakerExpiredToken(t *testing.T) {
	maker, err := NewJWTMaker(strings.Repeat("x", 32))
	require.NoError(t, err)

	accessToken, _, err := maker.CreateToken("user-1", "admin", -time.Minute)
	require.NoError(t, err)

	_, err = maker.VerifyToken(accessToken)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTMakerInvalidToken(t *testing.T) {
	maker, err := NewJWTMaker(strings.Repeat("x", 32))
	require.NoError(t, err)

	_, err = maker.VerifyToken("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTMakerShortSecret(t *testing.T) {
	_, err := NewJWTMaker("too-short")
	require.Error(t, err)
}
