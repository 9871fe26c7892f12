package util

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	password := "Secret123!"

	hashed, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEqual(t, password, hashed)

	require.NoError(t, CheckPassword(password, hashed))
	require.Error(t, CheckPassword("wrong-password", hashed))

	// Same password hashes differently each time.
	hashedAgain, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEqual(t, hashed, hashedAgain)
}

func TestGenerateBatchCode(t *testing.T) {
	code := GenerateBatchCode("in")
	require.Regexp(t, regexp.MustCompile(`^IN-\d{6}-[A-Z0-9]{6}$`), code)

	out := GenerateBatchCode("out")
	require.Regexp(t, regexp.MustCompile(`^OUT-\d{6}-[A-Z0-9]{6}$`), out)

	require.NotEqual(t, GenerateBatchCode("in"), GenerateBatchCode("in"))
}

func TestGenerateRandomSlug(t *testing.T) {
	slug := GenerateRandomSlug("Paracetamol 500mg")
	require.Regexp(t, regexp.MustCompile(`^paracetamol-500mg-[a-zA-Z0-9]{8}$`), slug)

	require.NotEqual(t, GenerateRandomSlug("Ibuprofen"), GenerateRandomSlug("Ibuprofen"))
}

func TestTruncateContent(t *testing.T) {
	require.Equal(t, "short", TruncateContent("short", 10))
	require.Equal(t, "long conte...", TruncateContent("long content here", 10))
}
