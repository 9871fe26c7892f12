package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("nurse@uic.edu.ph"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("a@b"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("Secret123!"))

	testCases := []struct {
		name     string
		password string
	}{
		{name: "too short", password: "Ab1!"},
		{name: "no digit", password: "Password!"},
		{name: "no uppercase", password: "password1!"},
		{name: "no lowercase", password: "PASSWORD1!"},
		{name: "no special character", password: "Password1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, ValidatePassword(tc.password))
		})
	}
}

func TestValidateFullName(t *testing.T) {
	assert.NoError(t, ValidateFullName("Maria Santos"))
	assert.Error(t, ValidateFullName("x"))
	assert.Error(t, ValidateFullName("Robert123"))
}

func TestValidateIDNumber(t *testing.T) {
	assert.NoError(t, ValidateIDNumber("202112345"))
	assert.Error(t, ValidateIDNumber("12345"))
	assert.Error(t, ValidateIDNumber("abc123456"))
	assert.Error(t, ValidateIDNumber("1234567890123"))
}

func TestValidateQuantity(t *testing.T) {
	assert.NoError(t, ValidateQuantity(1))
	assert.Error(t, ValidateQuantity(0))
	assert.Error(t, ValidateQuantity(-5))
}

func TestValidateLowStockThreshold(t *testing.T) {
	assert.NoError(t, ValidateLowStockThreshold(0))
	assert.NoError(t, ValidateLowStockThreshold(20))
	assert.Error(t, ValidateLowStockThreshold(-1))
}
