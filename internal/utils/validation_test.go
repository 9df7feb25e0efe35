package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	ok, err := ValidateEmail("agent1@lifestylepro.co.za")
	assert.True(t, ok)
	assert.NoError(t, err)

	ok, err = ValidateEmail("missing-at-sign")
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestValidatePhone(t *testing.T) {
	for _, phone := range []string{"0821234567", "+27821234567", "27821234567"} {
		ok, err := ValidatePhone(phone)
		assert.True(t, ok, phone)
		assert.NoError(t, err)
	}

	for _, phone := range []string{"", "12345", "0021234567", "082123456"} {
		ok, _ := ValidatePhone(phone)
		assert.False(t, ok, phone)
	}
}

func TestValidateIDNumber(t *testing.T) {
	assert.True(t, ValidateIDNumber("9001015009087"), "citizen ID")
	assert.True(t, ValidateIDNumber("9001015009187"), "permanent resident ID")
	assert.True(t, ValidateIDNumber("900101 5009 087"), "separators are stripped")

	assert.False(t, ValidateIDNumber("900101500908"), "12 digits")
	assert.False(t, ValidateIDNumber("9013015009087"), "month 13")
	assert.False(t, ValidateIDNumber("9001325009087"), "day 32")
	assert.False(t, ValidateIDNumber("9001015009287"), "citizenship digit 2")
}

func TestValidatePostalCode(t *testing.T) {
	assert.True(t, ValidatePostalCode("1804"))
	assert.False(t, ValidatePostalCode("180"))
	assert.False(t, ValidatePostalCode("18044"))
	assert.False(t, ValidatePostalCode("18a4"))
}

func TestParseDateOnly(t *testing.T) {
	d, err := ParseDateOnly("1990-01-01")
	require.NoError(t, err)
	assert.Equal(t, 1990, d.Year())

	_, err = ParseDateOnly("01/01/1990")
	assert.Error(t, err)
}
