package services

import (
	"testing"

	"registration-service/internal/registration"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// TEST SUITE 1: FIELD OVERLAY
// ============================================================================

func TestOverlayFields_MergesOnlySuppliedKeys(t *testing.T) {
	fields := registration.Fields{
		FirstName:   "Thandi",
		LastName:    "Nkosi",
		Nationality: "South African",
	}

	err := overlayFields(&fields, map[string]any{
		"first_name": "Lerato",
		"email":      "lerato@example.co.za",
	})
	require.NoError(t, err)

	assert.Equal(t, "Lerato", fields.FirstName)
	assert.Equal(t, "lerato@example.co.za", fields.Email)
	assert.Equal(t, "Nkosi", fields.LastName, "untouched keys keep their values")
	assert.Equal(t, "South African", fields.Nationality)
}

func TestOverlayFields_RejectsUnknownKey(t *testing.T) {
	fields := registration.Fields{}

	err := overlayFields(&fields, map[string]any{
		"firstname": "typo",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field")
}

func TestOverlayFields_NumericAndBooleanValues(t *testing.T) {
	fields := registration.Fields{}

	err := overlayFields(&fields, map[string]any{
		"monthly_salary":      12500.50,
		"same_as_physical":    true,
		"same_number_for_all": true,
	})
	require.NoError(t, err)

	assert.Equal(t, 12500.50, fields.MonthlySalary)
	assert.True(t, fields.SameAsPhysical)
	assert.True(t, fields.SameNumberForAll)
}

func TestOverlayFields_RejectsWrongType(t *testing.T) {
	fields := registration.Fields{}

	err := overlayFields(&fields, map[string]any{
		"monthly_salary": "not a number",
	})

	require.Error(t, err)
}

// ============================================================================
// TEST SUITE 2: MIRROR FLAGS AFTER OVERLAY
// ============================================================================

func TestOverlayThenMirror_CopiesPhysicalToPostal(t *testing.T) {
	fields := registration.Fields{}

	err := overlayFields(&fields, map[string]any{
		"physical_address1":    "12 Vilakazi Street",
		"physical_suburb":      "Orlando West",
		"physical_province":    "Gauteng",
		"physical_postal_code": "1804",
		"same_as_physical":     true,
	})
	require.NoError(t, err)

	fields.ApplySameAsPhysical()

	assert.Equal(t, "12 Vilakazi Street", fields.PostalAddress1)
	assert.Equal(t, "Orlando West", fields.PostalSuburb)
	assert.Equal(t, "Gauteng", fields.PostalProvince)
	assert.Equal(t, "1804", fields.PostalPostalCode)
}
