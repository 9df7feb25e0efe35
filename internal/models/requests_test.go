package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

// ============================================================================
// LOGIN REQUEST
// ============================================================================

func TestLoginRequestValidate(t *testing.T) {
	req := LoginRequest{Email: "agent1@lifestylepro.co.za", Password: "password"}
	assert.Empty(t, req.Validate())

	req = LoginRequest{Email: "", Password: "password"}
	errs := req.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)

	req = LoginRequest{Email: "not-an-email", Password: ""}
	errs = req.Validate()
	assert.Len(t, errs, 2)
}

// ============================================================================
// LEAD CAPTURE REQUEST
// ============================================================================

func TestCreateLeadRequestValidate_RequiresContactChannel(t *testing.T) {
	req := CreateLeadRequest{Source: "website"}
	errs := req.Validate()
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "email or phone")
}

func TestCreateLeadRequestValidate_EmailOnly(t *testing.T) {
	req := CreateLeadRequest{Email: strPtr("lead@example.co.za")}
	assert.Empty(t, req.Validate())
}

func TestCreateLeadRequestValidate_PhoneOnly(t *testing.T) {
	req := CreateLeadRequest{Phone: strPtr("0821234567")}
	assert.Empty(t, req.Validate())
}

func TestCreateLeadRequestValidate_BadPhone(t *testing.T) {
	req := CreateLeadRequest{Phone: strPtr("12345")}
	errs := req.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "phone", errs[0].Field)
}

func TestCreateLeadRequestValidate_InternationalPhone(t *testing.T) {
	req := CreateLeadRequest{Phone: strPtr("+27821234567")}
	assert.Empty(t, req.Validate())
}
