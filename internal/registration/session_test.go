package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSession() *Session {
	s := NewSession("draft-1", "agent-1")
	s.Fields = Fields{
		Title:       "mr",
		FirstName:   "Thabo",
		LastName:    "Nkosi",
		Email:       "thabo@example.co.za",
		Phone:       "0821234567",
		IDNumber:    "9001015009087",
		DateOfBirth: "1990-01-01",
		Nationality: "South African",

		PhysicalAddress1:   "12 Vilakazi Street",
		PhysicalSuburb:     "Orlando West",
		PhysicalProvince:   "Gauteng",
		PhysicalPostalCode: "1804",
		PostalAddress1:     "PO Box 321",
		PostalSuburb:       "Orlando West",
		PostalProvince:     "Gauteng",
		PostalPostalCode:   "1804",

		Employer:      "Acme Mining",
		Occupation:    "Technician",
		MonthlySalary: 18000,

		BankName:      "Capitec",
		AccountNumber: "1234567890",
		AccountType:   "Savings",
		BranchCode:    "470010",

		ProductID: "prod-1",
		Consent:   true,
	}
	return s
}

// ============================================================================
// STEP NAVIGATION
// ============================================================================

func TestSession_StepsAdvanceOneAtATime(t *testing.T) {
	s := NewSession("d", "a")
	assert.Equal(t, StepPersonal, s.CurrentStep)

	require.NoError(t, s.Next())
	assert.Equal(t, StepAddress, s.CurrentStep)
	require.NoError(t, s.Next())
	require.NoError(t, s.Next())
	require.NoError(t, s.Next())
	require.NoError(t, s.Next())
	assert.Equal(t, StepProduct, s.CurrentStep)

	assert.Error(t, s.Next(), "cannot advance past the last step")

	require.NoError(t, s.Previous())
	assert.Equal(t, StepFamily, s.CurrentStep)
}

func TestSession_PreviousOnFirstStep(t *testing.T) {
	s := NewSession("d", "a")
	assert.Error(t, s.Previous())
}

func TestSession_InvalidFieldsDoNotBlockNavigation(t *testing.T) {
	s := NewSession("d", "a")

	assert.NotEmpty(t, s.ValidateStep(StepPersonal))
	assert.NoError(t, s.Next(), "validation failures block submit, not tab switching")
}

// ============================================================================
// FIELD VALIDATION
// ============================================================================

func TestSession_ValidateStepPersonal(t *testing.T) {
	s := validSession()
	assert.Empty(t, s.ValidateStep(StepPersonal))

	s.Fields.Email = "not-an-email"
	s.Fields.Phone = "12345"
	s.Fields.IDNumber = "123"

	errs := s.ValidateStep(StepPersonal)
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"email", "phone", "id_number"}, fields)
}

func TestSession_ValidateStepAddress(t *testing.T) {
	s := validSession()
	assert.Empty(t, s.ValidateStep(StepAddress))

	s.Fields.PhysicalPostalCode = "18045"
	errs := s.ValidateStep(StepAddress)
	require.Len(t, errs, 1)
	assert.Equal(t, "physical_postal_code", errs[0].Field)
}

func TestSession_ValidatePartnerOnlyWhenPresent(t *testing.T) {
	s := validSession()
	assert.Empty(t, s.ValidateStep(StepPersonal))

	s.Partner = &PartnerDetails{}
	errs := s.ValidateStep(StepPersonal)
	assert.Len(t, errs, 2, "partner names required once a partner record exists")
}

func TestSession_FamilyStepHasNoMandatoryFields(t *testing.T) {
	s := NewSession("d", "a")
	s.Beneficiaries = []Beneficiary{
		{Name: "Lindiwe Nkosi", Relation: "spouse", Percentage: 60},
		{Name: "Sipho Nkosi", Relation: "son", Percentage: 20},
	}

	assert.Empty(t, s.ValidateStep(StepFamily))
	assert.Equal(t, 80.0, s.BeneficiaryTotal(), "total exposed but never forced to 100")
}

// ============================================================================
// SUBMIT GATING
// ============================================================================

func TestSession_BeginSubmitHappyPath(t *testing.T) {
	s := validSession()
	s.CurrentStep = StepProduct

	errs, err := s.BeginSubmit()
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.True(t, s.Submitting)

	s.FinishSubmit()
	assert.False(t, s.Submitting)
}

func TestSession_BeginSubmitOnlyOnLastStep(t *testing.T) {
	s := validSession()
	s.CurrentStep = StepBanking

	_, err := s.BeginSubmit()
	assert.Error(t, err)
	assert.False(t, s.Submitting)
}

func TestSession_BeginSubmitRequiresConsent(t *testing.T) {
	s := validSession()
	s.CurrentStep = StepProduct
	s.Fields.Consent = false

	_, err := s.BeginSubmit()
	assert.Error(t, err)
}

func TestSession_BeginSubmitReportsFieldErrors(t *testing.T) {
	s := validSession()
	s.CurrentStep = StepProduct
	s.Fields.Employer = ""
	s.Fields.BankName = ""

	errs, err := s.BeginSubmit()
	assert.Error(t, err)
	assert.Len(t, errs, 2)
	assert.False(t, s.Submitting)
}

func TestSession_BeginSubmitBlocksDuplicate(t *testing.T) {
	s := validSession()
	s.CurrentStep = StepProduct

	_, err := s.BeginSubmit()
	require.NoError(t, err)

	_, err = s.BeginSubmit()
	assert.Error(t, err, "no duplicate submission while one is outstanding")

	// a failed create leaves the session editable for a retry
	s.FinishSubmit()
	_, err = s.BeginSubmit()
	assert.NoError(t, err)
}

// ============================================================================
// FIELD MIRRORING
// ============================================================================

func TestFields_ApplySameAsPhysical(t *testing.T) {
	f := Fields{
		PhysicalAddress1:   "12 Vilakazi Street",
		PhysicalSuburb:     "Orlando West",
		PhysicalProvince:   "Gauteng",
		PhysicalPostalCode: "1804",
		SameAsPhysical:     true,
	}

	f.ApplySameAsPhysical()

	assert.Equal(t, "12 Vilakazi Street", f.PostalAddress1)
	assert.Equal(t, "1804", f.PostalPostalCode)
}

func TestFields_ApplySameNumberForAll(t *testing.T) {
	f := Fields{Phone: "0821234567", SameNumberForAll: true}

	f.ApplySameNumberForAll()

	assert.Equal(t, "0821234567", f.Whatsapp)
	assert.Equal(t, "0821234567", f.SMS)
}

func TestFields_MirroringRequiresFlag(t *testing.T) {
	f := Fields{Phone: "0821234567"}
	f.ApplySameNumberForAll()
	assert.Empty(t, f.Whatsapp)
}
