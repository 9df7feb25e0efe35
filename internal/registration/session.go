package registration

import (
	"fmt"
	"strings"
	"time"

	"registration-service/internal/utils"
)

type Step string

const (
	StepPersonal   Step = "personal"
	StepAddress    Step = "address"
	StepEmployment Step = "employment"
	StepBanking    Step = "banking"
	StepFamily     Step = "family"
	StepProduct    Step = "product"
)

// Steps in form order. Navigation moves one position at a time; submit
// is only reachable from the last step.
var Steps = []Step{StepPersonal, StepAddress, StepEmployment, StepBanking, StepFamily, StepProduct}

func stepIndex(step Step) int {
	for i, s := range Steps {
		if s == step {
			return i
		}
	}
	return -1
}

// Fields are the static (non-roster) values captured across the steps.
type Fields struct {
	// Personal
	Title       string `json:"title"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	IDNumber    string `json:"id_number"`
	DateOfBirth string `json:"date_of_birth"`
	Nationality string `json:"nationality"`

	// Contact
	Whatsapp         string `json:"whatsapp"`
	SMS              string `json:"sms"`
	SameNumberForAll bool   `json:"same_number_for_all"`

	// Address
	PhysicalAddress1   string `json:"physical_address1"`
	PhysicalAddress2   string `json:"physical_address2"`
	PhysicalSuburb     string `json:"physical_suburb"`
	PhysicalProvince   string `json:"physical_province"`
	PhysicalPostalCode string `json:"physical_postal_code"`
	PostalAddress1     string `json:"postal_address1"`
	PostalAddress2     string `json:"postal_address2"`
	PostalSuburb       string `json:"postal_suburb"`
	PostalProvince     string `json:"postal_province"`
	PostalPostalCode   string `json:"postal_postal_code"`
	SameAsPhysical     bool   `json:"same_as_physical"`

	// Employment
	Employer             string  `json:"employer"`
	Occupation           string  `json:"occupation"`
	WorkPhone            string  `json:"work_phone"`
	MonthlySalary        float64 `json:"monthly_salary"`
	TotalHouseholdIncome float64 `json:"total_household_income"`

	// Banking
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountType   string `json:"account_type"`
	BranchCode    string `json:"branch_code"`

	// Product & consent
	ProductID string `json:"product_id"`
	Consent   bool   `json:"consent"`
}

// ApplySameAsPhysical copies the physical address into the postal
// address fields when the flag is set.
func (f *Fields) ApplySameAsPhysical() {
	if !f.SameAsPhysical {
		return
	}
	f.PostalAddress1 = f.PhysicalAddress1
	f.PostalAddress2 = f.PhysicalAddress2
	f.PostalSuburb = f.PhysicalSuburb
	f.PostalProvince = f.PhysicalProvince
	f.PostalPostalCode = f.PhysicalPostalCode
}

// ApplySameNumberForAll copies the mobile number into the WhatsApp and
// SMS fields when the flag is set.
func (f *Fields) ApplySameNumberForAll() {
	if !f.SameNumberForAll {
		return
	}
	f.Whatsapp = f.Phone
	f.SMS = f.Phone
}

// PartnerDetails is the optional partner sub-record.
type PartnerDetails struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	IDNumber    string `json:"id_number"`
}

// Beneficiary percentages are collected and totaled but not required
// to sum to 100; the source never validated that and the gap is kept.
type Beneficiary struct {
	Name       string  `json:"name"`
	Relation   string  `json:"relation"`
	Percentage float64 `json:"percentage"`
}

// Session is the in-progress, multi-step registration state for one
// applicant. It is mutated by discrete form events and submitted once.
type Session struct {
	ID            string          `json:"id"`
	AgentID       string          `json:"agent_id"`
	CurrentStep   Step            `json:"current_step"`
	Fields        Fields          `json:"fields"`
	Partner       *PartnerDetails `json:"partner,omitempty"`
	Dependents    []Dependent     `json:"dependents"`
	Expenses      ExpenseLedger   `json:"expenses"`
	Beneficiaries []Beneficiary   `json:"beneficiaries"`
	Submitting    bool            `json:"submitting"`
	CreatedAt     time.Time       `json:"created_at"`
}

func NewSession(id, agentID string) *Session {
	return &Session{
		ID:          id,
		AgentID:     agentID,
		CurrentStep: StepPersonal,
		Fields:      Fields{Nationality: "South African"},
		CreatedAt:   time.Now(),
	}
}

// Next advances one step. No skipping; advancing past the last step is
// an error. Field validity never blocks navigation, only submit.
func (s *Session) Next() error {
	idx := stepIndex(s.CurrentStep)
	if idx < 0 || idx == len(Steps)-1 {
		return fmt.Errorf("already on the last step")
	}
	s.CurrentStep = Steps[idx+1]
	return nil
}

// Previous moves one step back.
func (s *Session) Previous() error {
	idx := stepIndex(s.CurrentStep)
	if idx <= 0 {
		return fmt.Errorf("already on the first step")
	}
	s.CurrentStep = Steps[idx-1]
	return nil
}

// ValidateStep evaluates the field rules attached to one step against
// the session's current values.
func (s *Session) ValidateStep(step Step) []utils.ValidationError {
	var errs []utils.ValidationError

	required := func(field, value, message string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, utils.ValidationError{Field: field, Message: message})
		}
	}

	switch step {
	case StepPersonal:
		required("title", s.Fields.Title, "Title is required")
		required("first_name", s.Fields.FirstName, "First name is required")
		required("last_name", s.Fields.LastName, "Last name is required")
		required("nationality", s.Fields.Nationality, "Nationality is required")
		if s.Fields.Email == "" {
			errs = append(errs, utils.ValidationError{Field: "email", Message: "Email is required"})
		} else if ok, _ := utils.ValidateEmail(s.Fields.Email); !ok {
			errs = append(errs, utils.ValidationError{Field: "email", Message: "Invalid email address"})
		}
		if digitCount(s.Fields.Phone) < 10 {
			errs = append(errs, utils.ValidationError{Field: "phone", Message: "Phone number must be at least 10 digits"})
		}
		if !utils.ValidateIDNumber(s.Fields.IDNumber) {
			errs = append(errs, utils.ValidationError{Field: "id_number", Message: "ID number must be 13 digits"})
		}
		if s.Fields.DateOfBirth == "" {
			errs = append(errs, utils.ValidationError{Field: "date_of_birth", Message: "Date of birth is required"})
		} else if _, err := utils.ParseDateOnly(s.Fields.DateOfBirth); err != nil {
			errs = append(errs, utils.ValidationError{Field: "date_of_birth", Message: "Date of birth must be a valid date"})
		}
		if s.Partner != nil {
			required("partner.first_name", s.Partner.FirstName, "Partner first name is required")
			required("partner.last_name", s.Partner.LastName, "Partner last name is required")
		}

	case StepAddress:
		required("physical_address1", s.Fields.PhysicalAddress1, "Physical address is required")
		required("physical_suburb", s.Fields.PhysicalSuburb, "Suburb is required")
		required("physical_province", s.Fields.PhysicalProvince, "Province is required")
		if !utils.ValidatePostalCode(s.Fields.PhysicalPostalCode) {
			errs = append(errs, utils.ValidationError{Field: "physical_postal_code", Message: "Postal code must be 4 digits"})
		}
		required("postal_address1", s.Fields.PostalAddress1, "Postal address is required")
		required("postal_suburb", s.Fields.PostalSuburb, "Postal suburb is required")
		required("postal_province", s.Fields.PostalProvince, "Postal province is required")
		if !utils.ValidatePostalCode(s.Fields.PostalPostalCode) {
			errs = append(errs, utils.ValidationError{Field: "postal_postal_code", Message: "Postal code must be 4 digits"})
		}

	case StepEmployment:
		required("employer", s.Fields.Employer, "Employer is required")
		required("occupation", s.Fields.Occupation, "Occupation is required")
		if s.Fields.MonthlySalary <= 0 {
			errs = append(errs, utils.ValidationError{Field: "monthly_salary", Message: "Monthly income is required"})
		}

	case StepBanking:
		required("bank_name", s.Fields.BankName, "Bank name is required")
		required("account_number", s.Fields.AccountNumber, "Account number is required")
		required("account_type", s.Fields.AccountType, "Account type is required")
		required("branch_code", s.Fields.BranchCode, "Branch code is required")

	case StepFamily:
		// the roster and beneficiaries are optional; beneficiary
		// percentages are deliberately not validated to sum to 100

	case StepProduct:
		required("product_id", s.Fields.ProductID, "Product selection is required")
		if !s.Fields.Consent {
			errs = append(errs, utils.ValidationError{Field: "consent", Message: "Consent is required"})
		}
	}

	return errs
}

// ValidateAll evaluates every step.
func (s *Session) ValidateAll() []utils.ValidationError {
	var errs []utils.ValidationError
	for _, step := range Steps {
		errs = append(errs, s.ValidateStep(step)...)
	}
	return errs
}

// BeginSubmit gates the terminal submit action: last step, explicit
// consent, every mandatory field valid, and no submission already
// outstanding. On success it marks the session submitting so a second
// submit is rejected until FinishSubmit.
func (s *Session) BeginSubmit() ([]utils.ValidationError, error) {
	if s.Submitting {
		return nil, fmt.Errorf("submission already in progress")
	}
	if s.CurrentStep != Steps[len(Steps)-1] {
		return nil, fmt.Errorf("submit is only available on the last step")
	}
	if !s.Fields.Consent {
		return nil, fmt.Errorf("consent must be affirmed before submission")
	}
	if errs := s.ValidateAll(); len(errs) > 0 {
		return errs, fmt.Errorf("registration has %d validation errors", len(errs))
	}
	s.Submitting = true
	return nil, nil
}

// FinishSubmit clears the submitting flag after the create call
// resolves, leaving the session editable again on failure.
func (s *Session) FinishSubmit() {
	s.Submitting = false
}

// BeneficiaryTotal is the running percentage total, exposed so a client
// can warn even though nothing enforces 100.
func (s *Session) BeneficiaryTotal() float64 {
	var total float64
	for _, b := range s.Beneficiaries {
		total += b.Percentage
	}
	return total
}

// Affordability derives the advisory expense summary from the current
// ledger and income fields.
func (s *Session) Affordability() AffordabilitySummary {
	return Summarize(s.Expenses, s.Fields.MonthlySalary, s.Fields.TotalHouseholdIncome)
}

func digitCount(value string) int {
	count := 0
	for _, r := range value {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}
