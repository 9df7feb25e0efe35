package models

import (
	"registration-service/internal/registration"
	"registration-service/internal/utils"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() []utils.ValidationError {
	var errs []utils.ValidationError
	if r.Email == "" {
		errs = append(errs, utils.ValidationError{Field: "email", Message: "email is required"})
	} else if ok, _ := utils.ValidateEmail(r.Email); !ok {
		errs = append(errs, utils.ValidationError{Field: "email", Message: "email is invalid"})
	}
	if r.Password == "" {
		errs = append(errs, utils.ValidationError{Field: "password", Message: "password is required"})
	}
	return errs
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// CreateLeadRequest carries a marketing enquiry. At least one contact
// channel is required.
type CreateLeadRequest struct {
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	ProductInterest *string `json:"product_interest,omitempty"`
	Source          string  `json:"source"`
}

func (r *CreateLeadRequest) Validate() []utils.ValidationError {
	var errs []utils.ValidationError
	hasEmail := r.Email != nil && *r.Email != ""
	hasPhone := r.Phone != nil && *r.Phone != ""
	if !hasEmail && !hasPhone {
		errs = append(errs, utils.ValidationError{Field: "email", Message: "email or phone is required"})
	}
	if hasEmail {
		if ok, _ := utils.ValidateEmail(*r.Email); !ok {
			errs = append(errs, utils.ValidationError{Field: "email", Message: "email is invalid"})
		}
	}
	if hasPhone {
		if ok, _ := utils.ValidatePhone(*r.Phone); !ok {
			errs = append(errs, utils.ValidationError{Field: "phone", Message: "phone is invalid"})
		}
	}
	return errs
}

type UpdateLeadStatusRequest struct {
	Status LeadStatus `json:"status"`
	Notes  *string    `json:"notes,omitempty"`
}

type UpdateCustomerStatusRequest struct {
	Status CustomerStatus `json:"status"`
}

// CreateCustomerRequest is the single-shot registration payload: the
// complete form state in one call, bypassing the draft flow. The agent
// is taken from the session, never from the body.
type CreateCustomerRequest struct {
	Fields        registration.Fields          `json:"fields"`
	Partner       *registration.PartnerDetails `json:"partner,omitempty"`
	Dependents    []registration.Dependent     `json:"dependents"`
	Expenses      registration.ExpenseLedger   `json:"expenses"`
	Beneficiaries []registration.Beneficiary   `json:"beneficiaries"`
}

// Registration draft mutation requests. The field-level ones carry a
// single key/value so every keystroke-sized change can be applied and
// repriced in one round trip.

type UpdateDraftFieldsRequest struct {
	Fields map[string]any `json:"fields"`
}

type UpdateDependentRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type UpdateExpensesRequest struct {
	Category string   `json:"category"`
	Amount   *float64 `json:"amount"`
}

type BeneficiaryRequest struct {
	Name       string  `json:"name"`
	Relation   string  `json:"relation"`
	Percentage float64 `json:"percentage"`
}
