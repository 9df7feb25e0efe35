package models

import "time"

// Lead is a marketing-site enquiry captured before any agent contact.
type Lead struct {
	ID              string     `json:"id" db:"id"`
	Email           *string    `json:"email,omitempty" db:"email"`
	Phone           *string    `json:"phone,omitempty" db:"phone"`
	ProductInterest *string    `json:"product_interest,omitempty" db:"product_interest"`
	Source          string     `json:"source" db:"source"`
	Status          LeadStatus `json:"status" db:"status"`
	AgentID         *string    `json:"agent_id,omitempty" db:"agent_id"`
	Notes           *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadConverted LeadStatus = "converted"
	LeadLost      LeadStatus = "lost"
)

func IsValidLeadStatus(status LeadStatus) bool {
	switch status {
	case LeadNew, LeadContacted, LeadConverted, LeadLost:
		return true
	default:
		return false
	}
}
