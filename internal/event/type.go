package event

import "time"

const (
	LeadQueue     string = "lead_events"
	CustomerQueue string = "customer_events"
)

// LeadCapturedEvent is published when a marketing enquiry is stored.
type LeadCapturedEvent struct {
	LeadID          string    `json:"lead_id"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	ProductInterest string    `json:"product_interest,omitempty"`
	Source          string    `json:"source"`
	CapturedAt      time.Time `json:"captured_at"`
}

// CustomerCreatedEvent is published when a registration is submitted
// and the customer record is committed.
type CustomerCreatedEvent struct {
	CustomerID   string    `json:"customer_id"`
	AgentID      string    `json:"agent_id"`
	ProductID    string    `json:"product_id"`
	Email        string    `json:"email"`
	TotalPremium float64   `json:"total_premium"`
	Dependents   int       `json:"dependents"`
	SignupDate   time.Time `json:"signup_date"`
}
