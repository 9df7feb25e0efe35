package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	FirstName     string         `json:"first_name" db:"first_name"`
	LastName      string         `json:"last_name" db:"last_name"`
	Email         string         `json:"email" db:"email"`
	Phone         string         `json:"phone" db:"phone"`
	IDNumber      string         `json:"id_number" db:"id_number"`
	DateOfBirth   time.Time      `json:"date_of_birth" db:"date_of_birth"`
	Address       string         `json:"address" db:"address"`
	City          string         `json:"city" db:"city"`
	Province      string         `json:"province" db:"province"`
	PostalCode    string         `json:"postal_code" db:"postal_code"`
	BankName      string         `json:"bank_name" db:"bank_name"`
	AccountNumber string         `json:"account_number" db:"account_number"`
	AccountType   string         `json:"account_type" db:"account_type"`
	BranchCode    string         `json:"branch_code" db:"branch_code"`
	MonthlySalary float64        `json:"monthly_salary" db:"monthly_salary"`
	TotalExpenses float64        `json:"total_expenses" db:"total_expenses"`
	TotalPremium  float64        `json:"total_premium" db:"total_premium"`
	AgentID       string         `json:"agent_id" db:"agent_id"`
	ProductID     string         `json:"product_id" db:"product_id"`
	Status        CustomerStatus `json:"status" db:"status"`
	SignupDate    time.Time      `json:"signup_date" db:"signup_date"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
}

type CustomerStatus string

const (
	CustomerPending   CustomerStatus = "pending"
	CustomerActive    CustomerStatus = "active"
	CustomerInactive  CustomerStatus = "inactive"
	CustomerCancelled CustomerStatus = "cancelled"
)

func IsValidCustomerStatus(status CustomerStatus) bool {
	switch status {
	case CustomerPending, CustomerActive, CustomerInactive, CustomerCancelled:
		return true
	default:
		return false
	}
}

// CustomerDependent is a covered family member persisted with the
// customer. DateOfBirth is nullable: a row may be submitted pending.
type CustomerDependent struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	CustomerID   uuid.UUID  `json:"customer_id" db:"customer_id"`
	FirstName    string     `json:"first_name" db:"first_name"`
	LastName     string     `json:"last_name" db:"last_name"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	Relationship string     `json:"relationship" db:"relationship"`
	CoverAmount  int        `json:"cover_amount" db:"cover_amount"`
	Premium      float64    `json:"premium" db:"premium"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

type CustomerBeneficiary struct {
	ID         uuid.UUID `json:"id" db:"id"`
	CustomerID uuid.UUID `json:"customer_id" db:"customer_id"`
	Name       string    `json:"name" db:"name"`
	Relation   string    `json:"relation" db:"relation"`
	Percentage float64   `json:"percentage" db:"percentage"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
