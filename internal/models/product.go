package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Product is a lifestyle plan from the catalog. Benefits is stored as a
// JSON-encoded string array and decoded before display.
type Product struct {
	ID               string    `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	MonthlyPrice     float64   `json:"monthly_price" db:"monthly_price"`
	ActivationPoints int       `json:"activation_points" db:"activation_points"`
	Benefits         string    `json:"benefits" db:"benefits"`
	Description      *string   `json:"description,omitempty" db:"description"`
	IsActive         bool      `json:"is_active" db:"is_active"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// BenefitList decodes the benefits column. Malformed JSON is reported
// so callers can degrade to an empty list instead of dropping the whole
// catalog response.
func (p *Product) BenefitList() ([]string, error) {
	var benefits []string
	if err := json.Unmarshal([]byte(p.Benefits), &benefits); err != nil {
		return nil, fmt.Errorf("failed to decode benefits for product %s: %w", p.ID, err)
	}
	return benefits, nil
}

// ProductView is the catalog entry served to clients, with benefits
// already decoded.
type ProductView struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	MonthlyPrice     float64  `json:"monthly_price"`
	ActivationPoints int      `json:"activation_points"`
	Benefits         []string `json:"benefits"`
	Description      *string  `json:"description,omitempty"`
}
