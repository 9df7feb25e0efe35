package registration

import "fmt"

// AffordabilityGuideline is the advisory share of income that monthly
// expenses are compared against. The thresholds are informational only;
// nothing blocks a registration that exceeds them.
const AffordabilityGuideline = 0.15

// ExpenseLedger holds the fixed set of monthly expense categories. A
// nil category is unset and counts as zero.
type ExpenseLedger struct {
	RentBond       *float64 `json:"rent_bond,omitempty"`
	Food           *float64 `json:"food,omitempty"`
	Transport      *float64 `json:"transport,omitempty"`
	SchoolFees     *float64 `json:"school_fees,omitempty"`
	Entertainment  *float64 `json:"entertainment,omitempty"`
	RetailAccounts *float64 `json:"retail_accounts,omitempty"`
	CellPhone      *float64 `json:"cell_phone,omitempty"`
	Other          *float64 `json:"other,omitempty"`
}

// Set assigns one category by its wire name. A nil amount clears the
// category back to unset.
func (l *ExpenseLedger) Set(category string, amount *float64) error {
	switch category {
	case "rent_bond":
		l.RentBond = amount
	case "food":
		l.Food = amount
	case "transport":
		l.Transport = amount
	case "school_fees":
		l.SchoolFees = amount
	case "entertainment":
		l.Entertainment = amount
	case "retail_accounts":
		l.RetailAccounts = amount
	case "cell_phone":
		l.CellPhone = amount
	case "other":
		l.Other = amount
	default:
		return fmt.Errorf("unknown expense category %q", category)
	}
	return nil
}

// Total sums the set categories, treating unset as zero.
func (l ExpenseLedger) Total() float64 {
	var total float64
	for _, category := range []*float64{
		l.RentBond, l.Food, l.Transport, l.SchoolFees,
		l.Entertainment, l.RetailAccounts, l.CellPhone, l.Other,
	} {
		if category != nil {
			total += *category
		}
	}
	return total
}

type AffordabilitySummary struct {
	TotalExpenses      float64 `json:"total_expenses"`
	IncomeThreshold    float64 `json:"income_threshold"`
	HouseholdThreshold float64 `json:"household_threshold"`
}

// Summarize derives the expense total and the advisory 15%-of-income
// figures shown alongside it.
func Summarize(ledger ExpenseLedger, monthlySalary, totalHouseholdIncome float64) AffordabilitySummary {
	return AffordabilitySummary{
		TotalExpenses:      ledger.Total(),
		IncomeThreshold:    AffordabilityGuideline * monthlySalary,
		HouseholdThreshold: AffordabilityGuideline * totalHouseholdIncome,
	}
}
