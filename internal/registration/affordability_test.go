package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func amount(v float64) *float64 {
	return &v
}

func TestExpenseLedger_TotalTreatsUnsetAsZero(t *testing.T) {
	ledger := ExpenseLedger{
		Food:      amount(1500),
		Transport: amount(800),
	}

	assert.Equal(t, 2300.0, ledger.Total())
}

func TestExpenseLedger_TotalAllUnset(t *testing.T) {
	assert.Equal(t, 0.0, ExpenseLedger{}.Total())
}

func TestExpenseLedger_TotalAllCategories(t *testing.T) {
	ledger := ExpenseLedger{
		RentBond:       amount(4500),
		Food:           amount(1500),
		Transport:      amount(800),
		SchoolFees:     amount(1200),
		Entertainment:  amount(300),
		RetailAccounts: amount(650),
		CellPhone:      amount(250),
		Other:          amount(100),
	}

	assert.Equal(t, 9300.0, ledger.Total())
}

func TestSummarize_AdvisoryThresholds(t *testing.T) {
	ledger := ExpenseLedger{Food: amount(2000)}

	summary := Summarize(ledger, 18000, 25000)

	assert.Equal(t, 2000.0, summary.TotalExpenses)
	assert.Equal(t, 2700.0, summary.IncomeThreshold)
	assert.Equal(t, 3750.0, summary.HouseholdThreshold)
}

func TestSummarize_ZeroIncome(t *testing.T) {
	summary := Summarize(ExpenseLedger{}, 0, 0)

	assert.Equal(t, 0.0, summary.TotalExpenses)
	assert.Equal(t, 0.0, summary.IncomeThreshold)
	assert.Equal(t, 0.0, summary.HouseholdThreshold)
}
