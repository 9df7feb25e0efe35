package repository

import (
	"log/slog"

	"registration-service/internal/models"

	"github.com/jmoiron/sqlx"
)

type DashboardRepository struct {
	db *sqlx.DB
}

func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// GetCustomerStatsByAgent returns signup counts for a single agent's
// dashboard: all-time, current calendar month, and pending.
func (r *DashboardRepository) GetCustomerStatsByAgent(agentID string) (*models.CustomerStats, error) {
	query := `
		SELECT
			COUNT(*) AS total,

			COUNT(*) FILTER (
				WHERE DATE_TRUNC('month', signup_date) = DATE_TRUNC('month', NOW())
			) AS monthly,

			COUNT(*) FILTER (
				WHERE status = 'pending'
			) AS pending

		FROM customers
		WHERE agent_id = $1
	`

	var stats models.CustomerStats
	err := r.db.Get(&stats, query, agentID)
	if err != nil {
		slog.Error("failed to get customer stats", "agent_id", agentID, "error", err)
		return nil, err
	}

	return &stats, nil
}

// GetOverallStats returns the admin dashboard totals. Revenue is the
// annualized product price across all signups.
func (r *DashboardRepository) GetOverallStats() (*models.OverallStats, error) {
	query := `
		SELECT
			COUNT(c.id) AS total_signups,

			COUNT(DISTINCT c.agent_id) AS active_agents,

			COUNT(c.id) FILTER (
				WHERE DATE_TRUNC('month', c.signup_date) = DATE_TRUNC('month', NOW())
			) AS monthly_signups,

			COALESCE(SUM(p.monthly_price * 12), 0) AS total_revenue

		FROM customers c
		LEFT JOIN products p ON p.id = c.product_id
	`

	var stats models.OverallStats
	err := r.db.Get(&stats, query)
	if err != nil {
		slog.Error("failed to get overall stats", "error", err)
		return nil, err
	}

	return &stats, nil
}

// GetAgentPerformance returns per-agent signup and revenue figures for
// the admin leaderboard, busiest agents first.
func (r *DashboardRepository) GetAgentPerformance() ([]models.AgentPerformance, error) {
	query := `
		SELECT
			u.id AS agent_id,
			u.first_name || ' ' || u.last_name AS agent_name,

			COUNT(c.id) AS total_signups,

			COUNT(c.id) FILTER (
				WHERE DATE_TRUNC('month', c.signup_date) = DATE_TRUNC('month', NOW())
			) AS monthly_signups,

			COALESCE(SUM(p.monthly_price * 12), 0) AS total_revenue

		FROM users u
		LEFT JOIN customers c ON c.agent_id = u.id
		LEFT JOIN products p ON p.id = c.product_id

		WHERE u.role = 'agent'

		GROUP BY u.id, u.first_name, u.last_name
		ORDER BY total_signups DESC
	`

	var results []models.AgentPerformance
	err := r.db.Select(&results, query)
	if err != nil {
		slog.Error("failed to get agent performance", "error", err)
		return nil, err
	}

	return results, nil
}

// GetProductPopularity returns signup counts per product. Percentages
// are computed in the service layer from the returned counts.
func (r *DashboardRepository) GetProductPopularity() ([]models.ProductPopularity, error) {
	query := `
		SELECT
			p.name AS product_name,
			COUNT(c.id) AS count

		FROM products p
		LEFT JOIN customers c ON c.product_id = p.id

		GROUP BY p.name
		ORDER BY count DESC
	`

	var results []models.ProductPopularity
	err := r.db.Select(&results, query)
	if err != nil {
		slog.Error("failed to get product popularity", "error", err)
		return nil, err
	}

	return results, nil
}
