package models

// CustomerStats backs the agent dashboard cards.
type CustomerStats struct {
	Total   int `json:"total" db:"total"`
	Monthly int `json:"monthly" db:"monthly"`
	Pending int `json:"pending" db:"pending"`
}

// OverallStats backs the admin dashboard. TotalRevenue is annualized
// product revenue across all signups (monthly price x 12).
type OverallStats struct {
	TotalSignups   int     `json:"total_signups" db:"total_signups"`
	ActiveAgents   int     `json:"active_agents" db:"active_agents"`
	MonthlySignups int     `json:"monthly_signups" db:"monthly_signups"`
	TotalRevenue   float64 `json:"total_revenue" db:"total_revenue"`
}

type AgentPerformance struct {
	AgentID        string  `json:"agent_id" db:"agent_id"`
	AgentName      string  `json:"agent_name" db:"agent_name"`
	TotalSignups   int     `json:"total_signups" db:"total_signups"`
	MonthlySignups int     `json:"monthly_signups" db:"monthly_signups"`
	TotalRevenue   float64 `json:"total_revenue" db:"total_revenue"`
}

type ProductPopularity struct {
	ProductName string `json:"product_name" db:"product_name"`
	Count       int    `json:"count" db:"count"`
	Percentage  int    `json:"percentage" db:"-"`
}
