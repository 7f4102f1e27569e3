package types

// ------------------------------
// Response Types
// ------------------------------

// AuthResponse is returned by /auth/login and /auth/register.
type AuthResponse struct {
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
}

// ListTransactionsResponse wraps the transactions list endpoint.
type ListTransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
	Page         int           `json:"page,omitempty"`
	Limit        int           `json:"limit,omitempty"`
	Total        int           `json:"total,omitempty"`
}

// ListBudgetsResponse wraps the budgets list endpoint.
type ListBudgetsResponse struct {
	Budgets []Budget `json:"budgets"`
	Total   int      `json:"total,omitempty"`
}

// ListGoalsResponse wraps the goals list endpoint.
type ListGoalsResponse struct {
	Goals []Goal `json:"goals"`
	Total int    `json:"total,omitempty"`
}

// DashboardOverview mirrors /dashboard/overview.
type DashboardOverview struct {
	TotalIncome        float64       `json:"totalIncome"`
	TotalExpenses      float64       `json:"totalExpenses"`
	Balance            float64       `json:"balance"`
	TransactionCount   int           `json:"transactionCount,omitempty"`
	RecentTransactions []Transaction `json:"recentTransactions,omitempty"`
}

// MonthlyTrendPoint is one month of the /dashboard/monthly-trend series.
type MonthlyTrendPoint struct {
	Month    string  `json:"month"` // "2026-08"
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// MonthlyTrendResponse wraps /dashboard/monthly-trend.
type MonthlyTrendResponse struct {
	Months int                 `json:"months,omitempty"`
	Trend  []MonthlyTrendPoint `json:"trend"`
}
