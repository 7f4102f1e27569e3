package types

import "time"

// ------------------------------
// Request Types
// ------------------------------

// LoginRequest holds credentials for /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest holds parameters for /auth/register.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// TransactionRequest is the create/update payload for a transaction.
// The client performs no validation; the server is the authority.
type TransactionRequest struct {
	Type        string     `json:"type,omitempty"`
	Amount      float64    `json:"amount,omitempty"`
	Category    string     `json:"category,omitempty"`
	Description string     `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

// BudgetRequest is the create/update payload for a budget.
type BudgetRequest struct {
	Category string  `json:"category,omitempty"`
	Limit    float64 `json:"limit,omitempty"`
	Period   string  `json:"period,omitempty"`
}

// GoalRequest is the create/update payload for a goal.
type GoalRequest struct {
	Name          string     `json:"name,omitempty"`
	TargetAmount  float64    `json:"targetAmount,omitempty"`
	CurrentAmount float64    `json:"currentAmount,omitempty"`
	Deadline      *time.Time `json:"deadline,omitempty"`
}
