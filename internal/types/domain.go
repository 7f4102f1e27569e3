package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// User represents an authenticated account as returned by the backend.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Transaction represents a single income or expense entry.
type Transaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId,omitempty"`
	Type        string    `json:"type"` // "income" or "expense"
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// Budget represents a per-category spending limit.
type Budget struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	Category  string    `json:"category"`
	Limit     float64   `json:"limit"`
	Spent     float64   `json:"spent,omitempty"`
	Period    string    `json:"period,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Goal represents a savings goal.
type Goal struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId,omitempty"`
	Name          string     `json:"name"`
	TargetAmount  float64    `json:"targetAmount"`
	CurrentAmount float64    `json:"currentAmount"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	CreatedAt     time.Time  `json:"createdAt,omitempty"`
	UpdatedAt     time.Time  `json:"updatedAt,omitempty"`
}
