package client

import (
	"github.com/fintrackhq/fintrack/client/internal/session"
	"github.com/fintrackhq/fintrack/client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	LoginRequest       = types.LoginRequest
	RegisterRequest    = types.RegisterRequest
	TransactionRequest = types.TransactionRequest
	BudgetRequest      = types.BudgetRequest
	GoalRequest        = types.GoalRequest

	// Domain entities
	User        = types.User
	Transaction = types.Transaction
	Budget      = types.Budget
	Goal        = types.Goal

	// Responses
	AuthResponse             = types.AuthResponse
	ListTransactionsResponse = types.ListTransactionsResponse
	ListBudgetsResponse      = types.ListBudgetsResponse
	ListGoalsResponse        = types.ListGoalsResponse
	DashboardOverview        = types.DashboardOverview
	MonthlyTrendPoint        = types.MonthlyTrendPoint
	MonthlyTrendResponse     = types.MonthlyTrendResponse
)

// SessionKV is the pluggable session persistence interface; see
// WithSessionKV. NewMemorySessionKV and WithSessionFile cover the two
// built-in stores.
type SessionKV = session.KV

// NewMemorySessionKV returns the default in-memory session store.
func NewMemorySessionKV() SessionKV { return session.NewMemoryKV() }

// Errors re-exported in errors.go
