// Package client is the Go SDK for the FinTrack REST backend. It resolves
// the backend base URL from configuration, caches the bearer-token session,
// and exposes typed wrappers over the /api endpoints.
package client

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fintrackhq/fintrack/client/internal/api"
	"github.com/fintrackhq/fintrack/client/internal/session"
)

// Errors re-exported in errors.go; functional options live in options.go.

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL  string
	http     *http.Client
	session  *session.Session
	log      zerolog.Logger
	dispatch *api.Dispatcher
}

// New constructs a Client from an explicit Config. The base URL is
// resolved once here and is immutable for the Client's lifetime.
// Additional options can be provided via functional arguments.
func New(cfg Config, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: cfg.BaseURL(),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log.Logger,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.session == nil {
		c.session = session.New(session.NewMemoryKV())
	}

	c.dispatch = &api.Dispatcher{
		HTTP:    c.http,
		BaseURL: c.baseURL,
		Session: c.session,
		Log:     c.log,
	}
	return c, nil
}

// NewFromEnv constructs a Client from FINTRACK_* environment variables.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// BaseURL returns the resolved backend base URL, for diagnostics.
func (c *Client) BaseURL() string { return c.baseURL }

// --------------------------------------------------------------------
// Session lifecycle - delegated to internal/api
// --------------------------------------------------------------------

// Login authenticates and persists the returned token and user profile
// into the session store. The full backend response is returned.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	return api.Login(ctx, c.dispatch, email, password)
}

// Register creates a new account. Nothing is persisted locally.
func (c *Client) Register(ctx context.Context, email, password, confirmPassword string) (*AuthResponse, error) {
	return api.Register(ctx, c.dispatch, email, password, confirmPassword)
}

// Logout notifies the backend and clears the local session. The session
// is cleared even when the remote call fails.
func (c *Client) Logout(ctx context.Context) error {
	return api.Logout(ctx, c.dispatch)
}

// CurrentUser fetches the authenticated user's profile. It returns
// ErrUnauthenticated without issuing a request when no token is cached.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	return api.CurrentUser(ctx, c.dispatch)
}

// IsAuthenticated reports whether a token is cached. No network call.
func (c *Client) IsAuthenticated() bool { return c.session.Authenticated() }

// StoredUser returns the cached user profile, or nil when absent.
func (c *Client) StoredUser() *User { return c.session.User() }

// ClearSession unconditionally evicts the cached token and user.
func (c *Client) ClearSession() { c.session.Clear() }

// --------------------------------------------------------------------
// Transaction operations - delegated to internal/api
// --------------------------------------------------------------------

// ListTransactions retrieves a page of transactions. page and limit are
// omitted when <= 0; sort is a "field:direction" string, e.g. "date:desc".
func (c *Client) ListTransactions(ctx context.Context, page, limit int, sort string) (*ListTransactionsResponse, error) {
	return api.ListTransactions(ctx, c.dispatch, page, limit, sort)
}

// GetTransaction retrieves a single transaction.
func (c *Client) GetTransaction(ctx context.Context, id string) (*Transaction, error) {
	return api.GetTransaction(ctx, c.dispatch, id)
}

// CreateTransaction creates a transaction.
func (c *Client) CreateTransaction(ctx context.Context, req TransactionRequest) (*Transaction, error) {
	return api.CreateTransaction(ctx, c.dispatch, req)
}

// UpdateTransaction updates a transaction by id.
func (c *Client) UpdateTransaction(ctx context.Context, id string, req TransactionRequest) (*Transaction, error) {
	return api.UpdateTransaction(ctx, c.dispatch, id, req)
}

// DeleteTransaction deletes a transaction by id.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return api.DeleteTransaction(ctx, c.dispatch, id)
}

// --------------------------------------------------------------------
// Budget operations - delegated to internal/api
// --------------------------------------------------------------------

// ListBudgets returns all budgets.
func (c *Client) ListBudgets(ctx context.Context) (*ListBudgetsResponse, error) {
	return api.ListBudgets(ctx, c.dispatch)
}

// GetBudget retrieves a budget by id.
func (c *Client) GetBudget(ctx context.Context, id string) (*Budget, error) {
	return api.GetBudget(ctx, c.dispatch, id)
}

// CreateBudget creates a budget.
func (c *Client) CreateBudget(ctx context.Context, req BudgetRequest) (*Budget, error) {
	return api.CreateBudget(ctx, c.dispatch, req)
}

// UpdateBudget updates a budget by id.
func (c *Client) UpdateBudget(ctx context.Context, id string, req BudgetRequest) (*Budget, error) {
	return api.UpdateBudget(ctx, c.dispatch, id, req)
}

// DeleteBudget deletes a budget by id.
func (c *Client) DeleteBudget(ctx context.Context, id string) error {
	return api.DeleteBudget(ctx, c.dispatch, id)
}

// --------------------------------------------------------------------
// Goal operations - delegated to internal/api
// --------------------------------------------------------------------

// ListGoals returns all goals.
func (c *Client) ListGoals(ctx context.Context) (*ListGoalsResponse, error) {
	return api.ListGoals(ctx, c.dispatch)
}

// GetGoal retrieves a goal by id.
func (c *Client) GetGoal(ctx context.Context, id string) (*Goal, error) {
	return api.GetGoal(ctx, c.dispatch, id)
}

// CreateGoal creates a goal.
func (c *Client) CreateGoal(ctx context.Context, req GoalRequest) (*Goal, error) {
	return api.CreateGoal(ctx, c.dispatch, req)
}

// UpdateGoal updates a goal by id.
func (c *Client) UpdateGoal(ctx context.Context, id string, req GoalRequest) (*Goal, error) {
	return api.UpdateGoal(ctx, c.dispatch, id, req)
}

// DeleteGoal deletes a goal by id.
func (c *Client) DeleteGoal(ctx context.Context, id string) error {
	return api.DeleteGoal(ctx, c.dispatch, id)
}

// --------------------------------------------------------------------
// Dashboard operations - delegated to internal/api (read-only)
// --------------------------------------------------------------------

// DashboardOverview retrieves the aggregate dashboard summary.
func (c *Client) DashboardOverview(ctx context.Context) (*DashboardOverview, error) {
	return api.DashboardOverview(ctx, c.dispatch)
}

// MonthlyTrend retrieves the per-month income/expense series.
// months <= 0 defaults to 6.
func (c *Client) MonthlyTrend(ctx context.Context, months int) (*MonthlyTrendResponse, error) {
	return api.MonthlyTrend(ctx, c.dispatch, months)
}
