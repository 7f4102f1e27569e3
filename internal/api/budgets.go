package api

import (
	"context"
	"net/http"

	"github.com/fintrackhq/fintrack/client/internal/types"
)

// ListBudgets returns all budgets.
func ListBudgets(ctx context.Context, d *Dispatcher) (*types.ListBudgetsResponse, error) {
	var resp types.ListBudgetsResponse
	if err := d.Do(ctx, Request{Method: http.MethodGet, Path: "/budgets"}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetBudget retrieves a budget by id.
func GetBudget(ctx context.Context, d *Dispatcher, id string) (*types.Budget, error) {
	var b types.Budget
	if err := d.Do(ctx, Request{Method: http.MethodGet, Path: "/budgets/" + id}, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBudget creates a budget.
func CreateBudget(ctx context.Context, d *Dispatcher, req types.BudgetRequest) (*types.Budget, error) {
	var b types.Budget
	if err := d.Do(ctx, Request{Method: http.MethodPost, Path: "/budgets", Body: req}, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBudget updates a budget by id.
func UpdateBudget(ctx context.Context, d *Dispatcher, id string, req types.BudgetRequest) (*types.Budget, error) {
	var b types.Budget
	if err := d.Do(ctx, Request{Method: http.MethodPut, Path: "/budgets/" + id, Body: req}, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteBudget deletes a budget by id.
func DeleteBudget(ctx context.Context, d *Dispatcher, id string) error {
	return d.Do(ctx, Request{Method: http.MethodDelete, Path: "/budgets/" + id}, nil)
}
