package api

import (
	"context"
	"net/http"

	"github.com/fintrackhq/fintrack/client/internal/types"
)

// ListGoals returns all goals.
func ListGoals(ctx context.Context, d *Dispatcher) (*types.ListGoalsResponse, error) {
	var resp types.ListGoalsResponse
	if err := d.Do(ctx, Request{Method: http.MethodGet, Path: "/goals"}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetGoal retrieves a goal by id.
func GetGoal(ctx context.Context, d *Dispatcher, id string) (*types.Goal, error) {
	var g types.Goal
	if err := d.Do(ctx, Request{Method: http.MethodGet, Path: "/goals/" + id}, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// CreateGoal creates a goal.
func CreateGoal(ctx context.Context, d *Dispatcher, req types.GoalRequest) (*types.Goal, error) {
	var g types.Goal
	if err := d.Do(ctx, Request{Method: http.MethodPost, Path: "/goals", Body: req}, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// UpdateGoal updates a goal by id.
func UpdateGoal(ctx context.Context, d *Dispatcher, id string, req types.GoalRequest) (*types.Goal, error) {
	var g types.Goal
	if err := d.Do(ctx, Request{Method: http.MethodPut, Path: "/goals/" + id, Body: req}, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// DeleteGoal deletes a goal by id.
func DeleteGoal(ctx context.Context, d *Dispatcher, id string) error {
	return d.Do(ctx, Request{Method: http.MethodDelete, Path: "/goals/" + id}, nil)
}
