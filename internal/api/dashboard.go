package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fintrackhq/fintrack/client/internal/types"
)

// defaultTrendMonths is used when the caller does not pick a window.
const defaultTrendMonths = 6

// DashboardOverview retrieves the aggregate dashboard summary.
func DashboardOverview(ctx context.Context, d *Dispatcher) (*types.DashboardOverview, error) {
	var resp types.DashboardOverview
	if err := d.Do(ctx, Request{Method: http.MethodGet, Path: "/dashboard/overview"}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MonthlyTrend retrieves the per-month income/expense series for the last
// months months. months <= 0 falls back to the default window.
func MonthlyTrend(ctx context.Context, d *Dispatcher, months int) (*types.MonthlyTrendResponse, error) {
	if months <= 0 {
		months = defaultTrendMonths
	}
	q := url.Values{}
	q.Set("months", strconv.Itoa(months))
	var resp types.MonthlyTrendResponse
	if err := d.Do(ctx, Request{Method: http.MethodGet, Path: "/dashboard/monthly-trend", Query: q}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
