package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fintrackhq/fintrack/client/internal/types"
)

// ListTransactions retrieves a page of transactions. page and limit are
// omitted from the query when <= 0; sort is a "field:direction" string
// passed through verbatim.
func ListTransactions(ctx context.Context, d *Dispatcher, page, limit int, sort string) (*types.ListTransactionsResponse, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if sort != "" {
		q.Set("sort", sort)
	}
	var resp types.ListTransactionsResponse
	if err := d.Do(ctx, Request{Method: http.MethodGet, Path: "/transactions", Query: q}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTransaction retrieves a single transaction by id.
func GetTransaction(ctx context.Context, d *Dispatcher, id string) (*types.Transaction, error) {
	var tx types.Transaction
	if err := d.Do(ctx, Request{Method: http.MethodGet, Path: "/transactions/" + id}, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// CreateTransaction creates a transaction. The payload is forwarded as-is;
// the server is the authority on its shape.
func CreateTransaction(ctx context.Context, d *Dispatcher, req types.TransactionRequest) (*types.Transaction, error) {
	var tx types.Transaction
	if err := d.Do(ctx, Request{Method: http.MethodPost, Path: "/transactions", Body: req}, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// UpdateTransaction updates a transaction by id.
func UpdateTransaction(ctx context.Context, d *Dispatcher, id string, req types.TransactionRequest) (*types.Transaction, error) {
	var tx types.Transaction
	if err := d.Do(ctx, Request{Method: http.MethodPut, Path: "/transactions/" + id, Body: req}, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// DeleteTransaction deletes a transaction by id.
func DeleteTransaction(ctx context.Context, d *Dispatcher, id string) error {
	return d.Do(ctx, Request{Method: http.MethodDelete, Path: "/transactions/" + id}, nil)
}
