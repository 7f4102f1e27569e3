package api

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/fintrackhq/fintrack/client/internal/session"
)

// errRT is an http.RoundTripper that always returns an error (simulates
// network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// newTestDispatcher builds a Dispatcher against the given server with a
// fresh in-memory session.
func newTestDispatcher(baseURL string, hc *http.Client) *Dispatcher {
	return &Dispatcher{
		HTTP:    hc,
		BaseURL: baseURL,
		Session: session.New(session.NewMemoryKV()),
		Log:     zerolog.Nop(),
	}
}
