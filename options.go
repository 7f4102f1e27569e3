package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/fintrackhq/fintrack/client/internal/session"
)

// Option configures a Client during construction in New.
// Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client entirely. Useful for
// tests and for callers with their own transport configuration.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) error {
		if h == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = h
		return nil
	}
}

// WithLogger replaces the logger used for request/outcome diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// dumped to the log when enabled is true.
//
// Do not enable this option in production environments: dumps include
// headers and bodies, tokens among them.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithSessionKV replaces the session's backing store. The default is an
// in-memory store scoped to the Client.
func WithSessionKV(kv SessionKV) Option {
	return func(c *Client) error {
		if kv == nil {
			return fmt.Errorf("session store must not be nil")
		}
		c.session = session.New(kv)
		return nil
	}
}

// WithSessionFile persists the session as a JSON file at path so it
// survives process restarts. The file is created with mode 0600.
func WithSessionFile(path string) Option {
	return func(c *Client) error {
		kv, err := session.NewFileKV(path)
		if err != nil {
			return fmt.Errorf("open session file: %w", err)
		}
		c.session = session.New(kv)
		return nil
	}
}
