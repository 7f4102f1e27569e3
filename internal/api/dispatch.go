// Package api implements the authenticated request dispatcher and the
// per-resource wrappers over it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	clienterrors "github.com/fintrackhq/fintrack/client/internal/errors"
	"github.com/fintrackhq/fintrack/client/internal/session"
)

// Prefix is the fixed API root prepended to every path.
const Prefix = "/api"

// Dispatcher turns Requests into HTTP calls against the resolved base URL.
// It injects the bearer token, normalizes failures into the typed error
// taxonomy, and evicts the session on 401.
type Dispatcher struct {
	HTTP    *http.Client
	BaseURL string
	Session *session.Session
	Log     zerolog.Logger
}

// Request describes one dispatch. Body, Query and Header are optional;
// Header entries override the dispatcher's defaults.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Header http.Header
}

// Do issues req and decodes the JSON response into out (which may be nil).
//
//   - 2xx: out is populated from the body; a malformed or empty body is
//     tolerated and leaves out zero-valued.
//   - non-2xx: returns *errors.ProtocolError with the message extracted
//     from the body; a 401 additionally evicts the session first.
//   - transport failure: returns *errors.NetworkError.
func (d *Dispatcher) Do(ctx context.Context, req Request, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var rdr io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}

	u := d.BaseURL + Prefix + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, rdr)
	if err != nil {
		return err
	}

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if tok := d.Session.Token(); tok != "" {
		httpReq.Header.Set("Authorization", "Bearer "+tok)
	}
	// Caller headers win over defaults.
	for k, vs := range req.Header {
		httpReq.Header[http.CanonicalHeaderKey(k)] = vs
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("X-Request-Id", requestID)

	op := req.Method + " " + req.Path
	d.Log.Debug().Str("method", req.Method).Str("url", u).Str("request_id", requestID).Msg("dispatching request")
	requestsTotal.WithLabelValues(req.Method).Inc()

	resp, err := d.HTTP.Do(httpReq)
	if err != nil {
		requestFailuresTotal.WithLabelValues(req.Method, "network").Inc()
		d.Log.Error().Err(err).Str("method", req.Method).Str("url", u).Str("request_id", requestID).Msg("request failed")
		return clienterrors.NewNetworkError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		// Treat a truncated body like a missing one.
		raw = nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusUnauthorized {
			d.Session.Clear()
		}
		perr := clienterrors.NewProtocolError(resp.StatusCode, raw)
		requestFailuresTotal.WithLabelValues(req.Method, "protocol").Inc()
		d.Log.Error().Int("status", resp.StatusCode).Str("method", req.Method).Str("url", u).Str("request_id", requestID).Str("message", perr.Message).Msg("request rejected")
		return perr
	}

	d.Log.Debug().Int("status", resp.StatusCode).Str("method", req.Method).Str("url", u).Str("request_id", requestID).Msg("request completed")

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			// Non-JSON success bodies are tolerated; out stays zero-valued.
			d.Log.Warn().Err(err).Str("request_id", requestID).Msg("response body is not valid JSON")
		}
	}
	return nil
}
