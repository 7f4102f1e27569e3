package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	clienterrors "github.com/fintrackhq/fintrack/client/internal/errors"
)

func TestDo_BearerHeaderPresentWithToken(t *testing.T) {
	t.Parallel()
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := newTestDispatcher(srv.URL, srv.Client())
	if err := d.Session.Save("T1", nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := d.Do(context.Background(), Request{Method: http.MethodGet, Path: "/budgets"}, nil); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got != "Bearer T1" {
		t.Fatalf("Authorization = %q, want %q", got, "Bearer T1")
	}
}

func TestDo_NoBearerHeaderWithoutToken(t *testing.T) {
	t.Parallel()
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header["Authorization"]
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := newTestDispatcher(srv.URL, srv.Client())
	if err := d.Do(context.Background(), Request{Method: http.MethodGet, Path: "/budgets"}, nil); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if present {
		t.Fatal("Authorization header present without a cached token")
	}
}

func TestDo_ContentTypeOnlyWithBody(t *testing.T) {
	t.Parallel()
	var ct []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ct = append(ct, r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := newTestDispatcher(srv.URL, srv.Client())
	if err := d.Do(context.Background(), Request{Method: http.MethodPost, Path: "/goals", Body: map[string]string{"name": "n"}}, nil); err != nil {
		t.Fatalf("Do with body: %v", err)
	}
	if err := d.Do(context.Background(), Request{Method: http.MethodGet, Path: "/goals"}, nil); err != nil {
		t.Fatalf("Do without body: %v", err)
	}
	if ct[0] != "application/json" {
		t.Fatalf("Content-Type with body = %q", ct[0])
	}
	if ct[1] != "" {
		t.Fatalf("Content-Type without body = %q, want empty", ct[1])
	}
}

func TestDo_CallerHeaderOverridesDefault(t *testing.T) {
	t.Parallel()
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := newTestDispatcher(srv.URL, srv.Client())
	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json; charset=utf-8")
	err := d.Do(context.Background(), Request{Method: http.MethodPost, Path: "/goals", Body: map[string]string{}, Header: hdr}, nil)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got != "application/json; charset=utf-8" {
		t.Fatalf("Content-Type = %q, caller header not merged over default", got)
	}
}

func TestDo_ErrorMessageExtraction(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"message field", http.StatusBadRequest, `{"message":"nope"}`, "nope"},
		{"error field", http.StatusBadRequest, `{"error":"bad input"}`, "bad input"},
		{"message wins over error", http.StatusConflict, `{"message":"m","error":"e"}`, "m"},
		{"garbage body", http.StatusTeapot, `<html>`, "HTTP 418"},
		{"empty body", http.StatusInternalServerError, ``, "HTTP 500"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			d := newTestDispatcher(srv.URL, srv.Client())
			err := d.Do(context.Background(), Request{Method: http.MethodGet, Path: "/budgets"}, nil)
			var pe *clienterrors.ProtocolError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ProtocolError, got %v", err)
			}
			if pe.Status != tc.status || pe.Message != tc.want {
				t.Fatalf("got status=%d message=%q, want status=%d message=%q", pe.Status, pe.Message, tc.status, tc.want)
			}
		})
	}
}

func TestDo_UnauthorizedEvictsSession(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	d := newTestDispatcher(srv.URL, srv.Client())
	if err := d.Session.Save("T1", nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	err := d.Do(context.Background(), Request{Method: http.MethodGet, Path: "/budgets"}, nil)
	if !clienterrors.IsUnauthorized(err) {
		t.Fatalf("expected 401 protocol error, got %v", err)
	}
	if d.Session.Authenticated() {
		t.Fatal("session not evicted after 401")
	}
	if d.Session.User() != nil {
		t.Fatal("user not evicted after 401")
	}
}

func TestDo_MalformedSuccessBodyTolerated(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	d := newTestDispatcher(srv.URL, srv.Client())
	var out map[string]any
	if err := d.Do(context.Background(), Request{Method: http.MethodGet, Path: "/budgets"}, &out); err != nil {
		t.Fatalf("malformed body must not fail the call: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("out = %v, want zero value", out)
	}
}

func TestDo_NetworkError(t *testing.T) {
	t.Parallel()
	d := newTestDispatcher("http://example.invalid", &http.Client{Transport: &errRT{}})
	err := d.Do(context.Background(), Request{Method: http.MethodGet, Path: "/budgets"}, nil)
	var ne *clienterrors.NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestDo_CtxCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	d := newTestDispatcher(srv.URL, srv.Client())
	if err := d.Do(ctx, Request{Method: http.MethodGet, Path: "/budgets"}, nil); err == nil {
		t.Fatal("expected context canceled")
	}
}

func TestDo_URLPrefix(t *testing.T) {
	t.Parallel()
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := newTestDispatcher(srv.URL, srv.Client())
	if err := d.Do(context.Background(), Request{Method: http.MethodGet, Path: "/dashboard/overview"}, nil); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if path != "/api/dashboard/overview" {
		t.Fatalf("path = %q, want /api/dashboard/overview", path)
	}
}
