package client

import (
	"net/http"
	"path/filepath"
	"testing"
	"time"
)

func TestWithHTTPTimeout(t *testing.T) {
	t.Parallel()
	c, err := New(Config{}, WithHTTPTimeout(5*time.Second))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set")
	}

	if _, err := New(Config{}, WithHTTPTimeout(0)); err == nil {
		t.Fatal("expected error for zero timeout")
	}
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Timeout: time.Second}
	c, err := New(Config{}, WithHTTPClient(hc))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http != hc {
		t.Fatal("http client not replaced")
	}

	if _, err := New(Config{}, WithHTTPClient(nil)); err == nil {
		t.Fatal("expected error for nil client")
	}
}

func TestWithDebugLogging_WrapsTransport(t *testing.T) {
	t.Parallel()
	c, err := New(Config{}, WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := c.http.Transport.(*debugTransport); !ok {
		t.Fatalf("transport = %T, want *debugTransport", c.http.Transport)
	}

	c2, err := New(Config{}, WithDebugLogging(false))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c2.http.Transport != nil {
		t.Fatal("transport wrapped despite disabled debug logging")
	}
}

func TestWithSessionKV(t *testing.T) {
	t.Parallel()
	kv := NewMemorySessionKV()
	if err := kv.Set("token", "T1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	c, err := New(Config{}, WithSessionKV(kv))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !c.IsAuthenticated() {
		t.Fatal("client does not see pre-seeded session store")
	}

	if _, err := New(Config{}, WithSessionKV(nil)); err == nil {
		t.Fatal("expected error for nil session store")
	}
}

func TestWithSessionFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "session.json")
	c, err := New(Config{}, WithSessionFile(path))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.IsAuthenticated() {
		t.Fatal("fresh session file should not be authenticated")
	}
}

func TestDebugLoggingRequested_Env(t *testing.T) {
	t.Setenv("FINTRACK_DEBUG", "")
	t.Setenv("DEBUG", "")
	if debugLoggingRequested() {
		t.Fatal("debug requested with no env set")
	}

	t.Setenv("FINTRACK_DEBUG", "true")
	if !debugLoggingRequested() {
		t.Fatal("FINTRACK_DEBUG=true not honored")
	}

	t.Setenv("FINTRACK_DEBUG", "")
	t.Setenv("DEBUG", "true")
	if !debugLoggingRequested() {
		t.Fatal("DEBUG=true not honored")
	}
}
