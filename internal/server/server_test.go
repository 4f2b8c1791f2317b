package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"index.html":        "<canvas id=\"bg-canvas\"></canvas>",
		"app.wasm":          "\x00asm",
		"projects/one.html": "one",
	}
	for name, body := range files {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
	cfg.Dir = dir
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func get(s *Server, target string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := newServer(t, Config{})
	rec := get(s, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := rec.Body.String(); body != `{"status":"ok"}` {
		t.Errorf("body = %q", body)
	}
}

func TestStaticFiles(t *testing.T) {
	s := newServer(t, Config{})

	tests := []struct {
		path        string
		status      int
		contentType string
	}{
		{"/", http.StatusOK, "text/html; charset=utf-8"},
		{"/app.wasm", http.StatusOK, "application/wasm"},
		{"/projects/one.html", http.StatusOK, "text/html; charset=utf-8"},
		{"/missing.js", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(s, tt.path)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if tt.contentType != "" && rec.Header().Get("Content-Type") != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", rec.Header().Get("Content-Type"), tt.contentType)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name     string
		allowAll bool
		origin   string
		want     string
	}{
		{"localhost", false, "http://localhost:5173", "http://localhost:5173"},
		{"foreign", false, "https://example.com", ""},
		{"allow all", true, "https://example.com", "*"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(t, Config{AllowAll: tt.allowAll})
			rec := get(s, "/healthz", "Origin", tt.origin)
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewRejectsMissingDir(t *testing.T) {
	if _, err := New(Config{Dir: filepath.Join(t.TempDir(), "nope")}); err == nil {
		t.Error("expected an error for a missing directory")
	}
	f := filepath.Join(t.TempDir(), "file")
	os.WriteFile(f, nil, 0644)
	if _, err := New(Config{Dir: f}); err == nil {
		t.Error("expected an error for a file")
	}
}

func TestShutdownBeforeStart(t *testing.T) {
	s := newServer(t, Config{Port: 0})
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	errc := make(chan error, 1)
	go func() { errc <- s.Start() }()
	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Start after Shutdown: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start kept serving after Shutdown")
	}
}

func TestShutdownStopsRunningServer(t *testing.T) {
	s := newServer(t, Config{Port: 0})
	errc := make(chan error, 1)
	go func() { errc <- s.Start() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Start: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}
