package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func TestSlogMiddleware_LogsRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	previous := slog.Default()
	slog.SetDefault(logger)
	t.Cleanup(func() { slog.SetDefault(previous) })

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(slogMiddleware)
	r.Get("/test", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	output := buf.String()
	if output == "" {
		t.Fatal("expected log output, got empty string")
	}

	expectedFields := []string{
		"method=GET",
		"path=/test",
		"status=200",
		"client_ip=192.0.2.1",
		"duration_ms=",
		"request_id=",
	}
	for _, field := range expectedFields {
		if !bytes.Contains([]byte(output), []byte(field)) {
			t.Errorf("expected log to contain %q, got: %s", field, output)
		}
	}
}

func TestSlogMiddleware_SkipsHealthCheck(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	previous := slog.Default()
	slog.SetDefault(logger)
	t.Cleanup(func() { slog.SetDefault(previous) })

	r := chi.NewRouter()
	r.Use(slogMiddleware)
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	output := buf.String()
	if output != "" {
		t.Errorf("expected no log output for /api/health, got: %s", output)
	}
}

func TestSlogMiddleware_LogsNon200Status(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	previous := slog.Default()
	slog.SetDefault(logger)
	t.Cleanup(func() { slog.SetDefault(previous) })

	r := chi.NewRouter()
	r.Use(slogMiddleware)
	r.Get("/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	output := buf.String()
	if output == "" {
		t.Fatal("expected log output, got empty string")
	}

	if !bytes.Contains([]byte(output), []byte("status=404")) {
		t.Errorf("expected log to contain status=404, got: %s", output)
	}
}

func TestSlogMiddleware_LogsQuery(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	previous := slog.Default()
	slog.SetDefault(logger)
	t.Cleanup(func() { slog.SetDefault(previous) })

	r := chi.NewRouter()
	r.Use(slogMiddleware)
	r.Get("/resources", func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/resources?category=Tips&play=v2", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	if !bytes.Contains(buf.Bytes(), []byte(`query="category=Tips&play=v2"`)) {
		t.Errorf("expected log to contain the query, got: %s", buf.String())
	}
}
