package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDetailExtractedFromErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{
				"detail": "Title is required",
			})
		},
	))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	_, err := c.CreateActivity(context.Background(), ActivityCreate{})
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", apiErr.StatusCode)
	}
	if apiErr.Detail != "Title is required" {
		t.Errorf("detail = %q, want backend message verbatim", apiErr.Detail)
	}
	if Detail(err) != "Title is required" {
		t.Errorf("Detail(err) = %q", Detail(err))
	}
}

func TestDetailFallsBackToRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		},
	))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	_, err := c.GetStats(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Detail != "boom" {
		t.Errorf("detail = %q, want raw body", apiErr.Detail)
	}
}

func TestDetailGenericForTransportFailure(t *testing.T) {
	c := NewClient("http://127.0.0.1:1") // nothing listens here
	_, err := c.GetStats(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		t.Fatal("transport failure must not be an *Error")
	}
	if msg := Detail(err); msg == "" {
		t.Fatal("expected generic message")
	}
}

func TestDeleteSendsNoBodyAndAcceptsNoContent(t *testing.T) {
	var method, path string
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			method = r.Method
			path = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		},
	))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	if err := c.DeleteActivity(context.Background(), 42); err != nil {
		t.Fatal(err)
	}
	if method != http.MethodDelete || path != "/activities/42" {
		t.Errorf("got %s %s, want DELETE /activities/42", method, path)
	}
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	c := NewClient("http://localhost:8000/")
	if c.BaseURL() != "http://localhost:8000" {
		t.Errorf("base URL = %q", c.BaseURL())
	}
}
