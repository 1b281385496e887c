package metadata

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPClient(t *testing.T) {
	if _, err := NewHTTPClient("http://metadata:8081", discardLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewHTTPClient("not-absolute", discardLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
	if _, err := NewHTTPClient("://bad", discardLogger()); err == nil {
		t.Fatal("expected error for unparsable url")
	}
}

func TestHTTPClientLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/books/isbn-1" {
			t.Fatalf("unexpected path: %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"isbn":"isbn-1","title":"One","author":"Knuth"}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := client.Lookup(context.Background(), "isbn-1")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if info.ISBN != "isbn-1" || info.Title != "One" || info.Author != "Knuth" {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestHTTPClientLookupUnknownISBN(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusNoContent} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		client, err := NewHTTPClient(server.URL, discardLogger())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := client.Lookup(context.Background(), "missing"); !errors.Is(err, ErrUnknownISBN) {
			t.Fatalf("expected ErrUnknownISBN for status %d, got %v", status, err)
		}
		server.Close()
	}
}

func TestHTTPClientLookupRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = client.Lookup(context.Background(), "isbn-1")
	var tooMany TooManyRequestsError
	if !errors.As(err, &tooMany) {
		t.Fatalf("expected TooManyRequestsError, got %v", err)
	}
	if tooMany.RetryAfter != 7*time.Second {
		t.Fatalf("unexpected retry after: %s", tooMany.RetryAfter)
	}
}

func TestHTTPClientLookupServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := client.Lookup(context.Background(), "isbn-1"); err == nil {
		t.Fatal("expected error for server failure")
	}
}

func TestHTTPClientLookupBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := client.Lookup(context.Background(), "isbn-1"); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestParseRetryAfter(t *testing.T) {
	if d := parseRetryAfter(""); d != 5*time.Second {
		t.Fatalf("unexpected default: %s", d)
	}
	if d := parseRetryAfter("12"); d != 12*time.Second {
		t.Fatalf("unexpected seconds parse: %s", d)
	}
	if d := parseRetryAfter("garbage"); d != 5*time.Second {
		t.Fatalf("unexpected fallback: %s", d)
	}
	httpDate := time.Now().Add(time.Minute).UTC().Format(http.TimeFormat)
	if d := parseRetryAfter(httpDate); d <= 0 || d > time.Minute {
		t.Fatalf("unexpected http date parse: %s", d)
	}
}

func TestNopClient(t *testing.T) {
	if _, err := (NopClient{}).Lookup(context.Background(), "isbn-1"); !errors.Is(err, ErrUnknownISBN) {
		t.Fatalf("expected ErrUnknownISBN, got %v", err)
	}
}
