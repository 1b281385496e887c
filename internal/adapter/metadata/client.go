package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/bookline/bookline/internal/domain/model"
)

// ErrUnknownISBN indicates the metadata service doesn't know the ISBN.
var ErrUnknownISBN = errors.New("unknown isbn")

// TooManyRequestsError represents rate limiting signal from the metadata service.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// Client exposes catalog metadata lookup.
type Client interface {
	Lookup(ctx context.Context, isbn string) (*model.BookInfo, error)
}

// HTTPClient implements Client via HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// response mirrors JSON payload from the metadata service.
type response struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// NewHTTPClient creates HTTP metadata client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse metadata url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("metadata url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Lookup queries the metadata service for catalog information on an ISBN.
func (c *HTTPClient) Lookup(ctx context.Context, isbn string) (*model.BookInfo, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/books/", isbn)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var data response
		if err := json.Unmarshal(body, &data); err != nil {
			return nil, err
		}
		return &model.BookInfo{ISBN: data.ISBN, Title: data.Title, Author: data.Author}, nil
	case http.StatusNotFound, http.StatusNoContent:
		return nil, ErrUnknownISBN
	case http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return nil, TooManyRequestsError{RetryAfter: retryAfter}
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("metadata request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("metadata error: %s", resp.Status)
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}

// NopClient is used when no metadata service is configured.
type NopClient struct{}

// Lookup always reports the ISBN as unknown.
func (NopClient) Lookup(ctx context.Context, isbn string) (*model.BookInfo, error) {
	return nil, ErrUnknownISBN
}
