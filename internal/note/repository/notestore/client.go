package notestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	notesPath   = "/api/notes"
	profilePath = "/api/user/profile"
	healthPath  = "/health"

	defaultTimeout = 15 * time.Second
)

// Config configures the Note Store HTTP client.
type Config struct {
	BaseURL         string
	AccessToken     string // session bearer token; empty sends no Authorization header
	Timeout         time.Duration
	RateLimitPerSec float64 // 0 disables client-side rate limiting
	RateBurst       int
}

// Client is the HTTP wrapper for the Note Store REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new Note Store HTTP client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := &http.Client{Timeout: timeout}
	if cfg.AccessToken != "" {
		httpClient.Transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken}),
			Base:   http.DefaultTransport,
		}
	}

	var limiter *rate.Limiter
	if cfg.RateLimitPerSec > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitPerSec), burst)
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		limiter:    limiter,
	}
}

// ListNotes calls GET /api/notes with the given query parameters.
func (c *Client) ListNotes(ctx context.Context, query url.Values) (*ListNotesResponse, error) {
	var resp ListNotesResponse
	if err := c.do(ctx, http.MethodGet, notesPath, query, nil, &resp); err != nil {
		return nil, fmt.Errorf("note store list: %w", err)
	}
	return &resp, nil
}

// GetNote calls GET /api/notes/{id}.
func (c *Client) GetNote(ctx context.Context, id string) (*NoteDTO, error) {
	var resp envelope[NoteDTO]
	if err := c.do(ctx, http.MethodGet, notesPath+"/"+url.PathEscape(id), nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("note store get: %w", err)
	}
	return &resp.Data, nil
}

// CreateNote calls POST /api/notes.
func (c *Client) CreateNote(ctx context.Context, req SaveNoteRequest) (*NoteDTO, error) {
	var resp envelope[NoteDTO]
	if err := c.do(ctx, http.MethodPost, notesPath, nil, req, &resp); err != nil {
		return nil, fmt.Errorf("note store create: %w", err)
	}
	return &resp.Data, nil
}

// UpdateNote calls PUT /api/notes/{id}.
func (c *Client) UpdateNote(ctx context.Context, id string, req SaveNoteRequest) (*NoteDTO, error) {
	var resp envelope[NoteDTO]
	if err := c.do(ctx, http.MethodPut, notesPath+"/"+url.PathEscape(id), nil, req, &resp); err != nil {
		return nil, fmt.Errorf("note store update: %w", err)
	}
	return &resp.Data, nil
}

// DeleteNote calls DELETE /api/notes/{id}. Any response body is ignored.
func (c *Client) DeleteNote(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, notesPath+"/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return fmt.Errorf("note store delete: %w", err)
	}
	return nil
}

// GetProfile calls GET /api/user/profile.
func (c *Client) GetProfile(ctx context.Context) (*ProfileDTO, error) {
	var resp envelope[ProfileDTO]
	if err := c.do(ctx, http.MethodGet, profilePath, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("note store profile: %w", err)
	}
	return &resp.Data, nil
}

// Ping calls GET /health and fails unless the Note Store answers with a 2xx.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.do(ctx, http.MethodGet, healthPath, nil, nil, nil); err != nil {
		return fmt.Errorf("note store ping: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call note store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return newAPIError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
