package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/atlasfield/fieldops-agent-go/internal/pkg/validator"
)

var (
	// ErrUnauthorized means the backend rejected the bearer token.
	ErrUnauthorized = errors.New("backend rejected the credentials")

	// ErrNotFound maps a backend 404 for the requested resource.
	ErrNotFound = errors.New("backend resource not found")
)

// Client is the transport to the field-ops backend: JSON over HTTPS with a
// bearer token. A 422 response is decoded into validator.ValidationErrors so
// callers can surface it field by field instead of as a generic failure.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetToken installs the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) ClearToken() {
	c.SetToken("")
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// envelope is the backend's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *errorDetail    `json:"error"`
}

type errorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

// Get issues an authenticated GET and decodes the data payload into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

// Post issues an authenticated POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}
	return c.do(ctx, http.MethodPost, path, "application/json", reader, out)
}

// MultipartFile is one file part of a multipart POST.
type MultipartFile struct {
	Field       string
	Filename    string
	ContentType string
	Reader      io.Reader
}

// PostMultipart issues an authenticated multipart POST: a JSON "data" field
// plus any number of file parts.
func (c *Client) PostMultipart(ctx context.Context, path string, data any, files []MultipartFile, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode data field: %w", err)
	}
	if err := writer.WriteField("data", string(encoded)); err != nil {
		return fmt.Errorf("failed to write data field: %w", err)
	}

	for _, f := range files {
		part, err := writer.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return fmt.Errorf("failed to create file part %q: %w", f.Filename, err)
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return fmt.Errorf("failed to write file part %q: %w", f.Filename, err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, writer.FormDataContentType(), &buf, out)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read backend response: %w", err)
	}

	var env envelope
	if len(raw) > 0 {
		// Tolerate non-envelope bodies on errors; the status code decides.
		_ = json.Unmarshal(raw, &env)
	}

	switch {
	case resp.StatusCode == http.StatusUnprocessableEntity:
		if env.Error != nil && len(env.Error.Details) > 0 {
			return validator.FromMap(env.Error.Details)
		}
		return validator.FromMap(map[string]string{"request": env.errorMessage("validation failed")})
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400:
		return fmt.Errorf("backend returned %d: %s", resp.StatusCode, env.errorMessage(http.StatusText(resp.StatusCode)))
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode backend payload: %w", err)
	}
	return nil
}

func (e envelope) errorMessage(fallback string) string {
	if e.Error != nil && e.Error.Message != "" {
		return e.Error.Message
	}
	if e.Message != "" {
		return e.Message
	}
	return fallback
}
