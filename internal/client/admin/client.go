// Package admin is a Go client for the portfolio admin API.
//
// The client owns a session timer: every successful call counts as activity, the server-side
// session is refreshed before its sliding TTL runs out, and once the client has been inactive for
// the whole window it revokes the session on the server and refuses further calls.
package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"folio/internal/delivery/api/response"
	"folio/internal/delivery/api/router/handler"
	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	"folio/internal/sessiontimer"

	"github.com/pkg/errors"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	revokeTimeout      = 10 * time.Second

	pathRefresh = "/api/auth/refresh"
)

var (
	ErrNotLoggedIn      = errors.New("admin client: not logged in")
	ErrSessionExpired   = errors.New("admin client: session expired after inactivity")
	errUnexpectedStatus = errors.New("unexpected response")
)

// APIError is an error envelope returned by the server.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%d %s: %s (%s)", e.Status, e.Code, e.Message, e.Details)
	}

	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

// Options configures a Client. Zero values take sensible defaults.
type Options struct {
	HTTPClient *http.Client
	Clock      sessiontimer.Clock
	Timeout    time.Duration // inactivity window, 2m by default
	WarnBefore time.Duration
	Logger     *slog.Logger
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	clock      sessiontimer.Clock
	timer      *sessiontimer.Timer
	timeout    time.Duration
	logger     *slog.Logger

	mu           sync.Mutex
	token        string
	serverExpiry time.Time
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts Options) *Client {
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	if opts.Clock == nil {
		opts.Clock = sessiontimer.SystemClock
	}
	if opts.Timeout <= 0 {
		opts.Timeout = sessiontimer.DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: opts.HTTPClient,
		clock:      opts.Clock,
		timer:      sessiontimer.New(opts.Clock, sessiontimer.Config{Timeout: opts.Timeout, WarnBefore: opts.WarnBefore}),
		timeout:    opts.Timeout,
		logger:     opts.Logger,
	}
	c.timer.Subscribe(c.onTransition)

	return c
}

// Timer exposes the session timer so callers can subscribe to warnings or drive ticks.
func (c *Client) Timer() *sessiontimer.Timer {
	return c.timer
}

// Watch ticks the session timer every interval until ctx ends, so expiry is noticed without further calls.
func (c *Client) Watch(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	return c.timer.Run(ctx, nil, ticker.C)
}

func (c *Client) Login(ctx context.Context, password string) error {
	var out handler.LoginResponse
	if err := c.send(ctx, http.MethodPost, "/api/auth/login", "", &handler.PasswordRequest{Password: password}, &out); err != nil {
		return err
	}

	c.mu.Lock()
	c.token = out.Token
	c.serverExpiry = out.ExpiresAt
	c.mu.Unlock()

	c.timer.Handle(sessiontimer.Login)

	return nil
}

// Logout revokes the session on the server. The local session is cleared even when the request fails.
func (c *Client) Logout(ctx context.Context) error {
	token := c.takeToken()
	c.timer.Handle(sessiontimer.Logout)
	if token == "" {
		return nil
	}

	return c.send(ctx, http.MethodPost, "/api/auth/logout", token, nil, nil)
}

// Refresh slides the server-side expiry forward.
func (c *Client) Refresh(ctx context.Context) error {
	var out handler.SessionResponse
	if err := c.call(ctx, http.MethodPost, pathRefresh, nil, &out); err != nil {
		return err
	}
	c.setServerExpiry(out.ExpiresAt)

	return nil
}

func (c *Client) Session(ctx context.Context) (*handler.SessionResponse, error) {
	out := new(handler.SessionResponse)
	if err := c.call(ctx, http.MethodGet, "/api/auth/session", nil, out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) ImportGallery(ctx context.Context, items []handler.ImportItemRequest) (*handler.ImportResponse, error) {
	out := new(handler.ImportResponse)
	if err := c.call(ctx, http.MethodPost, "/api/uploads/gallery/import", &handler.ImportRequest{Items: items}, out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) CleanupGallery(ctx context.Context, purgeOrphans bool) (*handler.CleanupResponse, error) {
	out := new(handler.CleanupResponse)
	if err := c.call(ctx, http.MethodPost, "/api/admin/gallery/cleanup", &handler.CleanupRequest{PurgeOrphans: purgeOrphans}, out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) MigrateGallery(ctx context.Context) (*handler.MigrationResponse, error) {
	out := new(handler.MigrationResponse)
	if err := c.call(ctx, http.MethodPost, "/api/admin/gallery/migrate", nil, out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) PublishMetadata(ctx context.Context) (*entity.MetadataSnapshot, error) {
	out := new(entity.MetadataSnapshot)
	if err := c.call(ctx, http.MethodPost, "/api/admin/metadata/publish", nil, out); err != nil {
		return nil, err
	}

	return out, nil
}

// call performs an authenticated request and records it as activity.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	if c.timer.Handle(sessiontimer.Tick) == sessiontimer.Expired {
		return ErrSessionExpired
	}

	token := c.currentToken()
	if token == "" {
		return ErrNotLoggedIn
	}

	if err := c.send(ctx, method, path, token, body, out); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			c.takeToken()
			c.timer.Handle(sessiontimer.Logout)
		}

		return err
	}

	c.timer.Handle(sessiontimer.Activity)

	return c.refreshIfDue(ctx, token, path)
}

// refreshIfDue slides the server TTL whenever it would end before the client's inactivity deadline,
// so a client that is still Active or Warned never holds a token the server has already expired.
func (c *Client) refreshIfDue(ctx context.Context, token, path string) error {
	if path == pathRefresh {
		return nil
	}

	deadline := c.timer.Deadline()
	c.mu.Lock()
	due := c.serverExpiry.Before(deadline)
	c.mu.Unlock()
	if !due {
		return nil
	}

	var out handler.SessionResponse
	if err := c.send(ctx, http.MethodPost, pathRefresh, token, nil, &out); err != nil {
		return errors.Wrap(err, "refresh session")
	}
	c.setServerExpiry(out.ExpiresAt)

	return nil
}

func (c *Client) setServerExpiry(at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" {
		c.serverExpiry = at
	}
}

// onTransition revokes the server-side session as soon as the client expires.
func (c *Client) onTransition(tr sessiontimer.Transition) {
	if tr.To != sessiontimer.Expired {
		return
	}

	token := c.takeToken()
	if token == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), revokeTimeout)
	defer cancel()

	if err := c.send(ctx, http.MethodPost, "/api/auth/logout", token, nil, nil); err != nil {
		c.logger.Warn("Failed to revoke expired session", slog.Any("error", err))

		return
	}

	c.logger.Info("Session expired after inactivity and was revoked")
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.token
}

func (c *Client) takeToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	token := c.token
	c.token = ""
	c.serverExpiry = time.Time{}

	return token
}

type successEnvelope struct {
	Data json.RawMessage `json:"data"`
}

func (c *Client) send(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "read %s response", path)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp, raw)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env successEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return errors.Wrapf(errUnexpectedStatus, "%s %s: %d", method, path, resp.StatusCode)
	}

	return errors.WithStack(json.Unmarshal(env.Data, out))
}

func decodeAPIError(resp *http.Response, raw []byte) error {
	apiErr := &APIError{Status: resp.StatusCode, Code: "HTTP_ERROR", Message: http.StatusText(resp.StatusCode)}

	requestID := resp.Header.Get(deliverycontext.HeaderXRequestID)

	var env response.ErrorResponse
	if err := json.Unmarshal(raw, &env); err == nil && env.Error != nil {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
		if details, ok := env.Error.Details.(string); ok {
			apiErr.Details = details
		}
		if env.Meta != nil && env.Meta.RequestID != "" {
			requestID = env.Meta.RequestID
		}
	}

	if requestID != "" {
		apiErr.Message += " [request " + requestID + "]"
	}

	return apiErr
}
