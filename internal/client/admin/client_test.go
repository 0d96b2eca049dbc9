package admin

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"folio/internal/sessiontimer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

const serverTTL = 2 * time.Minute

// fakeAPI records which endpoints were hit and with which bearer token. Like the real service it
// expires the session serverTTL after login or the last refresh.
type fakeAPI struct {
	mu        sync.Mutex
	clock     *fakeClock
	calls     []string
	revoked   []string
	reject    bool
	expiresAt time.Time
}

func (f *fakeAPI) extend() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.expiresAt = f.clock.Now().Add(serverTTL)

	return f.expiresAt
}

func (f *fakeAPI) sessionLive() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.clock.Now().Before(f.expiresAt)
}

func (f *fakeAPI) record(r *http.Request) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, r.Method+" "+r.URL.Path)

	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

func (f *fakeAPI) count(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}

	return n
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"data": data, "meta": map[string]string{"request_id": "r1"}})
}

func writeSessionInvalid(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = io.WriteString(w, `{"error":{"code":"SESSION_INVALID","message":"Session is missing, expired or revoked"},"meta":{"request_id":"r2"}}`)
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		var body struct {
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "correct horse" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":{"code":"INVALID_CREDENTIALS","message":"Invalid password"},"meta":{"request_id":"r1"}}`)

			return
		}
		writeData(w, http.StatusOK, map[string]any{"token": "tok-1", "expires_at": f.extend()})
	})
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		token := f.record(r)
		f.mu.Lock()
		f.revoked = append(f.revoked, token)
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		if !f.sessionLive() {
			writeSessionInvalid(w)

			return
		}
		writeData(w, http.StatusOK, map[string]any{"username": "admin", "expires_at": f.extend()})
	})
	mux.HandleFunc("POST /api/admin/gallery/cleanup", func(w http.ResponseWriter, r *http.Request) {
		token := f.record(r)
		if f.reject || token != "tok-1" || !f.sessionLive() {
			writeSessionInvalid(w)

			return
		}
		writeData(w, http.StatusOK, map[string]any{"deleted_count": 2, "deleted_ids": []string{}, "removed_transient": 1})
	})

	return mux
}

func createTestClient(t *testing.T) (*Client, *fakeAPI, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)}
	api := &fakeAPI{clock: clock}
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	client := New(srv.URL+"/", Options{
		HTTPClient: srv.Client(),
		Clock:      clock,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return client, api, clock
}

func TestClient_LoginAndCall(t *testing.T) {
	client, api, _ := createTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Login(ctx, "correct horse"))
	assert.Equal(t, sessiontimer.Active, client.Timer().State())

	out, err := client.CleanupGallery(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 2, out.DeletedCount)
	assert.Equal(t, 1, out.RemovedTransient)
	assert.Zero(t, api.count("POST /api/auth/refresh"), "server TTL is still fresh")
}

func TestClient_LoginFailure(t *testing.T) {
	client, _, _ := createTestClient(t)

	err := client.Login(context.Background(), "wrong")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
	assert.Equal(t, sessiontimer.Idle, client.Timer().State())
}

func TestClient_RequiresLogin(t *testing.T) {
	client, api, _ := createTestClient(t)

	_, err := client.CleanupGallery(context.Background(), false)

	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Empty(t, api.calls)
}

func TestClient_ActivityRefreshesServerSession(t *testing.T) {
	client, api, clock := createTestClient(t)
	ctx := context.Background()
	require.NoError(t, client.Login(ctx, "correct horse"))

	clock.Advance(70 * time.Second)
	_, err := client.CleanupGallery(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, api.count("POST /api/auth/refresh"))

	clock.Advance(70 * time.Second)
	_, err = client.CleanupGallery(ctx, false)
	require.NoError(t, err, "activity kept the client session alive")
	assert.Equal(t, 2, api.count("POST /api/auth/refresh"))
}

func TestClient_ServerSessionFollowsClientWindow(t *testing.T) {
	client, api, clock := createTestClient(t)
	ctx := context.Background()
	require.NoError(t, client.Login(ctx, "correct horse"))

	// 70s of server TTL remain here, but the client deadline moves to 2m50s.
	clock.Advance(50 * time.Second)
	_, err := client.CleanupGallery(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, api.count("POST /api/auth/refresh"))

	clock.Advance(110 * time.Second)
	require.Equal(t, sessiontimer.Warned, client.Timer().Handle(sessiontimer.Tick))

	_, err = client.CleanupGallery(ctx, false)
	require.NoError(t, err, "a client inside its inactivity window is accepted by the server")
	assert.Equal(t, sessiontimer.Active, client.Timer().State())
	assert.Equal(t, 2, api.count("POST /api/auth/refresh"))
}

func TestClient_InactivityRevokesServerSession(t *testing.T) {
	client, api, clock := createTestClient(t)
	ctx := context.Background()
	require.NoError(t, client.Login(ctx, "correct horse"))

	clock.Advance(2 * time.Minute)
	_, err := client.CleanupGallery(ctx, false)

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, sessiontimer.Expired, client.Timer().State())
	assert.Equal(t, []string{"tok-1"}, api.revoked)
	assert.Zero(t, api.count("POST /api/admin/gallery/cleanup"))

	_, err = client.CleanupGallery(ctx, false)
	assert.ErrorIs(t, err, ErrSessionExpired, "calls stay refused until the next login")

	require.NoError(t, client.Login(ctx, "correct horse"))
	_, err = client.CleanupGallery(ctx, false)
	assert.NoError(t, err)
}

func TestClient_ServerRejectionClearsSession(t *testing.T) {
	client, api, _ := createTestClient(t)
	ctx := context.Background()
	require.NoError(t, client.Login(ctx, "correct horse"))
	api.reject = true

	_, err := client.CleanupGallery(ctx, false)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "SESSION_INVALID", apiErr.Code)
	assert.Contains(t, apiErr.Error(), "request r2")
	assert.Equal(t, sessiontimer.Idle, client.Timer().State())

	_, err = client.CleanupGallery(ctx, false)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClient_Logout(t *testing.T) {
	client, api, _ := createTestClient(t)
	ctx := context.Background()
	require.NoError(t, client.Login(ctx, "correct horse"))

	require.NoError(t, client.Logout(ctx))

	assert.Equal(t, []string{"tok-1"}, api.revoked)
	assert.Equal(t, sessiontimer.Idle, client.Timer().State())
	assert.NoError(t, client.Logout(ctx), "logging out twice is a no-op")
	assert.Len(t, api.revoked, 1)
}
