package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"folio/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

func TestImageFetcher_Fetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/a.png", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngBytes)
	})
	mux.HandleFunc("/sniffed", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(pngBytes)
	})
	mux.HandleFunc("/page", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html></html>"))
	})
	mux.HandleFunc("/disguised", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("<html><script>alert(1)</script></html>"))
	})
	mux.HandleFunc("/vector", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml")
		_, _ = w.Write([]byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`))
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, _ *http.Request) {
		http.NotFound(w, nil)
	})
	mux.HandleFunc("/large", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(make([]byte, 128))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	fetcher := newImageFetcher(server.Client(), 96, "test-agent")

	t.Run("declared image", func(t *testing.T) {
		img, err := fetcher.Fetch(context.Background(), server.URL+"/a.png")
		require.NoError(t, err)
		assert.Equal(t, "image/png", img.ContentType)
		assert.Equal(t, pngBytes, img.Data)
	})

	t.Run("generic type is sniffed", func(t *testing.T) {
		img, err := fetcher.Fetch(context.Background(), server.URL+"/sniffed")
		require.NoError(t, err)
		assert.Equal(t, "image/png", img.ContentType)
	})

	t.Run("non image rejected", func(t *testing.T) {
		_, err := fetcher.Fetch(context.Background(), server.URL+"/page")
		assert.ErrorIs(t, err, service.ErrNotAnImage)
	})

	t.Run("html labelled as png rejected", func(t *testing.T) {
		_, err := fetcher.Fetch(context.Background(), server.URL+"/disguised")
		assert.ErrorIs(t, err, service.ErrNotAnImage)
	})

	t.Run("svg rejected", func(t *testing.T) {
		_, err := fetcher.Fetch(context.Background(), server.URL+"/vector")
		assert.ErrorIs(t, err, service.ErrNotAnImage)
	})

	t.Run("non 2xx reported with status", func(t *testing.T) {
		_, err := fetcher.Fetch(context.Background(), server.URL+"/missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch failed: 404")
	})

	t.Run("body over the ceiling rejected", func(t *testing.T) {
		_, err := fetcher.Fetch(context.Background(), server.URL+"/large")
		assert.ErrorIs(t, err, service.ErrContentTooLarge)
	})
}

func TestImageFetcher_RejectsSchemesWithoutRequest(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { hits.Add(1) }))
	defer server.Close()

	fetcher := newImageFetcher(server.Client(), 1024, "")
	for _, raw := range []string{
		"blob:" + server.URL + "/x",
		"data:image/png;base64,AAAA",
		"ftp://example.com/a.png",
		"file:///etc/passwd",
		"/relative.png",
	} {
		_, err := fetcher.Fetch(context.Background(), raw)
		assert.ErrorIs(t, err, ErrUnsupportedScheme, raw)
	}
	assert.Zero(t, hits.Load())
}

func TestImageFetcher_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := server.Client()
	client.Timeout = 50 * time.Millisecond
	fetcher := newImageFetcher(client, 1024, "")

	_, err := fetcher.Fetch(context.Background(), server.URL)
	assert.Error(t, err)
}
