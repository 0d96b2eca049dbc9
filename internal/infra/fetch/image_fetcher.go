// Package fetch downloads remote images for the gallery with bounded time and size.
package fetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"folio/config"
	"folio/internal/domain/entity"
	"folio/internal/domain/service"
	"folio/internal/media"
	"folio/internal/util"

	"github.com/pkg/errors"
)

// ErrUnsupportedScheme is returned for URLs that are not http or https.
var ErrUnsupportedScheme = errors.New("only http and https URLs can be fetched")

type httpImageFetcher struct {
	client    *http.Client
	maxBytes  int64
	userAgent string
}

// NewImageFetcher returns an ImageFetcher whose requests time out after fetch.timeout and whose bodies are
// capped at fetch.maxBytes.
func NewImageFetcher(cfg *config.Config) service.ImageFetcher {
	return newImageFetcher(&http.Client{Timeout: cfg.Fetch.Timeout}, cfg.Fetch.MaxBytes, cfg.Fetch.UserAgent)
}

func newImageFetcher(client *http.Client, maxBytes int64, userAgent string) *httpImageFetcher {
	return &httpImageFetcher{client: client, maxBytes: maxBytes, userAgent: userAgent}
}

func (f *httpImageFetcher) Fetch(ctx context.Context, rawURL string) (*service.FetchedImage, error) {
	if entity.IsDisallowedImageURL(rawURL) {
		return nil, ErrUnsupportedScheme
	}
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, errors.Wrap(err, "parse url")
	}
	if scheme := strings.ToLower(parsed.Scheme); (scheme != "http" && scheme != "https") || parsed.Host == "" {
		return nil, ErrUnsupportedScheme
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "image/*")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("fetch failed: %d", resp.StatusCode)
	}
	if f.maxBytes > 0 && resp.ContentLength > f.maxBytes {
		return nil, errors.Wrapf(service.ErrContentTooLarge, "declared %s", util.FormatBytes(resp.ContentLength))
	}

	reader := io.Reader(resp.Body)
	if f.maxBytes > 0 {
		reader = io.LimitReader(resp.Body, f.maxBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	if f.maxBytes > 0 && int64(len(data)) > f.maxBytes {
		return nil, errors.Wrapf(service.ErrContentTooLarge, "more than %s", util.FormatBytes(f.maxBytes))
	}

	contentType := media.DetectContentType(data)
	if !media.IsImage(contentType) {
		return nil, errors.Wrap(service.ErrNotAnImage, contentType)
	}

	return &service.FetchedImage{Data: data, ContentType: contentType}, nil
}
