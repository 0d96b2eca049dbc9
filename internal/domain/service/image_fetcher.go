package service

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrNotAnImage is returned when fetched or uploaded content is not an image.
	ErrNotAnImage = errors.New("content is not an image")
	// ErrContentTooLarge is returned when content exceeds the configured byte ceiling.
	ErrContentTooLarge = errors.New("content exceeds size limit")
)

// FetchedImage is a remote image downloaded into memory.
type FetchedImage struct {
	Data        []byte
	ContentType string
}

// ImageFetcher downloads remote images with a bounded timeout and size.
type ImageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*FetchedImage, error)
}
