package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	transientScheme = "blob:"
	embeddedScheme  = "data:"
)

// GalleryImage is one tile of the gallery ticker.
// Rows sharing a RowNumber form one ticker row ordered by Position.
type GalleryImage struct {
	ID        uuid.UUID `json:"id"`
	RowNumber int       `json:"row_number"`
	Position  int       `json:"position"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// IsTransientURL reports whether u is a browser-local object reference (blob:) that only
// exists inside the page session that created it.
func IsTransientURL(u string) bool {
	return hasSchemePrefix(u, transientScheme)
}

// IsEmbeddedDataURL reports whether u carries its payload inline (data:).
func IsEmbeddedDataURL(u string) bool {
	return hasSchemePrefix(u, embeddedScheme)
}

// IsDisallowedImageURL reports whether u must never be fetched or persisted by the server.
func IsDisallowedImageURL(u string) bool {
	return IsTransientURL(u) || IsEmbeddedDataURL(u)
}

func hasSchemePrefix(u, scheme string) bool {
	u = strings.TrimSpace(u)

	return len(u) >= len(scheme) && strings.EqualFold(u[:len(scheme)], scheme)
}
