// Package media classifies image payloads and derives object names for them.
package media

import (
	"crypto/rand"
	"math/big"
	"mime"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// rasterTypes are the sniffed media types accepted as images. SVG is deliberately absent: it is markup
// and can carry script once served from a public bucket.
var rasterTypes = map[string]struct{}{
	"image/png":    {},
	"image/jpeg":   {},
	"image/gif":    {},
	"image/webp":   {},
	"image/avif":   {},
	"image/bmp":    {},
	"image/tiff":   {},
	"image/x-icon": {},
}

// DetectContentType sniffs the media type of data. Declared types (Content-Type headers, multipart
// part headers) are never trusted.
func DetectContentType(data []byte) string {
	return normalize(mimetype.Detect(data).String())
}

// IsImage reports whether the media type is an accepted raster image type.
func IsImage(contentType string) bool {
	_, ok := rasterTypes[normalize(contentType)]

	return ok
}

// ExtensionFor maps an image media type to the file extension used for stored objects.
// Anything other than png, webp and gif is stored as jpg.
func ExtensionFor(contentType string) string {
	switch normalize(contentType) {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	default:
		return "jpg"
	}
}

// RandomSuffix returns n random lowercase base36 characters.
func RandomSuffix(n int) string {
	var b strings.Builder
	b.Grow(n)
	max := big.NewInt(int64(len(suffixAlphabet)))
	for range n {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand does not fail on supported platforms; fall back to a fixed character.
			b.WriteByte(suffixAlphabet[0])

			continue
		}
		b.WriteByte(suffixAlphabet[idx.Int64()])
	}

	return b.String()
}

// TimestampedName builds <prefix>-<unix millis>-<6 random chars>.<ext>.
func TimestampedName(prefix string, now time.Time, ext string) string {
	return prefix + "-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + RandomSuffix(6) + "." + ext
}

func normalize(contentType string) string {
	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(contentType)
	}

	return strings.ToLower(mediaType)
}
