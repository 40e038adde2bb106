package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"gallery-storefront/internal/domain/paintings"
)

var ErrMalformedDataURI = errors.New("malformed data uri")

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/avif": ".avif",
}

// DecodeDataURI splits "data:<mime>[;base64],<payload>" into its content type
// and raw bytes.
func DecodeDataURI(s string) (string, []byte, error) {
	if !IsDataURI(s) {
		return "", nil, ErrMalformedDataURI
	}
	header, payload, ok := strings.Cut(strings.TrimPrefix(s, dataURIPrefix), ",")
	if !ok {
		return "", nil, ErrMalformedDataURI
	}

	params := strings.Split(header, ";")
	mime := strings.TrimSpace(params[0])
	if mime == "" {
		mime = "text/plain"
	}
	isBase64 := false
	for _, p := range params[1:] {
		if strings.EqualFold(strings.TrimSpace(p), "base64") {
			isBase64 = true
		}
	}

	if !isBase64 {
		raw, err := url.PathUnescape(payload)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrMalformedDataURI, err)
		}
		return mime, []byte(raw), nil
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(payload)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrMalformedDataURI, err)
		}
	}
	return mime, data, nil
}

// EncodeDataURI is the inverse of DecodeDataURI, always base64.
func EncodeDataURI(mime string, data []byte) string {
	return dataURIPrefix + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// BlobName derives the storage key for an uploaded image:
// "<unix millis>-<slugified title><ext>".
func BlobName(now time.Time, title, mime string) string {
	slug := paintings.Slugify(title)
	if slug == "" {
		slug = "painting"
	}
	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), slug, extensions[strings.ToLower(mime)])
}

// IsImageMIME reports whether mime names an image type.
func IsImageMIME(mime string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mime)), "image/")
}
