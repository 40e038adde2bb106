package media

import (
	"net/url"
	"regexp"
	"strings"
)

const dataURIPrefix = "data:"

var doubledSlashes = regexp.MustCompile(`/{2,}`)

// Normalizer maps a stored image field to something a browser can load.
type Normalizer struct {
	// AssetBase is the static path bare filenames are served from, e.g. "/images/".
	AssetBase string
	// StorageMarker identifies URLs that point into remote object storage.
	StorageMarker string
	// Placeholder is used for empty sources and permanently broken ones.
	Placeholder string
}

// Normalize applies, in order: inline data as is; remote storage URLs with
// doubled separators collapsed; bare filenames resolved against AssetBase;
// anything else as is.
func (n Normalizer) Normalize(src string) string {
	src = strings.TrimSpace(src)
	switch {
	case src == "":
		return n.Placeholder
	case IsDataURI(src):
		return src
	case n.IsStorageURL(src):
		return collapseSlashes(src)
	case !hasScheme(src):
		return strings.TrimRight(n.AssetBase, "/") + "/" + escapeComponent(src)
	default:
		return src
	}
}

// componentUnescapes restores the marks a browser leaves alone when encoding
// a URI component.
var componentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escapeComponent percent-encodes everything except letters, digits and
// -_.!~*'(). Filenames like "Fishes &girls.jpeg" stay a single path segment.
func escapeComponent(s string) string {
	return componentUnescapes.Replace(url.QueryEscape(s))
}

// IsStorageURL reports whether src points into remote object storage.
func (n Normalizer) IsStorageURL(src string) bool {
	return n.StorageMarker != "" && strings.Contains(src, n.StorageMarker)
}

func IsDataURI(src string) bool {
	return strings.HasPrefix(src, dataURIPrefix)
}

func hasScheme(src string) bool {
	lower := strings.ToLower(src)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func collapseSlashes(src string) string {
	scheme, rest, ok := strings.Cut(src, "://")
	if !ok {
		return doubledSlashes.ReplaceAllString(src, "/")
	}
	return scheme + "://" + doubledSlashes.ReplaceAllString(rest, "/")
}

// BlobKeyFromURL returns the object key (last path segment) of a storage URL.
func BlobKeyFromURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	path := strings.TrimRight(u.Path, "/")
	idx := strings.LastIndex(path, "/")
	key := path[idx+1:]
	if unescaped, err := url.PathUnescape(key); err == nil {
		return unescaped
	}
	return key
}
