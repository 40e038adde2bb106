package paintings

import (
	"regexp"
	"strings"
)

/*
	Slug helpers
	------------
	- Responsible ONLY for:
	  • turning titles/dimensions into URL-safe tokens
	  • deriving seed ids
	- No storage access here
*/

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// Slugify generates a URL-safe slug.
// Example: "Fishes & Girls" -> "fishes-girls", "100×70 cm" -> "100x70-cm"
func Slugify(s string) string {
	base := strings.ToLower(strings.TrimSpace(s))
	base = strings.ReplaceAll(base, "×", "x")
	base = strings.Join(strings.Fields(base), "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	return strings.Trim(base, "-")
}

// SeedID derives the id of a compiled-in painting from its title and
// dimensions. Titles that slugify to nothing (non-latin scripts) fall back to
// "painting".
func SeedID(title, dimensions string) string {
	t := Slugify(title)
	if t == "" {
		t = "painting"
	}
	d := Slugify(dimensions)
	if d == "" {
		return t
	}
	return t + "-" + d
}
