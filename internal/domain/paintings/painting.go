package paintings

import (
	"strings"
	"time"
)

type Origin string

const (
	OriginSeed   Origin = "seed"
	OriginRemote Origin = "remote"
)

// Painting is one artwork listing as the storefront sees it, regardless of
// whether it was compiled in or stored remotely.
type Painting struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Price       int    `json:"price"`
	Dimensions  string `json:"dimensions"`
	Type        string `json:"type"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
	// Date is the user-editable creation date of the artwork (YYYY-MM-DD).
	Date      string     `json:"date"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	Version   int        `json:"version,omitempty"`
	Origin    Origin     `json:"origin,omitempty"`
}

// Validate checks the fields required before anything is sent to the remote
// catalog.
func Validate(p Painting) error {
	switch {
	case strings.TrimSpace(p.Title) == "":
		return &ValidationError{Field: "title", Reason: "is required"}
	case strings.TrimSpace(p.Dimensions) == "":
		return &ValidationError{Field: "dimensions", Reason: "is required"}
	case p.Price <= 0:
		return &ValidationError{Field: "price", Reason: "must be positive"}
	case strings.TrimSpace(p.Image) == "":
		return &ValidationError{Field: "image", Reason: "is required"}
	}
	if p.Date != "" {
		if _, err := time.Parse(time.DateOnly, p.Date); err != nil {
			return &ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
		}
	}
	return nil
}

// SameContent reports whether two records carry the same visible fields,
// ignoring identity and system metadata.
func SameContent(a, b Painting) bool {
	return a.Title == b.Title &&
		a.Price == b.Price &&
		a.Dimensions == b.Dimensions &&
		a.Type == b.Type &&
		a.Image == b.Image &&
		a.Description == b.Description &&
		a.Date == b.Date
}
