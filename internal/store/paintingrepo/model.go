package paintingrepo

import (
	"time"

	"gallery-storefront/internal/domain/paintings"
)

// PaintingRow is one record of the remote catalog table. Ids are generated
// by the application, not the database.
type PaintingRow struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Price       int    `gorm:"not null;default:0" json:"price"`
	Type        string `json:"type"`
	Dimensions  string `json:"dimensions"`
	ImageURL    string `gorm:"column:image_url" json:"image_url"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`

	// Version is bumped on every update and backs optimistic concurrency.
	Version int `gorm:"not null;default:1" json:"version"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PaintingRow) TableName() string {
	return "paintings"
}

func (r PaintingRow) toDomain() paintings.Painting {
	created := r.CreatedAt
	return paintings.Painting{
		ID:          r.ID,
		Title:       firstNonEmpty(r.Title, "Untitled"),
		Price:       max(r.Price, 0),
		Dimensions:  r.Dimensions,
		Type:        firstNonEmpty(r.Type, "Unknown"),
		Image:       r.ImageURL,
		Description: r.Description,
		Date:        firstNonEmpty(r.Date, created.Format(time.DateOnly)),
		CreatedAt:   &created,
		Version:     r.Version,
		Origin:      paintings.OriginRemote,
	}
}

func fromDomain(p paintings.Painting) PaintingRow {
	return PaintingRow{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Type:        p.Type,
		Dimensions:  p.Dimensions,
		ImageURL:    p.Image,
		Description: p.Description,
		Date:        p.Date,
	}
}

func firstNonEmpty(s ...string) string {
	for _, v := range s {
		if v != "" {
			return v
		}
	}
	return ""
}
