// Package paintingrepo is the remote catalog table accessed through gorm.
package paintingrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gallery-storefront/internal/domain/paintings"

	"gorm.io/gorm"
)

type Repository struct {
	db  *gorm.DB
	now func() time.Time
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// List returns every row, newest first.
func (r *Repository) List(ctx context.Context) ([]paintings.Painting, error) {
	var rows []PaintingRow
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("select paintings: %w", err)
	}

	out := make([]paintings.Painting, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *Repository) Get(ctx context.Context, id string) (paintings.Painting, error) {
	var row PaintingRow
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return paintings.Painting{}, paintings.ErrNotFound
	}
	if err != nil {
		return paintings.Painting{}, fmt.Errorf("select painting %s: %w", id, err)
	}
	return row.toDomain(), nil
}

// Insert stores p under its preassigned id with version 1 and a server-side
// creation timestamp.
func (r *Repository) Insert(ctx context.Context, p paintings.Painting) (paintings.Painting, error) {
	if p.ID == "" {
		return paintings.Painting{}, errors.New("insert painting: missing id")
	}
	row := fromDomain(p)
	row.Version = 1
	row.CreatedAt = r.now().UTC()

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return paintings.Painting{}, fmt.Errorf("insert painting: %w", err)
	}
	return row.toDomain(), nil
}

// Update rewrites the visible fields of p.ID and bumps its version. With a
// non-nil expectedVersion the write only applies if the stored version still
// matches, otherwise ErrConflict is returned.
func (r *Repository) Update(ctx context.Context, p paintings.Painting, expectedVersion *int) (paintings.Painting, error) {
	updates := map[string]interface{}{
		"title":       p.Title,
		"price":       p.Price,
		"type":        p.Type,
		"dimensions":  p.Dimensions,
		"image_url":   p.Image,
		"description": p.Description,
		"date":        p.Date,
		"version":     gorm.Expr("version + 1"),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&PaintingRow{}).Where("id = ?", p.ID)
		if expectedVersion != nil {
			q = q.Where("version = ?", *expectedVersion)
		}
		res := q.Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		var count int64
		if err := tx.Model(&PaintingRow{}).Where("id = ?", p.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return paintings.ErrNotFound
		}
		return paintings.ErrConflict
	})
	if err != nil {
		if errors.Is(err, paintings.ErrNotFound) || errors.Is(err, paintings.ErrConflict) {
			return paintings.Painting{}, err
		}
		return paintings.Painting{}, fmt.Errorf("update painting %s: %w", p.ID, err)
	}

	return r.Get(ctx, p.ID)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&PaintingRow{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete painting %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return paintings.ErrNotFound
	}
	return nil
}

// Count reads the row total straight from the table.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&PaintingRow{}).Count(&n).Error
	return n, err
}
