package paintings

import (
	"gallery-storefront/internal/cart"
	"gallery-storefront/internal/domain/media"
	"gallery-storefront/internal/domain/paintings"
)

type PaintingDTO struct {
	paintings.Painting
	ImageSrc        string  `json:"imageSrc"`
	DiscountedPrice float64 `json:"discountedPrice"`
}

func toDTO(n media.Normalizer, p paintings.Painting) PaintingDTO {
	return PaintingDTO{
		Painting:        p,
		ImageSrc:        n.Normalize(p.Image),
		DiscountedPrice: cart.ApplyDiscount(float64(p.Price)),
	}
}

func toDTOs(n media.Normalizer, list []paintings.Painting) []PaintingDTO {
	out := make([]PaintingDTO, 0, len(list))
	for _, p := range list {
		out = append(out, toDTO(n, p))
	}
	return out
}

type paintingInput struct {
	Title       string `json:"title"`
	Price       int    `json:"price"`
	Dimensions  string `json:"dimensions"`
	Type        string `json:"type"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Date        string `json:"date"`
	// Version is the row version the editor started from; zero means
	// last write wins.
	Version int `json:"version"`
}

func (in paintingInput) toDomain() paintings.Painting {
	return paintings.Painting{
		Title:       in.Title,
		Price:       in.Price,
		Dimensions:  in.Dimensions,
		Type:        in.Type,
		Image:       in.Image,
		Description: in.Description,
		Date:        in.Date,
		Version:     in.Version,
	}
}
