// Package artists holds the featured artist pages. They are curated by hand
// and are not part of the sellable catalog.
package artists

import (
	"errors"
	"slices"
)

var ErrNotFound = errors.New("artist not found")

type Work struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Size        string `json:"size"`
	Price       string `json:"price"` // display text, e.g. "EGP 45,000" or "Not for sale"
	Medium      string `json:"medium"`
	Year        int    `json:"year,omitempty"`
	Description string `json:"description"`
}

type Artist struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Bio   string `json:"bio"`
	Slug  string `json:"slug"`
	Works []Work `json:"paintings"`
}

// Summary is the list-page view of an artist.
type Summary struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}

var featured = []Artist{
	{
		ID:    1,
		Name:  "Wagih Yassa",
		Image: "/images/wagihhhh.jpeg",
		Bio:   "Wagih Yassa is a contemporary artist based in Cairo, Egypt.",
		Slug:  "wagih-yassa",
		Works: []Work{
			{ID: 1, Title: "paint", Image: "/images/wagih 1.jpeg", Size: "100 x 70 cm", Price: "EGP 135,000", Medium: "Acrylic on canvas"},
			{ID: 2, Title: "paint", Image: "/images/wagih2.jpeg", Size: "50 x 60 cm", Price: "EGP 45,000", Medium: "Acrylic paint"},
			{ID: 3, Title: "paint", Image: "/images/wagih3.jpeg", Size: "40 x 60 cm", Price: "EGP 30,000", Medium: "Acrylic paint"},
			{ID: 4, Title: "paint", Image: "/images/wagih4.jpeg", Size: "70 x 90 cm", Price: "EGP 85,000", Medium: "Oil paint"},
		},
	},
	{
		ID:    2,
		Name:  "Vincent van Gogh",
		Image: "/images/van-gogh-profile.jpg",
		Bio:   "Dutch Post-Impressionist painter who is among the most famous and influential figures in the history of Western art.",
		Slug:  "vincent-van-gogh",
		Works: []Work{
			{ID: 3, Title: "Starry Night", Image: "/images/starry-night.jpg", Size: "73.7 x 92.1 cm", Price: "Not for sale", Medium: "Oil on canvas",
				Description: "One of the most recognized paintings in the history of Western culture."},
		},
	},
}

func List() []Summary {
	out := make([]Summary, 0, len(featured))
	for _, a := range featured {
		out = append(out, Summary{ID: a.ID, Name: a.Name, Image: a.Image, Description: a.Bio, Slug: a.Slug})
	}
	return out
}

func BySlug(slug string) (Artist, error) {
	i := slices.IndexFunc(featured, func(a Artist) bool { return a.Slug == slug })
	if i < 0 {
		return Artist{}, ErrNotFound
	}
	a := featured[i]
	a.Works = slices.Clone(a.Works)
	return a, nil
}

// WorkByID returns one painting from an artist page.
func WorkByID(slug string, id int) (Artist, Work, error) {
	a, err := BySlug(slug)
	if err != nil {
		return Artist{}, Work{}, err
	}
	i := slices.IndexFunc(a.Works, func(w Work) bool { return w.ID == id })
	if i < 0 {
		return Artist{}, Work{}, ErrNotFound
	}
	return a, a.Works[i], nil
}
