package paintings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Fishes & Girls":   "fishes-girls",
		"100×70 cm":        "100x70-cm",
		"  Love  in loss ": "love-in-loss",
		"عبد العال":        "",
		"Alex--Cafe?":      "alex-cafe",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestSeedID(t *testing.T) {
	assert.Equal(t, "beliatcho-100x70-cm", SeedID("Beliatcho", "100×70 cm"))
	assert.Equal(t, "painting-90x45-cm", SeedID("عبد العال", "90×45 cm"))
	assert.Equal(t, "untitled", SeedID("Untitled", ""))
}

func TestSeedCatalog_IDsAreUniqueAndNonEmpty(t *testing.T) {
	seed := SeedCatalog()
	require.Len(t, seed, 59)
	seen := map[string]bool{}
	for _, p := range seed {
		require.NotEmpty(t, p.ID, p.Title)
		assert.False(t, seen[p.ID], "duplicate seed id %q", p.ID)
		seen[p.ID] = true
		assert.True(t, IsSeedID(p.ID))
		assert.Equal(t, OriginSeed, p.Origin)
		assert.Nil(t, p.CreatedAt, "raw seed records carry no createdAt")
	}
	assert.False(t, IsSeedID("not-a-seed"))
}

func TestSeedCatalog_ReturnsCopy(t *testing.T) {
	first := SeedCatalog()
	first[0].Title = "changed"
	assert.NotEqual(t, "changed", SeedCatalog()[0].Title)
}

func TestValidate(t *testing.T) {
	valid := Painting{Title: "Sunset", Price: 100, Dimensions: "40×40 cm", Image: "sunset.jpg", Date: "2024-05-01"}
	require.NoError(t, Validate(valid))

	cases := []struct {
		name  string
		mut   func(p *Painting)
		field string
	}{
		{"empty title", func(p *Painting) { p.Title = "  " }, "title"},
		{"empty dimensions", func(p *Painting) { p.Dimensions = "" }, "dimensions"},
		{"zero price", func(p *Painting) { p.Price = 0 }, "price"},
		{"negative price", func(p *Painting) { p.Price = -5 }, "price"},
		{"missing image", func(p *Painting) { p.Image = "" }, "image"},
		{"bad date", func(p *Painting) { p.Date = "01/05/2024" }, "date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mut(&p)
			err := Validate(p)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestSameContent(t *testing.T) {
	a := Painting{ID: "a", Title: "T", Price: 1, Image: "x"}
	b := a
	b.ID = "b"
	b.Version = 4
	assert.True(t, SameContent(a, b))
	b.Price = 2
	assert.False(t, SameContent(a, b))
}
