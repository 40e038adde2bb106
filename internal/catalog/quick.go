package catalog

import (
	"context"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"gallery-storefront/internal/domain/paintings"
)

// Defaults for paintings added through the quick upload form.
const (
	QuickPrice      = 10000
	QuickDimensions = "40×40 cm"
	QuickType       = "Acrylic Paint"
)

// QuickAdd adds a painting from nothing but an image, deriving the title from
// the file name. The rest can be edited afterwards.
func (c *Catalog) QuickAdd(ctx context.Context, filename, dataURI string) (paintings.Painting, error) {
	return c.Add(ctx, paintings.Painting{
		Title:      TitleFromFilename(filename),
		Price:      QuickPrice,
		Dimensions: QuickDimensions,
		Type:       QuickType,
		Image:      dataURI,
		Date:       c.opts.Now().Format("2006-01-02"),
	})
}

// TitleFromFilename turns "sunset_over-the nile.jpg" into "Sunset Over The Nile".
func TitleFromFilename(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	base = strings.TrimSuffix(base, path.Ext(base))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)

	words := strings.Fields(base)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	if len(words) == 0 {
		return "Untitled"
	}
	return strings.Join(words, " ")
}
