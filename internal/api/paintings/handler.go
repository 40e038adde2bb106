// Package paintings serves the painting catalog over HTTP: the public gallery
// and the admin editing endpoints.
package paintings

import (
	"net/http"

	"gallery-storefront/internal/catalog"
	"gallery-storefront/internal/domain/media"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog  *catalog.Catalog
	resolver *media.Resolver
}

func NewHandler(c *catalog.Catalog, r *media.Resolver) *Handler {
	return &Handler{catalog: c, resolver: r}
}

// GET /paintings
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, toDTOs(h.resolver.Normalizer(), h.catalog.List()))
}

// GET /paintings/:id
func (h *Handler) Get(c *gin.Context) {
	p, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDTO(h.resolver.Normalizer(), p))
}

// GET /paintings/:id/image serves inline images directly and redirects to
// everything else, falling back to the placeholder when the source is gone.
func (h *Handler) Image(c *gin.Context) {
	p, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if media.IsDataURI(p.Image) {
		mime, data, err := media.DecodeDataURI(p.Image)
		if err == nil {
			c.Header("Cache-Control", "public, max-age=3600")
			c.Data(http.StatusOK, mime, data)
			return
		}
		c.Redirect(http.StatusFound, h.resolver.Normalizer().Placeholder)
		return
	}

	c.Redirect(http.StatusFound, h.resolver.Resolve(c.Request.Context(), p.Image))
}
