package artists

import (
	"errors"
	"net/http"
	"strconv"

	"gallery-storefront/internal/domain/artists"

	"github.com/gin-gonic/gin"
)

// GET /artists
func ListArtists(c *gin.Context) {
	c.JSON(http.StatusOK, artists.List())
}

// GET /artists/:slug
func GetArtist(c *gin.Context) {
	a, err := artists.BySlug(c.Param("slug"))
	if err != nil {
		respondNotFound(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// GET /artists/:slug/paintings/:id
func GetArtistWork(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid painting id"})
		return
	}
	a, w, err := artists.WorkByID(c.Param("slug"), id)
	if err != nil {
		respondNotFound(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"artist":   gin.H{"name": a.Name, "slug": a.Slug},
		"painting": w,
	})
}

func respondNotFound(c *gin.Context, err error) {
	if errors.Is(err, artists.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist"})
}
