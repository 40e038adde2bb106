package artists

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/artists", ListArtists)
	r.GET("/artists/:slug", GetArtist)
	r.GET("/artists/:slug/paintings/:id", GetArtistWork)
	return r
}

func TestArtistRoutes(t *testing.T) {
	r := router()

	cases := []struct {
		path string
		code int
	}{
		{"/artists", http.StatusOK},
		{"/artists/vincent-van-gogh", http.StatusOK},
		{"/artists/nobody", http.StatusNotFound},
		{"/artists/vincent-van-gogh/paintings/3", http.StatusOK},
		{"/artists/vincent-van-gogh/paintings/99", http.StatusNotFound},
		{"/artists/vincent-van-gogh/paintings/abc", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestGetArtistWork_Body(t *testing.T) {
	w := httptest.NewRecorder()
	router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/artists/vincent-van-gogh/paintings/3", nil))

	assert.Contains(t, w.Body.String(), `"title":"Starry Night"`)
	assert.Contains(t, w.Body.String(), `"slug":"vincent-van-gogh"`)
}
