package paintings

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"gallery-storefront/internal/catalog"
	"gallery-storefront/internal/domain/media"
	"gallery-storefront/internal/logger"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 10 << 20

var (
	errNotReadable = errors.New("could not read file")
	errNotImage    = errors.New("not an image")
)

// POST /admin/paintings
func (h *Handler) Create(c *gin.Context) {
	var in paintingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed painting"})
		return
	}
	created, err := h.catalog.Add(c.Request.Context(), in.toDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toDTO(h.resolver.Normalizer(), created))
}

// PUT /admin/paintings/:id
func (h *Handler) Update(c *gin.Context) {
	var in paintingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed painting"})
		return
	}
	updated, err := h.catalog.Update(c.Request.Context(), c.Param("id"), in.toDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDTO(h.resolver.Normalizer(), updated))
}

// DELETE /admin/paintings/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalog.ToResult(nil))
}

// POST /admin/paintings/refresh
func (h *Handler) Refresh(c *gin.Context) {
	if err := h.catalog.Refresh(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(h.catalog.List())})
}

// GET /admin/paintings/hidden
func (h *Handler) Hidden(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ids": h.catalog.HiddenIDs()})
}

// POST /admin/paintings/:id/restore
func (h *Handler) Restore(c *gin.Context) {
	if err := h.catalog.Restore(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalog.ToResult(nil))
}

type quickUploadResult struct {
	File string `json:"file"`
	catalog.Result
	ID string `json:"id,omitempty"`
}

// POST /admin/paintings/quick-upload takes one or more "files" and adds a
// painting for each with default details.
func (h *Handler) QuickUpload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Expected a multipart form"})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
		return
	}
	log := logger.FromContext(c.Request.Context())

	results := make([]quickUploadResult, 0, len(files))
	added := 0
	for _, fh := range files {
		res := quickUploadResult{File: fh.Filename}

		dataURI, err := readAsDataURI(fh.Header.Get("Content-Type"), fh.Size, func() (io.ReadCloser, error) { return fh.Open() })
		if err != nil {
			res.Message = err.Error()
			results = append(results, res)
			continue
		}

		created, err := h.catalog.QuickAdd(c.Request.Context(), fh.Filename, dataURI)
		res.Result = catalog.ToResult(err)
		if err != nil {
			log.Warn().Err(err).Str("file", fh.Filename).Msg("quick upload failed")
		} else {
			res.ID = created.ID
			added++
		}
		results = append(results, res)
	}

	status := http.StatusOK
	if added == 0 {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"added": added, "results": results})
}

func readAsDataURI(contentType string, size int64, open func() (io.ReadCloser, error)) (string, error) {
	if size > maxUploadBytes {
		return "", fmt.Errorf("file is larger than %d MB", maxUploadBytes>>20)
	}
	f, err := open()
	if err != nil {
		return "", errNotReadable
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return "", errNotReadable
	}
	if len(data) > maxUploadBytes {
		return "", fmt.Errorf("file is larger than %d MB", maxUploadBytes>>20)
	}

	mime := contentType
	if mime == "" || mime == "application/octet-stream" {
		mime = http.DetectContentType(data)
	}
	if !media.IsImageMIME(mime) {
		return "", errNotImage
	}
	return media.EncodeDataURI(mime, data), nil
}

// GET /admin/storage/audit
func (h *Handler) AuditStorage(c *gin.Context) {
	report, err := h.catalog.AuditStorage(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /admin/status
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Status())
}
