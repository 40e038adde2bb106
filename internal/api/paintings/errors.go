package paintings

import (
	"errors"
	"net/http"

	"gallery-storefront/internal/catalog"
	"gallery-storefront/internal/domain/paintings"
	"gallery-storefront/internal/logger"

	"github.com/gin-gonic/gin"
)

// statusFor maps a catalog error to its HTTP status.
func statusFor(err error) int {
	var (
		verr   *paintings.ValidationError
		upErr  *catalog.StorageUploadError
		remErr *catalog.RemoteOperationError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, paintings.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, paintings.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, catalog.ErrSeedReadOnly):
		return http.StatusForbidden
	case errors.As(err, &upErr), errors.As(err, &remErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the user-facing message for err and logs anything that
// is not the caller's fault.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error().Err(err).Msg("catalog operation failed")
	}
	c.JSON(status, gin.H{"error": catalog.ToResult(err).Message})
}
