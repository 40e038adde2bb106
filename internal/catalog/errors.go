package catalog

import (
	"errors"
	"fmt"

	"gallery-storefront/internal/domain/paintings"
)

var (
	ErrSeedReadOnly      = errors.New("built-in paintings cannot be edited")
	errStorageNotEnabled = errors.New("object storage is not configured")
)

// RemoteOperationError wraps a rejected call to the remote database or
// object storage. The merged list is left at its last known-good state.
type RemoteOperationError struct {
	Op  string
	Err error
}

func (e *RemoteOperationError) Error() string {
	return fmt.Sprintf("remote %s failed: %v", e.Op, e.Err)
}

func (e *RemoteOperationError) Unwrap() error { return e.Err }

// StorageUploadError aborts an Add or Update before any row is written.
type StorageUploadError struct {
	Key string
	Err error
}

func (e *StorageUploadError) Error() string {
	return fmt.Sprintf("upload image %q: %v", e.Key, e.Err)
}

func (e *StorageUploadError) Unwrap() error { return e.Err }

// Result is what the admin UI shows after a mutation.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// ToResult converts any catalog error into a user-facing message.
func ToResult(err error) Result {
	if err == nil {
		return Result{OK: true}
	}

	var (
		verr   *paintings.ValidationError
		upErr  *StorageUploadError
		remErr *RemoteOperationError
	)
	switch {
	case errors.As(err, &verr):
		return Result{Message: "Please check the form: " + verr.Error() + "."}
	case errors.Is(err, paintings.ErrNotFound):
		return Result{Message: "That painting no longer exists."}
	case errors.Is(err, paintings.ErrConflict):
		return Result{Message: "Someone else changed this painting. Reload and try again."}
	case errors.Is(err, ErrSeedReadOnly):
		return Result{Message: "Built-in paintings cannot be edited."}
	case errors.As(err, &upErr):
		return Result{Message: "The image could not be uploaded, so the painting was not saved."}
	case errors.As(err, &remErr):
		return Result{Message: "The catalog could not be reached. Please try again."}
	default:
		return Result{Message: "Something went wrong. Please try again."}
	}
}
