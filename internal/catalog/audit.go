package catalog

import (
	"context"
	"slices"

	"gallery-storefront/internal/domain/media"

	mapset "github.com/deckarep/golang-set/v2"
)

type MissingImage struct {
	PaintingID string `json:"painting_id"`
	Title      string `json:"title"`
	Key        string `json:"key"`
}

// AuditReport compares object storage with the remote rows.
type AuditReport struct {
	// Orphaned are stored objects no row points to.
	Orphaned []string `json:"orphaned"`
	// Missing are rows whose storage image does not exist.
	Missing []MissingImage `json:"missing"`
}

// AuditStorage lists the bucket and checks it against the last fetched
// remote rows. It does not modify anything.
func (c *Catalog) AuditStorage(ctx context.Context) (AuditReport, error) {
	if c.blobs == nil {
		return AuditReport{}, &RemoteOperationError{Op: "list images", Err: errStorageNotEnabled}
	}
	keys, err := c.blobs.List(ctx)
	if err != nil {
		return AuditReport{}, &RemoteOperationError{Op: "list images", Err: err}
	}
	stored := mapset.NewThreadUnsafeSet(keys...)

	c.mu.RLock()
	remote := slices.Clone(c.remote)
	c.mu.RUnlock()

	report := AuditReport{Orphaned: []string{}, Missing: []MissingImage{}}
	referenced := mapset.NewThreadUnsafeSet[string]()
	for _, p := range remote {
		if !c.ownsBlob(p.Image) {
			continue
		}
		key := media.BlobKeyFromURL(p.Image)
		referenced.Add(key)
		if !stored.Contains(key) {
			report.Missing = append(report.Missing, MissingImage{PaintingID: p.ID, Title: p.Title, Key: key})
		}
	}

	report.Orphaned = append(report.Orphaned, stored.Difference(referenced).ToSlice()...)
	slices.Sort(report.Orphaned)

	c.log.Info().
		Int("stored", len(keys)).
		Int("orphaned", len(report.Orphaned)).
		Int("missing", len(report.Missing)).
		Msg("storage audit finished")
	return report, nil
}
