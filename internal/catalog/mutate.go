package catalog

import (
	"context"
	"errors"
	"strings"

	"gallery-storefront/internal/domain/media"
	"gallery-storefront/internal/domain/paintings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Add uploads an inline image if needed and inserts a new remote row.
func (c *Catalog) Add(ctx context.Context, p paintings.Painting) (created paintings.Painting, err error) {
	if err := paintings.Validate(p); err != nil {
		return paintings.Painting{}, err
	}
	done := c.begin()
	defer func() { done(err) }()

	return c.insertRemote(ctx, p)
}

func (c *Catalog) insertRemote(ctx context.Context, p paintings.Painting) (paintings.Painting, error) {
	if c.rows == nil {
		return paintings.Painting{}, &RemoteOperationError{Op: "insert", Err: errStorageNotEnabled}
	}

	p, uploaded, err := c.materializeImage(ctx, p)
	if err != nil {
		return paintings.Painting{}, err
	}

	p.ID = c.opts.NewID()
	p.Origin = paintings.OriginRemote
	p.Version = 0
	p.CreatedAt = nil

	created, err := c.rows.Insert(ctx, p)
	if err != nil {
		if uploaded != "" {
			c.removeBlob(ctx, uploaded)
		}
		return paintings.Painting{}, &RemoteOperationError{Op: "insert", Err: err}
	}

	if err := c.refresh(ctx); err != nil {
		c.log.Warn().Err(err).Str("id", created.ID).Msg("refresh after add failed, appending locally")
		c.mu.Lock()
		c.remote = append([]paintings.Painting{created}, c.remote...)
		c.merged = c.mergeLocked()
		c.mu.Unlock()
		c.notify()
	}
	return created, nil
}

// Update edits a painting. Seed ids follow the configured SeedEditPolicy;
// remote ids are written to the row store with p.Version as the expected
// version, or last-write-wins when p.Version is zero.
func (c *Catalog) Update(ctx context.Context, id string, p paintings.Painting) (updated paintings.Painting, err error) {
	p.ID = id
	if err := paintings.Validate(p); err != nil {
		return paintings.Painting{}, err
	}
	done := c.begin()
	defer func() { done(err) }()

	if c.isSeed(id) {
		return c.updateSeed(ctx, p)
	}
	return c.updateRemote(ctx, p)
}

func (c *Catalog) updateSeed(ctx context.Context, p paintings.Painting) (paintings.Painting, error) {
	c.mu.RLock()
	hidden := c.hidden.Contains(p.ID)
	c.mu.RUnlock()
	if hidden {
		return paintings.Painting{}, paintings.ErrNotFound
	}

	switch c.opts.SeedEdits {
	case SeedEditsReject:
		return paintings.Painting{}, ErrSeedReadOnly

	case SeedEditsMigrate:
		seedID := p.ID
		created, err := c.insertRemote(ctx, p)
		if err != nil {
			return paintings.Painting{}, err
		}
		if err := c.hide(seedID); err != nil {
			c.log.Warn().Err(err).Str("id", seedID).Msg("migrated seed painting could not be hidden persistently")
		}
		c.log.Info().Str("seed_id", seedID).Str("id", created.ID).Msg("seed painting migrated to remote catalog")
		return created, nil

	default:
		p.Origin = paintings.OriginSeed
		p.Version = 0
		c.mu.Lock()
		c.edits[p.ID] = p
		c.merged = c.mergeLocked()
		c.mu.Unlock()
		c.notify()
		return p, nil
	}
}

func (c *Catalog) updateRemote(ctx context.Context, p paintings.Painting) (paintings.Painting, error) {
	if c.rows == nil {
		return paintings.Painting{}, &RemoteOperationError{Op: "update", Err: errStorageNotEnabled}
	}
	previous, known := c.findRemote(p.ID)

	p, uploaded, err := c.materializeImage(ctx, p)
	if err != nil {
		return paintings.Painting{}, err
	}

	var expected *int
	if p.Version > 0 {
		v := p.Version
		expected = &v
	} else {
		c.log.Warn().Str("id", p.ID).Msg("update without version, last write wins")
	}
	p.Origin = paintings.OriginRemote

	updated, err := c.rows.Update(ctx, p, expected)
	if err != nil {
		if uploaded != "" {
			c.removeBlob(ctx, uploaded)
		}
		if errors.Is(err, paintings.ErrNotFound) || errors.Is(err, paintings.ErrConflict) {
			return paintings.Painting{}, err
		}
		return paintings.Painting{}, &RemoteOperationError{Op: "update", Err: err}
	}

	if uploaded != "" && known && previous.Image != updated.Image && c.ownsBlob(previous.Image) {
		c.removeBlob(ctx, media.BlobKeyFromURL(previous.Image))
	}

	if err := c.refresh(ctx); err != nil {
		c.log.Warn().Err(err).Str("id", updated.ID).Msg("refresh after update failed, patching locally")
		c.mu.Lock()
		for i := range c.remote {
			if c.remote[i].ID == updated.ID {
				c.remote[i] = updated
			}
		}
		c.merged = c.mergeLocked()
		c.mu.Unlock()
		c.notify()
	}
	return updated, nil
}

// Delete hides a seed painting locally, or deletes a remote row and then
// its stored image. A failed image delete is logged and does not fail the
// call.
func (c *Catalog) Delete(ctx context.Context, id string) (err error) {
	done := c.begin()
	defer func() { done(err) }()

	if c.isSeed(id) {
		return c.hide(id)
	}

	existing, ok := c.findRemote(id)
	if !ok {
		return paintings.ErrNotFound
	}

	if err := c.rows.Delete(ctx, id); err != nil {
		if errors.Is(err, paintings.ErrNotFound) {
			return err
		}
		return &RemoteOperationError{Op: "delete", Err: err}
	}

	if c.ownsBlob(existing.Image) {
		c.removeBlob(ctx, media.BlobKeyFromURL(existing.Image))
	}

	if err := c.refresh(ctx); err != nil {
		c.log.Warn().Err(err).Str("id", id).Msg("refresh after delete failed, dropping locally")
		c.mu.Lock()
		c.remote = removeByID(c.remote, id)
		c.merged = c.mergeLocked()
		c.mu.Unlock()
		c.notify()
	}
	return nil
}

// Restore clears a seed id from the hidden set so it shows again.
func (c *Catalog) Restore(id string) error {
	if !c.isSeed(id) {
		return paintings.ErrNotFound
	}
	c.hiddenMu.Lock()
	defer c.hiddenMu.Unlock()

	c.mu.RLock()
	next := c.hidden.Clone()
	c.mu.RUnlock()
	next.Remove(id)

	if err := c.saveHidden(next, ""); err != nil {
		return err
	}
	c.log.Info().Str("id", id).Msg("seed painting restored")
	return nil
}

// hide persists the hidden set with id added. It always writes, so hiding
// an already hidden id leaves the stored value unchanged.
func (c *Catalog) hide(id string) error {
	c.hiddenMu.Lock()
	defer c.hiddenMu.Unlock()

	c.mu.RLock()
	next := c.hidden.Clone()
	c.mu.RUnlock()
	next.Add(id)

	return c.saveHidden(next, id)
}

// saveHidden persists ids, then swaps them in and drops any session edit
// for dropEdit. Callers hold hiddenMu.
func (c *Catalog) saveHidden(ids mapset.Set[string], dropEdit string) error {
	if c.overrides != nil {
		if err := c.overrides.Save(ids); err != nil {
			return err
		}
	}

	c.mu.Lock()
	c.hidden = ids
	if dropEdit != "" {
		delete(c.edits, dropEdit)
	}
	c.merged = c.mergeLocked()
	c.mu.Unlock()

	c.notify()
	return nil
}

// materializeImage uploads an inline data URI and swaps it for the public
// URL. The returned key is set only when something was uploaded.
func (c *Catalog) materializeImage(ctx context.Context, p paintings.Painting) (paintings.Painting, string, error) {
	if !media.IsDataURI(p.Image) {
		return p, "", nil
	}

	mime, data, err := media.DecodeDataURI(p.Image)
	if err != nil {
		return p, "", &paintings.ValidationError{Field: "image", Reason: "is not a valid data uri"}
	}

	key := media.BlobName(c.opts.Now(), p.Title, mime)
	if c.blobs == nil {
		return p, "", &StorageUploadError{Key: key, Err: errStorageNotEnabled}
	}
	if err := c.blobs.Upload(ctx, key, data, mime); err != nil {
		return p, "", &StorageUploadError{Key: key, Err: err}
	}

	p.Image = c.blobs.PublicURL(key)
	c.log.Debug().Str("key", key).Int("bytes", len(data)).Msg("image uploaded")
	return p, key, nil
}

// ownsBlob reports whether image lives in the configured object store, by
// its public URL prefix or, for rows written before that, the storage marker.
func (c *Catalog) ownsBlob(image string) bool {
	if c.blobs == nil || media.BlobKeyFromURL(image) == "" {
		return false
	}
	if c.blobs.Owns(image) {
		return true
	}
	return c.opts.StorageMarker != "" && strings.Contains(image, c.opts.StorageMarker)
}

func (c *Catalog) removeBlob(ctx context.Context, key string) {
	if err := c.blobs.Remove(ctx, key); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("failed to delete stored image")
	}
}

func removeByID(list []paintings.Painting, id string) []paintings.Painting {
	out := list[:0]
	for _, p := range list {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
