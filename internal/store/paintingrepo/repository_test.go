package paintingrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gallery-storefront/database"
	"gallery-storefront/internal/domain/paintings"
	"gallery-storefront/internal/store/paintingrepo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *paintingrepo.Repository {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	return paintingrepo.New(db)
}

func samplePainting(id, title string) paintings.Painting {
	return paintings.Painting{
		ID:         id,
		Title:      title,
		Price:      20000,
		Dimensions: "40×40 cm",
		Type:       "Acrylic Paint",
		Image:      "https://x.supabase.co/storage/v1/object/public/paintings/" + id + ".jpg",
		Date:       "2024-02-01",
	}
}

func TestInsertAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Insert(ctx, samplePainting("11111111-1111-1111-1111-111111111111", "Nile"))
	require.NoError(t, err)
	assert.Equal(t, 1, created.Version)
	require.NotNil(t, created.CreatedAt)
	assert.Equal(t, paintings.OriginRemote, created.Origin)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, paintings.SameContent(samplePainting(created.ID, "Nile"), got))
}

func TestInsert_RequiresID(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.Insert(context.Background(), samplePainting("", "No id"))
	assert.Error(t, err)
}

func TestList_NewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, samplePainting("a", "Older"))
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = repo.Insert(ctx, samplePainting("b", "Newer"))
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "a", list[1].ID)
}

func TestUpdate_WithMatchingVersion(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Insert(ctx, samplePainting("a", "Before"))
	require.NoError(t, err)

	edit := created
	edit.Title = "After"
	version := created.Version
	updated, err := repo.Update(ctx, edit, &version)
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, 2, updated.Version)
}

func TestUpdate_StaleVersionConflicts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Insert(ctx, samplePainting("a", "Before"))
	require.NoError(t, err)

	first := created
	first.Title = "First editor"
	_, err = repo.Update(ctx, first, nil)
	require.NoError(t, err)

	second := created
	second.Title = "Second editor"
	stale := created.Version
	_, err = repo.Update(ctx, second, &stale)
	assert.True(t, errors.Is(err, paintings.ErrConflict))

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "First editor", got.Title)
}

func TestUpdate_WithoutVersionIsLastWriteWins(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Insert(ctx, samplePainting("a", "Before"))
	require.NoError(t, err)

	for _, title := range []string{"One", "Two"} {
		p := created
		p.Title = title
		_, err := repo.Update(ctx, p, nil)
		require.NoError(t, err)
	}

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Two", got.Title)
	assert.Equal(t, 3, got.Version)
}

func TestUpdate_Missing(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.Update(context.Background(), samplePainting("missing", "x"), nil)
	assert.True(t, errors.Is(err, paintings.ErrNotFound))
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, samplePainting("a", "Gone soon"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "a"))
	assert.True(t, errors.Is(repo.Delete(ctx, "a"), paintings.ErrNotFound))

	_, err = repo.Get(ctx, "a")
	assert.True(t, errors.Is(err, paintings.ErrNotFound))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
