package catalog_test

import (
	"context"
	"errors"
	"strings"
	"sync"

	"gallery-storefront/internal/domain/paintings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/mock"
)

const storageBase = "https://x.supabase.co/storage/v1/object/public/paintings/"

type mockRows struct{ mock.Mock }

func (m *mockRows) List(ctx context.Context) ([]paintings.Painting, error) {
	args := m.Called(ctx)
	return args.Get(0).([]paintings.Painting), args.Error(1)
}

func (m *mockRows) Insert(ctx context.Context, p paintings.Painting) (paintings.Painting, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(paintings.Painting), args.Error(1)
}

func (m *mockRows) Update(ctx context.Context, p paintings.Painting, expectedVersion *int) (paintings.Painting, error) {
	args := m.Called(ctx, p, expectedVersion)
	return args.Get(0).(paintings.Painting), args.Error(1)
}

func (m *mockRows) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockBlobs struct{ mock.Mock }

func (m *mockBlobs) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	return m.Called(ctx, key, data, contentType).Error(0)
}

func (m *mockBlobs) PublicURL(key string) string {
	return storageBase + key
}

func (m *mockBlobs) Owns(url string) bool {
	return strings.HasPrefix(url, storageBase)
}

func (m *mockBlobs) Remove(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

func (m *mockBlobs) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

type mockOverrides struct{ mock.Mock }

func (m *mockOverrides) Load() mapset.Set[string] {
	return m.Called().Get(0).(mapset.Set[string])
}

func (m *mockOverrides) Save(ids mapset.Set[string]) error {
	return m.Called(ids).Error(0)
}

// memBlobs is an in-memory bucket served from base.
type memBlobs struct {
	base      string
	mu        sync.Mutex
	objects   map[string][]byte
	failPut   bool
	removed   []string
	uploadCnt int
}

func newMemBlobs() *memBlobs {
	return &memBlobs{base: storageBase, objects: map[string][]byte{}}
}

func (b *memBlobs) Upload(_ context.Context, key string, data []byte, _ string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.uploadCnt++
	if b.failPut {
		return errors.New("bucket unavailable")
	}
	b.objects[key] = data
	return nil
}

func (b *memBlobs) PublicURL(key string) string {
	return b.base + key
}

func (b *memBlobs) Owns(url string) bool {
	return strings.HasPrefix(url, b.base)
}

func (b *memBlobs) Remove(_ context.Context, keys ...string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, k := range keys {
		delete(b.objects, k)
		b.removed = append(b.removed, k)
	}
	return nil
}

func (b *memBlobs) List(context.Context) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	keys := make([]string, 0, len(b.objects))
	for k := range b.objects {
		keys = append(keys, k)
	}
	return keys, nil
}
