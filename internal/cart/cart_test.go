package cart

import (
	"errors"
	"testing"

	"gallery-storefront/internal/localstore"
	"gallery-storefront/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() (*Store, *localstore.MemoryKV) {
	kv := localstore.NewMemoryKV()
	return NewStore(kv, logger.Nop()), kv
}

func TestApplyDiscount(t *testing.T) {
	assert.Equal(t, 95000.0, ApplyDiscount(100000))
	assert.Equal(t, 9.5, ApplyDiscount(10))
	assert.Equal(t, 0.95, ApplyDiscount(1))
	assert.Equal(t, 31.34, ApplyDiscount(32.99))
	// exact halves round up rather than drifting down through binary floats
	assert.Equal(t, 0.29, ApplyDiscount(0.3))
	assert.Equal(t, 1.43, ApplyDiscount(1.5))
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(9500000), MinorUnits(95000))
	assert.Equal(t, int64(3134), MinorUnits(31.34))
	assert.Equal(t, int64(115), MinorUnits(1.15))
	assert.Equal(t, int64(29), MinorUnits(ApplyDiscount(0.3)))
}

func TestAdd_IncrementsExistingItem(t *testing.T) {
	s, _ := newTestStore()

	_, err := s.Add("c1", Item{ID: "horses-dance", Title: "Horses Dance", Price: 30000})
	require.NoError(t, err)
	items, err := s.Add("c1", Item{ID: "horses-dance", Title: "Horses Dance", Price: 30000})
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.NotNil(t, items[0].AddedAt)
	assert.Equal(t, 60000, Subtotal(items))
	assert.Equal(t, 57000.0, Total(items))
}

func TestAdd_RequiresID(t *testing.T) {
	s, _ := newTestStore()
	_, err := s.Add("c1", Item{Title: "nameless"})
	assert.Error(t, err)
}

func TestCartsAreIsolated(t *testing.T) {
	s, _ := newTestStore()

	_, err := s.Add("c1", Item{ID: "a", Price: 100})
	require.NoError(t, err)

	other, err := s.Items("c2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSetQuantityAndRemove(t *testing.T) {
	s, _ := newTestStore()
	_, err := s.Add("c1", Item{ID: "a", Price: 100})
	require.NoError(t, err)
	_, err = s.Add("c1", Item{ID: "b", Price: 250})
	require.NoError(t, err)

	items, err := s.SetQuantity("c1", "a", 3)
	require.NoError(t, err)
	assert.Equal(t, 550, Subtotal(items))
	assert.Equal(t, 4, Count(items))

	items, err = s.SetQuantity("c1", "b", 0)
	require.NoError(t, err)
	require.Len(t, items, 1)

	_, err = s.Remove("c1", "b")
	assert.ErrorIs(t, err, ErrItemNotInCart)

	items, err = s.Remove("c1", "a")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestReconcile_DropsAndReprices(t *testing.T) {
	s, _ := newTestStore()
	_, err := s.Add("c1", Item{ID: "kept", Title: "Old", Price: 100})
	require.NoError(t, err)
	_, err = s.Add("c1", Item{ID: "kept", Title: "Old", Price: 100})
	require.NoError(t, err)
	_, err = s.Add("c1", Item{ID: "gone", Price: 50})
	require.NoError(t, err)

	items, dropped, err := s.Reconcile("c1", func(it Item) (Item, bool, error) {
		if it.ID == "gone" {
			return Item{}, false, nil
		}
		return Item{Title: "New", Price: 250}, true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"gone"}, dropped)
	require.Len(t, items, 1)
	assert.Equal(t, "kept", items[0].ID)
	assert.Equal(t, 250, items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)
	assert.NotNil(t, items[0].AddedAt)

	stored, err := s.Items("c1")
	require.NoError(t, err)
	assert.Equal(t, items, stored)
}

func TestReconcile_ErrorLeavesCartUntouched(t *testing.T) {
	s, _ := newTestStore()
	_, err := s.Add("c1", Item{ID: "a", Price: 10})
	require.NoError(t, err)

	_, _, err = s.Reconcile("c1", func(Item) (Item, bool, error) {
		return Item{}, false, errors.New("catalog unavailable")
	})
	require.Error(t, err)

	stored, err := s.Items("c1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 10, stored[0].Price)
}

func TestClear(t *testing.T) {
	s, kv := newTestStore()
	_, err := s.Add("c1", Item{ID: "a", Price: 100})
	require.NoError(t, err)

	require.NoError(t, s.Clear("c1"))
	_, ok, err := kv.GetItem("cart:c1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCorruptCartIsEmpty(t *testing.T) {
	s, kv := newTestStore()
	require.NoError(t, kv.SetItem("cart:c1", "[{oops"))

	items, err := s.Items("c1")
	require.NoError(t, err)
	assert.Empty(t, items)
}
