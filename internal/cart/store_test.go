package cart

import (
	"math/rand"
	"testing"

	"github.com/everbuy/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id uint, price string) models.Product {
	return models.Product{ID: id, Name: "product", Price: models.MustMoney(price), Image: "/p.png"}
}

func sumLines(state State) decimal.Decimal {
	total := decimal.Zero
	for _, item := range state.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func TestStoreTotalMatchesLineSumForRandomAdds(t *testing.T) {
	catalog := models.CatalogProducts()
	rng := rand.New(rand.NewSource(42))
	store := NewStore()

	for i := 0; i < 200; i++ {
		state := store.AddItem(catalog[rng.Intn(len(catalog))])
		diff := state.Total.Sub(sumLines(state)).Abs()
		require.True(t, diff.LessThanOrEqual(decimal.RequireFromString("0.01")), "step %d total %s", i, state.Total)
	}
	assert.Equal(t, 200, store.State().ItemCount)
}

func TestStoreAddSameProductMergesLine(t *testing.T) {
	store := NewStore()
	p := testProduct(1, "199.99")

	state := store.AddItem(p)
	assert.Equal(t, "199.99", state.Total.String())

	state = store.AddItem(p)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, "399.98", state.Total.String())
	assert.Equal(t, "399.98", state.Items[0].LineTotal().String())
}

func TestStoreKeepsInsertionOrder(t *testing.T) {
	store := NewStore()
	store.AddItem(testProduct(3, "1.00"))
	store.AddItem(testProduct(1, "1.00"))
	store.AddItem(testProduct(2, "1.00"))
	store.AddItem(testProduct(3, "1.00"))

	state := store.State()
	ids := []uint{state.Items[0].ID, state.Items[1].ID, state.Items[2].ID}
	assert.Equal(t, []uint{3, 1, 2}, ids)
}

func TestStoreUpdateQuantityZeroRemoves(t *testing.T) {
	store := NewStore()
	store.AddItem(testProduct(1, "10.00"))
	store.AddItem(testProduct(2, "5.00"))

	state := store.UpdateQuantity(1, 0)
	require.Len(t, state.Items, 1)
	assert.Equal(t, uint(2), state.Items[0].ID)
	assert.Equal(t, "5.00", state.Total.String())

	state = store.UpdateQuantity(2, -3)
	assert.True(t, state.IsEmpty())
	assert.Equal(t, "0.00", state.Total.String())
}

func TestStoreUpdateQuantitySetsValue(t *testing.T) {
	store := NewStore()
	store.AddItem(testProduct(7, "129.99"))

	state := store.UpdateQuantity(7, 3)
	assert.Equal(t, 3, state.Items[0].Quantity)
	assert.Equal(t, "389.97", state.Total.String())
}

func TestStoreMissingIDIsNoop(t *testing.T) {
	store := NewStore()
	store.AddItem(testProduct(1, "10.00"))
	before := store.State()

	after := store.RemoveItem(42)
	assert.Equal(t, before, after)

	after = store.UpdateQuantity(42, 5)
	assert.Equal(t, before, after)
}

func TestStoreClear(t *testing.T) {
	store := NewStore()
	store.AddItems(testProduct(1, "10.00"), 3)

	state := store.Clear()
	assert.True(t, state.IsEmpty())
	assert.Equal(t, "0.00", state.Total.String())
	assert.Equal(t, 0, state.ItemCount)
}

func TestStoreAddItemsQuantity(t *testing.T) {
	store := NewStore()
	p := testProduct(2, "299.99")

	state := store.AddItems(p, 3)
	assert.Equal(t, 3, state.Items[0].Quantity)
	state = store.AddItems(p, 0)
	assert.Equal(t, 4, state.Items[0].Quantity)
}

func TestStoreAddItemsWithinLimit(t *testing.T) {
	store := NewStore()
	p := testProduct(1, "199.99")

	state, err := store.AddItemsWithin(p, 99, 99)
	require.NoError(t, err)
	assert.Equal(t, 99, state.Items[0].Quantity)
	version := state.Version

	state, err = store.AddItemsWithin(p, 1, 99)
	assert.ErrorIs(t, err, ErrLineLimitExceeded)
	assert.Equal(t, 99, state.Items[0].Quantity)
	assert.Equal(t, version, state.Version)

	_, err = store.AddItemsWithin(testProduct(2, "1.00"), 100, 99)
	assert.ErrorIs(t, err, ErrLineLimitExceeded)
	assert.Len(t, store.State().Items, 1)
}

func TestStoreSubscribersSeeEveryMutation(t *testing.T) {
	store := NewStore()
	var seen []uint64
	unsubscribe := store.Subscribe(func(s State) {
		seen = append(seen, s.Version)
	})

	store.AddItem(testProduct(1, "1.00"))
	store.RemoveItem(99)
	store.UpdateQuantity(1, 4)
	unsubscribe()
	store.Clear()

	assert.Equal(t, []uint64{1, 2}, seen)
	assert.Equal(t, uint64(3), store.State().Version)
}

func TestStoreSnapshotIsIsolated(t *testing.T) {
	store := NewStore()
	store.AddItem(testProduct(1, "1.00"))

	state := store.State()
	state.Items[0].Quantity = 99

	assert.Equal(t, 1, store.State().Items[0].Quantity)
}
