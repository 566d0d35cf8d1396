package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walterflo/pizzeria-service/internal/domain/model"
)

func pizzaFromage() model.Item {
	return model.Item{
		ID:   "fromage",
		Name: "Fromage",
		Kind: model.KindSized,
		Prices: map[model.Size]model.Cents{
			model.SizeQuarter: 200,
			model.SizeHalf:    400,
			model.SizeFull:    800,
		},
	}
}

func specialtyChausson() model.Item {
	return model.Item{ID: "chausson", Name: "Chausson", Kind: model.KindFixed, Price: 490}
}

func studentMenu() model.Item {
	return model.Item{
		ID:       "menu-etudiant",
		Name:     "MENU ÉTUDIANT",
		Kind:     model.KindBundle,
		Price:    690,
		Includes: []string{"1/2 Pizza au choix", "1 Boisson (33cl)", "1 Dessert"},
	}
}

func TestCart_AddItem_MergesSameIdentity(t *testing.T) {
	// Scenario: same item and size added twice yields one line with quantity 2
	cart := NewCart()

	require.NoError(t, cart.AddItem(pizzaFromage(), model.SizeQuarter))
	require.NoError(t, cart.AddItem(pizzaFromage(), model.SizeQuarter))

	snapshot := cart.Snapshot()
	require.Len(t, snapshot.Lines, 1)
	assert.Equal(t, 2, snapshot.Lines[0].Quantity)
	assert.Equal(t, model.Cents(400), snapshot.Lines[0].Subtotal())
	assert.Equal(t, "4.00 €", snapshot.Lines[0].Subtotal().Format())
}

func TestCart_AddItem_DistinctSizesAreDistinctLines(t *testing.T) {
	cart := NewCart()

	require.NoError(t, cart.AddItem(pizzaFromage(), model.SizeQuarter))
	require.NoError(t, cart.AddItem(pizzaFromage(), model.SizeHalf))

	snapshot := cart.Snapshot()
	require.Len(t, snapshot.Lines, 2)
	assert.Equal(t, model.Cents(200), snapshot.Lines[0].UnitPrice)
	assert.Equal(t, model.Cents(400), snapshot.Lines[1].UnitPrice)
	assert.Equal(t, model.Cents(600), snapshot.Total())
	assert.Equal(t, "6.00 €", snapshot.Total().Format())
}

func TestCart_AddItem_UnsizedMergesPerID(t *testing.T) {
	cart := NewCart()

	require.NoError(t, cart.AddItem(specialtyChausson(), model.SizeNone))
	require.NoError(t, cart.AddItem(specialtyChausson(), model.SizeNone))
	require.NoError(t, cart.AddItem(studentMenu(), model.SizeNone))

	snapshot := cart.Snapshot()
	require.Len(t, snapshot.Lines, 2)
	assert.Equal(t, 2, snapshot.Lines[0].Quantity)
	assert.Equal(t, 1, snapshot.Lines[1].Quantity)
}

func TestCart_AddItem_QuantityEqualsAddCalls(t *testing.T) {
	cart := NewCart()
	for i := 0; i < 7; i++ {
		require.NoError(t, cart.AddItem(pizzaFromage(), model.SizeFull))
	}

	snapshot := cart.Snapshot()
	require.Len(t, snapshot.Lines, 1)
	assert.Equal(t, 7, snapshot.Lines[0].Quantity)
	assert.Equal(t, 7, cart.Count())
}

func TestCart_AddItem_SizeErrors(t *testing.T) {
	tests := []struct {
		name string
		item model.Item
		size model.Size
	}{
		{name: "sized item without size", item: pizzaFromage(), size: model.SizeNone},
		{name: "sized item with unknown size", item: pizzaFromage(), size: model.Size("xl")},
		{name: "fixed item with size", item: specialtyChausson(), size: model.SizeHalf},
		{name: "bundle with size", item: studentMenu(), size: model.SizeQuarter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart()
			err := cart.AddItem(tt.item, tt.size)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSize)
			assert.True(t, cart.Snapshot().Empty())
		})
	}
}

func TestCart_UpdateQuantity(t *testing.T) {
	key := model.LineKey{ItemID: "fromage", Size: model.SizeQuarter}

	t.Run("increments and decrements", func(t *testing.T) {
		cart := NewCart()
		require.NoError(t, cart.AddItem(pizzaFromage(), model.SizeQuarter))

		cart.UpdateQuantity(key, 2)
		assert.Equal(t, 3, cart.Count())

		cart.UpdateQuantity(key, -1)
		assert.Equal(t, 2, cart.Count())
	})

	t.Run("removes line at zero", func(t *testing.T) {
		cart := NewCart()
		require.NoError(t, cart.AddItem(pizzaFromage(), model.SizeQuarter))
		require.NoError(t, cart.AddItem(pizzaFromage(), model.SizeQuarter))

		cart.UpdateQuantity(key, -2)

		snapshot := cart.Snapshot()
		assert.True(t, snapshot.Empty())
		for _, line := range snapshot.Lines {
			assert.NotEqual(t, key, line.Key)
		}
	})

	t.Run("clamps below zero", func(t *testing.T) {
		cart := NewCart()
		require.NoError(t, cart.AddItem(pizzaFromage(), model.SizeQuarter))

		cart.UpdateQuantity(key, -10)

		assert.True(t, cart.Snapshot().Empty())
	})

	t.Run("unknown key is a no-op", func(t *testing.T) {
		cart := NewCart()
		require.NoError(t, cart.AddItem(pizzaFromage(), model.SizeQuarter))

		cart.UpdateQuantity(model.LineKey{ItemID: "calzone"}, 1)
		cart.UpdateQuantity(model.LineKey{ItemID: "fromage", Size: model.SizeHalf}, -1)

		snapshot := cart.Snapshot()
		require.Len(t, snapshot.Lines, 1)
		assert.Equal(t, 1, snapshot.Lines[0].Quantity)
	})

	t.Run("keeps other lines intact", func(t *testing.T) {
		cart := NewCart()
		require.NoError(t, cart.AddItem(pizzaFromage(), model.SizeQuarter))
		require.NoError(t, cart.AddItem(specialtyChausson(), model.SizeNone))

		cart.UpdateQuantity(key, -1)

		snapshot := cart.Snapshot()
		require.Len(t, snapshot.Lines, 1)
		assert.Equal(t, "chausson", snapshot.Lines[0].Key.ItemID)
	})
}

func TestCart_TotalInvariantUnderReordering(t *testing.T) {
	type add struct {
		item model.Item
		size model.Size
	}
	adds := []add{
		{pizzaFromage(), model.SizeQuarter},
		{pizzaFromage(), model.SizeQuarter},
		{pizzaFromage(), model.SizeHalf},
		{specialtyChausson(), model.SizeNone},
		{studentMenu(), model.SizeNone},
		{specialtyChausson(), model.SizeNone},
	}

	reference := NewCart()
	for _, a := range adds {
		require.NoError(t, reference.AddItem(a.item, a.size))
	}
	want := reference.Total()

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]add, len(adds))
		copy(shuffled, adds)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		cart := NewCart()
		for _, a := range shuffled {
			require.NoError(t, cart.AddItem(a.item, a.size))
		}
		assert.Equal(t, want, cart.Total())
		assert.Equal(t, reference.Count(), cart.Count())
	}
}

func TestCart_ExactDecimalTotals(t *testing.T) {
	// 100 additions of a 2.50 line must total exactly 250.00
	cart := NewCart()
	item := model.Item{
		ID:   "mozzarella",
		Name: "Mozzarella",
		Kind: model.KindSized,
		Prices: map[model.Size]model.Cents{
			model.SizeQuarter: 250,
			model.SizeHalf:    480,
			model.SizeFull:    950,
		},
	}
	for i := 0; i < 100; i++ {
		require.NoError(t, cart.AddItem(item, model.SizeQuarter))
	}

	assert.Equal(t, model.Cents(25000), cart.Total())
	assert.Equal(t, "250.00 €", cart.Total().Format())
}

func TestCart_SnapshotIsACopy(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem(pizzaFromage(), model.SizeQuarter))

	snapshot := cart.Snapshot()
	snapshot.Lines[0].Quantity = 99

	assert.Equal(t, 1, cart.Count())
}
