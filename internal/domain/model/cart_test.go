package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLine_Subtotal(t *testing.T) {
	line := Line{
		Key:       LineKey{ItemID: "fromage", Size: SizeQuarter},
		Name:      "Fromage",
		UnitPrice: 200,
		Quantity:  3,
	}
	assert.Equal(t, Cents(600), line.Subtotal())
}

func TestCart_Derived(t *testing.T) {
	cart := Cart{Lines: []Line{
		{Key: LineKey{ItemID: "fromage", Size: SizeQuarter}, UnitPrice: 200, Quantity: 2},
		{Key: LineKey{ItemID: "chausson"}, UnitPrice: 490, Quantity: 1},
	}}

	assert.False(t, cart.Empty())
	assert.Equal(t, Cents(890), cart.Total())
	assert.Equal(t, 3, cart.Count())
}

func TestCart_Empty(t *testing.T) {
	var cart Cart

	assert.True(t, cart.Empty())
	assert.Equal(t, Cents(0), cart.Total())
	assert.Equal(t, 0, cart.Count())
}
