// Package service contains the business logic for the pizzeria order service.
package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/walterflo/pizzeria-service/internal/domain/model"
)

// ErrInvalidSize is returned when an item is added with a size that does not
// fit its kind: a missing or unknown size on a pizza, or any size on a
// fixed-price item. This is a caller bug, rejected at the boundary.
var ErrInvalidSize = errors.New("invalid size for item")

// Cart is the mutable order under composition for one visitor session.
//
// All mutation goes through its methods; presentation code only issues
// commands and reads snapshots. The mutex exists because the HTTP server
// handles requests concurrently even though a single visitor's actions are
// sequential.
type Cart struct {
	mu    sync.Mutex
	lines []*model.Line
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddItem merges the item into the cart.
//
// If a line with the same (item, size) identity already exists its quantity
// is incremented, otherwise a new line is appended with quantity 1 and the
// unit price captured from the catalog entry. Repeated adds merge, they are
// never rejected.
func (c *Cart) AddItem(item model.Item, size model.Size) error {
	price, err := item.UnitPrice(size)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSize, err)
	}

	key := model.LineKey{ItemID: item.ID}
	if item.Sized() {
		key.Size = size
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if line := c.find(key); line != nil {
		line.Quantity++
		return nil
	}

	c.lines = append(c.lines, &model.Line{
		Key:       key,
		Name:      item.Name,
		UnitPrice: price,
		Quantity:  1,
	})
	return nil
}

// UpdateQuantity adjusts a line's quantity by delta, clamped at zero.
//
// The line is deleted the instant its quantity reaches zero; a zero-quantity
// line never survives. An unknown key is a silent no-op.
func (c *Cart) UpdateQuantity(key model.LineKey, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, line := range c.lines {
		if line.Key != key {
			continue
		}
		quantity := line.Quantity + delta
		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
		line.Quantity = quantity
		return
	}
}

// Total returns the exact sum of unit price times quantity over all lines.
func (c *Cart) Total() model.Cents {
	return c.Snapshot().Total()
}

// Count returns the sum of quantities, used for the cart badge.
func (c *Cart) Count() int {
	return c.Snapshot().Count()
}

// Snapshot returns an immutable copy of the cart in insertion order.
func (c *Cart) Snapshot() model.Cart {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]model.Line, len(c.lines))
	for i, line := range c.lines {
		lines[i] = *line
	}
	return model.Cart{Lines: lines}
}

// find returns the line with the given key, or nil. Caller holds the lock.
func (c *Cart) find(key model.LineKey) *model.Line {
	for _, line := range c.lines {
		if line.Key == key {
			return line
		}
	}
	return nil
}
