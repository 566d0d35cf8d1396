package model

// LineKey identifies a cart line: the catalog item plus the chosen size.
// A sized item added at two different sizes yields two distinct lines;
// unsized items have Size == SizeNone and merge per item ID.
type LineKey struct {
	ItemID string `json:"item_id"`
	Size   Size   `json:"size,omitempty"`
}

// Line is one row of an order.
//
// UnitPrice is captured when the line is created and never changes
// afterward, even if the catalog were to change underneath.
//
// @Description One cart row: item, optional size, captured unit price, quantity
type Line struct {
	// Key identifies the line within its cart
	Key LineKey `json:"key"`
	// Name is the display name captured at add time
	Name string `json:"name" example:"Fromage"`
	// UnitPrice is the per-unit price in cents captured at add time
	UnitPrice Cents `json:"unit_price" example:"200"`
	// Quantity is always >= 1 while the line exists
	Quantity int `json:"quantity" example:"2"`
}

// Subtotal returns unit price times quantity.
func (l Line) Subtotal() Cents {
	return l.UnitPrice.Mul(l.Quantity)
}

// Cart is an immutable snapshot of a visitor's order, in insertion order.
// Mutation happens only through the cart engine; presentation code reads
// snapshots and derived totals.
type Cart struct {
	// Lines in insertion order
	Lines []Line `json:"lines"`
}

// Empty reports whether the cart holds no lines.
func (c Cart) Empty() bool {
	return len(c.Lines) == 0
}

// Total returns the exact sum of line subtotals in cents.
func (c Cart) Total() Cents {
	var total Cents
	for _, l := range c.Lines {
		total += l.Subtotal()
	}
	return total
}

// Count returns the sum of line quantities, used for the cart badge.
func (c Cart) Count() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

// PickupOrder is the ephemeral value handed to the order formatter at send
// time. It is never persisted.
type PickupOrder struct {
	Cart       Cart
	PickupTime string
}
