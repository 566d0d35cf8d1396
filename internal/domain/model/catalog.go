package model

import "fmt"

// Size identifies one of the pizza portion sizes.
type Size string

const (
	// SizeQuarter is a quarter pizza.
	SizeQuarter Size = "quarter"
	// SizeHalf is a half pizza.
	SizeHalf Size = "half"
	// SizeFull is a whole pizza.
	SizeFull Size = "full"
	// SizeNone marks items that are not sold by size.
	SizeNone Size = ""
)

// Valid reports whether s is one of the three sellable sizes.
func (s Size) Valid() bool {
	switch s {
	case SizeQuarter, SizeHalf, SizeFull:
		return true
	}
	return false
}

// Label returns the French display label used on menus and order messages.
func (s Size) Label() string {
	switch s {
	case SizeQuarter:
		return "1/4"
	case SizeHalf:
		return "1/2"
	case SizeFull:
		return "Entière"
	}
	return ""
}

// ItemKind discriminates the catalog item variants.
type ItemKind string

const (
	// KindSized is a pizza priced per size.
	KindSized ItemKind = "sized"
	// KindFixed is a specialty with a single price.
	KindFixed ItemKind = "fixed"
	// KindBundle is a fixed-price combo with described inclusions.
	KindBundle ItemKind = "bundle"
)

// Item is a single purchasable catalog entry.
//
// The three variants share one struct discriminated by Kind: sized items
// carry a Prices table, fixed and bundle items carry a flat Price, and
// bundles additionally list their Includes.
//
// @Description Catalog entry: a sized pizza, a fixed-price specialty, or a bundle
type Item struct {
	// ID uniquely identifies the item across the whole catalog
	ID string `json:"id" example:"fromage"`
	// Name is the display name shown on the menu and in order messages
	Name string `json:"name" example:"Fromage"`
	// Description is the menu description
	Description string `json:"description,omitempty"`
	// Kind is one of "sized", "fixed", "bundle"
	Kind ItemKind `json:"kind" example:"sized"`
	// Prices maps size to unit price in cents (sized items only)
	Prices map[Size]Cents `json:"prices,omitempty"`
	// Price is the flat unit price in cents (fixed and bundle items)
	Price Cents `json:"price,omitempty" example:"490"`
	// Includes lists the components of a bundle
	Includes []string `json:"includes,omitempty"`
	// CreamBase flags cream-based pizzas (display only)
	CreamBase bool `json:"cream_base,omitempty"`
}

// Sized reports whether the item is sold by size.
func (i Item) Sized() bool {
	return i.Kind == KindSized
}

// UnitPrice resolves the price captured on a cart line for the given size.
//
// Sized items require a valid size; any other kind requires SizeNone.
// Violations are programming errors on the caller's side and are rejected
// with an error rather than silently mispriced.
func (i Item) UnitPrice(size Size) (Cents, error) {
	if i.Sized() {
		if !size.Valid() {
			return 0, fmt.Errorf("item %q: invalid size %q", i.ID, size)
		}
		price, ok := i.Prices[size]
		if !ok {
			return 0, fmt.Errorf("item %q: no price for size %q", i.ID, size)
		}
		return price, nil
	}
	if size != SizeNone {
		return 0, fmt.Errorf("item %q: size %q given for unsized item", i.ID, size)
	}
	return i.Price, nil
}
