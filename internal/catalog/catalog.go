// Package catalog holds the static menu data and read-only lookup over it.
//
// The catalog is validated once at startup and immutable for the process
// lifetime; the cart engine resolves items and prices through it but never
// writes to it.
package catalog

import (
	"fmt"

	"github.com/walterflo/pizzeria-service/internal/domain/model"
)

// StudentMenuID is the catalog ID of the student menu bundle. The order
// formatter matches on it when deciding whether a clarification note is
// needed.
const StudentMenuID = "menu-etudiant"

// Catalog provides read-only access to the menu.
type Catalog struct {
	items []model.Item
	byID  map[string]model.Item
}

// New builds a Catalog from the given items after validating them.
func New(items []model.Item) (*Catalog, error) {
	if err := Validate(items); err != nil {
		return nil, err
	}

	byID := make(map[string]model.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	return &Catalog{items: items, byID: byID}, nil
}

// Validate checks the catalog invariants: non-empty unique IDs, non-negative
// prices, a complete price table on sized items, and inclusions on bundles.
func Validate(items []model.Item) error {
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.ID == "" {
			return fmt.Errorf("catalog: item %q has empty id", item.Name)
		}
		if seen[item.ID] {
			return fmt.Errorf("catalog: duplicate item id %q", item.ID)
		}
		seen[item.ID] = true

		switch item.Kind {
		case model.KindSized:
			for _, size := range []model.Size{model.SizeQuarter, model.SizeHalf, model.SizeFull} {
				price, ok := item.Prices[size]
				if !ok {
					return fmt.Errorf("catalog: item %q missing price for size %q", item.ID, size)
				}
				if price < 0 {
					return fmt.Errorf("catalog: item %q has negative price for size %q", item.ID, size)
				}
			}
		case model.KindFixed:
			if item.Price < 0 {
				return fmt.Errorf("catalog: item %q has negative price", item.ID)
			}
		case model.KindBundle:
			if item.Price < 0 {
				return fmt.Errorf("catalog: item %q has negative price", item.ID)
			}
			if len(item.Includes) == 0 {
				return fmt.Errorf("catalog: bundle %q has no inclusions", item.ID)
			}
		default:
			return fmt.Errorf("catalog: item %q has unknown kind %q", item.ID, item.Kind)
		}
	}
	return nil
}

// Find returns the item with the given ID.
func (c *Catalog) Find(id string) (model.Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Items returns all catalog entries in menu order.
func (c *Catalog) Items() []model.Item {
	out := make([]model.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Pizzas returns the sized entries in menu order.
func (c *Catalog) Pizzas() []model.Item {
	return c.byKind(model.KindSized)
}

// Specialties returns the fixed-price entries in menu order.
func (c *Catalog) Specialties() []model.Item {
	return c.byKind(model.KindFixed)
}

// Menus returns the bundle entries in menu order.
func (c *Catalog) Menus() []model.Item {
	return c.byKind(model.KindBundle)
}

func (c *Catalog) byKind(kind model.ItemKind) []model.Item {
	var out []model.Item
	for _, item := range c.items {
		if item.Kind == kind {
			out = append(out, item)
		}
	}
	return out
}
