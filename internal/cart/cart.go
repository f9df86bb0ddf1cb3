package cart

import "farmmarket/internal/domain"

// Cart maintains a consumer's in-progress selection. Entries are keyed
// by unique product id; insertion order is preserved for display but
// carries no other meaning. Every operation is total: unknown ids and
// absent entries are handled, never rejected.
//
// Cart is not safe for concurrent use; the owning session serializes
// access.
type Cart struct {
	items []domain.CartItem
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add increments the quantity for productID, inserting a new entry at
// quantity 1 when the product is not yet in the cart. Product existence
// is validated only at pricing/render time, so unknown ids are fine.
func (c *Cart) Add(productID int) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, domain.CartItem{ProductID: productID, Quantity: 1})
}

// Remove drops the entry for productID. Removing an absent entry is a
// no-op, not an error.
func (c *Cart) Remove(productID int) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the quantity for productID to an absolute value.
// Quantities below 1 normalize to removal, so the cart never stores an
// entry with quantity < 1.
func (c *Cart) SetQuantity(productID, quantity int) {
	if quantity < 1 {
		c.Remove(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Items returns the cart lines in insertion order. The slice is a copy.
func (c *Cart) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}

// Count returns the total quantity across all lines, as shown on the
// header badge.
func (c *Cart) Count() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}
