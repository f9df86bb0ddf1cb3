package cart

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Feature: farmer-marketplace, Property 1: Adding a product increments or inserts
// Validates: Requirements 3.1, 3.2
func TestProperty_AddIncrementsOrInserts(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("repeated adds of one product yield a single entry with that quantity", prop.ForAll(
		func(productID int, times int) bool {
			c := New()

			for i := 0; i < times; i++ {
				c.Add(productID)
			}

			items := c.Items()
			if len(items) != 1 {
				t.Logf("FAIL: Expected 1 entry, got %d", len(items))
				return false
			}
			if items[0].ProductID != productID {
				t.Logf("FAIL: Entry has wrong product id %d", items[0].ProductID)
				return false
			}
			if items[0].Quantity != times {
				t.Logf("FAIL: Expected quantity %d, got %d", times, items[0].Quantity)
				return false
			}

			return c.Count() == times
		},
		gen.IntRange(1, 1000),
		gen.IntRange(1, 50),
	))

	properties.Property("distinct product ids produce distinct entries", prop.ForAll(
		func(productIDs []int) bool {
			c := New()

			seen := make(map[int]bool)
			for _, id := range productIDs {
				c.Add(id)
				seen[id] = true
			}

			if c.Len() != len(seen) {
				t.Logf("FAIL: Expected %d entries, got %d", len(seen), c.Len())
				return false
			}

			// No entry may ever hold a quantity below 1.
			for _, item := range c.Items() {
				if item.Quantity < 1 {
					t.Logf("FAIL: Entry %d has quantity %d", item.ProductID, item.Quantity)
					return false
				}
			}

			return c.Count() == len(productIDs)
		},
		gen.SliceOf(gen.IntRange(1, 20)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Feature: farmer-marketplace, Property 2: Quantities below one normalize to removal
// Validates: Requirements 3.3, 3.4
func TestProperty_QuantityBelowOneRemovesEntry(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("setting any quantity below 1 removes the entry entirely", prop.ForAll(
		func(productID int, quantity int) bool {
			c := New()
			c.Add(productID)

			c.SetQuantity(productID, quantity)

			if quantity < 1 {
				if c.Len() != 0 {
					t.Logf("FAIL: Entry survived quantity %d", quantity)
					return false
				}
				return true
			}

			items := c.Items()
			if len(items) != 1 || items[0].Quantity != quantity {
				t.Logf("FAIL: Expected single entry at quantity %d, got %+v", quantity, items)
				return false
			}
			return true
		},
		gen.IntRange(1, 1000),
		gen.IntRange(-10, 10),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestCart_RemoveAbsentIsNoOp(t *testing.T) {
	c := New()
	c.Add(1)
	c.Add(2)

	c.Remove(99)

	if c.Len() != 2 {
		t.Fatalf("expected 2 entries after removing absent id, got %d", c.Len())
	}

	c.Remove(1)
	items := c.Items()
	if len(items) != 1 || items[0].ProductID != 2 {
		t.Fatalf("expected only product 2 to remain, got %+v", items)
	}
}

func TestCart_SetQuantityForAbsentProductIsNoOp(t *testing.T) {
	c := New()

	c.SetQuantity(7, 3)

	if c.Len() != 0 {
		t.Fatalf("expected empty cart, got %d entries", c.Len())
	}
}

func TestCart_ItemsReturnsCopy(t *testing.T) {
	c := New()
	c.Add(1)

	items := c.Items()
	items[0].Quantity = 99

	if c.Items()[0].Quantity != 1 {
		t.Fatal("mutating the returned slice changed cart state")
	}
}
