package cart

import "farmmarket/internal/domain"

// Default pricing rules: delivery is free above 1000, otherwise a flat
// 50 fee, and tax is 5% of the subtotal.
const (
	DefaultFreeDeliveryThreshold = 1000.0
	DefaultDeliveryFee           = 50.0
	DefaultTaxRate               = 0.05
)

// ProductLookup resolves a product id against the session catalog.
// *catalog.Store satisfies it.
type ProductLookup interface {
	FindByID(id int) (domain.Product, bool)
}

// Calculator derives the order summary for a cart. Summaries are
// recomputed on every call and never cached; the cart is the only
// source of truth.
type Calculator struct {
	freeDeliveryThreshold float64
	deliveryFee           float64
	taxRate               float64
}

// NewCalculator creates a calculator with explicit pricing rules.
func NewCalculator(freeDeliveryThreshold, deliveryFee, taxRate float64) *Calculator {
	return &Calculator{
		freeDeliveryThreshold: freeDeliveryThreshold,
		deliveryFee:           deliveryFee,
		taxRate:               taxRate,
	}
}

// NewDefaultCalculator creates a calculator with the marketplace rules.
func NewDefaultCalculator() *Calculator {
	return NewCalculator(DefaultFreeDeliveryThreshold, DefaultDeliveryFee, DefaultTaxRate)
}

// Summarize prices the given cart lines against the catalog. Lines
// whose product id does not resolve contribute zero to the subtotal;
// a lookup miss is never an error. An empty cart yields an all-zero
// summary, including the delivery fee.
func (c *Calculator) Summarize(items []domain.CartItem, lookup ProductLookup) domain.PricingSummary {
	if len(items) == 0 {
		return domain.PricingSummary{}
	}

	subtotal := 0.0
	for _, item := range items {
		product, ok := lookup.FindByID(item.ProductID)
		if !ok {
			continue
		}
		subtotal += product.Price * float64(item.Quantity)
	}

	fee := c.deliveryFee
	if subtotal > c.freeDeliveryThreshold {
		fee = 0
	}
	tax := subtotal * c.taxRate

	return domain.PricingSummary{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       subtotal + fee + tax,
	}
}
