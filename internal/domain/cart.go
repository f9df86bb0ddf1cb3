package domain

// CartItem is one line of a consumer's cart. ProductID is not enforced
// referentially; products are resolved against the catalog at pricing
// time and misses contribute nothing. Quantity is always >= 1; an item
// whose quantity would drop below 1 is removed instead.
type CartItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// PricingSummary is the derived cost breakdown for a cart. It is
// recomputed on every read and never stored alongside the cart.
type PricingSummary struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}
