package domain

// Product represents a catalog product offered by a farmer.
// Catalog products are created once at load and never mutated
// during a consumer session.
type Product struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Unit         string  `json:"unit"`
	Rating       float64 `json:"rating"`
	Farmer       string  `json:"farmer"`
	Location     string  `json:"location"`
	ImageURL     string  `json:"image_url"`
	Organic      bool    `json:"organic"`
	Stock        int     `json:"stock"`
	DeliveryTime string  `json:"delivery_time"`
	Discount     int     `json:"discount"`
	Category     string  `json:"category"`
}

// Category filter sentinels. CategoryAll matches every product and
// CategoryOrganic matches on the organic flag rather than the product's
// own category.
const (
	CategoryAll     = "All Products"
	CategoryOrganic = "Organic"
)

// LocationAll matches every product location.
const LocationAll = "All Locations"
