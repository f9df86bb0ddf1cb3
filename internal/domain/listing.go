package domain

import "time"

// DraftProduct is a farmer-entered product listing. Drafts live on the
// farmer's own board and are never merged into the consumer catalog.
type DraftProduct struct {
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	Unit         string    `json:"unit"`
	Stock        int       `json:"stock"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Organic      bool      `json:"organic"`
	DeliveryTime string    `json:"delivery_time"`
	HarvestDate  string    `json:"harvest_date"`
	Category     string    `json:"category"`
	Discount     int       `json:"discount"`
	CreatedAt    time.Time `json:"created_at"`
}

// SaleRecord is one row of the farmer's sales history panel.
type SaleRecord struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Quantity int       `json:"quantity"`
	Date     time.Time `json:"date"`
	Buyer    string    `json:"buyer"`
}
