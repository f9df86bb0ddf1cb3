package listing

import (
	"time"

	"farmmarket/internal/domain"
)

// SalesHistory returns the static recent-sales records shown on the
// farmer dashboard.
func SalesHistory() []domain.SaleRecord {
	return []domain.SaleRecord{
		{
			ID:       1,
			Name:     "Organic Wheat",
			Price:    40,
			Quantity: 500,
			Date:     time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			Buyer:    "Rahul Traders",
		},
		{
			ID:       2,
			Name:     "Fresh Tomatoes",
			Price:    35,
			Quantity: 200,
			Date:     time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC),
			Buyer:    "Fresh Mart",
		},
		{
			ID:       3,
			Name:     "Basmati Rice",
			Price:    85,
			Quantity: 300,
			Date:     time.Date(2024, time.February, 25, 0, 0, 0, 0, time.UTC),
			Buyer:    "Global Foods",
		},
	}
}
