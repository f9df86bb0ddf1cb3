package monitoring

import "farmmarket/internal/domain"

var months = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

func seedOutlooks() map[string]domain.PriceOutlook {
	return map[string]domain.PriceOutlook{
		"wheat": {
			Crop:       "wheat",
			Months:     months,
			Historical: []float64{2200, 2300, 2400, 2350, 2450, 2500, 2600, 2550, 2650, 2700, 2800, 2750},
			Predicted:  []float64{2800, 2850, 2900, 2950, 3000, 3100, 3150, 3200, 3250, 3300, 3350, 3400},
			Factors: []domain.MarketFactor{
				{Impact: "positive", Factor: "International demand increase", Probability: 0.8},
				{Impact: "negative", Factor: "Expected surplus production", Probability: 0.6},
				{Impact: "positive", Factor: "Government MSP increase", Probability: 0.9},
			},
		},
	}
}
