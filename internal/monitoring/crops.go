package monitoring

import (
	"errors"

	"farmmarket/internal/domain"
)

var ErrUnknownCrop = errors.New("unknown crop")

// Store serves the static advisory data behind the farmer monitoring
// dashboards. Read-only after construction.
type Store struct {
	recommendations []domain.CropRecommendation
	outlooks        map[string]domain.PriceOutlook
}

// NewStore creates a store seeded with the demo advisory data.
func NewStore() *Store {
	return &Store{
		recommendations: seedRecommendations(),
		outlooks:        seedOutlooks(),
	}
}

// Recommendations returns the crop recommendations in display order.
func (s *Store) Recommendations() []domain.CropRecommendation {
	out := make([]domain.CropRecommendation, len(s.recommendations))
	copy(out, s.recommendations)
	return out
}

// Outlook returns the price outlook for a crop.
func (s *Store) Outlook(crop string) (domain.PriceOutlook, error) {
	outlook, ok := s.outlooks[crop]
	if !ok {
		return domain.PriceOutlook{}, ErrUnknownCrop
	}
	return outlook, nil
}

// Crops returns the crops that have a price outlook.
func (s *Store) Crops() []string {
	out := make([]string, 0, len(s.outlooks))
	for _, crop := range []string{"wheat", "rice", "corn"} {
		if _, ok := s.outlooks[crop]; ok {
			out = append(out, crop)
		}
	}
	return out
}

func seedRecommendations() []domain.CropRecommendation {
	return []domain.CropRecommendation{
		{
			ID:         1,
			Name:       "Wheat",
			MatchScore: 92,
			Weather: domain.WeatherProfile{
				Temperature: "20-25°C",
				Rainfall:    "75-100cm",
				Humidity:    "50-60%",
			},
			Soil: domain.SoilProfile{
				Type:     "Loamy",
				PH:       "6.0-7.0",
				Moisture: "Medium",
			},
			Market: domain.MarketProfile{
				Demand:   "High",
				ROI:      "45%",
				MinPrice: "₹2000/quintal",
			},
			Timeline: domain.CropTimeline{
				Planting:   "Oct-Nov",
				Harvest:    "Mar-Apr",
				PeakSeason: "Dec-Feb",
			},
			Risks: []string{
				"Late monsoon impact",
				"Price fluctuation",
				"Pest susceptibility",
			},
		},
	}
}
