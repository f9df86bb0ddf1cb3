package domain

// CropRecommendation is a static advisory record shown on the farmer
// monitoring dashboard.
type CropRecommendation struct {
	ID         int            `json:"id"`
	Name       string         `json:"name"`
	MatchScore int            `json:"match_score"`
	Weather    WeatherProfile `json:"weather"`
	Soil       SoilProfile    `json:"soil"`
	Market     MarketProfile  `json:"market"`
	Timeline   CropTimeline   `json:"timeline"`
	Risks      []string       `json:"risks"`
}

// WeatherProfile describes the conditions a crop grows best in.
type WeatherProfile struct {
	Temperature string `json:"temperature"`
	Rainfall    string `json:"rainfall"`
	Humidity    string `json:"humidity"`
}

// SoilProfile describes the soil a crop needs.
type SoilProfile struct {
	Type     string `json:"type"`
	PH       string `json:"ph"`
	Moisture string `json:"moisture"`
}

// MarketProfile summarizes demand and returns for a crop.
type MarketProfile struct {
	Demand   string `json:"demand"`
	ROI      string `json:"roi"`
	MinPrice string `json:"min_price"`
}

// CropTimeline gives the planting and harvest windows.
type CropTimeline struct {
	Planting   string `json:"planting"`
	Harvest    string `json:"harvest"`
	PeakSeason string `json:"peak_season"`
}

// PriceOutlook carries a year of historical monthly prices and a year
// of predicted ones for a single crop, plus the factors behind the
// prediction. Values are per-quintal market prices.
type PriceOutlook struct {
	Crop       string         `json:"crop"`
	Months     []string       `json:"months"`
	Historical []float64      `json:"historical"`
	Predicted  []float64      `json:"predicted"`
	Factors    []MarketFactor `json:"factors"`
}

// MarketFactor is one influence on a price prediction.
type MarketFactor struct {
	Impact      string  `json:"impact"`
	Factor      string  `json:"factor"`
	Probability float64 `json:"probability"`
}
