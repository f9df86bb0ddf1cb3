package survey

import "farmmarket/internal/domain"

// Question ids whose answers feed the derived result.
const (
	yieldQuestionID     = 4
	practicesQuestionID = 5
)

// DefaultQuestions returns the five-step crop prediction questionnaire.
func DefaultQuestions() []domain.Question {
	return []domain.Question{
		{
			ID:      1,
			Text:    "What are your primary crops this year?",
			Type:    domain.QuestionMultiSelect,
			Options: []string{"Wheat", "Rice", "Corn", "Soybeans", "Cotton", "Sugarcane"},
		},
		{
			ID:   2,
			Text: "What is your total cultivated area (in acres)?",
			Type: domain.QuestionNumber,
		},
		{
			ID:      3,
			Text:    "What irrigation method are you primarily using?",
			Type:    domain.QuestionSelect,
			Options: []string{"Drip Irrigation", "Sprinkler", "Flood Irrigation", "Rainwater Only"},
		},
		{
			ID:   4,
			Text: "What is your expected yield per acre this season?",
			Type: domain.QuestionNumber,
		},
		{
			ID:      5,
			Text:    "Which farming practices are you implementing?",
			Type:    domain.QuestionMultiSelect,
			Options: []string{"Organic Farming", "Crop Rotation", "Mulching", "Integrated Pest Management", "Conservation Tillage"},
		},
	}
}
