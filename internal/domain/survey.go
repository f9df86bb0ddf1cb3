package domain

import "encoding/json"

// QuestionType selects which Answer variant a question accepts.
type QuestionType string

const (
	QuestionSelect      QuestionType = "select"
	QuestionNumber      QuestionType = "number"
	QuestionMultiSelect QuestionType = "multiselect"
)

// Question is one step of the prediction survey.
type Question struct {
	ID      int          `json:"id"`
	Text    string       `json:"text"`
	Type    QuestionType `json:"type"`
	Options []string     `json:"options,omitempty"`
}

// Answer is a tagged union over the three question types. Each variant
// knows whether it counts as answered, so step gating is a typed check
// rather than a truthiness one.
type Answer interface {
	// Answered reports whether the answer unlocks forward navigation.
	// An empty multi-choice selection does not.
	Answered() bool
	// Matches reports whether this variant is legal for the question type.
	Matches(t QuestionType) bool
}

// SingleChoice answers a select question with one option.
type SingleChoice string

func (a SingleChoice) Answered() bool { return a != "" }

func (a SingleChoice) Matches(t QuestionType) bool { return t == QuestionSelect }

// NumericText answers a number question. The value is kept as entered;
// it is parsed only when the survey result is derived.
type NumericText string

func (a NumericText) Answered() bool { return a != "" }

func (a NumericText) Matches(t QuestionType) bool { return t == QuestionNumber }

// MultiChoice answers a multiselect question with zero or more options.
type MultiChoice []string

func (a MultiChoice) Answered() bool { return len(a) > 0 }

func (a MultiChoice) Matches(t QuestionType) bool { return t == QuestionMultiSelect }

// MarshalJSON emits the underlying value so API responses mirror the
// shapes clients submitted.
func (a SingleChoice) MarshalJSON() ([]byte, error) { return json.Marshal(string(a)) }
func (a NumericText) MarshalJSON() ([]byte, error)  { return json.Marshal(string(a)) }
func (a MultiChoice) MarshalJSON() ([]byte, error)  { return json.Marshal([]string(a)) }

// SurveyResult is derived exactly once, when the survey reaches its
// terminal submitted state.
type SurveyResult struct {
	PredictedYield      int `json:"predicted_yield"`
	SustainabilityScore int `json:"sustainability_score"`
}
