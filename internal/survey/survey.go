package survey

import (
	"errors"
	"math"
	"strconv"

	"farmmarket/internal/domain"
)

var (
	ErrUnknownQuestion  = errors.New("unknown question")
	ErrAnswerTypeFit    = errors.New("answer does not match question type")
	ErrStepNotAnswered  = errors.New("current step is not answered")
	ErrAlreadySubmitted = errors.New("survey already submitted")
)

// Yield multiplier and per-practice score used when deriving the result.
const (
	yieldFactor       = 1.2
	pointsPerPractice = 20
	maxSustainability = 100
)

// Survey is a linear multi-step questionnaire. Forward navigation is
// gated on the current step having a non-empty answer; the last step's
// forward transition submits instead of advancing. Submitted is
// terminal; a fresh survey requires a new session.
//
// Survey is not safe for concurrent use; the owning session serializes
// access.
type Survey struct {
	questions []domain.Question
	answers   map[int]domain.Answer
	step      int
	submitted bool
	result    domain.SurveyResult
}

// New creates a survey over the given questions, positioned at step 0.
func New(questions []domain.Question) *Survey {
	return &Survey{
		questions: questions,
		answers:   make(map[int]domain.Answer),
	}
}

// NewDefault creates a survey over the standard five questions.
func NewDefault() *Survey {
	return New(DefaultQuestions())
}

// Step returns the zero-based current step index.
func (s *Survey) Step() int {
	return s.step
}

// Submitted reports whether the survey reached its terminal state.
func (s *Survey) Submitted() bool {
	return s.submitted
}

// Questions returns the questionnaire in step order.
func (s *Survey) Questions() []domain.Question {
	out := make([]domain.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// CurrentQuestion returns the question for the current step.
func (s *Survey) CurrentQuestion() domain.Question {
	return s.questions[s.step]
}

// Answers returns the recorded answers keyed by question id.
func (s *Survey) Answers() map[int]domain.Answer {
	out := make(map[int]domain.Answer, len(s.answers))
	for id, a := range s.answers {
		out[id] = a
	}
	return out
}

// Answer records or overwrites the answer for a question. Answers may
// be changed at any step while the survey is still open; the variant
// must match the question's type.
func (s *Survey) Answer(questionID int, answer domain.Answer) error {
	if s.submitted {
		return ErrAlreadySubmitted
	}
	q, ok := s.question(questionID)
	if !ok {
		return ErrUnknownQuestion
	}
	if !answer.Matches(q.Type) {
		return ErrAnswerTypeFit
	}
	s.answers[questionID] = answer
	return nil
}

// CanAdvance reports whether the current step's answer unlocks the
// next/submit transition. It is evaluated from current answer state on
// every call, not cached.
func (s *Survey) CanAdvance() bool {
	if s.submitted {
		return false
	}
	answer, ok := s.answers[s.questions[s.step].ID]
	return ok && answer.Answered()
}

// Previous steps back one question. At step 0 it is a no-op, matching
// the disabled back button.
func (s *Survey) Previous() {
	if s.submitted || s.step == 0 {
		return
	}
	s.step--
}

// Next advances to the following step, or submits when the current
// step is the last one. It fails when the current step is unanswered;
// an empty multiselect counts as unanswered.
func (s *Survey) Next() error {
	if s.submitted {
		return ErrAlreadySubmitted
	}
	if !s.CanAdvance() {
		return ErrStepNotAnswered
	}
	if s.step == len(s.questions)-1 {
		s.submitted = true
		s.result = s.deriveResult()
		return nil
	}
	s.step++
	return nil
}

// Result returns the derived prediction. The second return is false
// until the survey has been submitted.
func (s *Survey) Result() (domain.SurveyResult, bool) {
	return s.result, s.submitted
}

// deriveResult computes the prediction from the recorded answers:
// predicted yield is the numeric yield answer scaled by 1.2 and
// rounded, sustainability is 20 points per selected practice, clamped
// to [0, 100].
func (s *Survey) deriveResult() domain.SurveyResult {
	var result domain.SurveyResult

	if answer, ok := s.answers[yieldQuestionID].(domain.NumericText); ok {
		if value, err := strconv.ParseFloat(string(answer), 64); err == nil {
			result.PredictedYield = int(math.Round(value * yieldFactor))
		}
	}

	if answer, ok := s.answers[practicesQuestionID].(domain.MultiChoice); ok {
		score := len(answer) * pointsPerPractice
		if score > maxSustainability {
			score = maxSustainability
		}
		result.SustainabilityScore = score
	}

	return result
}

func (s *Survey) question(id int) (domain.Question, bool) {
	for _, q := range s.questions {
		if q.ID == id {
			return q, true
		}
	}
	return domain.Question{}, false
}
