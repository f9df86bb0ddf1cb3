package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"farmmarket/internal/domain"
	"farmmarket/internal/middleware"
	"farmmarket/internal/session"
	"farmmarket/internal/survey"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AnswerRequest represents one answer submission. Value is decoded
// against the question's type: a string for select, a string or number
// for number, a string list for multiselect.
type AnswerRequest struct {
	QuestionID int             `json:"question_id" validate:"required"`
	Value      json.RawMessage `json:"value" validate:"required"`
}

// SurveyStateResponse represents the questionnaire state after any
// operation. CanAdvance is re-derived from answer state on every
// render, never cached.
type SurveyStateResponse struct {
	Step            int                      `json:"step"`
	TotalSteps      int                      `json:"total_steps"`
	CurrentQuestion *domain.Question         `json:"current_question,omitempty"`
	Answers         map[string]domain.Answer `json:"answers"`
	CanAdvance      bool                     `json:"can_advance"`
	Submitted       bool                     `json:"submitted"`
	Result          *domain.SurveyResult     `json:"result,omitempty"`
}

// SurveyHandler handles prediction survey requests for farmer sessions
type SurveyHandler struct {
	sessions *session.Manager
	logger   *zap.Logger
}

// NewSurveyHandler creates a new SurveyHandler
func NewSurveyHandler(sessions *session.Manager, logger *zap.Logger) *SurveyHandler {
	return &SurveyHandler{sessions: sessions, logger: logger}
}

// RegisterRoutes registers all survey routes
func (h *SurveyHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/survey", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Post("/answers", h.Answer)
		r.Post("/next", h.Next)
		r.Post("/previous", h.Previous)
	})
}

// Get returns the current questionnaire state
func (h *SurveyHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok, status, msg := sessionFromRequest(r, h.sessions)
	if !ok {
		middleware.RespondWithError(w, status, msg)
		return
	}

	var resp SurveyStateResponse
	sess.Do(func(state *session.State) {
		resp = surveyState(state.Survey)
	})

	middleware.RespondWithJSON(w, http.StatusOK, resp)
}

// Answer records or overwrites the answer for a question
func (h *SurveyHandler) Answer(w http.ResponseWriter, r *http.Request) {
	sess, ok, status, msg := sessionFromRequest(r, h.sessions)
	if !ok {
		middleware.RespondWithError(w, status, msg)
		return
	}

	var req AnswerRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Answer validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var (
		resp  SurveyStateResponse
		opErr error
	)
	sess.Do(func(state *session.State) {
		question, found := findQuestion(state.Survey, req.QuestionID)
		if !found {
			opErr = survey.ErrUnknownQuestion
			return
		}

		answer, err := decodeAnswer(question.Type, req.Value)
		if err != nil {
			opErr = err
			return
		}

		if err := state.Survey.Answer(req.QuestionID, answer); err != nil {
			opErr = err
			return
		}
		resp = surveyState(state.Survey)
	})

	if opErr != nil {
		h.respondSurveyError(w, opErr)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, resp)
}

// Next advances a step, or submits at the last one. The transition is
// rejected while the current step is unanswered.
func (h *SurveyHandler) Next(w http.ResponseWriter, r *http.Request) {
	sess, ok, status, msg := sessionFromRequest(r, h.sessions)
	if !ok {
		middleware.RespondWithError(w, status, msg)
		return
	}

	var (
		resp  SurveyStateResponse
		opErr error
	)
	sess.Do(func(state *session.State) {
		if err := state.Survey.Next(); err != nil {
			opErr = err
			return
		}
		resp = surveyState(state.Survey)
	})

	if opErr != nil {
		h.respondSurveyError(w, opErr)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, resp)
}

// Previous steps back one question; at step 0 it is a no-op
func (h *SurveyHandler) Previous(w http.ResponseWriter, r *http.Request) {
	sess, ok, status, msg := sessionFromRequest(r, h.sessions)
	if !ok {
		middleware.RespondWithError(w, status, msg)
		return
	}

	var resp SurveyStateResponse
	sess.Do(func(state *session.State) {
		state.Survey.Previous()
		resp = surveyState(state.Survey)
	})

	middleware.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *SurveyHandler) respondSurveyError(w http.ResponseWriter, err error) {
	switch err {
	case survey.ErrUnknownQuestion:
		middleware.RespondWithError(w, http.StatusNotFound, "unknown question")
	case survey.ErrAnswerTypeFit:
		middleware.RespondWithError(w, http.StatusBadRequest, "answer does not match question type")
	case survey.ErrStepNotAnswered:
		middleware.RespondWithError(w, http.StatusConflict, "current step is not answered")
	case survey.ErrAlreadySubmitted:
		middleware.RespondWithError(w, http.StatusConflict, "survey already submitted")
	default:
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
	}
}

func surveyState(s *survey.Survey) SurveyStateResponse {
	answers := make(map[string]domain.Answer)
	for id, answer := range s.Answers() {
		answers[strconv.Itoa(id)] = answer
	}

	resp := SurveyStateResponse{
		Step:       s.Step(),
		TotalSteps: len(s.Questions()),
		Answers:    answers,
		CanAdvance: s.CanAdvance(),
		Submitted:  s.Submitted(),
	}

	if result, done := s.Result(); done {
		resp.Result = &result
	} else {
		question := s.CurrentQuestion()
		resp.CurrentQuestion = &question
	}

	return resp
}

func findQuestion(s *survey.Survey, id int) (domain.Question, bool) {
	for _, q := range s.Questions() {
		if q.ID == id {
			return q, true
		}
	}
	return domain.Question{}, false
}

// decodeAnswer maps raw JSON onto the answer variant for the question
// type. Numeric answers accept either a JSON string or a JSON number,
// since the original form stored the input as entered.
func decodeAnswer(t domain.QuestionType, raw json.RawMessage) (domain.Answer, error) {
	switch t {
	case domain.QuestionSelect:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, survey.ErrAnswerTypeFit
		}
		return domain.SingleChoice(s), nil
	case domain.QuestionNumber:
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return domain.NumericText(s), nil
		}
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, survey.ErrAnswerTypeFit
		}
		return domain.NumericText(strconv.FormatFloat(n, 'f', -1, 64)), nil
	case domain.QuestionMultiSelect:
		var list []string
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, survey.ErrAnswerTypeFit
		}
		return domain.MultiChoice(list), nil
	default:
		return nil, survey.ErrAnswerTypeFit
	}
}
