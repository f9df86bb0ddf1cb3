package transport

import (
	"errors"
	"net/http"
	"strconv"

	"farmmarket/internal/domain"
	"farmmarket/internal/listing"
	"farmmarket/internal/middleware"
	"farmmarket/internal/session"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SubmitListingRequest represents a farmer's product listing form.
// Image carries the encoded upload; size is checked against the
// configured cap before the listing is accepted.
type SubmitListingRequest struct {
	Name         string  `json:"name" validate:"required"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Unit         string  `json:"unit" validate:"required"`
	Stock        int     `json:"stock" validate:"gte=0"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	Organic      bool    `json:"organic"`
	DeliveryTime string  `json:"delivery_time"`
	HarvestDate  string  `json:"harvest_date"`
	Category     string  `json:"category" validate:"required"`
	Discount     int     `json:"discount" validate:"gte=0,lte=100"`
}

// ListingsResponse represents the farmer's board in submission order
type ListingsResponse struct {
	Products []domain.DraftProduct `json:"products"`
	Count    int                   `json:"count"`
}

// SalesHistoryResponse represents the static sales history panel
type SalesHistoryResponse struct {
	Sales []domain.SaleRecord `json:"sales"`
}

// ListingHandler handles product listing requests for farmer sessions
type ListingHandler struct {
	sessions *session.Manager
	logger   *zap.Logger
}

// NewListingHandler creates a new ListingHandler
func NewListingHandler(sessions *session.Manager, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{sessions: sessions, logger: logger}
}

// RegisterRoutes registers all listing routes
func (h *ListingHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/listings", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Post("/", h.Submit)
		r.Delete("/{index}", h.Delete)
		r.Get("/history", h.History)
	})
}

// Get returns the farmer's own listings
func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok, status, msg := sessionFromRequest(r, h.sessions)
	if !ok {
		middleware.RespondWithError(w, status, msg)
		return
	}

	var resp ListingsResponse
	sess.Do(func(state *session.State) {
		resp = ListingsResponse{
			Products: state.Board.Products(),
			Count:    state.Board.Len(),
		}
	})

	middleware.RespondWithJSON(w, http.StatusOK, resp)
}

// Submit validates the form and appends the listing to the board
func (h *ListingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess, ok, status, msg := sessionFromRequest(r, h.sessions)
	if !ok {
		middleware.RespondWithError(w, status, msg)
		return
	}

	var req SubmitListingRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Listing submit validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	draft := domain.DraftProduct{
		Name:         req.Name,
		Price:        req.Price,
		Unit:         req.Unit,
		Stock:        req.Stock,
		Description:  req.Description,
		Image:        req.Image,
		Organic:      req.Organic,
		DeliveryTime: req.DeliveryTime,
		HarvestDate:  req.HarvestDate,
		Category:     req.Category,
		Discount:     req.Discount,
	}

	var (
		resp  ListingsResponse
		opErr error
	)
	sess.Do(func(state *session.State) {
		if err := state.Board.Submit(draft); err != nil {
			opErr = err
			return
		}
		resp = ListingsResponse{
			Products: state.Board.Products(),
			Count:    state.Board.Len(),
		}
	})

	if opErr != nil {
		var validationErr *listing.ValidationError
		if errors.As(opErr, &validationErr) {
			middleware.RespondWithValidationErrors(w, []middleware.ValidationError{{
				Field:   validationErr.Field,
				Message: validationErr.Message,
			}})
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, opErr.Error())
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, resp)
}

// Delete removes the listing at the given position. The original board
// had no confirmation step, so out-of-range indexes succeed as no-ops.
func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok, status, msg := sessionFromRequest(r, h.sessions)
	if !ok {
		middleware.RespondWithError(w, status, msg)
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid listing index")
		return
	}

	var resp ListingsResponse
	sess.Do(func(state *session.State) {
		state.Board.Delete(index)
		resp = ListingsResponse{
			Products: state.Board.Products(),
			Count:    state.Board.Len(),
		}
	})

	middleware.RespondWithJSON(w, http.StatusOK, resp)
}

// History returns the static sales history panel
func (h *ListingHandler) History(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, SalesHistoryResponse{
		Sales: listing.SalesHistory(),
	})
}
