package transport

import (
	"net/http"
	"strconv"

	"farmmarket/internal/cart"
	"farmmarket/internal/catalog"
	"farmmarket/internal/domain"
	"farmmarket/internal/middleware"
	"farmmarket/internal/session"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddToCartRequest represents the add-to-cart payload
type AddToCartRequest struct {
	ProductID int `json:"product_id" validate:"required"`
}

// UpdateQuantityRequest represents the absolute quantity update payload.
// Quantities below 1 are accepted and normalize to removal.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse is one cart line joined with its catalog product.
// Lines whose product no longer resolves are skipped in responses but
// kept in the cart.
type CartLineResponse struct {
	Product   ProductResponse `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal float64         `json:"line_total"`
}

// CartResponse represents the full cart view
type CartResponse struct {
	Items   []CartLineResponse    `json:"items"`
	Count   int                   `json:"count"`
	Empty   bool                  `json:"empty"`
	Summary domain.PricingSummary `json:"summary"`
}

// CartHandler handles cart and pricing requests for consumer sessions
type CartHandler struct {
	sessions   *session.Manager
	store      *catalog.Store
	calculator *cart.Calculator
	logger     *zap.Logger
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(sessions *session.Manager, store *catalog.Store, calculator *cart.Calculator, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		sessions:   sessions,
		store:      store,
		calculator: calculator,
		logger:     logger,
	}
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Get("/summary", h.Summary)
		r.Post("/items", h.Add)
		r.Put("/items/{productID}", h.UpdateQuantity)
		r.Delete("/items/{productID}", h.Remove)
	})
}

// Get returns the cart lines with a freshly computed summary
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok, status, msg := sessionFromRequest(r, h.sessions)
	if !ok {
		middleware.RespondWithError(w, status, msg)
		return
	}

	var resp CartResponse
	sess.Do(func(state *session.State) {
		resp = h.cartResponse(state)
	})

	middleware.RespondWithJSON(w, http.StatusOK, resp)
}

// Summary returns only the derived pricing breakdown
func (h *CartHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sess, ok, status, msg := sessionFromRequest(r, h.sessions)
	if !ok {
		middleware.RespondWithError(w, status, msg)
		return
	}

	var summary domain.PricingSummary
	sess.Do(func(state *session.State) {
		summary = h.calculator.Summarize(state.Cart.Items(), h.store)
	})

	middleware.RespondWithJSON(w, http.StatusOK, summary)
}

// Add increments the quantity for a product, inserting it at quantity 1
// when absent. Unknown product ids are accepted; they price at zero.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	sess, ok, status, msg := sessionFromRequest(r, h.sessions)
	if !ok {
		middleware.RespondWithError(w, status, msg)
		return
	}

	var req AddToCartRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Add to cart validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var resp CartResponse
	sess.Do(func(state *session.State) {
		state.Cart.Add(req.ProductID)
		resp = h.cartResponse(state)
	})

	middleware.RespondWithJSON(w, http.StatusOK, resp)
}

// UpdateQuantity sets a line's quantity to an absolute value
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sess, ok, status, msg := sessionFromRequest(r, h.sessions)
	if !ok {
		middleware.RespondWithError(w, status, msg)
		return
	}

	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req UpdateQuantityRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var resp CartResponse
	sess.Do(func(state *session.State) {
		state.Cart.SetQuantity(productID, req.Quantity)
		resp = h.cartResponse(state)
	})

	middleware.RespondWithJSON(w, http.StatusOK, resp)
}

// Remove drops a line from the cart; removing an absent line succeeds
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	sess, ok, status, msg := sessionFromRequest(r, h.sessions)
	if !ok {
		middleware.RespondWithError(w, status, msg)
		return
	}

	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var resp CartResponse
	sess.Do(func(state *session.State) {
		state.Cart.Remove(productID)
		resp = h.cartResponse(state)
	})

	middleware.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *CartHandler) cartResponse(state *session.State) CartResponse {
	items := state.Cart.Items()

	lines := make([]CartLineResponse, 0, len(items))
	for _, item := range items {
		product, ok := h.store.FindByID(item.ProductID)
		if !ok {
			continue
		}
		lines = append(lines, CartLineResponse{
			Product:   ProductResponse(product),
			Quantity:  item.Quantity,
			LineTotal: product.Price * float64(item.Quantity),
		})
	}

	return CartResponse{
		Items:   lines,
		Count:   state.Cart.Count(),
		Empty:   state.Cart.Len() == 0,
		Summary: h.calculator.Summarize(items, h.store),
	}
}
