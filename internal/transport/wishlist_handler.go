package transport

import (
	"net/http"

	"farmmarket/internal/catalog"
	"farmmarket/internal/middleware"
	"farmmarket/internal/session"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ToggleWishlistRequest represents the wishlist toggle payload
type ToggleWishlistRequest struct {
	ProductID int `json:"product_id" validate:"required"`
}

// WishlistResponse represents the wishlist view. Ids whose product no
// longer resolves stay in the set but are skipped in the product list.
type WishlistResponse struct {
	ProductIDs []int             `json:"product_ids"`
	Products   []ProductResponse `json:"products"`
	Count      int               `json:"count"`
}

// ToggleWishlistResponse reports the membership state after a toggle
type ToggleWishlistResponse struct {
	ProductID  int  `json:"product_id"`
	Wishlisted bool `json:"wishlisted"`
	Count      int  `json:"count"`
}

// WishlistHandler handles wishlist requests for consumer sessions
type WishlistHandler struct {
	sessions *session.Manager
	store    *catalog.Store
	logger   *zap.Logger
}

// NewWishlistHandler creates a new WishlistHandler
func NewWishlistHandler(sessions *session.Manager, store *catalog.Store, logger *zap.Logger) *WishlistHandler {
	return &WishlistHandler{sessions: sessions, store: store, logger: logger}
}

// RegisterRoutes registers all wishlist routes
func (h *WishlistHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/wishlist", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Post("/toggle", h.Toggle)
	})
}

// Get returns the wishlist in insertion order
func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok, status, msg := sessionFromRequest(r, h.sessions)
	if !ok {
		middleware.RespondWithError(w, status, msg)
		return
	}

	var resp WishlistResponse
	sess.Do(func(state *session.State) {
		ids := state.Wishlist.IDs()
		products := make([]ProductResponse, 0, len(ids))
		for _, id := range ids {
			if product, found := h.store.FindByID(id); found {
				products = append(products, ProductResponse(product))
			}
		}
		resp = WishlistResponse{
			ProductIDs: ids,
			Products:   products,
			Count:      state.Wishlist.Len(),
		}
	})

	middleware.RespondWithJSON(w, http.StatusOK, resp)
}

// Toggle flips membership for a product
func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	sess, ok, status, msg := sessionFromRequest(r, h.sessions)
	if !ok {
		middleware.RespondWithError(w, status, msg)
		return
	}

	var req ToggleWishlistRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Wishlist toggle validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var resp ToggleWishlistResponse
	sess.Do(func(state *session.State) {
		wishlisted := state.Wishlist.Toggle(req.ProductID)
		resp = ToggleWishlistResponse{
			ProductID:  req.ProductID,
			Wishlisted: wishlisted,
			Count:      state.Wishlist.Len(),
		}
	})

	middleware.RespondWithJSON(w, http.StatusOK, resp)
}
