package transport

import (
	"net/http"
	"strconv"

	"farmmarket/internal/catalog"
	"farmmarket/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogResponse represents a filtered catalog listing
type CatalogResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

// ProductResponse represents a product as returned to clients
type ProductResponse struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Unit         string  `json:"unit"`
	Rating       float64 `json:"rating"`
	Farmer       string  `json:"farmer"`
	Location     string  `json:"location"`
	ImageURL     string  `json:"image_url"`
	Organic      bool    `json:"organic"`
	Stock        int     `json:"stock"`
	DeliveryTime string  `json:"delivery_time"`
	Discount     int     `json:"discount"`
	Category     string  `json:"category"`
}

// FilterVocabularyResponse lists the supported filter values
type FilterVocabularyResponse struct {
	Categories []string `json:"categories"`
	Locations  []string `json:"locations"`
	SortKeys   []string `json:"sort_keys"`
}

// CatalogHandler serves the read-only product catalog
type CatalogHandler struct {
	store  *catalog.Store
	logger *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(store *catalog.Store, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{store: store, logger: logger}
}

// RegisterRoutes registers all catalog routes. The catalog is public;
// browsing requires no session.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/catalog", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/filters", h.Filters)
		r.Get("/{id}", h.GetByID)
	})
}

// List runs the filter/sort pipeline over the catalog. All criteria
// are optional query parameters; an empty result is a valid response.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	f := catalog.DefaultFilter()

	q := r.URL.Query()
	if v := q.Get("category"); v != "" {
		f.Category = v
	}
	if v := q.Get("location"); v != "" {
		f.Location = v
	}
	f.Search = q.Get("q")
	if v := q.Get("min_price"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceRange.Min = min
		}
	}
	if v := q.Get("max_price"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceRange.Max = max
		}
	}
	if v := q.Get("sort"); v != "" {
		f.SortBy = catalog.SortKey(v)
	}

	filtered := catalog.Apply(h.store.All(), f)

	products := make([]ProductResponse, 0, len(filtered))
	for _, p := range filtered {
		products = append(products, ProductResponse(p))
	}

	middleware.RespondWithJSON(w, http.StatusOK, CatalogResponse{
		Products: products,
		Total:    len(products),
	})
}

// GetByID returns a single product for the details view
func (h *CatalogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, ok := h.store.FindByID(id)
	if !ok {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ProductResponse(product))
}

// Filters returns the filter vocabularies for the browse UI
func (h *CatalogHandler) Filters(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, FilterVocabularyResponse{
		Categories: h.store.Categories(),
		Locations:  h.store.Locations(),
		SortKeys: []string{
			string(catalog.SortPopular),
			string(catalog.SortPriceLow),
			string(catalog.SortPriceHigh),
			string(catalog.SortRating),
		},
	})
}
