package catalog

import "farmmarket/internal/domain"

// Store holds the fixed list of purchasable products for a session.
// It is read-only after construction, so lookups need no locking.
type Store struct {
	products []domain.Product
	byID     map[int]int
}

// NewStore creates a store over the given products. Catalog order is
// preserved; it is the tie-break order for every sort key.
func NewStore(products []domain.Product) *Store {
	byID := make(map[int]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &Store{products: products, byID: byID}
}

// NewDefaultStore creates a store seeded with the marketplace catalog.
func NewDefaultStore() *Store {
	return NewStore(seedProducts())
}

// All returns the catalog in load order. The returned slice is a copy;
// callers cannot mutate the catalog through it.
func (s *Store) All() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// FindByID looks up a product. A miss is reported with ok=false, never
// an error; cart items referencing unknown ids simply price at zero.
func (s *Store) FindByID(id int) (domain.Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return s.products[i], true
}

// Len returns the catalog size.
func (s *Store) Len() int {
	return len(s.products)
}

// Categories returns the category filter vocabulary, "All Products"
// first and the organic pseudo-category last.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	out := []string{domain.CategoryAll}
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return append(out, domain.CategoryOrganic)
}

// Locations returns the location filter vocabulary, "All Locations" first.
func (s *Store) Locations() []string {
	seen := make(map[string]bool)
	out := []string{domain.LocationAll}
	for _, p := range s.products {
		if !seen[p.Location] {
			seen[p.Location] = true
			out = append(out, p.Location)
		}
	}
	return out
}
