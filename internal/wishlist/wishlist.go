package wishlist

// Wishlist is a consumer's saved-for-later product set, independent of
// the cart. Membership is toggled; double-toggling any id restores the
// original state. Insertion order is kept for display.
//
// Wishlist is not safe for concurrent use; the owning session
// serializes access.
type Wishlist struct {
	ids []int
}

// New returns an empty wishlist.
func New() *Wishlist {
	return &Wishlist{}
}

// Toggle flips membership for productID and reports the new state:
// true when the product is now on the wishlist.
func (w *Wishlist) Toggle(productID int) bool {
	for i, id := range w.ids {
		if id == productID {
			w.ids = append(w.ids[:i], w.ids[i+1:]...)
			return false
		}
	}
	w.ids = append(w.ids, productID)
	return true
}

// Contains reports membership for productID.
func (w *Wishlist) Contains(productID int) bool {
	for _, id := range w.ids {
		if id == productID {
			return true
		}
	}
	return false
}

// IDs returns the wishlist in insertion order. The slice is a copy.
func (w *Wishlist) IDs() []int {
	out := make([]int, len(w.ids))
	copy(out, w.ids)
	return out
}

// Len returns the number of wishlisted products, as shown on the
// header badge.
func (w *Wishlist) Len() int {
	return len(w.ids)
}
