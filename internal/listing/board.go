package listing

import (
	"time"

	"farmmarket/internal/domain"
)

// ValidationError is a user-visible submission failure. It blocks the
// submit but is never fatal.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// DefaultMaxImageBytes caps uploaded image references at 5 MB,
// rejected before any read begins.
const DefaultMaxImageBytes = 5 * 1024 * 1024

// Board holds a farmer's own product listings. It is private to the
// farmer's session and never feeds the consumer catalog.
//
// Board is not safe for concurrent use; the owning session serializes
// access.
type Board struct {
	maxImageBytes int64
	products      []domain.DraftProduct
}

// NewBoard creates an empty board with the given image size cap; a cap
// of zero or less falls back to the default.
func NewBoard(maxImageBytes int64) *Board {
	if maxImageBytes <= 0 {
		maxImageBytes = DefaultMaxImageBytes
	}
	return &Board{maxImageBytes: maxImageBytes}
}

// Submit validates the draft and, on success, appends a copy stamped
// with the submission time. The caller resets its draft to defaults
// afterwards. A validation failure blocks the submit with a message
// and leaves the board unchanged.
func (b *Board) Submit(draft domain.DraftProduct) error {
	if draft.Image == "" {
		return &ValidationError{Field: "image", Message: "please upload an image"}
	}
	if int64(len(draft.Image)) > b.maxImageBytes {
		return &ValidationError{Field: "image", Message: "image size should be less than 5MB"}
	}
	draft.CreatedAt = time.Now()
	b.products = append(b.products, draft)
	return nil
}

// Delete removes the listing at the given position. Out-of-range
// indexes are a no-op; the original UI had no confirmation step and no
// error path here.
func (b *Board) Delete(index int) {
	if index < 0 || index >= len(b.products) {
		return
	}
	b.products = append(b.products[:index], b.products[index+1:]...)
}

// Products returns the listings in submission order. The slice is a
// copy.
func (b *Board) Products() []domain.DraftProduct {
	out := make([]domain.DraftProduct, len(b.products))
	copy(out, b.products)
	return out
}

// Len returns the number of listings on the board.
func (b *Board) Len() int {
	return len(b.products)
}
