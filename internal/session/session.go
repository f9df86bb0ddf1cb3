package session

import (
	"errors"
	"sync"
	"time"

	"farmmarket/internal/cart"
	"farmmarket/internal/domain"
	"farmmarket/internal/listing"
	"farmmarket/internal/survey"
	"farmmarket/internal/wishlist"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is the state scoped to one signed-in user: cart, wishlist,
// survey and listing board. It is created at sign-in and discarded at
// sign-out; nothing here is shared across sessions or persisted.
//
// Domain components run to completion synchronously, one operation at
// a time; the session's mutex preserves that ordering when operations
// arrive over HTTP.
type Session struct {
	ID        uuid.UUID
	Email     string
	UserType  domain.UserType
	CreatedAt time.Time

	mu       sync.Mutex
	cart     *cart.Cart
	wishlist *wishlist.Wishlist
	survey   *survey.Survey
	board    *listing.Board
}

// Do runs fn with exclusive access to the session's state.
func (s *Session) Do(fn func(state *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&State{
		Cart:     s.cart,
		Wishlist: s.wishlist,
		Survey:   s.survey,
		Board:    s.board,
	})
}

// State is the view of a session's mutable components handed to Do
// callbacks.
type State struct {
	Cart     *cart.Cart
	Wishlist *wishlist.Wishlist
	Survey   *survey.Survey
	Board    *listing.Board
}

// Manager tracks live sessions by id.
type Manager struct {
	mu            sync.RWMutex
	sessions      map[uuid.UUID]*Session
	maxImageBytes int64
}

// NewManager creates an empty session manager. maxImageBytes caps
// listing image uploads for every session it creates.
func NewManager(maxImageBytes int64) *Manager {
	return &Manager{
		sessions:      make(map[uuid.UUID]*Session),
		maxImageBytes: maxImageBytes,
	}
}

// Create starts a fresh session for a signed-in user with an empty
// cart, wishlist, listing board and a survey at step 0.
func (m *Manager) Create(email string, userType domain.UserType) *Session {
	s := &Session{
		ID:        uuid.New(),
		Email:     email,
		UserType:  userType,
		CreatedAt: time.Now(),
		cart:      cart.New(),
		wishlist:  wishlist.New(),
		survey:    survey.NewDefault(),
		board:     listing.NewBoard(m.maxImageBytes),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s
}

// Get returns the session for id.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Destroy discards the session and everything it holds. Destroying an
// unknown id is a no-op; sign-out is idempotent.
func (m *Manager) Destroy(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
