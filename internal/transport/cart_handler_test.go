package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"farmmarket/internal/cart"
	"farmmarket/internal/catalog"
	"farmmarket/internal/domain"
	"farmmarket/internal/middleware"
	"farmmarket/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// withSession stuffs a session id into the request context the way the
// auth middleware would.
func withSession(req *http.Request, sess *session.Session) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.SessionIDKey, sess.ID.String())
	ctx = context.WithValue(ctx, middleware.UserTypeKey, string(sess.UserType))
	return req.WithContext(ctx)
}

func TestCartHandler_AddAndSummarize(t *testing.T) {
	sessions := session.NewManager(0)
	sess := sessions.Create("a@example.com", domain.UserTypeConsumer)

	router := chi.NewRouter()
	handler := NewCartHandler(sessions, catalog.NewDefaultStore(), cart.NewDefaultCalculator(), zap.NewNop())
	handler.RegisterRoutes(router)

	add := func() CartResponse {
		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"product_id":1}`))
		req = withSession(req, sess)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp CartResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		return resp
	}

	add()
	add()
	resp := add()

	// Product 1 costs 40; three units land below the free delivery
	// threshold.
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantity)
	assert.Equal(t, 3, resp.Count)
	assert.False(t, resp.Empty)
	assert.InDelta(t, 120.0, resp.Summary.Subtotal, 1e-9)
	assert.InDelta(t, 50.0, resp.Summary.DeliveryFee, 1e-9)
	assert.InDelta(t, 6.0, resp.Summary.Tax, 1e-9)
	assert.InDelta(t, 176.0, resp.Summary.Total, 1e-9)
}

func TestCartHandler_UpdateToZeroRemovesLine(t *testing.T) {
	sessions := session.NewManager(0)
	sess := sessions.Create("a@example.com", domain.UserTypeConsumer)

	router := chi.NewRouter()
	handler := NewCartHandler(sessions, catalog.NewDefaultStore(), cart.NewDefaultCalculator(), zap.NewNop())
	handler.RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"product_id":2}`))
	req = withSession(req, sess)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPut, "/api/cart/items/2", strings.NewReader(`{"quantity":0}`))
	req = withSession(req, sess)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CartResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Empty)
	assert.Empty(t, resp.Items)
	assert.Equal(t, domain.PricingSummary{}, resp.Summary)
}

func TestCartHandler_RejectsDestroyedSession(t *testing.T) {
	sessions := session.NewManager(0)
	sess := sessions.Create("a@example.com", domain.UserTypeConsumer)
	sessions.Destroy(sess.ID)

	router := chi.NewRouter()
	handler := NewCartHandler(sessions, catalog.NewDefaultStore(), cart.NewDefaultCalculator(), zap.NewNop())
	handler.RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/api/cart/", nil)
	req = withSession(req, sess)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
