package transport

import (
	"net/http"

	"farmmarket/internal/middleware"
	"farmmarket/internal/session"

	"github.com/google/uuid"
)

// sessionFromRequest resolves the caller's session from the context
// populated by the auth middleware. A token for a destroyed session is
// rejected as unauthorized; signing out invalidates it.
func sessionFromRequest(r *http.Request, sessions *session.Manager) (*session.Session, bool, int, string) {
	idStr, ok := middleware.GetSessionID(r.Context())
	if !ok {
		return nil, false, http.StatusUnauthorized, "unauthorized"
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, false, http.StatusUnauthorized, "invalid session id"
	}

	sess, err := sessions.Get(id)
	if err != nil {
		return nil, false, http.StatusUnauthorized, "session expired"
	}

	return sess, true, 0, ""
}
