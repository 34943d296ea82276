package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the cookie carrying the opaque session token.
// The principal itself stays server-side in the store.
const SessionCookie = "carpool_session"

// Session keys for the authenticated principal.
const (
	SessionPrincipalID   = "principal_id"
	SessionPrincipalKind = "principal_kind" // "user" or "admin"
)

// Sessions backs the session cookie with in-process server-side state.
func Sessions(secret string) gin.HandlerFunc {
	store := memstore.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   72 * 3600,
	})
	return sessions.Sessions(SessionCookie, store)
}
