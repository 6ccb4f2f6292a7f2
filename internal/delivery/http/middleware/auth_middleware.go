// Package middleware contains echo middleware for the HTTP delivery.
package middleware

import (
	"net/http"

	"cookbook/config"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys the middleware sets for downstream handlers.
const (
	// ContextKeyUserID holds the authenticated caller's uuid.UUID.
	ContextKeyUserID = "userID"

	// ContextKeySessionToken holds the raw session token of the request.
	ContextKeySessionToken = "sessionToken"
)

// AuthMiddleware resolves the session cookie into a caller identity.
type AuthMiddleware struct {
	sessions service.SessionManager
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions service.SessionManager, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, cfg: cfg}
}

// Authenticate rejects anonymous callers. A valid session puts the user ID
// and token on the request context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := m.sessionToken(c)
		if !ok {
			return domainerrors.ErrUnauthenticated.WrapMessage("session cookie missing")
		}

		userID, ok := m.sessions.Resolve(token)
		if !ok {
			return domainerrors.ErrUnauthenticated.WrapMessage("session expired or unknown")
		}

		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeySessionToken, token)

		// Resolve slid the server-side expiry; re-issue the cookie so the
		// browser-side lifetime slides with it.
		c.SetCookie(NewSessionCookie(m.cfg, token))

		return next(c)
	}
}

// sessionToken extracts the raw token from the session cookie.
func (m *AuthMiddleware) sessionToken(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(m.cfg.Session.CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}

// SessionToken exposes cookie extraction for handlers that resolve the
// identity themselves (e.g. check-auth, which must not 401 via middleware).
func (m *AuthMiddleware) SessionToken(c echo.Context) (string, bool) {
	return m.sessionToken(c)
}

// CurrentUserID reads the authenticated user ID set by Authenticate.
func CurrentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// CurrentSessionToken reads the session token set by Authenticate.
func CurrentSessionToken(c echo.Context) (string, bool) {
	token, ok := c.Get(ContextKeySessionToken).(string)

	return token, ok
}

// NewSessionCookie builds the session cookie delivered on login.
// HTTP-only and SameSite=Lax always; Secure comes from configuration so
// local development over plain HTTP keeps working.
func NewSessionCookie(cfg *config.Config, token string) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.Session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.Session.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   cfg.Session.CookieSecure,
	}
}

// ExpiredSessionCookie builds the cookie that clears the session on logout.
func ExpiredSessionCookie(cfg *config.Config) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   cfg.Session.CookieSecure,
	}
}
