package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Phin0508/eamts-sub003/internal/domain"
)

const sessionKeyLocal = "portal_session"

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "portal_session"

// SessionMiddleware resolves the session cookie into a request-scoped
// Session. A missing or invalid cookie is not an error here; the guard
// denies later if the page requires an identity.
type SessionMiddleware struct {
	tokens *TokenManager
	store  SessionStore
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(tokens *TokenManager, store SessionStore) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens, store: store}
}

// Handle loads the caller's session, if any, into fiber locals.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	cookie := c.Cookies(SessionCookieName)
	if cookie == "" {
		return c.Next()
	}

	sessionID, err := m.tokens.ParseToken(cookie)
	if err != nil {
		return c.Next()
	}

	sess, err := m.store.Get(c.Context(), sessionID)
	if err != nil {
		// expired sessions fall through to the guard; store outages must not
		if !errors.Is(err, ErrSessionNotFound) {
			return err
		}
		return c.Next()
	}

	c.Locals(sessionKeyLocal, sess)
	return c.Next()
}

// SessionFromContext retrieves the authenticated session.
func SessionFromContext(c *fiber.Ctx) (*Session, bool) {
	val := c.Locals(sessionKeyLocal)
	if val == nil {
		return nil, false
	}
	sess, ok := val.(*Session)
	return sess, ok
}

// RequireRole evaluates the guard for a page requiring the given role and
// redirects on denial. Every scoped entry point goes through this handler
// rather than re-implementing the check.
func RequireRole(required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, _ := SessionFromContext(c)
		decision := Authorize(sess, required)
		if !decision.Allowed {
			return c.Redirect(decision.Redirect, fiber.StatusFound)
		}
		return c.Next()
	}
}
