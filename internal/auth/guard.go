package auth

import "github.com/Phin0508/eamts-sub003/internal/domain"

// Session carries the request-scoped identity supplied by the session store.
// It is passed explicitly; no ambient global state.
type Session struct {
	ID     string
	UserID int64
	Role   domain.Role
}

// Decision is the guard's verdict for a page access attempt.
type Decision struct {
	Allowed  bool
	Redirect string
}

// Landing pages per role. Pages requiring a different role bounce the
// caller here rather than explaining the refusal.
const (
	LoginPath            = "/login"
	ManagerDashboardPath = "/manager/dashboard"
	TicketListPath       = "/tickets"
)

// Authorize decides whether a page requiring the given role may proceed.
// A nil session always denies toward the login page. A present session with
// the wrong role denies toward that role's own landing page. The role check
// is an exact match; admins are not implicitly granted manager pages.
func Authorize(sess *Session, required domain.Role) Decision {
	if sess == nil {
		return Decision{Allowed: false, Redirect: LoginPath}
	}
	if sess.Role != required {
		return Decision{Allowed: false, Redirect: LandingFor(sess.Role)}
	}
	return Decision{Allowed: true}
}

// LandingFor returns the default page for a role.
func LandingFor(role domain.Role) string {
	if role == domain.RoleManager {
		return ManagerDashboardPath
	}
	return TicketListPath
}
