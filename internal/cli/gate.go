package cli

import (
	"github.com/SAP-F-2025/doccli/internal/models"
	"github.com/SAP-F-2025/doccli/internal/services"
)

// Authorize decides whether a direct invocation of the operation is
// permitted for the given session state. A nil error means allowed.
//
// The session lifecycle commands are special-cased: login only applies when
// logged out, logout only when logged in, and register applies when logged
// out (self-service, restricted downstream to the student role) or when the
// admin is logged in.
func Authorize(d *Descriptor, sess *models.Session) error {
	switch d.Name {
	case CmdLogin:
		if sess != nil {
			return services.ErrNotApplicable
		}
		return nil
	case CmdLogout:
		if sess == nil {
			return services.ErrNotLoggedIn
		}
		return nil
	case CmdRegister:
		if sess == nil || sess.IsAdmin() {
			return nil
		}
		return services.ErrNotApplicable
	}

	if d.requiresLogin() && sess == nil {
		return services.ErrNotLoggedIn
	}
	if len(d.AllowedRoles) > 0 && !roleAllowed(sess.Role, d.AllowedRoles) {
		actual := sess.Role
		return &services.InsufficientRoleError{Required: d.AllowedRoles, Actual: &actual}
	}
	return nil
}

// Visible reports whether the operation appears in command listings for the
// given session state. It applies exactly the same predicate as Authorize:
// an operation hidden from listings is also rejected when invoked by name.
func Visible(d *Descriptor, sess *models.Session) bool {
	return Authorize(d, sess) == nil
}

func roleAllowed(role models.UserRole, allowed []models.UserRole) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
