package models

// Session is the locally persisted identity of the currently acting user.
// A nil *Session means no one is logged in; the session file on disk is the
// sole source of truth and is loaded once per invocation.
type Session struct {
	UserID string   `json:"user_id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
}

// IsAdmin reports whether the session belongs to the admin user.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
