package domain

// Actor is the authenticated caller identity resolved by the middleware.
// Exactly one of UserID/AdminID is normally set; admin identity always wins
// for permission checks.
type Actor struct {
	// UserID is the upstream account id of a client caller
	UserID *string

	// AdminID is the staff id of an admin caller
	AdminID *int64
}

// IsAdmin reports whether the caller has staff privileges
func (a Actor) IsAdmin() bool {
	return a.AdminID != nil
}
