package models

// User is a dashboard account. Password is write-only: it is sent on
// create/update and never rendered back, so edit flows require re-entry.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}
