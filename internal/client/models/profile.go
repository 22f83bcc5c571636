package models

// Profile is the authenticated user as reported by the server at login.
// Plan and Role are the inputs to the entitlement gate.
type Profile struct {
	UserID   string
	UserName string
	Plan     string
	Role     string
}
