package domain

// User is the denormalized identity stored alongside a session. It is
// captured from the authentication service at login and updated on every
// token refresh; the gateway never edits it locally.
type User struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	DisplayName string   `json:"display_name"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions,omitempty"`
}
