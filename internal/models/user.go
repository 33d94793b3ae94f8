package models

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
	RoleGuest   Role = "guest"
)

// User is persisted verbatim into the "users" collection. Phone doubles as
// the login key and must stay unique across the collection.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Role         Role   `json:"role"`
	Avatar       string `json:"avatar,omitempty"`
	PasswordHash string `json:"passwordHash,omitempty"`
}

// Sanitized strips credential material before a user record leaves the API.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
