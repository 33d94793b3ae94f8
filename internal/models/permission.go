package models

// Permission records are seeded and listed on the settings page but nothing
// enforces them; the capability matrix shown there is hand-coded separately.
type Permission struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CanCreate   bool   `json:"canCreate"`
	CanRead     bool   `json:"canRead"`
	CanUpdate   bool   `json:"canUpdate"`
	CanDelete   bool   `json:"canDelete"`
}
