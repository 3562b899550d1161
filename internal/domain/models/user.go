package models

// User is the ephemeral session identity written at login and destroyed at
// logout. It is a display artifact, not linked to any inventory data.
type User struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Warehouse string `json:"warehouse"`
}

// DefaultUser is the identity used when a login request carries no email.
func DefaultUser() User {
	return User{
		Email:     "demo@agriverse.com",
		Name:      "Demo Manager",
		Warehouse: "Lahore Warehouse",
	}
}
