package models

// Advisor is the signed-in staff account. The account comes from the
// environment at startup, there is no user table.
type Advisor struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
