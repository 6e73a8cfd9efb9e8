package model

// User is the authenticated admin account. There is exactly one credential
// pair in this system, so no id or role hierarchy is needed.
type User struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}
