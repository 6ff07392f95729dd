package models

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt hash, never serialized
	Email    string `json:"email"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"isAdmin"`
}

// UserPatch lists the user fields that may change after registration.
// Nil means "leave unchanged". IsAdmin is only reachable through the
// store directly; no request payload binds into it.
type UserPatch struct {
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	Password *string `json:"-"`
	IsAdmin  *bool   `json:"-"`
}
