package helpers

// SessionClaims is the authenticated identity attached to the gin
// context by the auth middleware. The admin flag is re-read from the
// store on every request, so a promotion or demotion takes effect
// without re-login.
type SessionClaims struct {
	UserID   int    `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

func (sc *SessionClaims) IsOwner(userID int) bool {
	return sc.UserID == userID
}
