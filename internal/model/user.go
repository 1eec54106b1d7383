package model

// User is a registered account. Users are immutable once created; there is
// no update or delete surface for them.
type User struct {
	ID           uint64 `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
