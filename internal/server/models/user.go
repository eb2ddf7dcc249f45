// Package models contains the server-side domain types.
package models

import "time"

// User is a registered account. Email is the normalized lookup key;
// PasswordHash never leaves the server.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
	Entries      []Entry
}

// Entry is a placeholder for per-user domain data. Nothing reads or
// writes entries yet; new users start with an empty slice.
type Entry struct {
	ID        string
	CreatedAt time.Time
	Payload   []byte
}

// UserView is the public projection of a User returned to clients.
type UserView struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// View returns the public projection of u.
func (u *User) View() UserView {
	return UserView{UserID: u.ID, Email: u.Email}
}
