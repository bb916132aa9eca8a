package models

import "time"

// Identity is the row layout of the identities table.
type Identity struct {
	UID          string    `db:"uid"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	DisplayName  string    `db:"display_name"`
	Provider     string    `db:"provider"`
	CreatedAt    time.Time `db:"created_at"`
}
