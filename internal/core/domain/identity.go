package domain

import "time"

// IdentityProvider names where an identity's credentials are held.
type IdentityProvider string

const (
	ProviderLocal  IdentityProvider = "local"
	ProviderGoogle IdentityProvider = "google"
)

// Identity is a sign-in account. Its UID becomes the bearer token subject
// and the directory user ID.
type Identity struct {
	UID          string           `json:"uid"`
	Email        string           `json:"email"`
	PasswordHash string           `json:"-"`
	DisplayName  string           `json:"displayName"`
	Provider     IdentityProvider `json:"provider"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// Principal is what a verified bearer token tells us about the caller.
type Principal struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
}

// AccessToken is a signed bearer token and its expiry.
type AccessToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
