package dto

import (
	"time"

	"github.com/SscSPs/officeflow/internal/core/domain"
)

// SignUpRequest creates a local identity.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required"`
}

// LoginRequest signs in a local identity.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleSignInRequest carries an ID token obtained by the frontend from Google.
type GoogleSignInRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// IdentityResponse is the public view of an identity.
type IdentityResponse struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Provider    string `json:"provider"`
}

// AuthResponse is returned by every sign-in flow.
type AuthResponse struct {
	Success   bool             `json:"success" example:"true"`
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	Identity  IdentityResponse `json:"identity"`
}

// ToAuthResponse converts an identity and its token to the response DTO.
func ToAuthResponse(identity *domain.Identity, token *domain.AccessToken) AuthResponse {
	return AuthResponse{
		Success:   true,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		Identity: IdentityResponse{
			UID:         identity.UID,
			Email:       identity.Email,
			DisplayName: identity.DisplayName,
			Provider:    string(identity.Provider),
		},
	}
}
