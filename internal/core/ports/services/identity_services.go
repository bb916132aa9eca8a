package services

import (
	"context"

	"github.com/SscSPs/officeflow/internal/core/domain"
)

// CredentialVerifierSvc turns a bearer token into a principal.
type CredentialVerifierSvc interface {
	// VerifyToken validates signature, issuer and expiry of a bearer token.
	// It fails with apperrors.ErrUnauthorized for anything it cannot accept.
	VerifyToken(ctx context.Context, token string) (*domain.Principal, error)
}

// IdentitySignInSvc defines the self-service sign-in flows.
type IdentitySignInSvc interface {
	// SignUp creates a local identity and signs it in.
	SignUp(ctx context.Context, email, password, displayName string) (*domain.Identity, *domain.AccessToken, error)

	// Login checks a local identity's password and signs it in.
	Login(ctx context.Context, email, password string) (*domain.Identity, *domain.AccessToken, error)

	// GoogleSignIn validates a Google ID token, creating the identity on first use.
	GoogleSignIn(ctx context.Context, idToken string) (*domain.Identity, *domain.AccessToken, error)
}

// IdentityAccountSvc defines account management used by admin provisioning.
type IdentityAccountSvc interface {
	// CreateAccount creates a local identity without signing it in.
	CreateAccount(ctx context.Context, email, password, displayName string) (*domain.Identity, error)

	// DeleteAccount removes an identity.
	DeleteAccount(ctx context.Context, uid string) error
}

// IdentitySvcFacade combines all identity-related service interfaces
type IdentitySvcFacade interface {
	CredentialVerifierSvc
	IdentitySignInSvc
	IdentityAccountSvc
}
