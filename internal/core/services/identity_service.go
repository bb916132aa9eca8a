package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/officeflow/internal/apperrors"
	"github.com/SscSPs/officeflow/internal/core/domain"
	portsrepo "github.com/SscSPs/officeflow/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/officeflow/internal/core/ports/services"
	"github.com/SscSPs/officeflow/internal/platform/config"
	"github.com/SscSPs/officeflow/internal/utils"
	"github.com/google/uuid"
	"google.golang.org/api/idtoken"
)

// GoogleTokenValidator validates a Google ID token for the given audience.
type GoogleTokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// IdentityOption is a functional option for configuring the identity service
type IdentityOption func(*identityService)

// WithGoogleTokenValidator replaces the Google ID token validator.
func WithGoogleTokenValidator(v GoogleTokenValidator) IdentityOption {
	return func(s *identityService) {
		s.validateGoogleToken = v
	}
}

// identityService signs identities in with local passwords or Google ID
// tokens and issues the bearer tokens the rest of the API accepts.
type identityService struct {
	BaseService
	cfg                 *config.Config
	identityRepo        portsrepo.IdentityRepositoryFacade
	validateGoogleToken GoogleTokenValidator
}

// NewIdentityService creates a new identity service with the provided options
func NewIdentityService(cfg *config.Config, identityRepo portsrepo.IdentityRepositoryFacade, options ...IdentityOption) portssvc.IdentitySvcFacade {
	svc := &identityService{
		cfg:                 cfg,
		identityRepo:        identityRepo,
		validateGoogleToken: idtoken.Validate,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.IdentitySvcFacade = (*identityService)(nil)

var errInvalidCredentials = apperrors.NewUnauthorizedError("Invalid email or password")

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *identityService) VerifyToken(ctx context.Context, token string) (*domain.Principal, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret, s.cfg.JWTIssuer)
	if err != nil {
		s.LogDebug(ctx, "Token verification failed", slog.String("error", err.Error()))
		return nil, apperrors.NewUnauthorizedError("Invalid token")
	}
	return &domain.Principal{UserID: claims.Subject, Email: claims.Email}, nil
}

func (s *identityService) issueToken(ctx context.Context, identity *domain.Identity) (*domain.AccessToken, error) {
	token, expiresAt, err := utils.GenerateJWT(identity.UID, identity.Email, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("uid", identity.UID))
		return nil, apperrors.NewInternalServerError("failed to issue token", err)
	}
	return &domain.AccessToken{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *identityService) CreateAccount(ctx context.Context, email, password, displayName string) (*domain.Identity, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, apperrors.NewValidationFailedError("Email is required")
	}
	if err := utils.CheckPasswordPolicy(password); err != nil {
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return nil, apperrors.NewValidationFailedError("Password must be at most 72 bytes")
		}
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("Password must be at least %d characters", utils.MinPasswordLength))
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.NewInternalServerError("failed to hash password", err)
	}

	identity := domain.Identity{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		DisplayName:  strings.TrimSpace(displayName),
		Provider:     domain.ProviderLocal,
		CreatedAt:    now(),
	}
	if err := s.identityRepo.SaveIdentity(ctx, identity); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to save identity")
		}
		return nil, err
	}

	s.LogInfo(ctx, "Identity created", slog.String("uid", identity.UID))
	return &identity, nil
}

func (s *identityService) DeleteAccount(ctx context.Context, uid string) error {
	if err := s.identityRepo.DeleteIdentity(ctx, uid); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete identity", slog.String("uid", uid))
		}
		return err
	}
	s.LogInfo(ctx, "Identity deleted", slog.String("uid", uid))
	return nil
}

func (s *identityService) SignUp(ctx context.Context, email, password, displayName string) (*domain.Identity, *domain.AccessToken, error) {
	identity, err := s.CreateAccount(ctx, email, password, displayName)
	if err != nil {
		return nil, nil, err
	}
	token, err := s.issueToken(ctx, identity)
	if err != nil {
		return nil, nil, err
	}
	return identity, token, nil
}

func (s *identityService) Login(ctx context.Context, email, password string) (*domain.Identity, *domain.AccessToken, error) {
	identity, err := s.identityRepo.FindIdentityByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, errInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up identity")
		return nil, nil, err
	}

	if !utils.CheckPasswordHash(password, identity.PasswordHash) {
		s.LogWarn(ctx, "Login rejected", slog.String("uid", identity.UID))
		return nil, nil, errInvalidCredentials
	}

	token, err := s.issueToken(ctx, identity)
	if err != nil {
		return nil, nil, err
	}
	return identity, token, nil
}

func (s *identityService) GoogleSignIn(ctx context.Context, idToken string) (*domain.Identity, *domain.AccessToken, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, nil, apperrors.NewInternalServerError("Google sign-in is not configured", nil)
	}

	payload, err := s.validateGoogleToken(ctx, idToken, s.cfg.GoogleClientID)
	if err != nil {
		s.LogWarn(ctx, "Google ID token rejected", slog.String("error", err.Error()))
		return nil, nil, apperrors.NewUnauthorizedError("Invalid Google token")
	}

	email, _ := payload.Claims["email"].(string)
	email = normalizeEmail(email)
	if email == "" {
		return nil, nil, apperrors.NewUnauthorizedError("Google token carries no email")
	}
	if !emailVerified(payload.Claims["email_verified"]) {
		s.LogWarn(ctx, "Google token email not verified")
		return nil, nil, apperrors.NewUnauthorizedError("Google email is not verified")
	}

	identity, err := s.identityRepo.FindIdentityByEmail(ctx, email)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrNotFound):
		name, _ := payload.Claims["name"].(string)
		identity = &domain.Identity{
			UID:         uuid.NewString(),
			Email:       email,
			DisplayName: name,
			Provider:    domain.ProviderGoogle,
			CreatedAt:   now(),
		}
		if err := s.identityRepo.SaveIdentity(ctx, *identity); err != nil {
			s.LogError(ctx, err, "Failed to save Google identity")
			return nil, nil, err
		}
		s.LogInfo(ctx, "Google identity created", slog.String("uid", identity.UID))
	default:
		s.LogError(ctx, err, "Failed to look up identity")
		return nil, nil, fmt.Errorf("failed to look up identity: %w", err)
	}

	token, err := s.issueToken(ctx, identity)
	if err != nil {
		return nil, nil, err
	}
	return identity, token, nil
}

// emailVerified accepts the claim as a JSON bool or its string form; a missing
// claim counts as unverified.
func emailVerified(claim any) bool {
	switch v := claim.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}
