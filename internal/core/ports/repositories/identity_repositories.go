package repositories

import (
	"context"

	"github.com/SscSPs/officeflow/internal/core/domain"
)

// IdentityRepositoryFacade defines persistence for sign-in accounts.
type IdentityRepositoryFacade interface {
	SaveIdentity(ctx context.Context, identity domain.Identity) error
	FindIdentityByUID(ctx context.Context, uid string) (*domain.Identity, error)
	FindIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error)
	DeleteIdentity(ctx context.Context, uid string) error
}
