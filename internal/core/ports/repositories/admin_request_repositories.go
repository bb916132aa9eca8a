package repositories

import (
	"context"

	"github.com/SscSPs/officeflow/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AdminRequestRepositoryFacade defines persistence for admin self-nominations.
type AdminRequestRepositoryFacade interface {
	// SaveAdminRequest persists a new admin request.
	SaveAdminRequest(ctx context.Context, request domain.AdminRequest) error

	// FindAdminRequestByID retrieves an admin request by its ID.
	FindAdminRequestByID(ctx context.Context, adminRequestID string) (*domain.AdminRequest, error)

	// FindAdminRequests lists admin requests of a company with the given status.
	FindAdminRequests(ctx context.Context, companyID string, status domain.AdminRequestStatus) ([]domain.AdminRequest, error)

	// FindPendingAdminRequestByUser returns the pending request of a user, or apperrors.ErrNotFound.
	FindPendingAdminRequestByUser(ctx context.Context, userID string) (*domain.AdminRequest, error)

	// DecideAdminRequestInTx persists the decision, only if the stored status is
	// still pending. Returns apperrors.ErrInvalidState otherwise.
	DecideAdminRequestInTx(ctx context.Context, tx pgx.Tx, request domain.AdminRequest) error
}

// AdminRequestRepositoryWithTx extends AdminRequestRepositoryFacade with transaction capabilities
type AdminRequestRepositoryWithTx interface {
	AdminRequestRepositoryFacade
	TransactionManager
}
