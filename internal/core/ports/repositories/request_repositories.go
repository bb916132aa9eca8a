package repositories

import (
	"context"

	"github.com/SscSPs/officeflow/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// RequestFilter selects requests by equality. Zero-valued fields are not applied.
type RequestFilter struct {
	CompanyID  string
	UserID     string
	Status     domain.RequestStatus
	AssignedTo string
}

// RequestReader defines read operations for requests
type RequestReader interface {
	// FindRequestByID retrieves a request by its ID.
	FindRequestByID(ctx context.Context, requestID string) (*domain.Request, error)

	// FindRequests retrieves requests matching the filter in no particular order.
	FindRequests(ctx context.Context, filter RequestFilter) ([]domain.Request, error)
}

// RequestWriter defines write operations for requests
type RequestWriter interface {
	// SaveRequest persists a new request.
	SaveRequest(ctx context.Context, request domain.Request) error
}

// RequestTransitioner defines the status transition operations used by the approval workflow.
type RequestTransitioner interface {
	// FindRequestByIDForUpdate loads a request and locks the row until tx ends.
	FindRequestByIDForUpdate(ctx context.Context, tx pgx.Tx, requestID string) (*domain.Request, error)

	// TransitionRequestInTx persists the decision fields of request, but only
	// if the stored status still equals from. Returns apperrors.ErrInvalidState otherwise.
	TransitionRequestInTx(ctx context.Context, tx pgx.Tx, request domain.Request, from domain.RequestStatus) error
}

// RequestRepositoryFacade combines all request-related repository interfaces
type RequestRepositoryFacade interface {
	RequestReader
	RequestWriter
	RequestTransitioner
}

// RequestRepositoryWithTx extends RequestRepositoryFacade with transaction capabilities
type RequestRepositoryWithTx interface {
	RequestRepositoryFacade
	TransactionManager
}
