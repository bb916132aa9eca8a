package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/officeflow/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// UserFilter selects users by equality. Zero-valued fields are not applied.
type UserFilter struct {
	CompanyID  string
	Role       domain.Role
	Department string
	Limit      int
}

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUsers retrieves users matching the filter in no particular order.
	FindUsers(ctx context.Context, filter UserFilter) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUserProfile updates role, department, job title and name.
	UpdateUserProfile(ctx context.Context, user domain.User) error

	// DeleteUser removes a user record.
	DeleteUser(ctx context.Context, userID string) error
}

// UserTxManager defines the row-locked operations used inside a transaction.
type UserTxManager interface {
	// FindUserByIDForUpdate loads a user and locks the row until tx ends.
	FindUserByIDForUpdate(ctx context.Context, tx pgx.Tx, userID string) (*domain.User, error)

	// UpdateLeaveBalanceInTx writes the leave balance of a user within tx.
	UpdateLeaveBalanceInTx(ctx context.Context, tx pgx.Tx, userID string, balance domain.LeaveBalance, updatedAt time.Time) error

	// SaveUserInTx is SaveUser within tx.
	SaveUserInTx(ctx context.Context, tx pgx.Tx, user domain.User) error

	// UpdateUserProfileInTx is UpdateUserProfile within tx.
	UpdateUserProfileInTx(ctx context.Context, tx pgx.Tx, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserTxManager
}
