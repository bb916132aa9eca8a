package services

import (
	"context"

	"github.com/SscSPs/officeflow/internal/core/domain"
	"github.com/SscSPs/officeflow/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID without access checks.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserForActor retrieves a user the actor is allowed to see.
	GetUserForActor(ctx context.Context, actor *domain.User, userID string) (*domain.User, error)

	// ListCompanyUsers lists every user of the actor's company.
	ListCompanyUsers(ctx context.Context, actor *domain.User) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// UpdateProfile changes department and job title of the actor or, for a superadmin, anyone in the company.
	UpdateProfile(ctx context.Context, actor *domain.User, userID string, req dto.UpdateProfileRequest) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
