package services

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/SscSPs/officeflow/internal/apperrors"
	"github.com/SscSPs/officeflow/internal/core/domain"
	portsrepo "github.com/SscSPs/officeflow/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/officeflow/internal/core/ports/services"
	"github.com/SscSPs/officeflow/internal/dto"
)

type userService struct {
	BaseService
	userRepo    portsrepo.UserRepositoryFacade
	companyRepo portsrepo.CompanyReader
}

// NewUserService creates a new user service
func NewUserService(userRepo portsrepo.UserRepositoryFacade, companyRepo portsrepo.CompanyReader) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, companyRepo: companyRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.String("target_user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserForActor(ctx context.Context, actor *domain.User, userID string) (*domain.User, error) {
	if userID == actor.UserID {
		return actor, nil
	}
	target, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !actor.CanView(target) {
		s.LogWarn(ctx, "User view denied", slog.String("target_user_id", userID))
		return nil, apperrors.NewForbiddenError("Access denied")
	}
	return target, nil
}

func (s *userService) ListCompanyUsers(ctx context.Context, actor *domain.User) ([]domain.User, error) {
	if err := s.RequireAdmin(ctx, actor); err != nil {
		return nil, err
	}
	users, err := s.userRepo.FindUsers(ctx, portsrepo.UserFilter{CompanyID: actor.CompanyID})
	if err != nil {
		s.LogError(ctx, err, "Failed to list company users")
		return nil, err
	}
	slices.SortStableFunc(users, func(a, b domain.User) int {
		return strings.Compare(strings.ToLower(a.FullName), strings.ToLower(b.FullName))
	})
	return users, nil
}

func (s *userService) UpdateProfile(ctx context.Context, actor *domain.User, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	target, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(target) {
		s.LogWarn(ctx, "Profile update denied", slog.String("target_user_id", userID))
		return nil, apperrors.NewForbiddenError("Access denied")
	}

	updated := *target
	if req.Department != nil {
		department := strings.TrimSpace(*req.Department)
		if department != "" {
			company, err := s.companyRepo.FindCompanyByID(ctx, target.CompanyID)
			if err != nil {
				s.LogError(ctx, err, "Failed to load company for profile update")
				return nil, err
			}
			if !company.Settings.HasDepartment(department) {
				return nil, apperrors.NewValidationFailedError("Unknown department: " + department)
			}
		}
		updated.Department = department
	}
	if req.JobTitle != nil {
		updated.JobTitle = strings.TrimSpace(*req.JobTitle)
	}

	if updated.Department == target.Department && updated.JobTitle == target.JobTitle {
		return target, nil
	}

	updated.LastUpdatedAt = now()
	if err := s.userRepo.UpdateUserProfile(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update profile", slog.String("target_user_id", userID))
		return nil, err
	}
	s.LogInfo(ctx, "Profile updated", slog.String("target_user_id", userID))
	return &updated, nil
}
