package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/officeflow/internal/apperrors"
	"github.com/SscSPs/officeflow/internal/core/domain"
	portsrepo "github.com/SscSPs/officeflow/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/officeflow/internal/core/ports/services"
)

// approvalService decides pending requests. The status change and any leave
// deduction are written in one transaction with both rows locked.
type approvalService struct {
	BaseService
	requestRepo portsrepo.RequestRepositoryWithTx
	userRepo    portsrepo.UserTxManager
}

// NewApprovalService creates a new approval service
func NewApprovalService(requestRepo portsrepo.RequestRepositoryWithTx, userRepo portsrepo.UserTxManager) portssvc.ApprovalSvc {
	return &approvalService{requestRepo: requestRepo, userRepo: userRepo}
}

var _ portssvc.ApprovalSvc = (*approvalService)(nil)

func (s *approvalService) Approve(ctx context.Context, requestID string, actor *domain.User) (*domain.Request, error) {
	return s.decide(ctx, requestID, actor, domain.RequestStatusApproved)
}

func (s *approvalService) Reject(ctx context.Context, requestID string, actor *domain.User) (*domain.Request, error) {
	return s.decide(ctx, requestID, actor, domain.RequestStatusRejected)
}

func (s *approvalService) decide(ctx context.Context, requestID string, actor *domain.User, to domain.RequestStatus) (*domain.Request, error) {
	if err := s.RequireAdmin(ctx, actor); err != nil {
		return nil, err
	}
	logger := s.GetLogger(ctx).With(slog.String("request_id", requestID), slog.String("decision", string(to)))

	tx, err := s.requestRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin approval transaction")
		return nil, apperrors.NewInternalServerError("failed to begin transaction", err)
	}
	defer func() {
		if rbErr := s.requestRepo.Rollback(ctx, tx); rbErr != nil {
			logger.Error("Failed to roll back approval transaction", slog.String("error", rbErr.Error()))
		}
	}()

	request, err := s.requestRepo.FindRequestByIDForUpdate(ctx, tx, requestID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load request", slog.String("error", err.Error()))
		}
		return nil, err
	}

	if request.CompanyID != actor.CompanyID {
		logger.Warn("Cross-company decision attempt")
		return nil, apperrors.NewForbiddenError("Access denied")
	}

	decidedAt := now()
	if err := request.Transition(to, actor.UserID, decidedAt); err != nil {
		logger.Info("Request already decided", slog.String("status", string(request.Status)))
		return nil, apperrors.NewInvalidStateError("Request has already been processed")
	}

	if to == domain.RequestStatusApproved && request.DeductsBalance() {
		owner, err := s.userRepo.FindUserByIDForUpdate(ctx, tx, request.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError("Request owner not found")
			}
			logger.Error("Failed to lock request owner", slog.String("error", err.Error()))
			return nil, err
		}
		balance := owner.LeaveBalance.Deduct(request.Leave.LeaveType, request.Leave.Days)
		if err := s.userRepo.UpdateLeaveBalanceInTx(ctx, tx, owner.UserID, balance, decidedAt); err != nil {
			logger.Error("Failed to deduct leave balance", slog.String("error", err.Error()))
			return nil, err
		}
		logger.Info("Leave balance deducted",
			slog.String("owner_id", owner.UserID),
			slog.String("leave_type", string(request.Leave.LeaveType.Bucket())),
			slog.String("days", request.Leave.Days.String()))
	}

	if err := s.requestRepo.TransitionRequestInTx(ctx, tx, *request, domain.RequestStatusPending); err != nil {
		if !errors.Is(err, apperrors.ErrInvalidState) {
			logger.Error("Failed to persist decision", slog.String("error", err.Error()))
		}
		return nil, err
	}

	if err := s.requestRepo.Commit(ctx, tx); err != nil {
		logger.Error("Failed to commit approval transaction", slog.String("error", err.Error()))
		return nil, apperrors.NewInternalServerError("failed to commit transaction", err)
	}

	logger.Info("Request decided")
	return request, nil
}
