package services

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/officeflow/internal/apperrors"
	"github.com/SscSPs/officeflow/internal/core/domain"
	portsrepo "github.com/SscSPs/officeflow/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/officeflow/internal/core/ports/services"
	"github.com/SscSPs/officeflow/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type requestService struct {
	BaseService
	requestRepo portsrepo.RequestRepositoryFacade
	routing     portssvc.RoutingSvc
}

// NewRequestService creates a new request service
func NewRequestService(requestRepo portsrepo.RequestRepositoryFacade, routing portssvc.RoutingSvc) portssvc.RequestSvcFacade {
	return &requestService{requestRepo: requestRepo, routing: routing}
}

var _ portssvc.RequestSvcFacade = (*requestService)(nil)

// maxLeaveDays matches the NUMERIC(6, 2) leave_days column.
var maxLeaveDays = decimal.RequireFromString("9999.99")

func (s *requestService) SubmitRequest(ctx context.Context, actor *domain.User, req dto.CreateRequestRequest) (*domain.Request, error) {
	ts := now()
	request := domain.Request{
		RequestID:     uuid.NewString(),
		UserID:        actor.UserID,
		UserName:      actor.FullName,
		UserEmail:     actor.Email,
		CompanyID:     actor.CompanyID,
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		Category:      strings.TrimSpace(req.Category),
		Type:          strings.TrimSpace(req.Type),
		Priority:      strings.TrimSpace(req.Priority),
		Status:        domain.RequestStatusPending,
		DateSubmitted: ts,
		LastUpdated:   ts,
	}
	if request.Type == "" {
		request.Type = domain.RequestTypeGeneral
		if req.Leave != nil {
			request.Type = domain.RequestTypeLeave
		}
	}
	if request.Priority == "" {
		request.Priority = domain.DefaultPriority
	}

	if request.IsLeave() {
		leave, err := buildLeave(req.Leave)
		if err != nil {
			return nil, err
		}
		request.Leave = leave
		request.Deduct = req.Deduct
		if request.Category == "" {
			request.Category = domain.CategoryHR
		}
		if request.Title == "" {
			request.Title = domain.DefaultLeaveTitle
		}
		if request.Deduct && leave.Days.GreaterThan(actor.LeaveBalance.Get(leave.LeaveType)) {
			s.LogInfo(ctx, "Leave request exceeds balance",
				slog.String("leave_type", string(leave.LeaveType)),
				slog.String("days", leave.Days.String()))
			return nil, apperrors.NewInvalidStateError("Insufficient leave balance")
		}
	} else {
		if request.Title == "" {
			return nil, apperrors.NewValidationFailedError("Title is required")
		}
		if request.Category == "" {
			return nil, apperrors.NewValidationFailedError("Category is required")
		}
	}

	assignee, err := s.routing.ResolveAssignee(ctx, request.RoutingCategory(), actor.CompanyID)
	if err != nil {
		s.LogError(ctx, err, "Routing failed, saving request unassigned")
		assignee = nil
	}
	request.AssignedTo = assignee

	if err := s.requestRepo.SaveRequest(ctx, request); err != nil {
		s.LogError(ctx, err, "Failed to save request")
		return nil, err
	}

	s.LogInfo(ctx, "Request submitted",
		slog.String("request_id", request.RequestID),
		slog.String("type", request.Type),
		slog.Bool("assigned", assignee != nil))
	return &request, nil
}

func buildLeave(in *dto.LeaveInput) (*domain.LeaveDescriptor, error) {
	if in == nil {
		return nil, apperrors.NewValidationFailedError("Leave details are required")
	}
	start, err := time.Parse(domain.DateLayout, strings.TrimSpace(in.Start))
	if err != nil {
		return nil, apperrors.NewValidationFailedError("Invalid start date, expected YYYY-MM-DD")
	}
	end, err := time.Parse(domain.DateLayout, strings.TrimSpace(in.End))
	if err != nil {
		return nil, apperrors.NewValidationFailedError("Invalid end date, expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, apperrors.NewValidationFailedError("End date must not be before start date")
	}

	days := decimal.NewFromInt(domain.InclusiveDays(start, end))
	if in.Days != nil {
		if !in.Days.IsPositive() {
			return nil, apperrors.NewValidationFailedError("Leave days must be positive")
		}
		days = *in.Days
	}
	if days.GreaterThan(maxLeaveDays) || !days.Equal(days.Round(2)) {
		return nil, apperrors.NewValidationFailedError("Leave days must be at most 9999.99 with up to two decimals")
	}

	return &domain.LeaveDescriptor{
		StartDate: start.Format(domain.DateLayout),
		EndDate:   end.Format(domain.DateLayout),
		Days:      days,
		LeaveType: domain.LeaveType(in.LeaveType).Bucket(),
	}, nil
}

func (s *requestService) ListRequests(ctx context.Context, actor *domain.User, params dto.ListRequestsParams) ([]domain.Request, error) {
	filter := portsrepo.RequestFilter{
		CompanyID: actor.CompanyID,
		Status:    domain.RequestStatus(params.Status),
	}
	switch {
	case !actor.Role.IsAdmin():
		filter.UserID = actor.UserID
	case params.Assigned == "me":
		filter.AssignedTo = actor.UserID
	}

	requests, err := s.requestRepo.FindRequests(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list requests")
		return nil, err
	}
	slices.SortStableFunc(requests, func(a, b domain.Request) int {
		return b.DateSubmitted.Compare(a.DateSubmitted)
	})
	return requests, nil
}

func (s *requestService) GetRequest(ctx context.Context, actor *domain.User, requestID string) (*domain.Request, error) {
	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.CompanyID != actor.CompanyID {
		s.LogWarn(ctx, "Cross-company request access", slog.String("request_id", requestID))
		return nil, apperrors.NewForbiddenError("Access denied")
	}
	if request.UserID != actor.UserID && !actor.Role.IsAdmin() {
		return nil, apperrors.NewForbiddenError("Access denied")
	}
	return request, nil
}
