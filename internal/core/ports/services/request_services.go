package services

import (
	"context"

	"github.com/SscSPs/officeflow/internal/core/domain"
	"github.com/SscSPs/officeflow/internal/dto"
)

// RequestSvcFacade defines submission and listing of requests.
type RequestSvcFacade interface {
	// SubmitRequest validates, routes and stores a new Pending request.
	SubmitRequest(ctx context.Context, actor *domain.User, req dto.CreateRequestRequest) (*domain.Request, error)

	// ListRequests lists the actor's own requests, or the company's for admins, newest first.
	ListRequests(ctx context.Context, actor *domain.User, params dto.ListRequestsParams) ([]domain.Request, error)

	// GetRequest retrieves a request visible to the actor.
	GetRequest(ctx context.Context, actor *domain.User, requestID string) (*domain.Request, error)
}
