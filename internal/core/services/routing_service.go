package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/officeflow/internal/core/domain"
	portsrepo "github.com/SscSPs/officeflow/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/officeflow/internal/core/ports/services"
)

// categoryDepartments maps a request category to the department whose admin handles it.
var categoryDepartments = map[string]string{
	domain.CategoryHR:          "HR",
	domain.CategoryIT:          "IT",
	domain.CategoryMaintenance: "Maintenance",
	domain.CategoryLeave:       "HR",
}

type routingService struct {
	BaseService
	userRepo portsrepo.UserReader
}

// NewRoutingService creates a new routing service
func NewRoutingService(userRepo portsrepo.UserReader) portssvc.RoutingSvc {
	return &routingService{userRepo: userRepo}
}

var _ portssvc.RoutingSvc = (*routingService)(nil)

// ResolveAssignee never fails: lookup errors are logged and read as "nobody found".
// When several admins share a department, which one is picked is up to the store.
func (s *routingService) ResolveAssignee(ctx context.Context, category, companyID string) (*string, error) {
	if department, ok := categoryDepartments[category]; ok {
		if id := s.firstUser(ctx, portsrepo.UserFilter{
			CompanyID:  companyID,
			Role:       domain.RoleAdmin,
			Department: department,
			Limit:      1,
		}); id != nil {
			return id, nil
		}
	}

	id := s.firstUser(ctx, portsrepo.UserFilter{
		CompanyID: companyID,
		Role:      domain.RoleSuperAdmin,
		Limit:     1,
	})
	if id == nil {
		s.LogWarn(ctx, "No assignee found for request",
			slog.String("category", category),
			slog.String("company_id", companyID))
	}
	return id, nil
}

func (s *routingService) firstUser(ctx context.Context, filter portsrepo.UserFilter) *string {
	users, err := s.userRepo.FindUsers(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Assignee lookup failed",
			slog.String("role", string(filter.Role)),
			slog.String("department", filter.Department))
		return nil
	}
	if len(users) == 0 {
		return nil
	}
	id := users[0].UserID
	return &id
}
