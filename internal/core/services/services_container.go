package services

import (
	portsrepo "github.com/SscSPs/officeflow/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/officeflow/internal/core/ports/services"
	"github.com/SscSPs/officeflow/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, identityOptions ...IdentityOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Identity = NewIdentityService(cfg, repos.IdentityRepo, identityOptions...)
	container.Company = NewCompanyService(repos.CompanyRepo, repos.UserRepo)
	container.User = NewUserService(repos.UserRepo, repos.CompanyRepo)

	// Routing is shared by submission; approval and provisioning depend on stores only.
	container.Routing = NewRoutingService(repos.UserRepo)
	container.Request = NewRequestService(repos.RequestRepo, container.Routing)
	container.Approval = NewApprovalService(repos.RequestRepo, repos.UserRepo)
	container.Provisioning = NewProvisioningService(container.Identity, repos.CompanyRepo, repos.UserRepo, repos.AdminRequestRepo)

	return container
}
