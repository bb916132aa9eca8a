package handlers_test

import (
	"context"

	"github.com/SscSPs/officeflow/internal/core/domain"
	portssvc "github.com/SscSPs/officeflow/internal/core/ports/services"
	"github.com/SscSPs/officeflow/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock IdentityService ---
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) VerifyToken(ctx context.Context, token string) (*domain.Principal, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Principal), args.Error(1)
}

func (m *MockIdentityService) SignUp(ctx context.Context, email, password, displayName string) (*domain.Identity, *domain.AccessToken, error) {
	args := m.Called(ctx, email, password, displayName)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Identity), args.Get(1).(*domain.AccessToken), args.Error(2)
}

func (m *MockIdentityService) Login(ctx context.Context, email, password string) (*domain.Identity, *domain.AccessToken, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Identity), args.Get(1).(*domain.AccessToken), args.Error(2)
}

func (m *MockIdentityService) GoogleSignIn(ctx context.Context, idToken string) (*domain.Identity, *domain.AccessToken, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Identity), args.Get(1).(*domain.AccessToken), args.Error(2)
}

func (m *MockIdentityService) CreateAccount(ctx context.Context, email, password, displayName string) (*domain.Identity, error) {
	args := m.Called(ctx, email, password, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

func (m *MockIdentityService) DeleteAccount(ctx context.Context, uid string) error {
	return m.Called(ctx, uid).Error(0)
}

var _ portssvc.IdentitySvcFacade = (*MockIdentityService)(nil)

// --- Mock CompanyService ---
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyService) VerifyCompanyCode(ctx context.Context, companyCode string) (*domain.Company, error) {
	args := m.Called(ctx, companyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyService) UpdateSettings(ctx context.Context, actor *domain.User, req dto.UpdateCompanySettingsRequest) (*domain.Company, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyService) Register(ctx context.Context, principal domain.Principal, req dto.RegisterRequest) (*domain.User, *domain.Company, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(*domain.Company), args.Error(2)
}

var _ portssvc.CompanySvcFacade = (*MockCompanyService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserForActor(ctx context.Context, actor *domain.User, userID string) (*domain.User, error) {
	args := m.Called(ctx, actor, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListCompanyUsers(ctx context.Context, actor *domain.User) ([]domain.User, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, actor *domain.User, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	args := m.Called(ctx, actor, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock RequestService ---
type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) SubmitRequest(ctx context.Context, actor *domain.User, req dto.CreateRequestRequest) (*domain.Request, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

func (m *MockRequestService) ListRequests(ctx context.Context, actor *domain.User, params dto.ListRequestsParams) ([]domain.Request, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Request), args.Error(1)
}

func (m *MockRequestService) GetRequest(ctx context.Context, actor *domain.User, requestID string) (*domain.Request, error) {
	args := m.Called(ctx, actor, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

var _ portssvc.RequestSvcFacade = (*MockRequestService)(nil)

// --- Mock ApprovalService ---
type MockApprovalService struct {
	mock.Mock
}

func (m *MockApprovalService) Approve(ctx context.Context, requestID string, actor *domain.User) (*domain.Request, error) {
	args := m.Called(ctx, requestID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

func (m *MockApprovalService) Reject(ctx context.Context, requestID string, actor *domain.User) (*domain.Request, error) {
	args := m.Called(ctx, requestID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

var _ portssvc.ApprovalSvc = (*MockApprovalService)(nil)

// --- Mock ProvisioningService ---
type MockProvisioningService struct {
	mock.Mock
}

func (m *MockProvisioningService) CreateAdmin(ctx context.Context, actor *domain.User, req dto.CreateAdminRequest) (*domain.User, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockProvisioningService) PromoteToAdmin(ctx context.Context, actor *domain.User, req dto.PromoteToAdminRequest) (*domain.User, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockProvisioningService) UpdateUserRole(ctx context.Context, actor *domain.User, userID string, req dto.UpdateUserRoleRequest) (*domain.User, error) {
	args := m.Called(ctx, actor, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockProvisioningService) DeleteUser(ctx context.Context, actor *domain.User, userID string) error {
	return m.Called(ctx, actor, userID).Error(0)
}

func (m *MockProvisioningService) RequestAdmin(ctx context.Context, actor *domain.User) (*domain.AdminRequest, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminRequest), args.Error(1)
}

func (m *MockProvisioningService) ListPendingAdminRequests(ctx context.Context, actor *domain.User) ([]domain.AdminRequest, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdminRequest), args.Error(1)
}

func (m *MockProvisioningService) ApproveAdminRequest(ctx context.Context, actor *domain.User, adminRequestID, department string) (*domain.AdminRequest, *domain.User, error) {
	args := m.Called(ctx, actor, adminRequestID, department)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var user *domain.User
	if u := args.Get(1); u != nil {
		user = u.(*domain.User)
	}
	return args.Get(0).(*domain.AdminRequest), user, args.Error(2)
}

func (m *MockProvisioningService) RejectAdminRequest(ctx context.Context, actor *domain.User, adminRequestID string) (*domain.AdminRequest, error) {
	args := m.Called(ctx, actor, adminRequestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminRequest), args.Error(1)
}

var _ portssvc.ProvisioningSvcFacade = (*MockProvisioningService)(nil)
