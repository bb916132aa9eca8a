package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/officeflow/internal/core/domain"
	portsrepo "github.com/SscSPs/officeflow/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/officeflow/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionManager ---
type mockTxManager struct {
	mock.Mock
}

func (m *mockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *mockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *mockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, filter portsrepo.UserFilter) ([]domain.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUserProfile(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockUserRepository) FindUserByIDForUpdate(ctx context.Context, tx pgx.Tx, userID string) (*domain.User, error) {
	args := m.Called(ctx, tx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLeaveBalanceInTx(ctx context.Context, tx pgx.Tx, userID string, balance domain.LeaveBalance, updatedAt time.Time) error {
	return m.Called(ctx, tx, userID, balance, updatedAt).Error(0)
}

func (m *MockUserRepository) SaveUserInTx(ctx context.Context, tx pgx.Tx, user domain.User) error {
	return m.Called(ctx, tx, user).Error(0)
}

func (m *MockUserRepository) UpdateUserProfileInTx(ctx context.Context, tx pgx.Tx, user domain.User) error {
	return m.Called(ctx, tx, user).Error(0)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mockTxManager
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindCompanyByCode(ctx context.Context, companyCode string) (*domain.Company, error) {
	args := m.Called(ctx, companyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompanyInTx(ctx context.Context, tx pgx.Tx, company domain.Company) error {
	return m.Called(ctx, tx, company).Error(0)
}

func (m *MockCompanyRepository) UpdateCompanySettings(ctx context.Context, companyID string, settings domain.CompanySettings, updatedAt time.Time) error {
	return m.Called(ctx, companyID, settings, updatedAt).Error(0)
}

var _ portsrepo.CompanyRepositoryFacade = (*MockCompanyRepository)(nil)

// --- Mock RequestRepository ---
type MockRequestRepository struct {
	mockTxManager
}

func (m *MockRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.Request, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

func (m *MockRequestRepository) FindRequests(ctx context.Context, filter portsrepo.RequestFilter) ([]domain.Request, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Request), args.Error(1)
}

func (m *MockRequestRepository) SaveRequest(ctx context.Context, request domain.Request) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockRequestRepository) FindRequestByIDForUpdate(ctx context.Context, tx pgx.Tx, requestID string) (*domain.Request, error) {
	args := m.Called(ctx, tx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

func (m *MockRequestRepository) TransitionRequestInTx(ctx context.Context, tx pgx.Tx, request domain.Request, from domain.RequestStatus) error {
	return m.Called(ctx, tx, request, from).Error(0)
}

var _ portsrepo.RequestRepositoryWithTx = (*MockRequestRepository)(nil)

// --- Mock AdminRequestRepository ---
type MockAdminRequestRepository struct {
	mockTxManager
}

func (m *MockAdminRequestRepository) SaveAdminRequest(ctx context.Context, request domain.AdminRequest) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockAdminRequestRepository) FindAdminRequestByID(ctx context.Context, adminRequestID string) (*domain.AdminRequest, error) {
	args := m.Called(ctx, adminRequestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminRequest), args.Error(1)
}

func (m *MockAdminRequestRepository) FindAdminRequests(ctx context.Context, companyID string, status domain.AdminRequestStatus) ([]domain.AdminRequest, error) {
	args := m.Called(ctx, companyID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdminRequest), args.Error(1)
}

func (m *MockAdminRequestRepository) FindPendingAdminRequestByUser(ctx context.Context, userID string) (*domain.AdminRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminRequest), args.Error(1)
}

func (m *MockAdminRequestRepository) DecideAdminRequestInTx(ctx context.Context, tx pgx.Tx, request domain.AdminRequest) error {
	return m.Called(ctx, tx, request).Error(0)
}

var _ portsrepo.AdminRequestRepositoryWithTx = (*MockAdminRequestRepository)(nil)

// --- Mock IdentityRepository ---
type MockIdentityRepository struct {
	mock.Mock
}

func (m *MockIdentityRepository) SaveIdentity(ctx context.Context, identity domain.Identity) error {
	return m.Called(ctx, identity).Error(0)
}

func (m *MockIdentityRepository) FindIdentityByUID(ctx context.Context, uid string) (*domain.Identity, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

func (m *MockIdentityRepository) FindIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

func (m *MockIdentityRepository) DeleteIdentity(ctx context.Context, uid string) error {
	return m.Called(ctx, uid).Error(0)
}

var _ portsrepo.IdentityRepositoryFacade = (*MockIdentityRepository)(nil)

// --- Mock IdentityAccountSvc ---
type MockIdentityAccountService struct {
	mock.Mock
}

func (m *MockIdentityAccountService) CreateAccount(ctx context.Context, email, password, displayName string) (*domain.Identity, error) {
	args := m.Called(ctx, email, password, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

func (m *MockIdentityAccountService) DeleteAccount(ctx context.Context, uid string) error {
	return m.Called(ctx, uid).Error(0)
}

var _ portssvc.IdentityAccountSvc = (*MockIdentityAccountService)(nil)

// --- Mock RoutingSvc ---
type MockRoutingService struct {
	mock.Mock
}

func (m *MockRoutingService) ResolveAssignee(ctx context.Context, category, companyID string) (*string, error) {
	args := m.Called(ctx, category, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

var _ portssvc.RoutingSvc = (*MockRoutingService)(nil)

func strPtr(s string) *string { return &s }
