package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/officeflow/internal/apperrors"
	"github.com/SscSPs/officeflow/internal/core/domain"
	portssvc "github.com/SscSPs/officeflow/internal/core/ports/services"
	"github.com/SscSPs/officeflow/internal/dto"
	"github.com/SscSPs/officeflow/internal/handlers"
	"github.com/SscSPs/officeflow/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	memberToken     = "member-token"
	adminToken      = "admin-token"
	superAdminToken = "superadmin-token"
	newcomerToken   = "newcomer-token"
)

type HandlersTestSuite struct {
	suite.Suite
	router       *gin.Engine
	identity     *MockIdentityService
	company      *MockCompanyService
	users        *MockUserService
	requests     *MockRequestService
	approvals    *MockApprovalService
	provisioning *MockProvisioningService

	member     *domain.User
	admin      *domain.User
	superAdmin *domain.User
}

func (s *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.identity = new(MockIdentityService)
	s.company = new(MockCompanyService)
	s.users = new(MockUserService)
	s.requests = new(MockRequestService)
	s.approvals = new(MockApprovalService)
	s.provisioning = new(MockProvisioningService)

	s.member = &domain.User{UserID: "u-member", FullName: "Mia Member", Role: domain.RoleMember, Department: "Engineering", CompanyID: "c-1"}
	s.admin = &domain.User{UserID: "u-admin", FullName: "Ada Admin", Role: domain.RoleAdmin, Department: "HR", CompanyID: "c-1"}
	s.superAdmin = &domain.User{UserID: "u-super", FullName: "Sam Super", Role: domain.RoleSuperAdmin, Department: "IT", CompanyID: "c-1"}

	for token, user := range map[string]*domain.User{memberToken: s.member, adminToken: s.admin, superAdminToken: s.superAdmin} {
		s.identity.On("VerifyToken", mock.Anything, token).Return(&domain.Principal{UserID: user.UserID, Email: user.UserID + "@acme.test"}, nil).Maybe()
		s.users.On("GetUserByID", mock.Anything, user.UserID).Return(user, nil).Maybe()
	}
	s.identity.On("VerifyToken", mock.Anything, newcomerToken).Return(&domain.Principal{UserID: "u-new", Email: "new@acme.test"}, nil).Maybe()
	s.users.On("GetUserByID", mock.Anything, "u-new").Return(nil, apperrors.NewNotFoundError("User not found")).Maybe()

	s.router = s.newRouter("100-M")
}

func (s *HandlersTestSuite) newRouter(loginRate string) *gin.Engine {
	cfg := &config.Config{IsProduction: true, LoginRateLimit: loginRate}
	container := &portssvc.ServiceContainer{
		Identity:     s.identity,
		Company:      s.company,
		User:         s.users,
		Request:      s.requests,
		Approval:     s.approvals,
		Provisioning: s.provisioning,
	}
	r := gin.New()
	s.Require().NoError(handlers.RegisterRoutes(r, cfg, container, nil))
	return r
}

func (s *HandlersTestSuite) TearDownTest() {
	s.company.AssertExpectations(s.T())
	s.requests.AssertExpectations(s.T())
	s.approvals.AssertExpectations(s.T())
	s.provisioning.AssertExpectations(s.T())
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlersTestSuite) decodeError(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var resp dto.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.False(resp.Success)
	return resp
}

// --- Public routes ---

func (s *HandlersTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *HandlersTestSuite) TestLegacyFormEndpointsAreGone() {
	for _, path := range []string{"/register-form-api", "/login-form-api"} {
		w := s.do(http.MethodPost, path, "", map[string]string{"email": "a@b.c"})
		s.Equal(http.StatusGone, w.Code, path)
		s.Contains(s.decodeError(w).Message, "/api/auth/signup")
	}
}

func (s *HandlersTestSuite) TestSignUp_Success() {
	identity := &domain.Identity{UID: "u-1", Email: "jo@acme.test", DisplayName: "Jo", Provider: domain.ProviderLocal}
	token := &domain.AccessToken{Token: "signed", ExpiresAt: time.Now().Add(time.Hour)}
	s.identity.On("SignUp", mock.Anything, "jo@acme.test", "secret1", "Jo").Return(identity, token, nil).Once()

	w := s.do(http.MethodPost, "/api/auth/signup", "", dto.SignUpRequest{Email: "jo@acme.test", Password: "secret1", FullName: "Jo"})

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.AuthResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Success)
	s.Equal("signed", resp.Token)
	s.Equal("u-1", resp.Identity.UID)
	s.Equal("local", resp.Identity.Provider)
}

func (s *HandlersTestSuite) TestSignUp_ValidationUsesJSONFieldNames() {
	w := s.do(http.MethodPost, "/api/auth/signup", "", map[string]string{"password": "abc", "fullName": "Jo"})

	s.Equal(http.StatusBadRequest, w.Code)
	msg := s.decodeError(w).Message
	s.Contains(msg, "email is required")
	s.Contains(msg, "password must be at least 6 characters")
	s.identity.AssertNotCalled(s.T(), "SignUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestLogin_InvalidCredentials() {
	s.identity.On("Login", mock.Anything, "jo@acme.test", "wrong").
		Return(nil, nil, apperrors.NewUnauthorizedError("Invalid email or password")).Once()

	w := s.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "jo@acme.test", Password: "wrong"})

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Invalid email or password", s.decodeError(w).Message)
}

func (s *HandlersTestSuite) TestLogin_RateLimited() {
	s.router = s.newRouter("2-M")
	s.identity.On("Login", mock.Anything, "jo@acme.test", "wrong").
		Return(nil, nil, apperrors.NewUnauthorizedError("Invalid email or password")).Twice()

	body := dto.LoginRequest{Email: "jo@acme.test", Password: "wrong"}
	s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/api/auth/login", "", body).Code)
	s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/api/auth/login", "", body).Code)

	w := s.do(http.MethodPost, "/api/auth/login", "", body)
	s.Equal(http.StatusTooManyRequests, w.Code)
	s.Equal("0", w.Header().Get("X-RateLimit-Remaining"))
}

func (s *HandlersTestSuite) TestGoogleSignIn_InvalidToken() {
	s.identity.On("GoogleSignIn", mock.Anything, "bogus").
		Return(nil, nil, apperrors.NewUnauthorizedError("Invalid Google token")).Once()

	w := s.do(http.MethodPost, "/api/auth/google", "", dto.GoogleSignInRequest{IDToken: "bogus"})

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Invalid Google token", s.decodeError(w).Message)
}

func (s *HandlersTestSuite) TestVerifyCompanyCode() {
	s.company.On("VerifyCompanyCode", mock.Anything, "ACME1234").
		Return(&domain.Company{CompanyID: "c-1", Name: "Acme", Settings: domain.CompanySettings{Departments: []string{"IT", "HR"}}}, nil).Once()
	s.company.On("VerifyCompanyCode", mock.Anything, "NOPE").
		Return(nil, apperrors.NewNotFoundError("Invalid company code")).Once()

	w := s.do(http.MethodPost, "/api/verify-company-code", "", dto.VerifyCompanyCodeRequest{CompanyCode: "ACME1234"})
	s.Equal(http.StatusOK, w.Code)
	var resp dto.VerifyCompanyCodeResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Acme", resp.CompanyName)
	s.Equal([]string{"IT", "HR"}, resp.Departments)

	w = s.do(http.MethodPost, "/api/verify-company-code", "", dto.VerifyCompanyCodeRequest{CompanyCode: "NOPE"})
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Invalid company code", s.decodeError(w).Message)
}

// --- Registration ---

func (s *HandlersTestSuite) TestRegister_CreatesCompanyForUnregisteredPrincipal() {
	req := dto.RegisterRequest{FullName: "Nina New", CompanyName: "Newco", IsCreatingCompany: true}
	user := &domain.User{UserID: "u-new", FullName: "Nina New", Role: domain.RoleSuperAdmin, Department: "IT", CompanyID: "c-9"}
	company := &domain.Company{CompanyID: "c-9", Name: "Newco", CompanyCode: "NEWC1234"}
	s.company.On("Register", mock.Anything, domain.Principal{UserID: "u-new", Email: "new@acme.test"}, req).Return(user, company, nil).Once()

	w := s.do(http.MethodPost, "/api/auth/register", newcomerToken, req)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.RegisterResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("superadmin", resp.User.Role)
	s.Equal("NEWC1234", resp.Company.CompanyCode)
}

func (s *HandlersTestSuite) TestRegister_RequiresCompanyCodeWhenJoining() {
	w := s.do(http.MethodPost, "/api/auth/register", newcomerToken, dto.RegisterRequest{FullName: "Nina New"})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(s.decodeError(w).Message, "companyCode is required")
}

func (s *HandlersTestSuite) TestRegister_NoToken() {
	w := s.do(http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{FullName: "Nina New"})
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("No token provided", s.decodeError(w).Message)
}

// --- Users ---

func (s *HandlersTestSuite) TestUserData() {
	w := s.do(http.MethodGet, "/api/auth/user-data", memberToken, nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.UserEnvelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("u-member", resp.User.ID)
	s.Equal("member", resp.User.Role)
}

func (s *HandlersTestSuite) TestUserData_UnregisteredPrincipal() {
	w := s.do(http.MethodGet, "/api/auth/user-data", newcomerToken, nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("User not found", s.decodeError(w).Message)
}

func (s *HandlersTestSuite) TestGetUser_AccessDenied() {
	s.users.On("GetUserForActor", mock.Anything, s.member, "u-admin").
		Return(nil, apperrors.NewForbiddenError("Access denied")).Once()

	w := s.do(http.MethodGet, "/api/users/u-admin", memberToken, nil)

	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("Access denied", s.decodeError(w).Message)
}

func (s *HandlersTestSuite) TestUpdateProfile_UnknownDepartment() {
	dept := "Marketing"
	req := dto.UpdateProfileRequest{Department: &dept}
	s.users.On("UpdateProfile", mock.Anything, s.member, "u-member", req).
		Return(nil, apperrors.NewValidationFailedError("Unknown department: Marketing")).Once()

	w := s.do(http.MethodPut, "/api/users/u-member/profile", memberToken, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Unknown department: Marketing", s.decodeError(w).Message)
}

func (s *HandlersTestSuite) TestDeleteUser_RequiresSuperAdmin() {
	w := s.do(http.MethodDelete, "/api/users/u-member", adminToken, nil)

	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("Super admin access required", s.decodeError(w).Message)
	s.provisioning.AssertNotCalled(s.T(), "DeleteUser", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestDeleteUser_SuperAdminTargetRefused() {
	s.provisioning.On("DeleteUser", mock.Anything, s.superAdmin, "u-super").
		Return(apperrors.NewForbiddenError("Cannot delete super admin")).Once()

	w := s.do(http.MethodDelete, "/api/users/u-super", superAdminToken, nil)

	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("Cannot delete super admin", s.decodeError(w).Message)
}

func (s *HandlersTestSuite) TestUpdateRole_Success() {
	req := dto.UpdateUserRoleRequest{Role: "admin"}
	promoted := *s.member
	promoted.Role = domain.RoleAdmin
	s.provisioning.On("UpdateUserRole", mock.Anything, s.superAdmin, "u-member", req).Return(&promoted, nil).Once()

	w := s.do(http.MethodPut, "/api/users/u-member/role", superAdminToken, req)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.UserEnvelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("admin", resp.User.Role)
}

// --- Company ---

func (s *HandlersTestSuite) TestCompanySettings_Get() {
	s.company.On("GetCompanyByID", mock.Anything, "c-1").
		Return(&domain.Company{CompanyID: "c-1", Name: "Acme", Settings: domain.DefaultCompanySettings()}, nil).Once()

	w := s.do(http.MethodGet, "/api/company/settings", memberToken, nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.CompanyEnvelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Acme", resp.Company.Name)
	s.NotNil(resp.Company.Settings.JobTitles)
}

func (s *HandlersTestSuite) TestCompanySettings_UpdateForbiddenForAdmin() {
	s.company.On("UpdateSettings", mock.Anything, s.admin, mock.AnythingOfType("dto.UpdateCompanySettingsRequest")).
		Return(nil, apperrors.NewForbiddenError("Super admin access required")).Once()

	w := s.do(http.MethodPut, "/api/company/settings", adminToken, map[string]any{"annualLeave": 25})

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *HandlersTestSuite) TestCompanySettings_Update() {
	updated := &domain.Company{CompanyID: "c-1", Name: "Acme", Settings: domain.DefaultCompanySettings()}
	updated.Settings.AnnualLeave = decimal.NewFromInt(25)
	s.company.On("UpdateSettings", mock.Anything, s.superAdmin, mock.MatchedBy(func(req dto.UpdateCompanySettingsRequest) bool {
		return req.AnnualLeave != nil && req.AnnualLeave.Equal(decimal.NewFromInt(25)) && req.SickLeave == nil
	})).Return(updated, nil).Once()

	w := s.do(http.MethodPut, "/api/company/settings", superAdminToken, map[string]any{"annualLeave": 25})

	s.Equal(http.StatusOK, w.Code)
	var resp dto.CompanyEnvelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Company.Settings.AnnualLeave.Equal(decimal.NewFromInt(25)))
}

func (s *HandlersTestSuite) TestCompanyUsers_RequiresAdmin() {
	w := s.do(http.MethodGet, "/api/company/users", memberToken, nil)
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("Admin access required", s.decodeError(w).Message)

	s.users.On("ListCompanyUsers", mock.Anything, s.admin).Return([]domain.User{*s.admin, *s.member}, nil).Once()
	w = s.do(http.MethodGet, "/api/company/users", adminToken, nil)
	s.Equal(http.StatusOK, w.Code)
	var resp dto.UsersEnvelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp.Users, 2)
}

// --- Requests ---

func (s *HandlersTestSuite) TestCreateRequest_Leave() {
	req := dto.CreateRequestRequest{
		Leave:  &dto.LeaveInput{Start: "2024-03-04", End: "2024-03-06", LeaveType: "annual"},
		Deduct: true,
	}
	assignee := "u-admin"
	created := &domain.Request{
		RequestID:  "r-1",
		UserID:     "u-member",
		CompanyID:  "c-1",
		Title:      "Leave Request",
		Category:   "HR",
		Type:       domain.RequestTypeLeave,
		Priority:   "Normal",
		Status:     domain.RequestStatusPending,
		AssignedTo: &assignee,
		Deduct:     true,
		Leave:      &domain.LeaveDescriptor{StartDate: "2024-03-04", EndDate: "2024-03-06", Days: decimal.NewFromInt(3), LeaveType: domain.LeaveTypeAnnual},
	}
	s.requests.On("SubmitRequest", mock.Anything, s.member, req).Return(created, nil).Once()

	w := s.do(http.MethodPost, "/api/leave-requests", memberToken, req)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.RequestEnvelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Pending", resp.Request.Status)
	s.Require().NotNil(resp.Request.AssignedTo)
	s.Equal("u-admin", *resp.Request.AssignedTo)
	s.Require().NotNil(resp.Request.Leave)
	s.True(resp.Request.Leave.Days.Equal(decimal.NewFromInt(3)))
}

func (s *HandlersTestSuite) TestCreateRequest_BadLeaveDate() {
	w := s.do(http.MethodPost, "/api/leave-requests", memberToken, map[string]any{
		"leave": map[string]string{"start": "04/03/2024", "end": "2024-03-06"},
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(s.decodeError(w).Message, "start must be a date in YYYY-MM-DD format")
}

func (s *HandlersTestSuite) TestCreateRequest_InsufficientBalance() {
	s.requests.On("SubmitRequest", mock.Anything, s.member, mock.Anything).
		Return(nil, apperrors.NewInvalidStateError("Insufficient leave balance")).Once()

	w := s.do(http.MethodPost, "/api/leave-requests", memberToken, dto.CreateRequestRequest{
		Leave:  &dto.LeaveInput{Start: "2024-03-04", End: "2024-03-30"},
		Deduct: true,
	})

	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("Insufficient leave balance", s.decodeError(w).Message)
}

func (s *HandlersTestSuite) TestListRequests() {
	params := dto.ListRequestsParams{Status: "Pending", Assigned: "me"}
	s.requests.On("ListRequests", mock.Anything, s.admin, params).
		Return([]domain.Request{{RequestID: "r-1", Status: domain.RequestStatusPending}}, nil).Once()

	w := s.do(http.MethodGet, "/api/leave-requests?status=Pending&assigned=me", adminToken, nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.RequestsEnvelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp.Requests, 1)
}

func (s *HandlersTestSuite) TestListRequests_InvalidStatus() {
	w := s.do(http.MethodGet, "/api/leave-requests?status=Done", adminToken, nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(s.decodeError(w).Message, "status must be one of")
}

func (s *HandlersTestSuite) TestGetRequest_NotFound() {
	s.requests.On("GetRequest", mock.Anything, s.member, "r-404").
		Return(nil, apperrors.NewNotFoundError("Request not found")).Once()

	w := s.do(http.MethodGet, "/api/leave-requests/r-404", memberToken, nil)

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Request not found", s.decodeError(w).Message)
}

func (s *HandlersTestSuite) TestApprove_MemberForbidden() {
	w := s.do(http.MethodPost, "/api/leave-requests/r-1/approve", memberToken, nil)

	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("Admin access required", s.decodeError(w).Message)
	s.approvals.AssertNotCalled(s.T(), "Approve", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestApprove_Success() {
	decided := &domain.Request{RequestID: "r-1", Status: domain.RequestStatusApproved, DecidedBy: &s.admin.UserID}
	s.approvals.On("Approve", mock.Anything, "r-1", s.admin).Return(decided, nil).Once()

	w := s.do(http.MethodPost, "/api/leave-requests/r-1/approve", adminToken, nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.RequestEnvelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Approved", resp.Request.Status)
	s.Equal("Request Approved", resp.Message)
}

func (s *HandlersTestSuite) TestReject_AlreadyProcessed() {
	s.approvals.On("Reject", mock.Anything, "r-1", s.admin).
		Return(nil, apperrors.NewInvalidStateError("Request has already been processed")).Once()

	w := s.do(http.MethodPost, "/api/leave-requests/r-1/reject", adminToken, nil)

	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("Request has already been processed", s.decodeError(w).Message)
}

func (s *HandlersTestSuite) TestInternalErrorsDoNotLeak() {
	s.approvals.On("Approve", mock.Anything, "r-1", s.admin).
		Return(nil, apperrors.NewInternalServerError("Failed to begin transaction", errors.New("dial tcp: connection refused"))).Once()

	w := s.do(http.MethodPost, "/api/leave-requests/r-1/approve", adminToken, nil)

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal("Failed to process request", s.decodeError(w).Message)
	s.NotContains(w.Body.String(), "connection refused")
}

// --- Admin provisioning ---

func (s *HandlersTestSuite) TestCreateAdmin() {
	req := dto.CreateAdminRequest{FullName: "Hal Head", Email: "hal@acme.test", Password: "secret1", Department: "Finance"}
	created := &domain.User{UserID: "u-hal", FullName: "Hal Head", Role: domain.RoleAdmin, Department: "Finance", JobTitle: "Head of Finance", CompanyID: "c-1"}
	s.provisioning.On("CreateAdmin", mock.Anything, s.superAdmin, req).Return(created, nil).Once()

	w := s.do(http.MethodPost, "/api/create-admin", superAdminToken, req)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.UserEnvelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Head of Finance", resp.User.JobTitle)
}

func (s *HandlersTestSuite) TestPromoteToAdmin_AlreadyAdmin() {
	req := dto.PromoteToAdminRequest{UserID: "u-admin", Department: "HR"}
	s.provisioning.On("PromoteToAdmin", mock.Anything, s.superAdmin, req).
		Return(nil, apperrors.NewInvalidStateError("User is already an admin or super admin")).Once()

	w := s.do(http.MethodPost, "/api/promote-to-admin", superAdminToken, req)

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *HandlersTestSuite) TestRequestAdmin_DuplicatePending() {
	s.provisioning.On("RequestAdmin", mock.Anything, s.member).
		Return(nil, apperrors.NewConflictError("You already have a pending admin request")).Once()

	w := s.do(http.MethodPost, "/api/request-admin", memberToken, nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("You already have a pending admin request", s.decodeError(w).Message)
}

func (s *HandlersTestSuite) TestAdminRequests_SuperAdminOnly() {
	w := s.do(http.MethodGet, "/api/admin-requests", adminToken, nil)
	s.Equal(http.StatusForbidden, w.Code)

	s.provisioning.On("ListPendingAdminRequests", mock.Anything, s.superAdmin).
		Return([]domain.AdminRequest{{AdminRequestID: "ar-1", UserID: "u-member", Status: domain.AdminRequestPending}}, nil).Once()
	w = s.do(http.MethodGet, "/api/admin-requests", superAdminToken, nil)
	s.Equal(http.StatusOK, w.Code)
	var resp dto.AdminRequestsEnvelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().Len(resp.Requests, 1)
	s.Equal("pending", resp.Requests[0].Status)
}

func (s *HandlersTestSuite) TestApproveAdminRequest_WithoutBody() {
	approved := &domain.AdminRequest{AdminRequestID: "ar-1", UserID: "u-member", Status: domain.AdminRequestApproved}
	promoted := *s.member
	promoted.Role = domain.RoleAdmin
	promoted.Department = "IT"
	s.provisioning.On("ApproveAdminRequest", mock.Anything, s.superAdmin, "ar-1", "").Return(approved, &promoted, nil).Once()

	w := s.do(http.MethodPost, "/api/admin-requests/ar-1/approve", superAdminToken, nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.AdminRequestDecisionResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("approved", resp.Request.Status)
	s.Require().NotNil(resp.User)
	s.Equal("admin", resp.User.Role)
}

func (s *HandlersTestSuite) TestApproveAdminRequest_WithDepartment() {
	approved := &domain.AdminRequest{AdminRequestID: "ar-1", Status: domain.AdminRequestApproved}
	s.provisioning.On("ApproveAdminRequest", mock.Anything, s.superAdmin, "ar-1", "Finance").Return(approved, nil, nil).Once()

	w := s.do(http.MethodPost, "/api/admin-requests/ar-1/approve", superAdminToken, dto.DecideAdminRequestRequest{Department: "Finance"})

	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlersTestSuite) TestRejectAdminRequest_NotFound() {
	s.provisioning.On("RejectAdminRequest", mock.Anything, s.superAdmin, "ar-x").
		Return(nil, apperrors.NewNotFoundError("Admin request not found")).Once()

	w := s.do(http.MethodPost, "/api/admin-requests/ar-x/reject", superAdminToken, nil)

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Admin request not found", s.decodeError(w).Message)
}
