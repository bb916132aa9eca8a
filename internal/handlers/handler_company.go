package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/officeflow/internal/core/ports/services"
	"github.com/SscSPs/officeflow/internal/dto"
	"github.com/SscSPs/officeflow/internal/middleware"
	"github.com/gin-gonic/gin"
)

// companyHandler handles company onboarding and settings.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
	userService    portssvc.UserReaderSvc
}

func newCompanyHandler(cs portssvc.CompanySvcFacade, us portssvc.UserReaderSvc) *companyHandler {
	return &companyHandler{companyService: cs, userService: us}
}

// registerCompanyRoutes registers settings and directory routes. rg must load the current user.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade, userService portssvc.UserReaderSvc) {
	h := newCompanyHandler(companyService, userService)

	company := rg.Group("/company")
	{
		company.GET("/settings", h.getSettings)
		company.PUT("/settings", h.updateSettings) // Super admin only, checked by the service
		company.GET("/users", middleware.RequireAdmin(), h.listUsers)
	}
}

// verifyCompanyCode godoc
// @Summary Verify a company code
// @Description Resolves a join code to the company name and its departments
// @Tags company
// @Accept  json
// @Produce  json
// @Param   code body dto.VerifyCompanyCodeRequest true "Company code"
// @Success 200 {object} dto.VerifyCompanyCodeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Invalid company code"
// @Router /verify-company-code [post]
func (h *companyHandler) verifyCompanyCode(c *gin.Context) {
	var req dto.VerifyCompanyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	company, err := h.companyService.VerifyCompanyCode(c.Request.Context(), req.CompanyCode)
	if err != nil {
		handleServiceError(c, err, "Failed to verify company code")
		return
	}

	departments := company.Settings.Departments
	if departments == nil {
		departments = []string{}
	}
	c.JSON(http.StatusOK, dto.VerifyCompanyCodeResponse{
		Success:     true,
		CompanyName: company.Name,
		Departments: departments,
	})
}

// register godoc
// @Summary Register the signed-in identity
// @Description Creates a company with the caller as super admin, or joins an existing company by code
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   registration body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input, invalid company code or already registered"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Token does not match user"
// @Security BearerAuth
// @Router /auth/register [post]
func (h *companyHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		logger.Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Not authenticated"))
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, company, err := h.companyService.Register(c.Request.Context(), *principal, req)
	if err != nil {
		handleServiceError(c, err, "Failed to register user")
		return
	}

	logger.Info("User registered",
		slog.String("company_id", company.CompanyID),
		slog.String("role", string(user.Role)),
		slog.Bool("created_company", req.IsCreatingCompany))
	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Success: true,
		Message: "User registered successfully",
		User:    dto.ToUserResponse(user),
		Company: dto.ToCompanyResponse(company),
	})
}

// getSettings godoc
// @Summary Get company settings
// @Description Returns the caller's company including leave defaults, departments and job titles
// @Tags company
// @Produce  json
// @Success 200 {object} dto.CompanyEnvelope
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Security BearerAuth
// @Router /company/settings [get]
func (h *companyHandler) getSettings(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	company, err := h.companyService.GetCompanyByID(c.Request.Context(), actor.CompanyID)
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve company")
		return
	}

	c.JSON(http.StatusOK, dto.CompanyEnvelope{Success: true, Company: dto.ToCompanyResponse(company)})
}

// updateSettings godoc
// @Summary Update company settings
// @Description Partial update; omitted fields are left unchanged
// @Tags company
// @Accept  json
// @Produce  json
// @Param   settings body dto.UpdateCompanySettingsRequest true "Settings to change"
// @Success 200 {object} dto.CompanyEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Super admin access required"
// @Security BearerAuth
// @Router /company/settings [put]
func (h *companyHandler) updateSettings(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	company, err := h.companyService.UpdateSettings(c.Request.Context(), actor, req)
	if err != nil {
		handleServiceError(c, err, "Failed to update company settings")
		return
	}

	c.JSON(http.StatusOK, dto.CompanyEnvelope{
		Success: true,
		Message: "Company settings updated successfully",
		Company: dto.ToCompanyResponse(company),
	})
}

// listUsers godoc
// @Summary List company users
// @Tags company
// @Produce  json
// @Success 200 {object} dto.UsersEnvelope
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Security BearerAuth
// @Router /company/users [get]
func (h *companyHandler) listUsers(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	users, err := h.userService.ListCompanyUsers(c.Request.Context(), actor)
	if err != nil {
		handleServiceError(c, err, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, dto.ToUsersEnvelope(users))
}
