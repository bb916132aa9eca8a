package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/officeflow/internal/core/ports/services"
	"github.com/SscSPs/officeflow/internal/dto"
	"github.com/SscSPs/officeflow/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler handles admin provisioning and the admin request flow.
type adminHandler struct {
	provisioningService portssvc.ProvisioningSvcFacade
}

func newAdminHandler(ps portssvc.ProvisioningSvcFacade) *adminHandler {
	return &adminHandler{provisioningService: ps}
}

// registerAdminRoutes registers provisioning routes. rg must load the current user.
func registerAdminRoutes(rg *gin.RouterGroup, provisioningService portssvc.ProvisioningSvcFacade) {
	h := newAdminHandler(provisioningService)

	rg.POST("/request-admin", h.requestAdmin)

	superAdmin := rg.Group("", middleware.RequireSuperAdmin())
	{
		superAdmin.POST("/create-admin", h.createAdmin)
		superAdmin.POST("/promote-to-admin", h.promoteToAdmin)
		superAdmin.GET("/admin-requests", h.listAdminRequests)
		superAdmin.POST("/admin-requests/:id/approve", h.approveAdminRequest)
		superAdmin.POST("/admin-requests/:id/reject", h.rejectAdminRequest)
	}
}

// createAdmin godoc
// @Summary Create an admin account
// @Description Creates a local identity and an admin of the given department in the caller's company
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   admin body dto.CreateAdminRequest true "Admin details"
// @Success 201 {object} dto.UserEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input, unknown department or email already registered"
// @Failure 403 {object} dto.ErrorResponse "Super admin access required"
// @Security BearerAuth
// @Router /create-admin [post]
func (h *adminHandler) createAdmin(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	admin, err := h.provisioningService.CreateAdmin(c.Request.Context(), actor, req)
	if err != nil {
		handleServiceError(c, err, "Failed to create admin")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Admin created",
		slog.String("admin_id", admin.UserID),
		slog.String("department", admin.Department))
	c.JSON(http.StatusCreated, dto.UserEnvelope{
		Success: true,
		Message: "Admin created successfully",
		User:    dto.ToUserResponse(admin),
	})
}

// promoteToAdmin godoc
// @Summary Promote a member to admin
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   promotion body dto.PromoteToAdminRequest true "Member and department"
// @Success 200 {object} dto.UserEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unknown department"
// @Failure 403 {object} dto.ErrorResponse "User is already an admin or super admin"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /promote-to-admin [post]
func (h *adminHandler) promoteToAdmin(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.PromoteToAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.provisioningService.PromoteToAdmin(c.Request.Context(), actor, req)
	if err != nil {
		handleServiceError(c, err, "Failed to promote user")
		return
	}

	c.JSON(http.StatusOK, dto.UserEnvelope{
		Success: true,
		Message: "User promoted to admin successfully",
		User:    dto.ToUserResponse(user),
	})
}

// requestAdmin godoc
// @Summary Ask to become an admin
// @Tags admin
// @Produce  json
// @Success 201 {object} dto.AdminRequestEnvelope
// @Failure 400 {object} dto.ErrorResponse "A pending request already exists"
// @Failure 403 {object} dto.ErrorResponse "User is already an admin or super admin"
// @Security BearerAuth
// @Router /request-admin [post]
func (h *adminHandler) requestAdmin(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	adminRequest, err := h.provisioningService.RequestAdmin(c.Request.Context(), actor)
	if err != nil {
		handleServiceError(c, err, "Failed to submit admin request")
		return
	}

	c.JSON(http.StatusCreated, dto.AdminRequestEnvelope{
		Success: true,
		Message: "Admin request submitted successfully",
		Request: dto.ToAdminRequestResponse(adminRequest),
	})
}

// listAdminRequests godoc
// @Summary List pending admin requests
// @Tags admin
// @Produce  json
// @Success 200 {object} dto.AdminRequestsEnvelope
// @Failure 403 {object} dto.ErrorResponse "Super admin access required"
// @Security BearerAuth
// @Router /admin-requests [get]
func (h *adminHandler) listAdminRequests(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	requests, err := h.provisioningService.ListPendingAdminRequests(c.Request.Context(), actor)
	if err != nil {
		handleServiceError(c, err, "Failed to list admin requests")
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminRequestsEnvelope(requests))
}

// approveAdminRequest godoc
// @Summary Approve an admin request
// @Description Promotes the requester. The department defaults to the company's first department.
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   id path string true "Admin request ID"
// @Param   decision body dto.DecideAdminRequestRequest false "Department of the new admin"
// @Success 200 {object} dto.AdminRequestDecisionResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown department"
// @Failure 403 {object} dto.ErrorResponse "Request has already been processed"
// @Failure 404 {object} dto.ErrorResponse "Admin request not found"
// @Security BearerAuth
// @Router /admin-requests/{id}/approve [post]
func (h *adminHandler) approveAdminRequest(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.DecideAdminRequestRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}

	adminRequest, user, err := h.provisioningService.ApproveAdminRequest(c.Request.Context(), actor, c.Param("id"), req.Department)
	if err != nil {
		handleServiceError(c, err, "Failed to approve admin request")
		return
	}

	resp := dto.AdminRequestDecisionResponse{
		Success: true,
		Message: "Admin request approved",
		Request: dto.ToAdminRequestResponse(adminRequest),
	}
	if user != nil {
		u := dto.ToUserResponse(user)
		resp.User = &u
	}
	c.JSON(http.StatusOK, resp)
}

// rejectAdminRequest godoc
// @Summary Reject an admin request
// @Tags admin
// @Produce  json
// @Param   id path string true "Admin request ID"
// @Success 200 {object} dto.AdminRequestEnvelope
// @Failure 403 {object} dto.ErrorResponse "Request has already been processed"
// @Failure 404 {object} dto.ErrorResponse "Admin request not found"
// @Security BearerAuth
// @Router /admin-requests/{id}/reject [post]
func (h *adminHandler) rejectAdminRequest(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	adminRequest, err := h.provisioningService.RejectAdminRequest(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to reject admin request")
		return
	}

	c.JSON(http.StatusOK, dto.AdminRequestEnvelope{
		Success: true,
		Message: "Admin request rejected",
		Request: dto.ToAdminRequestResponse(adminRequest),
	})
}
