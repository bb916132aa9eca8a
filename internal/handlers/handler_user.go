package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/officeflow/internal/core/ports/services"
	"github.com/SscSPs/officeflow/internal/dto"
	"github.com/SscSPs/officeflow/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService         portssvc.UserSvcFacade
	provisioningService portssvc.AdminAccountSvc
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade, ps portssvc.AdminAccountSvc) *userHandler {
	return &userHandler{
		userService:         us,
		provisioningService: ps,
	}
}

// registerUserRoutes registers all user-related routes. rg must load the current user.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, provisioningService portssvc.AdminAccountSvc) {
	h := newUserHandler(userService, provisioningService)

	rg.GET("/auth/user-data", h.getCurrentUser)

	users := rg.Group("/users")
	{
		users.GET("/:id", h.getUser)                                         // Own, or admin of the same company
		users.PUT("/:id/profile", h.updateProfile)                           // Own, or super admin
		users.PUT("/:id/role", middleware.RequireSuperAdmin(), h.updateRole) // Super admin only
		users.DELETE("/:id", middleware.RequireSuperAdmin(), h.deleteUser)   // Super admin only
	}
}

// getCurrentUser godoc
// @Summary Get the caller's user record
// @Tags users
// @Produce  json
// @Success 200 {object} dto.UserEnvelope
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /auth/user-data [get]
func (h *userHandler) getCurrentUser(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.UserEnvelope{Success: true, User: dto.ToUserResponse(actor)})
}

// getUser godoc
// @Summary Get a user by ID
// @Tags users
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} dto.UserEnvelope
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserForActor(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve user")
		return
	}

	c.JSON(http.StatusOK, dto.UserEnvelope{Success: true, User: dto.ToUserResponse(user)})
}

// updateProfile godoc
// @Summary Update department and job title
// @Tags users
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   profile body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.UserEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unknown department"
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id}/profile [put]
func (h *userHandler) updateProfile(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		handleServiceError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, dto.UserEnvelope{
		Success: true,
		Message: "Profile updated successfully",
		User:    dto.ToUserResponse(user),
	})
}

// updateRole godoc
// @Summary Change a user's role
// @Tags users
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   role body dto.UpdateUserRoleRequest true "New role"
// @Success 200 {object} dto.UserEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Invalid role or super admin target"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id}/role [put]
func (h *userHandler) updateRole(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.provisioningService.UpdateUserRole(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		handleServiceError(c, err, "Failed to update user role")
		return
	}

	c.JSON(http.StatusOK, dto.UserEnvelope{
		Success: true,
		Message: "User role updated successfully",
		User:    dto.ToUserResponse(user),
	})
}

// deleteUser godoc
// @Summary Delete a user
// @Description Removes the identity and the directory record. The super admin cannot be deleted.
// @Tags users
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Cannot delete super admin"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.provisioningService.DeleteUser(c.Request.Context(), actor, c.Param("id")); err != nil {
		handleServiceError(c, err, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "User deleted successfully"})
}
