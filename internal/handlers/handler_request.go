package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/officeflow/internal/core/domain"
	portssvc "github.com/SscSPs/officeflow/internal/core/ports/services"
	"github.com/SscSPs/officeflow/internal/dto"
	"github.com/SscSPs/officeflow/internal/middleware"
	"github.com/gin-gonic/gin"
)

// requestHandler handles submission, listing and decisions on requests.
type requestHandler struct {
	requestService  portssvc.RequestSvcFacade
	approvalService portssvc.ApprovalSvc
}

func newRequestHandler(rs portssvc.RequestSvcFacade, as portssvc.ApprovalSvc) *requestHandler {
	return &requestHandler{requestService: rs, approvalService: as}
}

// registerRequestRoutes registers request routes. rg must load the current user.
func registerRequestRoutes(rg *gin.RouterGroup, requestService portssvc.RequestSvcFacade, approvalService portssvc.ApprovalSvc) {
	h := newRequestHandler(requestService, approvalService)

	requests := rg.Group("/leave-requests")
	{
		requests.POST("", h.createRequest)
		requests.GET("", h.listRequests)
		requests.GET("/:id", h.getRequest)
		requests.POST("/:id/approve", middleware.RequireAdmin(), h.approveRequest)
		requests.POST("/:id/reject", middleware.RequireAdmin(), h.rejectRequest)
	}
}

// createRequest godoc
// @Summary Submit a request
// @Description Submits a general or leave request. It is routed to the department admin for its category, falling back to the super admin.
// @Tags requests
// @Accept  json
// @Produce  json
// @Param   request body dto.CreateRequestRequest true "Request details"
// @Success 201 {object} dto.RequestEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Insufficient leave balance"
// @Security BearerAuth
// @Router /leave-requests [post]
func (h *requestHandler) createRequest(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := h.requestService.SubmitRequest(c.Request.Context(), actor, req)
	if err != nil {
		handleServiceError(c, err, "Failed to submit request")
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Request submitted",
		slog.String("request_id", created.RequestID),
		slog.String("category", created.Category),
		slog.Bool("assigned", created.AssignedTo != nil))
	c.JSON(http.StatusCreated, dto.RequestEnvelope{
		Success: true,
		Message: "Request submitted successfully",
		Request: dto.ToRequestResponse(created),
	})
}

// listRequests godoc
// @Summary List requests
// @Description Members see their own requests; admins see the whole company, optionally only those assigned to them
// @Tags requests
// @Produce  json
// @Param   status query string false "Filter by status" Enums(Pending, Approved, Rejected)
// @Param   assigned query string false "Only requests assigned to the caller" Enums(me)
// @Success 200 {object} dto.RequestsEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /leave-requests [get]
func (h *requestHandler) listRequests(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var params dto.ListRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	requests, err := h.requestService.ListRequests(c.Request.Context(), actor, params)
	if err != nil {
		handleServiceError(c, err, "Failed to list requests")
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestsEnvelope(requests))
}

// getRequest godoc
// @Summary Get a request by ID
// @Tags requests
// @Produce  json
// @Param   id path string true "Request ID"
// @Success 200 {object} dto.RequestEnvelope
// @Failure 403 {object} dto.ErrorResponse "Access denied"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Security BearerAuth
// @Router /leave-requests/{id} [get]
func (h *requestHandler) getRequest(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	request, err := h.requestService.GetRequest(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve request")
		return
	}

	c.JSON(http.StatusOK, dto.RequestEnvelope{Success: true, Request: dto.ToRequestResponse(request)})
}

// approveRequest godoc
// @Summary Approve a pending request
// @Description Deducts the leave balance of the requester when the request asks for it
// @Tags requests
// @Produce  json
// @Param   id path string true "Request ID"
// @Success 200 {object} dto.RequestEnvelope
// @Failure 403 {object} dto.ErrorResponse "Admin access required or request already processed"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Security BearerAuth
// @Router /leave-requests/{id}/approve [post]
func (h *requestHandler) approveRequest(c *gin.Context) {
	h.decide(c, domain.RequestStatusApproved)
}

// rejectRequest godoc
// @Summary Reject a pending request
// @Tags requests
// @Produce  json
// @Param   id path string true "Request ID"
// @Success 200 {object} dto.RequestEnvelope
// @Failure 403 {object} dto.ErrorResponse "Admin access required or request already processed"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Security BearerAuth
// @Router /leave-requests/{id}/reject [post]
func (h *requestHandler) rejectRequest(c *gin.Context) {
	h.decide(c, domain.RequestStatusRejected)
}

func (h *requestHandler) decide(c *gin.Context, status domain.RequestStatus) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	requestID := c.Param("id")

	var (
		decided *domain.Request
		err     error
	)
	if status == domain.RequestStatusApproved {
		decided, err = h.approvalService.Approve(c.Request.Context(), requestID, actor)
	} else {
		decided, err = h.approvalService.Reject(c.Request.Context(), requestID, actor)
	}
	if err != nil {
		handleServiceError(c, err, "Failed to process request")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Request decided",
		slog.String("request_id", decided.RequestID),
		slog.String("status", string(decided.Status)))
	c.JSON(http.StatusOK, dto.RequestEnvelope{
		Success: true,
		Message: "Request " + string(decided.Status),
		Request: dto.ToRequestResponse(decided),
	})
}
