package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vkapoor/studentinfo/internal/app/models"
	"github.com/vkapoor/studentinfo/internal/app/models/dto"
	"github.com/vkapoor/studentinfo/internal/app/services"
	"github.com/vkapoor/studentinfo/internal/middleware"
)

// SuspensionController handles the suspension workflow endpoints
type SuspensionController struct {
	suspensionService services.SuspensionService
}

// NewSuspensionController creates a new suspension controller
func NewSuspensionController(suspensionService services.SuspensionService) *SuspensionController {
	return &SuspensionController{
		suspensionService: suspensionService,
	}
}

// SuspendStudent suspends a student immediately on HOD authority
func (c *SuspensionController) SuspendStudent(ctx *gin.Context) {
	studentID, err := strconv.ParseInt(ctx.Param("studentId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid student ID!"))
		return
	}

	var req dto.SuspendRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Suspension reason required!"))
		return
	}

	userID, _ := middleware.GetUserID(ctx)

	if err := c.suspensionService.DirectSuspend(ctx.Request.Context(), studentID, req.Reason, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student suspended successfully!"))
}

// RequestSuspension records a faculty suspension request for HOD review
func (c *SuspensionController) RequestSuspension(ctx *gin.Context) {
	studentID, err := strconv.ParseInt(ctx.Param("studentId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid student ID!"))
		return
	}

	var req dto.SuspendRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Suspension reason required!"))
		return
	}

	userID, _ := middleware.GetUserID(ctx)

	if _, err := c.suspensionService.RequestSuspension(ctx.Request.Context(), studentID, req.Reason, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Suspension request submitted successfully!"))
}

// ListPendingRequests returns every request awaiting HOD review
func (c *SuspensionController) ListPendingRequests(ctx *gin.Context) {
	requests, err := c.suspensionService.ListPending(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RequestListResponse{
		Message:  "Pending requests retrieved successfully!",
		Requests: requests,
	})
}

// ResolveRequest approves or rejects a pending suspension request
func (c *SuspensionController) ResolveRequest(ctx *gin.Context) {
	requestID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request ID!"))
		return
	}

	var req dto.ResolveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Action must be approve or reject!"))
		return
	}

	userID, _ := middleware.GetUserID(ctx)

	status, err := c.suspensionService.ResolveRequest(ctx.Request.Context(), requestID, req.Action, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Request rejected successfully!"
	if status == models.RequestApproved {
		message = "Request approved successfully!"
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse(message))
}

// ListOwnRequests returns the caller's own suspension requests
func (c *SuspensionController) ListOwnRequests(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	requests, err := c.suspensionService.ListOwnRequests(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RequestListResponse{
		Message:  "Requests retrieved successfully!",
		Requests: requests,
	})
}
