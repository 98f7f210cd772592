package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vkapoor/studentinfo/internal/app/models/dto"
	"github.com/vkapoor/studentinfo/internal/app/services"
	"github.com/vkapoor/studentinfo/internal/middleware"
)

// FacultyController handles faculty registry endpoints
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new faculty controller
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

// AddFaculty registers a new faculty member
func (c *FacultyController) AddFaculty(ctx *gin.Context) {
	var req dto.AddFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse(dto.BindingErrorMessage(err)))
		return
	}

	if err := c.facultyService.AddFaculty(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Faculty added successfully!"))
}

// CreateFacultyLogin provisions a login account for an existing faculty member
func (c *FacultyController) CreateFacultyLogin(ctx *gin.Context) {
	facultyID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid faculty ID!"))
		return
	}

	var req dto.CreateFacultyLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Username and password required!"))
		return
	}

	if err := c.facultyService.CreateFacultyLogin(ctx.Request.Context(), facultyID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Faculty login created successfully!"))
}
