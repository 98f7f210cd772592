package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vkapoor/studentinfo/internal/app/models/dto"
	"github.com/vkapoor/studentinfo/internal/app/services"
	"github.com/vkapoor/studentinfo/internal/middleware"
)

// StudentController handles student registry endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new student controller
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// AddStudent registers a new student
func (c *StudentController) AddStudent(ctx *gin.Context) {
	var req dto.AddStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse(dto.BindingErrorMessage(err)))
		return
	}

	if err := c.studentService.AddStudent(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Student added successfully!"))
}

// ListStudents returns every student with status
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentListResponse{
		Message:  "Students retrieved successfully!",
		Students: students,
	})
}

// ListActiveStudents returns students whose status is ACTIVE
func (c *StudentController) ListActiveStudents(ctx *gin.Context) {
	students, err := c.studentService.ListActive(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentListResponse{
		Message:  "Active students retrieved successfully!",
		Students: students,
	})
}

// ListSuspendedStudents returns students whose status is SUSPENDED
func (c *StudentController) ListSuspendedStudents(ctx *gin.Context) {
	students, err := c.studentService.ListSuspended(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentListResponse{
		Message:  "Suspended students retrieved successfully!",
		Students: students,
	})
}
