package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vkapoor/studentinfo/internal/app/controllers"
	"github.com/vkapoor/studentinfo/internal/app/models"
	"github.com/vkapoor/studentinfo/internal/app/models/dto"
	"github.com/vkapoor/studentinfo/internal/middleware"
)

// Controllers bundles the controller instances the router mounts
type Controllers struct {
	Auth       *controllers.AuthController
	Student    *controllers.StudentController
	Faculty    *controllers.FacultyController
	Suspension *controllers.SuspensionController
}

// RegisterRoutes mounts all API routes on the engine. Public routes carry no
// middleware; the hod and faculty groups compose token then role checks.
func RegisterRoutes(router *gin.Engine, ctrl Controllers, authMW *middleware.AuthMiddleware) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/login", ctrl.Auth.Login)

		api.GET("/students", ctrl.Student.ListStudents)
		api.GET("/students/active", ctrl.Student.ListActiveStudents)
		api.GET("/students/suspended", ctrl.Student.ListSuspendedStudents)

		hod := api.Group("/hod")
		hod.Use(authMW.RequireToken(), authMW.RequireRole(models.RoleHOD))
		{
			hod.POST("/students", ctrl.Student.AddStudent)
			hod.POST("/faculty", ctrl.Faculty.AddFaculty)
			hod.POST("/faculty/:id/login", ctrl.Faculty.CreateFacultyLogin)
			hod.POST("/suspend/:studentId", ctrl.Suspension.SuspendStudent)
			hod.GET("/requests", ctrl.Suspension.ListPendingRequests)
			hod.POST("/requests/:id/approve", ctrl.Suspension.ResolveRequest)
		}

		faculty := api.Group("/faculty")
		faculty.Use(authMW.RequireToken(), authMW.RequireRole(models.RoleHOD, models.RoleFaculty))
		{
			faculty.GET("/students", ctrl.Student.ListStudents)
			faculty.POST("/suspend/:studentId", ctrl.Suspension.RequestSuspension)
			faculty.GET("/requests", ctrl.Suspension.ListOwnRequests)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewMessageResponse("Endpoint not found!"))
	})
}
