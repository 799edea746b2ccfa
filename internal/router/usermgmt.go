package router

import (
	"github.com/dandyZicky/wfh-attendance/internal/client"
	"github.com/dandyZicky/wfh-attendance/internal/config"
	"github.com/dandyZicky/wfh-attendance/internal/handler"
	"github.com/dandyZicky/wfh-attendance/internal/middleware"
	"github.com/dandyZicky/wfh-attendance/internal/repository"
	"github.com/dandyZicky/wfh-attendance/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewUserMgmt builds the user-management service engine.
func NewUserMgmt(cfg *config.UserMgmtConfig, db *gorm.DB) *gin.Engine {
	r := newEngine(cfg.Env)

	authClient := client.NewAuthClient(cfg.AuthServiceURL)

	employeeRepo := repository.NewEmployeeRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)

	userSvc := service.NewUserService(employeeRepo, authClient)
	departmentSvc := service.NewDepartmentService(departmentRepo)

	usersH := handler.NewUsersHandler(userSvc)
	departmentsH := handler.NewDepartmentsHandler(departmentSvc)

	r.GET("/health", handler.Health("user-management", db))

	// Inter-service primitives: no auth, the siblings call these on every
	// HR-gated request and attendance submission.
	r.GET("/users/department/:user_key", usersH.GetDepartmentByUserKey)
	r.GET("/users/departments/:id/members", usersH.GetDepartmentMembers)

	// The HR gate resolves departments locally through the user service
	// rather than calling back into this process over HTTP.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	hrMW := middleware.RequireHR(userSvc)

	users := r.Group("/users", jwtMW, hrMW)
	{
		users.POST("", usersH.Create)
		users.GET("/:id", usersH.GetByID)
		users.PUT("/:id", usersH.Update)
		users.DELETE("/:id", usersH.Delete)
	}

	departments := r.Group("/departments", jwtMW, hrMW)
	{
		departments.GET("", departmentsH.List)
		departments.GET("/:id", departmentsH.GetByID)
	}

	return r
}
