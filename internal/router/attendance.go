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

// NewAttendance builds the attendance service engine.
func NewAttendance(cfg *config.AttendanceConfig, db *gorm.DB) *gin.Engine {
	r := newEngine(cfg.Env)

	directory := client.NewDirectoryClient(cfg.UserManagementURL)

	attendanceRepo := repository.NewAttendanceRepository(db)
	reportRepo := repository.NewReportRepository(db)

	attendanceSvc := service.NewAttendanceService(attendanceRepo, reportRepo, directory)
	attendanceH := handler.NewAttendanceHandler(attendanceSvc)

	r.GET("/health", handler.Health("attendance", db))

	jwtMW := middleware.JWTAuth(cfg.JWTSecret)

	attendance := r.Group("/attendance", jwtMW)
	{
		attendance.POST("/submit", attendanceH.Submit)
		attendance.GET("/records", attendanceH.Records)
		attendance.GET("/stats", attendanceH.Stats)

		// HR only; authorization resolved remotely via user-management and
		// failing closed on any lookup error.
		attendance.POST("/reports", middleware.RequireHR(directory), attendanceH.GenerateReport)
	}

	return r
}
