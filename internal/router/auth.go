// Package router wires each service's dependency graph and routes.
// Dependency graph: Handler ← Service ← Repository ← DB
package router

import (
	"github.com/dandyZicky/wfh-attendance/internal/config"
	"github.com/dandyZicky/wfh-attendance/internal/handler"
	"github.com/dandyZicky/wfh-attendance/internal/middleware"
	"github.com/dandyZicky/wfh-attendance/internal/repository"
	"github.com/dandyZicky/wfh-attendance/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewAuth builds the auth service engine.
func NewAuth(cfg *config.AuthConfig, db *gorm.DB) *gin.Engine {
	r := newEngine(cfg.Env)

	credRepo := repository.NewCredentialRepository(db)
	authSvc := service.NewAuthService(credRepo, cfg.JWTSecret)
	authH := handler.NewAuthHandler(authSvc)

	r.GET("/health", handler.Health("auth", db))

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/logout", authH.Logout)
		auth.GET("/verify", middleware.JWTAuth(cfg.JWTSecret), authH.Verify)

		// Internal routes, called by user-management during employee creation.
		auth.POST("/register", authH.Register)
		auth.DELETE("/users/:user_key", authH.DeleteUser)
	}

	return r
}

// newEngine applies the middleware chain shared by all three services
// (order matters).
func newEngine(env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	return r
}
