// Package router assembles the gin engine and its routes.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "taskmanager_backend/internal/feature/auth/transport/handler"
	taskhandler "taskmanager_backend/internal/feature/tasks/transport/handler"
	"taskmanager_backend/internal/platform/http/handler"
	jwtmw "taskmanager_backend/internal/platform/jwt"
)

// NewRouter builds the gin engine. Registration, login and the password-reset
// endpoints are public; the profile and every task route sit behind the auth
// middleware.
func NewRouter(authH *authhandler.AuthHandler, taskH *taskhandler.TaskHandler,
	verifier jwtmw.Verifier, users jwtmw.UserResolver) *gin.Engine {
	r := gin.Default()

	authRequired := jwtmw.AuthRequired(verifier, users)

	// Liveness probe.
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)
		auth.POST("/forgot-password", authH.ForgotPassword)
		auth.POST("/reset-password/:token", authH.ResetPassword)
		auth.GET("/profile", authRequired, authH.Profile)
	}

	tasks := r.Group("/tasks")
	tasks.Use(authRequired)
	{
		tasks.GET("", taskH.List)
		tasks.POST("", taskH.Create)
		tasks.PUT("/:id", taskH.Update)
		tasks.DELETE("/:id", taskH.Delete)
	}

	return r
}
