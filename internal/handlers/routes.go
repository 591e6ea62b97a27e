package handlers

import (
	"github.com/devtasks/devtasks/internal/auth"
	"github.com/devtasks/devtasks/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires the full route table onto r. Server-wide middleware
// (logging, CORS) is applied by the caller before this runs; tests mount the
// same table against an in-memory database.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.Manager) {
	healthHandler := NewHealthHandler(db)
	r.GET("/health", healthHandler.CheckHealth)

	authHandler := NewAuthHandler(db, tokens)
	projectHandler := NewProjectHandler(db)
	taskHandler := NewTaskHandler(db)

	api := r.Group("/api")
	{
		// Auth routes (public)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired(tokens))
		{
			protected.GET("/auth/me", authHandler.GetCurrentUser)

			protected.GET("/projects", projectHandler.List)
			protected.POST("/projects", projectHandler.Create)
			protected.GET("/projects/:id", projectHandler.GetByID)
			protected.PUT("/projects/:id", projectHandler.Update)
			protected.DELETE("/projects/:id", projectHandler.Delete)
			protected.GET("/projects/:id/tasks", projectHandler.ListTasks)

			protected.POST("/tasks", taskHandler.Create)
			protected.GET("/tasks/project/:projectId", taskHandler.ListByProject)
			protected.GET("/tasks/:id", taskHandler.GetByID)
			protected.PUT("/tasks/:id", taskHandler.Update)
			protected.DELETE("/tasks/:id", taskHandler.Delete)
		}
	}
}
