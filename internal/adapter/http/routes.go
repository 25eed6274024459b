package http

import (
	"taskdesk/internal/adapter/http/handlers"
	"taskdesk/internal/adapter/http/middleware"
	"taskdesk/internal/app"
	"taskdesk/internal/config"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.Engine,
	requireSession gin.HandlerFunc,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	taskHandler *handlers.TaskHandler,
	dataHandler *handlers.DataHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
		api.POST("/auth/register", userHandler.Register)
		api.POST("/auth/login", userHandler.Login)
	}

	private := api.Group("", requireSession)
	{
		private.POST("/auth/logout", userHandler.Logout)
		private.GET("/auth/me", userHandler.Me)
		private.GET("/users", userHandler.ListUsers)

		private.GET("/tasks", taskHandler.ListTasks)
		private.POST("/tasks", taskHandler.CreateTask)
		private.GET("/tasks/stats", taskHandler.Stats)
		private.GET("/tasks/categories", taskHandler.CategoryStats)
		private.GET("/tasks/overdue", taskHandler.OverdueTasks)
		private.GET("/tasks/due-soon", taskHandler.DueSoonTasks)
		private.GET("/tasks/:id", taskHandler.GetTask)
		private.PATCH("/tasks/:id", taskHandler.UpdateTask)
		private.DELETE("/tasks/:id", taskHandler.DeleteTask)
		private.POST("/tasks/:id/toggle", taskHandler.ToggleTask)

		private.GET("/data/export", dataHandler.Export)
		private.POST("/data/import", dataHandler.Import)
	}
}

// Mount builds the handlers for application and registers every route on r.
func Mount(r *gin.Engine, application *app.App, cfg *config.Config) {
	RegisterRoutes(
		r,
		middleware.RequireSession(application.Sessions, application.UserService),
		handlers.NewHealthHandler(application.Storage, cfg.AppName, cfg.StorageDriver),
		handlers.NewUserHandler(application.UserService, application.Sessions),
		handlers.NewTaskHandler(application.TaskService),
		handlers.NewDataHandler(application.DataService),
	)
}
