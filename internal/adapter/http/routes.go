package http

import (
	"github.com/gin-gonic/gin"

	"github.com/sabique2003/Tasklite/internal/adapter/http/handlers"
	"github.com/sabique2003/Tasklite/internal/adapter/http/middleware"
)

// RegisterStoreRoutes mounts the /tasks collection.
func RegisterStoreRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, taskHandler *handlers.TaskHandler) {
	registerHealthRoutes(r, healthHandler)

	tasks := r.Group("/tasks")
	tasks.Use(middleware.LanguageMiddleware())
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}
}

// RegisterBoardRoutes mounts the board page and its actions. The engine
// must already carry the board templates.
func RegisterBoardRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, boardHandler *handlers.BoardHandler) {
	registerHealthRoutes(r, healthHandler)

	r.GET("/", middleware.LanguageMiddleware(), boardHandler.ShowBoard)
	r.GET("/api/board", boardHandler.GetBoard)

	board := r.Group("/board")
	board.Use(middleware.LanguageMiddleware())
	{
		board.POST("/form", boardHandler.SubmitForm)
		board.POST("/edit/cancel", boardHandler.CancelEdit)
		board.POST("/tasks/:id/edit", boardHandler.BeginEdit)
		board.POST("/tasks/:id/delete", boardHandler.DeleteTask)
		board.GET("/tasks/:id/pdf", boardHandler.DownloadPDF)
		board.POST("/drop", boardHandler.Drop)
		board.GET("/export.xlsx", boardHandler.ExportBoard)
	}
}

func registerHealthRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
	}
}
