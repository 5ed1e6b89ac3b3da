package employee

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	employees := rg.Group("/employees")
	{
		employees.POST("", middleware.FileUpload("resume"), middleware.Idempotency(rdb), handler.Create)
		employees.GET("", handler.List)
		employees.GET("/options", handler.GetOptions)
		employees.GET("/:id", handler.GetByID)
		employees.GET("/:id/resume", handler.DownloadResume)
		employees.PUT("/:id", handler.Update)
		employees.PATCH("/:id/status", handler.UpdateStatus)
		employees.DELETE("/:id", handler.Delete)
	}
}
