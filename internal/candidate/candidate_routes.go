package candidate

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	candidates := rg.Group("/candidates")
	{
		candidates.POST("", middleware.FileUpload("resume"), middleware.Idempotency(rdb), handler.Create)
		candidates.GET("", handler.List)
		candidates.GET("/:id", handler.GetByID)
		candidates.GET("/:id/resume", handler.DownloadResume)
		candidates.PATCH("/:id/status", handler.UpdateStatus)
		candidates.DELETE("/:id", handler.Delete)
	}
}
