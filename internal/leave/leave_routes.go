package leave

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler) {
	leaves := rg.Group("/leaves")
	{
		leaves.POST("", middleware.FileUpload("document"), handler.Create)
		leaves.GET("", handler.List)
		leaves.GET("/:id", handler.GetByID)
		leaves.GET("/:id/document", handler.DownloadDocument)
		leaves.PATCH("/:id/status", handler.UpdateStatus)
	}
}
