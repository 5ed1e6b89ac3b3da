package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler) {
	attendances := rg.Group("/attendance")
	{
		attendances.POST("", handler.Record)
		attendances.GET("", handler.List)
	}
}
