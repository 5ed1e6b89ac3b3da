package auth

import (
	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authMW gin.HandlerFunc) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		// Login dibatasi per-IP seperti limiter di sistem lama
		authGroup.POST("/login", middleware.RateLimitByIP(rate.Limit(5.0/60.0), 5), h.Login)
		authGroup.GET("/verify-token", h.VerifyToken)
		authGroup.GET("/me", authMW, h.Me)
	}
}
