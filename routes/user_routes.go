package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/scholarbridge/backend/controllers"
	"github.com/scholarbridge/backend/middleware"
)

// initUserRoutes initializes all user-related routes
func initUserRoutes(router *gin.RouterGroup) {
	// Protected routes (require authentication)
	protected := router.Group("/user")
	protected.Use(middleware.AuthMiddleware())
	{
		// Zelle payment submission
		protected.POST("/payments/zelle", controllers.SubmitZellePayment)
	}
}
