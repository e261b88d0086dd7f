package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/scholarbridge/backend/controllers"
	"github.com/scholarbridge/backend/middleware"
)

// initAdminRoutes initializes all admin-related routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		// Public admin routes
		admin.POST("/login", controllers.AdminLogin)
		admin.POST("/logout", controllers.AdminLogout)

		// Protected admin routes
		admin.Use(middleware.AdminAuthMiddleware())
		{
			// Reconciled payments view
			admin.GET("/payments", controllers.AdminListPayments)
			admin.GET("/payments/stats", controllers.AdminPaymentStats)
			admin.POST("/payments/selection-totals", controllers.AdminSelectionTotals)

			// Payment exports
			admin.GET("/payments/export", controllers.AdminExportPaymentsCSV)
			admin.GET("/payments/export/excel", controllers.AdminExportPaymentsExcel)
			admin.GET("/payments/export/pdf", controllers.AdminExportPaymentsPDF)

			// Zelle review workflow
			admin.GET("/zelle-payments", controllers.AdminListZellePayments)
			admin.PATCH("/zelle-payments/:id/review", controllers.AdminReviewZellePayment)
		}
	}
}
