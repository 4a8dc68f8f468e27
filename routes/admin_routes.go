package routes

import (
	"github.com/Adeyinka-05/RealtyNest/controllers"
	"github.com/Adeyinka-05/RealtyNest/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes all admin-related routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		// Public admin routes
		admin.POST("/login", controllers.AdminLogin)

		// Protected admin routes
		admin.Use(middleware.AdminAuthMiddleware())
		{
			// Property management
			admin.POST("/properties", controllers.CreateProperty)

			// Receipt review
			admin.GET("/receipts", controllers.GetReceipts)
			admin.PATCH("/receipts/:id/review", controllers.MarkReceiptUnderReview)
			admin.PATCH("/receipts/:id/approve", controllers.ApproveReceipt)
			admin.PATCH("/receipts/:id/reject", controllers.RejectReceipt)

			// Commission review
			admin.GET("/commissions", controllers.GetCommissions)
			admin.PATCH("/commissions/:id/status", controllers.UpdateCommissionStatus)

			// Payout review
			admin.GET("/payouts", controllers.GetPayouts)
			admin.PATCH("/payouts/:id/status", controllers.UpdatePayoutStatus)

			// Referrals and realtor detail
			admin.GET("/referrals", controllers.GetReferrals)
			admin.GET("/realtors/:id", controllers.GetRealtorDetail)

			// Platform stats and exports
			admin.GET("/stats", controllers.GetPlatformStats)
			admin.GET("/ledger/export", controllers.DownloadLedgerExcel)
		}
	}
}
