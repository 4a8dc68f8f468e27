package routes

import (
	"github.com/Adeyinka-05/RealtyNest/controllers"
	"github.com/Adeyinka-05/RealtyNest/middleware"
	"github.com/gin-gonic/gin"
)

// initRealtorRoutes initializes all realtor-facing routes
func initRealtorRoutes(router *gin.RouterGroup) {
	// Public routes
	router.POST("/signup", controllers.Register)
	router.POST("/login", controllers.Login)
	router.GET("/properties", controllers.GetProperties)
	router.GET("/properties/:id", controllers.GetPropertyDetails)

	// Protected realtor routes
	realtor := router.Group("/realtor")
	realtor.Use(middleware.AuthMiddleware())
	{
		realtor.GET("/dashboard", controllers.GetDashboard)
		realtor.GET("/referrals", controllers.GetReferralTree)

		realtor.POST("/receipts", controllers.SubmitReceipt)
		realtor.GET("/receipts", controllers.GetMyReceipts)

		realtor.GET("/commissions", controllers.GetMyCommissions)

		realtor.POST("/bank-details", controllers.AddBankDetail)
		realtor.GET("/bank-details", controllers.GetBankDetails)

		realtor.POST("/payouts", controllers.RequestPayout)
		realtor.GET("/payouts", controllers.GetMyPayouts)

		realtor.GET("/statement", controllers.DownloadEarningsStatement)
	}
}
