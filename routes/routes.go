package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.Default()

	// API version group
	api := router.Group("/v1")
	{
		initRealtorRoutes(api)
		initAdminRoutes(api)
	}

	return router
}
