package utils

// Application constants
const (
	// Application name
	AppName = "RealtyNest"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// JWT token expiration (24 hours)
	JWTExpiration = "24h"

	// Maximum receipt proof references per submission
	MaxReceiptURLs = 5
)
