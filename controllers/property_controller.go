package controllers

import (
	"strconv"

	"github.com/Adeyinka-05/RealtyNest/config"
	"github.com/Adeyinka-05/RealtyNest/models"
	"github.com/Adeyinka-05/RealtyNest/utils"
	"github.com/gin-gonic/gin"
)

// CreatePropertyRequest represents the property creation request
type CreatePropertyRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Location    string  `json:"location" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageURL    string  `json:"image_url"`
}

// CreateProperty handles admin creation of a listing
func CreateProperty(c *gin.Context) {
	utils.LogInfo("CreateProperty called")
	_, exists := c.Get("admin")
	if !exists {
		utils.LogError("Admin not found in context")
		utils.Unauthorized(c, "Admin not found")
		return
	}

	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid property request: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	property := models.Property{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}

	if err := config.DB.Create(&property).Error; err != nil {
		utils.LogError("Failed to create property: %v", err)
		utils.InternalServerError(c, "Failed to create property", err.Error())
		return
	}
	utils.LogInfo("Created property ID: %d", property.ID)

	utils.Created(c, "Property created successfully", gin.H{"property": property})
}

// GetProperties returns active listings
func GetProperties(c *gin.Context) {
	utils.LogInfo("GetProperties called")

	page, limit := utils.GetPaginationParams(c)
	offset := (page - 1) * limit

	var properties []models.Property
	var total int64

	query := config.DB.Model(&models.Property{}).Where("is_active = ?", true)
	if location := c.Query("location"); location != "" {
		query = query.Where("location ILIKE ?", "%"+location+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count properties: %v", err)
		utils.InternalServerError(c, "Failed to fetch properties", err.Error())
		return
	}

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&properties).Error; err != nil {
		utils.LogError("Failed to fetch properties: %v", err)
		utils.InternalServerError(c, "Failed to fetch properties", err.Error())
		return
	}
	utils.LogInfo("Retrieved %d properties", len(properties))

	utils.SuccessWithPagination(c, "Properties retrieved successfully", gin.H{"properties": properties}, total, page, limit)
}

// GetPropertyDetails returns a single listing
func GetPropertyDetails(c *gin.Context) {
	utils.LogInfo("GetPropertyDetails called")

	propertyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid property ID format: %v", err)
		utils.BadRequest(c, "Invalid property ID", nil)
		return
	}

	var property models.Property
	if err := config.DB.First(&property, uint(propertyID)).Error; err != nil {
		utils.LogError("Property not found - ID: %d: %v", propertyID, err)
		utils.NotFound(c, "Property not found")
		return
	}

	utils.Success(c, "Property retrieved successfully", gin.H{"property": property})
}
