package controllers

import (
	"github.com/Adeyinka-05/RealtyNest/config"
	"github.com/Adeyinka-05/RealtyNest/models"
	"github.com/Adeyinka-05/RealtyNest/utils"
	"github.com/gin-gonic/gin"
)

// GetMyCommissions returns the authenticated realtor's commissions
func GetMyCommissions(c *gin.Context) {
	utils.LogInfo("GetMyCommissions called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	page, limit := utils.GetPaginationParams(c)
	offset := (page - 1) * limit

	query := config.DB.Model(&models.Commission{}).Where("realtor_id = ?", user.ID)
	if commissionType := c.Query("type"); commissionType != "" {
		query = query.Where("commission_type = ?", commissionType)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count commissions for realtor ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch commissions", err.Error())
		return
	}

	var commissions []models.Commission
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&commissions).Error; err != nil {
		utils.LogError("Failed to fetch commissions for realtor ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch commissions", err.Error())
		return
	}
	utils.LogInfo("Retrieved %d commissions for realtor ID: %d", len(commissions), user.ID)

	utils.SuccessWithPagination(c, "Commissions retrieved successfully", gin.H{"commissions": commissions}, total, page, limit)
}
