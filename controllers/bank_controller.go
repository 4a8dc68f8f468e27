package controllers

import (
	"github.com/Adeyinka-05/RealtyNest/config"
	"github.com/Adeyinka-05/RealtyNest/models"
	"github.com/Adeyinka-05/RealtyNest/utils"
	"github.com/gin-gonic/gin"
)

// AddBankDetailRequest represents a payout destination registration
type AddBankDetailRequest struct {
	BankName      string `json:"bank_name" binding:"required"`
	AccountName   string `json:"account_name" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	IsDefault     bool   `json:"is_default"`
}

// AddBankDetail registers a payout destination for the realtor
func AddBankDetail(c *gin.Context) {
	utils.LogInfo("AddBankDetail called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req AddBankDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid bank detail request: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	detail := models.BankDetail{
		UserID:        user.ID,
		BankName:      req.BankName,
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		IsDefault:     req.IsDefault,
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to begin transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to save bank details", nil)
		return
	}

	if req.IsDefault {
		if err := tx.Model(&models.BankDetail{}).Where("user_id = ?", user.ID).Update("is_default", false).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to clear default bank detail for user ID: %d: %v", user.ID, err)
			utils.InternalServerError(c, "Failed to save bank details", err.Error())
			return
		}
	}

	if err := tx.Create(&detail).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create bank detail for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to save bank details", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit bank detail for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to save bank details", err.Error())
		return
	}
	utils.LogInfo("Bank detail %d added for realtor ID: %d", detail.ID, user.ID)

	utils.Created(c, "Bank details saved successfully", gin.H{"bank_detail": detail})
}

// GetBankDetails returns the realtor's registered payout destinations
func GetBankDetails(c *gin.Context) {
	utils.LogInfo("GetBankDetails called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var details []models.BankDetail
	if err := config.DB.Where("user_id = ?", user.ID).Order("is_default DESC, created_at DESC").Find(&details).Error; err != nil {
		utils.LogError("Failed to fetch bank details for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch bank details", err.Error())
		return
	}

	utils.Success(c, "Bank details retrieved successfully", gin.H{"bank_details": details})
}
