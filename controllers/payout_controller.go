package controllers

import (
	"math"

	"github.com/Adeyinka-05/RealtyNest/config"
	"github.com/Adeyinka-05/RealtyNest/models"
	"github.com/Adeyinka-05/RealtyNest/utils"
	"github.com/gin-gonic/gin"
)

// RequestPayoutRequest represents a realtor's withdrawal request
type RequestPayoutRequest struct {
	Amount       float64 `json:"amount" binding:"required"`
	BankDetailID uint    `json:"bank_detail_id" binding:"required"`
}

// RequestPayout creates a withdrawal request. The chosen bank detail is
// snapshotted onto the payout row so later edits to the destination do not
// rewrite history.
func RequestPayout(c *gin.Context) {
	utils.LogInfo("RequestPayout called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req RequestPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid payout request: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if req.Amount <= 0 || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		utils.LogError("Invalid payout amount: %v", req.Amount)
		utils.BadRequest(c, "Amount must be a positive number", nil)
		return
	}

	var bankDetail models.BankDetail
	if err := config.DB.Where("id = ? AND user_id = ?", req.BankDetailID, user.ID).First(&bankDetail).Error; err != nil {
		utils.LogError("Bank detail not found - ID: %d, User ID: %d: %v", req.BankDetailID, user.ID, err)
		utils.NotFound(c, "Bank details not found")
		return
	}

	summary, err := loadRealtorSummary(user.ID)
	if err != nil {
		utils.LogError("Failed to compute balance for realtor ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to compute balance", err.Error())
		return
	}

	if req.Amount > summary.AvailableBalance {
		utils.LogError("Payout request exceeds available balance - Realtor ID: %d, Requested: %.2f, Available: %.2f",
			user.ID, req.Amount, summary.AvailableBalance)
		utils.BadRequest(c, "Requested amount exceeds available balance", gin.H{
			"available_balance": summary.AvailableBalance,
		})
		return
	}

	payout := models.Payout{
		RealtorID:     user.ID,
		Amount:        req.Amount,
		Status:        models.PayoutStatusPending,
		BankName:      bankDetail.BankName,
		AccountName:   bankDetail.AccountName,
		AccountNumber: bankDetail.AccountNumber,
	}

	if err := config.DB.Create(&payout).Error; err != nil {
		utils.LogError("Failed to create payout for realtor ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create withdrawal request", err.Error())
		return
	}
	utils.LogInfo("Payout %d requested by realtor ID: %d for %.2f", payout.ID, user.ID, payout.Amount)

	utils.Created(c, "Withdrawal request submitted", gin.H{"payout": payout})
}

// GetMyPayouts returns the authenticated realtor's withdrawal requests
func GetMyPayouts(c *gin.Context) {
	utils.LogInfo("GetMyPayouts called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	page, limit := utils.GetPaginationParams(c)
	offset := (page - 1) * limit

	query := config.DB.Model(&models.Payout{}).Where("realtor_id = ?", user.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count payouts for realtor ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch withdrawals", err.Error())
		return
	}

	var payouts []models.Payout
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&payouts).Error; err != nil {
		utils.LogError("Failed to fetch payouts for realtor ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch withdrawals", err.Error())
		return
	}
	utils.LogInfo("Retrieved %d payouts for realtor ID: %d", len(payouts), user.ID)

	utils.SuccessWithPagination(c, "Withdrawals retrieved successfully", gin.H{"payouts": payouts}, total, page, limit)
}

// loadRealtorSummary recomputes a realtor's aggregates from their full
// commission and payout sets. Nothing is cached; every caller gets a fresh
// projection of the current rows.
func loadRealtorSummary(realtorID uint) (utils.RealtorSummary, error) {
	var commissions []models.Commission
	if err := config.DB.Where("realtor_id = ?", realtorID).Find(&commissions).Error; err != nil {
		return utils.RealtorSummary{}, err
	}

	var payouts []models.Payout
	if err := config.DB.Where("realtor_id = ?", realtorID).Find(&payouts).Error; err != nil {
		return utils.RealtorSummary{}, err
	}

	return utils.ComputeRealtorSummary(commissions, payouts), nil
}
