package controllers

import (
	"strconv"
	"time"

	"github.com/Adeyinka-05/RealtyNest/config"
	"github.com/Adeyinka-05/RealtyNest/models"
	"github.com/Adeyinka-05/RealtyNest/utils"
	"github.com/gin-gonic/gin"
)

// UpdatePayoutStatusRequest represents the payout status change request
type UpdatePayoutStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

// payoutTransitions maps a target payout status to the statuses it may be
// reached from. Paid and rejected are terminal.
var payoutTransitions = map[string][]string{
	models.PayoutStatusApproved: {models.PayoutStatusPending},
	models.PayoutStatusPaid:     {models.PayoutStatusApproved},
	models.PayoutStatusRejected: {models.PayoutStatusPending, models.PayoutStatusApproved},
}

// GetPayouts returns payout rows for admin review
func GetPayouts(c *gin.Context) {
	utils.LogInfo("GetPayouts called")
	_, exists := c.Get("admin")
	if !exists {
		utils.LogError("Admin not found in context")
		utils.Unauthorized(c, "Admin not found")
		return
	}

	page, limit := utils.GetPaginationParams(c)
	offset := (page - 1) * limit

	query := config.DB.Model(&models.Payout{})
	if realtorID := c.Query("realtor_id"); realtorID != "" {
		query = query.Where("realtor_id = ?", realtorID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count payouts: %v", err)
		utils.InternalServerError(c, "Failed to fetch payouts", err.Error())
		return
	}

	var payouts []models.Payout
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&payouts).Error; err != nil {
		utils.LogError("Failed to fetch payouts: %v", err)
		utils.InternalServerError(c, "Failed to fetch payouts", err.Error())
		return
	}
	utils.LogInfo("Retrieved %d payouts for review", len(payouts))

	utils.SuccessWithPagination(c, "Payouts retrieved successfully", gin.H{"payouts": payouts}, total, page, limit)
}

// UpdatePayoutStatus moves a payout along pending -> approved -> paid, or to
// rejected with a reason. Approval checks that the amount fits inside the
// requester's recomputed available balance; whether a failed check blocks or
// only warns comes from configuration.
func UpdatePayoutStatus(c *gin.Context) {
	utils.LogInfo("UpdatePayoutStatus called")
	_, exists := c.Get("admin")
	if !exists {
		utils.LogError("Admin not found in context")
		utils.Unauthorized(c, "Admin not found")
		return
	}

	payoutID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid payout ID format: %v", err)
		utils.BadRequest(c, "Invalid payout ID", nil)
		return
	}

	var req UpdatePayoutStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid status request for payout ID: %d: %v", payoutID, err)
		utils.BadRequest(c, "Status is required", err.Error())
		return
	}

	allowedFrom, known := payoutTransitions[req.Status]
	if !known {
		utils.LogError("Unknown payout status requested: %s", req.Status)
		utils.BadRequest(c, "Invalid status", gin.H{"status": req.Status})
		return
	}

	if req.Status == models.PayoutStatusRejected && req.Reason == "" {
		utils.LogError("Missing rejection reason for payout ID: %d", payoutID)
		utils.BadRequest(c, utils.MissingReasonError().Message, nil)
		return
	}

	var payout models.Payout
	if err := config.DB.First(&payout, uint(payoutID)).Error; err != nil {
		utils.LogError("Payout not found - ID: %d: %v", payoutID, err)
		utils.NotFound(c, "Payout not found")
		return
	}

	if payout.Status == req.Status {
		utils.LogInfo("Payout %d already %s, treating as no-op", payoutID, req.Status)
		utils.Success(c, "Payout already in requested status", gin.H{"payout": payout})
		return
	}

	if req.Status == models.PayoutStatusApproved {
		summary, err := loadRealtorSummary(payout.RealtorID)
		if err != nil {
			utils.LogError("Failed to compute balance for realtor ID: %d: %v", payout.RealtorID, err)
			utils.InternalServerError(c, "Failed to compute balance", err.Error())
			return
		}
		if !utils.CanApprovePayout(summary, payout.Amount) {
			cfg, cfgErr := config.LoadConfig()
			if cfgErr != nil {
				utils.LogError("Failed to load config: %v", cfgErr)
				utils.InternalServerError(c, "Failed to load configuration", nil)
				return
			}
			if cfg.PayoutStrictBalance {
				utils.LogError("Payout %d would overdraw realtor %d - Amount: %.2f, Available: %.2f",
					payoutID, payout.RealtorID, payout.Amount, summary.AvailableBalance)
				utils.Conflict(c, "Payout exceeds the realtor's available balance", gin.H{
					"amount":            payout.Amount,
					"available_balance": summary.AvailableBalance,
				})
				return
			}
			utils.LogError("Approving payout %d despite insufficient balance (strict check disabled) - Amount: %.2f, Available: %.2f",
				payoutID, payout.Amount, summary.AvailableBalance)
		}
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.Status == models.PayoutStatusRejected {
		updates["rejection_reason"] = req.Reason
	}
	if req.Status == models.PayoutStatusPaid || req.Status == models.PayoutStatusRejected {
		updates["processed_at"] = time.Now()
	}

	result := config.DB.Model(&models.Payout{}).
		Where("id = ? AND status IN ?", payout.ID, allowedFrom).
		Updates(updates)
	if result.Error != nil {
		utils.LogError("Failed to update payout status - ID: %d: %v", payoutID, result.Error)
		utils.InternalServerError(c, "Failed to update payout", result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		appErr := utils.InvalidTransitionError(payout.Status, req.Status)
		utils.LogError("Payout %d: %v", payoutID, appErr)
		utils.Conflict(c, appErr.Message, gin.H{
			"current_status":   payout.Status,
			"requested_status": req.Status,
		})
		return
	}
	utils.LogInfo("Payout %d moved from %s to %s", payoutID, payout.Status, req.Status)

	if err := config.DB.First(&payout, payout.ID).Error; err != nil {
		utils.LogError("Failed to reload payout - ID: %d: %v", payoutID, err)
		utils.InternalServerError(c, "Failed to reload payout", err.Error())
		return
	}

	if payout.IsTerminal() {
		notifyPayoutDecision(payout)
	}

	utils.Success(c, "Payout status updated", gin.H{"payout": payout})
}

// notifyPayoutDecision emails the realtor about a terminal payout outcome.
// Best effort only.
func notifyPayoutDecision(payout models.Payout) {
	var realtor models.User
	if err := config.DB.First(&realtor, payout.RealtorID).Error; err != nil {
		utils.LogError("Failed to load realtor %d for notification: %v", payout.RealtorID, err)
		return
	}
	if err := utils.SendPayoutDecisionEmail(realtor.Email, payout.ID, payout.Status, payout.Amount); err != nil {
		utils.LogError("Failed to send payout decision email to %s: %v", realtor.Email, err)
	}
}
