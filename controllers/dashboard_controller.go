package controllers

import (
	"strconv"

	"github.com/Adeyinka-05/RealtyNest/config"
	"github.com/Adeyinka-05/RealtyNest/models"
	"github.com/Adeyinka-05/RealtyNest/utils"
	"github.com/gin-gonic/gin"
)

// GetDashboard returns the realtor's financial summary. Every figure is
// recomputed from the current commission and payout rows; nothing comes from
// a stored running total.
func GetDashboard(c *gin.Context) {
	utils.LogInfo("GetDashboard called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)
	utils.LogInfo("Building dashboard for realtor ID: %d", user.ID)

	summary, err := loadRealtorSummary(user.ID)
	if err != nil {
		utils.LogError("Failed to compute summary for realtor ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to compute summary", err.Error())
		return
	}

	var referralCount int64
	if err := config.DB.Model(&models.Referral{}).Where("upline_id = ?", user.ID).Count(&referralCount).Error; err != nil {
		utils.LogError("Failed to count referrals for realtor ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to count referrals", err.Error())
		return
	}

	var pendingReceipts int64
	if err := config.DB.Model(&models.Receipt{}).
		Where("realtor_id = ? AND status IN ?", user.ID, []string{models.ReceiptStatusPending, models.ReceiptStatusUnderReview}).
		Count(&pendingReceipts).Error; err != nil {
		utils.LogError("Failed to count pending receipts for realtor ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to count receipts", err.Error())
		return
	}

	utils.Success(c, "Dashboard retrieved successfully", gin.H{
		"summary":          summary,
		"referral_count":   referralCount,
		"pending_receipts": pendingReceipts,
		"kyc_status":       user.KYCStatus,
		"referral_code":    user.ReferralCode,
	})
}

// GetRealtorDetail returns the admin's view of one realtor: identity,
// recomputed aggregates, reconciled downline earnings and recent activity.
func GetRealtorDetail(c *gin.Context) {
	utils.LogInfo("GetRealtorDetail called")
	_, exists := c.Get("admin")
	if !exists {
		utils.LogError("Admin not found in context")
		utils.Unauthorized(c, "Admin not found")
		return
	}

	realtorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid realtor ID format: %v", err)
		utils.BadRequest(c, "Invalid realtor ID", nil)
		return
	}

	var realtor models.User
	if err := config.DB.Preload("BankDetails").First(&realtor, uint(realtorID)).Error; err != nil {
		utils.LogError("Realtor not found - ID: %d: %v", realtorID, err)
		utils.NotFound(c, "Realtor not found")
		return
	}

	summary, err := loadRealtorSummary(realtor.ID)
	if err != nil {
		utils.LogError("Failed to compute summary for realtor ID: %d: %v", realtor.ID, err)
		utils.InternalServerError(c, "Failed to compute summary", err.Error())
		return
	}

	var referralCommissions []models.Commission
	if err := config.DB.Where("realtor_id = ? AND commission_type = ?", realtor.ID, models.CommissionTypeReferral).
		Find(&referralCommissions).Error; err != nil {
		utils.LogError("Failed to fetch referral commissions for realtor ID: %d: %v", realtor.ID, err)
		utils.InternalServerError(c, "Failed to fetch commissions", err.Error())
		return
	}
	reconciled, err := reconcileCommissions(referralCommissions)
	if err != nil {
		utils.LogError("Failed to reconcile commissions for realtor ID: %d: %v", realtor.ID, err)
		utils.InternalServerError(c, "Failed to reconcile commissions", err.Error())
		return
	}
	downlineEarnings := utils.ComputeDownlineEarnings(reconciled)

	var recentReceipts []models.Receipt
	if err := config.DB.Where("realtor_id = ?", realtor.ID).Order("created_at DESC").Limit(10).Find(&recentReceipts).Error; err != nil {
		utils.LogError("Failed to fetch receipts for realtor ID: %d: %v", realtor.ID, err)
		utils.InternalServerError(c, "Failed to fetch receipts", err.Error())
		return
	}

	var recentPayouts []models.Payout
	if err := config.DB.Where("realtor_id = ?", realtor.ID).Order("created_at DESC").Limit(10).Find(&recentPayouts).Error; err != nil {
		utils.LogError("Failed to fetch payouts for realtor ID: %d: %v", realtor.ID, err)
		utils.InternalServerError(c, "Failed to fetch payouts", err.Error())
		return
	}

	utils.Success(c, "Realtor detail retrieved successfully", gin.H{
		"realtor": gin.H{
			"id":            realtor.ID,
			"first_name":    realtor.FirstName,
			"last_name":     realtor.LastName,
			"email":         realtor.Email,
			"phone":         realtor.Phone,
			"referral_code": realtor.ReferralCode,
			"referred_by":   realtor.ReferredBy,
			"kyc_status":    realtor.KYCStatus,
			"is_blocked":    realtor.IsBlocked,
			"bank_details":  realtor.BankDetails,
		},
		"summary":           summary,
		"downline_earnings": downlineEarnings,
		"recent_receipts":   recentReceipts,
		"recent_payouts":    recentPayouts,
	})
}

// GetPlatformStats returns platform-wide ledger aggregates
func GetPlatformStats(c *gin.Context) {
	utils.LogInfo("GetPlatformStats called")
	_, exists := c.Get("admin")
	if !exists {
		utils.LogError("Admin not found in context")
		utils.Unauthorized(c, "Admin not found")
		return
	}

	var commissions []models.Commission
	if err := config.DB.Find(&commissions).Error; err != nil {
		utils.LogError("Failed to fetch commissions: %v", err)
		utils.InternalServerError(c, "Failed to fetch commissions", err.Error())
		return
	}

	var payouts []models.Payout
	if err := config.DB.Find(&payouts).Error; err != nil {
		utils.LogError("Failed to fetch payouts: %v", err)
		utils.InternalServerError(c, "Failed to fetch payouts", err.Error())
		return
	}

	summary := utils.ComputePlatformSummary(commissions, payouts)

	for _, pair := range []struct {
		status string
		count  *int64
	}{
		{models.ReceiptStatusPending, &summary.ReceiptsPending},
		{models.ReceiptStatusApproved, &summary.ReceiptsApproved},
		{models.ReceiptStatusRejected, &summary.ReceiptsRejected},
	} {
		if err := config.DB.Model(&models.Receipt{}).Where("status = ?", pair.status).Count(pair.count).Error; err != nil {
			utils.LogError("Failed to count %s receipts: %v", pair.status, err)
			utils.InternalServerError(c, "Failed to count receipts", err.Error())
			return
		}
	}

	var realtorCount int64
	if err := config.DB.Model(&models.User{}).Count(&realtorCount).Error; err != nil {
		utils.LogError("Failed to count realtors: %v", err)
		utils.InternalServerError(c, "Failed to count realtors", err.Error())
		return
	}

	utils.Success(c, "Platform stats retrieved successfully", gin.H{
		"summary":        summary,
		"realtor_count":  realtorCount,
		"coerced_counts": utils.CoercedAmountCount(),
	})
}
