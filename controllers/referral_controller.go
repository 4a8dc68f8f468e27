package controllers

import (
	"github.com/Adeyinka-05/RealtyNest/config"
	"github.com/Adeyinka-05/RealtyNest/models"
	"github.com/Adeyinka-05/RealtyNest/utils"
	"github.com/gin-gonic/gin"
)

// GetReferralTree returns the realtor's downlines with the commission each
// one has generated. Referral commissions are reconciled through their
// receipts first, so rows persisted without a downline link still land on the
// right downline, and downlines visible only through those repaired rows are
// listed even when the referrals table never recorded the edge.
func GetReferralTree(c *gin.Context) {
	utils.LogInfo("GetReferralTree called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)
	utils.LogInfo("Building referral tree for realtor ID: %d", user.ID)

	var referrals []models.Referral
	if err := config.DB.Where("upline_id = ?", user.ID).Find(&referrals).Error; err != nil {
		utils.LogError("Failed to fetch referrals for realtor ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch referrals", err.Error())
		return
	}

	var commissions []models.Commission
	if err := config.DB.Where("realtor_id = ? AND commission_type = ?", user.ID, models.CommissionTypeReferral).
		Find(&commissions).Error; err != nil {
		utils.LogError("Failed to fetch referral commissions for realtor ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch commissions", err.Error())
		return
	}

	reconciled, err := reconcileCommissions(commissions)
	if err != nil {
		utils.LogError("Failed to reconcile commissions for realtor ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to reconcile commissions", err.Error())
		return
	}

	downlineIDs := utils.CollectDownlineIDs(referrals, reconciled)
	earnings := utils.ComputeDownlineEarnings(reconciled)

	downlineUsers := make(map[uint]models.User)
	if len(downlineIDs) > 0 {
		var users []models.User
		if err := config.DB.Where("id IN ?", downlineIDs).Find(&users).Error; err != nil {
			utils.LogError("Failed to fetch downline users: %v", err)
			utils.InternalServerError(c, "Failed to fetch downlines", err.Error())
			return
		}
		for _, u := range users {
			downlineUsers[u.ID] = u
		}
	}

	joinedAt := make(map[uint]interface{})
	for _, ref := range referrals {
		joinedAt[ref.DownlineID] = ref.CreatedAt
	}

	var totalReferralEarnings float64
	downlines := make([]gin.H, 0, len(downlineIDs))
	for _, id := range downlineIDs {
		entry := gin.H{
			"downline_id":              id,
			"commission_from_downline": earnings[id],
			"joined_at":                joinedAt[id],
		}
		if u, ok := downlineUsers[id]; ok {
			entry["first_name"] = u.FirstName
			entry["last_name"] = u.LastName
			entry["email"] = u.Email
			entry["kyc_status"] = u.KYCStatus
		}
		totalReferralEarnings += earnings[id]
		downlines = append(downlines, entry)
	}
	utils.LogInfo("Referral tree for realtor ID: %d has %d downline(s)", user.ID, len(downlines))

	utils.Success(c, "Referral tree retrieved successfully", gin.H{
		"referral_code":           user.ReferralCode,
		"referral_count":          len(downlines),
		"total_referral_earnings": totalReferralEarnings,
		"downlines":               downlines,
	})
}

// GetReferrals returns raw referral edges for the admin surface
func GetReferrals(c *gin.Context) {
	utils.LogInfo("GetReferrals called")
	_, exists := c.Get("admin")
	if !exists {
		utils.LogError("Admin not found in context")
		utils.Unauthorized(c, "Admin not found")
		return
	}

	page, limit := utils.GetPaginationParams(c)
	offset := (page - 1) * limit

	query := config.DB.Model(&models.Referral{})
	if uplineID := c.Query("upline_id"); uplineID != "" {
		query = query.Where("upline_id = ?", uplineID)
	}
	if downlineID := c.Query("downline_id"); downlineID != "" {
		query = query.Where("downline_id = ?", downlineID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count referrals: %v", err)
		utils.InternalServerError(c, "Failed to fetch referrals", err.Error())
		return
	}

	var referrals []models.Referral
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&referrals).Error; err != nil {
		utils.LogError("Failed to fetch referrals: %v", err)
		utils.InternalServerError(c, "Failed to fetch referrals", err.Error())
		return
	}
	utils.LogInfo("Retrieved %d referrals", len(referrals))

	utils.SuccessWithPagination(c, "Referrals retrieved successfully", gin.H{"referrals": referrals}, total, page, limit)
}

// reconcileCommissions fetches the receipts behind referral commissions that
// are missing their downline link and runs the read-time repair pass over
// the in-memory rows. Stored rows are left untouched.
func reconcileCommissions(commissions []models.Commission) ([]models.Commission, error) {
	var receiptIDs []uint
	for _, cm := range commissions {
		if cm.CommissionType == models.CommissionTypeReferral && cm.DownlineID == nil {
			receiptIDs = append(receiptIDs, cm.ReceiptID)
		}
	}

	receipts := make(map[uint]models.Receipt)
	if len(receiptIDs) > 0 {
		var rows []models.Receipt
		if err := config.DB.Where("id IN ?", receiptIDs).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			receipts[r.ID] = r
		}
	}

	return utils.ReconcileReferralCommissions(commissions, receipts), nil
}
