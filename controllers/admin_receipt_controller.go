package controllers

import (
	"strconv"
	"time"

	"github.com/Adeyinka-05/RealtyNest/config"
	"github.com/Adeyinka-05/RealtyNest/models"
	"github.com/Adeyinka-05/RealtyNest/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetReceipts returns receipts for admin review, filterable by realtor and status
func GetReceipts(c *gin.Context) {
	utils.LogInfo("GetReceipts called")
	_, exists := c.Get("admin")
	if !exists {
		utils.LogError("Admin not found in context")
		utils.Unauthorized(c, "Admin not found")
		return
	}

	page, limit := utils.GetPaginationParams(c)
	offset := (page - 1) * limit

	query := config.DB.Model(&models.Receipt{})
	if realtorID := c.Query("realtor_id"); realtorID != "" {
		query = query.Where("realtor_id = ?", realtorID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count receipts: %v", err)
		utils.InternalServerError(c, "Failed to fetch receipts", err.Error())
		return
	}

	var receipts []models.Receipt
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&receipts).Error; err != nil {
		utils.LogError("Failed to fetch receipts: %v", err)
		utils.InternalServerError(c, "Failed to fetch receipts", err.Error())
		return
	}
	utils.LogInfo("Retrieved %d receipts for review", len(receipts))

	utils.SuccessWithPagination(c, "Receipts retrieved successfully", gin.H{"receipts": receipts}, total, page, limit)
}

// MarkReceiptUnderReview moves a pending receipt into review. Informational
// only; repeating it is harmless.
func MarkReceiptUnderReview(c *gin.Context) {
	utils.LogInfo("MarkReceiptUnderReview called")
	_, exists := c.Get("admin")
	if !exists {
		utils.LogError("Admin not found in context")
		utils.Unauthorized(c, "Admin not found")
		return
	}

	receiptID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid receipt ID format: %v", err)
		utils.BadRequest(c, "Invalid receipt ID", nil)
		return
	}

	var receipt models.Receipt
	if err := config.DB.First(&receipt, uint(receiptID)).Error; err != nil {
		utils.LogError("Receipt not found - ID: %d: %v", receiptID, err)
		utils.NotFound(c, "Receipt not found")
		return
	}

	if receipt.IsTerminal() {
		utils.LogError("Attempted to review receipt in terminal status - ID: %d, Status: %s", receiptID, receipt.Status)
		utils.Conflict(c, "Receipt has already been reviewed", gin.H{"status": receipt.Status})
		return
	}

	now := time.Now()
	receipt.Status = models.ReceiptStatusUnderReview
	receipt.ReviewedAt = &now
	if err := config.DB.Save(&receipt).Error; err != nil {
		utils.LogError("Failed to update receipt status - ID: %d: %v", receiptID, err)
		utils.InternalServerError(c, "Failed to update receipt", err.Error())
		return
	}
	utils.LogInfo("Receipt %d marked under review", receiptID)

	utils.Success(c, "Receipt marked under review", gin.H{"receipt": receipt})
}

// ApproveReceipt approves a receipt and attributes commissions in the same
// transaction. The status change is the trigger: the guarded update only
// fires when the receipt is still reviewable, so a repeated or concurrent
// approval finds zero affected rows and becomes a no-op instead of minting
// duplicate commissions. The unique index on (receipt_id, commission_type)
// backstops the same contract at the storage layer.
func ApproveReceipt(c *gin.Context) {
	utils.LogInfo("ApproveReceipt called")
	_, exists := c.Get("admin")
	if !exists {
		utils.LogError("Admin not found in context")
		utils.Unauthorized(c, "Admin not found")
		return
	}

	receiptID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid receipt ID format: %v", err)
		utils.BadRequest(c, "Invalid receipt ID", nil)
		return
	}
	utils.LogInfo("Processing approval for receipt ID: %d", receiptID)

	var receipt models.Receipt
	if err := config.DB.First(&receipt, uint(receiptID)).Error; err != nil {
		utils.LogError("Receipt not found - ID: %d: %v", receiptID, err)
		utils.NotFound(c, "Receipt not found")
		return
	}

	if receipt.Status == models.ReceiptStatusApproved {
		utils.LogInfo("Receipt %d already approved, treating as no-op", receiptID)
		utils.Success(c, "Receipt already approved", gin.H{"receipt": receipt})
		return
	}
	if receipt.Status == models.ReceiptStatusRejected {
		utils.LogError("Attempted to approve rejected receipt - ID: %d", receiptID)
		utils.Conflict(c, "Receipt has already been rejected", gin.H{"status": receipt.Status})
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Failed to load config: %v", err)
		utils.InternalServerError(c, "Failed to load configuration", nil)
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to begin transaction for receipt ID: %d: %v", receiptID, tx.Error)
		utils.InternalServerError(c, "Failed to begin transaction", nil)
		return
	}

	now := time.Now()
	result := tx.Model(&models.Receipt{}).
		Where("id = ? AND status IN ?", receipt.ID, []string{models.ReceiptStatusPending, models.ReceiptStatusUnderReview}).
		Updates(map[string]interface{}{"status": models.ReceiptStatusApproved, "reviewed_at": now})
	if result.Error != nil {
		tx.Rollback()
		utils.LogError("Failed to update receipt status - ID: %d: %v", receiptID, result.Error)
		utils.InternalServerError(c, "Failed to approve receipt", result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		// Another admin got here first; absorb the duplicate
		tx.Rollback()
		utils.LogInfo("Receipt %d already finalized concurrently, treating as no-op", receiptID)
		config.DB.First(&receipt, receipt.ID)
		utils.Success(c, "Receipt already reviewed", gin.H{"receipt": receipt})
		return
	}
	utils.LogDebug("Receipt %d status updated to approved", receiptID)

	commissions, err := attributeCommissions(tx, receipt, cfg)
	if err != nil {
		tx.Rollback()
		utils.LogError("Failed to attribute commissions for receipt ID: %d: %v", receiptID, err)
		utils.InternalServerError(c, "Failed to create commissions", err.Error())
		return
	}
	utils.LogDebug("Created %d commission(s) for receipt ID: %d", len(commissions), receiptID)

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit approval for receipt ID: %d: %v", receiptID, err)
		utils.InternalServerError(c, "Failed to commit transaction", err.Error())
		return
	}
	utils.LogInfo("Successfully approved receipt %d with %d commission(s)", receiptID, len(commissions))

	receipt.Status = models.ReceiptStatusApproved
	receipt.ReviewedAt = &now

	notifyReceiptDecision(receipt, "")

	utils.Success(c, "Receipt approved and commissions created", gin.H{
		"receipt":     receipt,
		"commissions": commissions,
	})
}

// RejectReceipt rejects a receipt with a mandatory reason. No commission is
// ever created from a rejected receipt.
func RejectReceipt(c *gin.Context) {
	utils.LogInfo("RejectReceipt called")
	_, exists := c.Get("admin")
	if !exists {
		utils.LogError("Admin not found in context")
		utils.Unauthorized(c, "Admin not found")
		return
	}

	receiptID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid receipt ID format: %v", err)
		utils.BadRequest(c, "Invalid receipt ID", nil)
		return
	}

	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Missing rejection reason for receipt ID: %d: %v", receiptID, err)
		utils.BadRequest(c, "Reason is required", nil)
		return
	}

	var receipt models.Receipt
	if err := config.DB.First(&receipt, uint(receiptID)).Error; err != nil {
		utils.LogError("Receipt not found - ID: %d: %v", receiptID, err)
		utils.NotFound(c, "Receipt not found")
		return
	}

	if receipt.Status == models.ReceiptStatusRejected {
		utils.LogInfo("Receipt %d already rejected, treating as no-op", receiptID)
		utils.Success(c, "Receipt already rejected", gin.H{"receipt": receipt})
		return
	}
	if receipt.Status == models.ReceiptStatusApproved {
		utils.LogError("Attempted to reject approved receipt - ID: %d", receiptID)
		utils.Conflict(c, "Receipt has already been approved", gin.H{"status": receipt.Status})
		return
	}

	now := time.Now()
	result := config.DB.Model(&models.Receipt{}).
		Where("id = ? AND status IN ?", receipt.ID, []string{models.ReceiptStatusPending, models.ReceiptStatusUnderReview}).
		Updates(map[string]interface{}{
			"status":           models.ReceiptStatusRejected,
			"rejection_reason": req.Reason,
			"reviewed_at":      now,
		})
	if result.Error != nil {
		utils.LogError("Failed to reject receipt - ID: %d: %v", receiptID, result.Error)
		utils.InternalServerError(c, "Failed to reject receipt", result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.LogInfo("Receipt %d already finalized concurrently, treating as no-op", receiptID)
		config.DB.First(&receipt, receipt.ID)
		utils.Success(c, "Receipt already reviewed", gin.H{"receipt": receipt})
		return
	}
	utils.LogInfo("Successfully rejected receipt %d", receiptID)

	receipt.Status = models.ReceiptStatusRejected
	receipt.RejectionReason = req.Reason
	receipt.ReviewedAt = &now

	notifyReceiptDecision(receipt, req.Reason)

	utils.Success(c, "Receipt rejected", gin.H{"receipt": receipt})
}

// attributeCommissions creates the commission rows owed from an approved
// receipt: a direct commission to the seller, and a referral commission to
// the seller's upline when one exists. Runs inside the approval transaction.
func attributeCommissions(tx *gorm.DB, receipt models.Receipt, cfg *config.Config) ([]models.Commission, error) {
	amount := utils.SafeAmount(receipt.AmountPaid)

	direct := models.Commission{
		RealtorID:      receipt.RealtorID,
		CommissionType: models.CommissionTypeDirect,
		ReceiptID:      receipt.ID,
		Amount:         amount * cfg.DirectCommissionRate,
		Status:         models.CommissionStatusPending,
	}
	if err := tx.Create(&direct).Error; err != nil {
		return nil, err
	}

	created := []models.Commission{direct}

	var realtor models.User
	if err := tx.First(&realtor, receipt.RealtorID).Error; err != nil {
		return nil, err
	}

	if realtor.ReferredBy != nil {
		downlineID := receipt.RealtorID
		referral := models.Commission{
			RealtorID:      *realtor.ReferredBy,
			DownlineID:     &downlineID,
			CommissionType: models.CommissionTypeReferral,
			ReceiptID:      receipt.ID,
			Amount:         amount * cfg.ReferralCommissionRate,
			Status:         models.CommissionStatusPending,
		}
		if err := tx.Create(&referral).Error; err != nil {
			return nil, err
		}
		created = append(created, referral)
	}

	return created, nil
}

// notifyReceiptDecision emails the submitting realtor about a terminal review
// outcome. Best effort only; the ledger write has already committed.
func notifyReceiptDecision(receipt models.Receipt, reason string) {
	var realtor models.User
	if err := config.DB.First(&realtor, receipt.RealtorID).Error; err != nil {
		utils.LogError("Failed to load realtor %d for notification: %v", receipt.RealtorID, err)
		return
	}
	if err := utils.SendReceiptDecisionEmail(realtor.Email, receipt.ID, receipt.Status, reason); err != nil {
		utils.LogError("Failed to send receipt decision email to %s: %v", realtor.Email, err)
	}
}
