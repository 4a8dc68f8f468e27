package controllers

import (
	"strconv"

	"github.com/Adeyinka-05/RealtyNest/config"
	"github.com/Adeyinka-05/RealtyNest/models"
	"github.com/Adeyinka-05/RealtyNest/utils"
	"github.com/gin-gonic/gin"
)

// UpdateCommissionStatusRequest represents the commission status change request
type UpdateCommissionStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

// commissionTransitions maps a target commission status to the statuses it
// may be reached from. Paid and rejected are terminal.
var commissionTransitions = map[string][]string{
	models.CommissionStatusApproved: {models.CommissionStatusPending},
	models.CommissionStatusPaid:     {models.CommissionStatusApproved},
	models.CommissionStatusRejected: {models.CommissionStatusPending, models.CommissionStatusApproved},
}

// GetCommissions returns commission rows, filterable by realtor, downline,
// type and status. Rows come back unenriched; reconciliation and aggregation
// happen in the callers that need them.
func GetCommissions(c *gin.Context) {
	utils.LogInfo("GetCommissions called")
	_, exists := c.Get("admin")
	if !exists {
		utils.LogError("Admin not found in context")
		utils.Unauthorized(c, "Admin not found")
		return
	}

	page, limit := utils.GetPaginationParams(c)
	offset := (page - 1) * limit

	query := config.DB.Model(&models.Commission{})
	if realtorID := c.Query("realtor_id"); realtorID != "" {
		query = query.Where("realtor_id = ?", realtorID)
	}
	if downlineID := c.Query("downline_id"); downlineID != "" {
		query = query.Where("downline_id = ?", downlineID)
	}
	if commissionType := c.Query("type"); commissionType != "" {
		query = query.Where("commission_type = ?", commissionType)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count commissions: %v", err)
		utils.InternalServerError(c, "Failed to fetch commissions", err.Error())
		return
	}

	var commissions []models.Commission
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&commissions).Error; err != nil {
		utils.LogError("Failed to fetch commissions: %v", err)
		utils.InternalServerError(c, "Failed to fetch commissions", err.Error())
		return
	}
	utils.LogInfo("Retrieved %d commissions", len(commissions))

	utils.SuccessWithPagination(c, "Commissions retrieved successfully", gin.H{"commissions": commissions}, total, page, limit)
}

// UpdateCommissionStatus moves a commission along its lifecycle. A request
// naming the status the commission already has is absorbed as a no-op; any
// other disallowed transition is refused without touching the row.
func UpdateCommissionStatus(c *gin.Context) {
	utils.LogInfo("UpdateCommissionStatus called")
	_, exists := c.Get("admin")
	if !exists {
		utils.LogError("Admin not found in context")
		utils.Unauthorized(c, "Admin not found")
		return
	}

	commissionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid commission ID format: %v", err)
		utils.BadRequest(c, "Invalid commission ID", nil)
		return
	}

	var req UpdateCommissionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid status request for commission ID: %d: %v", commissionID, err)
		utils.BadRequest(c, "Status is required", err.Error())
		return
	}

	allowedFrom, known := commissionTransitions[req.Status]
	if !known {
		utils.LogError("Unknown commission status requested: %s", req.Status)
		utils.BadRequest(c, "Invalid status", gin.H{"status": req.Status})
		return
	}

	if req.Status == models.CommissionStatusRejected && req.Reason == "" {
		utils.LogError("Missing rejection reason for commission ID: %d", commissionID)
		utils.BadRequest(c, utils.MissingReasonError().Message, nil)
		return
	}

	var commission models.Commission
	if err := config.DB.First(&commission, uint(commissionID)).Error; err != nil {
		utils.LogError("Commission not found - ID: %d: %v", commissionID, err)
		utils.NotFound(c, "Commission not found")
		return
	}

	if commission.Status == req.Status {
		utils.LogInfo("Commission %d already %s, treating as no-op", commissionID, req.Status)
		utils.Success(c, "Commission already in requested status", gin.H{"commission": commission})
		return
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.Status == models.CommissionStatusRejected {
		updates["rejection_reason"] = req.Reason
	}

	result := config.DB.Model(&models.Commission{}).
		Where("id = ? AND status IN ?", commission.ID, allowedFrom).
		Updates(updates)
	if result.Error != nil {
		utils.LogError("Failed to update commission status - ID: %d: %v", commissionID, result.Error)
		utils.InternalServerError(c, "Failed to update commission", result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		appErr := utils.InvalidTransitionError(commission.Status, req.Status)
		utils.LogError("Commission %d: %v", commissionID, appErr)
		utils.Conflict(c, appErr.Message, gin.H{
			"current_status":   commission.Status,
			"requested_status": req.Status,
		})
		return
	}
	utils.LogInfo("Commission %d moved from %s to %s", commissionID, commission.Status, req.Status)

	if err := config.DB.First(&commission, commission.ID).Error; err != nil {
		utils.LogError("Failed to reload commission - ID: %d: %v", commissionID, err)
		utils.InternalServerError(c, "Failed to reload commission", err.Error())
		return
	}

	utils.Success(c, "Commission status updated", gin.H{"commission": commission})
}
