package controllers

import (
	"math"
	"strings"

	"github.com/Adeyinka-05/RealtyNest/config"
	"github.com/Adeyinka-05/RealtyNest/models"
	"github.com/Adeyinka-05/RealtyNest/utils"
	"github.com/gin-gonic/gin"
)

// SubmitReceiptRequest represents a realtor's sale receipt submission.
// ReceiptURLs are opaque references to proof uploaded elsewhere.
type SubmitReceiptRequest struct {
	PropertyID  uint     `json:"property_id" binding:"required"`
	ClientName  string   `json:"client_name" binding:"required"`
	AmountPaid  float64  `json:"amount_paid" binding:"required"`
	ReceiptURLs []string `json:"receipt_urls" binding:"required,min=1"`
}

// SubmitReceipt handles a realtor uploading proof of a property sale.
// Rejection of an earlier receipt does not block a new submission for the
// same sale; each receipt is reviewed on its own.
func SubmitReceipt(c *gin.Context) {
	utils.LogInfo("SubmitReceipt called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req SubmitReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid receipt submission: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if req.AmountPaid <= 0 || math.IsNaN(req.AmountPaid) || math.IsInf(req.AmountPaid, 0) {
		utils.LogError("Invalid amount on receipt submission: %v", req.AmountPaid)
		utils.BadRequest(c, "Amount paid must be a positive number", nil)
		return
	}

	if len(req.ReceiptURLs) > utils.MaxReceiptURLs {
		utils.LogError("Too many receipt references: %d", len(req.ReceiptURLs))
		utils.BadRequest(c, "Too many receipt references", nil)
		return
	}

	var property models.Property
	if err := config.DB.First(&property, req.PropertyID).Error; err != nil {
		utils.LogError("Property not found for receipt - ID: %d: %v", req.PropertyID, err)
		utils.NotFound(c, "Property not found")
		return
	}

	receipt := models.Receipt{
		RealtorID:   user.ID,
		PropertyID:  req.PropertyID,
		ClientName:  req.ClientName,
		AmountPaid:  req.AmountPaid,
		Status:      models.ReceiptStatusPending,
		ReceiptURLs: strings.Join(req.ReceiptURLs, ","),
	}

	if err := config.DB.Create(&receipt).Error; err != nil {
		utils.LogError("Failed to create receipt for realtor ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to submit receipt", err.Error())
		return
	}
	utils.LogInfo("Receipt %d submitted by realtor ID: %d", receipt.ID, user.ID)

	utils.Created(c, "Receipt submitted successfully", gin.H{"receipt": receipt})
}

// GetMyReceipts returns the authenticated realtor's receipts
func GetMyReceipts(c *gin.Context) {
	utils.LogInfo("GetMyReceipts called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	page, limit := utils.GetPaginationParams(c)
	offset := (page - 1) * limit

	query := config.DB.Model(&models.Receipt{}).Where("realtor_id = ?", user.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count receipts for realtor ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch receipts", err.Error())
		return
	}

	var receipts []models.Receipt
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&receipts).Error; err != nil {
		utils.LogError("Failed to fetch receipts for realtor ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch receipts", err.Error())
		return
	}
	utils.LogInfo("Retrieved %d receipts for realtor ID: %d", len(receipts), user.ID)

	utils.SuccessWithPagination(c, "Receipts retrieved successfully", gin.H{"receipts": receipts}, total, page, limit)
}
