package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Adeyinka-05/RealtyNest/config"
	"github.com/Adeyinka-05/RealtyNest/models"
	"github.com/Adeyinka-05/RealtyNest/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// DownloadEarningsStatement generates a PDF statement of the realtor's
// commissions, withdrawals and recomputed totals.
func DownloadEarningsStatement(c *gin.Context) {
	utils.LogInfo("DownloadEarningsStatement called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)
	utils.LogInfo("Generating earnings statement for realtor ID: %d", user.ID)

	var commissions []models.Commission
	if err := config.DB.Where("realtor_id = ?", user.ID).Order("created_at DESC").Find(&commissions).Error; err != nil {
		utils.LogError("Failed to fetch commissions for realtor ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch commissions", err.Error())
		return
	}

	var payouts []models.Payout
	if err := config.DB.Where("realtor_id = ?", user.ID).Order("created_at DESC").Find(&payouts).Error; err != nil {
		utils.LogError("Failed to fetch payouts for realtor ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch payouts", err.Error())
		return
	}

	summary := utils.ComputeRealtorSummary(commissions, payouts)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "RealtyNest")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "Email: support@realtynest.com")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "EARNINGS STATEMENT")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, "Realtor: "+user.FirstName+" "+user.LastName)
	pdf.Ln(6)
	pdf.Cell(100, 8, "Email: "+user.Email)
	pdf.Ln(6)
	pdf.Cell(100, 8, "Referral code: "+user.ReferralCode)
	pdf.Ln(10)

	// Commissions table
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Commissions")
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(20, 8, "ID", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Type", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Receipt", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Status", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 11)
	for _, cm := range commissions {
		pdf.CellFormat(20, 8, strconv.Itoa(int(cm.ID)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, cm.CommissionType, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, strconv.Itoa(int(cm.ReceiptID)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", utils.SafeAmount(cm.Amount)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, cm.Status, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	// Withdrawals table
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Withdrawals")
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(20, 8, "ID", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Status", "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 8, "Bank", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 11)
	for _, p := range payouts {
		pdf.CellFormat(20, 8, strconv.Itoa(int(p.ID)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", utils.SafeAmount(p.Amount)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, p.Status, "1", 0, "C", false, 0, "")
		pdf.CellFormat(60, 8, p.BankName, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	// Summary
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(110, 8, "Total earnings:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", summary.TotalEarnings), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(110, 8, "Paid withdrawals:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", summary.PaidWithdrawals), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(110, 10, "Available balance:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(40, 10, fmt.Sprintf("%.2f", summary.AvailableBalance), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to generate statement PDF for realtor ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to generate statement", err.Error())
		return
	}
	utils.LogInfo("Earnings statement generated for realtor ID: %d", user.ID)

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=earnings-statement.pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
