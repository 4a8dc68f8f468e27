package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Adeyinka-05/RealtyNest/config"
	"github.com/Adeyinka-05/RealtyNest/models"
	"github.com/Adeyinka-05/RealtyNest/utils"
)

// DownloadLedgerExcel exports the commission and payout ledgers to an Excel
// workbook for the back office.
func DownloadLedgerExcel(c *gin.Context) {
	utils.LogInfo("DownloadLedgerExcel called")
	_, exists := c.Get("admin")
	if !exists {
		utils.LogError("Admin not found in context")
		utils.Unauthorized(c, "Admin not found")
		return
	}

	period := c.DefaultQuery("period", "month")
	now := time.Now()
	var startDate time.Time

	switch period {
	case "week":
		startDate = now.AddDate(0, 0, -7)
	case "month":
		startDate = now.AddDate(0, -1, 0)
	case "year":
		startDate = now.AddDate(-1, 0, 0)
	default:
		utils.LogError("Invalid period specified: %s", period)
		utils.BadRequest(c, "Invalid period", "Period must be week, month, or year")
		return
	}

	var commissions []models.Commission
	if err := config.DB.Where("created_at >= ?", startDate).Order("created_at DESC").Find(&commissions).Error; err != nil {
		utils.LogError("Failed to fetch commissions for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch commissions", err.Error())
		return
	}

	var payouts []models.Payout
	if err := config.DB.Where("created_at >= ?", startDate).Order("created_at DESC").Find(&payouts).Error; err != nil {
		utils.LogError("Failed to fetch payouts for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch payouts", err.Error())
		return
	}
	utils.LogDebug("Exporting %d commissions and %d payouts", len(commissions), len(payouts))

	summary := utils.ComputePlatformSummary(commissions, payouts)

	file := xlsx.NewFile()

	commissionSheet, err := file.AddSheet("Commissions")
	if err != nil {
		utils.LogError("Failed to create commissions sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	titleRow := commissionSheet.AddRow()
	titleRow.AddCell().SetString("REALTYNEST - Commission Ledger")
	periodRow := commissionSheet.AddRow()
	periodRow.AddCell().SetString("Period: " + period + " | since " + startDate.Format("2006-01-02"))
	commissionSheet.AddRow() // spacing

	headers := []string{"ID", "Realtor ID", "Downline ID", "Type", "Receipt ID", "Amount", "Status", "Created"}
	headerRow := commissionSheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetString(h)
	}

	for _, cm := range commissions {
		row := commissionSheet.AddRow()
		row.AddCell().SetInt(int(cm.ID))
		row.AddCell().SetInt(int(cm.RealtorID))
		if cm.DownlineID != nil {
			row.AddCell().SetInt(int(*cm.DownlineID))
		} else {
			row.AddCell().SetString("")
		}
		row.AddCell().SetString(cm.CommissionType)
		row.AddCell().SetInt(int(cm.ReceiptID))
		row.AddCell().SetFloat(utils.SafeAmount(cm.Amount))
		row.AddCell().SetString(cm.Status)
		row.AddCell().SetString(cm.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	payoutSheet, err := file.AddSheet("Payouts")
	if err != nil {
		utils.LogError("Failed to create payouts sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	payoutHeaders := []string{"ID", "Realtor ID", "Amount", "Status", "Bank", "Account", "Created"}
	payoutHeaderRow := payoutSheet.AddRow()
	for _, h := range payoutHeaders {
		payoutHeaderRow.AddCell().SetString(h)
	}

	for _, p := range payouts {
		row := payoutSheet.AddRow()
		row.AddCell().SetInt(int(p.ID))
		row.AddCell().SetInt(int(p.RealtorID))
		row.AddCell().SetFloat(utils.SafeAmount(p.Amount))
		row.AddCell().SetString(p.Status)
		row.AddCell().SetString(p.BankName)
		row.AddCell().SetString(p.AccountNumber)
		row.AddCell().SetString(p.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	summarySheet, err := file.AddSheet("Summary")
	if err != nil {
		utils.LogError("Failed to create summary sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}
	for _, line := range [][2]string{
		{"Total earnings (approved + paid commissions)", fmt.Sprintf("%.2f", summary.TotalEarnings)},
		{"Pending commissions", fmt.Sprintf("%.2f", summary.PendingCommissions)},
		{"Paid withdrawals", fmt.Sprintf("%.2f", summary.PaidWithdrawals)},
		{"Pending withdrawals", fmt.Sprintf("%.2f", summary.PendingWithdrawals)},
	} {
		row := summarySheet.AddRow()
		row.AddCell().SetString(line[0])
		row.AddCell().SetString(line[1])
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to generate Excel file", err.Error())
		return
	}
	utils.LogInfo("Ledger export generated for period: %s", period)

	c.Header("Content-Disposition", "attachment; filename=ledger-export.xlsx")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
