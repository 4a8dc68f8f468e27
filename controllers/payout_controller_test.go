package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Adeyinka-05/RealtyNest/models"
)

func createBankDetail(t *testing.T, db *gorm.DB, userID uint) models.BankDetail {
	t.Helper()
	detail := models.BankDetail{
		UserID:        userID,
		BankName:      "First Bank",
		AccountName:   "Test Realtor",
		AccountNumber: "0123456789",
		IsDefault:     true,
	}
	require.NoError(t, db.Create(&detail).Error)
	return detail
}

func TestRequestPayout(t *testing.T) {
	t.Run("creates a pending payout with a bank snapshot", func(t *testing.T) {
		db := setupTestDB(t)
		realtor := createRealtor(t, db, "w1@example.com", "RN-W10001", nil)
		createCommission(t, db, realtor.ID, 1, 100000, models.CommissionStatusApproved)
		detail := createBankDetail(t, db, realtor.ID)

		body := fmt.Sprintf(`{"amount":40000,"bank_detail_id":%d}`, detail.ID)
		c, w := userContext(realtor, http.MethodPost, body)
		RequestPayout(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var payout models.Payout
		require.NoError(t, db.Where("realtor_id = ?", realtor.ID).First(&payout).Error)
		assert.Equal(t, models.PayoutStatusPending, payout.Status)
		assert.Equal(t, 40000.0, payout.Amount)
		assert.Equal(t, "First Bank", payout.BankName)
		assert.Equal(t, "0123456789", payout.AccountNumber)
	})

	t.Run("refuses an amount above the available balance", func(t *testing.T) {
		db := setupTestDB(t)
		realtor := createRealtor(t, db, "w2@example.com", "RN-W20001", nil)
		createCommission(t, db, realtor.ID, 1, 100, models.CommissionStatusApproved)
		detail := createBankDetail(t, db, realtor.ID)

		body := fmt.Sprintf(`{"amount":200,"bank_detail_id":%d}`, detail.ID)
		c, w := userContext(realtor, http.MethodPost, body)
		RequestPayout(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var count int64
		require.NoError(t, db.Model(&models.Payout{}).Where("realtor_id = ?", realtor.ID).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("pending commissions do not back a withdrawal", func(t *testing.T) {
		db := setupTestDB(t)
		realtor := createRealtor(t, db, "w3@example.com", "RN-W30001", nil)
		createCommission(t, db, realtor.ID, 1, 1000, models.CommissionStatusPending)
		detail := createBankDetail(t, db, realtor.ID)

		body := fmt.Sprintf(`{"amount":100,"bank_detail_id":%d}`, detail.ID)
		c, w := userContext(realtor, http.MethodPost, body)
		RequestPayout(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("refuses a non-positive amount", func(t *testing.T) {
		db := setupTestDB(t)
		realtor := createRealtor(t, db, "w4@example.com", "RN-W40001", nil)
		detail := createBankDetail(t, db, realtor.ID)

		body := fmt.Sprintf(`{"amount":-5,"bank_detail_id":%d}`, detail.ID)
		c, w := userContext(realtor, http.MethodPost, body)
		RequestPayout(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("refuses another realtor's bank detail", func(t *testing.T) {
		db := setupTestDB(t)
		owner := createRealtor(t, db, "w5@example.com", "RN-W50001", nil)
		other := createRealtor(t, db, "w6@example.com", "RN-W60001", nil)
		createCommission(t, db, other.ID, 1, 1000, models.CommissionStatusApproved)
		detail := createBankDetail(t, db, owner.ID)

		body := fmt.Sprintf(`{"amount":100,"bank_detail_id":%d}`, detail.ID)
		c, w := userContext(other, http.MethodPost, body)
		RequestPayout(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetMyPayouts(t *testing.T) {
	db := setupTestDB(t)
	realtor := createRealtor(t, db, "w7@example.com", "RN-W70001", nil)
	createPayout(t, db, realtor.ID, 100, models.PayoutStatusPending)
	createPayout(t, db, realtor.ID, 200, models.PayoutStatusPaid)
	stranger := createRealtor(t, db, "w8@example.com", "RN-W80001", nil)
	createPayout(t, db, stranger.ID, 300, models.PayoutStatusPending)

	c, w := userContext(realtor, http.MethodGet, "")
	GetMyPayouts(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Payouts []models.Payout `json:"payouts"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Payouts, 2)
}
