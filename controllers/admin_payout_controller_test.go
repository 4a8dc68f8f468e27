package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Adeyinka-05/RealtyNest/models"
)

func createPayout(t *testing.T, db *gorm.DB, realtorID uint, amount float64, status string) models.Payout {
	t.Helper()
	payout := models.Payout{
		RealtorID:     realtorID,
		Amount:        amount,
		Status:        status,
		BankName:      "First Bank",
		AccountName:   "Test Realtor",
		AccountNumber: "0123456789",
	}
	require.NoError(t, db.Create(&payout).Error)
	return payout
}

func TestUpdatePayoutStatus(t *testing.T) {
	t.Run("approves a payout covered by the available balance", func(t *testing.T) {
		db := setupTestDB(t)
		realtor := createRealtor(t, db, "p1@example.com", "RN-P10001", nil)
		createCommission(t, db, realtor.ID, 1, 1000, models.CommissionStatusApproved)
		payout := createPayout(t, db, realtor.ID, 400, models.PayoutStatusPending)

		c, w := adminContext(http.MethodPatch, `{"status":"approved"}`, idParam(payout.ID))
		UpdatePayoutStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var updated models.Payout
		require.NoError(t, db.First(&updated, payout.ID).Error)
		assert.Equal(t, models.PayoutStatusApproved, updated.Status)
	})

	t.Run("refuses approval that would overdraw the balance", func(t *testing.T) {
		db := setupTestDB(t)
		realtor := createRealtor(t, db, "p2@example.com", "RN-P20001", nil)
		createCommission(t, db, realtor.ID, 1, 100, models.CommissionStatusApproved)
		payout := createPayout(t, db, realtor.ID, 500, models.PayoutStatusPending)

		c, w := adminContext(http.MethodPatch, `{"status":"approved"}`, idParam(payout.ID))
		UpdatePayoutStatus(c)

		assert.Equal(t, http.StatusConflict, w.Code)

		var updated models.Payout
		require.NoError(t, db.First(&updated, payout.ID).Error)
		assert.Equal(t, models.PayoutStatusPending, updated.Status)
	})

	t.Run("warns instead of refusing when the strict check is disabled", func(t *testing.T) {
		t.Setenv("PAYOUT_STRICT_BALANCE", "false")
		db := setupTestDB(t)
		realtor := createRealtor(t, db, "p3@example.com", "RN-P30001", nil)
		createCommission(t, db, realtor.ID, 1, 100, models.CommissionStatusApproved)
		payout := createPayout(t, db, realtor.ID, 500, models.PayoutStatusPending)

		c, w := adminContext(http.MethodPatch, `{"status":"approved"}`, idParam(payout.ID))
		UpdatePayoutStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var updated models.Payout
		require.NoError(t, db.First(&updated, payout.ID).Error)
		assert.Equal(t, models.PayoutStatusApproved, updated.Status)
	})

	t.Run("only an approved payout can be paid", func(t *testing.T) {
		db := setupTestDB(t)
		realtor := createRealtor(t, db, "p4@example.com", "RN-P40001", nil)
		payout := createPayout(t, db, realtor.ID, 100, models.PayoutStatusPending)

		c, w := adminContext(http.MethodPatch, `{"status":"paid"}`, idParam(payout.ID))
		UpdatePayoutStatus(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("marking paid stamps the processing time", func(t *testing.T) {
		db := setupTestDB(t)
		realtor := createRealtor(t, db, "p5@example.com", "RN-P50001", nil)
		payout := createPayout(t, db, realtor.ID, 100, models.PayoutStatusApproved)

		c, w := adminContext(http.MethodPatch, `{"status":"paid"}`, idParam(payout.ID))
		UpdatePayoutStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var updated models.Payout
		require.NoError(t, db.First(&updated, payout.ID).Error)
		assert.Equal(t, models.PayoutStatusPaid, updated.Status)
		assert.NotNil(t, updated.ProcessedAt)
	})

	t.Run("a paid payout is terminal", func(t *testing.T) {
		db := setupTestDB(t)
		realtor := createRealtor(t, db, "p6@example.com", "RN-P60001", nil)
		payout := createPayout(t, db, realtor.ID, 100, models.PayoutStatusPaid)

		c, w := adminContext(http.MethodPatch, `{"status":"rejected","reason":"audit"}`, idParam(payout.ID))
		UpdatePayoutStatus(c)

		assert.Equal(t, http.StatusConflict, w.Code)

		var updated models.Payout
		require.NoError(t, db.First(&updated, payout.ID).Error)
		assert.Equal(t, models.PayoutStatusPaid, updated.Status)
	})

	t.Run("rejecting requires a reason", func(t *testing.T) {
		db := setupTestDB(t)
		realtor := createRealtor(t, db, "p7@example.com", "RN-P70001", nil)
		payout := createPayout(t, db, realtor.ID, 100, models.PayoutStatusPending)

		c, w := adminContext(http.MethodPatch, `{"status":"rejected"}`, idParam(payout.ID))
		UpdatePayoutStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("a rejected payout frees the balance again", func(t *testing.T) {
		db := setupTestDB(t)
		realtor := createRealtor(t, db, "p8@example.com", "RN-P80001", nil)
		createCommission(t, db, realtor.ID, 1, 1000, models.CommissionStatusApproved)
		payout := createPayout(t, db, realtor.ID, 800, models.PayoutStatusPending)

		c, w := adminContext(http.MethodPatch, `{"status":"rejected","reason":"wrong account"}`, idParam(payout.ID))
		UpdatePayoutStatus(c)
		require.Equal(t, http.StatusOK, w.Code)

		summary, err := loadRealtorSummary(realtor.ID)
		require.NoError(t, err)
		assert.Equal(t, 1000.0, summary.AvailableBalance)
		assert.Equal(t, 0.0, summary.TotalWithdrawals)
	})
}
