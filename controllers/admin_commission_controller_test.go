package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Adeyinka-05/RealtyNest/models"
)

func createCommission(t *testing.T, db *gorm.DB, realtorID, receiptID uint, amount float64, status string) models.Commission {
	t.Helper()
	commission := models.Commission{
		RealtorID:      realtorID,
		CommissionType: models.CommissionTypeDirect,
		ReceiptID:      receiptID,
		Amount:         amount,
		Status:         status,
	}
	require.NoError(t, db.Create(&commission).Error)
	return commission
}

func TestUpdateCommissionStatus(t *testing.T) {
	t.Run("pending moves to approved", func(t *testing.T) {
		db := setupTestDB(t)
		commission := createCommission(t, db, 1, 1, 500, models.CommissionStatusPending)

		c, w := adminContext(http.MethodPatch, `{"status":"approved"}`, idParam(commission.ID))
		UpdateCommissionStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var updated models.Commission
		require.NoError(t, db.First(&updated, commission.ID).Error)
		assert.Equal(t, models.CommissionStatusApproved, updated.Status)
	})

	t.Run("approved moves to paid", func(t *testing.T) {
		db := setupTestDB(t)
		commission := createCommission(t, db, 1, 1, 500, models.CommissionStatusApproved)

		c, w := adminContext(http.MethodPatch, `{"status":"paid"}`, idParam(commission.ID))
		UpdateCommissionStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var updated models.Commission
		require.NoError(t, db.First(&updated, commission.ID).Error)
		assert.Equal(t, models.CommissionStatusPaid, updated.Status)
	})

	t.Run("a paid commission can no longer be rejected", func(t *testing.T) {
		db := setupTestDB(t)
		commission := createCommission(t, db, 1, 1, 500, models.CommissionStatusPaid)

		c, w := adminContext(http.MethodPatch, `{"status":"rejected","reason":"audit"}`, idParam(commission.ID))
		UpdateCommissionStatus(c)

		assert.Equal(t, http.StatusConflict, w.Code)

		var updated models.Commission
		require.NoError(t, db.First(&updated, commission.ID).Error)
		assert.Equal(t, models.CommissionStatusPaid, updated.Status)
		assert.Empty(t, updated.RejectionReason)
	})

	t.Run("pending cannot jump straight to paid", func(t *testing.T) {
		db := setupTestDB(t)
		commission := createCommission(t, db, 1, 1, 500, models.CommissionStatusPending)

		c, w := adminContext(http.MethodPatch, `{"status":"paid"}`, idParam(commission.ID))
		UpdateCommissionStatus(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("rejecting requires a reason", func(t *testing.T) {
		db := setupTestDB(t)
		commission := createCommission(t, db, 1, 1, 500, models.CommissionStatusPending)

		c, w := adminContext(http.MethodPatch, `{"status":"rejected"}`, idParam(commission.ID))
		UpdateCommissionStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var updated models.Commission
		require.NoError(t, db.First(&updated, commission.ID).Error)
		assert.Equal(t, models.CommissionStatusPending, updated.Status)
	})

	t.Run("rejecting with a reason records it", func(t *testing.T) {
		db := setupTestDB(t)
		commission := createCommission(t, db, 1, 1, 500, models.CommissionStatusApproved)

		c, w := adminContext(http.MethodPatch, `{"status":"rejected","reason":"duplicate receipt"}`, idParam(commission.ID))
		UpdateCommissionStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var updated models.Commission
		require.NoError(t, db.First(&updated, commission.ID).Error)
		assert.Equal(t, models.CommissionStatusRejected, updated.Status)
		assert.Equal(t, "duplicate receipt", updated.RejectionReason)
	})

	t.Run("requesting the current status is absorbed as a no-op", func(t *testing.T) {
		db := setupTestDB(t)
		commission := createCommission(t, db, 1, 1, 500, models.CommissionStatusApproved)

		c, w := adminContext(http.MethodPatch, `{"status":"approved"}`, idParam(commission.ID))
		UpdateCommissionStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown statuses are refused", func(t *testing.T) {
		db := setupTestDB(t)
		commission := createCommission(t, db, 1, 1, 500, models.CommissionStatusPending)

		c, w := adminContext(http.MethodPatch, `{"status":"frozen"}`, idParam(commission.ID))
		UpdateCommissionStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
