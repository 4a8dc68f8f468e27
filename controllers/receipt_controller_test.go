package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Adeyinka-05/RealtyNest/models"
)

func createProperty(t *testing.T, db *gorm.DB) models.Property {
	t.Helper()
	property := models.Property{
		Title:    "3 Bedroom Duplex",
		Location: "Lekki",
		Price:    45000000,
	}
	require.NoError(t, db.Create(&property).Error)
	return property
}

func TestSubmitReceipt(t *testing.T) {
	t.Run("creates a pending receipt", func(t *testing.T) {
		db := setupTestDB(t)
		realtor := createRealtor(t, db, "s1@example.com", "RN-S10001", nil)
		property := createProperty(t, db)

		body := fmt.Sprintf(`{"property_id":%d,"client_name":"Mr Buyer","amount_paid":45000000,"receipt_urls":["upload/1.jpg","upload/2.jpg"]}`, property.ID)
		c, w := userContext(realtor, http.MethodPost, body)
		SubmitReceipt(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var receipt models.Receipt
		require.NoError(t, db.Where("realtor_id = ?", realtor.ID).First(&receipt).Error)
		assert.Equal(t, models.ReceiptStatusPending, receipt.Status)
		assert.Equal(t, "upload/1.jpg,upload/2.jpg", receipt.ReceiptURLs)
	})

	t.Run("a rejected earlier receipt does not block a new submission", func(t *testing.T) {
		db := setupTestDB(t)
		realtor := createRealtor(t, db, "s2@example.com", "RN-S20001", nil)
		property := createProperty(t, db)
		createReceipt(t, db, realtor.ID, 45000000, models.ReceiptStatusRejected)

		body := fmt.Sprintf(`{"property_id":%d,"client_name":"Mr Buyer","amount_paid":45000000,"receipt_urls":["upload/3.jpg"]}`, property.ID)
		c, w := userContext(realtor, http.MethodPost, body)
		SubmitReceipt(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var count int64
		require.NoError(t, db.Model(&models.Receipt{}).Where("realtor_id = ?", realtor.ID).Count(&count).Error)
		assert.Equal(t, int64(2), count)
	})

	t.Run("refuses a non-positive amount", func(t *testing.T) {
		db := setupTestDB(t)
		realtor := createRealtor(t, db, "s3@example.com", "RN-S30001", nil)
		property := createProperty(t, db)

		body := fmt.Sprintf(`{"property_id":%d,"client_name":"Mr Buyer","amount_paid":-10,"receipt_urls":["upload/1.jpg"]}`, property.ID)
		c, w := userContext(realtor, http.MethodPost, body)
		SubmitReceipt(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("requires at least one receipt reference", func(t *testing.T) {
		db := setupTestDB(t)
		realtor := createRealtor(t, db, "s4@example.com", "RN-S40001", nil)
		property := createProperty(t, db)

		body := fmt.Sprintf(`{"property_id":%d,"client_name":"Mr Buyer","amount_paid":100,"receipt_urls":[]}`, property.ID)
		c, w := userContext(realtor, http.MethodPost, body)
		SubmitReceipt(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("refuses an unknown property", func(t *testing.T) {
		db := setupTestDB(t)
		realtor := createRealtor(t, db, "s5@example.com", "RN-S50001", nil)

		body := `{"property_id":999,"client_name":"Mr Buyer","amount_paid":100,"receipt_urls":["upload/1.jpg"]}`
		c, w := userContext(realtor, http.MethodPost, body)
		SubmitReceipt(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
