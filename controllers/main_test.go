package controllers

import (
	"bytes"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Adeyinka-05/RealtyNest/config"
	"github.com/Adeyinka-05/RealtyNest/models"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupTestDB wires an in-memory database into config.DB for the duration of
// a test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.BankDetail{},
		&models.Referral{},
		&models.Property{},
		&models.Receipt{},
		&models.Commission{},
		&models.Payout{},
	))

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })

	return db
}

func adminContext(method, body string, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	c.Set("admin", models.Admin{Model: gorm.Model{ID: 1}, Email: "admin@realtynest.com", IsActive: true})
	return c, w
}

func userContext(user models.User, method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user", user)
	return c, w
}

func createRealtor(t *testing.T, db *gorm.DB, email, referralCode string, referredBy *uint) models.User {
	t.Helper()
	user := models.User{
		FirstName:    "Test",
		LastName:     "Realtor",
		Email:        email,
		Password:     "hashed",
		ReferralCode: referralCode,
		ReferredBy:   referredBy,
		KYCStatus:    models.KYCStatusVerified,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createReceipt(t *testing.T, db *gorm.DB, realtorID uint, amount float64, status string) models.Receipt {
	t.Helper()
	receipt := models.Receipt{
		RealtorID:  realtorID,
		ClientName: "Buyer",
		AmountPaid: amount,
		Status:     status,
	}
	require.NoError(t, db.Create(&receipt).Error)
	return receipt
}

func idParam(id uint) gin.Params {
	return gin.Params{{Key: "id", Value: strconv.FormatUint(uint64(id), 10)}}
}
