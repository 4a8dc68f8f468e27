package controllers

import (
	"time"

	"github.com/Adeyinka-05/RealtyNest/config"
	"github.com/Adeyinka-05/RealtyNest/models"
	"github.com/Adeyinka-05/RealtyNest/utils"
	"github.com/gin-gonic/gin"
)

// RegisterRequest represents the realtor signup request
type RegisterRequest struct {
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Phone        string `json:"phone"`
	ReferralCode string `json:"referral_code"`
}

// LoginRequest represents the realtor login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles realtor signup. When a referral code is supplied the new
// realtor is linked to the upline once, at creation; the link is immutable
// afterwards and the referral edge is written in the same transaction.
func Register(c *gin.Context) {
	utils.LogInfo("Register called")
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid registration request: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.LogError("Email already registered: %s", req.Email)
		utils.Conflict(c, "Email already registered", nil)
		return
	}

	var upline *models.User
	if req.ReferralCode != "" {
		var u models.User
		if err := config.DB.Where("referral_code = ?", req.ReferralCode).First(&u).Error; err != nil {
			utils.LogError("Invalid referral code: %s", req.ReferralCode)
			utils.BadRequest(c, "Invalid referral code", nil)
			return
		}
		upline = &u
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		utils.InternalServerError(c, "Failed to process registration", nil)
		return
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Password:     hashed,
		Phone:        req.Phone,
		ReferralCode: utils.GenerateReferralCode(),
		KYCStatus:    models.KYCStatusPending,
	}
	if upline != nil {
		user.ReferredBy = &upline.ID
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to begin transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to register", nil)
		return
	}

	// Retry once on the rare referral code collision
	if err := tx.Create(&user).Error; err != nil {
		user.ReferralCode = utils.GenerateReferralCode()
		if err := tx.Create(&user).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to create user: %v", err)
			utils.InternalServerError(c, "Failed to register", err.Error())
			return
		}
	}

	if upline != nil {
		referral := models.Referral{
			UplineID:   upline.ID,
			DownlineID: user.ID,
			Level:      1,
		}
		if err := tx.Create(&referral).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to create referral edge: %v", err)
			utils.InternalServerError(c, "Failed to register", err.Error())
			return
		}
		utils.LogDebug("Created referral edge %d -> %d", upline.ID, user.ID)
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit registration: %v", err)
		utils.InternalServerError(c, "Failed to register", err.Error())
		return
	}
	utils.LogInfo("Realtor registered successfully: %s", user.Email)

	utils.Created(c, "Registration successful", gin.H{
		"user": gin.H{
			"id":            user.ID,
			"email":         user.Email,
			"first_name":    user.FirstName,
			"last_name":     user.LastName,
			"referral_code": user.ReferralCode,
			"referred_by":   user.ReferredBy,
		},
	})
}

// Login handles realtor authentication
func Login(c *gin.Context) {
	utils.LogInfo("Login called")
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login request: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogError("Realtor not found for email: %s", req.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if user.IsBlocked {
		utils.LogError("Blocked realtor attempted login: %s", user.Email)
		utils.Forbidden(c, "Account is blocked")
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Invalid password for realtor: %s", user.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for realtor: %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to generate token", err.Error())
		return
	}

	user.LastLoginAt = time.Now()
	if err := config.DB.Save(&user).Error; err != nil {
		utils.LogError("Failed to update last login for realtor: %s: %v", user.Email, err)
	}

	utils.LogInfo("Realtor login successful: %s", user.Email)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":            user.ID,
			"email":         user.Email,
			"first_name":    user.FirstName,
			"last_name":     user.LastName,
			"referral_code": user.ReferralCode,
			"kyc_status":    user.KYCStatus,
		},
	})
}
