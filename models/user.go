package models

import (
	"time"

	"gorm.io/gorm"
)

// KYC status constants
const (
	KYCStatusPending  = "pending"
	KYCStatusVerified = "verified"
	KYCStatusRejected = "rejected"
)

// User represents a realtor on the platform
type User struct {
	gorm.Model
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     string    `json:"-"`
	Phone        string    `json:"phone"`
	ReferralCode string    `gorm:"uniqueIndex;not null" json:"referral_code"`
	ReferredBy   *uint     `json:"referred_by"`
	KYCStatus    string    `json:"kyc_status" gorm:"default:'pending'"`
	IsBlocked    bool      `json:"is_blocked"`
	LastLoginAt  time.Time `json:"last_login_at"`

	BankDetails []BankDetail `json:"bank_details,omitempty" gorm:"foreignKey:UserID"`
}

// Admin represents a back-office administrator
type Admin struct {
	gorm.Model
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	LastLogin time.Time `json:"last_login"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
}

// BankDetail is a payout destination registered by a realtor
type BankDetail struct {
	gorm.Model
	UserID        uint   `json:"user_id" gorm:"index;not null"`
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	IsDefault     bool   `json:"is_default" gorm:"default:false"`
}
