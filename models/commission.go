package models

import (
	"time"

	"gorm.io/gorm"
)

// Commission type constants
const (
	CommissionTypeDirect   = "direct"
	CommissionTypeReferral = "referral"
)

// Commission status constants
const (
	CommissionStatusPending  = "pending"
	CommissionStatusApproved = "approved"
	CommissionStatusPaid     = "paid"
	CommissionStatusRejected = "rejected"
)

// Commission is a financial entitlement derived from exactly one approved
// receipt. RealtorID is the beneficiary; DownlineID is set only on referral
// commissions and names the realtor who generated the sale. Older writers did
// not always populate DownlineID, so readers repair it through the receipt
// before grouping (see utils.ReconcileReferralCommissions).
//
// The unique index on (receipt_id, commission_type) is what makes attribution
// idempotent: a second approval of the same receipt cannot insert duplicates.
type Commission struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	RealtorID       uint           `json:"realtor_id" gorm:"index;not null"`
	DownlineID      *uint          `json:"downline_id" gorm:"index"`
	CommissionType  string         `json:"commission_type" gorm:"not null;uniqueIndex:idx_commission_receipt"`
	ReceiptID       uint           `json:"receipt_id" gorm:"not null;uniqueIndex:idx_commission_receipt"`
	Amount          float64        `json:"amount"`
	Status          string         `json:"status" gorm:"default:'pending';index"`
	RejectionReason string         `json:"rejection_reason"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsTerminal reports whether the commission can no longer change status.
func (cm *Commission) IsTerminal() bool {
	return cm.Status == CommissionStatusPaid || cm.Status == CommissionStatusRejected
}
