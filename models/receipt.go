package models

import (
	"time"

	"gorm.io/gorm"
)

// Receipt status constants
const (
	ReceiptStatusPending     = "pending"
	ReceiptStatusUnderReview = "under_review"
	ReceiptStatusApproved    = "approved"
	ReceiptStatusRejected    = "rejected"
)

// Receipt is a realtor's claim that a property was sold, with uploaded proof.
// Status moves pending -> under_review -> approved/rejected; approved and
// rejected are terminal.
type Receipt struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	RealtorID       uint           `json:"realtor_id" gorm:"index;not null"`
	Realtor         User           `json:"-" gorm:"foreignKey:RealtorID"`
	PropertyID      uint           `json:"property_id" gorm:"index"`
	ClientName      string         `json:"client_name"`
	AmountPaid      float64        `json:"amount_paid"`
	Status          string         `json:"status" gorm:"default:'pending';index"`
	ReceiptURLs     string         `json:"receipt_urls"` // comma-separated opaque references
	RejectionReason string         `json:"rejection_reason"`
	ReviewedAt      *time.Time     `json:"reviewed_at"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsTerminal reports whether the receipt has reached a final review outcome.
func (r *Receipt) IsTerminal() bool {
	return r.Status == ReceiptStatusApproved || r.Status == ReceiptStatusRejected
}
