package models

import (
	"time"

	"gorm.io/gorm"
)

// Payout status constants
const (
	PayoutStatusPending  = "pending"
	PayoutStatusApproved = "approved"
	PayoutStatusPaid     = "paid"
	PayoutStatusRejected = "rejected"
)

// Payout is a realtor's withdrawal request. The bank fields are a snapshot of
// the chosen destination at request time, not a live reference; paid means an
// admin attested the transfer happened, nothing more.
type Payout struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	RealtorID       uint           `json:"realtor_id" gorm:"index;not null"`
	Amount          float64        `json:"amount"`
	Status          string         `json:"status" gorm:"default:'pending';index"`
	BankName        string         `json:"bank_name"`
	AccountName     string         `json:"account_name"`
	AccountNumber   string         `json:"account_number"`
	RejectionReason string         `json:"rejection_reason"`
	ProcessedAt     *time.Time     `json:"processed_at"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsTerminal reports whether the payout can no longer change status.
func (p *Payout) IsTerminal() bool {
	return p.Status == PayoutStatusPaid || p.Status == PayoutStatusRejected
}
