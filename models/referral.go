package models

import (
	"time"

	"gorm.io/gorm"
)

// Referral is a directed upline -> downline edge, created once when the
// downline signs up with the upline's code. CommissionEarned is a denormalized
// convenience figure only; totals are always recomputed from commission rows.
type Referral struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	UplineID         uint           `json:"upline_id" gorm:"not null;uniqueIndex:idx_referral_edge"`
	DownlineID       uint           `json:"downline_id" gorm:"not null;uniqueIndex:idx_referral_edge"`
	Level            int            `json:"level" gorm:"default:1"`
	CommissionEarned float64        `json:"commission_earned" gorm:"default:0"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
