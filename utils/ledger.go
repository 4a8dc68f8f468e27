package utils

import (
	"math"
	"sync/atomic"

	"github.com/Adeyinka-05/RealtyNest/models"
)

// coercedAmounts counts NaN/Inf amounts that were coerced to zero while
// summing. The coercion keeps dashboards renderable but masks bad upstream
// data, so it has to stay visible somewhere.
var coercedAmounts uint64

// CoercedAmountCount returns how many amounts have been coerced to zero
// since startup.
func CoercedAmountCount() uint64 {
	return atomic.LoadUint64(&coercedAmounts)
}

// SafeAmount coerces non-finite amounts to zero so a single garbage row
// cannot poison every total derived from it.
func SafeAmount(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		atomic.AddUint64(&coercedAmounts, 1)
		LogError("Non-finite amount coerced to zero: %v", amount)
		return 0
	}
	return amount
}

// RealtorSummary holds the financial aggregates for one realtor. Everything
// here is recomputed from commission and payout rows on every request; no
// running total is ever read back from storage.
type RealtorSummary struct {
	TotalEarnings      float64 `json:"total_earnings"`
	TotalWithdrawals   float64 `json:"total_withdrawals"`
	PendingWithdrawals float64 `json:"pending_withdrawals"`
	PaidWithdrawals    float64 `json:"paid_withdrawals"`
	AvailableBalance   float64 `json:"available_balance"`
}

// ComputeRealtorSummary derives a realtor's aggregates from their commission
// and payout rows. Callers pass rows already scoped to one realtor; referral
// commissions should be reconciled first when downline grouping matters,
// though the summary itself only keys on the beneficiary.
func ComputeRealtorSummary(commissions []models.Commission, payouts []models.Payout) RealtorSummary {
	var summary RealtorSummary

	for _, cm := range commissions {
		if cm.Status == models.CommissionStatusApproved || cm.Status == models.CommissionStatusPaid {
			summary.TotalEarnings += SafeAmount(cm.Amount)
		}
	}

	for _, p := range payouts {
		amount := SafeAmount(p.Amount)
		switch p.Status {
		case models.PayoutStatusRejected:
			// excluded from every total
		case models.PayoutStatusPaid:
			summary.TotalWithdrawals += amount
			summary.PaidWithdrawals += amount
		default:
			summary.TotalWithdrawals += amount
			summary.PendingWithdrawals += amount
		}
	}

	summary.AvailableBalance = summary.TotalEarnings - summary.PaidWithdrawals
	return summary
}

// ComputeDownlineEarnings sums referral commissions per downline for an
// upline's referral view. Only non-rejected referral-type commissions count,
// and rows must have been reconciled first so that commissions persisted
// without a downline link are not silently dropped.
func ComputeDownlineEarnings(commissions []models.Commission) map[uint]float64 {
	earnings := make(map[uint]float64)
	for _, cm := range commissions {
		if cm.CommissionType != models.CommissionTypeReferral {
			continue
		}
		if cm.Status == models.CommissionStatusRejected {
			continue
		}
		if cm.DownlineID == nil {
			continue
		}
		earnings[*cm.DownlineID] += SafeAmount(cm.Amount)
	}
	return earnings
}

// CanApprovePayout reports whether approving a payout of the given amount
// would keep the realtor's available balance non-negative. Whether a failed
// check blocks or merely warns is the caller's policy decision.
func CanApprovePayout(summary RealtorSummary, amount float64) bool {
	return SafeAmount(amount) <= summary.AvailableBalance
}

// PlatformSummary holds platform-wide aggregates for the admin dashboard.
type PlatformSummary struct {
	TotalEarnings      float64 `json:"total_earnings"`
	PendingCommissions float64 `json:"pending_commissions"`
	PaidWithdrawals    float64 `json:"paid_withdrawals"`
	PendingWithdrawals float64 `json:"pending_withdrawals"`
	ReceiptsPending    int64   `json:"receipts_pending"`
	ReceiptsApproved   int64   `json:"receipts_approved"`
	ReceiptsRejected   int64   `json:"receipts_rejected"`
}

// ComputePlatformSummary derives the platform-wide financial aggregates from
// the full commission and payout sets.
func ComputePlatformSummary(commissions []models.Commission, payouts []models.Payout) PlatformSummary {
	var summary PlatformSummary

	for _, cm := range commissions {
		amount := SafeAmount(cm.Amount)
		switch cm.Status {
		case models.CommissionStatusApproved, models.CommissionStatusPaid:
			summary.TotalEarnings += amount
		case models.CommissionStatusPending:
			summary.PendingCommissions += amount
		}
	}

	for _, p := range payouts {
		amount := SafeAmount(p.Amount)
		switch p.Status {
		case models.PayoutStatusPaid:
			summary.PaidWithdrawals += amount
		case models.PayoutStatusPending, models.PayoutStatusApproved:
			summary.PendingWithdrawals += amount
		}
	}

	return summary
}
