package utils

import (
	"math"
	"testing"

	"github.com/Adeyinka-05/RealtyNest/models"
	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint) *uint {
	return &v
}

func TestComputeRealtorSummary(t *testing.T) {
	t.Run("available balance is earnings minus paid withdrawals", func(t *testing.T) {
		commissions := []models.Commission{
			{RealtorID: 1, Amount: 100000, Status: models.CommissionStatusApproved},
		}
		payouts := []models.Payout{
			{RealtorID: 1, Amount: 40000, Status: models.PayoutStatusPaid},
		}

		summary := ComputeRealtorSummary(commissions, payouts)

		assert.Equal(t, 100000.0, summary.TotalEarnings)
		assert.Equal(t, 40000.0, summary.PaidWithdrawals)
		assert.Equal(t, 60000.0, summary.AvailableBalance)
	})

	t.Run("pending commissions do not count toward earnings", func(t *testing.T) {
		commissions := []models.Commission{
			{Amount: 500, Status: models.CommissionStatusPending},
			{Amount: 300, Status: models.CommissionStatusApproved},
			{Amount: 200, Status: models.CommissionStatusPaid},
		}

		summary := ComputeRealtorSummary(commissions, nil)

		assert.Equal(t, 500.0, summary.TotalEarnings)
	})

	t.Run("rejected commissions and payouts never contribute", func(t *testing.T) {
		commissions := []models.Commission{
			{Amount: 1000, Status: models.CommissionStatusRejected},
			{Amount: 100, Status: models.CommissionStatusApproved},
		}
		payouts := []models.Payout{
			{Amount: 999, Status: models.PayoutStatusRejected},
			{Amount: 50, Status: models.PayoutStatusPaid},
		}

		summary := ComputeRealtorSummary(commissions, payouts)

		assert.Equal(t, 100.0, summary.TotalEarnings)
		assert.Equal(t, 50.0, summary.TotalWithdrawals)
		assert.Equal(t, 50.0, summary.PaidWithdrawals)
		assert.Equal(t, 0.0, summary.PendingWithdrawals)
		assert.Equal(t, 50.0, summary.AvailableBalance)
	})

	t.Run("pending and approved payouts count as pending withdrawals", func(t *testing.T) {
		payouts := []models.Payout{
			{Amount: 10, Status: models.PayoutStatusPending},
			{Amount: 20, Status: models.PayoutStatusApproved},
			{Amount: 30, Status: models.PayoutStatusPaid},
		}

		summary := ComputeRealtorSummary(nil, payouts)

		assert.Equal(t, 60.0, summary.TotalWithdrawals)
		assert.Equal(t, 30.0, summary.PendingWithdrawals)
		assert.Equal(t, 30.0, summary.PaidWithdrawals)
	})

	t.Run("recomputation is deterministic", func(t *testing.T) {
		commissions := []models.Commission{
			{Amount: 123.45, Status: models.CommissionStatusApproved},
			{Amount: 678.9, Status: models.CommissionStatusPaid},
		}
		payouts := []models.Payout{
			{Amount: 100, Status: models.PayoutStatusPaid},
		}

		first := ComputeRealtorSummary(commissions, payouts)
		second := ComputeRealtorSummary(commissions, payouts)

		assert.Equal(t, first, second)
	})

	t.Run("non-finite amounts are coerced to zero", func(t *testing.T) {
		before := CoercedAmountCount()
		commissions := []models.Commission{
			{Amount: math.NaN(), Status: models.CommissionStatusApproved},
			{Amount: math.Inf(1), Status: models.CommissionStatusPaid},
			{Amount: 75, Status: models.CommissionStatusApproved},
		}

		summary := ComputeRealtorSummary(commissions, nil)

		assert.Equal(t, 75.0, summary.TotalEarnings)
		assert.Equal(t, before+2, CoercedAmountCount())
	})
}

func TestComputeDownlineEarnings(t *testing.T) {
	t.Run("groups non-rejected referral commissions by downline", func(t *testing.T) {
		commissions := []models.Commission{
			{CommissionType: models.CommissionTypeReferral, DownlineID: uintPtr(2), Amount: 100, Status: models.CommissionStatusApproved},
			{CommissionType: models.CommissionTypeReferral, DownlineID: uintPtr(2), Amount: 50, Status: models.CommissionStatusPending},
			{CommissionType: models.CommissionTypeReferral, DownlineID: uintPtr(3), Amount: 25, Status: models.CommissionStatusPaid},
		}

		earnings := ComputeDownlineEarnings(commissions)

		assert.Equal(t, 150.0, earnings[2])
		assert.Equal(t, 25.0, earnings[3])
	})

	t.Run("skips rejected, direct and unlinked rows", func(t *testing.T) {
		commissions := []models.Commission{
			{CommissionType: models.CommissionTypeReferral, DownlineID: uintPtr(2), Amount: 100, Status: models.CommissionStatusRejected},
			{CommissionType: models.CommissionTypeDirect, DownlineID: uintPtr(2), Amount: 100, Status: models.CommissionStatusApproved},
			{CommissionType: models.CommissionTypeReferral, DownlineID: nil, Amount: 100, Status: models.CommissionStatusApproved},
		}

		earnings := ComputeDownlineEarnings(commissions)

		assert.Empty(t, earnings)
	})
}

func TestCanApprovePayout(t *testing.T) {
	summary := RealtorSummary{AvailableBalance: 500}

	assert.True(t, CanApprovePayout(summary, 500))
	assert.True(t, CanApprovePayout(summary, 100))
	assert.False(t, CanApprovePayout(summary, 500.01))
}

func TestSafeAmount(t *testing.T) {
	assert.Equal(t, 42.0, SafeAmount(42))
	assert.Equal(t, 0.0, SafeAmount(math.NaN()))
	assert.Equal(t, 0.0, SafeAmount(math.Inf(-1)))
}
