package utils

import (
	"github.com/Adeyinka-05/RealtyNest/models"
)

// ReconcileReferralCommissions repairs referral commissions that were
// persisted without their downline link by following the originating receipt:
// the receipt's realtor is, by definition, the downline who generated the
// sale. The repair happens on copies at read time; stored rows are never
// mutated, and running the pass twice yields the same result.
//
// Commissions whose receipt cannot be found stay unlinked. They are excluded
// from downline grouping but still belong to the beneficiary's own earnings.
func ReconcileReferralCommissions(commissions []models.Commission, receipts map[uint]models.Receipt) []models.Commission {
	reconciled := make([]models.Commission, len(commissions))
	copy(reconciled, commissions)

	for i := range reconciled {
		if reconciled[i].CommissionType != models.CommissionTypeReferral {
			continue
		}
		if reconciled[i].DownlineID != nil {
			continue
		}
		receipt, ok := receipts[reconciled[i].ReceiptID]
		if !ok {
			LogDebug("Referral commission %d has no resolvable receipt %d, leaving unlinked",
				reconciled[i].ID, reconciled[i].ReceiptID)
			continue
		}
		downlineID := receipt.RealtorID
		reconciled[i].DownlineID = &downlineID
	}

	return reconciled
}

// CollectDownlineIDs returns the set of downline realtor IDs visible in an
// upline's reconciled referral commissions. The referrals table is only a
// hint for who counts as a downline; a realtor surfaced by reconciliation
// alone must still appear in the listing.
func CollectDownlineIDs(referrals []models.Referral, reconciled []models.Commission) []uint {
	seen := make(map[uint]bool)
	var ids []uint

	for _, ref := range referrals {
		if !seen[ref.DownlineID] {
			seen[ref.DownlineID] = true
			ids = append(ids, ref.DownlineID)
		}
	}

	for _, cm := range reconciled {
		if cm.CommissionType != models.CommissionTypeReferral || cm.DownlineID == nil {
			continue
		}
		if !seen[*cm.DownlineID] {
			seen[*cm.DownlineID] = true
			ids = append(ids, *cm.DownlineID)
		}
	}

	return ids
}
