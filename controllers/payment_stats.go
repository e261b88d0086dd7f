package controllers

import (
	"github.com/scholarbridge/backend/models"
)

// ComputePaymentStats reduces a record collection into the admin summary:
// counts by status, total revenue across paid records, and the slice of that
// revenue collected manually. MonthlyGrowth is reserved and always zero.
func ComputePaymentStats(records []models.PaymentRecord) models.PaymentStats {
	stats := models.PaymentStats{}
	for _, record := range records {
		stats.TotalPayments++
		switch record.Status {
		case models.PaymentStatusPaid:
			stats.PaidPayments++
			stats.TotalRevenue += record.Amount
			if record.PaymentMethod == models.PaymentMethodManual {
				stats.ManualRevenue += record.Amount
			}
		case models.PaymentStatusPending:
			stats.PendingPayments++
		}
	}
	return stats
}

// ComputeSelectionTotals sums the amounts of a user-selected subset of record
// ids and breaks the selection down by payment method. Records without a
// method are counted as manual.
func ComputeSelectionTotals(records []models.PaymentRecord, selectedIDs []string) models.SelectionTotals {
	selected := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}

	totals := models.SelectionTotals{
		ByMethod: make(map[string]models.MethodTotal),
	}
	for _, record := range records {
		if !selected[record.ID] {
			continue
		}
		totals.Count++
		totals.TotalAmount += record.Amount

		method := record.PaymentMethod
		if method == "" {
			method = models.PaymentMethodManual
		}
		entry := totals.ByMethod[method]
		entry.Count++
		entry.Amount += record.Amount
		totals.ByMethod[method] = entry
	}
	return totals
}
