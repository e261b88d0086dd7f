package controllers

import (
	"testing"

	"github.com/scholarbridge/backend/models"
	"github.com/stretchr/testify/assert"
)

func statsFixture() []models.PaymentRecord {
	return []models.PaymentRecord{
		{ID: "r1", Amount: 35000, Status: models.PaymentStatusPaid, PaymentMethod: models.PaymentMethodStripe},
		{ID: "r2", Amount: 55000, Status: models.PaymentStatusPaid, PaymentMethod: models.PaymentMethodManual},
		{ID: "r3", Amount: 90000, Status: models.PaymentStatusPending, PaymentMethod: models.PaymentMethodZelle},
		{ID: "r4", Amount: 40000, Status: models.PaymentStatusFailed, PaymentMethod: models.PaymentMethodStripe},
	}
}

func TestComputePaymentStats(t *testing.T) {
	stats := ComputePaymentStats(statsFixture())

	assert.Equal(t, 4, stats.TotalPayments)
	assert.Equal(t, 2, stats.PaidPayments)
	assert.Equal(t, 1, stats.PendingPayments)

	// Revenue counts paid records only; failed and pending never contribute.
	assert.Equal(t, int64(90000), stats.TotalRevenue)
	assert.Equal(t, int64(55000), stats.ManualRevenue)
	assert.Equal(t, 0, stats.MonthlyGrowth)
}

func TestComputePaymentStats_Empty(t *testing.T) {
	stats := ComputePaymentStats(nil)

	assert.Equal(t, 0, stats.TotalPayments)
	assert.Equal(t, int64(0), stats.TotalRevenue)
}

func TestComputeSelectionTotals(t *testing.T) {
	totals := ComputeSelectionTotals(statsFixture(), []string{"r1", "r2", "r3", "missing"})

	assert.Equal(t, 3, totals.Count)
	assert.Equal(t, int64(180000), totals.TotalAmount)

	assert.Equal(t, models.MethodTotal{Count: 1, Amount: 35000}, totals.ByMethod[models.PaymentMethodStripe])
	assert.Equal(t, models.MethodTotal{Count: 1, Amount: 55000}, totals.ByMethod[models.PaymentMethodManual])
	assert.Equal(t, models.MethodTotal{Count: 1, Amount: 90000}, totals.ByMethod[models.PaymentMethodZelle])
}

func TestComputeSelectionTotals_EmptyMethodCountsAsManual(t *testing.T) {
	records := []models.PaymentRecord{
		{ID: "r5", Amount: 10000, Status: models.PaymentStatusPaid},
	}

	totals := ComputeSelectionTotals(records, []string{"r5"})
	assert.Equal(t, models.MethodTotal{Count: 1, Amount: 10000}, totals.ByMethod[models.PaymentMethodManual])
}

func TestComputeSelectionTotals_NoSelection(t *testing.T) {
	totals := ComputeSelectionTotals(statsFixture(), nil)

	assert.Equal(t, 0, totals.Count)
	assert.Equal(t, int64(0), totals.TotalAmount)
	assert.Empty(t, totals.ByMethod)
}
