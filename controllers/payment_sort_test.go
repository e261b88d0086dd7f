package controllers

import (
	"testing"
	"time"

	"github.com/scholarbridge/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortFixture() []models.PaymentRecord {
	early := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	return []models.PaymentRecord{
		{ID: "a", StudentName: "maria", Amount: 55000, PaymentDate: &late},
		{ID: "b", StudentName: "Ahmed", Amount: 35000, PaymentDate: &early},
		{ID: "c", StudentName: "", Amount: 90000, PaymentDate: nil},
	}
}

func TestSort_AmountAscending(t *testing.T) {
	sorted := SortPaymentRecords(sortFixture(), "amount", "asc")

	require.Len(t, sorted, 3)
	assert.Equal(t, []int64{35000, 55000, 90000}, []int64{sorted[0].Amount, sorted[1].Amount, sorted[2].Amount})
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	records := sortFixture()
	SortPaymentRecords(records, "amount", "asc")

	assert.Equal(t, "a", records[0].ID)
}

func TestSort_StringsCaseInsensitive(t *testing.T) {
	sorted := SortPaymentRecords(sortFixture(), "student_name", "asc")

	// "Ahmed" before "maria" despite the capital; empty name is null and
	// sorts last.
	assert.Equal(t, "b", sorted[0].ID)
	assert.Equal(t, "a", sorted[1].ID)
	assert.Equal(t, "c", sorted[2].ID)
}

func TestSort_NullsLastInBothDirections(t *testing.T) {
	asc := SortPaymentRecords(sortFixture(), "payment_date", "asc")
	desc := SortPaymentRecords(sortFixture(), "payment_date", "desc")

	assert.Equal(t, "c", asc[len(asc)-1].ID)
	assert.Equal(t, "c", desc[len(desc)-1].ID)

	// Direction flips only the non-null prefix.
	assert.Equal(t, "b", asc[0].ID)
	assert.Equal(t, "a", desc[0].ID)
}

func TestSort_UnknownFieldFallsBackToID(t *testing.T) {
	sorted := SortPaymentRecords(sortFixture(), "nonsense", "asc")

	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "b", sorted[1].ID)
	assert.Equal(t, "c", sorted[2].ID)
}
