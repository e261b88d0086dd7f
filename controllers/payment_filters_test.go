package controllers

import (
	"testing"
	"time"

	"github.com/scholarbridge/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixture() []models.PaymentRecord {
	march := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	april := time.Date(2025, 4, 20, 10, 0, 0, 0, time.UTC)
	return []models.PaymentRecord{
		{
			ID:                 "app_1_selection_process",
			StudentName:        "Maria Silva",
			StudentEmail:       "maria@example.com",
			UniversityID:       7,
			UniversityName:     "Crestwood University",
			ScholarshipTitle:   "Crestwood Merit Award",
			FeeType:            models.FeeTypeSelectionProcess,
			Status:             models.PaymentStatusPaid,
			PaymentMethod:      models.PaymentMethodStripe,
			PaymentDate:        &march,
			SellerReferralCode: "AGENT7",
		},
		{
			ID:             "zelle_2",
			StudentName:    "Ahmed Hassan",
			StudentEmail:   "ahmed@example.com",
			UniversityName: UnselectedUniversityName,
			FeeType:        models.FeeTypeScholarship,
			Status:         models.PaymentStatusPaid,
			PaymentMethod:  models.PaymentMethodZelle,
			PaymentDate:    &april,
		},
		{
			ID:               "app_3_scholarship",
			StudentName:      "Test Account",
			StudentEmail:     "qa@example.com",
			ScholarshipTitle: ExcludedScholarshipTitle,
			FeeType:          models.FeeTypeScholarship,
			Status:           models.PaymentStatusPaid,
			PaymentMethod:    models.PaymentMethodStripe,
			PaymentDate:      &march,
		},
	}
}

func TestFilter_NoFiltersDropsOnlyExcludedScholarship(t *testing.T) {
	records := FilterPaymentRecords(filterFixture(), models.AdminPaymentsFilters{}, nil)

	require.Len(t, records, 2)
	for _, r := range records {
		assert.NotEqual(t, ExcludedScholarshipTitle, r.ScholarshipTitle)
	}
}

func TestFilter_SearchMatchesAnyIdentityField(t *testing.T) {
	records := FilterPaymentRecords(filterFixture(), models.AdminPaymentsFilters{Search: "crestwood"}, nil)
	require.Len(t, records, 1)
	assert.Equal(t, "app_1_selection_process", records[0].ID)

	records = FilterPaymentRecords(filterFixture(), models.AdminPaymentsFilters{Search: "AHMED@"}, nil)
	require.Len(t, records, 1)
	assert.Equal(t, "zelle_2", records[0].ID)

	records = FilterPaymentRecords(filterFixture(), models.AdminPaymentsFilters{Search: "nobody"}, nil)
	assert.Empty(t, records)
}

func TestFilter_FiltersAreConjunctive(t *testing.T) {
	filters := models.AdminPaymentsFilters{
		Search:        "example.com",
		FeeType:       models.FeeTypeScholarship,
		PaymentMethod: models.PaymentMethodZelle,
	}

	records := FilterPaymentRecords(filterFixture(), filters, nil)
	require.Len(t, records, 1)
	assert.Equal(t, "zelle_2", records[0].ID)
}

func TestFilter_AllSentinelPasses(t *testing.T) {
	filters := models.AdminPaymentsFilters{
		FeeType:       "all",
		Status:        "all",
		PaymentMethod: "all",
	}

	records := FilterPaymentRecords(filterFixture(), filters, nil)
	assert.Len(t, records, 2)
}

func TestFilter_DateRangeInclusive(t *testing.T) {
	from := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
	filters := models.AdminPaymentsFilters{DateFrom: &from, DateTo: &to}

	records := FilterPaymentRecords(filterFixture(), filters, nil)
	require.Len(t, records, 1)
	assert.Equal(t, "app_1_selection_process", records[0].ID)
}

func TestFilter_DateFallsBackToCreatedAt(t *testing.T) {
	created := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	records := []models.PaymentRecord{{ID: "user_9_application", CreatedAt: created}}

	from := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)
	got := FilterPaymentRecords(records, models.AdminPaymentsFilters{DateFrom: &from}, nil)
	assert.Len(t, got, 1)

	from = time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	got = FilterPaymentRecords(records, models.AdminPaymentsFilters{DateFrom: &from}, nil)
	assert.Empty(t, got)
}

func TestResolveAffiliateID(t *testing.T) {
	affiliates := []models.Seller{
		{ReferralCode: "AGENT7", SubCodes: []models.SellerSubCode{{Code: "AGENT7-B"}}},
		{ReferralCode: "PARTNER1"},
	}
	affiliates[0].ID = 3
	affiliates[1].ID = 4

	assert.Equal(t, uint(3), ResolveAffiliateID("AGENT7", affiliates))
	assert.Equal(t, uint(3), ResolveAffiliateID("agent7-b", affiliates))
	assert.Equal(t, uint(4), ResolveAffiliateID("partner1", affiliates))
	assert.Equal(t, uint(0), ResolveAffiliateID("UNKNOWN", affiliates))
	assert.Equal(t, uint(0), ResolveAffiliateID("", affiliates))
}

func TestFilter_AffiliateAttribution(t *testing.T) {
	affiliates := []models.Seller{{ReferralCode: "AGENT7"}}
	affiliates[0].ID = 3

	records := FilterPaymentRecords(filterFixture(), models.AdminPaymentsFilters{AffiliateID: 3}, affiliates)
	require.Len(t, records, 1)
	assert.Equal(t, "app_1_selection_process", records[0].ID)

	records = FilterPaymentRecords(filterFixture(), models.AdminPaymentsFilters{AffiliateID: 99}, affiliates)
	assert.Empty(t, records)
}
