package controllers

import (
	"testing"
	"time"

	"github.com/scholarbridge/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyInputs() ResolverInputs {
	return ResolverInputs{
		Overrides:    make(map[uint]map[string]float64),
		SystemTypes:  make(map[uint]string),
		RealAmounts:  make(map[uint]map[string]float64),
		PaymentDates: make(map[uint]map[string]time.Time),
	}
}

func testApplication(id, userID uint) ApplicationEvidence {
	return ApplicationEvidence{
		ID:               id,
		StudentID:        userID + 100,
		UserID:           userID,
		StudentName:      "Maria Silva",
		StudentEmail:     "maria@example.com",
		UniversityID:     7,
		UniversityName:   "Crestwood University",
		ScholarshipID:    30 + id,
		ScholarshipTitle: "Crestwood Merit Award",
		CreatedAt:        time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func recordIDs(records []models.PaymentRecord) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestAssemble_SkipsUnresolvableApplications(t *testing.T) {
	app := testApplication(1, 10)
	app.HasPaidSelectionProcessFee = true
	app.UniversityID = 0

	records := AssemblePaymentRecords([]ApplicationEvidence{app}, nil, nil, emptyInputs())
	assert.Empty(t, records)
}

func TestAssemble_GlobalFeesEmittedOncePerUser(t *testing.T) {
	first := testApplication(1, 10)
	first.HasPaidSelectionProcessFee = true
	first.IsScholarshipFeePaid = true

	second := testApplication(2, 10)
	second.HasPaidSelectionProcessFee = true
	second.IsScholarshipFeePaid = true

	records := AssemblePaymentRecords([]ApplicationEvidence{first, second}, nil, nil, emptyInputs())

	// One selection-process record for the user, one scholarship record per
	// application.
	assert.ElementsMatch(t, []string{
		"app_1_selection_process",
		"app_1_scholarship",
		"app_2_scholarship",
	}, recordIDs(records))
}

func TestAssemble_ExcludedScholarshipSuppressesScholarshipFeeOnly(t *testing.T) {
	app := testApplication(1, 10)
	app.ScholarshipID = ExcludedScholarshipID
	app.IsScholarshipFeePaid = true
	app.HasPaidI20ControlFee = true

	records := AssemblePaymentRecords([]ApplicationEvidence{app}, nil, nil, emptyInputs())

	require.Len(t, records, 1)
	assert.Equal(t, models.FeeTypeI20Control, records[0].FeeType)
}

func TestAssemble_ZelleSkippedWhenUserHasApplication(t *testing.T) {
	app := testApplication(1, 10)
	app.HasPaidSelectionProcessFee = true

	zelle := ZelleEvidence{
		ID:        50,
		UserID:    10,
		FeeType:   "selection_process",
		Amount:    "350.00",
		Status:    models.ZelleStatusApproved,
		CreatedAt: time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC),
	}

	records := AssemblePaymentRecords([]ApplicationEvidence{app}, []ZelleEvidence{zelle}, nil, emptyInputs())

	require.Len(t, records, 1)
	assert.Equal(t, "app_1_selection_process", records[0].ID)
}

func TestAssemble_ZelleRecordShape(t *testing.T) {
	reviewed := time.Date(2025, 4, 2, 15, 30, 0, 0, time.UTC)
	zelle := ZelleEvidence{
		ID:              51,
		UserID:          11,
		StudentID:       111,
		StudentName:     "Ahmed Hassan",
		StudentEmail:    "ahmed@example.com",
		FeeType:         "scholarship fee",
		Amount:          "550.00",
		PaymentProofURL: "https://cdn.example.com/proof/51.png",
		Status:          models.ZelleStatusApproved,
		ReviewedBy:      "ops@scholarbridge.com",
		ReviewedAt:      &reviewed,
		ScholarshipsIDs: []uint{31, 32},
		CreatedAt:       time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC),
	}

	records := AssemblePaymentRecords(nil, []ZelleEvidence{zelle}, nil, emptyInputs())

	require.Len(t, records, 1)
	record := records[0]
	assert.Equal(t, "zelle_51", record.ID)
	assert.Equal(t, models.FeeTypeScholarship, record.FeeType)
	assert.Equal(t, int64(55000), record.Amount)
	assert.Equal(t, models.PaymentMethodZelle, record.PaymentMethod)
	assert.Equal(t, UnselectedUniversityName, record.UniversityName)
	assert.Equal(t, models.ZelleStatusApproved, record.ZelleStatus)
	assert.Equal(t, []uint{31, 32}, record.ScholarshipsIDs)
}

func TestAssemble_ZelleAmountFeedsResolver(t *testing.T) {
	// 380 is within tolerance of the simplified 350 default, so the
	// transfer's own amount is trusted.
	zelle := ZelleEvidence{
		ID:        52,
		UserID:    12,
		FeeType:   "selection_process",
		Amount:    "380.00",
		Status:    models.ZelleStatusPending,
		CreatedAt: time.Now(),
	}

	records := AssemblePaymentRecords(nil, []ZelleEvidence{zelle}, nil, emptyInputs())
	require.Len(t, records, 1)
	assert.Equal(t, int64(38000), records[0].Amount)

	// A wildly off amount falls back to the plan default.
	zelle.ID = 53
	zelle.Amount = "9999.00"
	records = AssemblePaymentRecords(nil, []ZelleEvidence{zelle}, nil, emptyInputs())
	require.Len(t, records, 1)
	assert.Equal(t, int64(35000), records[0].Amount)
}

func TestAssemble_ZelleUnknownFeeTypeSkipped(t *testing.T) {
	zelle := ZelleEvidence{
		ID:      54,
		UserID:  13,
		FeeType: "mystery_fee",
		Amount:  "100.00",
	}

	records := AssemblePaymentRecords(nil, []ZelleEvidence{zelle}, nil, emptyInputs())
	assert.Empty(t, records)
}

func TestAssemble_GatewayOnlyUsers(t *testing.T) {
	inputs := emptyInputs()
	inputs.SystemTypes[20] = models.SystemTypeLegacy

	gateway := GatewayEvidence{
		UserID:                     20,
		StudentID:                  20,
		StudentName:                "Chen Wei",
		StudentEmail:               "chen@example.com",
		Dependents:                 1,
		HasPaidSelectionProcessFee: true,
		HasPaidI20ControlFee:       true,
		CreatedAt:                  time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC),
	}

	records := AssemblePaymentRecords(nil, nil, []GatewayEvidence{gateway}, inputs)

	require.Len(t, records, 2)
	byID := make(map[string]models.PaymentRecord)
	for _, r := range records {
		byID[r.ID] = r
	}

	selection := byID["user_20_selection_process"]
	assert.Equal(t, int64(55000), selection.Amount) // 400 + 150 per dependent
	assert.Equal(t, models.PaymentMethodStripe, selection.PaymentMethod)
	assert.Equal(t, UnselectedUniversityName, selection.UniversityName)

	i20 := byID["user_20_i20_control_fee"]
	assert.Equal(t, int64(90000), i20.Amount)
}

func TestAssemble_GatewaySkippedWhenZelleExists(t *testing.T) {
	zelle := ZelleEvidence{
		ID:        60,
		UserID:    21,
		FeeType:   "selection_process",
		Amount:    "350.00",
		CreatedAt: time.Now(),
	}
	gateway := GatewayEvidence{
		UserID:                     21,
		HasPaidSelectionProcessFee: true,
		CreatedAt:                  time.Now(),
	}

	records := AssemblePaymentRecords(nil, []ZelleEvidence{zelle}, []GatewayEvidence{gateway}, emptyInputs())

	require.Len(t, records, 1)
	assert.Equal(t, "zelle_60", records[0].ID)
}

func TestAssemble_PaymentDatePreference(t *testing.T) {
	precise := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	last := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	inputs := emptyInputs()
	inputs.PaymentDates[10] = map[string]time.Time{
		models.FeeTypeSelectionProcess: precise,
	}

	app := testApplication(1, 10)
	app.HasPaidSelectionProcessFee = true
	app.IsApplicationFeePaid = true
	app.LastPaymentDate = &last

	records := AssemblePaymentRecords([]ApplicationEvidence{app}, nil, nil, inputs)
	require.Len(t, records, 2)

	for _, record := range records {
		require.NotNil(t, record.PaymentDate)
		switch record.FeeType {
		case models.FeeTypeSelectionProcess:
			// Precise per-fee timestamp wins.
			assert.True(t, record.PaymentDate.Equal(precise))
		case models.FeeTypeApplication:
			// No precise timestamp for this fee; the generic one applies.
			assert.True(t, record.PaymentDate.Equal(last))
		}
	}
}

func TestAssemble_EndToEndLegacyStudent(t *testing.T) {
	inputs := emptyInputs()
	inputs.SystemTypes[30] = models.SystemTypeLegacy

	app := testApplication(5, 30)
	app.Dependents = 1
	app.IsScholarshipFeePaid = true
	app.HasPaidI20ControlFee = true

	records := AssemblePaymentRecords([]ApplicationEvidence{app}, nil, nil, inputs)
	require.Len(t, records, 2)

	stats := ComputePaymentStats(records)
	assert.Equal(t, 2, stats.TotalPayments)
	assert.Equal(t, 2, stats.PaidPayments)
	// Legacy scholarship 900 plus flat I-20 900, never dependent-adjusted.
	assert.Equal(t, int64(90000+90000), stats.TotalRevenue)
}
