package controllers

import (
	"testing"

	"github.com/scholarbridge/backend/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeFeeType(t *testing.T) {
	cases := []struct {
		tag  string
		want string
		ok   bool
	}{
		{"selection_process", models.FeeTypeSelectionProcess, true},
		{"Selection Process", models.FeeTypeSelectionProcess, true},
		{"selection_process_fee", models.FeeTypeSelectionProcess, true},
		{"application", models.FeeTypeApplication, true},
		{"application_fee", models.FeeTypeApplication, true},
		{"scholarship fee", models.FeeTypeScholarship, true},
		{"SCHOLARSHIP", models.FeeTypeScholarship, true},
		{"i20_control_fee", models.FeeTypeI20Control, true},
		{"I-20", models.FeeTypeI20Control, true},
		{"  i20  ", models.FeeTypeI20Control, true},
		{"enrollment", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizeFeeType(tc.tag)
		assert.Equal(t, tc.ok, ok, "tag %q", tc.tag)
		assert.Equal(t, tc.want, got, "tag %q", tc.tag)
	}
}

func TestExpectedFeeAmount_SelectionProcess(t *testing.T) {
	// Simplified plans are flat regardless of dependents.
	simplified := FeeContext{SystemType: models.SystemTypeSimplified, Dependents: 3}
	assert.Equal(t, int64(35000), ExpectedFeeAmount(models.FeeTypeSelectionProcess, simplified))

	legacy := FeeContext{SystemType: models.SystemTypeLegacy}
	assert.Equal(t, int64(40000), ExpectedFeeAmount(models.FeeTypeSelectionProcess, legacy))

	legacy.Dependents = 2
	assert.Equal(t, int64(70000), ExpectedFeeAmount(models.FeeTypeSelectionProcess, legacy))
}

func TestExpectedFeeAmount_Scholarship(t *testing.T) {
	simplified := FeeContext{SystemType: models.SystemTypeSimplified, Dependents: 4}
	assert.Equal(t, int64(55000), ExpectedFeeAmount(models.FeeTypeScholarship, simplified))

	// Dependents never adjust the scholarship fee.
	legacy := FeeContext{SystemType: models.SystemTypeLegacy, Dependents: 4}
	assert.Equal(t, int64(90000), ExpectedFeeAmount(models.FeeTypeScholarship, legacy))
}

func TestExpectedFeeAmount_Application(t *testing.T) {
	// Global default with dependents, any plan.
	ctx := FeeContext{SystemType: models.SystemTypeSimplified, Dependents: 2}
	assert.Equal(t, int64(55000), ExpectedFeeAmount(models.FeeTypeApplication, ctx))

	// Scholarship-configured fee in dollars; simplified plans ignore dependents.
	ctx.ScholarshipApplicationFee = 500
	assert.Equal(t, int64(50000), ExpectedFeeAmount(models.FeeTypeApplication, ctx))

	// Legacy plans still add the per-dependent surcharge on top.
	legacy := FeeContext{SystemType: models.SystemTypeLegacy, Dependents: 2, ScholarshipApplicationFee: 500}
	assert.Equal(t, int64(70000), ExpectedFeeAmount(models.FeeTypeApplication, legacy))

	// Values above 1000 are already cents.
	ctx.ScholarshipApplicationFee = 45000
	ctx.Dependents = 0
	assert.Equal(t, int64(45000), ExpectedFeeAmount(models.FeeTypeApplication, ctx))
}

func TestExpectedFeeAmount_I20Control(t *testing.T) {
	// Flat for every plan and dependent count.
	for _, ctx := range []FeeContext{
		{SystemType: models.SystemTypeSimplified},
		{SystemType: models.SystemTypeLegacy, Dependents: 5},
	} {
		assert.Equal(t, int64(90000), ExpectedFeeAmount(models.FeeTypeI20Control, ctx))
	}
}

func TestResolveFee_PlausibleRealAmountWins(t *testing.T) {
	ctx := FeeContext{
		SystemType:  models.SystemTypeLegacy,
		RealAmounts: map[string]float64{models.FeeTypeSelectionProcess: 380},
		Overrides:   map[string]float64{models.FeeTypeSelectionProcess: 420},
	}

	// 38000 cents sits inside [20000, 60000] around the expected 40000, so
	// the observed amount beats both the override and the default.
	assert.Equal(t, int64(38000), ResolveFee(models.FeeTypeSelectionProcess, ctx))
}

func TestResolveFee_ImplausibleRealAmountFallsToOverride(t *testing.T) {
	ctx := FeeContext{
		SystemType:  models.SystemTypeLegacy,
		RealAmounts: map[string]float64{models.FeeTypeSelectionProcess: 1000},
		Overrides:   map[string]float64{models.FeeTypeSelectionProcess: 420},
	}

	// 100000 cents is beyond 1.5x the expected 40000.
	assert.Equal(t, int64(42000), ResolveFee(models.FeeTypeSelectionProcess, ctx))
}

func TestResolveFee_ToleranceBoundsAreInclusive(t *testing.T) {
	ctx := FeeContext{SystemType: models.SystemTypeLegacy}

	// Expected 40000 cents; exactly half and exactly 1.5x are accepted.
	ctx.RealAmounts = map[string]float64{models.FeeTypeSelectionProcess: 200}
	assert.Equal(t, int64(20000), ResolveFee(models.FeeTypeSelectionProcess, ctx))

	ctx.RealAmounts = map[string]float64{models.FeeTypeSelectionProcess: 600}
	assert.Equal(t, int64(60000), ResolveFee(models.FeeTypeSelectionProcess, ctx))

	// One cent beyond either bound is rejected.
	ctx.RealAmounts = map[string]float64{models.FeeTypeSelectionProcess: 199.99}
	assert.Equal(t, int64(40000), ResolveFee(models.FeeTypeSelectionProcess, ctx))

	ctx.RealAmounts = map[string]float64{models.FeeTypeSelectionProcess: 600.01}
	assert.Equal(t, int64(40000), ResolveFee(models.FeeTypeSelectionProcess, ctx))
}

func TestResolveFee_IgnoresNonPositiveSignals(t *testing.T) {
	ctx := FeeContext{
		SystemType:  models.SystemTypeSimplified,
		RealAmounts: map[string]float64{models.FeeTypeScholarship: 0},
		Overrides:   map[string]float64{models.FeeTypeScholarship: -10},
	}

	assert.Equal(t, int64(55000), ResolveFee(models.FeeTypeScholarship, ctx))
}

func TestResolveFee_DefaultWhenNoSignals(t *testing.T) {
	ctx := FeeContext{SystemType: models.SystemTypeLegacy, Dependents: 1}
	assert.Equal(t, int64(55000), ResolveFee(models.FeeTypeSelectionProcess, ctx))
}
