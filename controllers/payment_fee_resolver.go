package controllers

import (
	"math"
	"strings"

	"github.com/scholarbridge/backend/models"
	"github.com/scholarbridge/backend/utils"
)

// Plan-default fee amounts in dollars
const (
	SelectionProcessFeeSimplified = 350
	SelectionProcessFeeLegacy     = 400
	SelectionProcessDependentFee  = 150

	ScholarshipFeeSimplified = 550
	ScholarshipFeeLegacy     = 900

	DefaultApplicationFee   = 350
	ApplicationDependentFee = 100

	DefaultI20ControlFee = 900
)

// RealAmountTolerance is the band around the expected amount within which an
// observed gateway amount is trusted over computed defaults. Observed amounts
// may include currency or promo variance but must not mask a wrong fee
// entirely.
const RealAmountTolerance = 0.5

// FeeContext carries everything the resolver needs to price one student's
// fees: pricing-plan generation, dependent count, administrator overrides and
// observed gateway amounts (both in dollars), and the scholarship's own
// configured application fee when the fee is being priced for a specific
// scholarship.
type FeeContext struct {
	UserID      uint
	SystemType  string
	Dependents  int
	Overrides   map[string]float64
	RealAmounts map[string]float64

	// ScholarshipApplicationFee is the scholarship's own configured
	// application fee. Zero means the global default applies. Raw values
	// above 1000 are already in cents, smaller values are dollars.
	ScholarshipApplicationFee float64
}

// NormalizeFeeType maps every source-specific fee-type spelling onto the
// closed fee-type enum. The zelle flow and the legacy gateway report the same
// fees under different tags, so all engine logic runs on normalized values
// only.
func NormalizeFeeType(tag string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "selection_process", "selection_process_fee", "selection process", "selection":
		return models.FeeTypeSelectionProcess, true
	case "application", "application_fee", "application fee":
		return models.FeeTypeApplication, true
	case "scholarship", "scholarship_fee", "scholarship fee":
		return models.FeeTypeScholarship, true
	case "i20_control_fee", "i20_control", "i20", "i-20", "i20 control fee":
		return models.FeeTypeI20Control, true
	}
	return "", false
}

// ExpectedFeeAmount computes the plan-default amount for a fee kind in cents,
// adjusted by dependents where the fee kind is dependent-sensitive.
func ExpectedFeeAmount(feeType string, ctx FeeContext) int64 {
	legacy := ctx.SystemType == models.SystemTypeLegacy

	switch feeType {
	case models.FeeTypeSelectionProcess:
		base := SelectionProcessFeeSimplified
		if legacy {
			base = SelectionProcessFeeLegacy
			// Simplified plans are flat regardless of dependents.
			base += SelectionProcessDependentFee * ctx.Dependents
		}
		return int64(base) * 100

	case models.FeeTypeScholarship:
		if legacy {
			return int64(ScholarshipFeeLegacy) * 100
		}
		return int64(ScholarshipFeeSimplified) * 100

	case models.FeeTypeApplication:
		if ctx.ScholarshipApplicationFee > 0 {
			raw := ctx.ScholarshipApplicationFee
			cents := int64(math.Round(raw * 100))
			if raw > 1000 {
				// Already stored in cents.
				cents = int64(math.Round(raw))
			}
			// Dependents only raise a scholarship-configured fee on
			// legacy plans.
			if legacy {
				cents += int64(ApplicationDependentFee*ctx.Dependents) * 100
			}
			return cents
		}
		// Global default: dependents always apply.
		return int64(DefaultApplicationFee+ApplicationDependentFee*ctx.Dependents) * 100

	case models.FeeTypeI20Control:
		return int64(DefaultI20ControlFee) * 100
	}

	return 0
}

// ResolveFee resolves the canonical amount for one fee kind in cents.
//
// Precedence: an observed gateway amount wins when plausible, a manual
// override wins over guesswork, and the computed default is the last resort.
// Reversing the first two steps would let a stale override silently shadow a
// verified real payment.
func ResolveFee(feeType string, ctx FeeContext) int64 {
	expected := ExpectedFeeAmount(feeType, ctx)

	if real, ok := ctx.RealAmounts[feeType]; ok && real > 0 {
		realCents := int64(math.Round(real * 100))
		lower := float64(expected) * (1 - RealAmountTolerance)
		upper := float64(expected) * (1 + RealAmountTolerance)
		if float64(realCents) >= lower && float64(realCents) <= upper {
			return realCents
		}
		// Diagnostic only; behavior falls through to the next tier.
		utils.LogInfo("Ignoring implausible gateway amount for user %d, fee %s: got %d cents, expected %d cents",
			ctx.UserID, feeType, realCents, expected)
	}

	if override, ok := ctx.Overrides[feeType]; ok && override > 0 {
		return int64(math.Round(override * 100))
	}

	return expected
}
