package controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/scholarbridge/backend/models"
	"github.com/scholarbridge/backend/utils"
)

// ExcludedScholarshipID is a known non-billable legacy scholarship whose
// scholarship-fee flag must never produce a record. The business rule behind
// it is not documented; preserved for parity, pending product clarification.
const ExcludedScholarshipID uint = 208

// UnselectedUniversityName is the sentinel shown for records that carry no
// real university attribution, such as legacy gateway-only payments.
const UnselectedUniversityName = "Not selected"

// globalFeeTypes are the fee kinds charged once per student regardless of how
// many scholarships they pursue.
var globalFeeTypes = map[string]bool{
	models.FeeTypeSelectionProcess: true,
	models.FeeTypeApplication:      true,
	models.FeeTypeI20Control:       true,
}

// AssemblePaymentRecords walks the three evidence sources in precedence order
// (applications, then zelle transfers, then legacy gateway flags) and emits
// one normalized PaymentRecord per (student, fee kind) occurrence actually
// marked paid. Global fee kinds are emitted at most once per student; the
// scholarship fee is emitted once per application. The emission tracking maps
// are local to this call and discarded at return.
func AssemblePaymentRecords(apps []ApplicationEvidence, zelles []ZelleEvidence, gateways []GatewayEvidence, inputs ResolverInputs) []models.PaymentRecord {
	records := make([]models.PaymentRecord, 0, len(apps)+len(zelles))

	emittedGlobal := make(map[uint]map[string]bool)
	hasApplication := make(map[uint]bool)
	hasZelle := make(map[uint]bool)

	markEmitted := func(userID uint, feeType string) {
		if emittedGlobal[userID] == nil {
			emittedGlobal[userID] = make(map[string]bool)
		}
		emittedGlobal[userID][feeType] = true
	}

	// 1. Application-backed evidence.
	for _, app := range apps {
		if app.StudentID == 0 || app.UserID == 0 || app.ScholarshipID == 0 || app.UniversityID == 0 {
			utils.LogDebug("Skipping application %d with unresolvable student/scholarship/university linkage", app.ID)
			continue
		}
		hasApplication[app.UserID] = true

		feeCtx := feeContextFor(app.UserID, app.Dependents, app.ScholarshipApplicationFee, inputs)

		emit := func(feeType string) {
			record := models.PaymentRecord{
				ID:                 fmt.Sprintf("app_%d_%s", app.ID, feeType),
				StudentID:          app.StudentID,
				UserID:             app.UserID,
				StudentName:        app.StudentName,
				StudentEmail:       app.StudentEmail,
				UniversityID:       app.UniversityID,
				UniversityName:     app.UniversityName,
				ScholarshipID:      app.ScholarshipID,
				ScholarshipTitle:   app.ScholarshipTitle,
				FieldOfStudy:       app.FieldOfStudy,
				FeeType:            feeType,
				FeeTypeGlobal:      app.FeeTypeGlobal,
				Amount:             ResolveFee(feeType, feeCtx),
				Status:             models.PaymentStatusPaid,
				PaymentDate:        paymentDateFor(inputs, app.UserID, feeType, app.LastPaymentDate, app.CreatedAt),
				CreatedAt:          app.CreatedAt,
				PaymentMethod:      normalizePaymentMethod(app.PaymentMethod),
				SellerReferralCode: app.SellerReferralCode,
			}
			if app.CouponCode != "" {
				record.Metadata = map[string]interface{}{"coupon_code": app.CouponCode}
			}
			records = append(records, record)
		}

		for _, pair := range []struct {
			feeType string
			paid    bool
		}{
			{models.FeeTypeSelectionProcess, app.HasPaidSelectionProcessFee},
			{models.FeeTypeApplication, app.IsApplicationFeePaid},
			{models.FeeTypeScholarship, app.IsScholarshipFeePaid},
			{models.FeeTypeI20Control, app.HasPaidI20ControlFee},
		} {
			if !pair.paid {
				continue
			}
			if globalFeeTypes[pair.feeType] {
				if emittedGlobal[app.UserID][pair.feeType] {
					continue
				}
				markEmitted(app.UserID, pair.feeType)
				emit(pair.feeType)
				continue
			}
			// Scholarship fee is per-application, except the known
			// non-billable legacy scholarship.
			if app.ScholarshipID == ExcludedScholarshipID {
				utils.LogDebug("Suppressing scholarship fee for excluded scholarship %d (application %d)", app.ScholarshipID, app.ID)
				continue
			}
			emit(pair.feeType)
		}
	}

	// 2. Bank-transfer-with-proof evidence. Application evidence takes
	// precedence, so users already attributed above are skipped entirely.
	seenZelleKinds := make(map[uint]map[string]bool)
	for _, row := range zelles {
		if hasApplication[row.UserID] {
			continue
		}
		feeType, ok := NormalizeFeeType(row.FeeType)
		if !ok {
			utils.LogDebug("Skipping zelle payment %d with unknown fee type %q", row.ID, row.FeeType)
			continue
		}
		if seenZelleKinds[row.UserID] == nil {
			seenZelleKinds[row.UserID] = make(map[string]bool)
		}
		if seenZelleKinds[row.UserID][feeType] {
			continue
		}
		seenZelleKinds[row.UserID][feeType] = true
		hasZelle[row.UserID] = true
		if globalFeeTypes[feeType] {
			markEmitted(row.UserID, feeType)
		}

		feeCtx := feeContextFor(row.UserID, row.Dependents, 0, inputs)
		// The transfer's own amount is the observed signal for this fee;
		// the resolver applies the usual plausibility check.
		if amount, err := strconv.ParseFloat(row.Amount, 64); err == nil && amount > 0 {
			realAmounts := make(map[string]float64, len(feeCtx.RealAmounts)+1)
			for k, v := range feeCtx.RealAmounts {
				realAmounts[k] = v
			}
			realAmounts[feeType] = amount
			feeCtx.RealAmounts = realAmounts
		}

		studentID := row.StudentID
		if studentID == 0 {
			studentID = row.UserID
		}
		records = append(records, models.PaymentRecord{
			ID:                 fmt.Sprintf("zelle_%d", row.ID),
			StudentID:          studentID,
			UserID:             row.UserID,
			StudentName:        row.StudentName,
			StudentEmail:       row.StudentEmail,
			UniversityID:       0,
			UniversityName:     UnselectedUniversityName,
			FeeType:            feeType,
			FeeTypeGlobal:      row.FeeType,
			Amount:             ResolveFee(feeType, feeCtx),
			Status:             models.PaymentStatusPaid,
			ScholarshipsIDs:    row.ScholarshipsIDs,
			PaymentDate:        paymentDateFor(inputs, row.UserID, feeType, row.PaymentDate, row.CreatedAt),
			CreatedAt:          row.CreatedAt,
			PaymentMethod:      models.PaymentMethodZelle,
			PaymentProofURL:    row.PaymentProofURL,
			AdminNotes:         row.AdminNotes,
			ZelleStatus:        row.Status,
			ReviewedBy:         row.ReviewedBy,
			ReviewedAt:         row.ReviewedAt,
			SellerReferralCode: row.SellerReferralCode,
		})
	}

	// 3. Gateway-only legacy evidence, for users with no application and no
	// zelle record. No real university or scholarship is attached.
	for _, user := range gateways {
		if hasApplication[user.UserID] || hasZelle[user.UserID] {
			continue
		}

		feeCtx := feeContextFor(user.UserID, user.Dependents, 0, inputs)

		for _, pair := range []struct {
			feeType string
			paid    bool
		}{
			{models.FeeTypeSelectionProcess, user.HasPaidSelectionProcessFee},
			{models.FeeTypeApplication, user.IsApplicationFeePaid},
			{models.FeeTypeScholarship, user.IsScholarshipFeePaid},
			{models.FeeTypeI20Control, user.HasPaidI20ControlFee},
		} {
			if !pair.paid {
				continue
			}
			if globalFeeTypes[pair.feeType] {
				if emittedGlobal[user.UserID][pair.feeType] {
					continue
				}
				markEmitted(user.UserID, pair.feeType)
			}
			records = append(records, models.PaymentRecord{
				ID:                 fmt.Sprintf("user_%d_%s", user.UserID, pair.feeType),
				StudentID:          user.StudentID,
				UserID:             user.UserID,
				StudentName:        user.StudentName,
				StudentEmail:       user.StudentEmail,
				UniversityID:       0,
				UniversityName:     UnselectedUniversityName,
				FeeType:            pair.feeType,
				Amount:             ResolveFee(pair.feeType, feeCtx),
				Status:             models.PaymentStatusPaid,
				PaymentDate:        paymentDateFor(inputs, user.UserID, pair.feeType, user.LastPaymentDate, user.CreatedAt),
				CreatedAt:          user.CreatedAt,
				PaymentMethod:      models.PaymentMethodStripe,
				SellerReferralCode: user.SellerReferralCode,
			})
		}
	}

	return records
}

// feeContextFor builds the resolver context for one student from the shared
// resolver inputs
func feeContextFor(userID uint, dependents int, scholarshipFee float64, inputs ResolverInputs) FeeContext {
	systemType := inputs.SystemTypes[userID]
	if systemType == "" {
		systemType = models.SystemTypeSimplified
	}
	return FeeContext{
		UserID:                    userID,
		SystemType:                systemType,
		Dependents:                dependents,
		Overrides:                 inputs.Overrides[userID],
		RealAmounts:               inputs.RealAmounts[userID],
		ScholarshipApplicationFee: scholarshipFee,
	}
}

// paymentDateFor prefers a precise per-fee-kind timestamp, then the source's
// generic last-payment timestamp, then the row's own creation timestamp
func paymentDateFor(inputs ResolverInputs, userID uint, feeType string, lastPayment *time.Time, createdAt time.Time) *time.Time {
	if dates, ok := inputs.PaymentDates[userID]; ok {
		if precise, ok := dates[feeType]; ok {
			return &precise
		}
	}
	if lastPayment != nil {
		return lastPayment
	}
	return &createdAt
}

// normalizePaymentMethod maps source-reported payment-method strings onto the
// closed payment-method set, defaulting to the gateway
func normalizePaymentMethod(method string) string {
	switch method {
	case models.PaymentMethodZelle, models.PaymentMethodManual, models.PaymentMethodStripe:
		return method
	case "":
		return models.PaymentMethodStripe
	default:
		return models.PaymentMethodStripe
	}
}
