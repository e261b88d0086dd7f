package controllers

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/scholarbridge/backend/config"
	"github.com/scholarbridge/backend/models"
	"github.com/scholarbridge/backend/utils"
)

// ApplicationEvidence is the loader output shape for application-backed
// payment evidence. Only this shape is part of the engine contract; how the
// rows are fetched is a loader concern.
type ApplicationEvidence struct {
	ID                        uint
	StudentID                 uint
	UserID                    uint
	StudentName               string
	StudentEmail              string
	Dependents                int
	UniversityID              uint
	UniversityName            string
	ScholarshipID             uint
	ScholarshipTitle          string
	FieldOfStudy              string
	ScholarshipApplicationFee float64

	HasPaidSelectionProcessFee bool
	IsApplicationFeePaid       bool
	IsScholarshipFeePaid       bool
	HasPaidI20ControlFee       bool

	PaymentMethod      string
	FeeTypeGlobal      string
	CouponCode         string
	SellerReferralCode string
	LastPaymentDate    *time.Time
	CreatedAt          time.Time
}

// ZelleEvidence is the loader output shape for bank-transfer-with-proof rows
type ZelleEvidence struct {
	ID                 uint
	UserID             uint
	StudentID          uint
	StudentName        string
	StudentEmail       string
	Dependents         int
	FeeType            string // free-form tag as reported by the source
	Amount             string // decimal string, dollars
	PaymentProofURL    string
	Status             string
	AdminNotes         string
	ReviewedBy         string
	ReviewedAt         *time.Time
	ScholarshipsIDs    []uint
	SellerReferralCode string
	PaymentDate        *time.Time
	CreatedAt          time.Time
}

// GatewayEvidence is the loader output shape for legacy users who paid through
// the gateway directly without ever creating an application
type GatewayEvidence struct {
	UserID       uint
	StudentID    uint
	StudentName  string
	StudentEmail string
	Dependents   int

	HasPaidSelectionProcessFee bool
	IsApplicationFeePaid       bool
	IsScholarshipFeePaid       bool
	HasPaidI20ControlFee       bool

	SellerReferralCode string
	LastPaymentDate    *time.Time
	CreatedAt          time.Time
}

// ResolverInputs carries the per-user maps consumed by the fee resolver and
// the assembler's payment-date preference. Amounts are in dollars.
type ResolverInputs struct {
	Overrides    map[uint]map[string]float64
	SystemTypes  map[uint]string
	RealAmounts  map[uint]map[string]float64
	PaymentDates map[uint]map[string]time.Time
}

// LoadApplicationEvidence fetches admission applications with their student,
// scholarship and university links resolved
func LoadApplicationEvidence(ctx context.Context) ([]ApplicationEvidence, error) {
	var apps []models.AdmissionApplication
	if err := config.DB.WithContext(ctx).
		Preload("Student.User").
		Preload("Scholarship.University").
		Preload("University").
		Order("created_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	evidence := make([]ApplicationEvidence, 0, len(apps))
	for _, app := range apps {
		evidence = append(evidence, ApplicationEvidence{
			ID:                         app.ID,
			StudentID:                  app.StudentID,
			UserID:                     app.Student.UserID,
			StudentName:                app.Student.Name,
			StudentEmail:               app.Student.Email,
			Dependents:                 app.Student.User.Dependents,
			UniversityID:               app.UniversityID,
			UniversityName:             app.University.Name,
			ScholarshipID:              app.ScholarshipID,
			ScholarshipTitle:           app.Scholarship.Title,
			FieldOfStudy:               app.Scholarship.FieldOfStudy,
			ScholarshipApplicationFee:  app.Scholarship.ApplicationFee,
			HasPaidSelectionProcessFee: app.HasPaidSelectionProcessFee,
			IsApplicationFeePaid:       app.IsApplicationFeePaid,
			IsScholarshipFeePaid:       app.IsScholarshipFeePaid,
			HasPaidI20ControlFee:       app.HasPaidI20ControlFee,
			PaymentMethod:              app.PaymentMethod,
			FeeTypeGlobal:              app.FeeTypeGlobal,
			CouponCode:                 app.CouponCode,
			SellerReferralCode:         app.Student.User.SellerReferralCode,
			LastPaymentDate:            app.LastPaymentDate,
			CreatedAt:                  app.CreatedAt,
		})
	}
	return evidence, nil
}

// LoadZelleEvidence fetches bank-transfer payment rows with their user link
func LoadZelleEvidence(ctx context.Context) ([]ZelleEvidence, error) {
	var rows []models.ZellePayment
	if err := config.DB.WithContext(ctx).
		Preload("User").
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	evidence := make([]ZelleEvidence, 0, len(rows))
	for _, row := range rows {
		evidence = append(evidence, ZelleEvidence{
			ID:                 row.ID,
			UserID:             row.UserID,
			StudentID:          row.StudentID,
			StudentName:        row.User.Name,
			StudentEmail:       row.User.Email,
			Dependents:         row.User.Dependents,
			FeeType:            row.FeeType,
			Amount:             row.Amount,
			PaymentProofURL:    row.PaymentProofURL,
			Status:             row.Status,
			AdminNotes:         row.AdminNotes,
			ReviewedBy:         row.ReviewedBy,
			ReviewedAt:         row.ReviewedAt,
			ScholarshipsIDs:    parseScholarshipIDs(row.ScholarshipsIDs),
			SellerReferralCode: row.User.SellerReferralCode,
			PaymentDate:        row.PaymentDate,
			CreatedAt:          row.CreatedAt,
		})
	}
	return evidence, nil
}

// LoadGatewayEvidence fetches legacy users who carry at least one paid flag
// directly on their account
func LoadGatewayEvidence(ctx context.Context) ([]GatewayEvidence, error) {
	var users []models.User
	if err := config.DB.WithContext(ctx).
		Where("has_paid_selection_process_fee = ? OR is_application_fee_paid = ? OR is_scholarship_fee_paid = ? OR has_paid_i20_control_fee = ?",
			true, true, true, true).
		Order("created_at ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}

	evidence := make([]GatewayEvidence, 0, len(users))
	for _, user := range users {
		evidence = append(evidence, GatewayEvidence{
			UserID:                     user.ID,
			StudentID:                  user.ID,
			StudentName:                user.Name,
			StudentEmail:               user.Email,
			Dependents:                 user.Dependents,
			HasPaidSelectionProcessFee: user.HasPaidSelectionProcessFee,
			IsApplicationFeePaid:       user.IsApplicationFeePaid,
			IsScholarshipFeePaid:       user.IsScholarshipFeePaid,
			HasPaidI20ControlFee:       user.HasPaidI20ControlFee,
			SellerReferralCode:         user.SellerReferralCode,
			LastPaymentDate:            user.LastPaymentDate,
			CreatedAt:                  user.CreatedAt,
		})
	}
	return evidence, nil
}

// LoadResolverInputs builds the override, system-type, real-amount and
// payment-date maps from their backing tables
func LoadResolverInputs(ctx context.Context) (ResolverInputs, error) {
	inputs := ResolverInputs{
		Overrides:    make(map[uint]map[string]float64),
		SystemTypes:  make(map[uint]string),
		RealAmounts:  make(map[uint]map[string]float64),
		PaymentDates: make(map[uint]map[string]time.Time),
	}

	var overrides []models.FeeOverride
	if err := config.DB.WithContext(ctx).Find(&overrides).Error; err != nil {
		return inputs, err
	}
	for _, o := range overrides {
		feeType, ok := NormalizeFeeType(o.FeeType)
		if !ok {
			utils.LogDebug("Skipping override with unknown fee type %q for user %d", o.FeeType, o.UserID)
			continue
		}
		if inputs.Overrides[o.UserID] == nil {
			inputs.Overrides[o.UserID] = make(map[string]float64)
		}
		inputs.Overrides[o.UserID][feeType] = o.Amount
	}

	var users []models.User
	if err := config.DB.WithContext(ctx).Select("id", "system_type").Find(&users).Error; err != nil {
		return inputs, err
	}
	for _, u := range users {
		inputs.SystemTypes[u.ID] = u.SystemType
	}

	var payments []models.GatewayPayment
	if err := config.DB.WithContext(ctx).Order("payment_date ASC").Find(&payments).Error; err != nil {
		return inputs, err
	}
	for _, p := range payments {
		feeType, ok := NormalizeFeeType(p.FeeType)
		if !ok {
			utils.LogDebug("Skipping gateway payment with unknown fee type %q for user %d", p.FeeType, p.UserID)
			continue
		}
		if inputs.RealAmounts[p.UserID] == nil {
			inputs.RealAmounts[p.UserID] = make(map[string]float64)
		}
		inputs.RealAmounts[p.UserID][feeType] = p.Amount

		if p.PaymentDate != nil {
			if inputs.PaymentDates[p.UserID] == nil {
				inputs.PaymentDates[p.UserID] = make(map[string]time.Time)
			}
			inputs.PaymentDates[p.UserID][feeType] = *p.PaymentDate
		}
	}

	return inputs, nil
}

// LoadAffiliates fetches the seller roster with sub-seller codes for
// affiliate attribution
func LoadAffiliates(ctx context.Context) ([]models.Seller, error) {
	var sellers []models.Seller
	if err := config.DB.WithContext(ctx).Preload("SubCodes").Find(&sellers).Error; err != nil {
		return nil, err
	}
	return sellers, nil
}

func parseScholarshipIDs(raw string) []uint {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}
