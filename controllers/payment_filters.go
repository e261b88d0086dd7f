package controllers

import (
	"strings"
	"time"

	"github.com/scholarbridge/backend/models"
)

// ExcludedScholarshipTitle is a legacy test scholarship whose records are
// always excluded from admin views regardless of filters. The rule predates
// this codebase; preserved for parity, pending product clarification.
const ExcludedScholarshipTitle = "Sandbox University Test Scholarship"

// FilterPaymentRecords applies the ANDed admin filter set to a record
// collection. An unset filter value (zero or "all") always passes.
func FilterPaymentRecords(records []models.PaymentRecord, filters models.AdminPaymentsFilters, affiliates []models.Seller) []models.PaymentRecord {
	filtered := make([]models.PaymentRecord, 0, len(records))
	for _, record := range records {
		if recordMatchesFilters(record, filters, affiliates) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func recordMatchesFilters(record models.PaymentRecord, filters models.AdminPaymentsFilters, affiliates []models.Seller) bool {
	if record.ScholarshipTitle == ExcludedScholarshipTitle {
		return false
	}

	if search := strings.TrimSpace(filters.Search); search != "" {
		needle := strings.ToLower(search)
		if !strings.Contains(strings.ToLower(record.StudentName), needle) &&
			!strings.Contains(strings.ToLower(record.StudentEmail), needle) &&
			!strings.Contains(strings.ToLower(record.UniversityName), needle) &&
			!strings.Contains(strings.ToLower(record.ScholarshipTitle), needle) {
			return false
		}
	}

	if filters.UniversityID != 0 && record.UniversityID != filters.UniversityID {
		return false
	}
	if isSetFilter(filters.FeeType) && record.FeeType != filters.FeeType {
		return false
	}
	if isSetFilter(filters.Status) && record.Status != filters.Status {
		return false
	}
	if isSetFilter(filters.PaymentMethod) && record.PaymentMethod != filters.PaymentMethod {
		return false
	}

	if filters.AffiliateID != 0 {
		if ResolveAffiliateID(record.SellerReferralCode, affiliates) != filters.AffiliateID {
			return false
		}
	}

	if filters.DateFrom != nil || filters.DateTo != nil {
		date := recordEffectiveDate(record)
		if filters.DateFrom != nil && date.Before(*filters.DateFrom) {
			return false
		}
		if filters.DateTo != nil && date.After(*filters.DateTo) {
			return false
		}
	}

	return true
}

// ResolveAffiliateID resolves a seller referral code against the affiliate
// roster: a direct code match, or a match against any of the seller's
// sub-seller codes. Returns 0 when the code resolves to no seller.
func ResolveAffiliateID(code string, affiliates []models.Seller) uint {
	if strings.TrimSpace(code) == "" {
		return 0
	}
	for _, seller := range affiliates {
		if strings.EqualFold(seller.ReferralCode, code) {
			return seller.ID
		}
		for _, sub := range seller.SubCodes {
			if strings.EqualFold(sub.Code, code) {
				return seller.ID
			}
		}
	}
	return 0
}

// recordEffectiveDate compares by payment date, falling back to creation time
func recordEffectiveDate(record models.PaymentRecord) time.Time {
	if record.PaymentDate != nil {
		return *record.PaymentDate
	}
	return record.CreatedAt
}

func isSetFilter(value string) bool {
	return value != "" && value != "all"
}
