package controllers

import (
	"sort"
	"strings"

	"github.com/scholarbridge/backend/models"
)

// SortPaymentRecords totally orders a record collection by the chosen field
// and direction, returning a new slice. Comparison is type-aware: amount is
// numeric, the date fields compare as instants, everything else compares as a
// case-insensitive string. Null or missing values always sort last regardless
// of direction.
func SortPaymentRecords(records []models.PaymentRecord, field, direction string) []models.PaymentRecord {
	sorted := make([]models.PaymentRecord, len(records))
	copy(sorted, records)

	desc := strings.EqualFold(direction, "desc")

	sort.Slice(sorted, func(i, j int) bool {
		numI, strI, numericI, nullI := recordSortValue(sorted[i], field)
		numJ, strJ, _, nullJ := recordSortValue(sorted[j], field)

		// Nulls last in both directions.
		if nullI != nullJ {
			return nullJ
		}
		if nullI {
			return false
		}

		var less bool
		if numericI {
			if numI == numJ {
				return false
			}
			less = numI < numJ
		} else {
			cmp := strings.Compare(strI, strJ)
			if cmp == 0 {
				return false
			}
			less = cmp < 0
		}
		if desc {
			return !less
		}
		return less
	})

	return sorted
}

// recordSortValue extracts the comparable value for one field of a record
func recordSortValue(record models.PaymentRecord, field string) (num float64, str string, numeric bool, null bool) {
	switch field {
	case "amount":
		return float64(record.Amount), "", true, false
	case "created_at":
		return float64(record.CreatedAt.UnixNano()), "", true, false
	case "payment_date":
		if record.PaymentDate == nil {
			return 0, "", true, true
		}
		return float64(record.PaymentDate.UnixNano()), "", true, false
	case "student_name":
		str = record.StudentName
	case "student_email":
		str = record.StudentEmail
	case "university_name":
		str = record.UniversityName
	case "scholarship_title":
		str = record.ScholarshipTitle
	case "field_of_study":
		str = record.FieldOfStudy
	case "fee_type":
		str = record.FeeType
	case "status":
		str = record.Status
	case "payment_method":
		str = record.PaymentMethod
	case "id":
		str = record.ID
	default:
		str = record.ID
	}
	if str == "" {
		return 0, "", false, true
	}
	return 0, strings.ToLower(str), false, false
}
