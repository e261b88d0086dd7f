package models

import "time"

// Fee type constants. These are the only fee kinds the reconciliation engine
// emits; every source-specific spelling is normalized onto one of them before
// any resolver or assembler logic runs.
const (
	FeeTypeSelectionProcess = "selection_process"
	FeeTypeApplication      = "application"
	FeeTypeScholarship      = "scholarship"
	FeeTypeI20Control       = "i20_control_fee"
)

// Payment status constants
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
	PaymentStatusFailed  = "failed"
)

// Payment method constants
const (
	PaymentMethodStripe = "stripe"
	PaymentMethodZelle  = "zelle"
	PaymentMethodManual = "manual"
)

// PaymentRecord is the canonical unit produced by the reconciliation engine:
// one record per (student, fee kind) occurrence actually marked paid. Records
// are built fresh on every invocation and never persisted or mutated.
type PaymentRecord struct {
	ID                 string                 `json:"id"` // source-prefixed synthetic id, unique across evidence sources
	StudentID          uint                   `json:"student_id"`
	UserID             uint                   `json:"user_id"`
	StudentName        string                 `json:"student_name"`
	StudentEmail       string                 `json:"student_email"`
	UniversityID       uint                   `json:"university_id"`
	UniversityName     string                 `json:"university_name"`
	ScholarshipID      uint                   `json:"scholarship_id,omitempty"`
	ScholarshipTitle   string                 `json:"scholarship_title,omitempty"`
	FieldOfStudy       string                 `json:"field_of_study,omitempty"`
	FeeType            string                 `json:"fee_type"`
	FeeTypeGlobal      string                 `json:"fee_type_global,omitempty"` // informational source-reported tag
	Amount             int64                  `json:"amount"`                    // cents
	Status             string                 `json:"status"`
	ScholarshipsIDs    []uint                 `json:"scholarships_ids,omitempty"`
	PaymentDate        *time.Time             `json:"payment_date"`
	CreatedAt          time.Time              `json:"created_at"`
	PaymentMethod      string                 `json:"payment_method"`
	PaymentProofURL    string                 `json:"payment_proof_url,omitempty"`
	AdminNotes         string                 `json:"admin_notes,omitempty"`
	ZelleStatus        string                 `json:"zelle_status,omitempty"`
	ReviewedBy         string                 `json:"reviewed_by,omitempty"`
	ReviewedAt         *time.Time             `json:"reviewed_at,omitempty"`
	SellerReferralCode string                 `json:"seller_referral_code,omitempty"`
	Metadata           map[string]interface{} `json:"metadata,omitempty"`
}

// PaymentStats summarizes a PaymentRecord collection. Always recomputed,
// never stored.
type PaymentStats struct {
	TotalRevenue    int64 `json:"total_revenue"` // cents, paid records only
	TotalPayments   int   `json:"total_payments"`
	PaidPayments    int   `json:"paid_payments"`
	PendingPayments int   `json:"pending_payments"`
	MonthlyGrowth   int   `json:"monthly_growth"` // reserved, always 0
	ManualRevenue   int64 `json:"manual_revenue"` // cents, paid records collected manually
}

// MethodTotal is the per-payment-method slice of a selection summary
type MethodTotal struct {
	Count  int   `json:"count"`
	Amount int64 `json:"amount"` // cents
}

// SelectionTotals summarizes a user-selected subset of records
type SelectionTotals struct {
	Count       int                    `json:"count"`
	TotalAmount int64                  `json:"total_amount"` // cents
	ByMethod    map[string]MethodTotal `json:"by_method"`
}

// AdminPaymentsFilters is the value object consumed by the filter engine. An
// empty or "all" value means the corresponding predicate always passes.
type AdminPaymentsFilters struct {
	Search        string     `json:"search"`
	UniversityID  uint       `json:"university_id"`
	FeeType       string     `json:"fee_type"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"payment_method"`
	DateFrom      *time.Time `json:"date_from"`
	DateTo        *time.Time `json:"date_to"`
	AffiliateID   uint       `json:"affiliate_id"`
}
