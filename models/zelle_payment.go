package models

import (
	"time"

	"gorm.io/gorm"
)

// Zelle payment review status constants
const (
	ZelleStatusPending  = "pending"
	ZelleStatusApproved = "approved"
	ZelleStatusRejected = "rejected"
)

// ZellePayment is a bank-transfer payment backed by a proof screenshot. Rows
// are created by students and verified manually by an admin.
type ZellePayment struct {
	gorm.Model
	UserID          uint       `json:"user_id" gorm:"index"`
	User            User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	StudentID       uint       `json:"student_id"`
	FeeType         string     `json:"fee_type"` // free-form tag as reported by the client
	Amount          string     `json:"amount"`   // decimal string, dollars
	PaymentProofURL string     `json:"payment_proof_url"`
	Status          string     `json:"status" gorm:"default:'pending'"`
	AdminNotes      string     `json:"admin_notes"`
	ReviewedBy      string     `json:"reviewed_by"`
	ReviewedAt      *time.Time `json:"reviewed_at"`
	ScholarshipsIDs string     `json:"scholarships_ids"` // comma-separated scholarship ids the fee applies to
	PaymentDate     *time.Time `json:"payment_date"`
}
