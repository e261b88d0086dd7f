package models

import (
	"time"

	"gorm.io/gorm"
)

// AdmissionApplication links a student to a scholarship at a university and
// carries the per-fee paid flags that are the primary payment evidence source.
type AdmissionApplication struct {
	gorm.Model
	StudentID     uint        `json:"student_id" gorm:"index"`
	Student       Student     `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	ScholarshipID uint        `json:"scholarship_id" gorm:"index"`
	Scholarship   Scholarship `json:"scholarship,omitempty" gorm:"foreignKey:ScholarshipID"`
	UniversityID  uint        `json:"university_id" gorm:"index"`
	University    University  `json:"university,omitempty" gorm:"foreignKey:UniversityID"`
	Status        string      `json:"status"`

	// Per-fee paid flags
	HasPaidSelectionProcessFee bool `json:"has_paid_selection_process_fee"`
	IsApplicationFeePaid       bool `json:"is_application_fee_paid"`
	IsScholarshipFeePaid       bool `json:"is_scholarship_fee_paid"`
	HasPaidI20ControlFee       bool `json:"has_paid_i20_control_fee"`

	// Source-reported payment metadata
	PaymentMethod   string     `json:"payment_method"`
	FeeTypeGlobal   string     `json:"fee_type_global"`
	CouponCode      string     `json:"coupon_code"`
	LastPaymentDate *time.Time `json:"last_payment_date"`
}
