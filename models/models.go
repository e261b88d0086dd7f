package models

import (
	"time"

	"gorm.io/gorm"
)

// System type constants describe a student's pricing-plan generation.
const (
	SystemTypeSimplified = "simplified"
	SystemTypeLegacy     = "legacy"
)

// User represents an account in the system. Legacy users who paid through the
// gateway before applications existed carry their paid flags directly here.
type User struct {
	gorm.Model
	Name               string    `gorm:"not null" json:"name"`
	Email              string    `gorm:"uniqueIndex;not null" json:"email"`
	Password           string    `json:"-"`
	Phone              string    `json:"phone"`
	GoogleID           string    `gorm:"unique;default:null" json:"google_id"`
	IsVerified         bool      `json:"is_verified" gorm:"default:false"`
	IsBlocked          bool      `json:"is_blocked"`
	SystemType         string    `json:"system_type" gorm:"default:'simplified'"`
	Dependents         int       `json:"dependents" gorm:"default:0"`
	SellerReferralCode string    `json:"seller_referral_code"`
	LastLoginAt        time.Time `json:"last_login_at"`

	// Legacy direct-gateway paid flags, used only for users without an
	// admission application.
	HasPaidSelectionProcessFee bool       `json:"has_paid_selection_process_fee"`
	IsApplicationFeePaid       bool       `json:"is_application_fee_paid"`
	IsScholarshipFeePaid       bool       `json:"is_scholarship_fee_paid"`
	HasPaidI20ControlFee       bool       `json:"has_paid_i20_control_fee"`
	LastPaymentDate            *time.Time `json:"last_payment_date"`
}

// Admin represents an administrator in the system
type Admin struct {
	gorm.Model
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	LastLogin time.Time `json:"last_login"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
}

// Student is the applicant profile attached to a user account.
type Student struct {
	gorm.Model
	UserID       uint   `json:"user_id" gorm:"index"`
	User         User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	FieldOfStudy string `json:"field_of_study"`
	Country      string `json:"country"`
}

// University represents a partner university
type University struct {
	gorm.Model
	Name    string `json:"name" gorm:"uniqueIndex"`
	City    string `json:"city"`
	State   string `json:"state"`
	Website string `json:"website"`
	Active  bool   `json:"active" gorm:"default:true"`
}

// Scholarship represents a scholarship offered by a university. ApplicationFee
// is the scholarship's own configured fee; zero means the global default
// applies. Values above 1000 are stored in cents, smaller values in dollars.
type Scholarship struct {
	gorm.Model
	Title          string     `json:"title"`
	UniversityID   uint       `json:"university_id"`
	University     University `json:"university,omitempty" gorm:"foreignKey:UniversityID"`
	FieldOfStudy   string     `json:"field_of_study"`
	ApplicationFee float64    `json:"application_fee"`
	Active         bool       `json:"active" gorm:"default:true"`
}

// Seller represents an affiliate who refers students. A seller owns a primary
// referral code plus any number of sub-seller codes; payments carrying any of
// those codes are attributed to the seller.
type Seller struct {
	gorm.Model
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	ReferralCode string           `json:"referral_code" gorm:"uniqueIndex"`
	Active       bool             `json:"active" gorm:"default:true"`
	SubCodes     []SellerSubCode  `json:"sub_codes,omitempty" gorm:"foreignKey:SellerID"`
}

// SellerSubCode is an additional referral code owned by a seller
type SellerSubCode struct {
	gorm.Model
	SellerID uint   `json:"seller_id" gorm:"index"`
	Code     string `json:"code" gorm:"uniqueIndex"`
}
