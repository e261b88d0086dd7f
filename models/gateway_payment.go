package models

import (
	"time"

	"gorm.io/gorm"
)

// GatewayPayment is an amount actually captured by the hosted payment gateway
// for one fee kind. These rows feed the real-paid-amount map used by the fee
// resolver as its highest-precedence signal.
type GatewayPayment struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"index"`
	User        User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	FeeType     string     `json:"fee_type"`
	Amount      float64    `json:"amount"` // dollars as reported by the gateway
	Status      string     `json:"status"`
	PaymentDate *time.Time `json:"payment_date"`
}

// FeeOverride is an administrator-set amount for one (user, fee kind) pair,
// in dollars. Overrides sit between observed gateway amounts and computed
// defaults in the resolver precedence chain.
type FeeOverride struct {
	gorm.Model
	UserID  uint    `json:"user_id" gorm:"index"`
	FeeType string  `json:"fee_type"`
	Amount  float64 `json:"amount"`
	SetBy   string  `json:"set_by"`
}
