package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionID holds the provider-assigned checkout session id and doubles
// as the idempotency key when the provider retries a notification.
type Payment struct {
	ID            uint            `gorm:"primaryKey" json:"paymentId"`
	BookingID     uint            `gorm:"not null;index" json:"bookingId"`
	Booking       Booking         `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	Amount        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	Status        string          `gorm:"column:payment_status;size:20;default:Pending;not null" json:"paymentStatus"`
	PaymentMethod string          `gorm:"size:50" json:"paymentMethod,omitempty"`
	TransactionID string          `gorm:"size:100;index" json:"transactionId,omitempty"`
	ReceiptURL    string          `json:"receiptUrl,omitempty"`
	PaymentDate   *time.Time      `json:"paymentDate,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}
