package dto

import (
	"github.com/shopspring/decimal"
)

// Amount is in the provider's minor unit (cents), như hosted checkout yêu cầu.
type CreateCheckoutSessionRequest struct {
	BookingID uint  `json:"bookingId" binding:"required"`
	Amount    int64 `json:"amount" binding:"required,gt=0"`
}

type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Completed Failed"`
}

type PaymentResponse struct {
	PaymentID     uint            `json:"paymentId"`
	BookingID     uint            `json:"bookingId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentStatus string          `json:"paymentStatus"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	TransactionID string          `json:"transactionId,omitempty"`
	ReceiptURL    string          `json:"receiptUrl,omitempty"`
}

type PaymentReceiptResponse struct {
	PaymentID  uint   `json:"paymentId"`
	ReceiptURL string `json:"receiptUrl"`
}

type PaymentStatusResponse struct {
	TransactionID string `json:"transactionId"`
	PaymentStatus string `json:"paymentStatus"`
	BookingStatus string `json:"bookingStatus"`
	ReceiptURL    string `json:"receiptUrl,omitempty"`
}
