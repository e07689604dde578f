package dto

import (
	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	RoomID          uint            `json:"roomId" binding:"required"`
	CheckInDate     string          `json:"checkInDate" binding:"required,datetime=2006-01-02"`
	CheckOutDate    string          `json:"checkOutDate" binding:"required,datetime=2006-01-02"`
	Guests          int             `json:"guests" binding:"omitempty,min=1"`
	TotalAmount     decimal.Decimal `json:"totalAmount" binding:"required"`
	SpecialRequests string          `json:"specialRequests"`
}

type UpdateBookingRequest struct {
	CheckInDate     *string `json:"checkInDate" binding:"omitempty,datetime=2006-01-02"`
	CheckOutDate    *string `json:"checkOutDate" binding:"omitempty,datetime=2006-01-02"`
	Guests          *int    `json:"guests" binding:"omitempty,min=1"`
	SpecialRequests *string `json:"specialRequests"`
}

type BookingCustomer struct {
	UserID    uint   `json:"userId"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
}

// BookingDetail là booking đã join với user, room và hotel
type BookingDetail struct {
	BookingID       uint            `json:"bookingId"`
	CheckInDate     string          `json:"checkInDate"`
	CheckOutDate    string          `json:"checkOutDate"`
	BookingStatus   string          `json:"bookingStatus"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Guests          int             `json:"guests"`
	SpecialRequests string          `json:"specialRequests,omitempty"`
	Customer        BookingCustomer `json:"customer"`
	RoomID          uint            `json:"roomId"`
	RoomType        string          `json:"roomType"`
	HotelID         uint            `json:"hotelId"`
	HotelName       string          `json:"hotelName"`
	CreatedAt       string          `json:"createdAt"`
}
