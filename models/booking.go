package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckInDate and CheckOutDate are calendar dates stored in ISO form
// (2006-01-02); there is no time component.
type Booking struct {
	ID              uint            `gorm:"primaryKey" json:"bookingId"`
	UserID          uint            `gorm:"not null;index" json:"userId"`
	User            User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	RoomID          uint            `gorm:"not null;index" json:"roomId"`
	Room            Room            `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	CheckInDate     string          `gorm:"type:date;not null" json:"checkInDate"`
	CheckOutDate    string          `gorm:"type:date;not null" json:"checkOutDate"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"totalAmount"`
	Status          string          `gorm:"column:booking_status;size:20;default:Pending;not null" json:"bookingStatus"`
	Guests          int             `gorm:"not null;default:1" json:"guests"`
	SpecialRequests string          `json:"specialRequests,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Payments        []Payment       `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
}
