package dto

import (
	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	HotelID       uint            `json:"hotelId" binding:"required"`
	RoomType      string          `json:"roomType" binding:"required,max=50"`
	PricePerNight decimal.Decimal `json:"pricePerNight" binding:"required"`
	Capacity      int             `json:"capacity" binding:"required,min=1"`
	Amenities     []string        `json:"amenities"`
	IsAvailable   *bool           `json:"isAvailable"`
	ImageURL      string          `json:"imageUrl"`
}

type UpdateRoomRequest struct {
	RoomType      *string          `json:"roomType" binding:"omitempty,max=50"`
	PricePerNight *decimal.Decimal `json:"pricePerNight"`
	Capacity      *int             `json:"capacity" binding:"omitempty,min=1"`
	Amenities     []string         `json:"amenities"`
	IsAvailable   *bool            `json:"isAvailable"`
	ImageURL      *string          `json:"imageUrl"`
}

// RoomWithHotel là room đã join thông tin hotel hiển thị
type RoomWithHotel struct {
	RoomID            uint            `json:"roomId"`
	RoomType          string          `json:"roomType"`
	PricePerNight     decimal.Decimal `json:"pricePerNight"`
	Capacity          int             `json:"capacity"`
	Amenities         []string        `json:"amenities,omitempty"`
	IsAvailable       bool            `json:"isAvailable"`
	ImageURL          string          `json:"imageUrl,omitempty"`
	HotelID           uint            `json:"hotelId"`
	HotelName         string          `json:"hotelName"`
	HotelLocation     string          `json:"hotelLocation"`
	HotelCity         string          `json:"hotelCity"`
	HotelAddress      string          `json:"hotelAddress"`
	HotelContactPhone string          `json:"hotelContactPhone,omitempty"`
}
