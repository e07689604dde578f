package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Room struct {
	ID            uint            `gorm:"primaryKey" json:"roomId"`
	HotelID       uint            `gorm:"not null;index" json:"hotelId"`
	Hotel         Hotel           `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
	RoomType      string          `gorm:"size:50;not null" json:"roomType"`
	PricePerNight decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"pricePerNight"`
	Capacity      int             `gorm:"not null" json:"capacity"`
	Amenities     pq.StringArray  `gorm:"type:text[]" json:"amenities,omitempty"`
	IsAvailable   bool            `gorm:"default:true" json:"isAvailable"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}
