package models

import (
	"time"
)

type Hotel struct {
	ID           uint      `gorm:"primaryKey" json:"hotelId"`
	Name         string    `gorm:"size:100;not null" json:"hotelName"`
	City         string    `gorm:"size:100;not null" json:"city"`
	Location     string    `gorm:"size:100;not null" json:"location"`
	Address      string    `gorm:"not null" json:"address"`
	ContactPhone string    `gorm:"size:20" json:"contactPhone,omitempty"`
	Category     string    `gorm:"size:50" json:"category,omitempty"`
	Rating       float64   `gorm:"default:0" json:"rating"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Rooms        []Room    `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
	Reviews      []Review  `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}
