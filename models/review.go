package models

import (
	"time"
)

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"reviewId"`
	HotelID   uint      `gorm:"not null;index" json:"hotelId"`
	Hotel     Hotel     `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Comment   string    `gorm:"not null" json:"comment"`
	Stars     int       `gorm:"not null" json:"stars"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
