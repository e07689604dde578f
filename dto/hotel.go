package dto

import (
	"staybook/models"
)

type CreateHotelRequest struct {
	Name         string `json:"hotelName" binding:"required,max=100"`
	City         string `json:"city" binding:"required,max=100"`
	Location     string `json:"location" binding:"required,max=100"`
	Address      string `json:"address" binding:"required"`
	ContactPhone string `json:"contactPhone" binding:"omitempty,max=20"`
	Category     string `json:"category" binding:"omitempty,max=50"`
	ImageURL     string `json:"imageUrl"`
}

type UpdateHotelRequest struct {
	Name         *string `json:"hotelName" binding:"omitempty,max=100"`
	City         *string `json:"city" binding:"omitempty,max=100"`
	Location     *string `json:"location" binding:"omitempty,max=100"`
	Address      *string `json:"address"`
	ContactPhone *string `json:"contactPhone" binding:"omitempty,max=20"`
	Category     *string `json:"category" binding:"omitempty,max=50"`
	ImageURL     *string `json:"imageUrl"`
}

// HotelWithRooms là hotel kèm danh sách phòng (đã lọc nếu query availability)
type HotelWithRooms struct {
	models.Hotel
	Rooms []models.Room `json:"rooms"`
}

type ScoredHotel struct {
	Hotel models.Hotel `json:"hotel"`
	Score int          `json:"score"`
}
