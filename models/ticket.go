package models

import (
	"time"
)

type Ticket struct {
	ID          uint      `gorm:"primaryKey" json:"ticketId"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	User        User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Subject     string    `gorm:"size:200;not null" json:"subject"`
	Description string    `gorm:"not null" json:"description"`
	Status      string    `gorm:"size:20;default:Open;not null" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
