package models

import (
	"time"
)

type User struct {
	ID                        uint       `gorm:"primaryKey" json:"userId"`
	FirstName                 string     `gorm:"size:100;not null" json:"firstname"`
	LastName                  string     `gorm:"size:100;not null" json:"lastname"`
	Email                     string     `gorm:"size:255;unique;not null" json:"email"`
	Password                  string     `gorm:"not null" json:"-"`
	ContactPhone              string     `gorm:"size:20" json:"contactPhone,omitempty"`
	Address                   string     `json:"address,omitempty"`
	ProfileImageURL           string     `json:"profileImageUrl,omitempty"`
	Role                      string     `gorm:"size:20;default:user" json:"role"`
	IsVerified                bool       `gorm:"default:false" json:"isVerified"`
	VerificationCode          string     `gorm:"size:6" json:"-"`
	VerificationCodeExpiresAt *time.Time `json:"-"`
	ResetPasswordCode         string     `gorm:"size:6" json:"-"`
	ResetPasswordExpiresAt    *time.Time `json:"-"`
	LastLoginAt               *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt                 time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt                 time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Bookings                  []Booking  `gorm:"foreignKey:UserID" json:"bookings,omitempty"`
	Tickets                   []Ticket   `gorm:"foreignKey:UserID" json:"tickets,omitempty"`
}
