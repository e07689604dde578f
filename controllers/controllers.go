package controllers

import (
	"staybook/services"
)

// Package-level service handles, wired once at startup from main.
var (
	authService    *services.AuthService
	bookingService *services.BookingService
	hotelService   *services.HotelService
	roomService    *services.RoomService
	paymentService *services.PaymentService
	ticketService  *services.TicketService
	reviewService  *services.ReviewService
	userService    *services.UserService
)

type Services struct {
	Auth    *services.AuthService
	Booking *services.BookingService
	Hotel   *services.HotelService
	Room    *services.RoomService
	Payment *services.PaymentService
	Ticket  *services.TicketService
	Review  *services.ReviewService
	User    *services.UserService
}

func Init(s Services) {
	authService = s.Auth
	bookingService = s.Booking
	hotelService = s.Hotel
	roomService = s.Room
	paymentService = s.Payment
	ticketService = s.Ticket
	reviewService = s.Review
	userService = s.User
}
