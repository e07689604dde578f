package controllers

import (
	"strconv"

	"staybook/constants"
	"staybook/dto"
	"staybook/middleware"
	"staybook/models"
	"staybook/response"
	"staybook/validator"

	"github.com/gin-gonic/gin"
)

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// CreateBooking tạo booking Pending cho user đang đăng nhập
func CreateBooking(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.TranslateBindingError(err))
		return
	}

	if err := validator.ValidateDateRange(req.CheckInDate, req.CheckOutDate); err != nil {
		response.FromError(c, err)
		return
	}

	booking := models.Booking{
		UserID:          userID,
		RoomID:          req.RoomID,
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		TotalAmount:     req.TotalAmount,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	}

	if err := bookingService.Create(&booking); err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, booking)
}

// GetAllBookings trả về mọi booking (admin)
func GetAllBookings(c *gin.Context) {
	bookings, err := bookingService.ListAll()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, bookings)
}

// GetMyBookings trả về booking của user đang đăng nhập, mới nhất trước
func GetMyBookings(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	bookings, err := bookingService.ListByUser(userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, bookings)
}

func GetBookingDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := bookingService.GetByID(id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	// User thường chỉ xem được booking của chính mình
	if middleware.CurrentUserRole(c) != constants.RoleAdmin {
		userID, _ := middleware.CurrentUserID(c)
		if booking.Customer.UserID != userID {
			response.Forbidden(c)
			return
		}
	}

	response.Success(c, booking)
}

// ConfirmBooking đặt trạng thái Confirmed (admin)
func ConfirmBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := bookingService.UpdateStatus(id, constants.BookingStatusConfirmed)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, booking)
}

// CancelBooking đặt trạng thái Cancelled; user hủy booking của mình, admin hủy bất kỳ
func CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if middleware.CurrentUserRole(c) != constants.RoleAdmin {
		userID, _ := middleware.CurrentUserID(c)
		detail, err := bookingService.GetByID(id)
		if err != nil {
			response.FromError(c, err)
			return
		}
		if detail.Customer.UserID != userID {
			response.Forbidden(c)
			return
		}
	}

	booking, err := bookingService.UpdateStatus(id, constants.BookingStatusCancelled)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, booking)
}

// UpdateBooking sửa ngày/khách/special requests (admin)
func UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.TranslateBindingError(err))
		return
	}

	if req.CheckInDate != nil && req.CheckOutDate != nil {
		if err := validator.ValidateDateRange(*req.CheckInDate, *req.CheckOutDate); err != nil {
			response.FromError(c, err)
			return
		}
	}

	booking, err := bookingService.UpdateDetails(id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, booking)
}

// DeleteBooking xóa cứng booking và payments của nó (admin)
func DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bookingService.Delete(id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Booking deleted."})
}
