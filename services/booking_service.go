package services

import (
	stderrors "errors"
	"strings"

	"staybook/constants"
	"staybook/dto"
	"staybook/errors"
	"staybook/models"
	"staybook/services/logger"

	"gorm.io/gorm"
)

// BookingService xử lý logic liên quan đến booking
type BookingService struct {
	db     *gorm.DB
	logger logger.Logger
}

type BookingServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// HasActiveBooking báo user đã có booking chưa hủy cho phòng này chưa
func (s *BookingService) HasActiveBooking(userID, roomID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Booking{}).
		Where("user_id = ? AND room_id = ? AND booking_status <> ?", userID, roomID, constants.BookingStatusCancelled).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create chèn booking mới ở trạng thái Pending. The pre-check gives a clean
// error message; the partial unique index closes the check-then-insert race,
// so a unique violation here maps to the same duplicate error.
func (s *BookingService) Create(booking *models.Booking) error {
	exists, err := s.HasActiveBooking(booking.UserID, booking.RoomID)
	if err != nil {
		return err
	}
	if exists {
		return errors.NewAppError(errors.ErrCodeValidation, "You have already booked this room.", errors.ErrDuplicateBooking)
	}

	var room models.Room
	if err := s.db.First(&room, booking.RoomID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewAppError(errors.ErrCodeNotFound, "Room not found.", errors.ErrRoomNotFound)
		}
		return err
	}

	booking.Status = constants.BookingStatusPending
	if booking.Guests <= 0 {
		booking.Guests = 1
	}

	if err := s.db.Create(booking).Error; err != nil {
		if isUniqueViolation(err) {
			return errors.NewAppError(errors.ErrCodeValidation, "You have already booked this room.", errors.ErrDuplicateBooking)
		}
		return err
	}

	return nil
}

// GetByID trả về booking đã join user, room và hotel
func (s *BookingService) GetByID(id uint) (*dto.BookingDetail, error) {
	var booking models.Booking
	err := s.db.Preload("User").Preload("Room").Preload("Room.Hotel").First(&booking, id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Booking not found.", errors.ErrBookingNotFound)
		}
		return nil, err
	}

	detail := toBookingDetail(&booking)
	return &detail, nil
}

// ListAll trả về mọi booking (admin view), mới nhất trước
func (s *BookingService) ListAll() ([]dto.BookingDetail, error) {
	return s.list(s.db)
}

// ListByUser trả về booking của một user, mới nhất trước
func (s *BookingService) ListByUser(userID uint) ([]dto.BookingDetail, error) {
	return s.list(s.db.Where("user_id = ?", userID))
}

func (s *BookingService) list(tx *gorm.DB) ([]dto.BookingDetail, error) {
	var bookings []models.Booking
	err := tx.Preload("User").Preload("Room").Preload("Room.Hotel").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	details := make([]dto.BookingDetail, 0, len(bookings))
	for i := range bookings {
		details = append(details, toBookingDetail(&bookings[i]))
	}
	return details, nil
}

// UpdateStatus ghi đè trạng thái booking không kiểm tra transition
func (s *BookingService) UpdateStatus(id uint, status string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Booking not found.", errors.ErrBookingNotFound)
		}
		return nil, err
	}

	booking.Status = status
	if err := s.db.Save(&booking).Error; err != nil {
		return nil, err
	}

	return &booking, nil
}

// UpdateDetails chỉ sửa ngày/khách/special requests, không đụng status hay amount
func (s *BookingService) UpdateDetails(id uint, req dto.UpdateBookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Booking not found.", errors.ErrBookingNotFound)
		}
		return nil, err
	}

	if req.CheckInDate != nil {
		booking.CheckInDate = *req.CheckInDate
	}
	if req.CheckOutDate != nil {
		booking.CheckOutDate = *req.CheckOutDate
	}
	if req.Guests != nil {
		booking.Guests = *req.Guests
	}
	if req.SpecialRequests != nil {
		booking.SpecialRequests = *req.SpecialRequests
	}

	if err := s.db.Save(&booking).Error; err != nil {
		return nil, err
	}

	return &booking, nil
}

// Delete xóa cứng booking; payments của nó đi theo (cascade)
func (s *BookingService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, id).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeNotFound, "Booking not found.", errors.ErrBookingNotFound)
			}
			return err
		}

		if err := tx.Where("booking_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&booking).Error
	})
}

func toBookingDetail(booking *models.Booking) dto.BookingDetail {
	return dto.BookingDetail{
		BookingID:       booking.ID,
		CheckInDate:     booking.CheckInDate,
		CheckOutDate:    booking.CheckOutDate,
		BookingStatus:   booking.Status,
		TotalAmount:     booking.TotalAmount,
		Guests:          booking.Guests,
		SpecialRequests: booking.SpecialRequests,
		Customer: dto.BookingCustomer{
			UserID:    booking.User.ID,
			FirstName: booking.User.FirstName,
			LastName:  booking.User.LastName,
			Email:     booking.User.Email,
		},
		RoomID:    booking.RoomID,
		RoomType:  booking.Room.RoomType,
		HotelID:   booking.Room.HotelID,
		HotelName: booking.Room.Hotel.Name,
		CreatedAt: booking.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
