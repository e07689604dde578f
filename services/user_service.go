package services

import (
	stderrors "errors"
	"time"

	"staybook/constants"
	"staybook/dto"
	"staybook/errors"
	"staybook/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UserService quản lý profile và các thao tác admin trên user
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "User not found.", errors.ErrUserNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) ListAll() ([]dto.UserResponse, error) {
	var users []models.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, ToUserResponse(&users[i]))
	}
	return result, nil
}

// UpdateProfile chỉ sửa các field được gửi lên
func (s *UserService) UpdateProfile(id uint, req dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.ContactPhone != nil {
		user.ContactPhone = *req.ContactPhone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.ProfileImageURL != nil {
		user.ProfileImageURL = *req.ProfileImageURL
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// ChangeRole đổi role của một user (admin only)
func (s *UserService) ChangeRole(id uint, role string) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Delete xóa user cùng bookings, payments và tickets của họ
func (s *UserService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeNotFound, "User not found.", errors.ErrUserNotFound)
			}
			return err
		}

		var bookingIDs []uint
		if err := tx.Model(&models.Booking{}).Where("user_id = ?", id).Pluck("id", &bookingIDs).Error; err != nil {
			return err
		}
		if len(bookingIDs) > 0 {
			if err := tx.Where("booking_id IN ?", bookingIDs).Delete(&models.Payment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", bookingIDs).Delete(&models.Booking{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.Ticket{}).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
}

// Overview gom các bộ đếm cho dashboard admin
func (s *UserService) Overview() (*dto.AdminOverview, error) {
	var overview dto.AdminOverview
	today := time.Now().Format(constants.DateLayout)

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&overview.TotalUsers, s.db.Model(&models.User{})},
		{&overview.VerifiedUsers, s.db.Model(&models.User{}).Where("is_verified = ?", true)},
		{&overview.TotalHotels, s.db.Model(&models.Hotel{})},
		{&overview.TotalRooms, s.db.Model(&models.Room{})},
		{&overview.ConfirmedBookings, s.db.Model(&models.Booking{}).Where("booking_status = ?", constants.BookingStatusConfirmed)},
		{&overview.UpcomingBookings, s.db.Model(&models.Booking{}).
			Where("booking_status = ? AND check_in_date >= ?", constants.BookingStatusConfirmed, today)},
		{&overview.PendingPayments, s.db.Model(&models.Payment{}).Where("payment_status = ?", constants.PaymentStatusPending)},
		{&overview.OpenTickets, s.db.Model(&models.Ticket{}).Where("status = ?", constants.TicketStatusOpen)},
	}

	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	var completed []models.Payment
	err := s.db.Where("payment_status = ?", constants.PaymentStatusCompleted).Find(&completed).Error
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	for i := range completed {
		revenue = revenue.Add(completed[i].Amount)
	}
	overview.TotalRevenue = revenue.StringFixed(2)

	return &overview, nil
}
