package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"time"

	"staybook/config"
	"staybook/constants"
	"staybook/dto"
	"staybook/errors"
	"staybook/models"
	"staybook/services/checkout"
	"staybook/services/logger"
	"staybook/services/notification"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentService sở hữu luồng checkout và reconciliation giữa booking và
// payment khi provider báo kết quả qua webhook.
type PaymentService struct {
	db         *gorm.DB
	provider   checkout.Provider
	mailer     EmailSender
	notifier   notification.Broadcaster
	logger     logger.Logger
	allowRetry bool
}

type PaymentServiceOptions struct {
	DB       *gorm.DB
	Provider checkout.Provider
	Mailer   EmailSender
	Notifier notification.Broadcaster
	Logger   logger.Logger

	// AllowRetry cho phép tạo session mới khi booking đã có payment Pending.
	// Mặc định đọc từ PAYMENT_ALLOW_RETRY (true nếu không set).
	AllowRetry *bool
}

func NewPaymentService(opts PaymentServiceOptions) *PaymentService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}

	allowRetry := config.GetEnvDefault("PAYMENT_ALLOW_RETRY", "true") != "false"
	if opts.AllowRetry != nil {
		allowRetry = *opts.AllowRetry
	}

	return &PaymentService{
		db:         opts.DB,
		provider:   opts.Provider,
		mailer:     opts.Mailer,
		notifier:   opts.Notifier,
		logger:     opts.Logger,
		allowRetry: allowRetry,
	}
}

// CreateCheckoutSession mở session thanh toán hosted cho một booking và ghi
// lại payment Pending mang transaction id của session.
func (s *PaymentService) CreateCheckoutSession(ctx context.Context, userID uint, req dto.CreateCheckoutSessionRequest) (*dto.CheckoutSessionResponse, error) {
	var booking models.Booking
	err := s.db.Preload("User").Preload("Room").Preload("Room.Hotel").First(&booking, req.BookingID).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Booking not found.", errors.ErrBookingNotFound)
		}
		return nil, err
	}

	if booking.UserID != userID {
		return nil, errors.NewAppError(errors.ErrCodeForbidden, "You can only pay for your own bookings.", nil)
	}

	if !s.allowRetry {
		var pending int64
		err := s.db.Model(&models.Payment{}).
			Where("booking_id = ? AND payment_status = ?", booking.ID, constants.PaymentStatusPending).
			Count(&pending).Error
		if err != nil {
			return nil, err
		}
		if pending > 0 {
			return nil, errors.NewAppError(errors.ErrCodeConflict, "A pending payment already exists for this booking.", errors.ErrPaymentPending)
		}
	}

	frontendURL := config.GetEnvDefault("FRONTEND_URL", "http://localhost:5173")
	session, err := s.provider.CreateSession(ctx, checkout.CreateSessionParams{
		Amount:        req.Amount,
		Currency:      "usd",
		ProductName:   fmt.Sprintf("%s - %s", booking.Room.Hotel.Name, booking.Room.RoomType),
		CustomerEmail: booking.User.Email,
		SuccessURL:    frontendURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     frontendURL + "/payment-cancelled",
		Metadata: map[string]string{
			checkout.BookingIDMetadataKey: strconv.FormatUint(uint64(booking.ID), 10),
		},
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeProvider, "Could not create checkout session.", err)
	}

	payment := models.Payment{
		BookingID:     booking.ID,
		Amount:        decimal.NewFromInt(req.Amount).Div(decimal.NewFromInt(100)),
		Status:        constants.PaymentStatusPending,
		PaymentMethod: "card",
		TransactionID: session.ID,
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return nil, err
	}

	return &dto.CheckoutSessionResponse{URL: session.URL}, nil
}

// HandleNotification xác minh chữ ký webhook rồi reconcile: payment sang
// Completed, booking sang Confirmed, lấy receipt URL, gửi email xác nhận.
// Booking đã Confirmed trước đó thì chỉ ack lại, không gửi email lần hai.
func (s *PaymentService) HandleNotification(ctx context.Context, payload []byte, signatureHeader string) error {
	event, err := s.provider.VerifyNotification(payload, signatureHeader)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Webhook signature verification failed.", err)
	}

	if event.Type != checkout.EventCheckoutCompleted {
		s.logger.Debug("ignoring event type %s", event.Type)
		return nil
	}

	rawBookingID, err := event.BookingID()
	if err != nil {
		return err
	}
	bookingID, err := strconv.ParseUint(rawBookingID, 10, 64)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid bookingId in event metadata.", errors.ErrMissingMetadata)
	}

	var booking models.Booking
	var payment models.Payment
	alreadyConfirmed := false

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("User").Preload("Room").Preload("Room.Hotel").First(&booking, uint(bookingID)).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeNotFound, "Booking not found.", errors.ErrBookingNotFound)
			}
			return err
		}

		// Prefer the payment row keyed by this session; fall back to the
		// newest pending payment of the booking.
		err := tx.Where("booking_id = ? AND transaction_id = ?", booking.ID, event.SessionID).First(&payment).Error
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			err = tx.Where("booking_id = ?", booking.ID).Order("created_at DESC").First(&payment).Error
		}
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeNotFound, "Payment not found for booking.", errors.ErrPaymentNotFound)
			}
			return err
		}

		if payment.Status == constants.PaymentStatusCompleted && booking.Status == constants.BookingStatusConfirmed {
			alreadyConfirmed = true
			return nil
		}

		receiptURL := ""
		if event.PaymentIntent != "" {
			receiptURL, err = s.provider.ReceiptURL(ctx, event.PaymentIntent)
			if err != nil {
				// Receipt is cosmetic; reconciliation still proceeds.
				s.logger.Error("fetch receipt for intent %s: %v", event.PaymentIntent, err)
				receiptURL = ""
			}
		}

		now := time.Now()
		payment.Status = constants.PaymentStatusCompleted
		payment.TransactionID = event.SessionID
		payment.ReceiptURL = receiptURL
		payment.PaymentDate = &now
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}

		booking.Status = constants.BookingStatusConfirmed
		return tx.Model(&booking).Update("booking_status", constants.BookingStatusConfirmed).Error
	})
	if err != nil {
		return err
	}

	if alreadyConfirmed {
		s.logger.Info("booking %d already confirmed, webhook replay ignored", booking.ID)
		return nil
	}

	if s.mailer != nil {
		body := BookingConfirmedEmailBody(
			booking.User.FirstName,
			booking.ID,
			booking.Room.Hotel.Name,
			booking.Room.RoomType,
			booking.CheckInDate,
			booking.CheckOutDate,
			payment.ReceiptURL,
		)
		if err := s.mailer.Send(booking.User.Email, "Booking Confirmed", body); err != nil {
			s.logger.Error("send confirmation email for booking %d: %v", booking.ID, err)
		}
	}

	if s.notifier != nil {
		s.notifier.Broadcast(notification.BookingConfirmedMessage(booking.ID, booking.Room.Hotel.Name))
	}

	return nil
}

// ListAll trả về mọi payment (admin view), mới nhất trước
func (s *PaymentService) ListAll() ([]dto.PaymentResponse, error) {
	return s.list(s.db)
}

// ListByUser trả về payment thuộc các booking của user
func (s *PaymentService) ListByUser(userID uint) ([]dto.PaymentResponse, error) {
	return s.list(s.db.
		Joins("JOIN bookings ON bookings.id = payments.booking_id").
		Where("bookings.user_id = ?", userID))
}

func (s *PaymentService) list(tx *gorm.DB) ([]dto.PaymentResponse, error) {
	var payments []models.Payment
	if err := tx.Order("payments.created_at DESC").Find(&payments).Error; err != nil {
		return nil, err
	}

	result := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		result = append(result, toPaymentResponse(&payments[i]))
	}
	return result, nil
}

// GetByID trả về một payment theo id (admin view)
func (s *PaymentService) GetByID(id uint) (*dto.PaymentResponse, error) {
	var payment models.Payment
	if err := s.db.First(&payment, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Payment not found.", errors.ErrPaymentNotFound)
		}
		return nil, err
	}
	resp := toPaymentResponse(&payment)
	return &resp, nil
}

// ReceiptForUser trả về receipt URL nếu payment thuộc về user và đã Completed
func (s *PaymentService) ReceiptForUser(userID, paymentID uint) (*dto.PaymentReceiptResponse, error) {
	var payment models.Payment
	err := s.db.Preload("Booking").First(&payment, paymentID).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Payment not found.", errors.ErrPaymentNotFound)
		}
		return nil, err
	}

	if payment.Booking.UserID != userID {
		return nil, errors.NewAppError(errors.ErrCodeForbidden, "You can only view your own receipts.", nil)
	}
	if payment.Status != constants.PaymentStatusCompleted || payment.ReceiptURL == "" {
		return nil, errors.NewAppError(errors.ErrCodeNotFound, "No receipt available for this payment.", nil)
	}

	return &dto.PaymentReceiptResponse{PaymentID: payment.ID, ReceiptURL: payment.ReceiptURL}, nil
}

// StatusByTransaction tra trạng thái payment + booking theo transaction id,
// dùng cho trang success poll kết quả webhook.
func (s *PaymentService) StatusByTransaction(transactionID string) (*dto.PaymentStatusResponse, error) {
	var payment models.Payment
	err := s.db.Preload("Booking").Where("transaction_id = ?", transactionID).First(&payment).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Payment not found.", errors.ErrPaymentNotFound)
		}
		return nil, err
	}

	return &dto.PaymentStatusResponse{
		TransactionID: payment.TransactionID,
		PaymentStatus: payment.Status,
		BookingStatus: payment.Booking.Status,
		ReceiptURL:    payment.ReceiptURL,
	}, nil
}

// UpdateStatus cho admin chỉnh tay trạng thái một payment
func (s *PaymentService) UpdateStatus(id uint, status string) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.First(&payment, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Payment not found.", errors.ErrPaymentNotFound)
		}
		return nil, err
	}

	payment.Status = status
	if status == constants.PaymentStatusCompleted && payment.PaymentDate == nil {
		now := time.Now()
		payment.PaymentDate = &now
	}

	if err := s.db.Save(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentService) Delete(id uint) error {
	var payment models.Payment
	if err := s.db.First(&payment, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewAppError(errors.ErrCodeNotFound, "Payment not found.", errors.ErrPaymentNotFound)
		}
		return err
	}
	return s.db.Delete(&payment).Error
}

func toPaymentResponse(payment *models.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		PaymentID:     payment.ID,
		BookingID:     payment.BookingID,
		Amount:        payment.Amount,
		PaymentStatus: payment.Status,
		PaymentMethod: payment.PaymentMethod,
		TransactionID: payment.TransactionID,
		ReceiptURL:    payment.ReceiptURL,
	}
}
