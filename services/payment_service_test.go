package services

import (
	"context"
	"fmt"
	"testing"

	"staybook/constants"
	"staybook/dto"
	"staybook/errors"
	"staybook/models"
	"staybook/services/checkout"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeProvider phát session cố định và verify bằng một secret giả
type fakeProvider struct {
	sessions    int
	failVerify  bool
	receiptURL  string
	lastSession checkout.CreateSessionParams
}

func (f *fakeProvider) CreateSession(_ context.Context, params checkout.CreateSessionParams) (*checkout.Session, error) {
	f.sessions++
	f.lastSession = params
	id := fmt.Sprintf("cs_test_%d", f.sessions)
	return &checkout.Session{ID: id, URL: "https://checkout.example.com/pay/" + id}, nil
}

func (f *fakeProvider) VerifyNotification(payload []byte, _ string) (*checkout.Event, error) {
	if f.failVerify {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Webhook signature mismatch", errors.ErrInvalidSignature)
	}

	var envelope struct {
		Type string `json:"type"`
		Data struct {
			Object struct {
				ID            string            `json:"id"`
				PaymentIntent string            `json:"payment_intent"`
				Metadata      map[string]string `json:"metadata"`
			} `json:"object"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, err
	}
	return &checkout.Event{
		Type:          envelope.Type,
		SessionID:     envelope.Data.Object.ID,
		PaymentIntent: envelope.Data.Object.PaymentIntent,
		Metadata:      envelope.Data.Object.Metadata,
	}, nil
}

func (f *fakeProvider) ReceiptURL(_ context.Context, _ string) (string, error) {
	return f.receiptURL, nil
}

func completedEventPayload(t *testing.T, sessionID string, bookingID uint) []byte {
	t.Helper()
	payload, err := json.Marshal(map[string]interface{}{
		"type": checkout.EventCheckoutCompleted,
		"data": map[string]interface{}{
			"object": map[string]interface{}{
				"id":             sessionID,
				"payment_intent": "pi_test_1",
				"metadata": map[string]string{
					"bookingId": fmt.Sprintf("%d", bookingID),
				},
			},
		},
	})
	require.NoError(t, err)
	return payload
}

type paymentFixture struct {
	db       *gorm.DB
	svc      *PaymentService
	provider *fakeProvider
	mailer   *fakeMailer
	user     models.User
	booking  models.Booking
}

func newPaymentFixture(t *testing.T, allowRetry bool) *paymentFixture {
	db := newTestDB(t)
	provider := &fakeProvider{receiptURL: "https://receipts.example.com/r/1"}
	mailer := &fakeMailer{}

	svc := NewPaymentService(PaymentServiceOptions{
		DB:         db,
		Provider:   provider,
		Mailer:     mailer,
		AllowRetry: &allowRetry,
	})

	user := seedUser(t, db, "ada@example.com")
	_, room := seedHotelAndRoom(t, db, "Seaside Inn")
	booking := seedBooking(t, db, user.ID, room.ID, "2026-10-01", "2026-10-05", constants.BookingStatusPending)

	return &paymentFixture{db: db, svc: svc, provider: provider, mailer: mailer, user: user, booking: booking}
}

func TestCheckoutAndWebhookConfirmBooking(t *testing.T) {
	fx := newPaymentFixture(t, true)
	ctx := context.Background()

	session, err := fx.svc.CreateCheckoutSession(ctx, fx.user.ID, dto.CreateCheckoutSessionRequest{
		BookingID: fx.booking.ID,
		Amount:    20000,
	})
	require.NoError(t, err)
	assert.Contains(t, session.URL, "https://checkout.example.com/pay/")
	assert.Equal(t, fmt.Sprintf("%d", fx.booking.ID), fx.provider.lastSession.Metadata["bookingId"])

	var payment models.Payment
	require.NoError(t, fx.db.Where("booking_id = ?", fx.booking.ID).First(&payment).Error)
	assert.Equal(t, constants.PaymentStatusPending, payment.Status)
	assert.Equal(t, "200", payment.Amount.String())

	payload := completedEventPayload(t, payment.TransactionID, fx.booking.ID)
	require.NoError(t, fx.svc.HandleNotification(ctx, payload, "t=1,v1=ignored-by-fake"))

	var booking models.Booking
	require.NoError(t, fx.db.First(&booking, fx.booking.ID).Error)
	assert.Equal(t, constants.BookingStatusConfirmed, booking.Status)

	require.NoError(t, fx.db.First(&payment, payment.ID).Error)
	assert.Equal(t, constants.PaymentStatusCompleted, payment.Status)
	assert.Equal(t, "https://receipts.example.com/r/1", payment.ReceiptURL)
	require.NotNil(t, payment.PaymentDate)

	require.Equal(t, 1, fx.mailer.count())
	assert.Equal(t, fx.user.Email, fx.mailer.sent[0].To)
	assert.Contains(t, fx.mailer.sent[0].Body, "Seaside Inn")
}

func TestWebhookReplayDoesNotResendEmail(t *testing.T) {
	fx := newPaymentFixture(t, true)
	ctx := context.Background()

	_, err := fx.svc.CreateCheckoutSession(ctx, fx.user.ID, dto.CreateCheckoutSessionRequest{
		BookingID: fx.booking.ID,
		Amount:    20000,
	})
	require.NoError(t, err)

	var payment models.Payment
	require.NoError(t, fx.db.Where("booking_id = ?", fx.booking.ID).First(&payment).Error)
	payload := completedEventPayload(t, payment.TransactionID, fx.booking.ID)

	require.NoError(t, fx.svc.HandleNotification(ctx, payload, "sig"))
	require.NoError(t, fx.svc.HandleNotification(ctx, payload, "sig"))
	require.NoError(t, fx.svc.HandleNotification(ctx, payload, "sig"))

	assert.Equal(t, 1, fx.mailer.count())

	var booking models.Booking
	require.NoError(t, fx.db.First(&booking, fx.booking.ID).Error)
	assert.Equal(t, constants.BookingStatusConfirmed, booking.Status)
}

func TestWebhookInvalidSignatureLeavesStateUntouched(t *testing.T) {
	fx := newPaymentFixture(t, true)
	ctx := context.Background()

	_, err := fx.svc.CreateCheckoutSession(ctx, fx.user.ID, dto.CreateCheckoutSessionRequest{
		BookingID: fx.booking.ID,
		Amount:    20000,
	})
	require.NoError(t, err)

	fx.provider.failVerify = true
	payload := completedEventPayload(t, "cs_test_1", fx.booking.ID)
	err = fx.svc.HandleNotification(ctx, payload, "t=1,v1=bad")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))

	var booking models.Booking
	require.NoError(t, fx.db.First(&booking, fx.booking.ID).Error)
	assert.Equal(t, constants.BookingStatusPending, booking.Status)

	var payment models.Payment
	require.NoError(t, fx.db.Where("booking_id = ?", fx.booking.ID).First(&payment).Error)
	assert.Equal(t, constants.PaymentStatusPending, payment.Status)
	assert.Zero(t, fx.mailer.count())
}

func TestWebhookIgnoresOtherEventTypes(t *testing.T) {
	fx := newPaymentFixture(t, true)
	ctx := context.Background()

	payload, err := json.Marshal(map[string]interface{}{
		"type": "charge.refunded",
		"data": map[string]interface{}{"object": map[string]interface{}{"id": "ch_1"}},
	})
	require.NoError(t, err)

	require.NoError(t, fx.svc.HandleNotification(ctx, payload, "sig"))

	var booking models.Booking
	require.NoError(t, fx.db.First(&booking, fx.booking.ID).Error)
	assert.Equal(t, constants.BookingStatusPending, booking.Status)
}

func TestWebhookMissingBookingMetadata(t *testing.T) {
	fx := newPaymentFixture(t, true)

	payload, err := json.Marshal(map[string]interface{}{
		"type": checkout.EventCheckoutCompleted,
		"data": map[string]interface{}{"object": map[string]interface{}{"id": "cs_1"}},
	})
	require.NoError(t, err)

	err = fx.svc.HandleNotification(context.Background(), payload, "sig")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))
}

func TestCheckoutSecondPendingPaymentBlockedWhenRetryDisabled(t *testing.T) {
	fx := newPaymentFixture(t, false)
	ctx := context.Background()

	_, err := fx.svc.CreateCheckoutSession(ctx, fx.user.ID, dto.CreateCheckoutSessionRequest{
		BookingID: fx.booking.ID,
		Amount:    20000,
	})
	require.NoError(t, err)

	_, err = fx.svc.CreateCheckoutSession(ctx, fx.user.ID, dto.CreateCheckoutSessionRequest{
		BookingID: fx.booking.ID,
		Amount:    20000,
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeConflict))
}

func TestCheckoutRetryAllowedByDefault(t *testing.T) {
	fx := newPaymentFixture(t, true)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := fx.svc.CreateCheckoutSession(ctx, fx.user.ID, dto.CreateCheckoutSessionRequest{
			BookingID: fx.booking.ID,
			Amount:    20000,
		})
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, fx.db.Model(&models.Payment{}).Where("booking_id = ?", fx.booking.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestCheckoutRejectsForeignBooking(t *testing.T) {
	fx := newPaymentFixture(t, true)
	stranger := seedUser(t, fx.db, "mallory@example.com")

	_, err := fx.svc.CreateCheckoutSession(context.Background(), stranger.ID, dto.CreateCheckoutSessionRequest{
		BookingID: fx.booking.ID,
		Amount:    20000,
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeForbidden))
}

func TestStatusByTransaction(t *testing.T) {
	fx := newPaymentFixture(t, true)
	ctx := context.Background()

	_, err := fx.svc.CreateCheckoutSession(ctx, fx.user.ID, dto.CreateCheckoutSessionRequest{
		BookingID: fx.booking.ID,
		Amount:    20000,
	})
	require.NoError(t, err)

	var payment models.Payment
	require.NoError(t, fx.db.Where("booking_id = ?", fx.booking.ID).First(&payment).Error)

	status, err := fx.svc.StatusByTransaction(payment.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentStatusPending, status.PaymentStatus)
	assert.Equal(t, constants.BookingStatusPending, status.BookingStatus)

	payload := completedEventPayload(t, payment.TransactionID, fx.booking.ID)
	require.NoError(t, fx.svc.HandleNotification(ctx, payload, "sig"))

	status, err = fx.svc.StatusByTransaction(payment.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentStatusCompleted, status.PaymentStatus)
	assert.Equal(t, constants.BookingStatusConfirmed, status.BookingStatus)
}

func TestReceiptForUserRequiresOwnershipAndCompletion(t *testing.T) {
	fx := newPaymentFixture(t, true)
	ctx := context.Background()

	_, err := fx.svc.CreateCheckoutSession(ctx, fx.user.ID, dto.CreateCheckoutSessionRequest{
		BookingID: fx.booking.ID,
		Amount:    20000,
	})
	require.NoError(t, err)

	var payment models.Payment
	require.NoError(t, fx.db.Where("booking_id = ?", fx.booking.ID).First(&payment).Error)

	// Pending payment has no receipt yet.
	_, err = fx.svc.ReceiptForUser(fx.user.ID, payment.ID)
	require.Error(t, err)

	payload := completedEventPayload(t, payment.TransactionID, fx.booking.ID)
	require.NoError(t, fx.svc.HandleNotification(ctx, payload, "sig"))

	receipt, err := fx.svc.ReceiptForUser(fx.user.ID, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://receipts.example.com/r/1", receipt.ReceiptURL)

	stranger := seedUser(t, fx.db, "mallory@example.com")
	_, err = fx.svc.ReceiptForUser(stranger.ID, payment.ID)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeForbidden))
}
