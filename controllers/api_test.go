package controllers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"staybook/config"
	"staybook/constants"
	"staybook/controllers"
	"staybook/models"
	"staybook/routes"
	"staybook/services"
	"staybook/services/checkout"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testWebhookSecret = "whsec_test"

type recordingMailer struct {
	mu   sync.Mutex
	sent int
}

func (m *recordingMailer) Send(_, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent++
	return nil
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent
}

type apiFixture struct {
	router *gin.Engine
	db     *gorm.DB
	mailer *recordingMailer
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	mailer := &recordingMailer{}
	// VerifyNotification needs no network; payloads without payment_intent
	// keep ReceiptURL from ever being called.
	provider := checkout.NewClient("http://provider.invalid", "sk_test", testWebhookSecret)

	controllers.Init(controllers.Services{
		Auth:    services.NewAuthService(services.AuthServiceOptions{DB: db, Mailer: mailer}),
		Booking: services.NewBookingService(services.BookingServiceOptions{DB: db}),
		Hotel:   services.NewHotelService(services.HotelServiceOptions{DB: db}),
		Room:    services.NewRoomService(services.RoomServiceOptions{DB: db}),
		Payment: services.NewPaymentService(services.PaymentServiceOptions{
			DB:       db,
			Provider: provider,
			Mailer:   mailer,
		}),
		Ticket: services.NewTicketService(db),
		Review: services.NewReviewService(db, nil),
		User:   services.NewUserService(db),
	})

	router := gin.New()
	routes.SetupRoutes(router)

	return &apiFixture{router: router, db: db, mailer: mailer}
}

func (fx *apiFixture) do(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	fx.router.ServeHTTP(rec, req)
	return rec
}

func (fx *apiFixture) seedVerifiedUser(t *testing.T, email, password, role string) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      email,
		Password:   string(hashed),
		Role:       role,
		IsVerified: true,
	}
	require.NoError(t, fx.db.Create(&user).Error)
	return user
}

func (fx *apiFixture) login(t *testing.T, email, password string) string {
	t.Helper()
	rec := fx.do(t, http.MethodPost, "/api/auth/login", gin.H{"email": email, "password": password}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func authHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestRegisterStatusCodes(t *testing.T) {
	fx := newAPIFixture(t)

	payload := gin.H{
		"firstname": "Ada",
		"lastname":  "Lovelace",
		"email":     "ada@example.com",
		"password":  "correct horse battery",
	}
	rec := fx.do(t, http.MethodPost, "/api/auth/register", payload, nil)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Missing fields.
	rec = fx.do(t, http.MethodPost, "/api/auth/register", gin.H{"email": "x@example.com"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Duplicate email.
	rec = fx.do(t, http.MethodPost, "/api/auth/register", payload, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestWrongVerificationCodesReturn400(t *testing.T) {
	fx := newAPIFixture(t)

	rec := fx.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"firstname": "Ada",
		"lastname":  "Lovelace",
		"email":     "ada@example.com",
		"password":  "correct horse battery",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var user models.User
	require.NoError(t, fx.db.Where("email = ?", "ada@example.com").First(&user).Error)
	wrongCode := "000000"
	if user.VerificationCode == wrongCode {
		wrongCode = "111111"
	}

	rec = fx.do(t, http.MethodPost, "/api/auth/verify-email", gin.H{
		"email": "ada@example.com",
		"code":  wrongCode,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	rec = fx.do(t, http.MethodPost, "/api/auth/forgot-password", gin.H{"email": "ada@example.com"}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.NoError(t, fx.db.Where("email = ?", "ada@example.com").First(&user).Error)
	wrongCode = "000000"
	if user.ResetPasswordCode == wrongCode {
		wrongCode = "111111"
	}

	rec = fx.do(t, http.MethodPost, "/api/auth/reset-password", gin.H{
		"email":       "ada@example.com",
		"code":        wrongCode,
		"newPassword": "another password",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestLoginStatusCodes(t *testing.T) {
	fx := newAPIFixture(t)
	fx.seedVerifiedUser(t, "ada@example.com", "secret-password", constants.RoleUser)

	rec := fx.do(t, http.MethodPost, "/api/auth/login", gin.H{"email": "ada@example.com", "password": "secret-password"}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(t, http.MethodPost, "/api/auth/login", gin.H{"email": "ada@example.com", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = fx.do(t, http.MethodPost, "/api/auth/login", gin.H{"email": "nobody@example.com", "password": "whatever"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateBookingStatusCodes(t *testing.T) {
	fx := newAPIFixture(t)
	fx.seedVerifiedUser(t, "ada@example.com", "secret-password", constants.RoleUser)
	token := fx.login(t, "ada@example.com", "secret-password")

	hotel := models.Hotel{Name: "Seaside Inn", City: "Lisbon", Location: "Alfama", Address: "1 Castle Hill"}
	require.NoError(t, fx.db.Create(&hotel).Error)
	room := models.Room{HotelID: hotel.ID, RoomType: "Double", PricePerNight: decimal.NewFromInt(100), Capacity: 2, IsAvailable: true}
	require.NoError(t, fx.db.Create(&room).Error)

	payload := gin.H{
		"roomId":       room.ID,
		"checkInDate":  "2026-10-01",
		"checkOutDate": "2026-10-05",
		"totalAmount":  "400.00",
	}

	// No token.
	rec := fx.do(t, http.MethodPost, "/api/bookings", payload, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = fx.do(t, http.MethodPost, "/api/bookings", payload, authHeader(token))
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, constants.BookingStatusPending, created.Status)

	// Missing fields.
	rec = fx.do(t, http.MethodPost, "/api/bookings", gin.H{"roomId": room.ID}, authHeader(token))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Second active booking for the same room.
	rec = fx.do(t, http.MethodPost, "/api/bookings", payload, authHeader(token))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Check-out before check-in.
	rec = fx.do(t, http.MethodPost, "/api/bookings", gin.H{
		"roomId":       room.ID,
		"checkInDate":  "2026-10-05",
		"checkOutDate": "2026-10-01",
		"totalAmount":  "400.00",
	}, authHeader(token))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingListVisibility(t *testing.T) {
	fx := newAPIFixture(t)
	fx.seedVerifiedUser(t, "ada@example.com", "secret-password", constants.RoleUser)
	fx.seedVerifiedUser(t, "admin@example.com", "admin-password", constants.RoleAdmin)
	userToken := fx.login(t, "ada@example.com", "secret-password")
	adminToken := fx.login(t, "admin@example.com", "admin-password")

	// Plain users cannot list all bookings.
	rec := fx.do(t, http.MethodGet, "/api/bookings", nil, authHeader(userToken))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = fx.do(t, http.MethodGet, "/api/bookings", nil, authHeader(adminToken))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(t, http.MethodGet, "/api/bookings/my-bookings", nil, authHeader(userToken))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookReconciliation(t *testing.T) {
	fx := newAPIFixture(t)
	user := fx.seedVerifiedUser(t, "ada@example.com", "secret-password", constants.RoleUser)

	hotel := models.Hotel{Name: "Seaside Inn", City: "Lisbon", Location: "Alfama", Address: "1 Castle Hill"}
	require.NoError(t, fx.db.Create(&hotel).Error)
	room := models.Room{HotelID: hotel.ID, RoomType: "Double", PricePerNight: decimal.NewFromInt(100), Capacity: 2, IsAvailable: true}
	require.NoError(t, fx.db.Create(&room).Error)

	booking := models.Booking{
		UserID:       user.ID,
		RoomID:       room.ID,
		CheckInDate:  "2026-10-01",
		CheckOutDate: "2026-10-05",
		TotalAmount:  decimal.NewFromInt(400),
		Status:       constants.BookingStatusPending,
		Guests:       2,
	}
	require.NoError(t, fx.db.Create(&booking).Error)

	payment := models.Payment{
		BookingID:     booking.ID,
		Amount:        decimal.NewFromInt(400),
		Status:        constants.PaymentStatusPending,
		TransactionID: "cs_test_1",
	}
	require.NoError(t, fx.db.Create(&payment).Error)

	payload, err := json.Marshal(gin.H{
		"type": checkout.EventCheckoutCompleted,
		"data": gin.H{
			"object": gin.H{
				"id":       "cs_test_1",
				"metadata": gin.H{"bookingId": fmt.Sprintf("%d", booking.ID)},
			},
		},
	})
	require.NoError(t, err)

	// Bad signature is rejected and changes nothing.
	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(payload))
	req.Header.Set(controllers.SignatureHeaderName, "t=1,v1=deadbeef")
	rec := httptest.NewRecorder()
	fx.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var unchanged models.Booking
	require.NoError(t, fx.db.First(&unchanged, booking.ID).Error)
	assert.Equal(t, constants.BookingStatusPending, unchanged.Status)

	// Properly signed notification reconciles booking and payment.
	header := checkout.SignatureHeader(testWebhookSecret, time.Now().Unix(), payload)
	req = httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(payload))
	req.Header.Set(controllers.SignatureHeaderName, header)
	rec = httptest.NewRecorder()
	fx.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var ack map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.True(t, ack["received"])

	var confirmed models.Booking
	require.NoError(t, fx.db.First(&confirmed, booking.ID).Error)
	assert.Equal(t, constants.BookingStatusConfirmed, confirmed.Status)

	var completed models.Payment
	require.NoError(t, fx.db.First(&completed, payment.ID).Error)
	assert.Equal(t, constants.PaymentStatusCompleted, completed.Status)

	assert.Equal(t, 1, fx.mailer.count())

	// Replay: acknowledged again, email not resent.
	req = httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(payload))
	req.Header.Set(controllers.SignatureHeaderName, checkout.SignatureHeader(testWebhookSecret, time.Now().Unix(), payload))
	rec = httptest.NewRecorder()
	fx.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, fx.mailer.count())
}

func TestHotelAvailabilityQueryValidation(t *testing.T) {
	fx := newAPIFixture(t)

	rec := fx.do(t, http.MethodGet, "/api/hotels?available=true", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = fx.do(t, http.MethodGet, "/api/hotels?available=true&checkInDate=2026-10-01&checkOutDate=2026-10-05", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRoutesForbiddenForUsers(t *testing.T) {
	fx := newAPIFixture(t)
	fx.seedVerifiedUser(t, "ada@example.com", "secret-password", constants.RoleUser)
	token := fx.login(t, "ada@example.com", "secret-password")

	rec := fx.do(t, http.MethodGet, "/api/admin/overview", nil, authHeader(token))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = fx.do(t, http.MethodPost, "/api/hotels", gin.H{
		"hotelName": "X", "city": "Y", "location": "Z", "address": "A",
	}, authHeader(token))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
