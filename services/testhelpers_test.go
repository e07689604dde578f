package services

import (
	"sync"
	"testing"

	"staybook/config"
	"staybook/constants"
	"staybook/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, config.Migrate(db))
	return db
}

// fakeMailer đếm số email gửi đi thay vì gửi thật
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentEmail
}

type sentEmail struct {
	To      string
	Subject string
	Body    string
}

func (f *fakeMailer) Send(to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentEmail{To: to, Subject: subject, Body: body})
	return nil
}

func (f *fakeMailer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      email,
		Password:   "not-a-real-hash",
		Role:       constants.RoleUser,
		IsVerified: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedHotelAndRoom(t *testing.T, db *gorm.DB, hotelName string) (models.Hotel, models.Room) {
	t.Helper()
	hotel := models.Hotel{
		Name:     hotelName,
		City:     "Lisbon",
		Location: "Alfama",
		Address:  "1 Castle Hill",
	}
	require.NoError(t, db.Create(&hotel).Error)

	room := models.Room{
		HotelID:       hotel.ID,
		RoomType:      "Double",
		PricePerNight: decimal.NewFromInt(100),
		Capacity:      2,
		IsAvailable:   true,
	}
	require.NoError(t, db.Create(&room).Error)
	return hotel, room
}

func seedBooking(t *testing.T, db *gorm.DB, userID, roomID uint, checkIn, checkOut, status string) models.Booking {
	t.Helper()
	booking := models.Booking{
		UserID:       userID,
		RoomID:       roomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalAmount:  decimal.NewFromInt(200),
		Status:       status,
		Guests:       2,
	}
	require.NoError(t, db.Create(&booking).Error)
	return booking
}
