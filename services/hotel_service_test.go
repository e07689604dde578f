package services

import (
	"context"
	"testing"

	"staybook/constants"
	"staybook/dto"
	"staybook/errors"
	"staybook/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roomIDs(hotels []dto.HotelWithRooms) []uint {
	var ids []uint
	for _, h := range hotels {
		for _, r := range h.Rooms {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

func TestAvailableBetweenExcludesOverlappingBookings(t *testing.T) {
	db := newTestDB(t)
	svc := NewHotelService(HotelServiceOptions{DB: db})

	user := seedUser(t, db, "ada@example.com")
	_, booked := seedHotelAndRoom(t, db, "Seaside Inn")
	_, free := seedHotelAndRoom(t, db, "Mountain Lodge")

	seedBooking(t, db, user.ID, booked.ID, "2026-10-10", "2026-10-15", constants.BookingStatusConfirmed)

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		overlap  bool
	}{
		{"fully inside", "2026-10-11", "2026-10-14", true},
		{"surrounding", "2026-10-05", "2026-10-20", true},
		{"left edge touches", "2026-10-05", "2026-10-10", true},
		{"right edge touches", "2026-10-15", "2026-10-20", true},
		{"before", "2026-10-01", "2026-10-09", false},
		{"after", "2026-10-16", "2026-10-20", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hotels, err := svc.AvailableBetween(tc.checkIn, tc.checkOut)
			require.NoError(t, err)

			ids := roomIDs(hotels)
			assert.Contains(t, ids, free.ID)
			if tc.overlap {
				assert.NotContains(t, ids, booked.ID)
			} else {
				assert.Contains(t, ids, booked.ID)
			}
		})
	}
}

func TestAvailableBetweenCountsCancelledBookings(t *testing.T) {
	db := newTestDB(t)
	svc := NewHotelService(HotelServiceOptions{DB: db})

	user := seedUser(t, db, "ada@example.com")
	_, room := seedHotelAndRoom(t, db, "Seaside Inn")
	// Status does not matter for availability: any stored overlapping
	// booking excludes the room.
	seedBooking(t, db, user.ID, room.ID, "2026-10-10", "2026-10-15", constants.BookingStatusCancelled)

	hotels, err := svc.AvailableBetween("2026-10-11", "2026-10-14")
	require.NoError(t, err)
	assert.NotContains(t, roomIDs(hotels), room.ID)

	// Outside the booked window the room shows up again.
	hotels, err = svc.AvailableBetween("2026-10-20", "2026-10-25")
	require.NoError(t, err)
	assert.Contains(t, roomIDs(hotels), room.ID)
}

func TestAvailableBetweenSkipsUnavailableRooms(t *testing.T) {
	db := newTestDB(t)
	svc := NewHotelService(HotelServiceOptions{DB: db})

	hotel, room := seedHotelAndRoom(t, db, "Seaside Inn")
	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", room.ID).Update("is_available", false).Error)

	offline := models.Room{
		HotelID:       hotel.ID,
		RoomType:      "Suite",
		PricePerNight: decimal.NewFromInt(250),
		Capacity:      4,
		IsAvailable:   true,
	}
	require.NoError(t, db.Create(&offline).Error)

	hotels, err := svc.AvailableBetween("2026-10-01", "2026-10-05")
	require.NoError(t, err)

	ids := roomIDs(hotels)
	assert.NotContains(t, ids, room.ID)
	assert.Contains(t, ids, offline.ID)
}

func TestAvailableBetweenGroupsRoomsByHotel(t *testing.T) {
	db := newTestDB(t)
	svc := NewHotelService(HotelServiceOptions{DB: db})

	hotel, _ := seedHotelAndRoom(t, db, "Seaside Inn")
	second := models.Room{
		HotelID:       hotel.ID,
		RoomType:      "Twin",
		PricePerNight: decimal.NewFromInt(80),
		Capacity:      2,
		IsAvailable:   true,
	}
	require.NoError(t, db.Create(&second).Error)

	hotels, err := svc.AvailableBetween("2026-10-01", "2026-10-05")
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Len(t, hotels[0].Rooms, 2)
	assert.Equal(t, hotel.Name, hotels[0].Hotel.Name)
}

func TestListWithRoomsWithoutRedis(t *testing.T) {
	db := newTestDB(t)
	svc := NewHotelService(HotelServiceOptions{DB: db})

	seedHotelAndRoom(t, db, "Seaside Inn")
	seedHotelAndRoom(t, db, "Mountain Lodge")

	hotels, err := svc.ListWithRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, hotels, 2)
	// Sorted by name.
	assert.Equal(t, "Mountain Lodge", hotels[0].Hotel.Name)
	assert.Equal(t, "Seaside Inn", hotels[1].Hotel.Name)
}

func TestGetHotelByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewHotelService(HotelServiceOptions{DB: db})

	_, err := svc.GetByID(12345)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
}

func TestUpdateHotelPartialFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewHotelService(HotelServiceOptions{DB: db})

	hotel, _ := seedHotelAndRoom(t, db, "Seaside Inn")

	name := "Seaside Grand"
	updated, err := svc.Update(context.Background(), hotel.ID, dto.UpdateHotelRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Seaside Grand", updated.Name)
	assert.Equal(t, hotel.City, updated.City)
}

func TestSearchHotelsRanksNameMatchesFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewHotelService(HotelServiceOptions{DB: db})

	seedHotelAndRoom(t, db, "Seaside Inn")
	seedHotelAndRoom(t, db, "Mountain Lodge")

	results, err := svc.SearchHotels("seaside inn")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Seaside Inn", results[0].Hotel.Name)
}
