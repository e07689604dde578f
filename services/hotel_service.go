package services

import (
	"context"
	stderrors "errors"
	"time"

	"staybook/dto"
	"staybook/errors"
	"staybook/models"
	"staybook/services/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	hotelListCacheKey = "hotels:all"
	hotelCacheTTL     = 10 * time.Minute
)

// HotelService quản lý hotel + room listing, availability và cache
type HotelService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

type HotelServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewHotelService(opts HotelServiceOptions) *HotelService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &HotelService{
		db:     opts.DB,
		rdb:    opts.Redis,
		logger: opts.Logger,
	}
}

// ListWithRooms trả về mọi hotel kèm danh sách phòng, cache 10 phút
func (s *HotelService) ListWithRooms(ctx context.Context) ([]dto.HotelWithRooms, error) {
	if s.rdb != nil {
		var cached []dto.HotelWithRooms
		if err := GetFromRedis(ctx, s.rdb, hotelListCacheKey, &cached); err != nil {
			s.logger.Error("read hotel cache: %v", err)
		} else if len(cached) > 0 {
			return cached, nil
		}
	}

	var hotels []models.Hotel
	if err := s.db.Preload("Rooms").Order("name ASC").Find(&hotels).Error; err != nil {
		return nil, err
	}

	result := make([]dto.HotelWithRooms, 0, len(hotels))
	for i := range hotels {
		rooms := hotels[i].Rooms
		hotels[i].Rooms = nil
		result = append(result, dto.HotelWithRooms{Hotel: hotels[i], Rooms: rooms})
	}

	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, hotelListCacheKey, result, hotelCacheTTL); err != nil {
			s.logger.Error("write hotel cache: %v", err)
		}
	}

	return result, nil
}

// AvailableBetween trả về hotel kèm các phòng còn trống trong khoảng ngày.
// Một phòng bị loại khi nó có bất kỳ booking nào (kể cả đã hủy) mà khoảng
// ngày giao nhau (inclusive ở cả hai đầu) với khoảng được hỏi.
func (s *HotelService) AvailableBetween(checkIn, checkOut string) ([]dto.HotelWithRooms, error) {
	bookedRooms := s.db.Model(&models.Booking{}).
		Select("room_id").
		Where("check_in_date <= ? AND check_out_date >= ?", checkOut, checkIn)

	var rooms []models.Room
	err := s.db.Preload("Hotel").
		Where("is_available = ?", true).
		Where("id NOT IN (?)", bookedRooms).
		Order("hotel_id ASC, price_per_night ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}

	// Group by hotel, preserving hotel order.
	byHotel := make(map[uint]*dto.HotelWithRooms)
	order := make([]uint, 0)
	for i := range rooms {
		hotel := rooms[i].Hotel
		rooms[i].Hotel = models.Hotel{}

		entry, ok := byHotel[hotel.ID]
		if !ok {
			entry = &dto.HotelWithRooms{Hotel: hotel, Rooms: []models.Room{}}
			byHotel[hotel.ID] = entry
			order = append(order, hotel.ID)
		}
		entry.Rooms = append(entry.Rooms, rooms[i])
	}

	result := make([]dto.HotelWithRooms, 0, len(order))
	for _, id := range order {
		result = append(result, *byHotel[id])
	}
	return result, nil
}

// GetByID trả về một hotel kèm rooms và reviews
func (s *HotelService) GetByID(id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	err := s.db.Preload("Rooms").Preload("Reviews").First(&hotel, id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Hotel not found.", errors.ErrHotelNotFound)
		}
		return nil, err
	}
	return &hotel, nil
}

func (s *HotelService) Create(ctx context.Context, req dto.CreateHotelRequest) (*models.Hotel, error) {
	hotel := models.Hotel{
		Name:         req.Name,
		City:         req.City,
		Location:     req.Location,
		Address:      req.Address,
		ContactPhone: req.ContactPhone,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
	}

	if err := s.db.Create(&hotel).Error; err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return &hotel, nil
}

func (s *HotelService) Update(ctx context.Context, id uint, req dto.UpdateHotelRequest) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.db.First(&hotel, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Hotel not found.", errors.ErrHotelNotFound)
		}
		return nil, err
	}

	if req.Name != nil {
		hotel.Name = *req.Name
	}
	if req.City != nil {
		hotel.City = *req.City
	}
	if req.Location != nil {
		hotel.Location = *req.Location
	}
	if req.Address != nil {
		hotel.Address = *req.Address
	}
	if req.ContactPhone != nil {
		hotel.ContactPhone = *req.ContactPhone
	}
	if req.Category != nil {
		hotel.Category = *req.Category
	}
	if req.ImageURL != nil {
		hotel.ImageURL = *req.ImageURL
	}

	if err := s.db.Save(&hotel).Error; err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return &hotel, nil
}

func (s *HotelService) Delete(ctx context.Context, id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var hotel models.Hotel
		if err := tx.First(&hotel, id).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeNotFound, "Hotel not found.", errors.ErrHotelNotFound)
			}
			return err
		}

		if err := tx.Where("hotel_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("hotel_id = ?", id).Delete(&models.Room{}).Error; err != nil {
			return err
		}
		return tx.Delete(&hotel).Error
	})
	if err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *HotelService) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := DeleteKeysByPattern(ctx, s.rdb, "hotels:*"); err != nil {
		s.logger.Error("invalidate hotel cache: %v", err)
	}
}
