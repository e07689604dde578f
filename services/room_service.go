package services

import (
	"context"
	stderrors "errors"

	"staybook/dto"
	"staybook/errors"
	"staybook/models"
	"staybook/services/logger"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// RoomService quản lý CRUD phòng
type RoomService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

type RoomServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewRoomService(opts RoomServiceOptions) *RoomService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &RoomService{
		db:     opts.DB,
		rdb:    opts.Redis,
		logger: opts.Logger,
	}
}

// ListAll trả về mọi phòng đã join thông tin hotel
func (s *RoomService) ListAll() ([]dto.RoomWithHotel, error) {
	var rooms []models.Room
	if err := s.db.Preload("Hotel").Order("hotel_id ASC, id ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}

	result := make([]dto.RoomWithHotel, 0, len(rooms))
	for i := range rooms {
		result = append(result, toRoomWithHotel(&rooms[i]))
	}
	return result, nil
}

func (s *RoomService) GetByID(id uint) (*dto.RoomWithHotel, error) {
	var room models.Room
	err := s.db.Preload("Hotel").First(&room, id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Room not found.", errors.ErrRoomNotFound)
		}
		return nil, err
	}

	detail := toRoomWithHotel(&room)
	return &detail, nil
}

func (s *RoomService) Create(ctx context.Context, req dto.CreateRoomRequest) (*models.Room, error) {
	var hotel models.Hotel
	if err := s.db.First(&hotel, req.HotelID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Hotel not found.", errors.ErrHotelNotFound)
		}
		return nil, err
	}

	room := models.Room{
		HotelID:       req.HotelID,
		RoomType:      req.RoomType,
		PricePerNight: req.PricePerNight,
		Capacity:      req.Capacity,
		Amenities:     pq.StringArray(req.Amenities),
		IsAvailable:   true,
		ImageURL:      req.ImageURL,
	}
	if req.IsAvailable != nil {
		room.IsAvailable = *req.IsAvailable
	}

	if err := s.db.Create(&room).Error; err != nil {
		return nil, err
	}

	s.invalidateHotelCache(ctx)
	return &room, nil
}

func (s *RoomService) Update(ctx context.Context, id uint, req dto.UpdateRoomRequest) (*models.Room, error) {
	var room models.Room
	if err := s.db.First(&room, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Room not found.", errors.ErrRoomNotFound)
		}
		return nil, err
	}

	if req.RoomType != nil {
		room.RoomType = *req.RoomType
	}
	if req.PricePerNight != nil {
		room.PricePerNight = *req.PricePerNight
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.Amenities != nil {
		room.Amenities = pq.StringArray(req.Amenities)
	}
	if req.IsAvailable != nil {
		room.IsAvailable = *req.IsAvailable
	}
	if req.ImageURL != nil {
		room.ImageURL = *req.ImageURL
	}

	if err := s.db.Save(&room).Error; err != nil {
		return nil, err
	}

	s.invalidateHotelCache(ctx)
	return &room, nil
}

func (s *RoomService) Delete(ctx context.Context, id uint) error {
	var room models.Room
	if err := s.db.First(&room, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewAppError(errors.ErrCodeNotFound, "Room not found.", errors.ErrRoomNotFound)
		}
		return err
	}

	if err := s.db.Delete(&room).Error; err != nil {
		return err
	}

	s.invalidateHotelCache(ctx)
	return nil
}

func (s *RoomService) invalidateHotelCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := DeleteKeysByPattern(ctx, s.rdb, "hotels:*"); err != nil {
		s.logger.Error("invalidate hotel cache: %v", err)
	}
}

func toRoomWithHotel(room *models.Room) dto.RoomWithHotel {
	return dto.RoomWithHotel{
		RoomID:            room.ID,
		RoomType:          room.RoomType,
		PricePerNight:     room.PricePerNight,
		Capacity:          room.Capacity,
		Amenities:         []string(room.Amenities),
		IsAvailable:       room.IsAvailable,
		ImageURL:          room.ImageURL,
		HotelID:           room.HotelID,
		HotelName:         room.Hotel.Name,
		HotelLocation:     room.Hotel.Location,
		HotelCity:         room.Hotel.City,
		HotelAddress:      room.Hotel.Address,
		HotelContactPhone: room.Hotel.ContactPhone,
	}
}
