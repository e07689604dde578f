package services

import (
	stderrors "errors"

	"staybook/dto"
	"staybook/errors"
	"staybook/models"
	"staybook/services/logger"

	"gorm.io/gorm"
)

// ReviewService quản lý review và rating tổng hợp của hotel
type ReviewService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewReviewService(db *gorm.DB, lg logger.Logger) *ReviewService {
	if lg == nil {
		lg = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ReviewService{db: db, logger: lg}
}

func (s *ReviewService) Create(req dto.CreateReviewRequest) (*models.Review, error) {
	var hotel models.Hotel
	if err := s.db.First(&hotel, req.HotelID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Hotel not found.", errors.ErrHotelNotFound)
		}
		return nil, err
	}

	review := models.Review{
		HotelID: req.HotelID,
		Name:    req.Name,
		Comment: req.Comment,
		Stars:   req.Stars,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}

	// Keep the hotel's rating fresh without waiting for the nightly job.
	if err := s.RecomputeHotelRating(req.HotelID); err != nil {
		s.logger.Error("recompute rating for hotel %d: %v", req.HotelID, err)
	}

	return &review, nil
}

// ListAll trả về mọi review kèm tên hotel, mới nhất trước
func (s *ReviewService) ListAll() ([]dto.ReviewResponse, error) {
	var reviews []models.Review
	if err := s.db.Preload("Hotel").Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}

	result := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		resp := toReviewResponse(&reviews[i])
		resp.HotelName = reviews[i].Hotel.Name
		result = append(result, resp)
	}
	return result, nil
}

func (s *ReviewService) ListByHotel(hotelID uint) ([]dto.ReviewResponse, error) {
	var reviews []models.Review
	err := s.db.Where("hotel_id = ?", hotelID).Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	result := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		result = append(result, toReviewResponse(&reviews[i]))
	}
	return result, nil
}

func (s *ReviewService) Delete(id uint) error {
	var review models.Review
	if err := s.db.First(&review, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewAppError(errors.ErrCodeNotFound, "Review not found.", nil)
		}
		return err
	}

	if err := s.db.Delete(&review).Error; err != nil {
		return err
	}

	if err := s.RecomputeHotelRating(review.HotelID); err != nil {
		s.logger.Error("recompute rating for hotel %d: %v", review.HotelID, err)
	}
	return nil
}

// RecomputeHotelRating tính lại rating trung bình của một hotel từ reviews
func (s *ReviewService) RecomputeHotelRating(hotelID uint) error {
	var avg float64
	err := s.db.Model(&models.Review{}).
		Where("hotel_id = ?", hotelID).
		Select("COALESCE(AVG(stars), 0)").
		Scan(&avg).Error
	if err != nil {
		return err
	}

	return s.db.Model(&models.Hotel{}).Where("id = ?", hotelID).Update("rating", avg).Error
}

// RecomputeAllRatings chạy từ cron ban đêm, tính lại rating mọi hotel
func (s *ReviewService) RecomputeAllRatings() error {
	var hotelIDs []uint
	if err := s.db.Model(&models.Hotel{}).Pluck("id", &hotelIDs).Error; err != nil {
		return err
	}

	for _, id := range hotelIDs {
		if err := s.RecomputeHotelRating(id); err != nil {
			s.logger.Error("recompute rating for hotel %d: %v", id, err)
		}
	}
	return nil
}

func toReviewResponse(review *models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ReviewID:  review.ID,
		HotelID:   review.HotelID,
		Name:      review.Name,
		Comment:   review.Comment,
		Stars:     review.Stars,
		CreatedAt: review.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
