package controllers

import (
	"staybook/dto"
	"staybook/response"
	"staybook/validator"

	"github.com/gin-gonic/gin"
)

func CreateReview(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.TranslateBindingError(err))
		return
	}

	review, err := reviewService.Create(req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, review)
}

// GetAllReviews liệt kê mọi review kèm tên hotel
func GetAllReviews(c *gin.Context) {
	reviews, err := reviewService.ListAll()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, reviews)
}

// GetHotelReviews liệt kê review của một hotel, mới nhất trước
func GetHotelReviews(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotelId")
	if !ok {
		return
	}

	reviews, err := reviewService.ListByHotel(hotelID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, reviews)
}

func DeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := reviewService.Delete(id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Review deleted."})
}
