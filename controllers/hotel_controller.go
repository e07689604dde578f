package controllers

import (
	"staybook/dto"
	"staybook/response"
	"staybook/validator"

	"github.com/gin-gonic/gin"
)

// GetAllHotels liệt kê hotel kèm rooms. Với ?available=true&checkInDate=..&
// checkOutDate=.. chỉ trả về các phòng còn trống trong khoảng ngày đó.
func GetAllHotels(c *gin.Context) {
	if c.Query("available") == "true" {
		checkIn := c.Query("checkInDate")
		checkOut := c.Query("checkOutDate")
		if checkIn == "" || checkOut == "" {
			response.BadRequest(c, "checkInDate and checkOutDate are required when available=true")
			return
		}
		if err := validator.ValidateDateRange(checkIn, checkOut); err != nil {
			response.FromError(c, err)
			return
		}

		hotels, err := hotelService.AvailableBetween(checkIn, checkOut)
		if err != nil {
			response.FromError(c, err)
			return
		}
		response.Success(c, hotels)
		return
	}

	hotels, err := hotelService.ListWithRooms(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, hotels)
}

// SearchHotels fuzzy search theo tên/city/location/category
func SearchHotels(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Missing search query")
		return
	}

	results, err := hotelService.SearchHotels(query)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, results)
}

func GetHotelDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	hotel, err := hotelService.GetByID(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, hotel)
}

func CreateHotel(c *gin.Context) {
	var req dto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.TranslateBindingError(err))
		return
	}

	hotel, err := hotelService.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, hotel)
}

func UpdateHotel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.TranslateBindingError(err))
		return
	}

	hotel, err := hotelService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, hotel)
}

func DeleteHotel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := hotelService.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Hotel deleted."})
}
