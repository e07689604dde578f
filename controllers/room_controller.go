package controllers

import (
	"staybook/dto"
	"staybook/response"
	"staybook/validator"

	"github.com/gin-gonic/gin"
)

func GetAllRooms(c *gin.Context) {
	rooms, err := roomService.ListAll()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, rooms)
}

func GetRoomDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	room, err := roomService.GetByID(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, room)
}

func CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.TranslateBindingError(err))
		return
	}

	room, err := roomService.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, room)
}

func UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.TranslateBindingError(err))
		return
	}

	room, err := roomService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, room)
}

func DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := roomService.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Room deleted."})
}
