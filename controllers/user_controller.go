package controllers

import (
	"staybook/dto"
	"staybook/middleware"
	"staybook/response"
	"staybook/services"
	"staybook/validator"

	"github.com/gin-gonic/gin"
)

// GetProfile trả về profile của user đang đăng nhập
func GetProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	user, err := userService.GetByID(userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, services.ToUserResponse(user))
}

func UpdateProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.TranslateBindingError(err))
		return
	}

	user, err := userService.UpdateProfile(userID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, services.ToUserResponse(user))
}

// GetAllUsers liệt kê mọi user (admin)
func GetAllUsers(c *gin.Context) {
	users, err := userService.ListAll()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, users)
}

// ChangeUserRole đổi role của một user (admin)
func ChangeUserRole(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.TranslateBindingError(err))
		return
	}

	user, err := userService.ChangeRole(id, req.Role)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, services.ToUserResponse(user))
}

// DeleteUser xóa user cùng dữ liệu liên quan (admin)
func DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := userService.Delete(id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "User deleted."})
}

// GetAdminOverview trả về bộ đếm tổng hợp cho dashboard (admin)
func GetAdminOverview(c *gin.Context) {
	overview, err := userService.Overview()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, overview)
}
