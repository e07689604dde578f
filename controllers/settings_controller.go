package controllers

import (
	"staybook/dto"
	"staybook/middleware"
	"staybook/response"
	"staybook/validator"

	"github.com/gin-gonic/gin"
)

// UpdateEmail đổi email đăng nhập, user phải verify lại địa chỉ mới
func UpdateEmail(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	var req dto.UpdateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.TranslateBindingError(err))
		return
	}

	if err := authService.UpdateEmail(userID, req.NewEmail); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Email updated. Please verify your new email."})
}

// ChangePassword đổi mật khẩu sau khi đối chiếu mật khẩu hiện tại
func ChangePassword(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.TranslateBindingError(err))
		return
	}

	if err := authService.ChangePassword(userID, req); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Password changed successfully."})
}
