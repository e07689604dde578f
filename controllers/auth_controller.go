package controllers

import (
	"staybook/dto"
	"staybook/response"
	"staybook/services"
	"staybook/validator"

	"github.com/gin-gonic/gin"
)

// Register tạo user mới và gửi mã verify qua email
func Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.TranslateBindingError(err))
		return
	}

	user, err := authService.Register(req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, gin.H{
		"message": "Registration successful. Please check your email for a verification code.",
		"user":    services.ToUserResponse(user),
	})
}

func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.TranslateBindingError(err))
		return
	}

	result, err := authService.Login(req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, result)
}

func VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.TranslateBindingError(err))
		return
	}

	user, err := authService.VerifyEmail(req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{
		"message": "Email verified successfully. You can now log in.",
		"user":    services.ToUserResponse(user),
	})
}

func ResendVerificationCode(c *gin.Context) {
	var req dto.ResendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.TranslateBindingError(err))
		return
	}

	if err := authService.ResendCode(req.Email); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "A new verification code has been sent."})
}

func ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.TranslateBindingError(err))
		return
	}

	if err := authService.RequestPasswordReset(req.Email); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "A password reset code has been sent to your email."})
}

func ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.TranslateBindingError(err))
		return
	}

	if err := authService.ResetPassword(req); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Password has been reset. You can now log in."})
}
