package response

import (
	"net/http"

	"staybook/errors"

	"github.com/gin-gonic/gin"
)

// Success trả về 200 với payload tùy controller
func Success(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Created trả về 201
func Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

// Error trả về lỗi dạng {"error": message}
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// ValidationErrors trả về 400 với chi tiết từng field
func ValidationErrors(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Missing or invalid token."
	}
	Error(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Access denied — insufficient permissions.")
}

func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Not found."
	}
	Error(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// ServerError không trả chi tiết lỗi cho client, chỉ log phía server
func ServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Server error.")
}

// FromError map AppError code sang HTTP status
func FromError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidCode, errors.ErrCodeExpiredCode:
		BadRequest(c, appErr.Message)
	case errors.ErrCodeNotFound:
		NotFound(c, appErr.Message)
	case errors.ErrCodeConflict, errors.ErrCodeDuplicate:
		Conflict(c, appErr.Message)
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken, errors.ErrCodeInvalidPassword, errors.ErrCodeUnverified:
		Unauthorized(c, appErr.Message)
	case errors.ErrCodeForbidden:
		Forbidden(c)
	case errors.ErrCodeProvider:
		Error(c, http.StatusInternalServerError, appErr.Message)
	default:
		ServerError(c)
	}
}
