package controllers

import (
	"staybook/dto"
	"staybook/middleware"
	"staybook/response"
	"staybook/validator"

	"github.com/gin-gonic/gin"
)

// SignatureHeaderName là header mang chữ ký webhook của provider
const SignatureHeaderName = "Checkout-Signature"

// CreateCheckoutSession mở phiên thanh toán hosted cho một booking
func CreateCheckoutSession(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	var req dto.CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.TranslateBindingError(err))
		return
	}

	session, err := paymentService.CreateCheckoutSession(c.Request.Context(), userID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, session)
}

// HandleWebhook nhận notification của provider. Body phải được đọc thô vì
// chữ ký được tính trên từng byte của payload.
func HandleWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "Could not read request body.")
		return
	}

	signature := c.GetHeader(SignatureHeaderName)
	if err := paymentService.HandleNotification(c.Request.Context(), payload, signature); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"received": true})
}

// GetAllPayments trả về mọi payment (admin)
func GetAllPayments(c *gin.Context) {
	payments, err := paymentService.ListAll()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, payments)
}

// GetMyPayments trả về payment thuộc các booking của user đang đăng nhập
func GetMyPayments(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	payments, err := paymentService.ListByUser(userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, payments)
}

// GetPaymentReceipt trả về receipt URL của một payment đã Completed
func GetPaymentReceipt(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	id, valid := parseIDParam(c, "paymentId")
	if !valid {
		return
	}

	receipt, err := paymentService.ReceiptForUser(userID, id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, receipt)
}

// GetPaymentStatus tra trạng thái theo transaction id, trang success poll endpoint này
func GetPaymentStatus(c *gin.Context) {
	transactionID := c.Param("id")
	if transactionID == "" {
		response.BadRequest(c, "Missing transaction id")
		return
	}

	status, err := paymentService.StatusByTransaction(transactionID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, status)
}

// GetPaymentByID trả về chi tiết một payment (admin)
func GetPaymentByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	payment, err := paymentService.GetByID(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, payment)
}

// UpdatePaymentStatus cho admin chỉnh tay trạng thái payment
func UpdatePaymentStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.TranslateBindingError(err))
		return
	}

	payment, err := paymentService.UpdateStatus(id, req.Status)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, payment)
}

// DeletePayment xóa một payment (admin)
func DeletePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := paymentService.Delete(id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Payment deleted."})
}
