package controllers

import (
	"staybook/constants"
	"staybook/dto"
	"staybook/middleware"
	"staybook/response"
	"staybook/validator"

	"github.com/gin-gonic/gin"
)

func CreateTicket(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.TranslateBindingError(err))
		return
	}

	ticket, err := ticketService.Create(userID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, ticket)
}

// GetAllTickets trả về mọi ticket kèm user (admin)
func GetAllTickets(c *gin.Context) {
	tickets, err := ticketService.ListAll()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, tickets)
}

func GetMyTickets(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	tickets, err := ticketService.ListByUser(userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, tickets)
}

// GetTicketDetail trả về một ticket, user thường chỉ xem được ticket của mình
func GetTicketDetail(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ticket, err := ticketService.GetByID(id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if middleware.CurrentUserRole(c) != constants.RoleAdmin {
		if ticket.User == nil || ticket.User.UserID != userID {
			response.Forbidden(c)
			return
		}
	}
	response.Success(c, ticket)
}

// ResolveTicket đổi trạng thái Open/Resolved (admin)
func ResolveTicket(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ResolveTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.TranslateBindingError(err))
		return
	}

	ticket, err := ticketService.SetStatus(id, req.Status)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, ticket)
}

func DeleteTicket(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ticketService.Delete(id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Ticket deleted."})
}
