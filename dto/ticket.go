package dto

type CreateTicketRequest struct {
	Subject     string `json:"subject" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
}

type ResolveTicketRequest struct {
	Status string `json:"status" binding:"required,oneof=Open Resolved"`
}

type TicketResponse struct {
	TicketID    uint             `json:"ticketId"`
	Subject     string           `json:"subject"`
	Description string           `json:"description"`
	Status      string           `json:"status"`
	CreatedAt   string           `json:"createdAt"`
	User        *BookingCustomer `json:"user,omitempty"`
}
