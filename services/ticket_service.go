package services

import (
	stderrors "errors"

	"staybook/constants"
	"staybook/dto"
	"staybook/errors"
	"staybook/models"

	"gorm.io/gorm"
)

// TicketService quản lý ticket hỗ trợ của user
type TicketService struct {
	db *gorm.DB
}

func NewTicketService(db *gorm.DB) *TicketService {
	return &TicketService{db: db}
}

func (s *TicketService) Create(userID uint, req dto.CreateTicketRequest) (*models.Ticket, error) {
	ticket := models.Ticket{
		UserID:      userID,
		Subject:     req.Subject,
		Description: req.Description,
		Status:      constants.TicketStatusOpen,
	}
	if err := s.db.Create(&ticket).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

// ListAll trả về mọi ticket kèm thông tin user (admin view)
func (s *TicketService) ListAll() ([]dto.TicketResponse, error) {
	var tickets []models.Ticket
	if err := s.db.Preload("User").Order("created_at DESC").Find(&tickets).Error; err != nil {
		return nil, err
	}

	result := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		result = append(result, toTicketResponse(&tickets[i], true))
	}
	return result, nil
}

func (s *TicketService) ListByUser(userID uint) ([]dto.TicketResponse, error) {
	var tickets []models.Ticket
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&tickets).Error
	if err != nil {
		return nil, err
	}

	result := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		result = append(result, toTicketResponse(&tickets[i], false))
	}
	return result, nil
}

// GetByID trả về một ticket, user thường chỉ xem được ticket của mình
func (s *TicketService) GetByID(id uint) (*dto.TicketResponse, error) {
	var ticket models.Ticket
	if err := s.db.Preload("User").First(&ticket, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Ticket not found.", nil)
		}
		return nil, err
	}

	resp := toTicketResponse(&ticket, true)
	return &resp, nil
}

// SetStatus đổi trạng thái Open/Resolved của một ticket
func (s *TicketService) SetStatus(id uint, status string) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := s.db.First(&ticket, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Ticket not found.", nil)
		}
		return nil, err
	}

	ticket.Status = status
	if err := s.db.Save(&ticket).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (s *TicketService) Delete(id uint) error {
	var ticket models.Ticket
	if err := s.db.First(&ticket, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewAppError(errors.ErrCodeNotFound, "Ticket not found.", nil)
		}
		return err
	}
	return s.db.Delete(&ticket).Error
}

func toTicketResponse(ticket *models.Ticket, withUser bool) dto.TicketResponse {
	resp := dto.TicketResponse{
		TicketID:    ticket.ID,
		Subject:     ticket.Subject,
		Description: ticket.Description,
		Status:      ticket.Status,
		CreatedAt:   ticket.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if withUser {
		resp.User = &dto.BookingCustomer{
			UserID:    ticket.User.ID,
			FirstName: ticket.User.FirstName,
			LastName:  ticket.User.LastName,
			Email:     ticket.User.Email,
		}
	}
	return resp
}
