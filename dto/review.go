package dto

type CreateReviewRequest struct {
	HotelID uint   `json:"hotelId" binding:"required"`
	Name    string `json:"name" binding:"required,max=100"`
	Comment string `json:"comment" binding:"required"`
	Stars   int    `json:"stars" binding:"required,min=1,max=5"`
}

type ReviewResponse struct {
	ReviewID  uint   `json:"reviewId"`
	HotelID   uint   `json:"hotelId"`
	HotelName string `json:"hotelName,omitempty"`
	Name      string `json:"name"`
	Comment   string `json:"comment"`
	Stars     int    `json:"stars"`
	CreatedAt string `json:"createdAt"`
}
