package dto

type UserResponse struct {
	UserID          uint   `json:"userId"`
	FirstName       string `json:"firstname"`
	LastName        string `json:"lastname"`
	Email           string `json:"email"`
	ContactPhone    string `json:"contactPhone,omitempty"`
	Address         string `json:"address,omitempty"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
	Role            string `json:"role"`
	IsVerified      bool   `json:"isVerified"`
}

type UpdateProfileRequest struct {
	FirstName       *string `json:"firstname" binding:"omitempty,max=100"`
	LastName        *string `json:"lastname" binding:"omitempty,max=100"`
	ContactPhone    *string `json:"contactPhone" binding:"omitempty,max=20"`
	Address         *string `json:"address"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

type UpdateEmailRequest struct {
	NewEmail string `json:"newEmail" binding:"required,email"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin owner driver member"`
}

// AdminOverview gom các bộ đếm cho dashboard admin
type AdminOverview struct {
	TotalUsers        int64  `json:"totalUsers"`
	VerifiedUsers     int64  `json:"verifiedUsers"`
	TotalHotels       int64  `json:"totalHotels"`
	TotalRooms        int64  `json:"totalRooms"`
	ConfirmedBookings int64  `json:"confirmedBookings"`
	UpcomingBookings  int64  `json:"upcomingBookings"`
	TotalRevenue      string `json:"totalRevenue"`
	PendingPayments   int64  `json:"pendingPayments"`
	OpenTickets       int64  `json:"openTickets"`
}
