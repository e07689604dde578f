package constants

// Booking status
const (
	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"
)

// Payment status
const (
	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
	PaymentStatusFailed    = "Failed"
)

// Ticket status
const (
	TicketStatusOpen     = "Open"
	TicketStatusResolved = "Resolved"
)

// User roles
const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleOwner  = "owner"
	RoleDriver = "driver"
	RoleMember = "member"
)

// DateLayout is the calendar-date format used for check-in/check-out dates.
const DateLayout = "2006-01-02"
