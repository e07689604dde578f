package routes

import (
	"net/http"

	"staybook/constants"
	"staybook/controllers"
	middlewares "staybook/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(middlewares.SessionMiddleware())

	// Auth
	auth := api.Group("/auth")
	auth.POST("/register", controllers.Register)
	auth.POST("/login", controllers.Login)
	auth.POST("/verify-email", controllers.VerifyEmail)
	auth.POST("/resend-code", controllers.ResendVerificationCode)
	auth.POST("/forgot-password", controllers.ForgotPassword)
	auth.POST("/reset-password", controllers.ResetPassword)

	// Hotels & rooms (public read, admin write)
	api.GET("/hotels", controllers.GetAllHotels)
	api.GET("/hotels/search", controllers.SearchHotels)
	api.GET("/hotels/:id", controllers.GetHotelDetail)
	api.POST("/hotels", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateHotel)
	api.PUT("/hotels/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateHotel)
	api.DELETE("/hotels/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteHotel)

	api.GET("/rooms", controllers.GetAllRooms)
	api.GET("/rooms/:id", controllers.GetRoomDetail)
	api.POST("/rooms", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateRoom)
	api.PUT("/rooms/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateRoom)
	api.DELETE("/rooms/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteRoom)

	// Bookings
	bookings := api.Group("/bookings")
	bookings.POST("", middlewares.AuthMiddleware(), controllers.CreateBooking)
	bookings.GET("", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.GetAllBookings)
	bookings.GET("/my-bookings", middlewares.AuthMiddleware(), controllers.GetMyBookings)
	bookings.GET("/:id", middlewares.AuthMiddleware(), controllers.GetBookingDetail)
	bookings.PUT("/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateBooking)
	bookings.PATCH("/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateBooking)
	bookings.PATCH("/:id/confirm", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.ConfirmBooking)
	bookings.PATCH("/:id/cancel", middlewares.AuthMiddleware(), controllers.CancelBooking)
	bookings.DELETE("/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteBooking)

	// Payments. The webhook stays outside auth: the provider signs its
	// calls instead of carrying a user token.
	payments := api.Group("/payments")
	payments.POST("/webhook", controllers.HandleWebhook)
	payments.POST("/create-checkout-session", middlewares.AuthMiddleware(), controllers.CreateCheckoutSession)
	payments.GET("", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.GetAllPayments)
	payments.GET("/my", middlewares.AuthMiddleware(), controllers.GetMyPayments)
	payments.GET("/my/:paymentId/receipt", middlewares.AuthMiddleware(), controllers.GetPaymentReceipt)
	payments.GET("/:id/status", middlewares.AuthMiddleware(), controllers.GetPaymentStatus)
	payments.GET("/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.GetPaymentByID)
	payments.PATCH("/:id/status", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdatePaymentStatus)
	payments.DELETE("/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeletePayment)

	// Support tickets
	tickets := api.Group("/tickets")
	tickets.POST("", middlewares.AuthMiddleware(), controllers.CreateTicket)
	tickets.GET("", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.GetAllTickets)
	tickets.GET("/my", middlewares.AuthMiddleware(), controllers.GetMyTickets)
	tickets.GET("/:id", middlewares.AuthMiddleware(), controllers.GetTicketDetail)
	tickets.PATCH("/:id/resolve", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.ResolveTicket)
	tickets.DELETE("/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteTicket)

	// Reviews
	api.GET("/reviews", controllers.GetAllReviews)
	api.POST("/reviews", controllers.CreateReview)
	api.GET("/reviews/hotel/:hotelId", controllers.GetHotelReviews)
	api.DELETE("/reviews/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteReview)

	// Profile, settings & admin
	api.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)
	api.PUT("/profile", middlewares.AuthMiddleware(), controllers.UpdateProfile)

	settings := api.Group("/settings", middlewares.AuthMiddleware())
	settings.PUT("/email", controllers.UpdateEmail)
	settings.PUT("/password", controllers.ChangePassword)

	admin := api.Group("/admin", middlewares.AuthMiddleware(constants.RoleAdmin))
	admin.GET("/users", controllers.GetAllUsers)
	admin.PUT("/users/:id/role", controllers.ChangeUserRole)
	admin.DELETE("/users/:id", controllers.DeleteUser)
	admin.GET("/overview", controllers.GetAdminOverview)
}
