package main

import (
	"log"
	"os"

	"staybook/config"
	"staybook/controllers"
	"staybook/jobs"
	"staybook/routes"
	"staybook/services"
	"staybook/services/checkout"
	"staybook/services/logger"
	"staybook/services/notification"
	"staybook/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file found, using existing environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	lg := logger.NewDefaultLogger(logger.InfoLevel)
	mailer := services.NewSMTPSenderFromEnv()
	provider := checkout.NewClient(
		config.GetEnvDefault("CHECKOUT_API_URL", "https://api.checkout.example.com"),
		config.GetEnv("CHECKOUT_API_KEY"),
		config.GetEnv("CHECKOUT_WEBHOOK_SECRET"),
	)
	notifier := notification.NewMelodyBroadcaster(m)

	authService := services.NewAuthService(services.AuthServiceOptions{
		DB:     config.DB,
		Mailer: mailer,
		Logger: lg,
	})
	bookingService := services.NewBookingService(services.BookingServiceOptions{
		DB:     config.DB,
		Logger: lg,
	})
	hotelService := services.NewHotelService(services.HotelServiceOptions{
		DB:     config.DB,
		Redis:  config.RedisClient,
		Logger: lg,
	})
	roomService := services.NewRoomService(services.RoomServiceOptions{
		DB:     config.DB,
		Redis:  config.RedisClient,
		Logger: lg,
	})
	paymentService := services.NewPaymentService(services.PaymentServiceOptions{
		DB:       config.DB,
		Provider: provider,
		Mailer:   mailer,
		Notifier: notifier,
		Logger:   lg,
	})
	ticketService := services.NewTicketService(config.DB)
	reviewService := services.NewReviewService(config.DB, lg)
	userService := services.NewUserService(config.DB)

	controllers.Init(controllers.Services{
		Auth:    authService,
		Booking: bookingService,
		Hotel:   hotelService,
		Room:    roomService,
		Payment: paymentService,
		Ticket:  ticketService,
		Review:  reviewService,
		User:    userService,
	})

	jobs.SetRatingRecomputer(reviewService)
	jobs.SetCodePurger(authService)
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	utils.LogInfo("Server starting on port %s", port)
	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
