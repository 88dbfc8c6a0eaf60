package main

import (
	"log"

	"reinvent/config"
	bookingController "reinvent/controllers/booking"
	paymentController "reinvent/controllers/payment"
	"reinvent/database"
	authRoutes "reinvent/routers/authRoutes"
	bookingRoutes "reinvent/routers/bookingRoutes"
	notificationRoutes "reinvent/routers/notificationRoutes"
	paymentRoutes "reinvent/routers/paymentRoutes"
	programRoutes "reinvent/routers/programRoutes"
	trainerRoutes "reinvent/routers/trainerRoutes"
	bookingService "reinvent/services/booking"
	paymentService "reinvent/services/payments"
	"reinvent/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	bookings := bookingService.New(db)
	payments := paymentService.New(
		db,
		paymentService.NewStripeClient(config.AppConfig.StripeSecretKey),
		utils.NewNotifier(),
		config.AppConfig.CheckoutCurrency,
	)

	utils.InitializeEnrollmentScheduler(payments)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization,Stripe-Signature",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	programRoutes.SetupProgramRoutes(app)
	trainerRoutes.SetupTrainerRoutes(app)
	bookingRoutes.SetupBookingRoutes(app, bookingController.NewController(bookings))
	paymentRoutes.SetupPaymentRoutes(app, paymentController.NewController(payments))
	notificationRoutes.SetupNotificationRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
