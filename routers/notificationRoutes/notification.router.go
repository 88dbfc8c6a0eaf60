package notificationRoutes

import (
	notificationController "reinvent/controllers/notification"
	"reinvent/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupNotificationRoutes sets up the user notification routes
func SetupNotificationRoutes(app *fiber.App) {
	app.Get("/notifications", middleware.JWTMiddleware, notificationController.GetNotifications)
	app.Post("/notifications/:id/read", middleware.JWTMiddleware, notificationController.MarkNotificationRead)
}
