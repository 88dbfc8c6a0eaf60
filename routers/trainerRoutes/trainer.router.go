package trainerRoutes

import (
	trainerController "reinvent/controllers/trainer"
	"reinvent/middleware"
	trainerValidator "reinvent/validators/trainer"

	"github.com/gofiber/fiber/v2"
)

// SetupTrainerRoutes sets up trainer catalog routes. Writes are admin only.
func SetupTrainerRoutes(app *fiber.App) {
	app.Get("/trainers", trainerController.GetTrainers)
	app.Get("/trainers/:id", trainerValidator.TrainerID(), trainerController.GetTrainer)

	app.Post("/trainers", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"),
		trainerValidator.CreateTrainer(), trainerController.CreateTrainer)
}
