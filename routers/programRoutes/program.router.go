package programRoutes

import (
	programController "reinvent/controllers/program"
	"reinvent/middleware"
	programValidator "reinvent/validators/program"

	"github.com/gofiber/fiber/v2"
)

// SetupProgramRoutes sets up the program catalog routes. Writes are admin
// only.
func SetupProgramRoutes(app *fiber.App) {
	app.Get("/programs", programController.GetPrograms)
	app.Get("/programs/:id", programValidator.ProgramID(), programController.GetProgram)

	app.Post("/programs", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"),
		programValidator.CreateProgram(), programController.CreateProgram)
	app.Put("/programs/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"),
		programValidator.UpdateProgram(), programController.UpdateProgram)
}
