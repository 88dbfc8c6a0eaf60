package trainerController

import (
	"reinvent/database"
	"reinvent/middleware"
	"reinvent/models"
	trainerValidator "reinvent/validators/trainer"

	"github.com/gofiber/fiber/v2"
)

// GetTrainers returns all active trainers.
func GetTrainers(c *fiber.Ctx) error {
	var trainers []models.Trainer
	if err := database.Database.Db.
		Where("is_active = ? AND is_deleted = false", true).
		Order("name asc").
		Find(&trainers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch trainers!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainers fetched successfully!", fiber.Map{
		"trainers": trainers,
	})
}

// GetTrainer returns one trainer by id.
func GetTrainer(c *fiber.Ctx) error {
	trainerID := c.Locals("trainerID").(uint)

	var trainer models.Trainer
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = false", trainerID).
		First(&trainer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trainer not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainer fetched successfully!", trainer)
}

// CreateTrainer creates a trainer (admin only).
func CreateTrainer(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateTrainer").(*trainerValidator.CreateTrainerRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	trainer := models.Trainer{
		Name:           reqData.Name,
		Email:          reqData.Email,
		Specialization: reqData.Specialization,
		Bio:            reqData.Bio,
		HourlyRate:     reqData.HourlyRate,
		IsActive:       true,
	}

	if err := database.Database.Db.Create(&trainer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create trainer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Trainer created successfully!", trainer)
}
