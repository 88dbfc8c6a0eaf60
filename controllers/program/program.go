package programController

import (
	"reinvent/database"
	"reinvent/middleware"
	"reinvent/models"
	programValidator "reinvent/validators/program"

	"github.com/gofiber/fiber/v2"
)

// GetPrograms returns all active programs.
func GetPrograms(c *fiber.Ctx) error {
	var programs []models.Program
	if err := database.Database.Db.
		Where("is_active = ? AND is_deleted = false", true).
		Order("created_at desc").
		Find(&programs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch programs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Programs fetched successfully!", fiber.Map{
		"programs": programs,
	})
}

// GetProgram returns one program by id.
func GetProgram(c *fiber.Ctx) error {
	programID := c.Locals("programID").(uint)

	var program models.Program
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = false", programID).
		First(&program).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Program not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Program fetched successfully!", program)
}

// CreateProgram creates a program (admin only).
func CreateProgram(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateProgram").(*programValidator.CreateProgramRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	program := models.Program{
		Name:            reqData.Name,
		ShortName:       reqData.ShortName,
		Description:     reqData.Description,
		DurationDays:    reqData.DurationDays,
		Price:           reqData.Price,
		ProgramType:     reqData.ProgramType,
		MaxParticipants: reqData.MaxParticipants,
		FeaturedImage:   reqData.FeaturedImage,
		IsActive:        true,
	}

	if err := database.Database.Db.Create(&program).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create program!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Program created successfully!", program)
}

// UpdateProgram applies a merge patch: absent fields keep their value.
func UpdateProgram(c *fiber.Ctx) error {
	programID := c.Locals("programID").(uint)
	reqData, ok := c.Locals("validatedProgramPatch").(*programValidator.ProgramPatchRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var program models.Program
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = false", programID).
		First(&program).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Program not found!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.ShortName != nil {
		updates["short_name"] = *reqData.ShortName
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.DurationDays != nil {
		updates["duration_days"] = *reqData.DurationDays
	}
	if reqData.Price != nil {
		updates["price"] = *reqData.Price
	}
	if reqData.ProgramType != nil {
		updates["program_type"] = *reqData.ProgramType
	}
	if reqData.MaxParticipants != nil {
		updates["max_participants"] = *reqData.MaxParticipants
	}
	if reqData.FeaturedImage != nil {
		updates["featured_image"] = *reqData.FeaturedImage
	}
	if reqData.IsActive != nil {
		updates["is_active"] = *reqData.IsActive
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&program).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update program!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Program updated successfully!", program)
}
