package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclecast/internal/services"
)

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	settings, err := handler.services.Settings.Load(c.UserContext(), user.ID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(settings)
}

func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var input services.SettingsUpdate
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	settings, err := handler.services.Settings.Save(c.UserContext(), user.ID, input)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(settings)
}
