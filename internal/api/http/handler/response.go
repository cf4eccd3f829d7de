package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/optima_web/internal/leadform"
)

func ok(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true})
}

func created(c fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func unprocessable(c fiber.Ctx, msg string, fields leadform.FieldErrors) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": msg, "fields": fields})
}

func internalError(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msg})
}
