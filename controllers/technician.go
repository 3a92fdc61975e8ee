package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nailsalonno5/booking-app/store"
)

// GetAllTechnicians returns the technician roster. No compatibility check is
// made between specialties and the services being booked.
func GetAllTechnicians(c *fiber.Ctx) error {
	return c.JSON(store.Technicians())
}

// GetTechnician returns one technician.
func GetTechnician(c *fiber.Ctx) error {
	id := c.Params("id")
	tech, ok := store.TechnicianByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Technician not found",
		})
	}
	return c.JSON(tech)
}
