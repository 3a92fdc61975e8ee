package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nailsalonno5/booking-app/store"
)

// GetAllServices returns the catalog, filtered by search or category.
// A search string wins over the category filter.
func GetAllServices(c *fiber.Ctx) error {
	category := c.Query("category")
	search := c.Query("search")
	return c.JSON(store.FilterServices(category, search))
}

// GetService returns one catalog entry.
func GetService(c *fiber.Ctx) error {
	id := c.Params("id")
	service, ok := store.ServiceByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	return c.JSON(service)
}
