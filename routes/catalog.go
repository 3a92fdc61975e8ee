package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nailsalonno5/booking-app/controllers"
)

// SetupCatalogRoutes configures the service catalog and technician roster routes
func SetupCatalogRoutes(app *fiber.App) {
	service := app.Group("/services")
	service.Get("/", controllers.GetAllServices)
	service.Get("/:id", controllers.GetService)

	tech := app.Group("/technicians")
	tech.Get("/", controllers.GetAllTechnicians)
	tech.Get("/:id", controllers.GetTechnician)
}
