package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nailsalonno5/booking-app/controllers"
	"github.com/nailsalonno5/booking-app/middleware"
)

// SetupBookingRoutes configures the booking pipeline routes. Every step
// except the final confirm is browsable without logging in; the selection is
// threaded through query parameters, never stored.
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/booking")
	booking.Get("/slots", controllers.GetTimeSlots)
	booking.Get("/calendar", controllers.GetCalendar)
	booking.Get("/quote", controllers.GetQuote)
	booking.Post("/quote/discount", controllers.ApplyDiscount)
	booking.Post("/confirm", middleware.Protected(), controllers.ConfirmBooking)
}
