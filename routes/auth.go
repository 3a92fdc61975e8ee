package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nailsalonno5/booking-app/controllers"
	"github.com/nailsalonno5/booking-app/middleware"
)

// SetupAuthRoutes configures the phone/code login gate routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/request-code", controllers.RequestCode)
	auth.Post("/verify", controllers.VerifyCode)
	auth.Delete("/verification", controllers.CancelVerification)
	auth.Get("/state", controllers.GetGateState)
	auth.Post("/refresh", controllers.RefreshToken)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.GetCurrentUser)
}
