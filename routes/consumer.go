package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nailsalonno5/booking-app/controllers/consumer"
	"github.com/nailsalonno5/booking-app/middleware"
)

// SetupConsumerRoutes configures the profile hub routes
func SetupConsumerRoutes(app *fiber.App) {
	consumerGroup := app.Group("/consumer", middleware.Protected())

	consumerGroup.Get("/profile", consumer.GetProfile)
	consumerGroup.Patch("/profile", consumer.UpdateProfile)
	consumerGroup.Post("/profile/picture", consumer.UpdateProfilePicture)
	consumerGroup.Get("/profile/sections", consumer.GetSections)
	consumerGroup.Post("/profile/sections/:id/toggle", consumer.ToggleSection)

	consumerGroup.Get("/beauty-profile", consumer.GetBeautyProfile)
	consumerGroup.Put("/beauty-profile", consumer.UpdateBeautyProfile)

	consumerGroup.Get("/appointments/history", consumer.GetAppointmentHistory)
	consumerGroup.Get("/appointments/upcoming", consumer.GetUpcomingAppointments)
	consumerGroup.Patch("/appointments/:id/reschedule", consumer.RescheduleAppointment)
	consumerGroup.Delete("/appointments/:id", consumer.CancelAppointment)

	consumerGroup.Get("/rewards", consumer.GetRewards)
	consumerGroup.Post("/rewards/apply", consumer.ApplyReward)
	consumerGroup.Post("/rewards/photo", consumer.UploadRewardPhoto)

	consumerGroup.Get("/invite", consumer.GetInvite)
	consumerGroup.Post("/invite", consumer.SendInvite)
	consumerGroup.Get("/referrals", consumer.GetReferrals)

	consumerGroup.Get("/gallery", consumer.GetGallery)
	consumerGroup.Post("/gallery", consumer.UploadGalleryPhoto)

	consumerGroup.Get("/payment-cards", consumer.GetPaymentCards)
	consumerGroup.Post("/payment-cards", consumer.AddPaymentCard)
	consumerGroup.Post("/payment-cards/:id/default", consumer.SetDefaultPaymentCard)
	consumerGroup.Delete("/payment-cards/:id", consumer.DeletePaymentCard)
}
