package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog/log"

	"github.com/nailsalonno5/booking-app/cron"
	"github.com/nailsalonno5/booking-app/redis"
	"github.com/nailsalonno5/booking-app/routes"
	"github.com/nailsalonno5/booking-app/store"
	"github.com/nailsalonno5/booking-app/utils"
)

func main() {
	utils.InitLogger()

	app := fiber.New()
	store.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Nail Salon No.5 booking API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupCatalogRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupConsumerRoutes(app)

	cron.StartCronJobs()

	if err := app.Listen(":8000"); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
