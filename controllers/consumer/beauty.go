package consumer

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nailsalonno5/booking-app/models"
	"github.com/nailsalonno5/booking-app/store"
)

// GetBeautyProfile returns the customer's committed nail preferences.
func GetBeautyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	return c.JSON(store.BeautyProfiles.Get(userID))
}

// UpdateBeautyProfile commits a full beauty profile draft over the previous
// one. Cancelling an edit is a client-side discard and never calls this.
func UpdateBeautyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	profile := new(models.BeautyProfile)
	if err := c.BodyParser(profile); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	store.BeautyProfiles.Put(userID, *profile)
	return c.JSON(profile)
}
