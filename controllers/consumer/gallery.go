package consumer

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nailsalonno5/booking-app/models"
	"github.com/nailsalonno5/booking-app/store"
	"github.com/nailsalonno5/booking-app/utils"
)

// GetGallery returns the customer's nail photo gallery, newest first.
func GetGallery(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	return c.JSON(store.Gallery.List(userID))
}

// UploadGalleryPhoto adds a nail photo to the customer's gallery. Only
// images up to 10MB are accepted.
func UploadGalleryPhoto(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	file, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No photo uploaded",
		})
	}
	if err := utils.ValidateImageUpload(file, maxRewardPhotoBytes); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	url, err := utils.UploadImage(c.Context(), file, fmt.Sprintf("gallery-%d-%s", userID, utils.GenerateUUID()), "gallery")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload photo",
			Error:   err.Error(),
		})
	}

	photo := store.Gallery.Add(userID, models.GalleryPhoto{
		Date:     time.Now().Format("Jan 2, 2006"),
		Service:  c.FormValue("service"),
		Tech:     c.FormValue("tech"),
		ImageURL: url,
	})

	return c.Status(fiber.StatusCreated).JSON(photo)
}
