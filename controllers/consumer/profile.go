package consumer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nailsalonno5/booking-app/store"
	"github.com/nailsalonno5/booking-app/utils"
)

// Profile photo upload limit.
const maxProfilePhotoBytes = 5 * 1024 * 1024

// GetProfile returns the profile hub header data: the customer, reward
// balance and membership tier.
func GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	user, ok := store.Users.Get(userID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	return c.JSON(fiber.Map{
		"user":             user,
		"membership_perks": user.MembershipPerks(),
	})
}

// UpdateProfile commits the profile edit form. The client keeps a draft and
// only sends it on Save; Cancel never reaches the server.
func UpdateProfile(c *fiber.Ctx) error {
	type UpdateInput struct {
		Name string `json:"name"`
	}

	input := new(UpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if strings.TrimSpace(input.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name cannot be empty",
		})
	}

	userID := c.Locals("userID").(uint)
	user, err := store.Users.UpdateName(userID, strings.TrimSpace(input.Name))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	return c.JSON(user)
}

// UpdateProfilePicture uploads a new profile photo. Only images up to 5MB
// are accepted.
func UpdateProfilePicture(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	file, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No photo uploaded",
		})
	}
	if err := utils.ValidateImageUpload(file, maxProfilePhotoBytes); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	url, err := utils.UploadImage(c.Context(), file, fmt.Sprintf("profile-%d", userID), "profiles")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload photo",
			Error:   err.Error(),
		})
	}
	if err := store.Users.SetProfilePicture(userID, url); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	return c.JSON(fiber.Map{
		"profile_picture_url": url,
		"message":             "Profile photo updated! 💛",
	})
}

// GetSections returns which collapsible profile sections are open.
func GetSections(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	open := store.Sections.Open(userID)
	sort.Strings(open)
	return c.JSON(fiber.Map{
		"open": open,
	})
}

// ToggleSection flips one collapsible section open or closed.
func ToggleSection(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	sectionID := c.Params("id")

	isOpen, err := store.Sections.Toggle(userID, sectionID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"section": sectionID,
		"open":    isOpen,
	})
}
