package consumer

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/nailsalonno5/booking-app/store"
	"github.com/nailsalonno5/booking-app/utils"
)

// Reward/gallery photo upload limit.
const maxRewardPhotoBytes = 10 * 1024 * 1024

// GetRewards returns the reward balance, progress toward the next milestone
// and the redeemable reward table.
func GetRewards(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	user, ok := store.Users.Get(userID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	remaining := store.NextRewardTarget - user.Points
	if remaining < 0 {
		remaining = 0
	}
	progress := float64(user.Points) / float64(store.NextRewardTarget)
	if progress > 1 {
		progress = 1
	}

	return c.JSON(fiber.Map{
		"points":            user.Points,
		"next_reward":       "FREE BIAB Fill",
		"points_to_next":    remaining,
		"progress":          progress,
		"rewards":           store.Rewards(),
		"active_rewards":    store.ActiveRewards(),
		"google_review_url": "https://www.google.com/maps/place/Nail+Salon+No.5",
	})
}

// ApplyReward redeems a reward against an upcoming appointment. $5 OFF and
// $10 OFF are flat discounts; FREE BIAB Fill covers the full price. The
// final price never goes below zero.
func ApplyReward(c *fiber.Ctx) error {
	type ApplyInput struct {
		RewardID      string `json:"reward_id"`
		AppointmentID string `json:"appointment_id"`
	}

	input := new(ApplyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	userID := c.Locals("userID").(uint)

	reward, ok := store.RewardByID(input.RewardID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Reward not found",
		})
	}
	if !reward.IsActive {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "This reward is not available yet",
		})
	}

	appointment, ok := store.Appointments.Get(input.AppointmentID)
	if !ok || appointment.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}

	amount := reward.DiscountFor(appointment.OriginalPrice)
	updated, err := store.Appointments.ApplyRewardDiscount(input.AppointmentID, userID, amount)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"appointment":     updated,
		"reward":          reward,
		"discount_amount": amount,
	})
}

// UploadRewardPhoto accepts a nail photo for the rewards program. Only
// images up to 10MB are accepted.
func UploadRewardPhoto(c *fiber.Ctx) error {
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

	url, err := utils.UploadImage(c.Context(), file, fmt.Sprintf("reward-%d-%s", userID, utils.GenerateUUID()), "rewards")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload photo",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"image_url": url,
		"message":   "Photo uploaded!",
	})
}
