package consumer

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nailsalonno5/booking-app/store"
	"github.com/nailsalonno5/booking-app/utils"
)

// GetInvite returns the customer's shareable referral link.
func GetInvite(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	user, ok := store.Users.Get(userID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	return c.JSON(fiber.Map{
		"referral_link": store.ReferralLink(user),
		"referral_code": user.ReferralCode,
		"reward":        "Invite friends and earn a free manicure.",
	})
}

// SendInvite texts a referral to a friend's phone number. The number must be
// exactly 10 digits; inviting the same number twice is rejected.
func SendInvite(c *fiber.Ctx) error {
	type InviteInput struct {
		Phone string `json:"phone"`
	}

	input := new(InviteInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	digits := utils.DigitsOnly(input.Phone)
	if len(digits) != 10 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please enter a valid 10-digit phone number",
		})
	}

	userID := c.Locals("userID").(uint)
	user, ok := store.Users.Get(userID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	referral, err := store.Referrals.Add(userID, digits)
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	utils.SendSMS(digits, user.Name+" invited you to Nail Salon No.5! Book with "+store.ReferralLink(user))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"referral": referral,
		"message":  "Invite Sent",
	})
}

// GetReferrals lists the invites the customer has sent and their status.
func GetReferrals(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	return c.JSON(store.Referrals.List(userID))
}
