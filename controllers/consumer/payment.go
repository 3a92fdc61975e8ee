package consumer

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nailsalonno5/booking-app/models"
	"github.com/nailsalonno5/booking-app/store"
	"github.com/nailsalonno5/booking-app/utils"
)

// GetPaymentCards lists the customer's saved cards.
func GetPaymentCards(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	return c.JSON(store.Cards.List(userID))
}

// AddPaymentCard validates and saves a new card. The card brand is derived
// from the leading digit; the new card becomes the default.
func AddPaymentCard(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	input := new(utils.NewCardInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	number, err := utils.ValidateNewCard(*input)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	card := store.Cards.Add(userID, models.PaymentCard{
		Type:        utils.DeriveCardType(number),
		Last4:       number[len(number)-4:],
		ExpiryMonth: input.ExpiryMonth,
		ExpiryYear:  input.ExpiryYear,
	})

	return c.Status(fiber.StatusCreated).JSON(card)
}

// SetDefaultPaymentCard makes one card the default.
func SetDefaultPaymentCard(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	if err := store.Cards.SetDefault(userID, c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(store.Cards.List(userID))
}

// DeletePaymentCard removes a card. The last remaining card cannot be
// deleted; deleting the default promotes the first remaining card.
func DeletePaymentCard(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	if err := store.Cards.Delete(userID, c.Params("id")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(store.Cards.List(userID))
}
