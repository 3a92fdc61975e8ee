package consumer

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nailsalonno5/booking-app/store"
	"github.com/nailsalonno5/booking-app/utils"
)

// GetAppointmentHistory returns past appointments, newest first, with their
// status and pricing.
func GetAppointmentHistory(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	return c.JSON(store.Appointments.History(userID))
}

// GetUpcomingAppointments returns booked appointments that have not happened
// yet, soonest first.
func GetUpcomingAppointments(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	return c.JSON(store.Appointments.Upcoming(userID))
}

// RescheduleAppointment moves an upcoming appointment to a new date and time
// slot. Past dates and off-grid times are rejected.
func RescheduleAppointment(c *fiber.Ctx) error {
	type RescheduleInput struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}

	input := new(RescheduleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	userID := c.Locals("userID").(uint)

	date, err := utils.ParseISODate(input.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date. Use YYYY-MM-DD.",
		})
	}
	if utils.IsPastDate(date) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot select a date in the past",
		})
	}
	if !utils.IsValidSlot(input.Time) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid time slot",
		})
	}

	appointment, err := store.Appointments.Reschedule(c.Params("id"), userID, date, input.Time)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(appointment)
}

// CancelAppointment cancels an upcoming appointment.
func CancelAppointment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	appointment, err := store.Appointments.Cancel(c.Params("id"), userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(appointment)
}
