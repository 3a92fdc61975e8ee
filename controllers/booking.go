package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nailsalonno5/booking-app/models"
	"github.com/nailsalonno5/booking-app/store"
	"github.com/nailsalonno5/booking-app/utils"
)

// How long the confirmation screen highlights the discount and total rows
// after a successful apply. Cosmetic only.
const highlightDuration = 2 * time.Second

// parseSelection reads the booking pipeline parameters threaded across the
// steps. Missing parameters are tolerated; they surface as "Not selected"
// display text and zero totals.
func parseSelection(c *fiber.Ctx) models.BookingSelection {
	sel := models.BookingSelection{
		TechID: c.Query("techId"),
		Date:   c.Query("date"),
		Time:   c.Query("time"),
	}
	for _, id := range strings.Split(c.Query("serviceIds"), ",") {
		if id != "" {
			sel.ServiceIDs = append(sel.ServiceIDs, id)
		}
	}
	return sel
}

// buildQuote prices a selection. Unknown service ids are skipped; totals are
// sums over exactly the selected set, independent of selection order, with
// the insertion order preserved for the display join.
func buildQuote(sel models.BookingSelection) models.BookingQuote {
	var names []string
	var totalPrice float64
	var totalDuration int
	for _, id := range sel.ServiceIDs {
		service, ok := store.ServiceByID(id)
		if !ok {
			continue
		}
		names = append(names, service.Name)
		totalPrice += service.Price
		totalDuration += service.Duration
	}

	serviceNames := strings.Join(names, ", ")
	if serviceNames == "" {
		serviceNames = utils.NotSelected
	}

	techName := utils.NotSelected
	if tech, ok := store.TechnicianByID(sel.TechID); ok {
		techName = tech.Name
	}

	return models.BookingQuote{
		Services:      serviceNames,
		Tech:          techName,
		DateDisplay:   utils.FormatDisplayDate(sel.Date),
		TimeDisplay:   utils.FormatDisplayTime(sel.Time),
		TotalDuration: totalDuration,
		OriginalPrice: totalPrice,
		PointsEarned:  utils.PointsEarned(totalPrice),
	}
}

// GetTimeSlots returns the bookable half-hour slots for a day. Dates before
// today are rejected.
func GetTimeSlots(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	if dateStr != "" {
		date, err := utils.ParseISODate(dateStr)
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
	}

	return c.JSON(fiber.Map{
		"date":  dateStr,
		"slots": utils.GenerateTimeSlots(),
	})
}

// GetCalendar returns the month grid for the date picker. Month stepping is
// unbounded in either direction.
func GetCalendar(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Month must be between 1 and 12",
		})
	}

	return c.JSON(fiber.Map{
		"year":  year,
		"month": month,
		"days":  utils.GenerateCalendarDays(year, time.Month(month)),
	})
}

// GetQuote prices the current selection for the confirmation screen.
func GetQuote(c *fiber.Ctx) error {
	return c.JSON(buildQuote(parseSelection(c)))
}

// ApplyDiscount evaluates a reward/discount code against the current
// selection. Only one discount applies at a time; re-applying replaces the
// previous one on the client.
func ApplyDiscount(c *fiber.Ctx) error {
	type ApplyInput struct {
		Code string `json:"code"`
	}

	input := new(ApplyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	quote := buildQuote(parseSelection(c))

	discount, err := utils.EvaluateDiscountCode(input.Code, quote.OriginalPrice)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"discount":       discount,
		"original_price": quote.OriginalPrice,
		"final_price":    utils.FinalPrice(quote.OriginalPrice, discount.Amount),
		"points_earned":  quote.PointsEarned,
		// transient UI highlight; the client clears it after this long
		"highlight_ms": highlightDuration.Milliseconds(),
	})
}

// ConfirmBooking materializes the selection as an upcoming appointment,
// credits reward points on the original pre-discount price and sends the
// confirmation email stub. The draft selection itself is never stored.
func ConfirmBooking(c *fiber.Ctx) error {
	type ConfirmInput struct {
		ServiceIDs   []string `json:"service_ids"`
		TechID       string   `json:"tech_id"`
		Date         string   `json:"date"`
		Time         string   `json:"time"`
		DiscountCode string   `json:"discount_code"`
	}

	input := new(ConfirmInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	userID := c.Locals("userID").(uint)
	user, ok := store.Users.Get(userID)
	if !ok {
		// Tokens can outlive the in-memory roster across restarts; bail out
		// before any state is written
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	sel := models.BookingSelection{
		ServiceIDs: input.ServiceIDs,
		TechID:     input.TechID,
		Date:       input.Date,
		Time:       input.Time,
	}
	quote := buildQuote(sel)
	if quote.OriginalPrice == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please select at least one service",
		})
	}

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

	var discountAmount float64
	var discountLabel string
	if strings.TrimSpace(input.DiscountCode) != "" {
		discount, err := utils.EvaluateDiscountCode(input.DiscountCode, quote.OriginalPrice)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		discountAmount = discount.Amount
		discountLabel = discount.Code
	}

	appointment := store.Appointments.Create(&models.Appointment{
		UserID:         userID,
		Date:           date,
		Time:           input.Time,
		ServiceIDs:     sel.ServiceIDs,
		Service:        quote.Services,
		Tech:           quote.Tech,
		TechID:         sel.TechID,
		Status:         models.StatusUpcoming,
		OriginalPrice:  quote.OriginalPrice,
		RewardDiscount: discountAmount,
		FinalPrice:     utils.FinalPrice(quote.OriginalPrice, discountAmount),
	})

	// Points always accrue on the original price, not the discounted one
	balance, err := store.Users.AddPoints(userID, quote.PointsEarned)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to credit reward points",
			Error:   err.Error(),
		})
	}

	if user.Email != "" {
		body := fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>Your appointment is confirmed.</p>
			<ul>
				<li><strong>Service:</strong> %s</li>
				<li><strong>Nail Tech:</strong> %s</li>
				<li><strong>Date & Time:</strong> %s · %s</li>
				<li><strong>Total:</strong> $%.2f</li>
			</ul>
			<p>Thank you! We'll see you soon 💜</p>
		`, user.Name, quote.Services, quote.Tech, quote.DateDisplay, quote.TimeDisplay, appointment.FinalPrice)
		utils.SendEmail(user.Email, "Appointment Confirmed - Nail Salon No.5", body)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"appointment":    appointment,
		"discount":       discountLabel,
		"points_earned":  quote.PointsEarned,
		"points_balance": balance,
	})
}
