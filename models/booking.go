package models

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountPoints     DiscountType = "points"
)

// Discount is the result of evaluating a reward/discount code. It is
// recomputed on every apply and never stored.
type Discount struct {
	Code   string       `json:"code"` // display label, e.g. "WELCOME10" or "600 pts"
	Amount float64      `json:"amount"`
	Type   DiscountType `json:"type"`
}

// BookingSelection is the ephemeral state threaded through the booking
// pipeline as query parameters: service ids, technician, date and time slot.
type BookingSelection struct {
	ServiceIDs []string `json:"service_ids"`
	TechID     string   `json:"tech_id"`
	Date       string   `json:"date"` // ISO date, YYYY-MM-DD
	Time       string   `json:"time"` // "H:MM", 24h, no leading zero on hour
}

// BookingQuote is the priced summary shown on the confirmation step.
// Consumers of an incomplete selection get "Not selected" display text and
// zero-valued totals.
type BookingQuote struct {
	Services      string  `json:"services"` // display join, selection order preserved
	Tech          string  `json:"tech"`
	DateDisplay   string  `json:"date_display"`
	TimeDisplay   string  `json:"time_display"`
	TotalDuration int     `json:"total_duration"`
	OriginalPrice float64 `json:"original_price"`
	PointsEarned  int     `json:"points_earned"`
}
