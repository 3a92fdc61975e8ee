package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/nailsalonno5/booking-app/models"
)

// Discount code evaluation errors, surfaced verbatim to the client.
var (
	ErrEmptyCode     = errors.New("Please enter a code")
	ErrInvalidCode   = errors.New("Invalid code")
	ErrInvalidPoints = errors.New("Invalid points amount")
)

// Evaluation rules: a handful of fixed promo codes, then all-digit input is
// treated as a points redemption (1 point = $0.10, capped at half the
// original price). At most one discount applies at a time; re-applying
// replaces the previous one.
var promoCodes = map[string]float64{
	"WELCOME10": 0.10,
	"SAVE15":    0.15,
	"FIRST20":   0.20,
}

const (
	pointValue     = 0.10
	maxPoints      = 1000
	pointsCapShare = 0.5
)

// EvaluateDiscountCode validates a free-text reward/discount code against the
// original price and returns the discount it grants.
func EvaluateDiscountCode(input string, originalPrice float64) (models.Discount, error) {
	code := strings.ToUpper(strings.TrimSpace(input))
	if code == "" {
		return models.Discount{}, ErrEmptyCode
	}

	if pct, ok := promoCodes[code]; ok {
		return models.Discount{
			Code:   code,
			Amount: originalPrice * pct,
			Type:   models.DiscountPercentage,
		}, nil
	}

	if isAllDigits(code) {
		points, err := strconv.Atoi(code)
		if err != nil || points < 1 || points > maxPoints {
			return models.Discount{}, ErrInvalidPoints
		}
		amount := float64(points) * pointValue
		if limit := originalPrice * pointsCapShare; amount > limit {
			amount = limit
		}
		return models.Discount{
			Code:   strconv.Itoa(points) + " pts",
			Amount: amount,
			Type:   models.DiscountPoints,
		}, nil
	}

	return models.Discount{}, ErrInvalidCode
}

// FinalPrice applies a discount amount, clamping at zero.
func FinalPrice(originalPrice, discountAmount float64) float64 {
	final := originalPrice - discountAmount
	if final < 0 {
		return 0
	}
	return final
}

// PointsEarned is the loyalty credit for a booking: 10% of the original,
// pre-discount price, rounded.
func PointsEarned(originalPrice float64) int {
	return int(math.Round(originalPrice * 0.1))
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
