package utils

import (
	"errors"
	"strings"

	"github.com/nailsalonno5/booking-app/models"
)

// NewCardInput is the add-card form payload.
type NewCardInput struct {
	CardNumber     string `json:"card_number"`
	ExpiryMonth    string `json:"expiry_month"`
	ExpiryYear     string `json:"expiry_year"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholder_name"`
}

// ValidateNewCard checks the add-card form. It returns the cleaned card
// number (digits only) when the input is acceptable.
func ValidateNewCard(in NewCardInput) (string, error) {
	number := DigitsOnly(in.CardNumber)
	if len(number) < 13 || len(number) > 19 {
		return "", errors.New("Please enter a valid card number")
	}
	if in.ExpiryMonth == "" || in.ExpiryYear == "" {
		return "", errors.New("Please enter the expiry date")
	}
	if len(in.CVV) < 3 || len(in.CVV) > 4 {
		return "", errors.New("Please enter a valid CVV")
	}
	if strings.TrimSpace(in.CardholderName) == "" {
		return "", errors.New("Please enter the cardholder name")
	}
	return number, nil
}

// DeriveCardType infers the card brand from the leading digit.
func DeriveCardType(cardNumber string) models.CardType {
	num := DigitsOnly(cardNumber)
	switch {
	case strings.HasPrefix(num, "4"):
		return models.CardVisa
	case strings.HasPrefix(num, "5"), strings.HasPrefix(num, "2"):
		return models.CardMastercard
	case strings.HasPrefix(num, "3"):
		return models.CardAmex
	default:
		return models.CardDiscover
	}
}
