package utils

import (
	"testing"

	"github.com/nailsalonno5/booking-app/models"
)

func TestDeriveCardType(t *testing.T) {
	tests := []struct {
		number string
		want   models.CardType
	}{
		{"4242424242424242", models.CardVisa},
		{"5500000000000004", models.CardMastercard},
		{"2223000048400011", models.CardMastercard},
		{"340000000000009", models.CardAmex},
		{"6011000000000004", models.CardDiscover},
		{"9999999999999", models.CardDiscover},
	}
	for _, tt := range tests {
		if got := DeriveCardType(tt.number); got != tt.want {
			t.Errorf("DeriveCardType(%q) = %q, want %q", tt.number, got, tt.want)
		}
	}
}

func TestValidateNewCard(t *testing.T) {
	valid := NewCardInput{
		CardNumber:     "4242 4242 4242 4242",
		ExpiryMonth:    "12",
		ExpiryYear:     "2027",
		CVV:            "123",
		CardholderName: "Sarah",
	}

	number, err := ValidateNewCard(valid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if number != "4242424242424242" {
		t.Errorf("cleaned number = %q", number)
	}

	tests := []struct {
		name   string
		mutate func(*NewCardInput)
	}{
		{"number too short", func(in *NewCardInput) { in.CardNumber = "4242" }},
		{"number too long", func(in *NewCardInput) { in.CardNumber = "42424242424242424242" }},
		{"missing expiry month", func(in *NewCardInput) { in.ExpiryMonth = "" }},
		{"missing expiry year", func(in *NewCardInput) { in.ExpiryYear = "" }},
		{"cvv too short", func(in *NewCardInput) { in.CVV = "12" }},
		{"cvv too long", func(in *NewCardInput) { in.CVV = "12345" }},
		{"blank cardholder", func(in *NewCardInput) { in.CardholderName = "   " }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			if _, err := ValidateNewCard(in); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
