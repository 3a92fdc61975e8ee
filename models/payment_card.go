package models

type CardType string

const (
	CardVisa       CardType = "Visa"
	CardMastercard CardType = "Mastercard"
	CardAmex       CardType = "Amex"
	CardDiscover   CardType = "Discover"
)

type PaymentCard struct {
	ID          string   `json:"id"`
	Type        CardType `json:"type"`
	Last4       string   `json:"last4"`
	ExpiryMonth string   `json:"expiry_month"`
	ExpiryYear  string   `json:"expiry_year"`
	IsDefault   bool     `json:"is_default"`
}
