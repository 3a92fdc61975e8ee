package models

type Reward struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	IsActive bool   `json:"is_active"`
}

// DiscountFor returns the dollar discount this reward gives against an
// appointment's original price. FREE BIAB Fill covers the whole price.
func (r *Reward) DiscountFor(originalPrice float64) float64 {
	switch r.Label {
	case "$5 OFF":
		return 5
	case "$10 OFF":
		return 10
	case "FREE BIAB Fill":
		return originalPrice
	default:
		return 0
	}
}
