package models

import (
	"time"
)

type User struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email,omitempty"`
	ProfilePictureURL string    `json:"profile_picture_url,omitempty"`
	Points            int       `json:"points"`
	MembershipTier    string    `json:"membership_tier"`
	ReferralCode      string    `json:"referral_code"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// MembershipPerks lists the benefits of the user's current tier.
func (u *User) MembershipPerks() []string {
	switch u.MembershipTier {
	case "Gold":
		return []string{"Priority booking", "Birthday gift", "Extra reward points"}
	default:
		return nil
	}
}
