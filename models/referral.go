package models

import "time"

type ReferralStatus string

const (
	ReferralSent   ReferralStatus = "sent"
	ReferralJoined ReferralStatus = "joined"
	ReferralBooked ReferralStatus = "booked"
)

type Referral struct {
	ID     string         `json:"id"`
	Phone  string         `json:"phone"`
	Status ReferralStatus `json:"status"`
	SentAt time.Time      `json:"sent_at"`
}
