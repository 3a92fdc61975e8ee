package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/nailsalonno5/booking-app/models"
	"github.com/nailsalonno5/booking-app/utils"
)

const referralBaseURL = "https://nailsalon5.com/invite/"

type referralStore struct {
	mu        sync.RWMutex
	referrals map[uint][]*models.Referral
}

var Referrals *referralStore

func seedReferrals() {
	Referrals = &referralStore{referrals: make(map[uint][]*models.Referral)}
	Referrals.referrals[1] = []*models.Referral{
		{ID: "1", Phone: "5550100987", Status: models.ReferralJoined, SentAt: time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Phone: "5550100551", Status: models.ReferralSent, SentAt: time.Date(2025, time.December, 10, 0, 0, 0, 0, time.UTC)},
	}
}

// ReferralLink builds the user's shareable invite link.
func ReferralLink(u models.User) string {
	return referralBaseURL + u.ReferralCode
}

// List returns copies of the user's referrals, newest first is not needed;
// insertion order is fine for the short mock list.
func (s *referralStore) List(userID uint) []models.Referral {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Referral, 0, len(s.referrals[userID]))
	for _, r := range s.referrals[userID] {
		out = append(out, *r)
	}
	return out
}

// Add records an invite to a friend's phone. Inviting the same number twice
// is rejected.
func (s *referralStore) Add(userID uint, phone string) (models.Referral, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.referrals[userID] {
		if r.Phone == phone {
			return models.Referral{}, fmt.Errorf("an invite was already sent to this number")
		}
	}
	ref := &models.Referral{
		ID:     utils.GenerateUUID(),
		Phone:  phone,
		Status: models.ReferralSent,
		SentAt: time.Now(),
	}
	s.referrals[userID] = append(s.referrals[userID], ref)
	return *ref, nil
}
