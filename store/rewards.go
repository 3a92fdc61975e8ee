package store

import (
	"github.com/nailsalonno5/booking-app/models"
)

// Points needed for the next milestone reward (FREE BIAB Fill).
const NextRewardTarget = 300

var rewards []models.Reward

func seedRewards() {
	rewards = []models.Reward{
		{ID: "5-off", Label: "$5 OFF", IsActive: true},
		{ID: "10-off", Label: "$10 OFF", IsActive: true},
		{ID: "free-biab", Label: "FREE BIAB Fill", IsActive: false},
		{ID: "vip", Label: "VIP Priority", IsActive: true},
	}
}

// Rewards returns the reward table.
func Rewards() []models.Reward {
	return rewards
}

// RewardByID looks up one reward.
func RewardByID(id string) (models.Reward, bool) {
	for _, r := range rewards {
		if r.ID == id {
			return r, true
		}
	}
	return models.Reward{}, false
}

// ActiveRewards returns only the rewards the user can currently redeem.
func ActiveRewards() []models.Reward {
	out := make([]models.Reward, 0, len(rewards))
	for _, r := range rewards {
		if r.IsActive {
			out = append(out, r)
		}
	}
	return out
}
