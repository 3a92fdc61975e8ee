package store

import (
	"fmt"
	"sync"

	"github.com/nailsalonno5/booking-app/models"
	"github.com/nailsalonno5/booking-app/utils"
)

// cardStore keeps each user's saved payment cards. Invariant: exactly one
// card is the default whenever the list is non-empty.
type cardStore struct {
	mu    sync.RWMutex
	cards map[uint][]*models.PaymentCard
}

var Cards *cardStore

func seedCards() {
	Cards = &cardStore{cards: make(map[uint][]*models.PaymentCard)}
	Cards.cards[1] = []*models.PaymentCard{
		{ID: "1", Type: models.CardVisa, Last4: "4242", ExpiryMonth: "12", ExpiryYear: "2025", IsDefault: true},
	}
}

// List returns copies of the user's cards.
func (s *cardStore) List(userID uint) []models.PaymentCard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PaymentCard, 0, len(s.cards[userID]))
	for _, c := range s.cards[userID] {
		out = append(out, *c)
	}
	return out
}

// Add saves a new card. The new card becomes the default and every other
// card is demoted.
func (s *cardStore) Add(userID uint, card models.PaymentCard) models.PaymentCard {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cards[userID] {
		c.IsDefault = false
	}
	card.ID = utils.GenerateUUID()
	card.IsDefault = true
	s.cards[userID] = append(s.cards[userID], &card)
	return card
}

// SetDefault makes one card the default and demotes the rest.
func (s *cardStore) SetDefault(userID uint, cardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for _, c := range s.cards[userID] {
		if c.ID == cardID {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("card %s not found", cardID)
	}
	for _, c := range s.cards[userID] {
		c.IsDefault = c.ID == cardID
	}
	return nil
}

// Delete removes a card. The last remaining card cannot be deleted, and
// deleting the default card promotes the first remaining card to default.
func (s *cardStore) Delete(userID uint, cardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cards := s.cards[userID]
	if len(cards) == 1 && cards[0].ID == cardID {
		return fmt.Errorf("cannot delete your only payment card")
	}

	idx := -1
	for i, c := range cards {
		if c.ID == cardID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("card %s not found", cardID)
	}

	wasDefault := cards[idx].IsDefault
	remaining := append(cards[:idx], cards[idx+1:]...)
	if wasDefault && len(remaining) > 0 {
		remaining[0].IsDefault = true
	}
	s.cards[userID] = remaining
	return nil
}
