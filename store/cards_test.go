package store

import (
	"testing"

	"github.com/nailsalonno5/booking-app/models"
)

func countDefaults(cards []models.PaymentCard) int {
	n := 0
	for _, c := range cards {
		if c.IsDefault {
			n++
		}
	}
	return n
}

func TestAddCardBecomesDefault(t *testing.T) {
	const userID = 100

	first := Cards.Add(userID, models.PaymentCard{Type: models.CardVisa, Last4: "4242"})
	if !first.IsDefault {
		t.Fatal("first card should be default")
	}

	second := Cards.Add(userID, models.PaymentCard{Type: models.CardAmex, Last4: "0009"})
	if !second.IsDefault {
		t.Fatal("new card should become default")
	}

	cards := Cards.List(userID)
	if len(cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(cards))
	}
	if countDefaults(cards) != 1 {
		t.Errorf("got %d default cards, want exactly 1", countDefaults(cards))
	}
	for _, c := range cards {
		if c.ID == first.ID && c.IsDefault {
			t.Error("old default was not demoted")
		}
	}
}

func TestSetDefaultCard(t *testing.T) {
	const userID = 101

	first := Cards.Add(userID, models.PaymentCard{Type: models.CardVisa, Last4: "1111"})
	Cards.Add(userID, models.PaymentCard{Type: models.CardMastercard, Last4: "2222"})

	if err := Cards.SetDefault(userID, first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cards := Cards.List(userID)
	if countDefaults(cards) != 1 {
		t.Errorf("got %d default cards, want exactly 1", countDefaults(cards))
	}
	for _, c := range cards {
		if c.ID == first.ID && !c.IsDefault {
			t.Error("selected card did not become default")
		}
	}

	if err := Cards.SetDefault(userID, "missing"); err == nil {
		t.Error("expected error for unknown card")
	}
}

func TestDeleteLastCardRefused(t *testing.T) {
	const userID = 102

	only := Cards.Add(userID, models.PaymentCard{Type: models.CardVisa, Last4: "9999"})
	if err := Cards.Delete(userID, only.ID); err == nil {
		t.Fatal("expected error deleting the only card")
	}
	if len(Cards.List(userID)) != 1 {
		t.Error("only card should still be saved")
	}
}

func TestDeleteDefaultPromotesRemaining(t *testing.T) {
	const userID = 103

	first := Cards.Add(userID, models.PaymentCard{Type: models.CardVisa, Last4: "1111"})
	second := Cards.Add(userID, models.PaymentCard{Type: models.CardAmex, Last4: "2222"})

	// second is the default; deleting it must promote first
	if err := Cards.Delete(userID, second.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cards := Cards.List(userID)
	if len(cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(cards))
	}
	if cards[0].ID != first.ID || !cards[0].IsDefault {
		t.Error("remaining card should be promoted to default")
	}
}
