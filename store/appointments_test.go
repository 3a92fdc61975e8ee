package store

import (
	"testing"
	"time"

	"github.com/nailsalonno5/booking-app/models"
)

func newUpcoming(t *testing.T, userID uint, price float64) *models.Appointment {
	t.Helper()
	return Appointments.Create(&models.Appointment{
		UserID:        userID,
		Date:          time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
		Time:          "14:00",
		Service:       "BIAB Short",
		Tech:          "Daniela",
		Status:        models.StatusUpcoming,
		OriginalPrice: price,
		FinalPrice:    price,
	})
}

func TestRescheduleUpcoming(t *testing.T) {
	const userID = 300
	a := newUpcoming(t, userID, 65)

	newDate := time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC)
	got, err := Appointments.Reschedule(a.ID, userID, newDate, "10:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Date.Equal(newDate) || got.Time != "10:30" {
		t.Errorf("reschedule not applied: %v %s", got.Date, got.Time)
	}
}

func TestRescheduleRejectsCompleted(t *testing.T) {
	// seeded appointment 1 is completed
	if _, err := Appointments.Reschedule("1", 1, time.Now(), "9:00"); err == nil {
		t.Error("expected error rescheduling a completed appointment")
	}
}

func TestRescheduleWrongUser(t *testing.T) {
	a := newUpcoming(t, 301, 65)
	if _, err := Appointments.Reschedule(a.ID, 999, time.Now(), "9:00"); err == nil {
		t.Error("expected not-found error for another user's appointment")
	}
}

func TestCancelIsTerminal(t *testing.T) {
	const userID = 302
	a := newUpcoming(t, userID, 65)

	got, err := Appointments.Cancel(a.ID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != models.StatusCancelled {
		t.Errorf("status = %q, want cancelled", got.Status)
	}

	if _, err := Appointments.Cancel(a.ID, userID); err == nil {
		t.Error("expected error cancelling twice")
	}
	if _, err := Appointments.Reschedule(a.ID, userID, time.Now(), "9:00"); err == nil {
		t.Error("expected error rescheduling a cancelled appointment")
	}
}

func TestApplyRewardDiscountClamps(t *testing.T) {
	const userID = 303
	a := newUpcoming(t, userID, 45)

	got, err := Appointments.ApplyRewardDiscount(a.ID, userID, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FinalPrice != 0 {
		t.Errorf("final price = %v, want 0", got.FinalPrice)
	}
	if got.RewardDiscount != 100 {
		t.Errorf("reward discount = %v, want 100", got.RewardDiscount)
	}
}

func TestHistoryExcludesUpcoming(t *testing.T) {
	const userID = 304
	newUpcoming(t, userID, 65)

	for _, a := range Appointments.History(userID) {
		if a.Status == models.StatusUpcoming {
			t.Error("history must not contain upcoming appointments")
		}
	}
	up := Appointments.Upcoming(userID)
	if len(up) != 1 {
		t.Fatalf("got %d upcoming, want 1", len(up))
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	hist := Appointments.History(1)
	if len(hist) < 2 {
		t.Fatalf("seeded history too short: %d", len(hist))
	}
	for i := 1; i < len(hist); i++ {
		if hist[i].Date.After(hist[i-1].Date) {
			t.Errorf("history out of order at %d: %v after %v", i, hist[i].Date, hist[i-1].Date)
		}
	}
}
