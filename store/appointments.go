package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/nailsalonno5/booking-app/models"

	"github.com/nailsalonno5/booking-app/utils"
)

type appointmentStore struct {
	mu           sync.RWMutex
	appointments map[string]*models.Appointment
}

var Appointments *appointmentStore

func seedAppointments() {
	Appointments = &appointmentStore{appointments: make(map[string]*models.Appointment)}

	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	history := []*models.Appointment{
		{ID: "1", UserID: 1, Date: day(2025, time.December, 18), Time: "14:00", Service: "BIAB Refill", Tech: "Tiffany", Status: models.StatusCompleted, OriginalPrice: 65, RewardDiscount: 5, FinalPrice: 60},
		{ID: "2", UserID: 1, Date: day(2025, time.November, 15), Time: "11:00", Service: "BIAB French", Tech: "Daniela", Status: models.StatusCompleted, OriginalPrice: 75, RewardDiscount: 10, FinalPrice: 65},
		{ID: "3", UserID: 1, Date: day(2025, time.October, 20), Time: "15:30", Service: "Gel-X Extensions", Tech: "Jenny", Status: models.StatusCompleted, OriginalPrice: 90, FinalPrice: 90},
		{ID: "4", UserID: 1, Date: day(2025, time.September, 25), Time: "13:00", Service: "BIAB Medium", Tech: "Tiffany", Status: models.StatusCancelled, OriginalPrice: 75, FinalPrice: 0},
		{ID: "5", UserID: 1, Date: day(2025, time.August, 30), Time: "10:30", Service: "Gel Manicure", Tech: "Daniela", Status: models.StatusCompleted, OriginalPrice: 45, FinalPrice: 45},
		{ID: "6", UserID: 1, Date: day(2025, time.July, 15), Time: "14:00", Service: "BIAB Short", Tech: "Jenny", Status: models.StatusCompleted, OriginalPrice: 65, RewardDiscount: 5, FinalPrice: 60},
	}
	for _, a := range history {
		Appointments.appointments[a.ID] = a
	}
}

// Create stores a new appointment and assigns it an id.
func (s *appointmentStore) Create(a *models.Appointment) *models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = utils.GenerateUUID()
	a.CreatedAt = time.Now()
	s.appointments[a.ID] = a
	return a
}

// Get returns a copy of one appointment.
func (s *appointmentStore) Get(id string) (models.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.appointments[id]
	if !ok {
		return models.Appointment{}, false
	}
	return *a, true
}

// History returns the user's past appointments, newest first.
func (s *appointmentStore) History(userID uint) []models.Appointment {
	return s.listByUser(userID, func(a *models.Appointment) bool {
		return a.Status != models.StatusUpcoming
	})
}

// Upcoming returns the user's upcoming appointments, soonest first.
func (s *appointmentStore) Upcoming(userID uint) []models.Appointment {
	out := s.listByUser(userID, func(a *models.Appointment) bool {
		return a.Status == models.StatusUpcoming
	})
	// listByUser sorts newest first; upcoming reads better soonest first
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Time < out[j].Time
	})
	return out
}

func (s *appointmentStore) listByUser(userID uint, keep func(*models.Appointment) bool) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		if a.UserID == userID && keep(a) {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].Time > out[j].Time
	})
	return out
}

// Reschedule moves an upcoming appointment to a new date and time slot.
func (s *appointmentStore) Reschedule(id string, userID uint, date time.Time, slot string) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[id]
	if !ok || a.UserID != userID {
		return models.Appointment{}, fmt.Errorf("appointment %s not found", id)
	}
	if !a.IsUpcoming() {
		return models.Appointment{}, fmt.Errorf("only upcoming appointments can be rescheduled")
	}
	a.Date = date
	a.Time = slot
	return *a, nil
}

// Cancel marks an upcoming appointment cancelled.
func (s *appointmentStore) Cancel(id string, userID uint) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[id]
	if !ok || a.UserID != userID {
		return models.Appointment{}, fmt.Errorf("appointment %s not found", id)
	}
	if err := a.UpdateStatus(models.StatusCancelled); err != nil {
		return models.Appointment{}, err
	}
	return *a, nil
}

// ApplyRewardDiscount records a reward discount against an upcoming
// appointment. The final price never goes below zero.
func (s *appointmentStore) ApplyRewardDiscount(id string, userID uint, amount float64) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[id]
	if !ok || a.UserID != userID {
		return models.Appointment{}, fmt.Errorf("appointment %s not found", id)
	}
	if !a.IsUpcoming() {
		return models.Appointment{}, fmt.Errorf("rewards can only be applied to upcoming appointments")
	}
	a.RewardDiscount = amount
	final := a.OriginalPrice - amount
	if final < 0 {
		final = 0
	}
	a.FinalPrice = final
	return *a, nil
}

// DueForReminder returns upcoming appointments whose start falls inside the
// given window. Used by the reminder cron sweep.
func (s *appointmentStore) DueForReminder(from, to time.Time) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Appointment{}
	for _, a := range s.appointments {
		if a.Status != models.StatusUpcoming {
			continue
		}
		start, err := utils.SlotStart(a.Date, a.Time)
		if err != nil {
			continue
		}
		if start.After(from) && !start.After(to) {
			out = append(out, *a)
		}
	}
	return out
}
