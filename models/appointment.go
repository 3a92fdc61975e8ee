package models

import (
	"fmt"
	"time"
)

type AppointmentStatus string

const (
	StatusUpcoming  AppointmentStatus = "upcoming"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no-show"
)

type Appointment struct {
	ID             string            `json:"id"`
	UserID         uint              `json:"user_id"`
	Date           time.Time         `json:"date"`
	Time           string            `json:"time"` // half-hour slot, "H:MM" 24h
	ServiceIDs     []string          `json:"service_ids,omitempty"`
	Service        string            `json:"service"` // display join of service names
	Tech           string            `json:"tech"`
	TechID         string            `json:"tech_id,omitempty"`
	Status         AppointmentStatus `json:"status"`
	OriginalPrice  float64           `json:"original_price"`
	RewardDiscount float64           `json:"reward_discount,omitempty"`
	FinalPrice     float64           `json:"final_price"`
	CreatedAt      time.Time         `json:"created_at"`
}

// UpdateStatus enforces the allowed status transitions. Only upcoming
// appointments can move; completed, cancelled and no-show are terminal.
func (a *Appointment) UpdateStatus(newStatus AppointmentStatus) error {
	switch a.Status {
	case StatusUpcoming:
		if newStatus != StatusCompleted && newStatus != StatusCancelled && newStatus != StatusNoShow {
			return fmt.Errorf("invalid transition from upcoming to %s", newStatus)
		}
	default:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	}

	a.Status = newStatus
	if newStatus == StatusCancelled {
		a.RewardDiscount = 0
		a.FinalPrice = 0
	}
	return nil
}

// IsUpcoming reports whether the appointment can still be rescheduled or cancelled.
func (a *Appointment) IsUpcoming() bool {
	return a.Status == StatusUpcoming
}
