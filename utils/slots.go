package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Booking slots run every 30 minutes from 09:00 up to (not including) 18:00,
// independent of service duration or existing bookings.
const (
	openingHour = 9
	closingHour = 18
)

// GenerateTimeSlots returns the 18 bookable half-hour slots of a day in
// "H:MM" form with no leading zero on the hour.
func GenerateTimeSlots() []string {
	slots := make([]string, 0, (closingHour-openingHour)*2)
	for hour := openingHour; hour < closingHour; hour++ {
		slots = append(slots, fmt.Sprintf("%d:00", hour))
		slots = append(slots, fmt.Sprintf("%d:30", hour))
	}
	return slots
}

// IsValidSlot reports whether s names one of the day's bookable slots.
func IsValidSlot(s string) bool {
	for _, slot := range GenerateTimeSlots() {
		if slot == s {
			return true
		}
	}
	return false
}

// ParseSlot splits a "H:MM" slot into hour and minute.
func ParseSlot(s string) (hour, minute int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time slot %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time slot %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time slot %q", s)
	}
	return hour, minute, nil
}

// SlotStart combines a calendar date with a slot into the appointment start time.
func SlotStart(date time.Time, slot string) (time.Time, error) {
	hour, minute, err := ParseSlot(slot)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}

// ParseISODate parses a YYYY-MM-DD pipeline date parameter.
func ParseISODate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// Today returns the current day truncated to midnight.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// IsPastDate reports whether the date falls strictly before today. Selecting
// such a date is rejected with no state change.
func IsPastDate(date time.Time) bool {
	today := Today()
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, today.Location())
	return d.Before(today)
}

// CalendarDay is one cell of the month grid. Leading cells before the first
// of the month are sent as nulls so weekday columns line up (Sunday first).
type CalendarDay struct {
	Day        int    `json:"day"`
	Date       string `json:"date"` // ISO date
	Selectable bool   `json:"selectable"`
}

// GenerateCalendarDays builds the grid for a month. Days before today are
// marked unselectable; month stepping is unbounded in either direction.
func GenerateCalendarDays(year int, month time.Month) []*CalendarDay {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()

	days := make([]*CalendarDay, 0, int(firstDay.Weekday())+daysInMonth)
	for i := 0; i < int(firstDay.Weekday()); i++ {
		days = append(days, nil)
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		days = append(days, &CalendarDay{
			Day:        day,
			Date:       date.Format("2006-01-02"),
			Selectable: !IsPastDate(date),
		})
	}
	return days
}
