package utils

import (
	"fmt"
	"strings"
)

// NotSelected is the display fallback for missing pipeline parameters.
const NotSelected = "Not selected"

// FormatDisplayDate renders an ISO pipeline date as e.g. "Thu, Dec 18".
func FormatDisplayDate(iso string) string {
	if iso == "" {
		return NotSelected
	}
	date, err := ParseISODate(iso)
	if err != nil {
		return NotSelected
	}
	return date.Format("Mon, Jan 2")
}

// FormatDisplayTime renders a "H:MM" slot as e.g. "2:00 PM".
func FormatDisplayTime(slot string) string {
	if slot == "" {
		return NotSelected
	}
	hour, minute, err := ParseSlot(slot)
	if err != nil {
		return NotSelected
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, minute, ampm)
}

// DigitsOnly strips every non-digit rune from s.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
