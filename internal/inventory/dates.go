package inventory

import (
	"fmt"
	"time"
)

// dateLayout is the only accepted show-date format: 8 ASCII digits.
const dateLayout = "20060102"

// bookingWindowDays is how far ahead a show may be viewed or booked,
// inclusive of today.
const bookingWindowDays = 3

// ValidateShowDate admits a show date only when it parses as a real
// calendar day and falls within [today, today+3] relative to now.  A
// malformed date is a hard ErrInvalidDate, not merely inadmissible; so is
// a well-formed date outside the window.  The comparison is by whole
// calendar day, so a show later today is still admissible.
func ValidateShowDate(date string, now time.Time) error {
	if len(date) != len(dateLayout) {
		return fmt.Errorf("date %q is not YYYYMMDD: %w", date, ErrInvalidDate)
	}
	day, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		return fmt.Errorf("date %q is not YYYYMMDD: %w", date, ErrInvalidDate)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(today) || day.After(today.AddDate(0, 0, bookingWindowDays)) {
		return fmt.Errorf("date %s outside booking window of %d days: %w",
			date, bookingWindowDays, ErrInvalidDate)
	}
	return nil
}
