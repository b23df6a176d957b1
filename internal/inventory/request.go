package inventory

import (
	"fmt"

	"github.com/spal7319/movie-ticket-booking/internal/model"
)

// ValidateSeats checks a booking request's seat numbers before any cell is
// touched.  Out-of-range values and duplicates are rejected outright, not
// silently dropped, so a request either describes a well-formed set of
// seats or fails with ErrInvalidSeat and no state change.
func ValidateSeats(seats []int) error {
	if len(seats) == 0 {
		return fmt.Errorf("no seats requested: %w", ErrInvalidSeat)
	}
	if len(seats) > model.MaxSeatsPerBooking {
		return fmt.Errorf("%d seats exceeds limit of %d: %w",
			len(seats), model.MaxSeatsPerBooking, ErrInvalidSeat)
	}
	seen := make(map[int]struct{}, len(seats))
	for _, s := range seats {
		if s < 1 || s > model.HallCapacity {
			return fmt.Errorf("seat %d out of range [1,%d]: %w", s, model.HallCapacity, ErrInvalidSeat)
		}
		if _, dup := seen[s]; dup {
			return fmt.Errorf("seat %d requested twice: %w", s, ErrInvalidSeat)
		}
		seen[s] = struct{}{}
	}
	return nil
}
