package model

import "time"

// Booking is one confirmed, charged booking as recorded in the `bookings`
// ledger table.  The ledger is write-once history; the authoritative seat
// state stays in the per-show matrix.
type Booking struct {
	ID        uint64    `json:"id"`         // bookings.id
	Ref       string    `json:"ref"`        // bookings.ref, UUID handed back to the client
	UserID    uint64    `json:"user_id"`    // bookings.user_id
	Movie     string    `json:"movie"`      // bookings.movie
	Date      string    `json:"date"`       // bookings.show_date (YYYYMMDD)
	Seats     []int     `json:"seats"`      // seat numbers, stored comma-separated
	Amount    int64     `json:"amount"`     // total charged, quoted price × seat count
	CreatedAt time.Time `json:"created_at"` // bookings.created_at
}
