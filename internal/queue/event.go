// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

// SeatsBookedEvent is published after a booking transaction commits and
// the wallet charge goes through.  It carries enough for downstream
// consumers to log or notify without touching the primary stores.
type SeatsBookedEvent struct {
	BookingRef string  `json:"booking_ref"`
	UserID     uint64  `json:"user_id"`
	Movie      string  `json:"movie"`
	Date       string  `json:"date"`
	Seats      []int   `json:"seats"`
	UnitPrice  int     `json:"unit_price"`
	Amount     int64   `json:"amount"`
	Occupancy  float64 `json:"occupancy"`
	BookedAt   string  `json:"booked_at"`
}
