// Package inventory owns the in-memory seat matrices and the booking
// transaction.  All reads and writes of a show's matrix happen under that
// show's exclusive lock, handed out by the LockRegistry.  These sentinel
// values let handlers distinguish the failure modes of a booking attempt
// without string matching.
package inventory

import "errors"

// ErrInvalidDate is returned when a show date is not exactly 8 ASCII
// digits, does not name a real calendar day, or falls outside the
// admissible window of today through three days ahead.  Handlers should
// translate this into an HTTP 400 response.
var ErrInvalidDate = errors.New("invalid show date")

// ErrInvalidSeat is returned when a booking request carries a seat number
// outside [1, 81], a duplicate seat, no seats at all, or more than the
// per-booking maximum.  The whole attempt fails and no state changes.
var ErrInvalidSeat = errors.New("invalid seat number")

// ErrSeatConflict is returned when a requested seat is already booked.
// Seats flipped earlier in the same attempt are rolled back before the
// error is returned, so the matrix is left exactly as it was.  Handlers
// should translate this into an HTTP 409 response.
var ErrSeatConflict = errors.New("seat already booked")
