package model

// SeatStatus is the state of a single seat cell in a show's matrix.
type SeatStatus int8

const (
	SeatAvailable SeatStatus = iota // seat can still be booked
	SeatBooked                      // seat has been sold
)

// Hall geometry is fixed: every screening sells the same 9×9 hall.
const (
	HallRows     = 9
	HallCols     = 9
	HallCapacity = HallRows * HallCols
)

// MaxSeatsPerBooking caps how many seats a single booking request may carry.
const MaxSeatsPerBooking = 10

// ShowKey identifies one scheduled screening.  Movie name plus an 8-digit
// YYYYMMDD date is the sole identity for seat inventory: two requests with
// the same movie and date always address the same seat matrix.
type ShowKey struct {
	Movie string // movie name as listed in the catalog
	Date  string // show date, exactly 8 ASCII digits (YYYYMMDD)
}

// NewShowKey builds a ShowKey from a movie name and date string.
func NewShowKey(movie, date string) ShowKey {
	return ShowKey{Movie: movie, Date: date}
}

// String renders the key in its canonical "movie_date" form.  The same
// form names the persisted seat file for the show.
func (k ShowKey) String() string {
	return k.Movie + "_" + k.Date
}

// SeatMatrix is the 9×9 availability grid for one show.  It is a value
// type on purpose: assigning a SeatMatrix copies it, which is how
// snapshots escape the show lock without aliasing the live matrix.
type SeatMatrix [HallRows][HallCols]SeatStatus

// SeatPosition maps a 1-based, row-major seat number onto its grid cell.
// Seat N lives at row (N-1)/9, column (N-1)%9.  The caller must have
// validated that the seat number is within [1, HallCapacity].
func SeatPosition(seat int) (row, col int) {
	return (seat - 1) / HallCols, (seat - 1) % HallCols
}

// BookedCount walks the grid and counts sold seats.  Occupancy is always
// recomputed from the matrix, never stored alongside it.
func (m *SeatMatrix) BookedCount() int {
	n := 0
	for i := 0; i < HallRows; i++ {
		for j := 0; j < HallCols; j++ {
			if m[i][j] == SeatBooked {
				n++
			}
		}
	}
	return n
}

// Occupancy returns the booked fraction of the hall, in [0, 1].
func (m *SeatMatrix) Occupancy() float64 {
	return float64(m.BookedCount()) / float64(HallCapacity)
}
