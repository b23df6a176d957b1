package repository

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/spal7319/movie-ticket-booking/internal/model"
)

// BookingRepo records confirmed bookings in the `bookings` ledger table.
// The ledger is history only: seat availability is owned by the inventory
// manager and its seat files, never reconstructed from here.
type BookingRepo struct{ DB *sql.DB }

// NewBookingRepo binds a BookingRepo to the given database handle.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// CreateTx inserts a booking row inside the given transaction and
// populates the generated ID on the passed record.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO bookings (ref, user_id, movie, show_date, seats, amount) VALUES (?,?,?,?,?,?)",
		b.Ref, b.UserID, b.Movie, b.Date, joinSeats(b.Seats), b.Amount)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// ListByUser returns a user's bookings, newest first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, ref, user_id, movie, show_date, seats, amount, created_at FROM bookings WHERE user_id=? ORDER BY created_at DESC, id DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Booking{}
	for rows.Next() {
		var b model.Booking
		var seats string
		if err := rows.Scan(&b.ID, &b.Ref, &b.UserID, &b.Movie, &b.Date, &seats, &b.Amount, &b.CreatedAt); err != nil {
			return nil, err
		}
		b.Seats = splitSeats(seats)
		out = append(out, b)
	}
	return out, rows.Err()
}

// joinSeats renders seat numbers as "1,2,3" for the seats column.
func joinSeats(seats []int) string {
	parts := make([]string, len(seats))
	for i, s := range seats {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}

// splitSeats parses the seats column back into numbers, skipping any
// token that does not parse.
func splitSeats(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		if n, err := strconv.Atoi(strings.TrimSpace(p)); err == nil {
			out = append(out, n)
		}
	}
	return out
}
