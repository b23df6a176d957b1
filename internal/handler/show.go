package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/spal7319/movie-ticket-booking/internal/inventory"
	"github.com/spal7319/movie-ticket-booking/internal/model"
	"github.com/spal7319/movie-ticket-booking/internal/queue"
	"github.com/spal7319/movie-ticket-booking/internal/repository"
	queue_publisher "github.com/spal7319/movie-ticket-booking/internal/service"
)

// ShowHandler drives the seat inventory: viewing a show's layout with its
// dynamic price, and the booking transaction that charges the wallet and
// records the ledger row.
type ShowHandler struct {
	Catalog   *repository.MovieCatalog
	Inventory *inventory.Manager
	Users     *repository.UserRepo
	Bookings  *repository.BookingRepo
}

// NewShowHandler constructs a ShowHandler.
func NewShowHandler(catalog *repository.MovieCatalog, inv *inventory.Manager, users *repository.UserRepo, bookings *repository.BookingRepo) *ShowHandler {
	if catalog == nil || inv == nil || users == nil || bookings == nil {
		panic("nil dependency passed to NewShowHandler")
	}
	return &ShowHandler{Catalog: catalog, Inventory: inv, Users: users, Bookings: bookings}
}

type bookReq struct {
	Seats []int `json:"seats" validate:"required,min=1,max=10,dive,min=1,max=81"`
	// QuotedPrice is the per-seat dynamic price the client saw when
	// viewing seats.  The wallet is charged at exactly this price even if
	// occupancy has moved since the quote.
	QuotedPrice int `json:"quoted_price" validate:"required,min=1"`
}

// ViewSeats handles GET /v1/shows/:movie/:date/seats.  The date window is
// checked first, then the snapshot and its dynamic price are taken.  The
// price is a quote only; nothing is reserved by viewing.
func (h *ShowHandler) ViewSeats(c echo.Context) error {
	movie := c.Param("movie")
	date := c.Param("date")

	if err := inventory.ValidateShowDate(date, time.Now()); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	base, ok := h.Catalog.GetBasePrice(movie)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	}

	key := model.NewShowKey(movie, date)
	matrix, occ := h.Inventory.Snapshot(key)

	return c.JSON(http.StatusOK, echo.Map{
		"movie":     movie,
		"date":      date,
		"capacity":  model.HallCapacity,
		"booked":    matrix.BookedCount(),
		"occupancy": occ,
		"price":     inventory.DynamicPrice(base, occ),
		"seats":     matrix,
	})
}

// Book handles POST /v1/shows/:movie/:date/book.  The wallet debit and
// ledger insert share one SQL transaction around the in-memory booking:
// the debit is taken first (cheap to undo), then the all-or-nothing seat
// transaction runs, and only a committed booking lets the transaction
// commit.  A seat conflict or bad request rolls the debit back untouched.
func (h *ShowHandler) Book(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	movie := c.Param("movie")
	date := c.Param("date")

	if err := inventory.ValidateShowDate(date, time.Now()); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	base, ok := h.Catalog.GetBasePrice(movie)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	}

	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	// The dynamic price never drops below base, so no genuine quote can.
	if req.QuotedPrice < base {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "quoted price below base price"})
	}
	amount := int64(req.QuotedPrice) * int64(len(req.Seats))
	key := model.NewShowKey(movie, date)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	tx, err := h.Users.DB.BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := h.Users.DebitTx(ctx, tx, userID, amount); err != nil {
		if errors.Is(err, repository.ErrInsufficientFunds) {
			return c.JSON(http.StatusPaymentRequired, echo.Map{"error": "insufficient wallet balance"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "wallet debit failed"})
	}

	bookErr := h.Inventory.Book(key, req.Seats)
	switch {
	case errors.Is(bookErr, inventory.ErrInvalidSeat):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": bookErr.Error()})
	case errors.Is(bookErr, inventory.ErrSeatConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": bookErr.Error()})
	}
	// Any remaining bookErr is a persistence failure after the seats were
	// committed in memory.  The booking stands, so the charge and ledger
	// row still go through; the caller is told the seat file is stale.

	booking := &model.Booking{
		Ref:    uuid.NewString(),
		UserID: userID,
		Movie:  movie,
		Date:   date,
		Seats:  req.Seats,
		Amount: amount,
	}
	if err := h.Bookings.CreateTx(ctx, tx, booking); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to record booking"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit booking"})
	}
	committed = true

	_, occ := h.Inventory.Snapshot(key)
	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pubCancel()
		_ = queue_publisher.PublishSeatsBooked(pubCtx, queue.SeatsBookedEvent{
			BookingRef: booking.Ref,
			UserID:     userID,
			Movie:      movie,
			Date:       date,
			Seats:      req.Seats,
			UnitPrice:  req.QuotedPrice,
			Amount:     amount,
			Occupancy:  occ,
			BookedAt:   time.Now().UTC().Format(time.RFC3339),
		})
	}()

	if bookErr != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":       "seats booked but not persisted to the seat file",
			"booking_ref": booking.Ref,
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"booking_ref": booking.Ref,
		"seats":       req.Seats,
		"unit_price":  req.QuotedPrice,
		"amount":      amount,
		"occupancy":   occ,
	})
}
