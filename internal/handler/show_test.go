package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spal7319/movie-ticket-booking/internal/inventory"
	"github.com/spal7319/movie-ticket-booking/internal/model"
	"github.com/spal7319/movie-ticket-booking/internal/repository"
)

// Viewing needs no database, so the handler is built without the wallet
// and ledger repos here.
func newShowViewFixture(t *testing.T) (*ShowHandler, *inventory.Manager) {
	t.Helper()
	dir := t.TempDir()
	catalog, err := repository.NewMovieCatalog(filepath.Join(dir, "movies.txt"))
	require.NoError(t, err)
	require.NoError(t, catalog.Add(model.Movie{Name: "Inception", Lang: "EN", Rating: 9, Cost: 100}))

	store, err := repository.NewSeatStore(dir)
	require.NoError(t, err)
	inv := inventory.NewManager(store)
	return &ShowHandler{Catalog: catalog, Inventory: inv}, inv
}

func viewSeats(e *echo.Echo, h *ShowHandler, movie, date string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/shows/"+movie+"/"+date+"/seats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("movie", "date")
	c.SetParamValues(movie, date)
	if err := h.ViewSeats(c); err != nil {
		panic(err)
	}
	return rec
}

func TestViewSeatsQuotesOccupancyPrice(t *testing.T) {
	e := newTestEcho()
	h, inv := newShowViewFixture(t)
	date := time.Now().UTC().Format("20060102")

	rec := viewSeats(e, h, "Inception", date)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Capacity  int     `json:"capacity"`
		Booked    int     `json:"booked"`
		Occupancy float64 `json:"occupancy"`
		Price     int     `json:"price"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, model.HallCapacity, body.Capacity)
	assert.Equal(t, 0, body.Booked)
	assert.Equal(t, 100, body.Price, "empty hall sells at base price")

	// Sell three seats and the quote moves with occupancy.
	require.NoError(t, inv.Book(model.NewShowKey("Inception", date), []int{1, 2, 3}))
	rec = viewSeats(e, h, "Inception", date)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Booked)
	assert.InDelta(t, 3.0/81.0, body.Occupancy, 1e-9)
	assert.Equal(t, 103, body.Price)
}

func TestViewSeatsRejectsDateOutsideWindow(t *testing.T) {
	e := newTestEcho()
	h, _ := newShowViewFixture(t)

	past := time.Now().UTC().AddDate(0, 0, -1).Format("20060102")
	rec := viewSeats(e, h, "Inception", past)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	far := time.Now().UTC().AddDate(0, 0, 4).Format("20060102")
	rec = viewSeats(e, h, "Inception", far)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = viewSeats(e, h, "Inception", "not-a-date")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestViewSeatsUnknownMovie(t *testing.T) {
	e := newTestEcho()
	h, _ := newShowViewFixture(t)
	date := time.Now().UTC().Format("20060102")

	rec := viewSeats(e, h, "Ghost", date)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestViewSeatsSeparatesShowsByDate(t *testing.T) {
	e := newTestEcho()
	h, inv := newShowViewFixture(t)
	today := time.Now().UTC().Format("20060102")
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("20060102")

	require.NoError(t, inv.Book(model.NewShowKey("Inception", today), []int{1, 2}))

	var body struct {
		Booked int `json:"booked"`
	}
	rec := viewSeats(e, h, "Inception", today)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Booked)

	rec = viewSeats(e, h, "Inception", tomorrow)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Booked, "same movie on another date is a separate show")
}
