package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spal7319/movie-ticket-booking/internal/model"
	"github.com/spal7319/movie-ticket-booking/internal/repository"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func newMovieHandler(t *testing.T) *MovieHandler {
	t.Helper()
	catalog, err := repository.NewMovieCatalog(filepath.Join(t.TempDir(), "movies.txt"))
	require.NoError(t, err)
	return NewMovieHandler(catalog)
}

func postJSON(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestMovieAddThenList(t *testing.T) {
	e := newTestEcho()
	h := newMovieHandler(t)

	c, rec := postJSON(e, "/v1/movies", `{"name":"Inception","lang":"EN","rating":9,"cost":250}`)
	require.NoError(t, h.Add(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/v1/movies", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, h.List(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []model.Movie `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, model.Movie{Name: "Inception", Lang: "EN", Rating: 9, Cost: 250}, body.Items[0])
}

func TestMovieAddDuplicateConflicts(t *testing.T) {
	e := newTestEcho()
	h := newMovieHandler(t)

	c, rec := postJSON(e, "/v1/movies", `{"name":"Dune","lang":"EN","rating":8,"cost":300}`)
	require.NoError(t, h.Add(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = postJSON(e, "/v1/movies", `{"name":"Dune","lang":"EN","rating":8,"cost":300}`)
	require.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestMovieAddRejectsWhitespaceName(t *testing.T) {
	e := newTestEcho()
	h := newMovieHandler(t)

	c, rec := postJSON(e, "/v1/movies", `{"name":"The Batman","lang":"EN","rating":8,"cost":300}`)
	require.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMovieAddRejectsMissingFields(t *testing.T) {
	e := newTestEcho()
	h := newMovieHandler(t)

	c, _ := postJSON(e, "/v1/movies", `{"name":"Dune"}`)
	err := h.Add(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestMovieRemove(t *testing.T) {
	e := newTestEcho()
	h := newMovieHandler(t)

	c, rec := postJSON(e, "/v1/movies", `{"name":"Dune","lang":"EN","rating":8,"cost":300}`)
	require.NoError(t, h.Add(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	req := httptest.NewRequest(http.MethodDelete, "/v1/movies/Dune", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("Dune")
	require.NoError(t, h.Remove(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/v1/movies/Dune", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("Dune")
	require.NoError(t, h.Remove(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
