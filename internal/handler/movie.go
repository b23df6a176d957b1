package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spal7319/movie-ticket-booking/internal/model"
	"github.com/spal7319/movie-ticket-booking/internal/repository"
)

// MovieHandler exposes the catalog: public listing plus the admin console
// operations (add, remove) moved onto authenticated routes.
type MovieHandler struct {
	Catalog *repository.MovieCatalog
}

// NewMovieHandler constructs a MovieHandler.
func NewMovieHandler(catalog *repository.MovieCatalog) *MovieHandler {
	if catalog == nil {
		panic("nil catalog passed to NewMovieHandler")
	}
	return &MovieHandler{Catalog: catalog}
}

type addMovieReq struct {
	Name   string `json:"name" validate:"required,max=64"`
	Lang   string `json:"lang" validate:"required,max=16"`
	Rating int    `json:"rating" validate:"min=0,max=10"`
	Cost   int    `json:"cost" validate:"required,min=1"`
}

// List handles GET /v1/movies and returns the whole catalog.
func (h *MovieHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Catalog.List()})
}

// Add handles POST /v1/movies (admin).  Movie names double as seat file
// name components, so the catalog rejects names with whitespace.
func (h *MovieHandler) Add(c echo.Context) error {
	var req addMovieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	m := model.Movie{Name: req.Name, Lang: req.Lang, Rating: req.Rating, Cost: req.Cost}
	if err := h.Catalog.Add(m); err != nil {
		switch {
		case errors.Is(err, repository.ErrMovieExists):
			return c.JSON(http.StatusConflict, echo.Map{"error": "movie already exists"})
		case errors.Is(err, repository.ErrBadMovieRecord):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "movie name and language must be single words"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save catalog failed"})
		}
	}
	return c.JSON(http.StatusCreated, m)
}

// Remove handles DELETE /v1/movies/:name (admin).  Existing seat files for
// the movie's shows are left in place; the catalog only stops selling it.
func (h *MovieHandler) Remove(c echo.Context) error {
	name := c.Param("name")
	if err := h.Catalog.Remove(name); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save catalog failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
