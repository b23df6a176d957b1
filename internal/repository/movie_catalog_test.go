package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spal7319/movie-ticket-booking/internal/model"
)

func newTestCatalog(t *testing.T) (*MovieCatalog, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.txt")
	c, err := NewMovieCatalog(path)
	require.NoError(t, err)
	return c, path
}

func TestCatalogAddListRemove(t *testing.T) {
	c, _ := newTestCatalog(t)

	require.NoError(t, c.Add(model.Movie{Name: "Inception", Lang: "English", Rating: 9, Cost: 250}))
	require.NoError(t, c.Add(model.Movie{Name: "Dune", Lang: "English", Rating: 8, Cost: 300}))

	movies := c.List()
	require.Len(t, movies, 2)
	assert.Equal(t, "Inception", movies[0].Name)
	assert.Equal(t, "Dune", movies[1].Name)

	cost, ok := c.GetBasePrice("Dune")
	assert.True(t, ok)
	assert.Equal(t, 300, cost)
	_, ok = c.GetBasePrice("Tenet")
	assert.False(t, ok)

	require.NoError(t, c.Remove("Inception"))
	movies = c.List()
	require.Len(t, movies, 1)
	assert.Equal(t, "Dune", movies[0].Name)
}

func TestCatalogRejectsDuplicateName(t *testing.T) {
	c, _ := newTestCatalog(t)

	require.NoError(t, c.Add(model.Movie{Name: "Inception", Lang: "English", Rating: 9, Cost: 250}))
	err := c.Add(model.Movie{Name: "Inception", Lang: "French", Rating: 7, Cost: 200})
	assert.ErrorIs(t, err, ErrMovieExists)
}

func TestCatalogRejectsMalformedRecords(t *testing.T) {
	c, _ := newTestCatalog(t)

	assert.ErrorIs(t, c.Add(model.Movie{Name: "", Lang: "English"}), ErrBadMovieRecord)
	assert.ErrorIs(t, c.Add(model.Movie{Name: "The Batman", Lang: "English"}), ErrBadMovieRecord)
	assert.ErrorIs(t, c.Add(model.Movie{Name: "Batman", Lang: "en US"}), ErrBadMovieRecord)
}

func TestCatalogRemoveMissingMovie(t *testing.T) {
	c, _ := newTestCatalog(t)
	assert.ErrorIs(t, c.Remove("Ghost"), ErrMovieNotFound)
}

func TestCatalogPersistsAcrossReload(t *testing.T) {
	c, path := newTestCatalog(t)
	require.NoError(t, c.Add(model.Movie{Name: "Inception", Lang: "English", Rating: 9, Cost: 250}))
	require.NoError(t, c.Add(model.Movie{Name: "Dune", Lang: "English", Rating: 8, Cost: 300}))
	require.NoError(t, c.Remove("Inception"))

	reloaded, err := NewMovieCatalog(path)
	require.NoError(t, err)
	movies := reloaded.List()
	require.Len(t, movies, 1)
	assert.Equal(t, model.Movie{Name: "Dune", Lang: "English", Rating: 8, Cost: 300}, movies[0])
}

func TestCatalogMissingFileIsEmpty(t *testing.T) {
	c, err := NewMovieCatalog(filepath.Join(t.TempDir(), "absent.txt"))
	require.NoError(t, err)
	assert.Empty(t, c.List())
}
