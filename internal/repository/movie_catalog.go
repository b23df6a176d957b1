package repository

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/spal7319/movie-ticket-booking/internal/model"
)

// MovieCatalog is the flat-file movie store.  The whole catalog is held in
// memory behind a single mutex (read-heavy, tiny) and written back to its
// file on every mutation, one "name lang rating cost" line per movie.
// Booking and view paths only call GetBasePrice, which takes the catalog
// mutex briefly and never while a show lock is being acquired, keeping the
// lock order show-lock → catalog-lock acyclic.
type MovieCatalog struct {
	mu     sync.Mutex
	path   string
	movies []model.Movie
}

// NewMovieCatalog loads the catalog from path.  A missing file is an empty
// catalog, not an error.
func NewMovieCatalog(path string) (*MovieCatalog, error) {
	c := &MovieCatalog{path: path}
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

// load replaces the in-memory list with the file contents.  Lines that do
// not parse are skipped.
func (c *MovieCatalog) load() error {
	f, err := os.Open(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open movie catalog: %w", err)
	}
	defer f.Close()

	var movies []model.Movie
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var m model.Movie
		if _, err := fmt.Sscanf(sc.Text(), "%s %s %d %d", &m.Name, &m.Lang, &m.Rating, &m.Cost); err != nil {
			continue
		}
		movies = append(movies, m)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read movie catalog: %w", err)
	}
	c.movies = movies
	return nil
}

// save rewrites the whole catalog file.  Caller must hold c.mu.
func (c *MovieCatalog) save() error {
	var b strings.Builder
	for _, m := range c.movies {
		fmt.Fprintf(&b, "%s %s %d %d\n", m.Name, m.Lang, m.Rating, m.Cost)
	}
	if err := os.WriteFile(c.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write movie catalog: %w", err)
	}
	return nil
}

// List returns a copy of all movies in catalog order.
func (c *MovieCatalog) List() []model.Movie {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// GetBasePrice returns the base ticket cost for a movie by name, and
// whether the movie exists.
func (c *MovieCatalog) GetBasePrice(name string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range c.movies {
		if m.Name == name {
			return m.Cost, true
		}
	}
	return 0, false
}

// Add appends a movie and persists the catalog.  Names must be unique and
// name/lang must be single tokens since the file format is
// whitespace-separated.
func (c *MovieCatalog) Add(m model.Movie) error {
	if m.Name == "" || strings.ContainsAny(m.Name, " \t\n") || strings.ContainsAny(m.Lang, " \t\n") {
		return ErrBadMovieRecord
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.movies {
		if existing.Name == m.Name {
			return ErrMovieExists
		}
	}
	c.movies = append(c.movies, m)
	if err := c.save(); err != nil {
		c.movies = c.movies[:len(c.movies)-1]
		return err
	}
	return nil
}

// Remove deletes a movie by name and persists the catalog.
func (c *MovieCatalog) Remove(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, m := range c.movies {
		if m.Name == name {
			removed := m
			c.movies = append(c.movies[:i], c.movies[i+1:]...)
			if err := c.save(); err != nil {
				c.movies = append(c.movies, removed)
				return err
			}
			return nil
		}
	}
	return ErrMovieNotFound
}
