package repository

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spal7319/movie-ticket-booking/internal/model"
)

// SeatStore persists seat matrices as sparse text files, one file per
// show.  Each line is a "row col" pair for a booked cell; a seat with no
// line is available.  A show that was never booked therefore has an empty
// or absent file, which Load reports as found=false rather than an error.
// Record order in the file is insignificant.
type SeatStore struct {
	dir string
}

// NewSeatStore returns a store rooted at dir, creating the directory if
// needed.
func NewSeatStore(dir string) (*SeatStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create seat store dir: %w", err)
	}
	return &SeatStore{dir: dir}, nil
}

// path names the seat file for a show, e.g. dir/seats_Inception_20250101.txt.
func (s *SeatStore) path(key model.ShowKey) string {
	return filepath.Join(s.dir, "seats_"+key.String()+".txt")
}

// Load reads the persisted matrix for key.  Records outside the 9×9 grid
// are skipped so a corrupt line cannot poison the whole matrix.
func (s *SeatStore) Load(key model.ShowKey) (model.SeatMatrix, bool, error) {
	var m model.SeatMatrix
	f, err := os.Open(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m, false, nil
		}
		return m, false, fmt.Errorf("open seat file for %s: %w", key, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var row, col int
		if _, err := fmt.Sscanf(sc.Text(), "%d %d", &row, &col); err != nil {
			continue
		}
		if row >= 0 && row < model.HallRows && col >= 0 && col < model.HallCols {
			m[row][col] = model.SeatBooked
		}
	}
	if err := sc.Err(); err != nil {
		return model.SeatMatrix{}, false, fmt.Errorf("read seat file for %s: %w", key, err)
	}
	return m, true, nil
}

// Save writes the full sparse record set for key, replacing any previous
// file.  Last write wins; there is no durability guarantee beyond the
// plain file.
func (s *SeatStore) Save(key model.ShowKey, m model.SeatMatrix) error {
	var buf bytes.Buffer
	for i := 0; i < model.HallRows; i++ {
		for j := 0; j < model.HallCols; j++ {
			if m[i][j] == model.SeatBooked {
				fmt.Fprintf(&buf, "%d %d\n", i, j)
			}
		}
	}
	if err := os.WriteFile(s.path(key), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write seat file for %s: %w", key, err)
	}
	return nil
}
