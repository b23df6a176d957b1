package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spal7319/movie-ticket-booking/internal/model"
)

func TestSeatStoreRoundTrip(t *testing.T) {
	store, err := NewSeatStore(t.TempDir())
	require.NoError(t, err)
	key := model.NewShowKey("Inception", "20250101")

	var m model.SeatMatrix
	m[0][0] = model.SeatBooked
	m[4][7] = model.SeatBooked
	m[8][8] = model.SeatBooked
	require.NoError(t, store.Save(key, m))

	got, found, err := store.Load(key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, m, got)
}

func TestSeatStoreMissingFileIsNotAnError(t *testing.T) {
	store, err := NewSeatStore(t.TempDir())
	require.NoError(t, err)

	got, found, err := store.Load(model.NewShowKey("Nothing", "20250101"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, model.SeatMatrix{}, got)
}

func TestSeatStoreRecordOrderIsInsignificant(t *testing.T) {
	dir := t.TempDir()
	store, err := NewSeatStore(dir)
	require.NoError(t, err)
	key := model.NewShowKey("Dune", "20250102")

	// Same records as a Save would emit, shuffled by hand.
	data := "8 8\n0 0\n4 7\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seats_Dune_20250102.txt"), []byte(data), 0o644))

	got, found, err := store.Load(key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, got.BookedCount())
	assert.Equal(t, model.SeatBooked, got[0][0])
	assert.Equal(t, model.SeatBooked, got[4][7])
	assert.Equal(t, model.SeatBooked, got[8][8])
}

func TestSeatStoreSkipsCorruptRecords(t *testing.T) {
	dir := t.TempDir()
	store, err := NewSeatStore(dir)
	require.NoError(t, err)
	key := model.NewShowKey("Alien", "20250103")

	data := "1 1\nnot a record\n99 99\n-1 3\n2 2\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seats_Alien_20250103.txt"), []byte(data), 0o644))

	got, found, err := store.Load(key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2, got.BookedCount())
	assert.Equal(t, model.SeatBooked, got[1][1])
	assert.Equal(t, model.SeatBooked, got[2][2])
}

func TestSeatStoreSaveReplacesPreviousFile(t *testing.T) {
	store, err := NewSeatStore(t.TempDir())
	require.NoError(t, err)
	key := model.NewShowKey("Heat", "20250104")

	var first model.SeatMatrix
	first[0][0] = model.SeatBooked
	first[0][1] = model.SeatBooked
	require.NoError(t, store.Save(key, first))

	var second model.SeatMatrix
	second[5][5] = model.SeatBooked
	require.NoError(t, store.Save(key, second))

	got, found, err := store.Load(key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, second, got)
}
