package inventory

import (
	"fmt"
	"log"
	"sync"

	"github.com/spal7319/movie-ticket-booking/internal/model"
)

// SeatStore is the persistence collaborator for seat matrices.  Load
// reports found=false when no record exists for the key, which the manager
// treats as an all-available hall, never as an error.
type SeatStore interface {
	Load(key model.ShowKey) (m model.SeatMatrix, found bool, err error)
	Save(key model.ShowKey, m model.SeatMatrix) error
}

// Manager owns the single writable in-memory copy of every show's seat
// matrix.  Matrices are created on first access for their key, loaded from
// the store when a persisted record exists, and live for the process
// lifetime.  Every public operation runs while holding the key's lock from
// the registry, so callers never observe a partially booked matrix.
type Manager struct {
	store SeatStore
	locks *LockRegistry

	// matricesMu guards the map itself; the matrix a pointer leads to is
	// only touched while holding that key's show lock.
	matricesMu sync.Mutex
	matrices   map[model.ShowKey]*model.SeatMatrix
}

// NewManager constructs a Manager over the given store.
func NewManager(store SeatStore) *Manager {
	if store == nil {
		panic("nil store passed to NewManager")
	}
	return &Manager{
		store:    store,
		locks:    NewLockRegistry(),
		matrices: make(map[model.ShowKey]*model.SeatMatrix),
	}
}

// loadOrInit returns the live matrix for key, creating it on first access.
// The caller must hold key's show lock.  A store read failure degrades to
// an empty, all-available matrix: the only information at risk is which
// seats were booked, and availability wins over strict durability here.
func (mgr *Manager) loadOrInit(key model.ShowKey) *model.SeatMatrix {
	mgr.matricesMu.Lock()
	m, ok := mgr.matrices[key]
	mgr.matricesMu.Unlock()
	if ok {
		return m
	}
	loaded, found, err := mgr.store.Load(key)
	if err != nil {
		log.Printf("inventory: load %s failed, starting empty: %v", key, err)
		loaded = model.SeatMatrix{}
	} else if !found {
		loaded = model.SeatMatrix{}
	}
	m = &loaded
	mgr.matricesMu.Lock()
	mgr.matrices[key] = m
	mgr.matricesMu.Unlock()
	return m
}

// Snapshot returns a copy of the current matrix for key together with its
// occupancy.  The copy is taken under the show lock and is safe for the
// caller to render after the lock is released.
func (mgr *Manager) Snapshot(key model.ShowKey) (model.SeatMatrix, float64) {
	lock := mgr.locks.Acquire(key)
	lock.Lock()
	defer lock.Unlock()

	snap := *mgr.loadOrInit(key)
	return snap, snap.Occupancy()
}

// Book attempts to transition every requested seat from available to
// booked, all or nothing.  On the first seat found already booked the
// seats flipped earlier in this attempt are restored in reverse order and
// ErrSeatConflict is returned; the matrix ends byte-for-byte identical to
// its pre-attempt state.  In both outcomes the matrix is persisted before
// returning, keeping disk in step with memory.  A save failure after a
// successful flip set is returned to the caller: the booking is committed
// in memory but not on disk, and the connection layer must surface that.
func (mgr *Manager) Book(key model.ShowKey, seats []int) error {
	if err := ValidateSeats(seats); err != nil {
		return err
	}

	lock := mgr.locks.Acquire(key)
	lock.Lock()
	defer lock.Unlock()

	m := mgr.loadOrInit(key)

	var failure error
	flipped := make([]int, 0, len(seats))
	for _, s := range seats {
		row, col := model.SeatPosition(s)
		if m[row][col] != model.SeatAvailable {
			failure = fmt.Errorf("seat %d: %w", s, ErrSeatConflict)
			break
		}
		m[row][col] = model.SeatBooked
		flipped = append(flipped, s)
	}

	if failure != nil {
		// Replay the flip list in reverse to restore the pre-attempt state.
		for i := len(flipped) - 1; i >= 0; i-- {
			row, col := model.SeatPosition(flipped[i])
			m[row][col] = model.SeatAvailable
		}
	}

	if err := mgr.store.Save(key, *m); err != nil {
		if failure != nil {
			// The rollback already restored memory; report the booking
			// failure, the stale file only over-reports bookings.
			log.Printf("inventory: save after rollback of %s failed: %v", key, err)
			return failure
		}
		return fmt.Errorf("booking for %s committed in memory but not persisted: %w", key, err)
	}
	return failure
}
