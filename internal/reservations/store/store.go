// Package store keeps the process-wide reservation collection. It is an
// explicit object created at startup and handed to the lifecycle manager,
// never a package-level singleton.
package store

import (
	"sync"

	"montecampo/pkg/model"
)

// Store is append-only: reservations are never deleted, only their status
// changes. All methods are safe for concurrent use.
type Store struct {
	mu           sync.RWMutex
	reservations []model.Reservation
	byID         map[string]int
}

func New() *Store {
	return &Store{
		byID: make(map[string]int),
	}
}

// Add appends without any availability check. Callers that need the
// check-then-reserve sequence to be atomic must go through the service's
// guarded booking path.
func (s *Store) Add(r model.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[r.ID] = len(s.reservations)
	s.reservations = append(s.reservations, r)
}

func (s *Store) Get(id string) (model.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return model.Reservation{}, false
	}
	return s.reservations[i], true
}

// UpdateStatus reports false when the reservation does not exist.
func (s *Store) UpdateStatus(id string, status model.ReservationStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[id]
	if !ok {
		return false
	}
	s.reservations[i].Status = status
	return true
}

// ByEmail returns reservations in creation order, matched on exact email.
func (s *Store) ByEmail(email string) []model.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Reservation
	for _, r := range s.reservations {
		if r.CustomerInfo.Email == email {
			out = append(out, r)
		}
	}
	return out
}

// All returns a snapshot of the collection in creation order.
func (s *Store) All() []model.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reservations)
}

// ActiveRangesForUnit feeds the availability engine: date ranges of
// confirmed reservations for the unit. Cancelled reservations free their
// dates immediately.
func (s *Store) ActiveRangesForUnit(unitID string) []model.DateRange {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.DateRange
	for _, r := range s.reservations {
		if r.UnitID == unitID && r.Status == model.StatusConfirmed {
			out = append(out, r.DateRange)
		}
	}
	return out
}
