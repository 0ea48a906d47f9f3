package routine

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// StorageKey identifies the persisted routines document.
const StorageKey = "stretch.routines"

var (
	// ErrNotFound is returned for an unknown routine id.
	ErrNotFound = errors.New("routine not found")
	// ErrNameRequired is returned when saving a routine with a blank name.
	ErrNameRequired = errors.New("routine name is required")
	// ErrNoItems is returned when saving a routine without items.
	ErrNoItems = errors.New("routine needs at least one stretch")
)

// Store holds routines in insertion order. It is not safe for concurrent
// use; the CLI touches it from a single goroutine.
type Store struct {
	routines []Routine
	newID    func() string
}

// NewStore returns a store seeded with routines.
func NewStore(routines []Routine) *Store {
	s := &Store{newID: MakeID}
	for _, r := range routines {
		s.routines = append(s.routines, r.Clone())
	}
	return s
}

// MakeID returns an id of the form id-<unix millis>-<0..9999>.
func MakeID() string {
	return fmt.Sprintf("id-%d-%d", time.Now().UnixMilli(), rand.Intn(10000))
}

// RoutineByID returns a copy of the routine with the given id.
func (s *Store) RoutineByID(id string) (Routine, bool) {
	i := s.index(id)
	if i < 0 {
		return Routine{}, false
	}
	return s.routines[i].Clone(), true
}

// List returns copies of all routines in insertion order.
func (s *Store) List() []Routine {
	out := make([]Routine, len(s.routines))
	for i, r := range s.routines {
		out[i] = r.Clone()
	}
	return out
}

// Len returns the number of stored routines.
func (s *Store) Len() int {
	return len(s.routines)
}

// Add validates and appends a new routine, returning it with its fresh id.
func (s *Store) Add(name string, items []Item) (Routine, error) {
	name, err := validate(name, items)
	if err != nil {
		return Routine{}, err
	}
	r := Routine{ID: s.newID(), Name: name, Items: items}.Clone()
	s.routines = append(s.routines, r)
	return r.Clone(), nil
}

// Update replaces the name and items of an existing routine.
func (s *Store) Update(id, name string, items []Item) (Routine, error) {
	i := s.index(id)
	if i < 0 {
		return Routine{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	name, err := validate(name, items)
	if err != nil {
		return Routine{}, err
	}
	s.routines[i] = Routine{ID: id, Name: name, Items: items}.Clone()
	return s.routines[i].Clone(), nil
}

// Delete removes a routine. Callers holding an active run of this routine
// must reset their timer as part of the deletion.
func (s *Store) Delete(id string) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.routines = append(s.routines[:i], s.routines[i+1:]...)
	return nil
}

func (s *Store) index(id string) int {
	for i, r := range s.routines {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func validate(name string, items []Item) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrNameRequired
	}
	if len(items) == 0 {
		return "", ErrNoItems
	}
	return trimmed, nil
}
