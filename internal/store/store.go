package store

import "sync"

// Store guards the current State. Readers get the snapshot as-is because
// reducers never write into a published State.
type Store struct {
	mu    sync.RWMutex
	state State
}

// New returns a store initialised with state.
func New(state State) *Store {
	return &Store{state: state}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Update runs a reducer under the write lock and publishes its result
// unless it fails.
func (s *Store) Update(reduce func(State) (State, error)) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := reduce(s.state)
	if err != nil {
		return s.state, err
	}
	s.state = next
	return next, nil
}
