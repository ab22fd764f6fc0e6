package jobmanager

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// entry guards a single Job. Holding mu gives exclusive access to job.
type entry struct {
	mu  sync.Mutex
	job *Job
}

// Registry holds Jobs by ID. Access to the map is guarded by a read/write
// lock and access to each Job by its own mutex, so operations on different
// Jobs run concurrently while operations on the same Job are serialised.
//
// Registry performs no authorisation; that's left to the Jobs themselves.
type Registry struct {
	// NOTE: Entries are only removed by an explicit call to Remove. Nothing
	// in the Registry expires or garbage collects Jobs.
	entries map[string]*entry

	mu sync.RWMutex
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Insert adds job under id or returns ErrJobExists if id is already taken.
func (r *Registry) Insert(id string, job *Job) error {
	return r.InsertFunc(id, func() (*Job, error) {
		return job, nil
	})
}

// InsertFunc adds the Job returned by create under id. The existence check,
// the call to create and the insertion happen under a single write lock, so
// create is never called for an id that's already taken and two concurrent
// calls for the same id can never both succeed.
//
// Returns ErrJobExists if id is already taken, or the error from create, in
// which case nothing is inserted.
func (r *Registry) InsertFunc(id string, create func() (*Job, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		return fmt.Errorf("%w: %s", ErrJobExists, id)
	}

	job, err := create()
	if err != nil {
		return err
	}

	r.entries[id] = &entry{job: job}

	return nil
}

// WithJob calls f with the Job stored under id while holding exclusive access
// to that Job, and returns the error from f. Returns ErrJobNotFound if there's
// no Job stored under id.
func (r *Registry) WithJob(id string, f func(*Job) error) error {
	r.mu.RLock()
	e, exists := r.entries[id]
	r.mu.RUnlock()

	if !exists {
		return fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return f(e.job)
}

// Remove calls f with the Job stored under id and removes it from the Registry
// if f returns nil. Returns ErrJobNotFound if there's no Job stored under id,
// otherwise the error from f.
func (r *Registry) Remove(id string, f func(*Job) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, exists := r.entries[id]
	if !exists {
		return fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := f(e.job); err != nil {
		return err
	}

	delete(r.entries, id)

	return nil
}

// Range calls f for each Job in the Registry at the time of the call, holding
// exclusive access to each Job in turn.
func (r *Registry) Range(f func(*Job)) {
	r.mu.RLock()
	entries := slices.Collect(maps.Values(r.entries))
	r.mu.RUnlock()

	for _, e := range entries {
		e.mu.Lock()
		f(e.job)
		e.mu.Unlock()
	}
}
