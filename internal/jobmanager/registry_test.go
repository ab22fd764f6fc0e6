package jobmanager_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/nixpig/worker/internal/jobmanager"
)

func countJobs(r *jobmanager.Registry) int {
	var n int
	r.Range(func(*jobmanager.Job) { n++ })

	return n
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("Test insert and lookup", func(t *testing.T) {
		t.Parallel()

		r := jobmanager.NewRegistry()
		id := uuid.NewString()
		job := new(jobmanager.Job)

		if err := r.Insert(id, job); err != nil {
			t.Errorf("expected not to receive error: got '%v'", err)
		}

		var got *jobmanager.Job

		if err := r.WithJob(id, func(j *jobmanager.Job) error {
			got = j
			return nil
		}); err != nil {
			t.Errorf("expected not to receive error: got '%v'", err)
		}

		if got != job {
			t.Errorf("expected to get inserted job")
		}

		if n := countJobs(r); n != 1 {
			t.Errorf("expected registry length: got '%d', want '1'", n)
		}
	})

	t.Run("Test duplicate insert", func(t *testing.T) {
		t.Parallel()

		r := jobmanager.NewRegistry()
		id := uuid.NewString()

		if err := r.Insert(id, new(jobmanager.Job)); err != nil {
			t.Errorf("expected not to receive error: got '%v'", err)
		}

		if err := r.Insert(id, new(jobmanager.Job)); !errors.Is(
			err,
			jobmanager.ErrJobExists,
		) {
			t.Errorf("expected to receive ErrJobExists: got '%v'", err)
		}
	})

	t.Run("Test concurrent inserts with same id", func(t *testing.T) {
		t.Parallel()

		r := jobmanager.NewRegistry()
		id := uuid.NewString()

		var (
			created   atomic.Int32
			succeeded atomic.Int32
			conflicts atomic.Int32
			wg        sync.WaitGroup
		)

		for range 50 {
			wg.Go(func() {
				err := r.InsertFunc(id, func() (*jobmanager.Job, error) {
					created.Add(1)
					return new(jobmanager.Job), nil
				})

				switch {
				case err == nil:
					succeeded.Add(1)
				case errors.Is(err, jobmanager.ErrJobExists):
					conflicts.Add(1)
				default:
					t.Errorf("expected nil or ErrJobExists: got '%v'", err)
				}
			})
		}

		wg.Wait()

		if succeeded.Load() != 1 {
			t.Errorf("expected one insert to succeed: got '%d'", succeeded.Load())
		}

		if conflicts.Load() != 49 {
			t.Errorf("expected 49 conflicts: got '%d'", conflicts.Load())
		}

		if created.Load() != 1 {
			t.Errorf("expected create called once: got '%d'", created.Load())
		}
	})

	t.Run("Test failed create is not inserted", func(t *testing.T) {
		t.Parallel()

		r := jobmanager.NewRegistry()
		id := uuid.NewString()

		if err := r.InsertFunc(id, func() (*jobmanager.Job, error) {
			return nil, jobmanager.ErrCommandNotFound
		}); !errors.Is(err, jobmanager.ErrCommandNotFound) {
			t.Errorf("expected to receive ErrCommandNotFound: got '%v'", err)
		}

		if err := r.WithJob(id, func(*jobmanager.Job) error {
			return nil
		}); !errors.Is(err, jobmanager.ErrJobNotFound) {
			t.Errorf("expected to receive ErrJobNotFound: got '%v'", err)
		}
	})

	t.Run("Test lookup of non-existent job", func(t *testing.T) {
		t.Parallel()

		r := jobmanager.NewRegistry()

		called := false

		err := r.WithJob(uuid.NewString(), func(*jobmanager.Job) error {
			called = true
			return nil
		})
		if !errors.Is(err, jobmanager.ErrJobNotFound) {
			t.Errorf("expected to receive ErrJobNotFound: got '%v'", err)
		}

		if called {
			t.Errorf("expected func not to be called")
		}
	})

	t.Run("Test lookup returns func error", func(t *testing.T) {
		t.Parallel()

		r := jobmanager.NewRegistry()
		id := uuid.NewString()

		r.Insert(id, new(jobmanager.Job))

		if err := r.WithJob(id, func(*jobmanager.Job) error {
			return jobmanager.ErrUnauthorized
		}); !errors.Is(err, jobmanager.ErrUnauthorized) {
			t.Errorf("expected to receive ErrUnauthorized: got '%v'", err)
		}
	})

	t.Run("Test access to same job is serialised", func(t *testing.T) {
		t.Parallel()

		r := jobmanager.NewRegistry()
		id := uuid.NewString()

		r.Insert(id, new(jobmanager.Job))

		var (
			active  atomic.Int32
			overlap atomic.Bool
			wg      sync.WaitGroup
		)

		for range 20 {
			wg.Go(func() {
				r.WithJob(id, func(*jobmanager.Job) error {
					if active.Add(1) > 1 {
						overlap.Store(true)
					}

					defer active.Add(-1)

					return nil
				})
			})
		}

		wg.Wait()

		if overlap.Load() {
			t.Errorf("expected access to job to be exclusive")
		}
	})

	t.Run("Test remove", func(t *testing.T) {
		t.Parallel()

		r := jobmanager.NewRegistry()
		id := uuid.NewString()

		r.Insert(id, new(jobmanager.Job))

		if err := r.Remove(id, func(*jobmanager.Job) error {
			return jobmanager.ErrJobInProgress
		}); !errors.Is(err, jobmanager.ErrJobInProgress) {
			t.Errorf("expected to receive ErrJobInProgress: got '%v'", err)
		}

		if countJobs(r) != 1 {
			t.Errorf("expected job to remain after failed remove")
		}

		if err := r.Remove(id, func(*jobmanager.Job) error {
			return nil
		}); err != nil {
			t.Errorf("expected not to receive error: got '%v'", err)
		}

		if countJobs(r) != 0 {
			t.Errorf("expected job to be removed")
		}

		if err := r.Remove(id, func(*jobmanager.Job) error {
			return nil
		}); !errors.Is(err, jobmanager.ErrJobNotFound) {
			t.Errorf("expected to receive ErrJobNotFound: got '%v'", err)
		}

		// The id can be reused once removed.
		if err := r.Insert(id, new(jobmanager.Job)); err != nil {
			t.Errorf("expected not to receive error: got '%v'", err)
		}
	})

	t.Run("Test range visits all jobs", func(t *testing.T) {
		t.Parallel()

		r := jobmanager.NewRegistry()

		for range 5 {
			r.Insert(uuid.NewString(), new(jobmanager.Job))
		}

		visited := 0
		r.Range(func(*jobmanager.Job) {
			visited++
		})

		if visited != 5 {
			t.Errorf("expected to visit 5 jobs: got '%d'", visited)
		}
	})
}
