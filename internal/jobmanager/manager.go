package jobmanager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/nixpig/worker/internal/jobmanager/output"
)

const defaultPollInterval = 100 * time.Millisecond

// Manager is responsible for creating and managing Jobs on behalf of their
// owners. Every operation takes the ID of the Job and the owner acting on it.
type Manager struct {
	jobs         *Registry
	outputDir    string
	pollInterval time.Duration
}

// Option configures a Manager.
type Option func(*Manager)

// WithPollInterval sets how often a stream of Job output checks for new
// output and for the Job finishing.
func WithPollInterval(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.pollInterval = d
		}
	}
}

// NewManager creates a new Manager that writes Job output files to outputDir.
func NewManager(outputDir string, opts ...Option) (*Manager, error) {
	if err := ValidateOutputDir(outputDir); err != nil {
		return nil, err
	}

	m := &Manager{
		jobs:         NewRegistry(),
		outputDir:    outputDir,
		pollInterval: defaultPollInterval,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// ValidateOutputDir checks that dir exists and is a directory.
func ValidateOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("output dir not valid at %s: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("output dir not valid at %s: not a directory", dir)
	}

	return nil
}

// RunJob creates and starts a new Job with the given id for owner. It returns
// ErrJobExists if a Job with the id already exists, in which case no process
// is started.
func (m *Manager) RunJob(id, owner, commandLine string) error {
	return m.jobs.InsertFunc(id, func() (*Job, error) {
		return NewJob(id, owner, commandLine, m.outputDir)
	})
}

// QueryJob returns the status of the Job with the given id.
func (m *Manager) QueryJob(id, owner string) (JobStatus, error) {
	var status JobStatus

	err := m.jobs.WithJob(id, func(j *Job) error {
		var err error
		status, err = j.Status(owner)
		return err
	})

	return status, err
}

// StopJob stops the Job with the given id.
func (m *Manager) StopJob(id, owner string) error {
	return m.jobs.WithJob(id, func(j *Job) error {
		return j.Stop(owner)
	})
}

// OutputPath returns the path of the output file of the Job with the given
// id.
func (m *Manager) OutputPath(id, owner string) (string, error) {
	var path string

	err := m.jobs.WithJob(id, func(j *Job) error {
		var err error
		path, err = j.Output(owner)
		return err
	})

	return path, err
}

// StreamJobOutput returns an io.ReadCloser of output from the Job with the
// given id.
//
// Read returns all output since the Job started and blocks waiting for new
// output until the Job reaches a terminal state, or ctx is done.
func (m *Manager) StreamJobOutput(
	ctx context.Context,
	id string,
	owner string,
) (io.ReadCloser, error) {
	path, err := m.OutputPath(id, owner)
	if err != nil {
		return nil, err
	}

	finished := func() (bool, error) {
		status, err := m.QueryJob(id, owner)
		if err != nil {
			return false, err
		}

		return status.Terminal(), nil
	}

	reader, err := output.Open(ctx, path, finished, m.pollInterval)
	if err != nil {
		return nil, NewIOError("open output file", err)
	}

	return reader, nil
}

// RemoveJob removes the Job with the given id and its output file. It returns
// ErrJobInProgress if the Job hasn't reached a terminal state.
func (m *Manager) RemoveJob(id, owner string) error {
	var path string

	if err := m.jobs.Remove(id, func(j *Job) error {
		status, err := j.Status(owner)
		if err != nil {
			return err
		}

		if !status.Terminal() {
			return fmt.Errorf("%w: %s", ErrJobInProgress, id)
		}

		path = j.outputPath

		return nil
	}); err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return NewIOError("remove output file", err)
	}

	return nil
}

// Shutdown makes a 'best effort' attempt to stop any running Jobs managed by
// the Manager.
func (m *Manager) Shutdown() {
	m.jobs.Range(func(j *Job) {
		// NOTE: Shutdown isn't acting on behalf of any owner and errors are
		// ignored.
		j.kill()
	})
}
