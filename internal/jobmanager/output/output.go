// Package output provides streaming of process output from a file that is
// still being written to. Each reader receives the complete output from the
// beginning and follows the file until the process is finished.
package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"
)

// FinishedFunc reports whether the process writing the output has finished.
// Once it returns true, no more output will be written.
type FinishedFunc func() (bool, error)

// Follower reads a process' output file, blocking for new output while the
// process is running. It implements the io.ReadCloser interface. Not safe for
// concurrent reads.
type Follower struct {
	ctx      context.Context
	file     *os.File
	finished FinishedFunc
	interval time.Duration

	closed atomic.Bool
}

// Open opens the output file at path for following. finished is polled, at
// most once per interval, when the reader has caught up with the file.
func Open(
	ctx context.Context,
	path string,
	finished FinishedFunc,
	interval time.Duration,
) (*Follower, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("interval must be positive: got %s", interval)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return &Follower{
		ctx:      ctx,
		file:     f,
		finished: finished,
		interval: interval,
	}, nil
}

// Read reads the next available output into p. When all output written so far
// has been read, it blocks until more is written. It returns io.EOF once the
// process has finished and all output has been read, or the context error if
// the context is done first.
func (f *Follower) Read(p []byte) (int, error) {
	if f.closed.Load() {
		return 0, io.EOF
	}

	if len(p) == 0 {
		return 0, nil
	}

	for {
		n, err := f.read(p)
		if n > 0 || err != nil {
			return n, err
		}

		done, err := f.finished()
		if err != nil {
			return 0, err
		}

		// Output written before the process finished may have landed after the
		// last read.
		n, err = f.read(p)
		if n > 0 || err != nil {
			return n, err
		}

		if done {
			return 0, io.EOF
		}

		select {
		case <-f.ctx.Done():
			return 0, f.ctx.Err()
		case <-time.After(f.interval):
		}

		if f.closed.Load() {
			return 0, io.EOF
		}
	}
}

// read reads from the file, treating io.EOF as no data available.
func (f *Follower) read(p []byte) (int, error) {
	n, err := f.file.Read(p)
	if err == io.EOF {
		return n, nil
	}

	return n, err
}

// Close closes the underlying file. Calling Close more than once returns
// io.ErrClosedPipe.
func (f *Follower) Close() error {
	if f.closed.Swap(true) {
		return io.ErrClosedPipe
	}

	return f.file.Close()
}
