package output_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nixpig/worker/internal/jobmanager/output"
)

const testInterval = 5 * time.Millisecond

func writeTestFile(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "output.txt")

	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("expected not to receive error: got '%v'", err)
	}

	return path
}

func finishedWith(done *atomic.Bool) output.FinishedFunc {
	return func() (bool, error) {
		return done.Load(), nil
	}
}

func alwaysFinished() (bool, error) {
	return true, nil
}

func TestOutputFollower(t *testing.T) {
	t.Parallel()

	t.Run("Test basic scenarios", func(t *testing.T) {
		t.Parallel()

		scenarios := map[string]struct {
			payload []byte
			readers int
		}{
			"Single reader": {
				payload: []byte("Hello, world!"),
				readers: 1,
			},
			"Multiple readers": {
				payload: []byte("Hello, world!"),
				readers: 5,
			},
			"Empty data": {
				payload: []byte(""),
				readers: 1,
			},
			"Large data": {
				payload: bytes.Repeat([]byte("x"), 1024*1024),
				readers: 1,
			},
		}

		for scenario, config := range scenarios {
			t.Run(scenario, func(t *testing.T) {
				t.Parallel()

				path := writeTestFile(t, config.payload)

				errCh := make(chan error, config.readers)

				var wg sync.WaitGroup

				for range config.readers {
					wg.Go(func() {
						f, err := output.Open(
							t.Context(),
							path,
							alwaysFinished,
							testInterval,
						)
						if err != nil {
							errCh <- fmt.Errorf("expected open not to return error: got '%v'", err)
							return
						}
						defer f.Close()

						got, err := io.ReadAll(f)
						if err != nil {
							errCh <- fmt.Errorf("expected read all not to return error: got '%v'", err)
						}

						if !bytes.Equal(got, config.payload) {
							errCh <- fmt.Errorf(
								"expected data to match: got '%d' bytes, want '%d' bytes",
								len(got),
								len(config.payload),
							)
						}
					})
				}

				wg.Wait()

				close(errCh)

				for err := range errCh {
					t.Error(err)
				}
			})
		}
	})

	t.Run("Test follows output until finished", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, []byte("Hello, "))

		var done atomic.Bool

		f, err := output.Open(t.Context(), path, finishedWith(&done), testInterval)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}
		defer f.Close()

		readCh := make(chan []byte)
		errCh := make(chan error, 1)

		go func() {
			got, err := io.ReadAll(f)
			if err != nil {
				errCh <- err
				return
			}

			readCh <- got
		}()

		select {
		case <-readCh:
			t.Errorf("expected read not to return before finished")
		case err := <-errCh:
			t.Errorf("expected read not to return error: got '%v'", err)
		case <-time.After(50 * time.Millisecond):
			// Blocked waiting for more output.
		}

		w, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		w.Write([]byte("world!"))
		w.Close()

		done.Store(true)

		select {
		case got := <-readCh:
			if string(got) != "Hello, world!" {
				t.Errorf("expected output: got '%s', want 'Hello, world!'", got)
			}
		case err := <-errCh:
			t.Errorf("expected read not to return error: got '%v'", err)
		case <-time.After(time.Second):
			t.Errorf("expected read to end once finished")
		}
	})

	t.Run("Test read from closed follower", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, []byte("Hello, world!"))

		f, err := output.Open(t.Context(), path, alwaysFinished, testInterval)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		f.Close()

		n, err := f.Read(make([]byte, 8))

		if n != 0 {
			t.Errorf("expected to read zero bytes: got '%d'", n)
		}

		if err != io.EOF {
			t.Errorf("expected error to be EOF: got '%v'", err)
		}
	})

	t.Run("Test closing a closed follower", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, []byte("Hello, world!"))

		f, err := output.Open(t.Context(), path, alwaysFinished, testInterval)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if err := f.Close(); err != nil {
			t.Errorf("expected close not to return error: got '%v'", err)
		}

		if err := f.Close(); err != io.ErrClosedPipe {
			t.Errorf(
				"expected close error to be ErrClosedPipe: got '%v'",
				err,
			)
		}
	})

	t.Run("Test context cancelled while waiting", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, nil)

		var done atomic.Bool

		ctx, cancel := context.WithCancel(t.Context())

		f, err := output.Open(ctx, path, finishedWith(&done), testInterval)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}
		defer f.Close()

		time.AfterFunc(20*time.Millisecond, cancel)

		if _, err := f.Read(make([]byte, 8)); !errors.Is(err, context.Canceled) {
			t.Errorf("expected to receive context.Canceled: got '%v'", err)
		}
	})

	t.Run("Test finished error is returned", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, nil)

		errFinished := errors.New("job gone")

		f, err := output.Open(
			t.Context(),
			path,
			func() (bool, error) { return false, errFinished },
			testInterval,
		)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}
		defer f.Close()

		if _, err := f.Read(make([]byte, 8)); !errors.Is(err, errFinished) {
			t.Errorf("expected to receive finished error: got '%v'", err)
		}
	})

	t.Run("Test open errors", func(t *testing.T) {
		t.Parallel()

		if _, err := output.Open(
			t.Context(),
			filepath.Join(t.TempDir(), "missing.txt"),
			alwaysFinished,
			testInterval,
		); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected to receive ErrNotExist: got '%v'", err)
		}

		if _, err := output.Open(
			t.Context(),
			writeTestFile(t, nil),
			alwaysFinished,
			0,
		); err == nil {
			t.Errorf("expected to receive error for zero interval")
		}
	})
}
