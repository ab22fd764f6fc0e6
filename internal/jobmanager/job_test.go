package jobmanager_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nixpig/worker/internal/jobmanager"
)

const (
	alice = "alice"
	bob   = "bob"
)

func newTestJob(t *testing.T, commandLine string) *jobmanager.Job {
	t.Helper()

	id := uuid.NewString()

	job, err := jobmanager.NewJob(id, alice, commandLine, t.TempDir())
	if err != nil {
		t.Fatalf("expected not to receive error: got '%v'", err)
	}

	gotID := job.ID()
	if gotID != id {
		t.Errorf("expected job id: got '%s', want '%s'", gotID, id)
	}

	t.Cleanup(func() {
		job.Stop(alice)
		waitForTerminal(t, job)
	})

	return job
}

func waitForTerminal(t *testing.T, job *jobmanager.Job) jobmanager.JobStatus {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)

	for {
		status, err := job.Status(alice)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if status.Terminal() {
			return status
		}

		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for terminal state: got '%s'", status)
		}

		time.Sleep(10 * time.Millisecond)
	}
}

func testJobStatus(
	t *testing.T,
	got jobmanager.JobStatus,
	want jobmanager.JobStatus,
) {
	t.Helper()

	if got.State != want.State {
		t.Errorf("expected state: got '%s', want '%s'", got.State, want.State)
	}

	if got.ExitCode != want.ExitCode {
		t.Errorf(
			"expected exit code: got '%d', want '%d'",
			got.ExitCode,
			want.ExitCode,
		)
	}

	if got.Signal != want.Signal {
		t.Errorf(
			"expected signal: got '%v', want '%v'",
			got.Signal,
			want.Signal,
		)
	}
}

func TestJob(t *testing.T) {
	t.Parallel()

	t.Run("Test initial state", func(t *testing.T) {
		t.Parallel()

		job := newTestJob(t, "sleep 30")

		status, err := job.Status(alice)
		if err != nil {
			t.Errorf("expected not to receive error: got '%v'", err)
		}

		testJobStatus(t, status, jobmanager.JobStatus{
			State:    jobmanager.JobStateInProgress,
			ExitCode: -1,
		})
	})

	t.Run("Test run to successful completion", func(t *testing.T) {
		t.Parallel()

		job := newTestJob(t, "true")

		status := waitForTerminal(t, job)

		testJobStatus(t, status, jobmanager.JobStatus{
			State:    jobmanager.JobStateDone,
			ExitCode: 0,
		})

		if !status.Succeeded() {
			t.Errorf("expected job to succeed: got '%s'", status)
		}
	})

	t.Run("Test run to failed completion", func(t *testing.T) {
		t.Parallel()

		job := newTestJob(t, "false")

		status := waitForTerminal(t, job)

		testJobStatus(t, status, jobmanager.JobStatus{
			State:    jobmanager.JobStateDone,
			ExitCode: 1,
		})

		if status.Succeeded() {
			t.Errorf("expected job not to succeed: got '%s'", status)
		}
	})

	t.Run("Test stop long-running program", func(t *testing.T) {
		t.Parallel()

		job := newTestJob(t, "sleep 100")

		status, err := job.Status(alice)
		if err != nil {
			t.Errorf("expected not to receive error: got '%v'", err)
		}

		if status.State != jobmanager.JobStateInProgress {
			t.Errorf(
				"expected state: got '%s', want '%s'",
				status.State,
				jobmanager.JobStateInProgress,
			)
		}

		if err := job.Stop(alice); err != nil {
			t.Errorf("expected not to receive error: got '%v'", err)
		}

		status = waitForTerminal(t, job)

		testJobStatus(t, status, jobmanager.JobStatus{
			State:    jobmanager.JobStateDone,
			ExitCode: -1,
			Signal:   syscall.SIGKILL,
		})

		if status.Succeeded() {
			t.Errorf("expected stopped job not to succeed: got '%s'", status)
		}
	})

	t.Run("Test terminal state is stable", func(t *testing.T) {
		t.Parallel()

		job := newTestJob(t, "false")

		want := waitForTerminal(t, job)

		for range 10 {
			got, err := job.Status(alice)
			if err != nil {
				t.Errorf("expected not to receive error: got '%v'", err)
			}

			if got != want {
				t.Errorf("expected status: got '%s', want '%s'", got, want)
			}
		}
	})

	t.Run("Test stop is idempotent", func(t *testing.T) {
		t.Parallel()

		job := newTestJob(t, "sleep 100")

		for range 2 {
			if err := job.Stop(alice); err != nil {
				t.Errorf("expected not to receive error: got '%v'", err)
			}
		}

		waitForTerminal(t, job)

		for range 2 {
			if err := job.Stop(alice); err != nil {
				t.Errorf("expected not to receive error: got '%v'", err)
			}
		}
	})

	t.Run("Test output path regardless of state", func(t *testing.T) {
		t.Parallel()

		job := newTestJob(t, "sleep 100")

		running, err := job.Output(alice)
		if err != nil {
			t.Errorf("expected not to receive error: got '%v'", err)
		}

		if filepath.Base(running) != jobmanager.OutputFileName(job.ID()) {
			t.Errorf(
				"expected output file name: got '%s', want '%s'",
				filepath.Base(running),
				jobmanager.OutputFileName(job.ID()),
			)
		}

		job.Stop(alice)
		waitForTerminal(t, job)

		done, err := job.Output(alice)
		if err != nil {
			t.Errorf("expected not to receive error: got '%v'", err)
		}

		if done != running {
			t.Errorf("expected output path: got '%s', want '%s'", done, running)
		}
	})

	t.Run("Test output captures stdout", func(t *testing.T) {
		t.Parallel()

		job := newTestJob(t, "echo Hello, world!")

		waitForTerminal(t, job)

		path, _ := job.Output(alice)

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if string(got) != "Hello, world!\n" {
			t.Errorf("expected output: got '%s', want 'Hello, world!\n'", got)
		}
	})

	t.Run("Test output captures stderr", func(t *testing.T) {
		t.Parallel()

		job := newTestJob(t, "ls /non-existent-dir")

		status := waitForTerminal(t, job)
		if status.Succeeded() {
			t.Errorf("expected job not to succeed: got '%s'", status)
		}

		path, _ := job.Output(alice)

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if !strings.Contains(string(got), "non-existent-dir") {
			t.Errorf("expected stderr in output: got '%s'", got)
		}
	})

	t.Run("Test quotes are not interpreted", func(t *testing.T) {
		t.Parallel()

		job := newTestJob(t, `echo "a    b"`)

		waitForTerminal(t, job)

		path, _ := job.Output(alice)

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("expected not to receive error: got '%v'", err)
		}

		if string(got) != "\"a b\"\n" {
			t.Errorf("expected output: got '%s', want '\"a b\"\n'", got)
		}
	})

	t.Run("Test non-owner is unauthorized", func(t *testing.T) {
		t.Parallel()

		job := newTestJob(t, "sleep 100")

		if _, err := job.Status(bob); !errors.Is(err, jobmanager.ErrUnauthorized) {
			t.Errorf("expected to receive ErrUnauthorized: got '%v'", err)
		}

		if err := job.Stop(bob); !errors.Is(err, jobmanager.ErrUnauthorized) {
			t.Errorf("expected to receive ErrUnauthorized: got '%v'", err)
		}

		if _, err := job.Output(bob); !errors.Is(err, jobmanager.ErrUnauthorized) {
			t.Errorf("expected to receive ErrUnauthorized: got '%v'", err)
		}

		// Stop by a non-owner must not have signalled the process.
		time.Sleep(50 * time.Millisecond)

		status, err := job.Status(alice)
		if err != nil {
			t.Errorf("expected not to receive error: got '%v'", err)
		}

		if status.State != jobmanager.JobStateInProgress {
			t.Errorf(
				"expected state: got '%s', want '%s'",
				status.State,
				jobmanager.JobStateInProgress,
			)
		}
	})

	t.Run("Test non-owner can't observe terminal transition", func(t *testing.T) {
		t.Parallel()

		job := newTestJob(t, "true")

		time.Sleep(50 * time.Millisecond)

		status, err := job.Status(bob)
		if !errors.Is(err, jobmanager.ErrUnauthorized) {
			t.Errorf("expected to receive ErrUnauthorized: got '%v'", err)
		}

		if status != (jobmanager.JobStatus{}) {
			t.Errorf("expected zero status: got '%s'", status)
		}
	})
}

func TestNewJobErrors(t *testing.T) {
	t.Parallel()

	scenarios := map[string]struct {
		id          string
		commandLine string
		wantErr     error
	}{
		"Test empty command line": {
			id:          uuid.NewString(),
			commandLine: "",
			wantErr:     jobmanager.ErrInvalidCommand,
		},
		"Test whitespace command line": {
			id:          uuid.NewString(),
			commandLine: " \t  ",
			wantErr:     jobmanager.ErrInvalidCommand,
		},
		"Test non-existent program": {
			id:          uuid.NewString(),
			commandLine: "nope-no-such-binary",
			wantErr:     jobmanager.ErrCommandNotFound,
		},
		"Test non-existent program path": {
			id:          uuid.NewString(),
			commandLine: "/nope/no-such-binary -s",
			wantErr:     jobmanager.ErrCommandNotFound,
		},
		"Test empty id": {
			id:          "",
			commandLine: "true",
			wantErr:     jobmanager.ErrInvalidID,
		},
		"Test id with path separator": {
			id:          "../escape",
			commandLine: "true",
			wantErr:     jobmanager.ErrInvalidID,
		},
	}

	for scenario, config := range scenarios {
		t.Run(scenario, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()

			job, err := jobmanager.NewJob(config.id, alice, config.commandLine, dir)
			if !errors.Is(err, config.wantErr) {
				t.Errorf("expected error: got '%v', want '%v'", err, config.wantErr)
			}

			if job != nil {
				t.Errorf("expected no job: got '%v'", job)
			}

			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatalf("expected not to receive error: got '%v'", err)
			}

			if len(entries) != 0 {
				t.Errorf("expected no output file: got '%d' entries", len(entries))
			}
		})
	}

	t.Run("Test output dir doesn't exist", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "missing")

		_, err := jobmanager.NewJob(uuid.NewString(), alice, "true", dir)
		if !errors.As(err, new(jobmanager.IOError)) {
			t.Errorf("expected to receive IOError: got '%v'", err)
		}
	})
}

func TestJobStatusString(t *testing.T) {
	t.Parallel()

	scenarios := map[string]struct {
		status jobmanager.JobStatus
		want   string
	}{
		"Test unknown": {
			status: jobmanager.JobStatus{},
			want:   "UNKNOWN",
		},
		"Test in progress": {
			status: jobmanager.JobStatus{State: jobmanager.JobStateInProgress},
			want:   "IN_PROGRESS",
		},
		"Test failed": {
			status: jobmanager.JobStatus{State: jobmanager.JobStateFailed},
			want:   "FAILED",
		},
		"Test done with exit code": {
			status: jobmanager.JobStatus{State: jobmanager.JobStateDone, ExitCode: 2},
			want:   "DONE(exit status 2)",
		},
		"Test done with signal": {
			status: jobmanager.JobStatus{
				State:    jobmanager.JobStateDone,
				ExitCode: -1,
				Signal:   syscall.SIGKILL,
			},
			want: "DONE(signal: killed)",
		},
	}

	for scenario, config := range scenarios {
		t.Run(scenario, func(t *testing.T) {
			t.Parallel()

			if got := config.status.String(); got != config.want {
				t.Errorf("expected string: got '%s', want '%s'", got, config.want)
			}
		})
	}

	t.Run("Test out of range state", func(t *testing.T) {
		t.Parallel()

		if got := jobmanager.JobState(99).String(); got != "Unknown" {
			t.Errorf("expected string: got '%s', want 'Unknown'", got)
		}
	})
}
