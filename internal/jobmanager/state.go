package jobmanager

import (
	"fmt"
	"syscall"
)

type JobState int

const (
	// JobStateUnknown indicates the state of the job is unknown. It's used as
	// the zero value for functions that return a (possibly absent) JobState.
	JobStateUnknown JobState = iota

	// JobStateInProgress indicates the process has been started and its exit
	// has not yet been observed.
	JobStateInProgress

	// JobStateFailed indicates the exit status of the process could not be
	// determined, e.g. waiting on or signalling the process failed.
	JobStateFailed

	// JobStateDone indicates the process has exited and its exit status has
	// been recorded.
	JobStateDone
)

// NOTE: This slice needs to be kept in sync with any changes to the JobState
// values.
var jobStates = []string{
	"Unknown",
	"InProgress",
	"Failed",
	"Done",
}

// String implements the Stringer interface for JobState and returns a string
// representation of the JobState by using the int value to index into a slice.
func (s JobState) String() string {
	if int(s) < 0 || int(s) >= len(jobStates) {
		return jobStates[0]
	}

	return jobStates[s]
}

// Terminal reports whether no further transitions are possible from s.
func (s JobState) Terminal() bool {
	return s == JobStateFailed || s == JobStateDone
}

// JobStatus represents the status of a Job. ExitCode is only meaningful when
// the process exited normally and Signal only when it was killed by a signal;
// otherwise they hold -1 and 0 respectively.
type JobStatus struct {
	State    JobState
	ExitCode int
	Signal   syscall.Signal
}

func inProgressStatus() JobStatus {
	return JobStatus{State: JobStateInProgress, ExitCode: -1}
}

func failedStatus() JobStatus {
	return JobStatus{State: JobStateFailed, ExitCode: -1}
}

func exitedStatus(code int) JobStatus {
	return JobStatus{State: JobStateDone, ExitCode: code}
}

func signalledStatus(sig syscall.Signal) JobStatus {
	return JobStatus{State: JobStateDone, ExitCode: -1, Signal: sig}
}

// Terminal reports whether the status is Done or Failed.
func (s JobStatus) Terminal() bool {
	return s.State.Terminal()
}

// Succeeded reports whether the process exited normally with exit code 0.
func (s JobStatus) Succeeded() bool {
	return s.State == JobStateDone && s.Signal == 0 && s.ExitCode == 0
}

func (s JobStatus) String() string {
	switch s.State {
	case JobStateInProgress:
		return "IN_PROGRESS"
	case JobStateFailed:
		return "FAILED"
	case JobStateDone:
		if s.Signal != 0 {
			return fmt.Sprintf("DONE(signal: %s)", s.Signal)
		}

		return fmt.Sprintf("DONE(exit status %d)", s.ExitCode)
	default:
		return "UNKNOWN"
	}
}
