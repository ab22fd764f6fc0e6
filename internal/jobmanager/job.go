package jobmanager

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Job represents a process executed using exec.Cmd on behalf of an owner. The
// process' combined stdout/stderr is written to a single output file.
//
// Completion is detected by polling: the process is only reaped when Status is
// called. A Job is not safe for concurrent use; a Registry serialises access
// to the Jobs it holds.
type Job struct {
	id         string
	owner      string
	outputPath string

	// cmd is nil once the Job reaches a terminal state.
	cmd    *exec.Cmd
	status JobStatus
}

// NewJob parses commandLine, creates the output file for the Job in outputDir
// and starts the process. Both stdout and stderr of the process are
// redirected to the output file.
//
// If the process can't be started, the output file is removed and no Job is
// returned. The error is ErrInvalidCommand if commandLine contains no program,
// ErrCommandNotFound if the program doesn't exist, or an IOError.
func NewJob(id, owner, commandLine, outputDir string) (*Job, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	program, args, err := parseCommandLine(commandLine)
	if err != nil {
		return nil, err
	}

	outputPath := filepath.Join(outputDir, OutputFileName(id))

	output, err := os.Create(outputPath)
	if err != nil {
		return nil, NewIOError("create output file", err)
	}

	cmd := exec.Command(program, args...)
	cmd.Stdout = output
	cmd.Stderr = output

	if err := cmd.Start(); err != nil {
		output.Close()
		os.Remove(outputPath)

		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrCommandNotFound, err)
		}

		return nil, NewIOError("start process", err)
	}

	// The child has its own copy of the descriptor.
	output.Close()

	return &Job{
		id:         id,
		owner:      owner,
		outputPath: outputPath,
		cmd:        cmd,
		status:     inProgressStatus(),
	}, nil
}

// ID returns the ID of the Job.
func (j *Job) ID() string {
	return j.id
}

// Status returns the status of the Job. If the Job is in progress, it checks
// without blocking whether the process has exited and, if so, records the
// exit status. Returns ErrUnauthorized if asUser is not the owner.
func (j *Job) Status(asUser string) (JobStatus, error) {
	if err := j.authorise(asUser); err != nil {
		return JobStatus{}, err
	}

	if j.status.State == JobStateInProgress {
		j.poll()
	}

	return j.status, nil
}

// Stop sends SIGKILL to the process of an in-progress Job and returns without
// waiting for it to exit. The exit is recorded by a later call to Status.
// Stopping a Job in a terminal state does nothing. Returns ErrUnauthorized if
// asUser is not the owner.
func (j *Job) Stop(asUser string) error {
	if err := j.authorise(asUser); err != nil {
		return err
	}

	if j.status.State != JobStateInProgress {
		return nil
	}

	if err := j.cmd.Process.Kill(); err != nil {
		j.finish(failedStatus())
	}

	return nil
}

// Output returns the path of the file containing the combined output of the
// Job, whatever its state. Returns ErrUnauthorized if asUser is not the owner.
func (j *Job) Output(asUser string) (string, error) {
	if err := j.authorise(asUser); err != nil {
		return "", err
	}

	return j.outputPath, nil
}

func (j *Job) authorise(asUser string) error {
	if asUser != j.owner {
		return ErrUnauthorized
	}

	return nil
}

// poll reaps the process if it has exited. It uses wait4 directly since
// exec.Cmd only offers a blocking Wait.
func (j *Job) poll() {
	var ws unix.WaitStatus

	for {
		pid, err := unix.Wait4(j.cmd.Process.Pid, &ws, unix.WNOHANG, nil)
		if err == unix.EINTR {
			continue
		}

		if err != nil {
			j.finish(failedStatus())
			return
		}

		if pid == 0 {
			// Still running.
			return
		}

		break
	}

	switch {
	case ws.Exited():
		j.finish(exitedStatus(ws.ExitStatus()))
	case ws.Signaled():
		j.finish(signalledStatus(ws.Signal()))
	}
}

// kill sends SIGKILL to the process of an in-progress Job without checking
// the owner. Errors are ignored.
func (j *Job) kill() {
	if j.status.State == JobStateInProgress {
		j.cmd.Process.Kill()
	}
}

func (j *Job) finish(status JobStatus) {
	j.status = status

	if j.cmd != nil && j.cmd.Process != nil {
		j.cmd.Process.Release()
	}

	j.cmd = nil
}
