// Package jobmanager provides functionality for running and managing Linux
// processes as Jobs on behalf of an owner.
//
// A Job represents a process that can be started, stopped, and monitored. Its
// combined stdout/stderr is written to a single output file named after the
// Job's ID. Every operation on a Job, other than reading its ID, is checked
// against the owner that created it.
//
// A Registry holds Jobs by ID and serialises access to each of them. A Manager
// builds on a Registry to provide the create, query, stop and output
// operations consumed by the server.
package jobmanager
