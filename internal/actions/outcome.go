// Package actions implements the workflows behind each command. Every action
// takes a runtime.Context plus an Options struct and returns an error; only
// the command layer decides exit codes.
package actions

// Outcome tells a workflow whether to keep going after a guard step.
type Outcome int

const (
	// Continue means the guard resolved the situation and the workflow
	// should proceed.
	Continue Outcome = iota
	// Abort means the workflow should stop without error.
	Abort
)
