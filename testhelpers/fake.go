// Package testhelpers provides testing utilities for the ezgit CLI:
// scripted doubles for the git runner and prompter, and a real-repository
// fixture with assertions.
package testhelpers

import (
	"fmt"
	"strings"

	"ezgit.dev/ezgit/internal/branch"
)

// FakeRunner is a scripted git.Runner. Responses are keyed by the
// space-joined argument vector; every invocation is recorded in Calls.
type FakeRunner struct {
	// Outputs maps an argument vector to the captured output Output returns.
	Outputs map[string]string
	// Errors maps an argument vector to the error Output or Run returns.
	Errors map[string]error
	// Statuses maps an argument vector to the result Succeeds returns.
	// Unlisted vectors report false.
	Statuses map[string]bool
	// Calls records every invocation in order.
	Calls [][]string
}

// NewFakeRunner creates an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Outputs:  make(map[string]string),
		Errors:   make(map[string]error),
		Statuses: make(map[string]bool),
	}
}

func key(args []string) string {
	return strings.Join(args, " ")
}

func (r *FakeRunner) record(args []string) string {
	r.Calls = append(r.Calls, args)
	return key(args)
}

// Output implements git.Runner.
func (r *FakeRunner) Output(args ...string) (string, error) {
	k := r.record(args)
	if err, ok := r.Errors[k]; ok {
		return "", err
	}
	return r.Outputs[k], nil
}

// Run implements git.Runner.
func (r *FakeRunner) Run(args ...string) error {
	k := r.record(args)
	return r.Errors[k]
}

// Succeeds implements git.Runner.
func (r *FakeRunner) Succeeds(args ...string) (bool, error) {
	k := r.record(args)
	if err, ok := r.Errors[k]; ok {
		return false, err
	}
	return r.Statuses[k], nil
}

// Called reports whether the given argument vector was invoked.
func (r *FakeRunner) Called(args ...string) bool {
	k := key(args)
	for _, call := range r.Calls {
		if key(call) == k {
			return true
		}
	}
	return false
}

// FakePrompter is a scripted tui.Prompter. Each answer slice is consumed in
// order; running out of answers panics, which surfaces an unexpected prompt
// as a test failure. Every message shown is recorded. Errs is consumed one
// entry per prompt before the answer slices: a non-nil entry is returned
// instead of an answer, so a canceled or failed prompt can be scripted at
// any position.
type FakePrompter struct {
	Inputs   []string
	Confirms []bool
	Selects  []int
	Branches []string
	Errs     []error

	// Messages records every prompt message in the order shown.
	Messages []string
}

func (p *FakePrompter) nextErr() error {
	if len(p.Errs) == 0 {
		return nil
	}
	err := p.Errs[0]
	p.Errs = p.Errs[1:]
	return err
}

// Input implements tui.Prompter.
func (p *FakePrompter) Input(message, defaultValue string) (string, error) {
	p.Messages = append(p.Messages, message)
	if err := p.nextErr(); err != nil {
		return "", err
	}
	if len(p.Inputs) == 0 {
		panic(fmt.Sprintf("unexpected Input prompt: %q", message))
	}
	answer := p.Inputs[0]
	p.Inputs = p.Inputs[1:]
	return answer, nil
}

// Confirm implements tui.Prompter.
func (p *FakePrompter) Confirm(message string) (bool, error) {
	p.Messages = append(p.Messages, message)
	if err := p.nextErr(); err != nil {
		return false, err
	}
	if len(p.Confirms) == 0 {
		panic(fmt.Sprintf("unexpected Confirm prompt: %q", message))
	}
	answer := p.Confirms[0]
	p.Confirms = p.Confirms[1:]
	return answer, nil
}

// Select implements tui.Prompter.
func (p *FakePrompter) Select(message string, options []string, defaultIndex int) (int, error) {
	p.Messages = append(p.Messages, message)
	if err := p.nextErr(); err != nil {
		return 0, err
	}
	if len(p.Selects) == 0 {
		panic(fmt.Sprintf("unexpected Select prompt: %q", message))
	}
	answer := p.Selects[0]
	p.Selects = p.Selects[1:]
	return answer, nil
}

// SelectBranch implements tui.Prompter.
func (p *FakePrompter) SelectBranch(message string, choices []branch.Choice) (string, error) {
	p.Messages = append(p.Messages, message)
	if err := p.nextErr(); err != nil {
		return "", err
	}
	if len(p.Branches) == 0 {
		panic(fmt.Sprintf("unexpected SelectBranch prompt: %q", message))
	}
	answer := p.Branches[0]
	p.Branches = p.Branches[1:]
	return answer, nil
}
