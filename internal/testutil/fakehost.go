// Package testutil provides a scriptable executor.Host for tests.
package testutil

import (
	"context"
	"errors"
	"strings"
	"sync"

	"browsermgr/internal/executor"
)

// ErrCommandFailed is returned for commands scripted to fail and for unscripted queries.
var ErrCommandFailed = errors.New("command failed")

type response struct {
	output string
	err    error
}

// FakeHost records every command and answers from a script.
//
// Unscripted queries fail (nothing is installed), unscripted
// mutating commands succeed.
type FakeHost struct {
	mu        sync.Mutex
	commands  map[string]bool
	paths     map[string]bool
	responses map[string]response
	hooks     map[string][]func(*FakeHost)
	calls     []executor.Command
}

// NewFakeHost creates a host with no executables and no paths.
func NewFakeHost() *FakeHost {
	return &FakeHost{
		commands:  make(map[string]bool),
		paths:     make(map[string]bool),
		responses: make(map[string]response),
		hooks:     make(map[string][]func(*FakeHost)),
	}
}

// Key renders a command without elevation, the form used for scripting.
func Key(c executor.Command) string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// WithCommands marks executables as present on PATH.
func (h *FakeHost) WithCommands(names ...string) *FakeHost {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, n := range names {
		h.commands[n] = true
	}
	return h
}

// WithPaths marks filesystem paths as existing.
func (h *FakeHost) WithPaths(paths ...string) *FakeHost {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, p := range paths {
		h.paths[p] = true
	}
	return h
}

// Respond scripts a successful command with the given output.
func (h *FakeHost) Respond(cmdline, output string) *FakeHost {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.responses[cmdline] = response{output: output}
	return h
}

// Fail scripts a command to exit non-zero.
func (h *FakeHost) Fail(cmdline string) *FakeHost {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.responses[cmdline] = response{err: ErrCommandFailed}
	return h
}

// After registers fn to run after cmdline executes successfully.
func (h *FakeHost) After(cmdline string, fn func(*FakeHost)) *FakeHost {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks[cmdline] = append(h.hooks[cmdline], fn)
	return h
}

// CommandExists implements executor.Host.
func (h *FakeHost) CommandExists(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.commands[name]
}

// PathExists implements executor.Host.
func (h *FakeHost) PathExists(path string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.paths[path]
}

// Run implements executor.Host.
func (h *FakeHost) Run(_ context.Context, c executor.Command) error {
	_, err := h.exec(c, !c.ReadOnly)
	return err
}

// Output implements executor.Host.
func (h *FakeHost) Output(_ context.Context, c executor.Command) (string, error) {
	return h.exec(c, false)
}

func (h *FakeHost) exec(c executor.Command, succeedByDefault bool) (string, error) {
	key := Key(c)

	h.mu.Lock()
	h.calls = append(h.calls, c)
	resp, scripted := h.responses[key]
	hooks := h.hooks[key]
	h.mu.Unlock()

	if !scripted {
		if !succeedByDefault {
			return "", ErrCommandFailed
		}
		resp = response{}
	}

	if resp.err == nil {
		for _, fn := range hooks {
			fn(h)
		}
	}
	return resp.output, resp.err
}

// Calls returns every command executed so far.
func (h *FakeHost) Calls() []executor.Command {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]executor.Command, len(h.calls))
	copy(out, h.calls)
	return out
}

// CallLines returns the executed commands rendered with Key.
func (h *FakeHost) CallLines() []string {
	calls := h.Calls()
	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = Key(c)
	}
	return lines
}

// Ran reports whether cmdline was executed.
func (h *FakeHost) Ran(cmdline string) bool {
	for _, line := range h.CallLines() {
		if line == cmdline {
			return true
		}
	}
	return false
}

// Reset forgets recorded calls but keeps the script.
func (h *FakeHost) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = nil
}
