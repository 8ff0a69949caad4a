// Package executor handles command execution with privilege escalation support.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"browsermgr/internal/log"
)

// Host is everything the engine needs from the machine it runs on.
// Command failures are returned as errors; callers decide whether they matter.
type Host interface {
	// CommandExists reports whether an executable is on PATH. It never fails.
	CommandExists(name string) bool

	// PathExists reports whether a filesystem path exists.
	PathExists(path string) bool

	// Run executes a command, streaming its output to the terminal unless it is read-only.
	Run(ctx context.Context, cmd Command) error

	// Output executes a command and returns its trimmed stdout.
	Output(ctx context.Context, cmd Command) (string, error)
}

// Command describes a single external process invocation.
type Command struct {
	Name string
	Args []string

	// Sudo requests elevation when not already running as root.
	Sudo bool

	// ReadOnly marks a query: its output is discarded and it runs even in dry-run mode.
	ReadOnly bool

	// Stdin is fed to the process when set; otherwise the terminal's stdin is attached.
	Stdin string

	// Dir is the working directory.
	Dir string
}

// Cmd builds an unprivileged command.
func Cmd(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// Sudo builds a command that runs with elevated privileges.
func Sudo(name string, args ...string) Command {
	return Command{Name: name, Args: args, Sudo: true}
}

// Query builds a read-only command.
func Query(name string, args ...string) Command {
	return Command{Name: name, Args: args, ReadOnly: true}
}

// In returns a copy of c that runs in dir.
func (c Command) In(dir string) Command {
	c.Dir = dir
	return c
}

// WithStdin returns a copy of c that reads input from s.
func (c Command) WithStdin(s string) Command {
	c.Stdin = s
	return c
}

// String renders the command the way a user would type it.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+2)
	if c.Sudo {
		parts = append(parts, "sudo")
	}
	parts = append(parts, c.Name)
	parts = append(parts, c.Args...)
	return strings.Join(parts, " ")
}

// Executor is the Host implementation backed by the real system.
type Executor struct {
	dryRun  bool
	verbose bool
}

// New creates a new Executor with the given options.
func New(dryRun, verbose bool) *Executor {
	return &Executor{
		dryRun:  dryRun,
		verbose: verbose,
	}
}

// DryRun reports whether mutating commands are only printed.
func (e *Executor) DryRun() bool {
	return e.dryRun
}

// CommandExists reports whether name resolves on PATH.
func (e *Executor) CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	log.Debug("lookup %s: %v", name, err == nil)
	return err == nil
}

// PathExists reports whether path exists.
func (e *Executor) PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Run executes cmd. Read-only queries run silently; everything else streams to the terminal.
func (e *Executor) Run(ctx context.Context, c Command) error {
	if e.dryRun && !c.ReadOnly {
		e.printDryRun(c)
		return nil
	}

	cmd, err := e.build(ctx, c)
	if err != nil {
		return err
	}

	if c.ReadOnly {
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
	} else {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if e.verbose {
			e.printExecuting(c)
		}
	}

	err = cmd.Run()
	log.Debug("exec %q: %v", c.String(), err)
	return err
}

// Output runs cmd and returns its trimmed stdout. Stderr is suppressed.
// Unprivileged queries run even in dry-run mode since they cannot change the system.
func (e *Executor) Output(ctx context.Context, c Command) (string, error) {
	if e.dryRun && c.Sudo {
		e.printDryRun(c)
		return "", nil
	}

	cmd, err := e.build(ctx, c)
	if err != nil {
		return "", err
	}

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err = cmd.Run()
	log.Debug("query %q: %v", c.String(), err)
	return strings.TrimSpace(stdout.String()), err
}

// build resolves elevation and wires stdin and the working directory.
func (e *Executor) build(ctx context.Context, c Command) (*exec.Cmd, error) {
	var cmd *exec.Cmd
	switch {
	case !c.Sudo || isRoot():
		cmd = exec.CommandContext(ctx, c.Name, c.Args...)
	case hasSudo():
		sudoArgs := append([]string{c.Name}, c.Args...)
		cmd = exec.CommandContext(ctx, "sudo", sudoArgs...)
	default:
		return nil, ErrNoPrivileges
	}

	if c.Stdin != "" {
		cmd.Stdin = strings.NewReader(c.Stdin)
	} else if !c.ReadOnly {
		cmd.Stdin = os.Stdin
	}
	cmd.Dir = c.Dir

	return cmd, nil
}

func (e *Executor) printExecuting(c Command) {
	switch {
	case c.Sudo && isRoot():
		fmt.Printf("Executing (as root): %s %s\n", c.Name, strings.Join(c.Args, " "))
	case c.Sudo:
		fmt.Printf("Executing (with sudo): %s %s\n", c.Name, strings.Join(c.Args, " "))
	default:
		fmt.Printf("Executing: %s %s\n", c.Name, strings.Join(c.Args, " "))
	}
}

func (e *Executor) printDryRun(c Command) {
	if c.Sudo && isRoot() {
		fmt.Printf("[dry-run] Would execute (as root): %s %s\n", c.Name, strings.Join(c.Args, " "))
		return
	}
	fmt.Printf("[dry-run] Would execute: %s\n", c.String())
}
