// internal/generator/shell.go
package generator

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Command is one external process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string // empty means the current working directory
}

// String renders the command line the way a user would type it.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner executes a Command to completion.
type Runner interface {
	Run(ctx context.Context, c Command) (string, error)
}

// CommandError is returned when a process fails to start or exits nonzero.
type CommandError struct {
	Cmd    string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Cmd, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += "\n" + s
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

// ExecRunner runs commands as child processes.
type ExecRunner struct{}

// Run waits for c to exit and returns its stdout, or its stderr when stdout
// is empty.
func (ExecRunner) Run(ctx context.Context, c Command) (string, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.WithFields(log.Fields{"cmd": c.String(), "dir": c.Dir}).Debug("running command")
	if err := cmd.Run(); err != nil {
		log.WithError(err).WithField("cmd", c.String()).Debug("command failed")
		return "", &CommandError{Cmd: c.String(), Stderr: stderr.String(), Err: err}
	}

	if stdout.Len() > 0 {
		return stdout.String(), nil
	}
	return stderr.String(), nil
}
