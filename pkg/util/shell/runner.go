package shell

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes shell command lines on the host being validated.
type Runner interface {
	// Run executes command through the shell and returns its combined output.
	// A non-zero exit status is reported as an error.
	Run(ctx context.Context, command string) (string, error)
}

// Exec runs commands through /bin/sh -c so that pipelines such as
// "sysctl --all | grep ..." behave as they would in a terminal.
type Exec struct {
	// Shell overrides the interpreter, defaults to /bin/sh.
	Shell string
}

// NewExec creates a Runner backed by os/exec.
func NewExec() *Exec {
	return &Exec{Shell: "/bin/sh"}
}

// Run executes command and returns its trimmed combined output.
func (e *Exec) Run(ctx context.Context, command string) (string, error) {
	sh := e.Shell
	if sh == "" {
		sh = "/bin/sh"
	}

	var buf bytes.Buffer

	cmd := exec.CommandContext(ctx, sh, "-c", command)
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Run(); err != nil {
		return strings.TrimSpace(buf.String()), fmt.Errorf("running %q: %w", command, err)
	}

	return strings.TrimSpace(buf.String()), nil
}

// Succeeds reports whether command exits with status zero.
func Succeeds(ctx context.Context, r Runner, command string) bool {
	_, err := r.Run(ctx, command)

	return err == nil
}

// HasBinary reports whether name resolves on the PATH of the target shell.
func HasBinary(ctx context.Context, r Runner, name string) bool {
	return Succeeds(ctx, r, "which "+name)
}
