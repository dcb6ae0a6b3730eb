package probe

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

const (
	DefaultCommand = "osascript"
)

// Interpreter is the external automation bridge. The script body is passed
// as the last argument after Args.
type Interpreter struct {
	Command string
	Args    []string
	Env     []string
}

func DefaultInterpreter() *Interpreter {
	return &Interpreter{
		Command: DefaultCommand,
		Args:    []string{"-e"},
	}
}

// Exec runs script and waits for the interpreter to exit. No timeout is
// applied; only ctx cancellation stops a hung interpreter.
func (i *Interpreter) Exec(ctx context.Context, script string) Outcome {
	args := make([]string, 0, len(i.Args)+1)
	args = append(args, i.Args...)
	args = append(args, script)

	cmd := exec.CommandContext(ctx, i.Command, args...)
	if len(i.Env) > 0 {
		cmd.Env = append(os.Environ(), i.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return Succeeded(stdout.String())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Failed(stderr.String())
	}

	return Errored(errors.Wrapf(err, "failed to run interpreter %q", i.Command))
}
