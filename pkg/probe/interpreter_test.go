package probe_test

import (
	"context"
	"testing"

	"github.com/cortexcapture/ctxprobe/pkg/probe"
	"github.com/stretchr/testify/assert"
)

func shell() *probe.Interpreter {
	return &probe.Interpreter{Command: "/bin/sh", Args: []string{"-c"}}
}

func TestInterpreterExecSuccess(t *testing.T) {
	o := shell().Exec(context.Background(), `echo "Google Chrome"`)

	assert.Equal(t, probe.Outcome{Kind: probe.Success, Text: "Google Chrome"}, o)
}

func TestInterpreterExecTrimsStdout(t *testing.T) {
	o := shell().Exec(context.Background(), `printf '  foo\n'`)

	assert.Equal(t, "foo", o.Text)
}

func TestInterpreterExecNonZeroExitIsFailure(t *testing.T) {
	o := shell().Exec(context.Background(), `echo "ignored"; echo "Application isn't running." >&2; exit 1`)

	assert.Equal(t, probe.Outcome{Kind: probe.Failure, Text: "Application isn't running."}, o)
	assert.Equal(t, "ERROR: Application isn't running.", o.String())
}

func TestInterpreterExecMissingExecutableIsException(t *testing.T) {
	i := &probe.Interpreter{Command: "ctxprobe-missing-interpreter", Args: []string{"-e"}}
	o := i.Exec(context.Background(), "return 1")

	assert.Equal(t, probe.Exception, o.Kind)
	assert.Contains(t, o.Text, "ctxprobe-missing-interpreter")
}

func TestInterpreterExecPassesEnv(t *testing.T) {
	i := shell()
	i.Env = []string{"CTXPROBE_TEST_VALUE=bridge"}

	o := i.Exec(context.Background(), `echo "$CTXPROBE_TEST_VALUE"`)

	assert.Equal(t, "bridge", o.Text)
}

func TestDefaultInterpreterUsesOsascript(t *testing.T) {
	i := probe.DefaultInterpreter()

	assert.Equal(t, "osascript", i.Command)
	assert.Equal(t, []string{"-e"}, i.Args)
	assert.Empty(t, i.Env)
}
