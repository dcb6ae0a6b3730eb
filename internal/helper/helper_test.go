package helper_test

import (
	"os"
	"testing"

	"github.com/cortexcapture/ctxprobe/internal/helper"
	"github.com/stretchr/testify/assert"
)

func TestResolveEnvReadsPrefixedVariable(t *testing.T) {
	t.Setenv("CTXPROBE_HELPER_TEST", "/usr/bin/osascript")

	assert.Equal(t, "/usr/bin/osascript", helper.ResolveEnv("ENV:CTXPROBE_HELPER_TEST"))
}

func TestResolveEnvKeepsPlainValue(t *testing.T) {
	assert.Equal(t, "osascript", helper.ResolveEnv("osascript"))
}

func TestResolveEnvMissingVariableIsEmpty(t *testing.T) {
	_ = os.Unsetenv("CTXPROBE_HELPER_UNSET")

	assert.Equal(t, "", helper.ResolveEnv("ENV:CTXPROBE_HELPER_UNSET"))
}

func TestResolveEnvList(t *testing.T) {
	t.Setenv("CTXPROBE_HELPER_ARG", "-l")

	assert.Nil(t, helper.ResolveEnvList(nil))
	assert.Equal(t, []string{"-l", "AppleScript"}, helper.ResolveEnvList([]string{"ENV:CTXPROBE_HELPER_ARG", "AppleScript"}))
}

func TestSetDefaultStringIfEmpty(t *testing.T) {
	assert.Equal(t, "osascript", helper.SetDefaultStringIfEmpty("", "osascript", "command", "interpreter"))
	assert.Equal(t, "/bin/sh", helper.SetDefaultStringIfEmpty("/bin/sh", "osascript", "command", "interpreter"))
}
