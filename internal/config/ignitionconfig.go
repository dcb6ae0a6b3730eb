package config

import (
	"os"
	"strings"

	"github.com/cortexcapture/ctxprobe/internal/helper"
	"github.com/cortexcapture/ctxprobe/pkg/probe"
	"github.com/hashicorp/hcl"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// GenerateFromConfigDir decodes every .hcl file below configDir into
// ignitionConfig. Later files override fields set by earlier ones.
func (ignitionConfig *Ignition) GenerateFromConfigDir(configDir string) error {
	configDir = strings.TrimRight(configDir, "/")

	matches, err := findFilesInPath(configDir)
	if err != nil {
		return err
	}

	for _, m := range matches {
		log.Infof("found config file: %s", m)

		contents, err := os.ReadFile(m)
		if err != nil {
			return errors.Wrapf(err, "failed to read configuration file %s", m)
		}

		if err := hcl.Unmarshal(contents, ignitionConfig); err != nil {
			return errors.Wrapf(err, "could not parse configuration file %s", m)
		}
	}

	return nil
}

// BuildInterpreter returns the automation bridge described by the
// configuration, falling back to osascript for anything left unset.
func (ignitionConfig *Ignition) BuildInterpreter() *probe.Interpreter {
	interpreter := probe.DefaultInterpreter()

	cfg := ignitionConfig.Interpreter
	if cfg == nil {
		return interpreter
	}

	interpreter.Command = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.Command), probe.DefaultCommand, "command", "interpreter")
	if cfg.Args != nil {
		interpreter.Args = helper.ResolveEnvList(cfg.Args)
	}
	interpreter.Env = helper.ResolveEnvList(cfg.Env)

	return interpreter
}
