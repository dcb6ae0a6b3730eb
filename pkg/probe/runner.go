package probe

import (
	"context"

	log "github.com/sirupsen/logrus"
)

type Runner struct {
	Interpreter *Interpreter
	View        *View
}

func NewRunner(interpreter *Interpreter, view *View) *Runner {
	return &Runner{
		Interpreter: interpreter,
		View:        view,
	}
}

// Run executes a single probe and prints its block. The outcome is returned
// for callers that want it, but nothing in it is ever fatal.
func (r *Runner) Run(ctx context.Context, d Descriptor) Outcome {
	l := log.WithFields(log.Fields{"kind": "probe", "probe.label": d.Label})

	r.View.Header(d.Label)
	l.WithField("interpreter", r.Interpreter.Command).Debug("executing probe")

	outcome := r.Interpreter.Exec(ctx, d.Script)
	r.View.Outcome(outcome)

	l.WithField("probe.outcome", outcome.Kind.String()).Debug("probe finished")
	return outcome
}

// RunAll runs probes sequentially in the given order. Earlier outcomes have
// no influence on later probes.
func (r *Runner) RunAll(ctx context.Context, probes []Descriptor) []Outcome {
	outcomes := make([]Outcome, 0, len(probes))

	for i := range probes {
		outcomes = append(outcomes, r.Run(ctx, probes[i]))
	}

	failed := 0
	for _, o := range outcomes {
		if !o.OK() {
			failed++
		}
	}

	log.WithFields(log.Fields{"kind": "probe", "total": len(outcomes), "failed": failed}).Info("all probes finished")
	return outcomes
}
