package probe

import "strings"

// Descriptor is a single unit of work sent to the automation bridge.
type Descriptor struct {
	Label  string
	Script string
}

type OutcomeKind int

const (
	Success OutcomeKind = iota
	Failure
	Exception
)

func (k OutcomeKind) String() string {
	switch k {
	case Success:
		return "SUCCESS"
	case Failure:
		return "ERROR"
	default:
		return "EXCEPTION"
	}
}

// Outcome is the result of exactly one probe. A failed launch is an
// Exception carrying the error description, never a Go error.
type Outcome struct {
	Kind OutcomeKind
	Text string
}

func Succeeded(stdout string) Outcome {
	return Outcome{Kind: Success, Text: strings.TrimSpace(stdout)}
}

func Failed(stderr string) Outcome {
	return Outcome{Kind: Failure, Text: strings.TrimSpace(stderr)}
}

func Errored(err error) Outcome {
	return Outcome{Kind: Exception, Text: err.Error()}
}

func (o Outcome) OK() bool {
	return o.Kind == Success
}

func (o Outcome) String() string {
	return o.Kind.String() + ": " + o.Text
}
