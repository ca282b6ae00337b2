package gateway

import (
	"errors"
	"fmt"
)

// DisabledMessage is returned for every call while no model client exists.
const DisabledMessage = "cannot connect to AI service, check your API key"

// ErrorPrefix starts every flattened failure.
const ErrorPrefix = "AI Error:"

var errUnknownFailure = errors.New("unknown error")

// Outcome tags how a completion ended.
type Outcome int

const (
	// OutcomeText carries the model reply.
	OutcomeText Outcome = iota
	// OutcomeDisabled means no call was attempted.
	OutcomeDisabled
	// OutcomeFailed means the remote call or its decoding failed.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeText:
		return "text"
	case OutcomeDisabled:
		return "disabled"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the tagged outcome of Complete.
type Result struct {
	Outcome Outcome
	Text    string
	Err     error
}

// Succeeded reports whether the model produced a reply.
func (r Result) Succeeded() bool {
	return r.Outcome == OutcomeText
}

// String flattens the result into the text shown to users.
func (r Result) String() string {
	switch r.Outcome {
	case OutcomeText:
		return r.Text
	case OutcomeDisabled:
		return DisabledMessage
	default:
		err := r.Err
		if err == nil {
			err = errUnknownFailure
		}
		return fmt.Sprintf("%s AI request failed: %v. Check your API key or question.", ErrorPrefix, err)
	}
}

func textResult(text string) Result {
	return Result{Outcome: OutcomeText, Text: text}
}

func failedResult(err error) Result {
	return Result{Outcome: OutcomeFailed, Err: err}
}
