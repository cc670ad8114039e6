// Package jsdriver replays a recorded shift/reduce event script against
// a jsbuilder.Builder. It stands in for the external parser jsbuilder
// expects in production: this repository has no JavaScript grammar of
// its own, so tests build an Event slice by hand (or a small fixture
// generator) instead of driving the builder from a real lexer/parser.
package jsdriver

import (
	"fmt"

	"github.com/cwbudde/webfrontend/internal/jsast"
	"github.com/cwbudde/webfrontend/internal/jsbuilder"
	"github.com/cwbudde/webfrontend/internal/token"
)

// Event is one step of a recorded parse. Exactly one of Shift/Reduce
// should be set; Location, when set, updates the builder's position
// cursor before that step runs, the way an external parser would
// report its current offset ahead of a shift.
type Event struct {
	Location *token.Location
	Shift    *jsbuilder.Token
	Reduce   *jsbuilder.Rule
}

// At returns an Event that only advances the location cursor, for
// scripts that want to spell out whitespace/comment gaps explicitly.
func At(loc token.Location) Event {
	return Event{Location: &loc}
}

// Shift returns an Event that shifts a single token at the builder's
// current location cursor; it carries no location update (see ShiftAt).
func Shift(tok jsbuilder.Token) Event {
	return Event{Shift: &tok}
}

// ShiftAt is Shift with an explicit starting location.
func ShiftAt(loc token.Location, tok jsbuilder.Token) Event {
	return Event{Location: &loc, Shift: &tok}
}

// Reduce returns an Event that reduces by rule.
func Reduce(rule jsbuilder.Rule) Event {
	return Event{Reduce: &rule}
}

// Replay drives b through events in order and returns the finished
// tree. A Reduce that fails an early-error check stops the replay
// immediately and returns that error; a malformed event script (stack
// shape mismatch) panics, since fixing that is a test-authoring bug,
// not a recoverable condition.
func Replay(b *jsbuilder.Builder, events []Event) (*jsast.Node, error) {
	b.Start()
	for i, ev := range events {
		if ev.Shift == nil && ev.Reduce == nil && ev.Location == nil {
			return nil, fmt.Errorf("jsdriver: event %d is empty", i)
		}
		if ev.Location != nil {
			b.Location(*ev.Location)
		}
		if ev.Shift != nil {
			b.Shift(*ev.Shift)
		}
		if ev.Reduce != nil {
			if err := b.Reduce(*ev.Reduce); err != nil {
				return nil, fmt.Errorf("jsdriver: event %d (%s): %w", i, *ev.Reduce, err)
			}
		}
	}
	return b.Accept()
}
