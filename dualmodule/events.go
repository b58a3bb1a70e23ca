package dualmodule

import (
	"github.com/mwpf-decode/mwpf/hypergraph"
	"github.com/mwpf-decode/mwpf/rational"
)

// EventKind tags the reason a single edge or dual node bounds the next
// growth step.
type EventKind int

const (
	// EventUnbounded means this edge/node imposes no bound at all.
	EventUnbounded EventKind = iota
	// EventValidGrow means this edge/node allows growth up to Length before
	// something happens.
	EventValidGrow
	// EventConflicting means an edge would go tight (or past tight) at the
	// reported step; Edge names which one.
	EventConflicting
	// EventShrinkProhibited means a dual node already at zero was asked to
	// shrink further; Node names which one.
	EventShrinkProhibited
)

// MaxUpdateLength is one edge's or dual node's verdict on how far the
// current growth direction may advance.
type MaxUpdateLength struct {
	Kind   EventKind
	Length rational.Rational    // meaningful iff Kind == EventValidGrow
	Edge   hypergraph.EdgeIndex // meaningful iff Kind == EventConflicting
	Node   uint64               // meaningful iff Kind == EventShrinkProhibited
}

func unboundedEvent() MaxUpdateLength { return MaxUpdateLength{Kind: EventUnbounded} }

func validGrowEvent(length rational.Rational) MaxUpdateLength {
	return MaxUpdateLength{Kind: EventValidGrow, Length: length}
}

func conflictingEvent(edge hypergraph.EdgeIndex) MaxUpdateLength {
	return MaxUpdateLength{Kind: EventConflicting, Edge: edge}
}

func shrinkProhibitedEvent(node uint64) MaxUpdateLength {
	return MaxUpdateLength{Kind: EventShrinkProhibited, Node: node}
}

// GroupMaxUpdateLength is the combined verdict across every edge and dual
// node touched by the current growth direction: unbounded, a single
// positive step everyone agrees on, or the full list of simultaneous
// zero-length conflicts (in the decoder's deterministic tie-break order:
// ShrinkProhibited events before Conflicting events, each group ascending
// by identifier).
type GroupMaxUpdateLength struct {
	validGrow bool
	length    rational.Rational
	conflicts []MaxUpdateLength
}

func newGroup() *GroupMaxUpdateLength { return &GroupMaxUpdateLength{} }

// add folds one event into the running verdict, mirroring the original
// decoder's reduction: the first conflict latches the group into
// conflict-reporting mode, and any Unbounded/ValidGrow event arriving after
// that is simply discarded, since a zero-length bound already dominates.
func (g *GroupMaxUpdateLength) add(event MaxUpdateLength) {
	if len(g.conflicts) > 0 {
		if event.Kind == EventConflicting || event.Kind == EventShrinkProhibited {
			g.conflicts = append(g.conflicts, event)
		}
		return
	}
	switch event.Kind {
	case EventUnbounded:
	case EventValidGrow:
		if g.validGrow {
			g.length = rational.Min(g.length, event.Length)
		} else {
			g.validGrow = true
			g.length = event.Length
		}
	default:
		g.validGrow = false
		g.conflicts = append(g.conflicts, event)
	}
}

// IsUnbounded reports whether no edge or dual node bounds further growth at
// all.
func (g *GroupMaxUpdateLength) IsUnbounded() bool {
	return !g.validGrow && len(g.conflicts) == 0
}

// ValidGrowth returns the shared step every touched edge/node agrees is
// safe, when there is no conflict.
func (g *GroupMaxUpdateLength) ValidGrowth() (rational.Rational, bool) {
	if g.validGrow {
		return g.length, true
	}
	return rational.Rational{}, false
}

// Conflicts returns the simultaneous zero-length events, already in the
// decoder's deterministic tie-break order. Empty unless IsUnbounded and
// ValidGrowth both report false.
func (g *GroupMaxUpdateLength) Conflicts() []MaxUpdateLength {
	return g.conflicts
}
