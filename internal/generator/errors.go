package generator

import "fmt"

// EmptyPoolError reports a positional pool with too few records to compute its
// quantile threshold, or no records at all. Retrying the same input reproduces it;
// the caller has to broaden criteria or surface the failure.
type EmptyPoolError struct {
	Pool string
	Size int
}

func (e *EmptyPoolError) Error() string {
	return fmt.Sprintf("pool %s has %d records, need at least 2 for threshold computation", e.Pool, e.Size)
}

// InsufficientPlayersError reports a qualified pool with fewer distinct players
// than the slots it must fill
type InsufficientPlayersError struct {
	Slot string
	Need int
	Have int
}

func (e *InsufficientPlayersError) Error() string {
	return fmt.Sprintf("slot %s needs %d distinct qualified players, have %d", e.Slot, e.Need, e.Have)
}

// DivisionUndefinedError reports a rate stat with a zero denominator. It never
// propagates out of filtering: an undefined rate disqualifies the record instead.
type DivisionUndefinedError struct {
	Stat string
}

func (e *DivisionUndefinedError) Error() string {
	return fmt.Sprintf("rate stat %s undefined: zero denominator", e.Stat)
}

// CompositionError reports a structural invariant violated by an assembled lineup.
// Unreachable when the sampler's guarantees hold; kept as a final guard.
type CompositionError struct {
	Invariant string
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("lineup composition invalid: %s", e.Invariant)
}
