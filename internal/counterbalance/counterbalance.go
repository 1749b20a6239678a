// Package counterbalance assigns each participant a randomized order of
// the two within-subject conditions (the full survey vs. the adaptive
// assessment) so order effects don't systematically favor either one.
package counterbalance

import "math/rand"

// Condition is one of the two within-subject assessment conditions.
type Condition string

const (
	Survey   Condition = "survey"
	Adaptive Condition = "adaptive"
)

// conditions is the canonical pair permuted for each participant.
var conditions = [2]Condition{Survey, Adaptive}

// Order is a participant's assigned condition sequence.
type Order struct {
	Conditions [2]Condition
}

// Assign returns a uniformly random ordering of the two conditions. rng is
// an explicit, caller-owned source of randomness; this package never reads
// global entropy or the clock.
func Assign(rng *rand.Rand) Order {
	order := conditions
	if rng.Intn(2) == 1 {
		order[0], order[1] = order[1], order[0]
	}
	return Order{Conditions: order}
}

// IndexOf returns the 0-based position of condition within the order, or -1
// if it is not present.
func (o Order) IndexOf(condition Condition) int {
	for i, c := range o.Conditions {
		if c == condition {
			return i
		}
	}
	return -1
}

// SequenceNumber returns the 1-based position of condition within the
// order, mirroring the original get_sequence_number helper.
func (o Order) SequenceNumber(condition Condition) int {
	idx := o.IndexOf(condition)
	if idx < 0 {
		return 0
	}
	return idx + 1
}

// NextCondition returns the first condition in the order not present in
// completed, or false if every condition has been completed.
func (o Order) NextCondition(completed map[Condition]bool) (Condition, bool) {
	for _, c := range o.Conditions {
		if !completed[c] {
			return c, true
		}
	}
	return "", false
}
