package adaptive

import (
	"github.com/google/uuid"
	"github.com/openassess/cat-engine/internal/bayes"
	"github.com/openassess/cat-engine/internal/itembank"
	"github.com/openassess/cat-engine/internal/scoring"
)

// AdministrationRecord is the history entry written each time a response is
// processed: the before/after estimate, the information the item
// contributed, and its position in presentation order.
type AdministrationRecord struct {
	ItemID            int
	Trait             itembank.Trait
	Response          int
	ThetaBefore       float64
	ThetaAfter        float64
	SEBefore          float64
	SEAfter           float64
	FisherInformation float64
	PresentationOrder int
	FellBackToPrior   bool
}

// pendingItem records which item was most recently presented, so
// ProcessResponse can reject a response for any other item.
type pendingItem struct {
	trait  itembank.Trait
	itemID int
}

// SessionState is the complete, immutable-by-convention state of one CAT
// session. Every mutating operation (ProcessResponse, NextAction) returns a
// new SessionState; sessions are independent and share no mutable state
// across goroutines (see internal/simulate).
type SessionState struct {
	SessionID uuid.UUID
	Policy    SchedulingPolicy

	Posteriors map[itembank.Trait]bayes.TraitPosterior
	Completed  map[itembank.Trait]bool

	AdministeredItems []AdministrationRecord
	TotalItems        int

	pending *pendingItem
}

// Done reports whether every trait has reached its stopping criterion.
func (s SessionState) Done() bool {
	for _, trait := range itembank.CanonicalOrder {
		if !s.Completed[trait] {
			return false
		}
	}
	return true
}

// TraitEstimate is a point-in-time snapshot of one trait's estimate.
type TraitEstimate struct {
	Trait             itembank.Trait
	Theta             float64
	SE                float64
	Likert            float64
	ItemsAdministered int
	ItemsUsed         []int
	TotalInformation  float64
	Completed         bool
}

// Estimates returns the current theta/SE/Likert snapshot for every trait,
// in canonical order.
func (s SessionState) Estimates() []TraitEstimate {
	out := make([]TraitEstimate, 0, len(itembank.CanonicalOrder))
	for _, trait := range itembank.CanonicalOrder {
		p := s.Posteriors[trait]
		out = append(out, TraitEstimate{
			Trait:             trait,
			Theta:             p.ThetaMean,
			SE:                p.SE,
			Likert:            scoring.ThetaToLikert(p.ThetaMean),
			ItemsAdministered: len(p.ItemsUsed),
			ItemsUsed:         append([]int(nil), p.ItemsUsed...),
			TotalInformation:  p.TotalInformation,
			Completed:         s.Completed[trait],
		})
	}
	return out
}
