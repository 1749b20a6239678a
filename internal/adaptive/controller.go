package adaptive

import (
	"github.com/google/uuid"
	"github.com/openassess/cat-engine/internal/apperr"
	"github.com/openassess/cat-engine/internal/bayes"
	"github.com/openassess/cat-engine/internal/config"
	"github.com/openassess/cat-engine/internal/irt"
	"github.com/openassess/cat-engine/internal/itembank"
)

// Progress summarizes how far a session has come.
type Progress struct {
	ItemsAdministered int
	TraitsCompleted   int
	TotalTraits       int
}

// PresentItem is the action returned when the controller has a next item to
// administer.
type PresentItem struct {
	Trait       itembank.Trait
	ItemID      int
	ItemText    string
	CurrentTheta float64
	CurrentSE    float64
	Estimates    []TraitEstimate
	Progress     Progress
}

// Complete is the action returned once every trait has stopped.
type Complete struct {
	Estimates         []TraitEstimate
	TotalItems        int
	ItemReductionRate float64
}

// Action is either a PresentItem or a Complete.
type Action interface {
	isAction()
}

func (PresentItem) isAction() {}
func (Complete) isAction()    {}

// NewSession starts a fresh session: every trait's posterior is the prior,
// every trait is Active, and no item has been presented yet.
func NewSession(cfg config.Config, policy SchedulingPolicy) SessionState {
	posteriors := make(map[itembank.Trait]bayes.TraitPosterior, len(itembank.CanonicalOrder))
	completed := make(map[itembank.Trait]bool, len(itembank.CanonicalOrder))
	for _, trait := range itembank.CanonicalOrder {
		posteriors[trait] = bayes.NewTraitPosterior(cfg)
		completed[trait] = false
	}

	return SessionState{
		SessionID:  uuid.Must(uuid.NewV7()),
		Policy:     policy,
		Posteriors: posteriors,
		Completed:  completed,
	}
}

// markStoppingCriteria marks a trait Completed if its current posterior
// satisfies the stopping rule. It is swept across every trait after each
// response, not only the one just answered, so a generous SE threshold can
// retroactively complete traits that never received an item.
func markStoppingCriteria(state SessionState, cfg config.Config) SessionState {
	for _, trait := range itembank.CanonicalOrder {
		p := state.Posteriors[trait]
		if p.SE < cfg.SEThreshold || len(p.ItemsUsed) >= cfg.MaxItemsPerTrait {
			state.Completed[trait] = true
		}
	}
	return state
}

// NextAction decides what the controller should do next: present an item
// or declare the session complete. When an item is selected, the returned
// SessionState remembers it so ProcessResponse can validate the following
// response against it.
func NextAction(state SessionState, bank *itembank.Bank) (Action, SessionState) {
	if state.Done() {
		state.pending = nil
		return Complete{
			Estimates:         state.Estimates(),
			TotalItems:        state.TotalItems,
			ItemReductionRate: 1 - float64(state.TotalItems)/float64(bank.Len()),
		}, state
	}

	incomplete := incompleteTraits(state)
	trait := selectTrait(state, incomplete)

	itemID, ok := selectItem(state, bank, trait)
	if !ok {
		// Trait ran out of items before reaching its SE threshold; stop it
		// and recurse (mirrors the reference controller's behavior when a
		// trait's four items are exhausted).
		state.Completed[trait] = true
		return NextAction(state, bank)
	}

	item, err := bank.Lookup(itemID)
	if err != nil {
		// The item bank is validated at construction; a lookup miss here
		// would mean selectItem returned a ghost id, which is a bug, not a
		// runtime condition callers can recover from.
		panic(err)
	}

	state.pending = &pendingItem{trait: trait, itemID: itemID}
	posterior := state.Posteriors[trait]

	return PresentItem{
		Trait:        trait,
		ItemID:       itemID,
		ItemText:     item.TextEN,
		CurrentTheta: posterior.ThetaMean,
		CurrentSE:    posterior.SE,
		Estimates:    state.Estimates(),
		Progress: Progress{
			ItemsAdministered: state.TotalItems,
			TraitsCompleted:   countCompleted(state),
			TotalTraits:       len(itembank.CanonicalOrder),
		},
	}, state
}

// ProcessResponse folds a response to the most recently presented item into
// the session, re-evaluates the stopping criterion of every trait, and
// returns the updated state. It rejects a response for any item other than the one
// NextAction most recently presented, and rejects any response once the
// session is Done.
func ProcessResponse(state SessionState, bank *itembank.Bank, cfg config.Config, itemID, response int) (SessionState, error) {
	if state.Done() {
		return SessionState{}, apperr.AlreadyCompleted()
	}
	if state.pending == nil || state.pending.itemID != itemID {
		want := 0
		if state.pending != nil {
			want = state.pending.itemID
		}
		return SessionState{}, apperr.UnexpectedItem(itemID, want)
	}

	trait := state.pending.trait
	before := state.Posteriors[trait]

	item, err := bank.Lookup(itemID)
	if err != nil {
		return SessionState{}, err
	}
	fisherInfo := irt.ItemFisherInformation(item, before.ThetaMean)

	after, err := before.Update(bank, cfg, itemID, response)
	if err != nil {
		return SessionState{}, err
	}

	// Copy the per-trait maps so the caller's state is left untouched.
	posteriors := make(map[itembank.Trait]bayes.TraitPosterior, len(state.Posteriors))
	for t, p := range state.Posteriors {
		posteriors[t] = p
	}
	completed := make(map[itembank.Trait]bool, len(state.Completed))
	for t, c := range state.Completed {
		completed[t] = c
	}
	state.Posteriors = posteriors
	state.Completed = completed

	state.Posteriors[trait] = after
	state.AdministeredItems = append(state.AdministeredItems, AdministrationRecord{
		ItemID:            itemID,
		Trait:             trait,
		Response:          response,
		ThetaBefore:       before.ThetaMean,
		ThetaAfter:        after.ThetaMean,
		SEBefore:          before.SE,
		SEAfter:           after.SE,
		FisherInformation: fisherInfo,
		PresentationOrder: state.TotalItems + 1,
		FellBackToPrior:   after.FellBackToPrior,
	})
	state.TotalItems++
	state.pending = nil

	// Re-evaluate the stopping rule across every trait, not just the one
	// just answered: a generous SE threshold can already be satisfied by
	// an untouched trait's prior the moment any response arrives (spec §8
	// S1, "other five traits completed without any administration").
	state = markStoppingCriteria(state, cfg)

	return state, nil
}

func incompleteTraits(state SessionState) []itembank.Trait {
	out := make([]itembank.Trait, 0, len(itembank.CanonicalOrder))
	for _, trait := range itembank.CanonicalOrder {
		if !state.Completed[trait] {
			out = append(out, trait)
		}
	}
	return out
}

func countCompleted(state SessionState) int {
	n := 0
	for _, trait := range itembank.CanonicalOrder {
		if state.Completed[trait] {
			n++
		}
	}
	return n
}

// selectTrait picks which incomplete trait goes next, per state.Policy.
func selectTrait(state SessionState, incomplete []itembank.Trait) itembank.Trait {
	switch state.Policy {
	case FewestItemsFirst:
		best := incomplete[0]
		bestCount := len(state.Posteriors[best].ItemsUsed)
		for _, trait := range incomplete[1:] {
			n := len(state.Posteriors[trait].ItemsUsed)
			if n < bestCount {
				best = trait
				bestCount = n
			}
		}
		return best
	default: // RoundRobin
		index := state.TotalItems % len(incomplete)
		return incomplete[index]
	}
}

// selectItem picks the next item for trait: the highest-discrimination item
// on cold start, otherwise the unadministered item with maximum Fisher
// information at the trait's current theta estimate, ties broken by
// smallest item id.
func selectItem(state SessionState, bank *itembank.Bank, trait itembank.Trait) (int, bool) {
	posterior := state.Posteriors[trait]
	administered := make(map[int]bool, len(posterior.ItemsUsed))
	for _, id := range posterior.ItemsUsed {
		administered[id] = true
	}

	if len(posterior.ItemsUsed) == 0 {
		return bank.HighestDiscrimination(trait, administered)
	}

	ids := bank.ItemsForTrait(trait)
	best := -1
	bestInfo := -1.0
	for _, id := range ids {
		if administered[id] {
			continue
		}
		item, err := bank.Lookup(id)
		if err != nil {
			continue
		}
		info := irt.ItemFisherInformation(item, posterior.ThetaMean)
		if info > bestInfo {
			bestInfo = info
			best = id
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}
