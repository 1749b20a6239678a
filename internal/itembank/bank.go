package itembank

import (
	"fmt"
	"sort"

	"github.com/openassess/cat-engine/internal/apperr"
)

// Bank is the immutable, process-wide lookup table over the 24 items.
// Construct it once with New() and share the reference; it holds no
// mutable state (spec §5, "the Item Bank is immutable, read-only,
// process-wide state; it may be shared freely").
type Bank struct {
	byID    map[int]Item
	byTrait map[Trait][]int
}

// New builds and validates the Mini-IPIP6 item bank: exactly four items
// per trait, sorted beta thresholds. Panics on a malformed table, since
// the table is a compiled-in constant, not user input.
func New() *Bank {
	b, err := build(items)
	if err != nil {
		panic(err)
	}
	return b
}

func build(table []Item) (*Bank, error) {
	byID := make(map[int]Item, len(table))
	byTrait := make(map[Trait][]int)

	for _, it := range table {
		if _, dup := byID[it.ID]; dup {
			return nil, fmt.Errorf("duplicate item id %d", it.ID)
		}
		for i := 1; i < len(it.Beta); i++ {
			if it.Beta[i] <= it.Beta[i-1] {
				return nil, fmt.Errorf("item %d: beta thresholds not strictly increasing", it.ID)
			}
		}
		if it.Alpha <= 0 {
			return nil, fmt.Errorf("item %d: alpha must be positive", it.ID)
		}
		byID[it.ID] = it
		byTrait[it.Trait] = append(byTrait[it.Trait], it.ID)
	}

	for _, trait := range CanonicalOrder {
		if n := len(byTrait[trait]); n != 4 {
			return nil, fmt.Errorf("trait %s has %d items, want 4", trait, n)
		}
		sort.Ints(byTrait[trait])
	}

	return &Bank{byID: byID, byTrait: byTrait}, nil
}

// Lookup returns the item with the given id, or an UnknownItem error.
func (b *Bank) Lookup(id int) (Item, error) {
	it, ok := b.byID[id]
	if !ok {
		return Item{}, apperr.UnknownItem(id)
	}
	return it, nil
}

// ItemsForTrait returns the (always four) item ids belonging to trait, in
// ascending id order.
func (b *Bank) ItemsForTrait(trait Trait) []int {
	ids := b.byTrait[trait]
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

// HighestDiscrimination returns the item id with the largest alpha among
// trait's unadministered items, breaking ties by smallest item id. This is
// the cold-start rule of spec §4.3: for this item table the highest-alpha
// item of each trait is also its most informative item at theta=0. Once a
// trait has an item, the controller selects by Fisher information instead.
func (b *Bank) HighestDiscrimination(trait Trait, exclude map[int]bool) (int, bool) {
	best := -1
	bestAlpha := -1.0
	for _, id := range b.byTrait[trait] {
		if exclude[id] {
			continue
		}
		it := b.byID[id]
		if it.Alpha > bestAlpha {
			bestAlpha = it.Alpha
			best = id
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// Traits returns the canonical trait ordering.
func (b *Bank) Traits() []Trait {
	return CanonicalOrder
}

// Len returns the total number of items in the bank (always 24).
func (b *Bank) Len() int {
	return len(b.byID)
}
