// Package classical implements the non-adaptive scoring baseline: the mean
// of reverse-corrected responses per trait over the full 24-item inventory.
package classical

import (
	"github.com/montanaflynn/stats"
	"github.com/openassess/cat-engine/internal/apperr"
	"github.com/openassess/cat-engine/internal/irt"
	"github.com/openassess/cat-engine/internal/itembank"
)

// TraitScore is one trait's classical score: the mean reverse-corrected
// response over its four items, on the native 1..7 scale.
type TraitScore struct {
	Trait     itembank.Trait
	Score     float64
	NumItems  int
}

// Score computes the classical score for every trait from a complete set of
// 24 responses keyed by item id. It requires a response for every item in
// the bank; a partial response set returns apperr.IncompleteSurvey.
func Score(bank *itembank.Bank, responses map[int]int) (map[itembank.Trait]TraitScore, error) {
	if bank.Len() != len(responses) {
		return nil, apperr.IncompleteSurvey(len(responses), bank.Len())
	}

	out := make(map[itembank.Trait]TraitScore, len(itembank.CanonicalOrder))
	for _, trait := range itembank.CanonicalOrder {
		ids := bank.ItemsForTrait(trait)
		corrected := make([]float64, 0, len(ids))
		for _, id := range ids {
			response, ok := responses[id]
			if !ok {
				return nil, apperr.IncompleteSurvey(len(responses), bank.Len())
			}
			item, err := bank.Lookup(id)
			if err != nil {
				return nil, err
			}
			corrected = append(corrected, float64(irt.EffectiveResponse(response, item.ReverseKeyed)))
		}

		mean, err := stats.Mean(corrected)
		if err != nil {
			return nil, apperr.Wrap(err, "classical scoring failed to average trait responses")
		}

		out[trait] = TraitScore{Trait: trait, Score: mean, NumItems: len(corrected)}
	}
	return out, nil
}
