package bayes

import (
	"github.com/openassess/cat-engine/internal/config"
	"github.com/openassess/cat-engine/internal/irt"
	"github.com/openassess/cat-engine/internal/itembank"
)

// ExpectedPosteriorVariance computes the expected posterior variance if
// candidateItem were administered next: the response-probability-weighted
// variance over all seven possible responses (spec §4.3's alternative to
// Fisher-information item selection). Lower EPV means a more informative
// item; internal/adaptive does not use it, selecting items by Fisher
// information only.
func ExpectedPosteriorVariance(tp TraitPosterior, bank *itembank.Bank, cfg config.Config, candidateItem int) (float64, error) {
	item, err := bank.Lookup(candidateItem)
	if err != nil {
		return 0, err
	}

	epv := 0.0
	for response := 1; response <= irt.NumCategories; response++ {
		p := irt.ItemLikelihood(item, response, tp.ThetaMean)

		hypothetical, err := tp.Update(bank, cfg, candidateItem, response)
		if err != nil {
			return 0, err
		}
		epv += p * hypothetical.SE * hypothetical.SE
	}
	return epv, nil
}
