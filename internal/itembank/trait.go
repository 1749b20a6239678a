// Package itembank holds the static, process-wide Mini-IPIP6 item table:
// trait assignment, reverse-key flag, discrimination and threshold
// parameters (Sibley 2012, Table 2), plus bilingual item text carried as
// opaque payload. The bank is immutable and safe to share across sessions.
package itembank

// Trait is one of the six Mini-IPIP6 factors.
type Trait string

const (
	Extraversion      Trait = "extraversion"
	Agreeableness     Trait = "agreeableness"
	Conscientiousness Trait = "conscientiousness"
	Neuroticism       Trait = "neuroticism"
	Openness          Trait = "openness"
	HonestyHumility   Trait = "honesty_humility"
)

// CanonicalOrder is the fixed trait ordering used for round-robin
// scheduling and tie-breaking (spec §4.3).
var CanonicalOrder = []Trait{
	Extraversion,
	Agreeableness,
	Conscientiousness,
	Neuroticism,
	Openness,
	HonestyHumility,
}

// DisplayName returns the English display name for a trait.
func (t Trait) DisplayName() string {
	switch t {
	case Extraversion:
		return "Extraversion"
	case Agreeableness:
		return "Agreeableness"
	case Conscientiousness:
		return "Conscientiousness"
	case Neuroticism:
		return "Neuroticism"
	case Openness:
		return "Openness to Experience"
	case HonestyHumility:
		return "Honesty-Humility"
	default:
		return string(t)
	}
}

// DisplayNameKR returns the Korean display name for a trait.
func (t Trait) DisplayNameKR() string {
	switch t {
	case Extraversion:
		return "외향성"
	case Agreeableness:
		return "우호성"
	case Conscientiousness:
		return "성실성"
	case Neuroticism:
		return "신경증"
	case Openness:
		return "개방성"
	case HonestyHumility:
		return "정직-겸손"
	default:
		return string(t)
	}
}
