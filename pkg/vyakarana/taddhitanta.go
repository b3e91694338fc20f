package vyakarana

import (
	"github.com/sanskritgo/vyakarana/internal/angasya"
	"github.com/sanskritgo/vyakarana/internal/args"
	"github.com/sanskritgo/vyakarana/internal/core"
	"github.com/sanskritgo/vyakarana/internal/svara"
	"github.com/sanskritgo/vyakarana/internal/taddhita"
	"github.com/sanskritgo/vyakarana/internal/tripadi"
)

// DeriveTaddhitantas derives every Prakriya reachable from a
// secondary-suffix request: attaching the prātipadika, the named
// taddhita pratyaya, then running the aṅga section, tripādī, and (if
// enabled) svara passes. Like DeriveKrdantas, the result is a
// prātipadika stem, not yet inflected by a sup-pratyaya.
func (v *Vyakarana) DeriveTaddhitantas(t args.Taddhitanta) []*Prakriya {
	prakriyas := v.deriveAll(func(d *core.Driver) {
		baseIdx := attachPratipadika(d, t.Pratipadika)

		iPratyaya := taddhita.Attach(d, baseIdx, t.Taddhita)
		if iPratyaya < 0 {
			return
		}
		d.P.Term(iPratyaya).AddTag(core.Pratipadika)

		angasya.RunAngaSection(d, baseIdx, iPratyaya)

		tripadi.Run(d)
		if v.useSvaras {
			svara.Run(d)
		}
	})
	return v.finishAll(prakriyas)
}
