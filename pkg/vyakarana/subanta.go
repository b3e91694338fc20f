package vyakarana

import (
	"github.com/sanskritgo/vyakarana/internal/angasya"
	"github.com/sanskritgo/vyakarana/internal/args"
	"github.com/sanskritgo/vyakarana/internal/core"
	"github.com/sanskritgo/vyakarana/internal/sup"
	"github.com/sanskritgo/vyakarana/internal/svara"
	"github.com/sanskritgo/vyakarana/internal/tripadi"
)

// attachPratipadika builds the starting prātipadika term for a
// Subanta/Taddhitanta/Samasa request, tagging it with its liṅga and
// sarvanāma status.
func attachPratipadika(d *core.Driver, p args.Pratipadika) int {
	base := core.MakeText(string(p.Text))
	base.AddTag(core.Pratipadika)
	switch p.Linga {
	case args.Stri:
		base.AddTag(core.Stri)
	case args.Napumsaka:
		base.AddTag(core.Napumsaka)
	default:
		base.AddTag(core.Pum)
	}
	if p.IsSarvanama {
		base.AddTag(core.Sarvanama)
	}
	d.P.AddTerm(base)
	return d.P.Len() - 1
}

// DeriveSubantas derives every Prakriya reachable from a nominal
// inflection request: attaching the strī-pratyaya (if the prātipadika is
// feminine and not already nyāp-anta), the sup-pratyaya, any triggered
// num-āgama, sārvanāmasthāna dīrgha, then the tripādī and (if enabled)
// svara passes, per spec.md §4.8's sup dispatch and §6's derive_subantas.
func (v *Vyakarana) DeriveSubantas(s args.Subanta) []*Prakriya {
	prakriyas := v.deriveAll(func(d *core.Driver) {
		baseIdx := attachPratipadika(d, s.Pratipadika)
		angaIdx := sup.AttachStri(d, baseIdx, s.Pratipadika.Linga, s.Pratipadika.IsNyapAnta)

		iSup := sup.AttachSup(d, angaIdx, s.Pratipadika.Linga, s.Vibhakti, s.Vacana)
		if iSup < 0 {
			return
		}
		if s.Pratipadika.Linga == args.Napumsaka {
			sup.NumAgama(d, angaIdx, iSup)
		}
		d.P.Term(iSup).AddTag(core.Pada)

		angasya.DirghaSarvanamasthana(d, angaIdx)

		tripadi.Run(d)
		if v.useSvaras {
			svara.Run(d)
		}
	})
	return v.finishAll(prakriyas)
}
