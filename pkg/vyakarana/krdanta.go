package vyakarana

import (
	"github.com/sanskritgo/vyakarana/internal/angasya"
	"github.com/sanskritgo/vyakarana/internal/args"
	"github.com/sanskritgo/vyakarana/internal/core"
	"github.com/sanskritgo/vyakarana/internal/krt"
	"github.com/sanskritgo/vyakarana/internal/svara"
	"github.com/sanskritgo/vyakarana/internal/tripadi"
)

// DeriveKrdantas derives every Prakriya reachable from a primary-suffix
// (kṛt or uṇādi) request: attaching the dhātu, any sanādi layering, the
// named kṛt or uṇādi pratyaya, then running the aṅga section, tripādī,
// and (if enabled) svara passes. The result is a prātipadika stem (e.g.
// "gacCat", "kft"), not yet inflected by a sup-pratyaya -- callers that
// want an inflected word feed the resulting text back into DeriveSubantas
// as a Pratipadika.
func (v *Vyakarana) DeriveKrdantas(k args.Krdanta) []*Prakriya {
	prakriyas := v.deriveAll(func(d *core.Driver) {
		if k.Upapada != "" {
			upapada := core.MakeText(string(k.Upapada))
			upapada.AddTag(core.Pratipadika)
			d.P.AddTerm(upapada)
		}
		dhatuIdx := attachDhatu(d, k.Dhatu)
		dhatuIdx = attachSanadis(d, dhatuIdx, k.Dhatu.Sanadis)

		var iPratyaya int
		switch {
		case k.Krt != "":
			iPratyaya = krt.Attach(d, dhatuIdx, k.Krt)
		case k.Unadi != "":
			iPratyaya = krt.AttachUnadi(d, dhatuIdx, k.Unadi)
		default:
			return
		}
		if iPratyaya < 0 {
			return
		}
		d.P.Term(iPratyaya).AddTag(core.Pratipadika)

		angasya.RunAngaSection(d, dhatuIdx, iPratyaya)

		tripadi.Run(d)
		if v.useSvaras {
			svara.Run(d)
		}
	})
	return v.finishAll(prakriyas)
}
