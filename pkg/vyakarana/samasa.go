package vyakarana

import (
	"github.com/sanskritgo/vyakarana/internal/args"
	"github.com/sanskritgo/vyakarana/internal/core"
	"github.com/sanskritgo/vyakarana/internal/samasa"
	"github.com/sanskritgo/vyakarana/internal/sounds"
	"github.com/sanskritgo/vyakarana/internal/svara"
	"github.com/sanskritgo/vyakarana/internal/tripadi"
)

// samasantaFor picks the samāsānta suffix named by the abridged
// taddhita/samasanta_prakarana.rs dispatch for a handful of well-known
// classes; a compound outside this short list takes no samāsānta and
// samasa.SamasantaSuffix is a no-op on an empty string.
func samasantaFor(compound *core.Term, kind args.SamasaType) string {
	if compound == nil {
		return ""
	}
	switch {
	case kind == args.Bahuvrihi && compound.HasAntya(sounds.Byte('n')):
		// 5.4.122-ish: a bahuvrīhi ending in an n-stem (rājan, etc.)
		// takes "ap" as its samāsānta.
		return "ap"
	case kind == args.Avyayibhava && compound.HasAntya(sounds.Byte('a')):
		// 5.4.107 avyayībhāvāc ca: an avyayībhāva commonly takes "wac".
		return "wac"
	}
	return ""
}

// DeriveSamasas derives every Prakriya reachable from a compound-
// formation request: joining every member prātipadika left to right with
// internal sandhi, optionally appending a samāsānta suffix, then running
// the tripādī and (if enabled) svara passes. Per spec.md §6's
// derive_samāsas.
func (v *Vyakarana) DeriveSamasas(s args.Samasa) []*Prakriya {
	prakriyas := v.deriveAll(func(d *core.Driver) {
		if len(s.Members) < 2 {
			return
		}
		idx := attachPratipadika(d, s.Members[0])
		for _, member := range s.Members[1:] {
			nextIdx := attachPratipadika(d, member)
			idx = samasa.Join(d, idx, nextIdx, s.Type)
			if idx < 0 {
				return
			}
		}

		if suffix := samasantaFor(d.P.Term(idx), s.Type); suffix != "" {
			idx = samasa.SamasantaSuffix(d, idx, suffix)
		}

		tripadi.Run(d)
		if v.useSvaras {
			svara.Run(d)
		}
	})
	return v.finishAll(prakriyas)
}
