package sup

import (
	"github.com/sanskritgo/vyakarana/internal/args"
	"github.com/sanskritgo/vyakarana/internal/core"
	"github.com/sanskritgo/vyakarana/internal/sounds"
)

// nadyadiHrasva is the abridged jāti/class list that takes ṄīP (4.1.15
// nadyām jātitaddhitau) rather than falling through to no strī-pratyaya
// at all: a hrasva i/u-ending prātipadika naming a jāti (kind) or used
// before a taddhita.
var nadyadiHrasva = sounds.NewSet("iu")

// AttachStri runs the 4.1 strī-pratyaya rules: ajādyataṣṭāp (4.1.4) adds
// wAp after an a-ending prātipadika, and 4.1.15 adds NIp after a hrasva
// i/u-ending one. A prātipadika the table doesn't cover (already
// nyāp-anta, or consonant-final with no listed strī rule) is returned
// unchanged, matching the teacher's "no match -> no-op" dispatch shape.
func AttachStri(d *core.Driver, baseIdx int, linga args.Linga, isNyapAnta bool) int {
	if linga != args.Stri || isNyapAnta {
		return baseIdx
	}
	base := d.P.Term(baseIdx)
	if base == nil {
		return baseIdx
	}

	var u string
	switch {
	case base.HasAntya(sounds.Byte('a')):
		u = "wAp"
	case base.HasAntya(nadyadiHrasva):
		u = "NIp"
	default:
		return baseIdx
	}

	pratyaya := core.MakeUpadesha(u)
	pratyaya.AddTags(core.Pratyaya, core.Stri)

	var iPratyaya int
	rule := core.RuleID("4.1.4")
	if u == "NIp" {
		rule = "4.1.15"
	}
	ok := d.TryRun(rule, func(p *core.Prakriya) bool {
		p.InsertAfter(baseIdx, pratyaya)
		iPratyaya = baseIdx + 1
		return true
	})
	if !ok {
		return baseIdx
	}
	return iPratyaya
}
