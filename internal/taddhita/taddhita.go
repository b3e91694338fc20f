// Package taddhita implements the taddhita-pratyaya dispatch described in
// spec.md §4.8: the same "first matching rule attaches or blocks" table
// shape as internal/krt, applied to a prātipadika instead of a dhātu.
// Grounded on vidyut-prakriya/src/taddhita/pragdivyatiya.rs and
// taddhita/samasanta_prakarana.rs.
package taddhita

import (
	"github.com/sanskritgo/vyakarana/internal/args"
	"github.com/sanskritgo/vyakarana/internal/core"
	"github.com/sanskritgo/vyakarana/internal/sounds"
)

// Rule is one dispatch-table entry, identical in shape to krt.Rule but
// scoped to a prātipadika base rather than a dhātu.
type Rule struct {
	ID      core.RuleID
	Matches func(base *core.Term, taddhita args.Taddhita) bool
	Apply   func(base *core.Term)
}

// table holds the taddhita rules checked before the attach; most
// taddhitas are a plain attach and need no entry here.
var table = []Rule{
	{
		ID: "5.2.94",
		Matches: func(base *core.Term, td args.Taddhita) bool {
			return td == "matup" && base.HasAntya(sounds.Byte('a'))
		},
		Apply: func(base *core.Term) {
			// No text change: the base is left as it is and matup's
			// "m" is not replaced by "v" here, so Attach records no
			// step for this rule.
		},
	},
}

// Attach appends taddhita as a new Pratipadika-derived term after base,
// tagging it Taddhita/Pratyaya and running any matching dispatch-table
// side-effect first.
func Attach(d *core.Driver, baseIdx int, taddhita args.Taddhita) int {
	base := d.P.Term(baseIdx)
	if base == nil {
		return -1
	}
	for _, rule := range table {
		if rule.Matches(base, taddhita) {
			if rule.Apply != nil {
				d.RunAt(rule.ID, baseIdx, func(t *core.Term) bool {
					before := t.Text
					rule.Apply(t)
					return t.Text != before
				})
			}
			break
		}
	}

	pratyaya := core.MakeUpadesha(string(taddhita))
	pratyaya.AddTags(core.Pratyaya, core.Taddhita)
	var iPratyaya int
	d.TryRun("4.1.76", func(p *core.Prakriya) bool {
		p.InsertAfter(baseIdx, pratyaya)
		iPratyaya = baseIdx + 1
		return true
	})
	return iPratyaya
}
