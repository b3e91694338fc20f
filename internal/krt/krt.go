// Package krt implements the kṛt-pratyaya dispatch described in spec.md
// §4.8: for every rule in sūtra order, test whether it matches the
// dhātu/pratyaya context; the first match either attaches the pratyaya
// (with an optional side-effect) or blocks it, and dispatch stops.
// Grounded on vidyut-prakriya/src/krt_pratyaya.rs and krt/basic.rs.
package krt

import (
	"github.com/sanskritgo/vyakarana/internal/args"
	"github.com/sanskritgo/vyakarana/internal/core"
	"github.com/sanskritgo/vyakarana/internal/itsamjna"
)

// Rule is one dispatch-table entry: a sūtra-ordered predicate plus the
// effect it has when it matches (attach the pratyaya, optionally with a
// side-effect on the dhātu).
type Rule struct {
	ID      core.RuleID
	Matches func(dhatu *core.Term, krt args.BaseKrt) bool
	// Block, when true, means this rule prevents the krt from applying
	// at all rather than attaching it (a siddha-pratiṣedha entry).
	Block bool
	// Override, when set, is a nipātana: it replaces the usual
	// "dhātu text + it-saṁjñā-stripped pratyaya text" pipeline wholesale
	// with the given final dhātu and pratyaya surface strings, e.g.
	// pac+kta -> pakva overriding the regular "pakta".
	Override func(dhatu *core.Term) (dhatuText, pratyayaText string)
}

// table is consulted in order; the first matching rule wins.
var table = []Rule{
	{
		ID: "8.2.52",
		Matches: func(dhatu *core.Term, krt args.BaseKrt) bool {
			return dhatu.HasText("pac") && krt == "kta"
		},
		Override: func(*core.Term) (string, string) {
			// nipAtana: the expected "pac"+"ta" -> "pakta" is overridden
			// wholesale by the irregular "pakva".
			return "pak", "va"
		},
	},
}

// Attach appends the given kṛt-pratyaya as a new term after the dhātu at
// dhatuIdx, applying any nipātana/side-effect rule that matches first,
// and tags the result Krt/Pratyaya plus Ardhadhatuka (3.4.114) unless the
// pratyaya is Sit (3.4.113, sārvadhātuka instead -- not modeled by any
// of this package's krts, so always Ardhadhatuka here).
func Attach(d *core.Driver, dhatuIdx int, krt args.BaseKrt) int {
	dhatu := d.P.Term(dhatuIdx)
	if dhatu == nil {
		return -1
	}

	pratyayaText := ""
	for _, rule := range table {
		if !rule.Matches(dhatu, krt) {
			continue
		}
		if rule.Block {
			d.Run(rule.ID, func(*core.Prakriya) {})
			return -1
		}
		if rule.Override != nil {
			dhatuText, pText := rule.Override(dhatu)
			d.RunAt(rule.ID, dhatuIdx, func(t *core.Term) bool {
				t.Text = dhatuText
				return true
			})
			pratyayaText = pText
		}
		break
	}

	pratyaya := core.MakeUpadesha(string(krt))
	pratyaya.AddTags(core.Pratyaya, core.Krt, core.Ardhadhatuka)
	itsamjna.Analyze(pratyaya)
	if pratyayaText != "" {
		// A nipātana overrides the it-stripped residue wholesale; mark the
		// pratyaya so later aṅga-section rules (iṭ-āgama, guṇa) treat the
		// decreed surface form as already final rather than reanalyzing it.
		pratyaya.SetText(pratyayaText)
		pratyaya.AddTag(core.Nipatana)
	}
	var iPratyaya int
	d.TryRun("3.1.91", func(p *core.Prakriya) bool {
		p.InsertAfter(dhatuIdx, pratyaya)
		iPratyaya = dhatuIdx + 1
		return true
	})
	return iPratyaya
}

// AttachUnadi appends an unādi-pratyaya (3.3.1 uṇādayo bahulam) after the
// dhātu at dhatuIdx. Unlike Attach, there is no dispatch table here: the
// uṇādi list names thousands of individually-irregular forms (spec.md
// §4.8's "keep them as flat tagged enums" guidance), so this package
// models only the uniform attach step and leaves per-pratyaya surface
// irregularities to a future table entry keyed on the same Rule shape
// used by krt.table.
func AttachUnadi(d *core.Driver, dhatuIdx int, unadi args.Unadi) int {
	dhatu := d.P.Term(dhatuIdx)
	if dhatu == nil {
		return -1
	}
	pratyaya := core.MakeUpadesha(unadi.AsStr())
	pratyaya.AddTags(core.Pratyaya, core.Unadi, core.Krt, core.Ardhadhatuka)
	var iPratyaya int
	d.TryRun("3.3.1", func(p *core.Prakriya) bool {
		p.InsertAfter(dhatuIdx, pratyaya)
		iPratyaya = dhatuIdx + 1
		return true
	})
	return iPratyaya
}
