package vyakarana

import (
	"github.com/sanskritgo/vyakarana/internal/args"
	"github.com/sanskritgo/vyakarana/internal/core"
	"github.com/sanskritgo/vyakarana/internal/sandhi"
)

// DeriveVakyas derives a sentence-level request: every pada is derived
// independently (its own Prakriya, its own internal-sandhi closure), and
// only the external-sandhi joins between adjacent padas cross a pada
// boundary, per spec.md §4.9's internal/external split and
// SPEC_FULL.md §10's Vākya definition. Each pada contributes its first
// (primary) reading; a pada that fails to derive at all is skipped
// rather than aborting the whole sentence, matching spec.md §7's
// "empty result is a legal non-error signal" policy applied per-pada.
func (v *Vyakarana) DeriveVakyas(vak args.Vakya) []*Prakriya {
	var texts []string
	var history []core.Step

	for _, pada := range vak.Padas {
		var results []*Prakriya
		switch {
		case pada.Tinanta != nil:
			results = v.DeriveTinantas(*pada.Tinanta)
		case pada.Subanta != nil:
			results = v.DeriveSubantas(*pada.Subanta)
		default:
			continue
		}
		if len(results) == 0 {
			continue
		}
		texts = append(texts, results[0].Text())
		history = append(history, results[0].History()...)
	}
	if len(texts) == 0 {
		return nil
	}

	joined := texts[0]
	for _, next := range texts[1:] {
		joined = sandhi.JoinPadas(joined, next)
	}

	return []*Prakriya{{text: joined, history: history}}
}
