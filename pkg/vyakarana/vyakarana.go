// Package vyakarana is the public surface of the derivation engine:
// a builder-configured Vyakarana value and the Derive* family described
// in spec.md §6, each producing one or more Prakriya results. Grounded on
// the teacher's pkg/embed "small builder wraps an internal VM" shape and
// vidyut-prakriya/src/vyakarana.rs.
package vyakarana

import (
	"github.com/sanskritgo/vyakarana/internal/core"
)

// Vyakarana is an immutable, builder-configured derivation engine handle.
// The zero value is not usable; construct one with New().
type Vyakarana struct {
	logSteps    bool
	nlpMode     bool
	isChandasi  bool
	useSvaras   bool
	ruleChoices map[core.RuleID]core.Decision
}

// New returns a Vyakarana with the default configuration: step logging
// on, NLP mode off, classical (non-Vedic) sūtras only, no svara output.
func New() *Vyakarana {
	return &Vyakarana{logSteps: true}
}

// LogSteps controls whether each derivation records its rule-by-rule
// history (spec.md §5); turning it off reduces memory for bulk builds
// like the kośa CLI.
func (v *Vyakarana) LogSteps(on bool) *Vyakarana {
	c := *v
	c.logSteps = on
	return &c
}

// NLPMode enables the permissive mode that returns partial derivations
// where a classical rule would otherwise reject the input outright.
func (v *Vyakarana) NLPMode(on bool) *Vyakarana {
	c := *v
	c.nlpMode = on
	return &c
}

// IsChandasi enables Vedic (chandasi) sūtras in addition to the
// classical (bhāṣā) ones.
func (v *Vyakarana) IsChandasi(on bool) *Vyakarana {
	c := *v
	c.isChandasi = on
	return &c
}

// UseSvaras controls whether Derive* results carry the Vedic-accent pass
// (spec.md §4.11); most bhāṣā derivations leave this off.
func (v *Vyakarana) UseSvaras(on bool) *Vyakarana {
	c := *v
	c.useSvaras = on
	return &c
}

// RuleChoices pre-seeds the optional-rule decision record so a caller can
// force a specific branch instead of receiving every valid alternative.
func (v *Vyakarana) RuleChoices(choices map[core.RuleID]core.Decision) *Vyakarana {
	c := *v
	c.ruleChoices = make(map[core.RuleID]core.Decision, len(choices))
	for k, val := range choices {
		c.ruleChoices[k] = val
	}
	return &c
}

func (v *Vyakarana) newPrakriya() *core.Prakriya {
	p := core.NewPrakriya()
	p.LogSteps = v.logSteps
	p.NLPMode = v.nlpMode
	p.IsChandasi = v.isChandasi
	for k, val := range v.ruleChoices {
		p.Choices[k] = val
	}
	return p
}

// Prakriya is the public, read-only view of a completed derivation: its
// final surface text and the step-by-step history that produced it.
type Prakriya struct {
	text           string
	textWithSvaras string
	history        []core.Step
	ruleChoices    map[core.RuleID]core.Decision
}

// Text is the derivation's final surface form.
func (p *Prakriya) Text() string { return p.text }

// TextWithSvaras is the final surface form with inline accent markers,
// populated only when the engine was built with UseSvaras(true).
func (p *Prakriya) TextWithSvaras() string { return p.textWithSvaras }

// History is the ordered list of rule applications that produced Text.
func (p *Prakriya) History() []core.Step { return p.history }

// RuleChoices is the full record of optional-rule decisions made during
// this derivation, suitable for feeding back into RuleChoices to
// reproduce the same branch.
func (p *Prakriya) RuleChoices() map[core.RuleID]core.Decision { return p.ruleChoices }

// deriveAll runs build once on a fresh Prakriya. Every optional rule build
// hits via Driver.OptionalRun queues a declined fork holding only the
// rule-choice record, not a half-built Prakriya: deriveAll drains that
// queue by replaying build from scratch on a new seed pre-seeded with the
// fork's Choices (the same mechanism RuleChoices uses), so the replay
// takes the recorded decision at the point it was made and runs every
// later step for real instead of stopping mid-derivation. A replay can
// itself queue further forks (a second optional rule reachable only down
// one branch), so the drain is a queue, not a single pass.
func (v *Vyakarana) deriveAll(build func(d *core.Driver)) []*core.Prakriya {
	seed := v.newPrakriya()
	d := core.NewDriver(seed)
	build(d)

	results := []*core.Prakriya{seed}
	pending := append([]*core.Prakriya(nil), (*d.Forks)...)
	for len(pending) > 0 {
		fork := pending[0]
		pending = pending[1:]

		replay := v.newPrakriya()
		for rule, decision := range fork.Choices {
			replay.Choices[rule] = decision
		}
		rd := core.NewDriver(replay)
		build(rd)

		results = append(results, replay)
		pending = append(pending, (*rd.Forks)...)
	}
	return results
}

func (v *Vyakarana) finish(p *core.Prakriya, textForPurposes string) *Prakriya {
	p.MarkFinal()
	out := &Prakriya{
		text:        textForPurposes,
		history:     p.History(),
		ruleChoices: p.RuleChoicesSnapshot(),
	}
	if v.useSvaras {
		out.textWithSvaras = p.TextWithSvaras()
	}
	return out
}
