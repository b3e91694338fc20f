package core

import (
	"github.com/google/uuid"

	"github.com/sanskritgo/vyakarana/internal/sounds"
)

// RuleID is a value-typed rule identifier: a classical sūtra number
// ("6.1.77"), a vārttika ("7.2.68.v1"), a Kāśikā/Siddhānta-Kaumudī
// citation, or a repo-internal tag. Used only for logging and as the
// is_allowed lookup key, per spec.md §3.
type RuleID string

// Decision is the outcome of an optional rule: taken or declined.
type Decision bool

const (
	// Accept means the optional rule was applied.
	Accept Decision = true
	// Decline means the optional rule was not applied.
	Decline Decision = false
)

// Step records one rule application: the rule that fired and a snapshot
// of every term's text immediately afterward. Retained for debugging and
// for the `is_final` finality-tracking narrative (spec.md §3, §4.12).
type Step struct {
	Rule  RuleID
	Texts []string
}

// Prakriyā-level tags, distinct from per-Term tags, describing the
// derivation as a whole (samāsa type, gender, voice).
type PrakriyaTag = Tag

// Prakriya is the full derivation state: an ordered vector of Terms, the
// step history, a small set of prakriyā-level tags, and the rule-choice
// record for optional rules. See spec.md §3 "Prakriyā".
type Prakriya struct {
	RunID uuid.UUID

	Terms []*Term
	Steps []Step
	Tags  TagSet

	// Choices records, for every optional rule encountered, whether it
	// was taken. Both an input (caller can force choices) and an output
	// (caller can replay or enumerate).
	Choices map[RuleID]Decision

	// LogSteps controls whether Steps snapshots are recorded at all; a
	// "no-log" derivation discards them to bound memory, per spec.md §5.
	LogSteps bool

	// NLPMode enables the permissive mode that returns partial
	// derivations where classical rules would reject.
	NLPMode bool

	// IsChandasi enables Vedic sūtras marked chandasi.
	IsChandasi bool
}

// NewPrakriya builds an empty Prakriya ready to receive terms.
func NewPrakriya() *Prakriya {
	return &Prakriya{
		RunID:    uuid.New(),
		Choices:  make(map[RuleID]Decision),
		LogSteps: true,
	}
}

// Clone deep-copies the Prakriya, including every Term, for use when an
// optional rule forks into two independent continuations.
func (p *Prakriya) Clone() *Prakriya {
	clone := &Prakriya{
		RunID:      uuid.New(),
		Tags:       p.Tags,
		LogSteps:   p.LogSteps,
		NLPMode:    p.NLPMode,
		IsChandasi: p.IsChandasi,
	}
	clone.Terms = make([]*Term, len(p.Terms))
	for i, t := range p.Terms {
		clone.Terms[i] = t.Clone()
	}
	clone.Steps = append([]Step(nil), p.Steps...)
	clone.Choices = make(map[RuleID]Decision, len(p.Choices))
	for k, v := range p.Choices {
		clone.Choices[k] = v
	}
	return clone
}

// AddTerm appends t to the end of the term stack.
func (p *Prakriya) AddTerm(t *Term) { p.Terms = append(p.Terms, t) }

// InsertBefore inserts t immediately before index i. Every later index
// shifts by one; callers must treat indices as stale after any insertion
// (spec.md §4.3).
func (p *Prakriya) InsertBefore(i int, t *Term) {
	p.Terms = append(p.Terms, nil)
	copy(p.Terms[i+1:], p.Terms[i:])
	p.Terms[i] = t
}

// InsertAfter inserts t immediately after index i.
func (p *Prakriya) InsertAfter(i int, t *Term) { p.InsertBefore(i+1, t) }

// RemoveAt removes the term at index i. Only used when an entire segment
// collapses without leaving a lupta term (spec.md §3); ordinary deletion
// should instead empty the term's Text.
func (p *Prakriya) RemoveAt(i int) {
	p.Terms = append(p.Terms[:i], p.Terms[i+1:]...)
}

// Term returns the term at index i, or nil if out of range.
func (p *Prakriya) Term(i int) *Term {
	if i < 0 || i >= len(p.Terms) {
		return nil
	}
	return p.Terms[i]
}

// Len returns the number of terms.
func (p *Prakriya) Len() int { return len(p.Terms) }

// recordStep appends a Step for rule, snapshotting every term's text if
// LogSteps is set.
func (p *Prakriya) recordStep(rule RuleID) {
	step := Step{Rule: rule}
	if p.LogSteps {
		texts := make([]string, len(p.Terms))
		for i, t := range p.Terms {
			texts[i] = t.Text
		}
		step.Texts = texts
	}
	p.Steps = append(p.Steps, step)
}

// History returns the (rule, term-texts) pairs in application order.
func (p *Prakriya) History() []Step { return p.Steps }

// RuleChoicesSnapshot returns the (rule, decision) pairs recorded during
// the run, for replay by a subsequent caller.
func (p *Prakriya) RuleChoicesSnapshot() map[RuleID]Decision {
	out := make(map[RuleID]Decision, len(p.Choices))
	for k, v := range p.Choices {
		out[k] = v
	}
	return out
}

// MarkFinal tags every term Final, per spec.md §4.12. Called after a
// full derivation pass completes.
func (p *Prakriya) MarkFinal() {
	for _, t := range p.Terms {
		t.AddTag(Final)
	}
}

// Text returns the final joined surface string after trimming empty
// terms. Sandhi is expected to have already been applied by the tripādī
// block; this simply concatenates what remains.
func (p *Prakriya) Text() string {
	var out []byte
	for _, t := range p.Terms {
		out = append(out, t.Text...)
	}
	return string(out)
}

// TextWithSvaras renders the final text with svara markers inline,
// mirroring Term.text_with_svaras but concatenated across the whole
// derivation.
func (p *Prakriya) TextWithSvaras() string {
	var out []byte
	for _, t := range p.Terms {
		vowelsSeen := 0
		for i := 0; i < len(t.Text); i++ {
			c := t.Text[i]
			out = append(out, c)
			if !sounds.IsAc(c) {
				continue
			}
			switch {
			case t.SvaraVal.Kind == SvaraUdatta && t.SvaraVal.VowelIndex == vowelsSeen:
				out = append(out, '/')
			case t.SvaraVal.Kind == SvaraSvarita && t.SvaraVal.VowelIndex == vowelsSeen:
				out = append(out, '^')
			case t.SvaraVal.Kind == SvaraAnudatta:
				out = append(out, '\\')
			}
			vowelsSeen++
		}
	}
	return string(out)
}
