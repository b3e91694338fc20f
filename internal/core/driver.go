package core

// Driver is a thin wrapper over a Prakriya offering the uniform
// "try to apply rule R at position i" API every rule package is built on
// top of (spec.md §4.3). It also owns the fork queue used by optional
// rules: when an optional rule's outcome is not already recorded in
// Choices, the Driver clones the in-progress Prakriya so both the
// "accepted" and "declined" continuations can run to completion.
type Driver struct {
	P     *Prakriya
	Forks *[]*Prakriya
}

// NewDriver wraps p in a Driver with a fresh, empty fork queue.
func NewDriver(p *Prakriya) *Driver {
	forks := make([]*Prakriya, 0)
	return &Driver{P: p, Forks: &forks}
}

// Child returns a Driver over a different Prakriya that shares this
// Driver's fork queue, used when continuing a forked branch.
func (d *Driver) Child(p *Prakriya) *Driver {
	return &Driver{P: p, Forks: d.Forks}
}

// Run unconditionally applies f to the Prakriya and records the step.
func (d *Driver) Run(rule RuleID, f func(*Prakriya)) {
	f(d.P)
	d.P.recordStep(rule)
}

// RunAt applies f to the term at index i and records the step only if f
// reports that it made a change.
func (d *Driver) RunAt(rule RuleID, i int, f func(*Term) bool) bool {
	t := d.P.Term(i)
	if t == nil {
		return false
	}
	if f(t) {
		d.P.recordStep(rule)
		return true
	}
	return false
}

// TryRun applies f, which reports whether it made any change, and
// records the step only on success. Used for Prakriya-level rules that
// may or may not apply (insertions, multi-term substitutions).
func (d *Driver) TryRun(rule RuleID, f func(*Prakriya) bool) bool {
	if f(d.P) {
		d.P.recordStep(rule)
		return true
	}
	return false
}

// OptionalRun checks the rule-choice record for rule. If a decision is
// already recorded, f is invoked only when the recorded decision is
// Accept, matching that earlier choice. If no decision is recorded yet,
// the Driver forks: it clones the current Prakriya with rule declined
// (pushing that clone onto the fork queue for later, independent
// completion) and proceeds on the current Prakriya with rule accepted.
// Returns whether this branch took the rule.
func (d *Driver) OptionalRun(rule RuleID, f func(*Prakriya) bool) bool {
	if decision, ok := d.P.Choices[rule]; ok {
		if decision == Decline {
			return false
		}
		if f(d.P) {
			d.P.recordStep(rule)
		}
		return true
	}

	declined := d.P.Clone()
	declined.Choices[rule] = Decline
	*d.Forks = append(*d.Forks, declined)

	d.P.Choices[rule] = Accept
	if f(d.P) {
		d.P.recordStep(rule)
	}
	return true
}

// IsAllowed returns the recorded decision for rule without forking,
// defaulting to Accept when unset (used by read-only queries that must
// not themselves cause a fork; the actual fork happens at the OptionalRun
// call site for the rule in question).
func (d *Driver) IsAllowed(rule RuleID) bool {
	if decision, ok := d.P.Choices[rule]; ok {
		return decision == Accept
	}
	return true
}

// --- Anchor helpers. Named-anchor abstractions are preferred over raw
// index arithmetic because indices go stale after any insertion
// (spec.md §9). ---

// IsPada reports whether the term at index i is tagged Pada.
func (d *Driver) IsPada(i int) bool {
	t := d.P.Term(i)
	return t != nil && t.IsPada()
}

// HasPrevNonEmpty reports whether the nearest non-empty term before index
// i satisfies pred.
func (d *Driver) HasPrevNonEmpty(i int, pred func(*Term) bool) bool {
	for j := i - 1; j >= 0; j-- {
		t := d.P.Term(j)
		if t == nil {
			continue
		}
		if t.IsEmpty() {
			continue
		}
		return pred(t)
	}
	return false
}

// PrevNonEmpty returns the index of the nearest non-empty term before i,
// or -1 if none exists.
func (d *Driver) PrevNonEmpty(i int) int {
	for j := i - 1; j >= 0; j-- {
		t := d.P.Term(j)
		if t != nil && !t.IsEmpty() {
			return j
		}
	}
	return -1
}

// NextNonEmpty returns the index of the nearest non-empty term after i,
// or -1 if none exists.
func (d *Driver) NextNonEmpty(i int) int {
	for j := i + 1; j < d.P.Len(); j++ {
		t := d.P.Term(j)
		if t != nil && !t.IsEmpty() {
			return j
		}
	}
	return -1
}

// FindFirstWhere returns the index of the first term satisfying pred, or
// -1 if none does.
func (d *Driver) FindFirstWhere(pred func(*Term) bool) int {
	for i, t := range d.P.Terms {
		if pred(t) {
			return i
		}
	}
	return -1
}

// FindLastWhere returns the index of the last term satisfying pred, or -1
// if none does.
func (d *Driver) FindLastWhere(pred func(*Term) bool) int {
	for i := len(d.P.Terms) - 1; i >= 0; i-- {
		if pred(d.P.Terms[i]) {
			return i
		}
	}
	return -1
}

// FindFirstDhatu returns the index of the first dhātu term, or -1.
func (d *Driver) FindFirstDhatu() int {
	return d.FindFirstWhere(func(t *Term) bool { return t.IsDhatu() })
}
