package core

import "testing"

func newTwoTermPrakriya() *Prakriya {
	p := NewPrakriya()
	p.AddTerm(MakeDhatu("BU", 1, ""))
	p.AddTerm(MakeText("ati"))
	return p
}

func TestDriverRunAt(t *testing.T) {
	p := newTwoTermPrakriya()
	d := NewDriver(p)
	changed := d.RunAt(RuleID("x"), 0, func(term *Term) bool {
		term.SetText("Bo")
		return true
	})
	if !changed {
		t.Error("RunAt should report a change")
	}
	if p.Term(0).Text != "Bo" {
		t.Errorf("term text = %q", p.Term(0).Text)
	}
	if len(p.History()) != 1 {
		t.Errorf("expected one recorded step, got %d", len(p.History()))
	}
}

func TestDriverRunAtNoChangeSkipsStep(t *testing.T) {
	p := newTwoTermPrakriya()
	d := NewDriver(p)
	changed := d.RunAt(RuleID("x"), 0, func(term *Term) bool { return false })
	if changed {
		t.Error("RunAt should report no change")
	}
	if len(p.History()) != 0 {
		t.Error("a no-op RunAt should not record a step")
	}
}

func TestDriverRunAtOutOfRange(t *testing.T) {
	p := newTwoTermPrakriya()
	d := NewDriver(p)
	if d.RunAt(RuleID("x"), 5, func(term *Term) bool { return true }) {
		t.Error("RunAt on an out-of-range index should report no change")
	}
}

func TestDriverOptionalRunForksOnFirstEncounter(t *testing.T) {
	p := newTwoTermPrakriya()
	d := NewDriver(p)
	took := d.OptionalRun(RuleID("opt.1"), func(pr *Prakriya) bool {
		pr.Term(1).SetText("ate")
		return true
	})
	if !took {
		t.Error("OptionalRun should take the rule on first encounter")
	}
	if p.Term(1).Text != "ate" {
		t.Errorf("accepted branch should be mutated, got %q", p.Term(1).Text)
	}
	if len(*d.Forks) != 1 {
		t.Fatalf("expected one fork, got %d", len(*d.Forks))
	}
	declined := (*d.Forks)[0]
	if declined.Choices[RuleID("opt.1")] != Decline {
		t.Error("forked branch should record Decline")
	}
	if declined.Term(1).Text != "ati" {
		t.Errorf("declined branch should be unmutated, got %q", declined.Term(1).Text)
	}
	if p.Choices[RuleID("opt.1")] != Accept {
		t.Error("current branch should record Accept")
	}
}

func TestDriverOptionalRunReplaysRecordedDecline(t *testing.T) {
	p := newTwoTermPrakriya()
	p.Choices[RuleID("opt.1")] = Decline
	d := NewDriver(p)
	called := false
	took := d.OptionalRun(RuleID("opt.1"), func(pr *Prakriya) bool {
		called = true
		return true
	})
	if took {
		t.Error("OptionalRun should report false for a declined rule")
	}
	if called {
		t.Error("the rule body must not run when the decision is Decline")
	}
	if len(*d.Forks) != 0 {
		t.Error("no fork should happen when the decision is already recorded")
	}
}

func TestDriverOptionalRunReplaysRecordedAccept(t *testing.T) {
	p := newTwoTermPrakriya()
	p.Choices[RuleID("opt.1")] = Accept
	d := NewDriver(p)
	took := d.OptionalRun(RuleID("opt.1"), func(pr *Prakriya) bool {
		pr.Term(1).SetText("ate")
		return true
	})
	if !took {
		t.Error("OptionalRun should report true for an accepted rule")
	}
	if p.Term(1).Text != "ate" {
		t.Error("rule body should run when the decision is already Accept")
	}
	if len(*d.Forks) != 0 {
		t.Error("no fork should happen when the decision is already recorded")
	}
}

func TestDriverIsAllowedDefaultsTrue(t *testing.T) {
	p := newTwoTermPrakriya()
	d := NewDriver(p)
	if !d.IsAllowed(RuleID("unset.rule")) {
		t.Error("IsAllowed should default to true for an unrecorded rule")
	}
	p.Choices[RuleID("set.rule")] = Decline
	if d.IsAllowed(RuleID("set.rule")) {
		t.Error("IsAllowed should report false for a declined rule")
	}
}

func TestDriverAnchors(t *testing.T) {
	p := NewPrakriya()
	p.AddTerm(MakeDhatu("BU", 1, ""))
	p.AddTerm(MakeText(""))
	p.AddTerm(MakeText("ati"))
	d := NewDriver(p)

	if got := d.FindFirstDhatu(); got != 0 {
		t.Errorf("FindFirstDhatu() = %d, want 0", got)
	}
	if got := d.PrevNonEmpty(2); got != 0 {
		t.Errorf("PrevNonEmpty(2) = %d, want 0 (skipping the empty term)", got)
	}
	if got := d.NextNonEmpty(0); got != 2 {
		t.Errorf("NextNonEmpty(0) = %d, want 2", got)
	}
	if !d.HasPrevNonEmpty(2, func(term *Term) bool { return term.IsDhatu() }) {
		t.Error("HasPrevNonEmpty should see the dhatu, skipping the empty term")
	}
}

func TestDriverChildSharesForkQueue(t *testing.T) {
	p := newTwoTermPrakriya()
	d := NewDriver(p)
	child := d.Child(p.Clone())
	child.OptionalRun(RuleID("opt.1"), func(pr *Prakriya) bool { return true })
	if len(*d.Forks) != 1 {
		t.Error("a child Driver should push forks onto the parent's shared queue")
	}
}
