package core

import "testing"

func TestNewPrakriyaStartsEmpty(t *testing.T) {
	p := NewPrakriya()
	if p.Len() != 0 {
		t.Errorf("new Prakriya should have no terms, got %d", p.Len())
	}
	if !p.LogSteps {
		t.Error("LogSteps should default to true")
	}
	if p.RunID.String() == "" {
		t.Error("RunID should be populated")
	}
}

func TestAddTermAndText(t *testing.T) {
	p := NewPrakriya()
	p.AddTerm(MakeText("Bav"))
	p.AddTerm(MakeText("ati"))
	if got, want := p.Text(), "Bavati"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestInsertBeforeAfter(t *testing.T) {
	p := NewPrakriya()
	p.AddTerm(MakeText("a"))
	p.AddTerm(MakeText("c"))
	p.InsertBefore(1, MakeText("b"))
	if got, want := p.Text(), "abc"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	p.InsertAfter(2, MakeText("d"))
	if got, want := p.Text(), "abcd"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestRemoveAt(t *testing.T) {
	p := NewPrakriya()
	p.AddTerm(MakeText("a"))
	p.AddTerm(MakeText("b"))
	p.AddTerm(MakeText("c"))
	p.RemoveAt(1)
	if got, want := p.Text(), "ac"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := NewPrakriya()
	p.AddTerm(MakeText("Bavati"))
	p.Choices["1.1.1"] = Accept

	clone := p.Clone()
	clone.Term(0).SetText("changed")
	clone.Choices["1.1.1"] = Decline

	if p.Term(0).Text == "changed" {
		t.Error("mutating a clone's term should not affect the original")
	}
	if p.Choices["1.1.1"] != Accept {
		t.Error("mutating a clone's choices should not affect the original")
	}
}

func TestHistoryRecordsSteps(t *testing.T) {
	p := NewPrakriya()
	p.AddTerm(MakeText("Bavati"))
	d := NewDriver(p)
	d.Run(RuleID("test.rule"), func(pr *Prakriya) {
		pr.Term(0).SetAntya("e")
	})
	hist := p.History()
	if len(hist) != 1 {
		t.Fatalf("expected 1 step, got %d", len(hist))
	}
	if hist[0].Rule != "test.rule" {
		t.Errorf("rule id = %q", hist[0].Rule)
	}
	if hist[0].Texts[0] != "Bavate" {
		t.Errorf("snapshot text = %q", hist[0].Texts[0])
	}
}

func TestHistorySkippedWhenLogStepsFalse(t *testing.T) {
	p := NewPrakriya()
	p.LogSteps = false
	p.AddTerm(MakeText("Bavati"))
	d := NewDriver(p)
	d.Run(RuleID("test.rule"), func(pr *Prakriya) {})
	if p.History()[0].Texts != nil {
		t.Error("snapshot should be nil when LogSteps is false")
	}
}

func TestMarkFinal(t *testing.T) {
	p := NewPrakriya()
	p.AddTerm(MakeText("Bavati"))
	p.MarkFinal()
	if !p.Term(0).IsFinal() {
		t.Error("term should be tagged Final after MarkFinal")
	}
}

func TestRuleChoicesSnapshotIsACopy(t *testing.T) {
	p := NewPrakriya()
	p.Choices["1.1.1"] = Accept
	snap := p.RuleChoicesSnapshot()
	snap["1.1.1"] = Decline
	if p.Choices["1.1.1"] != Accept {
		t.Error("mutating the snapshot should not affect the Prakriya's own choices")
	}
}
