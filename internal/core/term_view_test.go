package core

import (
	"github.com/sanskritgo/vyakarana/internal/sounds"
	"testing"
)

func TestTermViewExtendsThroughTrailingAgamas(t *testing.T) {
	p := NewPrakriya()
	p.AddTerm(MakeDhatu("kf", 8, ""))
	p.AddTerm(MakeText("ta"))
	p.AddTerm(MakeAgama("kli"))

	// A view starting at the dhatu (index 0) must not swallow the
	// pratyaya at index 1, since that term is not an agama.
	dhatuView := NewTermView(p, 0)
	if dhatuView.Start != 0 || dhatuView.End != 0 {
		t.Fatalf("dhatu view should not extend into the following non-agama term, got [%d,%d]", dhatuView.Start, dhatuView.End)
	}

	// A view starting at the pratyaya (index 1) must extend through the
	// trailing agama at index 2.
	pratyayaView := NewTermView(p, 1)
	if pratyayaView.Start != 1 || pratyayaView.End != 2 {
		t.Fatalf("pratyaya view should extend through the trailing agama, got [%d,%d]", pratyayaView.Start, pratyayaView.End)
	}
}

func TestTermViewTextAndPredicates(t *testing.T) {
	p := NewPrakriya()
	p.AddTerm(MakeText("ta"))
	p.Terms[0].AddTag(Kit)
	p.AddTerm(MakeAgama("kli"))

	v := NewTermView(p, 0)
	if got, want := v.Text(), "takli"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	if !v.HasAdi(sounds.Byte('t')) {
		t.Error("HasAdi should match the view's first sound")
	}
	if v.First().Text != "ta" {
		t.Errorf("First() = %q, want %q", v.First().Text, "ta")
	}
	if v.Last().Text != "kli" {
		t.Errorf("Last() = %q, want %q", v.Last().Text, "kli")
	}
}

func TestTermViewIsKnitReflectsLastTerm(t *testing.T) {
	p := NewPrakriya()
	p.AddTerm(MakeText("ta"))
	p.AddTerm(MakeAgama("kli"))
	p.Terms[1].AddTag(Ngit)

	v := NewTermView(p, 0)
	if !v.IsKnit() {
		t.Error("IsKnit should see the tag on the view's last (agama) term")
	}
}
