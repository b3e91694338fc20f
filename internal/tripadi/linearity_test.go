package tripadi

import (
	"testing"

	"github.com/sanskritgo/vyakarana/internal/core"
)

// buildIndependentPrakriya returns a fresh two-term Prakriya where each
// term's tripadi trigger depends only on its own text (and, for the first
// term's 8.3.23, the second term's *original* Adi, which no rule here
// ever changes): "devam" takes anusvara (8.3.23) because "vAk" begins
// with a consonant, and "vAk" independently takes jas-tva (8.2.39)
// because it is the pada-final jhal. Neither outcome depends on the
// other having already run.
func buildIndependentPrakriya() *core.Prakriya {
	p := core.NewPrakriya()
	p.AddTerm(core.MakeText("devam"))
	p.AddTerm(core.MakeText("vAk"))
	return p
}

func textsOf(p *core.Prakriya) []string {
	out := make([]string, len(p.Terms))
	for i, t := range p.Terms {
		out[i] = t.Text
	}
	return out
}

// TestTripadiPassOrderIsIndependentOfIterationDirection is the spec's
// Tripādī linearity invariant (spec.md §8): each of Pada82, Pada83, and
// Pada84 decides a term's own substitution purely from that term's own
// text plus, for the cross-term cases, the *original* Adi/Antya of a
// neighboring term -- never from another term's already-mutated text.
// Two terms whose own triggers are independent of each other (here,
// "devam" anusvara-izes per 8.3.23 and "vAk" jas-tva-izes per 8.2.39)
// must therefore end up in the same state -- "devaM", "vAg" -- whether a
// pass visits ascending or descending index order.
func TestTripadiPassOrderIsIndependentOfIterationDirection(t *testing.T) {
	forward := buildIndependentPrakriya()
	backward := buildIndependentPrakriya()

	fd := core.NewDriver(forward)
	bd := core.NewDriver(backward)

	runPass := func(d *core.Driver, pass func(*core.Driver, int), ascending bool) {
		n := d.P.Len()
		if ascending {
			for i := 0; i < n; i++ {
				pass(d, i)
			}
			return
		}
		for i := n - 1; i >= 0; i-- {
			pass(d, i)
		}
	}

	runPass(fd, Pada82, true)
	runPass(bd, Pada82, false)
	if got, want := textsOf(forward), textsOf(backward); !equalStrings(got, want) {
		t.Fatalf("Pada82 ascending vs descending diverged: %v vs %v", got, want)
	}

	runPass(fd, Pada83, true)
	runPass(bd, Pada83, false)
	if got, want := textsOf(forward), textsOf(backward); !equalStrings(got, want) {
		t.Fatalf("Pada83 ascending vs descending diverged: %v vs %v", got, want)
	}

	runPass(fd, Pada84, true)
	runPass(bd, Pada84, false)
	if got, want := textsOf(forward), textsOf(backward); !equalStrings(got, want) {
		t.Fatalf("Pada84 ascending vs descending diverged: %v vs %v", got, want)
	}
}

// TestRunMatchesManualPerBlockOrdering confirms Run's own three-block
// sequencing (all of 8.2, then all of 8.3, then all of 8.4) is what it
// claims to be: running the same three passes by hand in that order
// over a fresh copy reproduces exactly Run's output.
func TestRunMatchesManualPerBlockOrdering(t *testing.T) {
	viaRun := buildIndependentPrakriya()
	viaManual := buildIndependentPrakriya()

	Run(core.NewDriver(viaRun))

	d := core.NewDriver(viaManual)
	for i := range viaManual.Terms {
		Pada82(d, i)
	}
	for i := range viaManual.Terms {
		Pada83(d, i)
	}
	for i := range viaManual.Terms {
		Pada84(d, i)
	}

	if got, want := textsOf(viaRun), textsOf(viaManual); !equalStrings(got, want) {
		t.Fatalf("Run() = %v, want %v", got, want)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
