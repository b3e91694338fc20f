package vyakarana

import (
	"testing"

	"github.com/sanskritgo/vyakarana/internal/args"
)

func bhuLatKartariPrathamaEka() args.Tinanta {
	return args.Tinanta{
		Dhatu:   args.Dhatu{Upadesha: "BU", Gana: args.Bhvadi},
		Lakara:  args.Lat,
		Prayoga: args.Kartari,
		Purusha: args.Prathamapurusha,
		Vacana:  args.Eka,
	}
}

// TestDeriveTinantasBhuLat is spec scenario 1: BU + laT + kartari +
// parasmaipada + prathama-purusha + eka-vacana -> Bavati, going through
// shap-vikarana (3.1.68) and guna (7.3.84).
func TestDeriveTinantasBhuLat(t *testing.T) {
	v := New()
	results := v.DeriveTinantas(bhuLatKartariPrathamaEka())
	if len(results) == 0 {
		t.Fatal("expected at least one prakriya")
	}
	if got, want := results[0].Text(), "Bavati"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}

	var sawVikarana, sawGuna bool
	for _, step := range results[0].History() {
		switch step.Rule {
		case "3.1.68":
			sawVikarana = true
		case "7.3.84":
			sawGuna = true
		}
	}
	if !sawVikarana {
		t.Error("expected rule 3.1.68 (sap vikarana) in the history")
	}
	if !sawGuna {
		t.Error("expected rule 7.3.84 (guna) in the history")
	}
}

// TestDeriveTinantasDeterminism is the spec's Determinism testable
// property (spec.md §8): fixed args and fixed rule choices must produce
// byte-identical results across independent runs.
func TestDeriveTinantasDeterminism(t *testing.T) {
	v := New()
	r1 := v.DeriveTinantas(bhuLatKartariPrathamaEka())
	r2 := v.DeriveTinantas(bhuLatKartariPrathamaEka())
	if len(r1) != len(r2) {
		t.Fatalf("result count differs: %d vs %d", len(r1), len(r2))
	}
	for i := range r1 {
		if r1[i].Text() != r2[i].Text() {
			t.Errorf("result %d differs: %q vs %q", i, r1[i].Text(), r2[i].Text())
		}
	}
}

// TestDeriveTinantasOptionalVikaranaForks exercises 3.1.70's genuine
// optionality: Bram (class 1, gaNa-based vikaraNa Sap) also permits the
// divAdi-style Syan vikaraNa, producing both Bramati and Bramyati. This
// is the engine's first real caller of Driver.OptionalRun.
func TestDeriveTinantasOptionalVikaranaForks(t *testing.T) {
	v := New()
	req := args.Tinanta{
		Dhatu:   args.Dhatu{Upadesha: "Bram", Gana: args.Bhvadi},
		Lakara:  args.Lat,
		Prayoga: args.Kartari,
		Purusha: args.Prathamapurusha,
		Vacana:  args.Eka,
	}
	results := v.DeriveTinantas(req)
	if len(results) != 2 {
		t.Fatalf("expected both the Sap and Syan branches, got %d results", len(results))
	}

	seen := make(map[string]bool, 2)
	for _, r := range results {
		seen[r.Text()] = true
	}
	if !seen["Bramati"] {
		t.Errorf("expected the declined (Sap) branch to yield Bramati, got %v", seen)
	}
	if !seen["Bramyati"] {
		t.Errorf("expected the accepted (Syan) branch to yield Bramyati, got %v", seen)
	}
}

// TestDeriveTinantasKarmaniYak is 3.1.67: karmaNi/bhAve prayoga always
// takes "yak" in place of the gaNa-based vikaraNa.
func TestDeriveTinantasKarmaniYak(t *testing.T) {
	v := New()
	req := args.Tinanta{
		Dhatu:   args.Dhatu{Upadesha: "kf", Gana: args.Tanadi},
		Lakara:  args.Lat,
		Prayoga: args.Karmani,
		Purusha: args.Prathamapurusha,
		Vacana:  args.Eka,
	}
	results := v.DeriveTinantas(req)
	if len(results) == 0 {
		t.Fatal("expected at least one prakriya")
	}
	var sawYak bool
	for _, step := range results[0].History() {
		if step.Rule == "3.1.67" {
			sawYak = true
		}
	}
	if !sawYak {
		t.Error("expected rule 3.1.67 (yak vikarana) in the history")
	}
}

func TestDeriveTinantasPadaOverride(t *testing.T) {
	v := New()
	req := bhuLatKartariPrathamaEka()
	atmane := args.Atmanepada
	req.PadaOverride = &atmane
	results := v.DeriveTinantas(req)
	if len(results) == 0 {
		t.Fatal("expected at least one prakriya")
	}
	if results[0].Text() == "Bavati" {
		t.Error("forcing atmanepada should not produce the parasmaipada form")
	}
}
