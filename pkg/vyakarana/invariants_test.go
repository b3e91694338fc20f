package vyakarana

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanskritgo/vyakarana/internal/args"
	"github.com/sanskritgo/vyakarana/internal/core"
	"github.com/sanskritgo/vyakarana/internal/tripadi"
)

// TestRuleChoiceReplay is the spec's Rule-choice replay invariant
// (spec.md §8): feeding a produced prakriya's own RuleChoices back into a
// fresh Vyakarana must reproduce that single prakriya, with no further
// forking, since every optional rule along the way already has a
// recorded decision.
func TestRuleChoiceReplay(t *testing.T) {
	v := New()
	req := args.Tinanta{
		Dhatu:   args.Dhatu{Upadesha: "Bram", Gana: args.Bhvadi},
		Lakara:  args.Lat,
		Prayoga: args.Kartari,
		Purusha: args.Prathamapurusha,
		Vacana:  args.Eka,
	}
	results := v.DeriveTinantas(req)
	require.Len(t, results, 2, "expected both the Sap and Syan branches")

	for _, original := range results {
		replay := New().RuleChoices(original.RuleChoices())
		again := replay.DeriveTinantas(req)
		require.Len(t, again, 1, "a fully-decided rule_choices record must not fork")
		require.Equal(t, original.Text(), again[0].Text())
		require.Equal(t, ruleHistory(original.History()), ruleHistory(again[0].History()))
	}
}

// TestTripadiIsFinal is the spec's Finality invariant (spec.md §8 /
// §4.12): once the tripādī has run over a finished derivation, running
// it again fires no further rule and leaves the surface text unchanged
// -- there is no fixed point beyond the one already reached.
func TestTripadiIsFinal(t *testing.T) {
	v := New()
	req := bhuLatKartariPrathamaEka()

	var finished *core.Prakriya
	ps := v.deriveAll(func(d *core.Driver) {
		dhatuIdx := attachDhatu(d, req.Dhatu)
		dhatuIdx = attachSanadis(d, dhatuIdx, req.Dhatu.Sanadis)
		deriveSarvadhatukaTinanta(d, dhatuIdx, req, lakaraPada(req))
		tripadi.Run(d)
		finished = d.P
	})
	require.Len(t, ps, 1)
	require.NotNil(t, finished)

	stepsBefore := len(finished.History())
	textBefore := joinedText(finished)

	tripadi.Run(core.NewDriver(finished))

	require.Equal(t, stepsBefore, len(finished.History()), "tripadi re-run on a finished prakriya fired an additional rule")
	require.Equal(t, textBefore, joinedText(finished))
}

// TestNoAccentPreservation is the spec's No-accent preservation
// invariant (spec.md §8): with UseSvaras(false), the plain surface text
// is byte-identical to the UseSvaras(true) run, since svara.Run only
// annotates each term's accent metadata and never touches Term.Text.
func TestNoAccentPreservation(t *testing.T) {
	req := bhuLatKartariPrathamaEka()

	plain := New().DeriveTinantas(req)
	accented := New().UseSvaras(true).DeriveTinantas(req)

	require.Len(t, accented, len(plain))
	for i := range plain {
		require.Equal(t, plain[i].Text(), accented[i].Text())
		require.Empty(t, plain[i].TextWithSvaras(), "UseSvaras(false) must not populate TextWithSvaras")
		require.NotEmpty(t, accented[i].TextWithSvaras())
	}
}
