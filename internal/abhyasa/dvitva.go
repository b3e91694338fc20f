// Package abhyasa implements dvitva (reduplication) and the abhyāsa
// simplification sequence described in spec.md §4.7. Grounded on
// vidyut-prakriya/src/dvitva.rs (the doubling trigger) and
// angasya/abhyasasya.rs (the simplification passes).
package abhyasa

import (
	"github.com/sanskritgo/vyakarana/internal/core"
	"github.com/sanskritgo/vyakarana/internal/sounds"
)

var ndr = sounds.NewSet("ndr")

// TriggersDvitva reports whether the term immediately following the
// dhātu at dhatuIdx is one of the five dvitva triggers: liṭ, san, yaṅ,
// ślu, or caṅ.
func TriggersDvitva(d *core.Driver, dhatuIdx int) (core.RuleID, bool) {
	n := d.P.Term(d.NextNonEmpty(dhatuIdx))
	if n == nil {
		return "", false
	}
	switch {
	case n.HasLakshana("li~w"):
		return "6.1.8", true
	case n.HasUIn([]string{"san", "yaN"}):
		return "6.1.9", true
	case n.Tags.Has(core.Slu):
		return "6.1.10", true
	case n.HasUVal("caN"):
		return "6.1.11", true
	}
	return "", false
}

// Dvitva performs the doubling itself (6.1.1 dviḥ ekāco dvistriṣaḥ; 6.1.2
// ajāder dvitīyasya): for a hal-ādi or eka-ac dhātu, a copy of the dhātu
// text is inserted before it as the abhyāsa; for an ac-ādi dhātu, the
// copy is built from everything after the first vowel instead, per
// 6.1.2-6.1.3. Returns the index of the inserted abhyāsa term, or -1 if
// dhatuIdx does not hold a non-empty dhātu.
func Dvitva(d *core.Driver, rule core.RuleID, dhatuIdx int) int {
	dhatu := d.P.Term(dhatuIdx)
	if dhatu == nil || dhatu.IsEmpty() {
		return -1
	}
	adi, ok := dhatu.Adi()
	if !ok {
		return -1
	}

	if sounds.IsAc(adi) && !dhatu.IsEkac() {
		return dvitvaAjadi(d, rule, dhatuIdx)
	}

	abhyasa := core.MakeText(dhatu.Text)
	var iAbhyasa int
	d.TryRun(rule, func(p *core.Prakriya) bool {
		p.InsertBefore(dhatuIdx, abhyasa)
		iAbhyasa = dhatuIdx
		return true
	})
	iDhatu := iAbhyasa + 1

	d.RunAt("6.1.4", iAbhyasa, func(t *core.Term) bool {
		t.AddTag(core.Abhyasa)
		return true
	})
	d.Run("6.1.5", func(p *core.Prakriya) {
		p.Terms[iAbhyasa].AddTag(core.Abhyasta)
		p.Terms[iDhatu].AddTag(core.Abhyasta)
		if j := iDhatu + 1; j < len(p.Terms) && p.Terms[j].IsNiPratyaya() {
			p.Terms[j].AddTag(core.Abhyasta)
		}
	})
	return iAbhyasa
}

// dvitvaAjadi handles the ac-ādi case (6.1.2-6.1.3): the copy is built
// from the dhātu text after its first vowel, and any leading n/d/r
// conjunct-forming consonant in that copy is dropped (na ndrāḥ
// saṁyogādayaḥ).
func dvitvaAjadi(d *core.Driver, rule core.RuleID, dhatuIdx int) int {
	dhatu := d.P.Term(dhatuIdx)
	rest := dhatu.Text[1:]
	for sounds.IsSamyogadi(rest) && len(rest) > 0 && ndr.Contains(rest[0]) {
		rest = rest[1:]
	}
	abhyasa := core.MakeText(rest)

	var iAbhyasa int
	d.TryRun(rule, func(p *core.Prakriya) bool {
		p.Terms[dhatuIdx].Text = p.Terms[dhatuIdx].Text[:len(p.Terms[dhatuIdx].Text)-len(abhyasa.Text)]
		p.InsertAfter(dhatuIdx, abhyasa)
		iAbhyasa = dhatuIdx + 1
		return true
	})
	d.RunAt("6.1.4", iAbhyasa, func(t *core.Term) bool {
		t.AddTag(core.Abhyasa)
		return true
	})
	d.Run("6.1.5", func(p *core.Prakriya) {
		p.Terms[dhatuIdx].AddTag(core.Abhyasta)
		p.Terms[iAbhyasa].AddTag(core.Abhyasta)
		if j := iAbhyasa + 1; j < len(p.Terms) {
			p.Terms[j].AddTag(core.Abhyasta)
		}
	})
	return iAbhyasa
}
