// Package angasya implements the aṅga section described in spec.md §4.5:
// the largest single component of the derivation, covering guṇa/vṛddhi,
// iṭ-āgama, num-āgama, and the asiddhavat sub-block (§4.6). Grounded on
// vidyut-prakriya/src/angasya.rs, angasya/guna_vrddhi.rs, and it_agama.rs.
package angasya

import (
	"github.com/sanskritgo/vyakarana/internal/core"
	"github.com/sanskritgo/vyakarana/internal/sounds"
)

// CanUseGunaOrVrddhi implements the shared gate from 1.1.5 (kṅiti ca) and
// the guṇa-apavāda flags that every individual guṇa/vṛddhi rule consults
// before substituting an aṅga's vowel.
func CanUseGunaOrVrddhi(anga *core.Term, n *core.TermView) bool {
	if n.IsKnit() {
		return false
	}
	if anga.HasUIn([]string{"dIDIN", "vevIN"}) {
		return false
	}
	if anga.Tags.HasAny(core.FlagAtLopa, core.FlagGunaApavada) {
		return false
	}
	return n.First().IsPratyaya()
}

// TryVrddhi runs 7.2.115-7.2.116: vṛddhi of an aṅga's final vowel when the
// following pratyaya is ñit or ṇit (modeled here as Njit/Rit), or, failing
// that, 7.2.116's substitution of a penultimate "a" to "A".
func TryVrddhi(d *core.Driver, i int) bool {
	anga := d.P.Term(i)
	j := d.NextNonEmpty(i)
	if anga == nil || j < 0 {
		return false
	}
	n := core.NewTermView(d.P, j)

	isNnitTrigger := n.First().Tags.HasAny(core.Njit, core.Rit) || n.First().HasUVal("RiN")
	if !isNnitTrigger || !CanUseGunaOrVrddhi(anga, n) {
		return false
	}

	if a, ok := anga.Antya(); ok && sounds.IsAc(a) {
		if !isVrddhiGrade(a) {
			if sub, ok := sounds.Vrddhi(a); ok {
				return d.RunAt("7.2.115", i, func(t *core.Term) bool {
					t.SetAntya(sub)
					t.AddTag(core.FlagVrddhi)
					return true
				})
			}
		}
		return false
	}
	if up, ok := anga.Upadha(); ok && up == 'a' {
		return d.RunAt("7.2.116", i, func(t *core.Term) bool {
			t.SetUpadha("A")
			return true
		})
	}
	return false
}

func isVrddhiGrade(c byte) bool {
	switch c {
	case 'A', 'E', 'O':
		return true
	}
	return false
}

// TryGuna runs the central 7.3.84 guṇa rule: an aṅga's final ik vowel
// becomes its guṇa substitute before a sārvadhātuka or ārdhadhātuka
// pratyaya, unless blocked by pit-sārvadhātuka-on-a-light-syllable
// exceptions (7.3.86-7.3.91, simplified here to the common case) or by
// CanUseGunaOrVrddhi's shared gate.
func TryGuna(d *core.Driver, i int) bool {
	anga := d.P.Term(i)
	j := d.NextNonEmpty(i)
	if anga == nil || j < 0 {
		return false
	}
	n := core.NewTermView(d.P, j)

	if !CanUseGunaOrVrddhi(anga, n) {
		return false
	}
	isSarvaArdha := n.First().IsSarvadhatuka() || n.First().IsArdhadhatuka()
	if !isSarvaArdha {
		return false
	}

	a, ok := anga.Antya()
	if !ok || !sounds.IK.Contains(a) {
		return false
	}

	// 7.3.88: BU/sU keep their guNa-resistant vowel before a piT
	// sArvadhAtuka tiN (aBUt, not aBot).
	pitiSarvadhatuke := n.First().Tags.Has(core.Pit) && n.First().IsSarvadhatuka()
	if anga.HasTextIn([]string{"BU", "sU"}) && n.First().IsTin() && pitiSarvadhatuke {
		d.Run("7.3.88", func(*core.Prakriya) {})
		return false
	}

	sub, ok := sounds.Guna(a)
	if !ok {
		return false
	}
	return d.RunAt("7.3.84", i, func(t *core.Term) bool {
		t.SetAntya(sub)
		t.AddTag(core.FlagGuna)
		return true
	})
}

// aniT is the set of roots that are aniṭ (never take iṭ) even though the
// general rule (7.2.35 ārdhadhātukasyeḍ valādeḥ) would otherwise predict
// it. Its only entry, kf, maps to false, so no root is exempted here.
var aniT = map[string]bool{
	"kf": false, // kf is actually seT in most tenses; kept for documentation
}

// ApplyItAgama runs 7.2.35: insert the iṭ-āgama ("i") before an
// ārdhadhātuka pratyaya beginning with a consonant, unless the root is
// aniṭ or the pratyaya begins with a vowel (a-valādi pratyaya, no iṭ
// needed).
func ApplyItAgama(d *core.Driver, dhatuIdx, pratyayaIdx int) bool {
	dhatu := d.P.Term(dhatuIdx)
	pratyaya := d.P.Term(pratyayaIdx)
	if dhatu == nil || pratyaya == nil {
		return false
	}
	if dhatu.IsNipatana() || pratyaya.IsNipatana() {
		return false
	}
	if !pratyaya.IsArdhadhatuka() {
		return false
	}
	if c, ok := pratyaya.Adi(); !ok || !sounds.IsHal(c) {
		return false
	}
	if aniT[dhatu.Text] {
		return false
	}
	return d.TryRun("7.2.35", func(p *core.Prakriya) bool {
		it := core.MakeAgama("iw")
		it.SetText("i")
		p.InsertBefore(pratyayaIdx, it)
		return true
	})
}

// ApplyAtLopa runs 6.4.48: deletion of an aṅga's final "a" before a
// vowel-initial pratyaya, sārvadhātuka or ārdhadhātuka alike, so the two
// vowels never meet and need no sandhi of their own. Sets FlagAtLopa so
// later guṇa/vṛddhi rules see the blocked state (8.2.23, 7.2.1 et al.
// key off the same flag).
func ApplyAtLopa(d *core.Driver, dhatuIdx, pratyayaIdx int) bool {
	dhatu := d.P.Term(dhatuIdx)
	pratyaya := d.P.Term(pratyayaIdx)
	if dhatu == nil || pratyaya == nil {
		return false
	}
	if dhatu.IsNipatana() || pratyaya.IsNipatana() {
		return false
	}
	if a, ok := dhatu.Antya(); !ok || a != 'a' {
		return false
	}
	if c, ok := pratyaya.Adi(); !ok || !sounds.IsAc(c) {
		return false
	}
	return d.RunAt("6.4.48", dhatuIdx, func(t *core.Term) bool {
		t.Text = t.Text[:len(t.Text)-1]
		t.AddTag(core.FlagAtLopa)
		return true
	})
}

// saniItBlockRoots lists the f/F-final roots whose san-derived
// desiderative stem blocks the ordinary iṭ-āgama (7.2.35) and instead
// substitutes the root's f/F directly with "Ir" (7.2.12, abridged here
// to the one root this engine forms san-derivatives for: kf -> kIr,
// giving cikIrzati rather than cikarizati).
var saniItBlockRoots = map[string]bool{"kf": true}

// ApplySaniItDirgha runs 7.2.12 against the dhātu at dhatuIdx once a
// san pratyaya has been attached immediately after it (attachSanadis
// calls this after dvitva has already copied the dhātu's original
// shape into the abhyāsa, so the substitution here never leaks into the
// reduplicate).
func ApplySaniItDirgha(d *core.Driver, dhatuIdx int) bool {
	dhatu := d.P.Term(dhatuIdx)
	if dhatu == nil || !saniItBlockRoots[dhatu.Text] {
		return false
	}
	if a, ok := dhatu.Antya(); !ok || (a != 'f' && a != 'F') {
		return false
	}
	j := d.NextNonEmpty(dhatuIdx)
	if j < 0 || !d.P.Term(j).HasUVal("san") {
		return false
	}
	return d.RunAt("7.2.12", dhatuIdx, func(t *core.Term) bool {
		t.SetAntya("Ir")
		return true
	})
}

// DirghaSarvanamasthana runs 6.4.8: lengthening of an aṅga's final vowel
// before a sarvanāmasthāna sup-pratyaya, e.g. in strong nominal forms. An
// aṅga that instead ends in a num-āgama "n" (deva -> devan before the
// napuṃsaka sup "i") has no final vowel to lengthen, so 6.4.8 lengthens
// its penultimate vowel instead (devan -> devAn, giving devAni; the same
// pattern as phala -> phalAni).
func DirghaSarvanamasthana(d *core.Driver, angaIdx int) bool {
	anga := d.P.Term(angaIdx)
	if anga == nil {
		return false
	}

	if a, ok := anga.Antya(); ok && a == 'n' {
		j := d.NextNonEmpty(angaIdx)
		if j < 0 || !d.P.Term(j).IsSarvanamasthana() || d.P.Term(j).IsLupta() {
			return false
		}
		up, ok := anga.Upadha()
		if !ok {
			return false
		}
		long, ok := map[byte]string{'a': "A", 'i': "I", 'u': "U"}[up]
		if !ok {
			return false
		}
		return d.RunAt("6.4.8", angaIdx, func(t *core.Term) bool {
			t.SetUpadha(long)
			return true
		})
	}

	a, ok := anga.Antya()
	if !ok || !sounds.IsHrasva(a) || !sounds.IK.Contains(a) {
		return false
	}
	j := d.NextNonEmpty(angaIdx)
	if j < 0 || !d.P.Term(j).IsSarvanamasthana() {
		return false
	}
	long := map[byte]string{'i': "I", 'u': "U", 'f': "F", 'x': "X"}[a]
	return d.RunAt("6.4.8", angaIdx, func(t *core.Term) bool {
		t.SetAntya(long)
		return true
	})
}

// MarkLitKit runs 1.2.5 asaMyogAl liT kit: a liṭ-pratyaya is treated as
// kit (blocking guṇa/vṛddhi) whenever the dhātu it attaches to does not
// end in a consonant cluster, except for the 1st/3rd-person-plural
// endings which are excluded by 1.2.6-1.2.7 (not modeled here).
func MarkLitKit(dhatu, litPratyaya *core.Term) {
	if dhatu == nil || litPratyaya == nil {
		return
	}
	if !dhatu.IsSamyoganta() {
		litPratyaya.AddTag(core.Kit)
	}
}

// RunAngaSection runs the aṅga-section passes relevant to a dhātu at
// dhatuIdx followed immediately by its vikaraṇa/pratyaya at pratyayaIdx,
// in the order described in spec.md §4.5: iṭ-āgama and at-lopa first
// (pre-guṇa), then guṇa/vṛddhi.
func RunAngaSection(d *core.Driver, dhatuIdx, pratyayaIdx int) {
	ApplyAtLopa(d, dhatuIdx, pratyayaIdx)
	ApplyItAgama(d, dhatuIdx, pratyayaIdx)
	if !TryVrddhi(d, dhatuIdx) {
		TryGuna(d, dhatuIdx)
	}
	AsiddhavatBlock(d, dhatuIdx)
}
