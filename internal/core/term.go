// Package core implements the prakriyā engine's data model: Term, the
// Prakriyā derivation state, the Tag bitset, and the rule-driver
// primitives every rule package builds on. It is the sole mutator of
// morpheme state, per spec.md §4.1.
package core

import (
	"strings"

	"github.com/sanskritgo/vyakarana/internal/sounds"
)

// SvaraKind discriminates the three accent possibilities a Term can carry.
type SvaraKind int

const (
	// SvaraNone means no accent has been assigned yet.
	SvaraNone SvaraKind = iota
	// SvaraAnudatta marks the entire term as anudātta.
	SvaraAnudatta
	// SvaraUdatta marks a specific vowel (by 0-based index among the
	// term's vowels) as udātta.
	SvaraUdatta
	// SvaraSvarita marks a specific vowel as svarita.
	SvaraSvarita
)

// Svara models the accent on a Term: a discriminant plus a payload index,
// the Go analogue of Rust's `enum Svara { Anudatta, Udatta(usize),
// Svarita(usize) }`.
type Svara struct {
	Kind        SvaraKind
	VowelIndex  int
}

// Gana is the dhātu class (bhvādi, adādi, ...), 1-10 plus juhotyādi etc.
type Gana int

// Antargana names a sub-list within a gana that changes rule eligibility
// (e.g. kuṭādi within tudādi, or puṣādi within divādi).
type Antargana string

// Term is the atomic unit the engine operates on: a morpheme or a
// fragment of one. See spec.md §3 "Term" for the full invariants.
type Term struct {
	// U is the aupadeśika (taught) form, including anubandhas, if any.
	// Whether it is set is tracked by hasU (see HasU), so an explicitly set
	// empty U is distinct from an unset one.
	U string
	hasU bool

	// Text is the current surface text, mutated by rules.
	Text string

	// Svara is this term's accent assignment, if any.
	SvaraVal Svara

	// Tags is this term's samjñā/flag bitset.
	Tags TagSet

	// Sthanivat is the snapshot used by sthānivad-bhāva rules (1.1.56) to
	// see the pre-substitution form. Maintained by MaybeSaveSthanivat.
	Sthanivat string

	// Gana/Antargana apply only to dhātus.
	GanaVal      Gana
	hasGana      bool
	AntarganaVal Antargana

	// Lakshanas is the stack of earlier aupadeśika forms this term has
	// had, supporting pratyaya-lakṣaṇa (1.1.62): after deletion, a term
	// still behaves as if it were its former self.
	Lakshanas []string
}

// MakeUpadesha creates a term from its taught (aupadeśika) form.
func MakeUpadesha(u string) *Term {
	return &Term{U: u, hasU: true, Text: u, Sthanivat: u}
}

// MakeText creates a term from plain surface text; U is left unset.
func MakeText(text string) *Term {
	return &Term{Text: text, Sthanivat: text}
}

// MakeDhatu creates a dhātu term.
func MakeDhatu(u string, gana Gana, antargana Antargana) *Term {
	t := MakeUpadesha(u)
	t.GanaVal = gana
	t.hasGana = true
	t.AntarganaVal = antargana
	t.Tags.Add(Dhatu)
	return t
}

// MakeAgama creates an āgama term.
func MakeAgama(u string) *Term {
	t := MakeUpadesha(u)
	t.Tags.Add(Agama)
	return t
}

// HasU reports whether the term has an aupadeśika form at all.
func (t *Term) HasU() bool { return t.hasU }

// SetU sets the term's aupadeśika form.
func (t *Term) SetU(u string) {
	t.U = u
	t.hasU = true
}

// Gana returns the term's gaṇa, if any.
func (t *Term) Gana() (Gana, bool) { return t.GanaVal, t.hasGana }

// SetGana sets the term's gaṇa.
func (t *Term) SetGana(g Gana) {
	t.GanaVal = g
	t.hasGana = true
}

// NumVowels returns the number of vowels contained in Text.
func (t *Term) NumVowels() int {
	n := 0
	for i := 0; i < len(t.Text); i++ {
		if sounds.IsAc(t.Text[i]) {
			n++
		}
	}
	return n
}

// Len is a wrapper over len(Text).
func (t *Term) Len() int { return len(t.Text) }

// IsEmpty reports whether Text is empty (representing lopa/luk/ślu/lup).
func (t *Term) IsEmpty() bool { return t.Text == "" }

// --- Sound selectors ---

// Adi returns the first sound, or (0, false) if the term is empty.
func (t *Term) Adi() (byte, bool) {
	if t.Text == "" {
		return 0, false
	}
	return t.Text[0], true
}

// Antya returns the last sound, or (0, false) if the term is empty.
func (t *Term) Antya() (byte, bool) {
	if t.Text == "" {
		return 0, false
	}
	return t.Text[len(t.Text)-1], true
}

// Upadha returns the penultimate sound (1.1.65 alo'ntyāt pūrva upadhā).
func (t *Term) Upadha() (byte, bool) {
	if len(t.Text) < 2 {
		return 0, false
	}
	return t.Text[len(t.Text)-2], true
}

// LastVowel returns the last vowel in Text, if any.
func (t *Term) LastVowel() (byte, bool) {
	for i := len(t.Text) - 1; i >= 0; i-- {
		if sounds.IsAc(t.Text[i]) {
			return t.Text[i], true
		}
	}
	return 0, false
}

// At returns the sound at byte index i.
func (t *Term) At(i int) (byte, bool) {
	if i < 0 || i >= len(t.Text) {
		return 0, false
	}
	return t.Text[i], true
}

// --- Sound predicates ---

func matches(c byte, ok bool, p sounds.Pattern) bool {
	if !ok {
		return false
	}
	return p.Matches(c)
}

// HasAdi reports whether the first sound matches pattern.
func (t *Term) HasAdi(p sounds.Pattern) bool { c, ok := t.Adi(); return matches(c, ok, p) }

// HasAntya reports whether the last sound matches pattern.
func (t *Term) HasAntya(p sounds.Pattern) bool { c, ok := t.Antya(); return matches(c, ok, p) }

// HasUpadha reports whether the penultimate sound matches pattern.
func (t *Term) HasUpadha(p sounds.Pattern) bool { c, ok := t.Upadha(); return matches(c, ok, p) }

// HasLastVowel reports whether the last vowel matches pattern.
func (t *Term) HasLastVowel(p sounds.Pattern) bool { c, ok := t.LastVowel(); return matches(c, ok, p) }

// HasAt reports whether the sound at i matches pattern.
func (t *Term) HasAt(i int, p sounds.Pattern) bool { c, ok := t.At(i); return matches(c, ok, p) }

// IsEkac reports whether the term has exactly one vowel.
func (t *Term) IsEkac() bool { return t.NumVowels() == 1 }

// HasAc reports whether the term contains at least one vowel.
func (t *Term) HasAc() bool {
	for i := 0; i < len(t.Text); i++ {
		if sounds.IsAc(t.Text[i]) {
			return true
		}
	}
	return false
}

// IsSamyogadi reports whether the term begins with a consonant conjunct.
func (t *Term) IsSamyogadi() bool { return sounds.IsSamyogadi(t.Text) }

// IsSamyoganta reports whether the term ends with a consonant conjunct.
func (t *Term) IsSamyoganta() bool { return sounds.IsSamyoganta(t.Text) }

// IsHrasva reports whether the final sound is a short vowel.
func (t *Term) IsHrasva() bool {
	c, ok := t.Antya()
	return ok && sounds.IsHrasva(c)
}

// IsDirgha reports whether the final sound is a long vowel.
func (t *Term) IsDirgha() bool {
	c, ok := t.Antya()
	return ok && sounds.IsDirgha(c)
}

// IsLaghu reports whether the last syllable is (or could be) laghu, per
// 1.4.10-1.4.12.
func (t *Term) IsLaghu() bool {
	c, ok := t.Antya()
	if !ok {
		return false
	}
	if sounds.IsAc(c) {
		return sounds.IsHrasva(c)
	}
	u, uok := t.Upadha()
	if !uok {
		return false
	}
	return sounds.IsHrasva(u) && c != 'C'
}

// IsGuru reports whether the last syllable is guru.
func (t *Term) IsGuru() bool { return !t.IsLaghu() }

// --- Text / tag predicates ---

// HasUVal reports whether the term's aupadeśika equals s.
func (t *Term) HasUVal(s string) bool { return t.hasU && t.U == s }

// HasUIn reports whether the term's aupadeśika is one of items.
func (t *Term) HasUIn(items []string) bool {
	if !t.hasU {
		return false
	}
	for _, it := range items {
		if it == t.U {
			return true
		}
	}
	return false
}

// HasAnyLakshana reports whether the term has at least one recorded
// former aupadeśika.
func (t *Term) HasAnyLakshana() bool { return len(t.Lakshanas) > 0 }

// HasLakshana reports whether u is among the term's former aupadeśikas.
func (t *Term) HasLakshana(u string) bool {
	for _, l := range t.Lakshanas {
		if l == u {
			return true
		}
	}
	return false
}

// HasLakshanaIn reports whether any of us is among the former aupadeśikas.
func (t *Term) HasLakshanaIn(us []string) bool {
	for _, u := range us {
		if t.HasLakshana(u) {
			return true
		}
	}
	return false
}

// HasText reports whether Text equals s.
func (t *Term) HasText(s string) bool { return t.Text == s }

// HasTextIn reports whether Text is one of items.
func (t *Term) HasTextIn(items []string) bool {
	for _, it := range items {
		if it == t.Text {
			return true
		}
	}
	return false
}

// HasPrefixIn reports whether Text starts with any of prefixes.
func (t *Term) HasPrefixIn(prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(t.Text, p) {
			return true
		}
	}
	return false
}

// HasSuffixIn reports whether Text ends with any of suffixes.
func (t *Term) HasSuffixIn(suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(t.Text, s) {
			return true
		}
	}
	return false
}

// HasGana reports whether the term has the given dhātu gaṇa.
func (t *Term) HasGana(g Gana) bool { return t.hasGana && t.GanaVal == g }

// HasAntargana reports whether the term has the given antargaṇa.
func (t *Term) HasAntargana(a Antargana) bool { return t.AntarganaVal == a }

// --- Samjñā convenience wrappers. These improve readability in rule code,
// mirroring the identical wrappers in term.rs. ---

func (t *Term) IsAbhyasa() bool      { return t.Tags.Has(Abhyasa) }
func (t *Term) IsAbhyasta() bool     { return t.Tags.Has(Abhyasta) }
func (t *Term) IsAgama() bool        { return t.Tags.Has(Agama) }
func (t *Term) IsArdhadhatuka() bool { return t.Tags.Has(Ardhadhatuka) }
func (t *Term) IsAtmanepada() bool   { return t.Tags.Has(Atmanepada) }
func (t *Term) IsAvyaya() bool       { return t.Tags.Has(Avyaya) }
func (t *Term) IsFinal() bool        { return t.Tags.Has(Final) }
func (t *Term) IsDhatu() bool        { return t.Tags.Has(Dhatu) }
func (t *Term) IsGati() bool         { return t.Tags.Has(Gati) }
func (t *Term) IsKnit() bool         { return t.Tags.HasAny(Kit, Ngit) }
func (t *Term) IsKrt() bool          { return t.Tags.Has(Krt) }
func (t *Term) IsKrtya() bool        { return t.Tags.Has(Krtya) }
func (t *Term) IsLupta() bool        { return t.Tags.HasAny(Luk, Slu, Lup) }
func (t *Term) IsNiPratyaya() bool   { return t.HasUIn([]string{"Ric", "RiN"}) }
func (t *Term) IsNipata() bool       { return t.Tags.Has(Nipata) }
func (t *Term) IsNipatana() bool     { return t.Tags.Has(Nipatana) }
func (t *Term) IsNistha() bool       { return t.Tags.Has(Nistha) }
func (t *Term) IsPada() bool         { return t.Tags.Has(Pada) }
func (t *Term) IsParasmaipada() bool { return t.Tags.Has(Parasmaipada) }
func (t *Term) IsPratipadika() bool  { return t.Tags.Has(Pratipadika) }
func (t *Term) IsNyapPratyaya() bool {
	return t.Tags.Has(Pratyaya) && t.HasUIn([]string{"cAp", "wAp", "qAp", "NIn", "NIp", "NIz"})
}
func (t *Term) IsAapPratyaya() bool {
	return t.Tags.Has(Pratyaya) && t.HasUIn([]string{"cAp", "wAp", "qAp"})
}
func (t *Term) IsPratipadikaOrNyapu() bool {
	return t.Tags.Has(Pratipadika) || t.IsNyapPratyaya() || t.HasUVal("UN")
}
func (t *Term) IsPratyaya() bool         { return t.Tags.Has(Pratyaya) }
func (t *Term) IsSankhya() bool          { return t.Tags.Has(Sankhya) }
func (t *Term) IsUnadi() bool            { return t.Tags.Has(Unadi) }
func (t *Term) HasUnadi(u string) bool   { return t.Tags.Has(Unadi) && t.HasUVal(u) }
func (t *Term) IsSamasa() bool           { return t.Tags.Has(Samasa) }
func (t *Term) IsSambuddhi() bool        { return t.Tags.Has(Sambuddhi) }
func (t *Term) IsSarvadhatuka() bool     { return t.Tags.Has(Sarvadhatuka) }
func (t *Term) IsSarvanama() bool        { return t.Tags.Has(Sarvanama) }
func (t *Term) IsSarvanamasthana() bool  { return t.Tags.Has(Sarvanamasthana) }
func (t *Term) IsSup() bool              { return t.Tags.Has(Sup) }
func (t *Term) IsTaddhita() bool         { return t.Tags.Has(Taddhita) }
func (t *Term) IsTin() bool              { return t.Tags.Has(Tin) }
func (t *Term) IsUpasarga() bool         { return t.Tags.Has(Upasarga) }
func (t *Term) IsVibhakti() bool         { return t.Tags.Has(Vibhakti) }
func (t *Term) IsVrddha() bool           { return t.Tags.Has(Vrddha) }
func (t *Term) IsYanLuk() bool           { return t.HasUVal("yaN") && t.IsLupta() }

// IsAnga reports whether the term has the aṅga saṁjñā (1.4.13): dhātu,
// prātipadika/nyāp-stem, or pratyaya (the last for e.g. Snu in sunoti).
func (t *Term) IsAnga() bool {
	return t.IsDhatu() || t.IsPratipadikaOrNyapu() || t.IsPratyaya()
}

// IsAprkta reports whether the term is apṛkta (1.2.41): a single-sound
// pratyaya.
func (t *Term) IsAprkta() bool { return t.IsPratyaya() && len(t.Text) == 1 }

// IsItAgama reports whether the term is the iṭ-āgama specifically (not the
// tiṅ-pratyaya "iṭ").
func (t *Term) IsItAgama() bool { return t.IsAgama() && t.HasUVal("iw") }

// --- Mutators ---

// SetAdi replaces the first sound with s. Setting on an empty string
// appends.
func (t *Term) SetAdi(s string) {
	if t.Text == "" {
		t.Text = s
		return
	}
	t.Text = s + t.Text[1:]
}

// SetAntya replaces the last sound with s.
func (t *Term) SetAntya(s string) {
	n := len(t.Text)
	if n == 0 {
		t.Text = s
		return
	}
	t.Text = t.Text[:n-1] + s
}

// SetUpadha replaces the penultimate sound with s.
func (t *Term) SetUpadha(s string) {
	n := len(t.Text)
	if n < 2 {
		return
	}
	t.Text = t.Text[:n-2] + s + t.Text[n-1:]
}

// SetLastVowel replaces the last vowel with s.
func (t *Term) SetLastVowel(s string) {
	for i := len(t.Text) - 1; i >= 0; i-- {
		if sounds.IsAc(t.Text[i]) {
			t.SetAt(i, s)
			return
		}
	}
}

// SetAt replaces the byte at index i with s.
func (t *Term) SetAt(i int, s string) {
	if i < 0 || i >= len(t.Text) {
		return
	}
	t.Text = t.Text[:i] + s + t.Text[i+1:]
}

// SetText replaces Text with s.
func (t *Term) SetText(s string) { t.Text = s }

// SetSvara sets the term's accent.
func (t *Term) SetSvara(s Svara) { t.SvaraVal = s }

// FindAndReplaceText replaces the first occurrence of needle with sub.
func (t *Term) FindAndReplaceText(needle, sub string) {
	if i := strings.Index(t.Text, needle); i >= 0 {
		t.Text = t.Text[:i] + sub + t.Text[i+len(needle):]
	}
}

// MaybeSaveSthanivat copies Text into Sthanivat unless doing so would
// record an at-lopa on an a-final, an asiddha placeholder sound (marked
// here by the transient 'x' asiddha marker), or a vowel-final Sthanivat
// whose final sound is now y or v. An empty Text is always copied. See
// spec.md §4.1.
func (t *Term) MaybeSaveSthanivat() {
	if t.Text == "" {
		t.Sthanivat = t.Text
		return
	}
	if strings.HasSuffix(t.Sthanivat, "a") && !strings.HasSuffix(t.Text, "a") {
		return
	}
	if strings.ContainsRune(t.Text, 'x') {
		return
	}
	sthanivatAntya := t.Sthanivat[len(t.Sthanivat)-1]
	textAntya := t.Text[len(t.Text)-1]
	if sounds.IsAc(sthanivatAntya) {
		if textAntya == 'y' || textAntya == 'v' {
			return
		}
	}
	t.Sthanivat = t.Text
}

// ForceSaveSthanivat unconditionally copies Text into Sthanivat.
func (t *Term) ForceSaveSthanivat() { t.Sthanivat = t.Text }

// SaveLakshana pushes the current U onto the lakṣaṇa stack. Must be
// called before any rule that changes U.
func (t *Term) SaveLakshana() {
	if t.hasU {
		t.Lakshanas = append(t.Lakshanas, t.U)
	}
}

// AddTag adds tag to the term's metadata.
func (t *Term) AddTag(tag Tag) { t.Tags.Add(tag) }

// AddTags adds every tag in tags.
func (t *Term) AddTags(tags ...Tag) { t.Tags.AddAll(tags...) }

// RemoveTag removes tag from the term's metadata.
func (t *Term) RemoveTag(tag Tag) { t.Tags.Remove(tag) }

// RemoveTags removes every tag in tags.
func (t *Term) RemoveTags(tags ...Tag) { t.Tags.RemoveAll(tags...) }

// Clone returns a deep copy, used when a Prakriyā forks on an optional
// rule.
func (t *Term) Clone() *Term {
	clone := *t
	clone.Lakshanas = append([]string(nil), t.Lakshanas...)
	return &clone
}
