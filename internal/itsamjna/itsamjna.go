// Package itsamjna implements the it-saṁjñā analyser (Aṣṭādhyāyī 1.3.2-
// 1.3.9): stripping anubandhas from an aupadeśika form and promoting them
// to tags on the Term, per spec.md §4.4. Grounded on
// vidyut-prakriya/src/it_samjna.rs.
package itsamjna

import (
	"strings"

	"github.com/sanskritgo/vyakarana/internal/core"
	"github.com/sanskritgo/vyakarana/internal/sounds"
)

// cutuClass is the "cu~ wu~" pratyāhāra (1.3.7): the palatal stops c, C,
// j, J, Y plus the retroflex stops w, W, q, Q, R.
var cutuClass = sounds.NewSet("cCjJYwWqQR")
var laSAku = sounds.NewSet("lSkKgGN")

// cutuSurvivors are the 1.3.7 exceptions: these leading consonants are
// NOT stripped even though they're in the cuṭu class, because later
// rules (e.g. the cu/cu-varga ādeśas) still need to see them.
var cutuSurvivors = map[byte]bool{'C': true, 'J': true, 'W': true, 'Q': true}

// Analyze strips every anubandha from t's U field, leaving the reduced
// Text, and adds the corresponding it tags. It follows the five-step
// cascade described in spec.md §4.4:
//  1. strip a final "i~r" sequence
//  2. strip internal nasal-vowel anubandhas (a~-style)
//  3. record non-nasal trailing accent markers
//  4. strip a final consonant (except vibhakti t/u/s/m, rule 1.3.4)
//  5. strip a leading ñi/ṭu/ḍu (any upadeśa), then, for pratyayas only,
//     leading ṣ, cuṭu, and laś-aku markers
//
// Returns a *core.Error with ErrorKind InvalidUpadesha if the input is
// empty or the leading-sound cascade reaches an impossible state.
func Analyze(t *core.Term) error {
	if !t.HasU() {
		return nil
	}
	u := t.U
	if u == "" {
		return core.NewError(core.InvalidUpadesha, 0, "empty upadesha")
	}

	text := u

	// Step 1: final "i~r" (irit) marker, for upadeśas ending "...i~r"
	// rather than a simple consonant.
	if strings.HasSuffix(text, "i~r") {
		text = text[:len(text)-3]
		t.AddTag(core.Irit)
	}

	// Step 2 + 3: walk the string, stripping `~` after nasal-marked
	// vowels and recording `\`/`^` as accent.
	var b strings.Builder
	i := 0
	for i < len(text) {
		c := text[i]
		b.WriteByte(c)
		i++
		if sounds.IsAc(c) && i < len(text) && text[i] == '~' {
			i++ // consume the nasal marker
			switch c {
			case 'u', 'U':
				t.AddTag(core.Udit)
			case 'f', 'F':
				t.AddTag(core.Rdit)
			case 'x', 'X':
				t.AddTag(core.Xdit)
			}
			if i < len(text) && (text[i] == '\\' || text[i] == '^') {
				if text[i] == '\\' {
					t.AddTag(core.Anudattet)
				} else {
					t.AddTag(core.Svaritet)
				}
				i++
			}
			continue
		}
		if sounds.IsAc(c) && i < len(text) && (text[i] == '\\' || text[i] == '^') {
			if text[i] == '\\' {
				t.SetSvara(core.Svara{Kind: core.SvaraAnudatta})
			} else {
				t.SetSvara(core.Svara{Kind: core.SvaraSvarita, VowelIndex: countVowels(b.String()) - 1})
			}
			i++
		}
	}
	text = b.String()

	// Step 4: strip a final consonant, unless the term is a vibhakti
	// ending in t/u/s/m (1.3.4 na vibhaktau tusmah).
	if len(text) > 0 && sounds.IsHal(text[len(text)-1]) {
		final := text[len(text)-1]
		isProtectedVibhakti := t.IsVibhakti() && strings.ContainsRune("tusm", rune(final))
		if !isProtectedVibhakti {
			switch final {
			case 'k':
				t.AddTag(core.Kit)
			case 'N':
				t.AddTag(core.Ngit)
			case 'Y':
				t.AddTag(core.Njit)
			case 'p':
				t.AddTag(core.Pit)
			case 'S':
				t.AddTag(core.Sit)
			case 'q', 'Q':
				// it letters that carry no named tag of their own in this
				// simplified model still get stripped.
			}
			text = text[:len(text)-1]
		}
	}

	// Step 5a: strip a leading ñi/ṭu/ḍu marker (1.3.5 ādir ñituḍavaḥ). This
	// applies to every upadeśa, not just pratyayas -- e.g. the dhātu
	// "qukf\Y" reduces to "kf", not just pratyaya-class terms.
	for _, prefix := range []string{"Yi", "wu", "qu"} {
		if strings.HasPrefix(text, prefix) {
			text = text[len(prefix):]
			break
		}
	}

	// Step 5b: the remaining leading-marker rules (1.3.6-1.3.8) are scoped
	// to pratyayas only.
	if t.IsPratyaya() {
		if strings.HasPrefix(text, "z") {
			text = text[1:]
		}
		if len(text) > 0 && cutuClass.Contains(text[0]) && !cutuSurvivors[text[0]] {
			if text[0] == 'R' {
				t.AddTag(core.Rit)
			}
			text = text[1:]
		}
		if !t.IsTaddhita() && len(text) > 0 && laSAku.Contains(text[0]) {
			text = text[1:]
		}
	}

	t.Text = text
	t.Sthanivat = text
	return nil
}

func countVowels(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if sounds.IsAc(s[i]) {
			n++
		}
	}
	return n
}
