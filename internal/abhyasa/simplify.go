package abhyasa

import (
	"strings"

	"github.com/sanskritgo/vyakarana/internal/core"
	"github.com/sanskritgo/vyakarana/internal/sounds"
)

var shar = sounds.NewSet("Szs")
var khay = sounds.NewSet("kKcCwWtTpP")
var kuhClass = sounds.NewSet("kKgGh")

// kuhCu maps a ku-class (or h) initial consonant to its cu-class
// substitute (7.4.62 kuhoS cuH).
var kuhCu = map[byte]byte{'k': 'c', 'K': 'C', 'g': 'j', 'G': 'J', 'h': 'J'}

// haladi keeps only the abhyāsa's first consonant plus the rest of the
// string starting at its first vowel, per 7.4.60 halādiḥ śeṣaḥ.
func haladi(text string) string {
	var out []byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		if sounds.IsHal(c) {
			if i == 0 {
				out = append(out, c)
			}
			continue
		}
		out = append(out, text[i:]...)
		break
	}
	return string(out)
}

// sharPurva keeps a leading śar (ś/ṣ/s) plus only the khay (voiceless
// non-sibilant) consonants up to the vowel, per 7.4.61.
func sharPurva(text string) string {
	if text == "" || !shar.Contains(text[0]) {
		return text
	}
	var out []byte
	out = append(out, text[0])
	for i := 1; i < len(text); i++ {
		c := text[i]
		if khay.Contains(c) {
			out = append(out, c)
			continue
		}
		if sounds.IsAc(c) {
			out = append(out, text[i:]...)
			break
		}
	}
	return string(out)
}

// Simplify runs the core abhyāsa-reduction sequence (7.4.59-7.4.62) on
// the abhyāsa term at index i, after Dvitva has created it.
func Simplify(d *core.Driver, i int) {
	abhyasa := d.P.Term(i)
	if abhyasa == nil {
		return
	}

	// 7.4.60 / 7.4.61: collapse the onset cluster.
	if a, ok := abhyasa.Adi(); ok && shar.Contains(a) && sounds.IsSamyogadi(abhyasa.Text) {
		d.RunAt("7.4.61", i, func(t *core.Term) bool {
			reduced := sharPurva(t.Text)
			if reduced == t.Text {
				return false
			}
			t.Text = reduced
			return true
		})
	} else {
		d.RunAt("7.4.60", i, func(t *core.Term) bool {
			reduced := haladi(t.Text)
			if reduced == t.Text {
				return false
			}
			t.Text = reduced
			return true
		})
	}

	// 7.4.62 kuhoś cuḥ: ku-class or h onset becomes its cu-class match.
	abhyasa = d.P.Term(i)
	if a, ok := abhyasa.Adi(); ok && kuhClass.Contains(a) {
		sub := kuhCu[a]
		d.RunAt("7.4.62", i, func(t *core.Term) bool {
			t.SetAdi(string(sub))
			return true
		})
	}

	// 7.4.59 hrasvaH: shorten the abhyāsa's vowel.
	abhyasa = d.P.Term(i)
	if v, ok := abhyasa.LastVowel(); ok && sounds.IsDirgha(v) {
		short := shortenOf(v)
		if short != "" {
			d.RunAt("7.4.59", i, func(t *core.Term) bool {
				t.SetLastVowel(short)
				return true
			})
		}
	}

	// 7.4.66 f -> a in the abhyAsa.
	abhyasa = d.P.Term(i)
	if v, ok := abhyasa.LastVowel(); ok && (v == 'f' || v == 'F') {
		d.RunAt("7.4.66", i, func(t *core.Term) bool {
			t.SetLastVowel("a")
			return true
		})
	}
}

func shortenOf(c byte) string {
	switch c {
	case 'A':
		return "a"
	case 'I':
		return "i"
	case 'U':
		return "u"
	case 'F':
		return "f"
	case 'X':
		return "x"
	}
	return ""
}

// LitADirgha runs 7.4.70 (liṭyabhyāsasyobhayeṣām): lengthens the abhyāsa
// to "ā" for liṭ, but only when the abhyāsa text is exactly the bare
// vowel "a", not merely an abhyāsa ending in "a" (kf's abhyāsa "ca" stays
// "ca", giving cakre rather than cAkre).
func LitADirgha(d *core.Driver, i int) {
	abhyasa := d.P.Term(i)
	if abhyasa == nil || abhyasa.Text != "a" {
		return
	}
	d.RunAt("7.4.70", i, func(t *core.Term) bool {
		t.SetLastVowel("A")
		return true
	})
}

// SanIGuna runs the san/cani-conditioned vowel substitutions, simplified
// to the two most common: 7.4.79 (a -> i) and 7.4.80 (u -> i after a
// pu-yaṅ-j class onset with a second-letter a).
func SanIGuna(d *core.Driver, i int) {
	abhyasa := d.P.Term(i)
	if abhyasa == nil {
		return
	}
	if v, ok := abhyasa.LastVowel(); ok && v == 'a' {
		d.RunAt("7.4.79", i, func(t *core.Term) bool {
			t.SetLastVowel("i")
			return true
		})
		return
	}
	if v, ok := abhyasa.LastVowel(); ok && v == 'u' {
		dhatu := d.P.Term(i + 1)
		if dhatu != nil && len(dhatu.Text) >= 2 && strings.IndexByte("pPbBmyrlvj", dhatu.Text[0]) >= 0 && dhatu.Text[1] == 'a' {
			d.RunAt("7.4.80", i, func(t *core.Term) bool {
				t.SetLastVowel("i")
				return true
			})
		}
	}
}
