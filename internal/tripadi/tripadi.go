// Package tripadi implements the strictly-sequential final block
// (Aṣṭādhyāyī 8.2-8.4) described in spec.md §4.10: three ordered
// sub-passes that never revisit their own output. Grounded on
// vidyut-prakriya/src/tripadi.rs and src/tripadi/pada_8_{2,3,4}.rs.
package tripadi

import (
	"strings"

	"github.com/sanskritgo/vyakarana/internal/core"
	"github.com/sanskritgo/vyakarana/internal/sounds"
)

var inKu = sounds.NewSet("iIuUfFxXkKgGh") // iṇ-ku: ik vowels + velars + h, the ṣatva trigger set
var jhal = sounds.NewSet("kKgGcCjJwWqQtTdDpPbBSzsh")

// Pada82 runs the 8.2 block: na-lopa at pada end, saṁyogānta-lopa, and
// jaś-tva of a final jhal consonant before a voiced sound. All three are
// pada-end phenomena (spec.md §4.10), so they only fire at i's term when
// it is the last non-empty term of the whole derivation -- an anga
// followed by its own sup-pratyaya is not yet at pada end even though it
// ends a term.
func Pada82(d *core.Driver, i int) {
	t := d.P.Term(i)
	if t == nil || t.IsEmpty() || d.NextNonEmpty(i) >= 0 {
		return
	}

	// 8.2.7 nalopaH prAtipadikAntasya: final "n" of a pada drops after a
	// dIrgha vowel.
	if strings.HasSuffix(t.Text, "n") && len(t.Text) >= 2 && sounds.IsDirgha(t.Text[len(t.Text)-2]) {
		d.RunAt("8.2.7", i, func(t *core.Term) bool {
			t.Text = t.Text[:len(t.Text)-1]
			return true
		})
	}

	// 8.2.23 saMyogAntasya lopaH: a pada-final consonant cluster loses
	// all but its first member.
	if sounds.IsSamyoganta(t.Text) {
		d.RunAt("8.2.23", i, func(t *core.Term) bool {
			t.Text = dropFinalCluster(t.Text)
			return true
		})
	}

	// 8.2.39 jhalAM jaz jhasi: a pada-final jhal becomes its jaś (voiced
	// unaspirated) correspondent before a voiced sound (approximated here
	// as always, i.e. treating the pada as phrase-medial).
	if a, ok := t.Antya(); ok && jhal.Contains(a) {
		if sub, ok := jasOf(a); ok {
			d.RunAt("8.2.39", i, func(t *core.Term) bool {
				t.SetAntya(sub)
				return true
			})
		}
	}
}

// Pada83 runs the 8.3 block: ru -> visarga, anusvāra before a consonant,
// and ṣatva (s -> ṣ after an iṇ-ku sound).
func Pada83(d *core.Driver, i int) {
	t := d.P.Term(i)
	if t == nil || t.IsEmpty() {
		return
	}

	// 8.3.15 kharavasAnayor visarjanIyaH / 8.2.66 sasajuSo ruH: a final
	// "s" (from visarjanīya ru-substitution) becomes "H" at pada end.
	if strings.HasSuffix(t.Text, "s") && d.NextNonEmpty(i) < 0 {
		d.RunAt("8.3.15", i, func(t *core.Term) bool {
			t.Text = t.Text[:len(t.Text)-1] + "H"
			return true
		})
	}

	// 8.3.23 mo'nusvAraH: final "m" becomes anusvāra before a consonant.
	if strings.HasSuffix(t.Text, "m") {
		j := d.NextNonEmpty(i)
		if j >= 0 {
			if c, ok := d.P.Term(j).Adi(); ok && sounds.IsHal(c) {
				d.RunAt("8.3.23", i, func(t *core.Term) bool {
					t.Text = t.Text[:len(t.Text)-1] + "M"
					return true
				})
			}
		}
	}

	// 8.3.59 Adezapratyayayoh: s -> z after an iR-ku sound (satva).
	d.RunAt("8.3.59", i, func(t *core.Term) bool {
		changed := false
		b := []byte(t.Text)
		for k := 1; k < len(b); k++ {
			if b[k] == 's' && inKu.Contains(b[k-1]) {
				b[k] = 'z'
				changed = true
			}
		}
		if !changed {
			return false
		}
		t.Text = string(b)
		return true
	})

	// 8.3.59 (cross-term): a following term's initial "s" retroflexes
	// the same way when the iNku sound it follows belongs to the
	// *preceding* term instead (kIr + sa -> kIr + za, as in kIrzati),
	// extended to plain "r" alongside the vocalic f/F it derives from.
	if j := d.NextNonEmpty(i); j >= 0 {
		if a, ok := t.Antya(); ok && (inKu.Contains(a) || a == 'r') {
			next := d.P.Term(j)
			if c, ok := next.Adi(); ok && c == 's' {
				d.RunAt("8.3.59", j, func(nt *core.Term) bool {
					nt.SetAdi("z")
					return true
				})
			}
		}
	}
}

// Pada84 runs the 8.4 block's ṇatva: within one term, n -> R after an
// f/F/r/z sound, with only aw-ku-pu-AN-num sounds intervening; a
// pada-final n is left unchanged. The stu-class assimilation (stu -> Scu /
// zwu) and the block's other rules are not implemented.
func Pada84(d *core.Driver, i int) {
	t := d.P.Term(i)
	if t == nil || t.IsEmpty() {
		return
	}

	d.RunAt("8.4.1", i, func(t *core.Term) bool {
		changed := false
		b := []byte(t.Text)
		triggered := false
		for k := 0; k < len(b); k++ {
			switch b[k] {
			case 'f', 'F', 'r', 'z':
				triggered = true
			case 'n':
				if triggered && !(k == len(b)-1 && d.NextNonEmpty(i) < 0) {
					b[k] = 'R'
					changed = true
					triggered = false
				}
			case 'a', 'A', 'i', 'I', 'u', 'U', 'x', 'X', 'e', 'E', 'o', 'O',
				'y', 'v', 'h', 'k', 'K', 'g', 'G', 'N', 'p', 'P', 'b', 'B', 'm', 'M':
				// aw-ku-pu-AN-num sounds: transparent to the triggering
				// context, so `triggered` is left unchanged.
			default:
				triggered = false
			}
		}
		if !changed {
			return false
		}
		t.Text = string(b)
		return true
	})
}

// Run executes all three blocks, in order, over every non-empty term.
func Run(d *core.Driver) {
	for i := range d.P.Terms {
		Pada82(d, i)
	}
	for i := range d.P.Terms {
		Pada83(d, i)
	}
	for i := range d.P.Terms {
		Pada84(d, i)
	}
}

func jasOf(c byte) (byte, bool) {
	pairs := map[byte]byte{
		'k': 'g', 'K': 'g', 'c': 'j', 'C': 'j', 'w': 'q', 'W': 'q',
		't': 'd', 'T': 'd', 'p': 'b', 'P': 'b',
		'g': 'g', 'j': 'j', 'q': 'q', 'd': 'd', 'b': 'b',
	}
	v, ok := pairs[c]
	return v, ok
}

func dropFinalCluster(text string) string {
	n := 0
	i := len(text) - 1
	for ; i >= 0; i-- {
		if sounds.IsAc(text[i]) {
			break
		}
		n++
	}
	if n <= 1 {
		return text
	}
	return text[:i+2]
}
