// Package sandhi implements the two sandhi layers from spec.md §4.9: the
// internal (ac-sandhi) join within a pada, applied once at each boundary
// between adjacent term texts (vowel pairs inside a single term text are
// not re-examined), and the external
// join table used between padas and by the tripādī. Grounded on
// vidyut-prakriya/src/ac_sandhi.rs and vidyut-sandhi/src/generator.rs.
package sandhi

import "github.com/sanskritgo/vyakarana/internal/sounds"

var savarnaGroups = [][]byte{
	{'a', 'A'}, {'i', 'I'}, {'u', 'U'}, {'f', 'F'}, {'x', 'X'},
}

func savarnaOf(c byte) (byte, bool) {
	for _, g := range savarnaGroups {
		for _, x := range g {
			if x == c {
				return g[1], true // the long member of the pair
			}
		}
	}
	return 0, false
}

// ecToAvAy maps an ec-final vowel (e, E, o, O) to its av/āv/ay/āy
// substitute before a following vowel, per 6.1.78 eco'yavAyAvah.
var ecToAvAy = map[byte]string{
	'e': "ay", 'E': "Ay", 'o': "av", 'O': "Av",
}

// JoinWithinPada applies internal ac-sandhi between two adjacent term
// texts, walking the boundary once. It returns the joined string; if no
// rule fires, it is a plain concatenation.
func JoinWithinPada(first, second string) string {
	if first == "" {
		return second
	}
	if second == "" {
		return first
	}
	a := first[len(first)-1]
	b := second[0]

	if !sounds.IsAc(a) || !sounds.IsAc(b) {
		return first + second
	}

	// 6.1.101 akah savarne dirghah: a homogeneous vowel pair becomes one
	// long vowel.
	if sa, ok := savarnaOf(a); ok {
		if sb, ok2 := savarnaOf(b); ok2 && sa == sb {
			return first[:len(first)-1] + string(sa) + second[1:]
		}
	}

	// 6.1.87 ad gunah: a/A + i/u/f/x -> guna.
	if a == 'a' || a == 'A' {
		if g, ok := sounds.Guna(b); ok && b != 'a' && b != 'A' {
			return first[:len(first)-1] + g + second[1:]
		}
		// 6.1.88 ad vrddhir eci: a/A + e/E/o/O -> vrddhi.
		if b == 'e' || b == 'E' || b == 'o' || b == 'O' {
			v, _ := sounds.Vrddhi(b)
			return first[:len(first)-1] + v + second[1:]
		}
	}

	// 6.1.77 iko yan aci: i/I/u/U/f/F/x/X before a dissimilar vowel -> semivowel.
	if sub, ok := yanSubstitute(a); ok {
		return first[:len(first)-1] + sub + second
	}

	// 6.1.78 eco'yavAyAvah: e/E/o/O before any vowel -> ay/Ay/av/Av. Unlike
	// guna/vrddhi, this is a substitution of the ec vowel itself: the
	// following vowel is not absorbed and survives in full.
	if sub, ok := ecToAvAy[a]; ok {
		return first[:len(first)-1] + sub + second
	}

	return first + second
}

func yanSubstitute(c byte) (string, bool) {
	switch c {
	case 'i', 'I':
		return "y", true
	case 'u', 'U':
		return "v", true
	case 'f', 'F':
		return "r", true
	case 'x', 'X':
		return "l", true
	}
	return "", false
}

// JoinTerms folds JoinWithinPada across an ordered list of term texts,
// skipping empty (lupta) terms.
func JoinTerms(texts []string) string {
	out := ""
	for _, t := range texts {
		if t == "" {
			continue
		}
		out = JoinWithinPada(out, t)
	}
	return out
}
