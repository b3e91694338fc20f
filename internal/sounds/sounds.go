// Package sounds implements the SLP1 sound alphabet and the pratyāhāra sets
// built from it. Sets are value-typed 128-bit bitmaps, initialized once at
// package load and cheap to copy, mirroring the `lazy_static! { static ref
// AC: Set = s("ac"); }` idiom from the original implementation.
package sounds

// Set is a bitmap over ASCII codepoints 0-127. It is the Go analogue of a
// small, fixed, copy-by-value set used throughout the engine to classify
// sounds ("is this char a member of JHAL?").
type Set [2]uint64

// NewSet builds a Set containing every rune in chars.
func NewSet(chars string) Set {
	var s Set
	for _, c := range chars {
		s.add(byte(c))
	}
	return s
}

func (s *Set) add(b byte) {
	if b >= 128 {
		return
	}
	s[b/64] |= 1 << (b % 64)
}

// Contains reports whether c is a member of the set.
func (s Set) Contains(c byte) bool {
	if c >= 128 {
		return false
	}
	return s[c/64]&(1<<(c%64)) != 0
}

// ContainsRune is a convenience wrapper for rune-typed callers.
func (s Set) ContainsRune(c rune) bool {
	if c < 0 || c > 127 {
		return false
	}
	return s.Contains(byte(c))
}

// Union returns a new Set containing the members of both s and other.
func (s Set) Union(other Set) Set {
	return Set{s[0] | other[0], s[1] | other[1]}
}

// Pattern is anything that can test whether a given sound matches it: a
// single byte, a Set, or a list of candidate strings (matched against a
// one-rune string). It mirrors the `impl Pattern` generic parameter used
// throughout term.rs's `has_*` family.
type Pattern interface {
	Matches(c byte) bool
}

// Byte is a Pattern matching exactly one sound.
type Byte byte

// Matches implements Pattern.
func (b Byte) Matches(c byte) bool { return byte(b) == c }

// Matches implements Pattern for Set.
func (s Set) Matches(c byte) bool { return s.Contains(c) }

// List is a Pattern matching any one of several single-byte sounds.
type List []byte

// Matches implements Pattern.
func (l List) Matches(c byte) bool {
	for _, x := range l {
		if x == c {
			return true
		}
	}
	return false
}

// Standard SLP1 pratyāhāra sets, built once at init time from the
// Aṣṭādhyāyī's Śiva-sūtras plus the vowel/consonant classes the engine's
// rules reference most often.
var (
	AC   Set // all vowels
	HAL  Set // all consonants
	IK   Set // i, u, f, x and their long forms
	YAN  Set // semivowels: y v r l
	JHAL Set // all obstruents (stops + sibilants + h)
	JHAS Set // voiced obstruents
	KHAR Set // voiceless obstruents
	CHAR Set
	KU   Set // guttural class: k kh g gh ṅ
	PU   Set // labial class: p ph b bh m
	ANUNASIKA Set
	SAR  Set // sibilants: S z s
	VASH Set
	IN   Set // members of ik + hal i.e. "iN" pratyahara-ish
)

func init() {
	AC = NewSet("aAiIuUfFxXeEoO")
	HAL = NewSet("kKgGNcCjJYwWqQRtTdDnpPbBmyrlvSzsh")
	IK = NewSet("iIuUfFxX")
	YAN = NewSet("yvrl")
	JHAL = NewSet("kKgGcCjJwWqQtTdDpPbBSzsh")
	JHAS = NewSet("gGjJqQdDbB")
	KHAR = NewSet("kKcCwWtTpPSzs")
	CHAR = NewSet("kKcCwWtTpP")
	KU = NewSet("kKgGN")
	PU = NewSet("pPbBm")
	ANUNASIKA = NewSet("NYRnm")
	SAR = NewSet("Szs")
	VASH = NewSet("jbgqd") // voiced unaspirated set used in jaś-tva contexts (paraphrase)
	IN = IK.Union(NewSet("fx"))
}

// IsAc reports whether c is a vowel.
func IsAc(c byte) bool { return AC.Contains(c) }

// IsHal reports whether c is a consonant.
func IsHal(c byte) bool { return HAL.Contains(c) }

// IsHrasva reports whether c is a short vowel.
func IsHrasva(c byte) bool {
	switch c {
	case 'a', 'i', 'u', 'f', 'x':
		return true
	}
	return false
}

// IsDirgha reports whether c is a long vowel.
func IsDirgha(c byte) bool {
	switch c {
	case 'A', 'I', 'U', 'F', 'X', 'e', 'E', 'o', 'O':
		return true
	}
	return false
}

// IsSamyogadi reports whether text begins with a consonant conjunct
// (two or more consonants before the first vowel).
func IsSamyogadi(text string) bool {
	n := 0
	for i := 0; i < len(text); i++ {
		if IsAc(text[i]) {
			break
		}
		n++
		if n >= 2 {
			return true
		}
	}
	return false
}

// IsSamyoganta reports whether text ends with a consonant conjunct.
func IsSamyoganta(text string) bool {
	n := 0
	for i := len(text) - 1; i >= 0; i-- {
		if IsAc(text[i]) {
			break
		}
		n++
		if n >= 2 {
			return true
		}
	}
	return false
}

// Guna maps a vowel to its guṇa substitute, per 1.1.3 iko guṇavṛddhī (the
// guṇa half). Returns "", false if c has no guṇa grade.
func Guna(c byte) (string, bool) {
	switch c {
	case 'i', 'I':
		return "e", true
	case 'u', 'U':
		return "o", true
	case 'f', 'F':
		return "ar", true
	case 'x', 'X':
		return "al", true
	case 'a', 'A':
		return "a", true
	}
	return "", false
}

// Vrddhi maps a vowel to its vṛddhi substitute.
func Vrddhi(c byte) (string, bool) {
	switch c {
	case 'i', 'I':
		return "E", true
	case 'u', 'U':
		return "O", true
	case 'f', 'F':
		return "Ar", true
	case 'x', 'X':
		return "Al", true
	case 'a', 'A':
		return "A", true
	case 'e':
		return "E", true
	case 'o':
		return "O", true
	}
	return "", false
}
