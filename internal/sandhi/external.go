package sandhi

import "strings"

// ExternalRule is one entry in the pre-compiled external-sandhi table: a
// (first-suffix, second-prefix) pair and the joined replacement,
// generated from the systematic visarga/final-consonant/voicing rules
// per spec.md §4.9. The splitter package consumes the inverse of this
// table.
type ExternalRule struct {
	FirstSuffix  string
	SecondPrefix string
	Joined       string
}

// ExternalTable is the ordered list of external sandhi rules, longest
// FirstSuffix+SecondPrefix match first so greedy matching in JoinPadas
// prefers the most specific rule.
var ExternalTable = buildExternalTable()

func buildExternalTable() []ExternalRule {
	var t []ExternalRule

	// Visarga (ru -> H) before sounds: 8.3.34-8.3.54 (simplified to the
	// most common outcomes).
	for _, voiced := range []string{"a", "A", "i", "I", "u", "U", "e", "o", "y", "v", "r", "l", "h"} {
		t = append(t, ExternalRule{"H", voiced, "o " + voiced})
	}
	for _, khar := range []string{"k", "K", "c", "C", "w", "W", "t", "T", "p", "P", "S", "z", "s"} {
		t = append(t, ExternalRule{"H", khar, "H" + khar})
	}
	t = append(t, ExternalRule{"H", "a", "o'"}) // aH + a -> o' (8.3.17-ish, approximate)

	// Final t before g, j, d or b assimilates (jaz-tva, 8.2.39); no entry
	// covers a following vowel.
	t = append(t, ExternalRule{"t", "g", "d g"})
	t = append(t, ExternalRule{"t", "j", "j j"})
	t = append(t, ExternalRule{"t", "d", "d d"})
	t = append(t, ExternalRule{"t", "b", "d b"})

	// Final m before a consonant becomes anusvara (8.3.23).
	for _, c := range []string{"k", "K", "g", "G", "c", "C", "j", "J", "w", "W", "q", "Q",
		"t", "T", "d", "D", "n", "p", "P", "b", "B", "S", "z", "s", "h"} {
		t = append(t, ExternalRule{"m", c, "M " + c})
	}

	return t
}

// JoinPadas joins two already-finalized pada surface strings using the
// external sandhi table, falling back to a simple space-joined
// concatenation when no table entry matches (the common case where the
// boundary sounds don't interact).
func JoinPadas(first, second string) string {
	for _, rule := range ExternalTable {
		if strings.HasSuffix(first, rule.FirstSuffix) && strings.HasPrefix(second, rule.SecondPrefix) {
			base := strings.TrimSuffix(first, rule.FirstSuffix)
			rest := strings.TrimPrefix(second, rule.SecondPrefix)
			return strings.TrimSpace(base+rule.Joined) + rest
		}
	}
	return first + " " + second
}
