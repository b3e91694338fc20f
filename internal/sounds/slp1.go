package sounds

import "fmt"

// alphabet is every character accepted in a validated SLP1 string, beyond
// the vowel/consonant classes in AC/HAL: anusvāra and visarga.
var alphabet = NewSet("aAiIuUfFxXeEoOMHkKgGNcCjJYwWqQRtTdDnpPbBmyrlvSzsh")

// ValidateSLP1 checks that text conforms to the SLP1 encoding described in
// spec.md's Term invariants: ASCII only, every character in the fixed
// alphabet, and `~`/`\`/`^` markers positioned immediately after a valid
// carrier vowel (or, for `\`/`^`, after `~`). It mirrors
// vidyut-prakriya/src/args/slp1_string.rs method-for-method.
//
// Returns the offending rune index and a reason on failure.
func ValidateSLP1(text string) (ok bool, index int, reason string) {
	bytes := []byte(text)
	for i, c := range bytes {
		if c > 127 {
			return false, i, fmt.Sprintf("char %q is not ASCII", c)
		}
		if !alphabet.Contains(c) && c != '\\' && c != '^' && c != '~' {
			return false, i, fmt.Sprintf("char %q is ASCII but not valid SLP1", c)
		}
		if c == '\\' || c == '^' || c == '~' {
			if i == 0 {
				return false, i, fmt.Sprintf("char %q must follow a vowel but is the first char", c)
			}
			prev := bytes[i-1]
			prevIsVowel := AC.Contains(prev)
			if c == '~' && !prevIsVowel {
				return false, i, fmt.Sprintf("char '~' must follow a vowel but follows %q", prev)
			}
			if c != '~' && !prevIsVowel && prev != '~' {
				return false, i, fmt.Sprintf("char %q must follow a vowel or '~' but follows %q", c, prev)
			}
		}
	}
	return true, 0, ""
}
