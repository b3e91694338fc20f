// Package splitter implements the external sandhi splitter: the inverse
// of internal/sandhi's join tables. It is an external collaborator per
// spec.md §1, specified only at its interface (Split), grounded on
// vidyut-sandhi/src/splitter.rs.
package splitter

import (
	"sort"
	"strings"

	"github.com/sanskritgo/vyakarana/internal/sandhi"
)

// SplitResult is one candidate (first, second) split of a joined string.
type SplitResult struct {
	First, Second string
	// Rank is a small heuristic score: higher is more plausible. Splits
	// whose Second begins a known pratyaya/prefix are ranked above raw
	// character-boundary splits.
	Rank int
}

// knownPrefixes is consulted to rank candidate splits.
var knownPrefixes = []string{"ca", "tu", "eva", "api", "iti", "na", "ca"}

// Split returns every valid (first, second) split of joined, derived by
// inverting internal/sandhi's external rule table plus a plain
// no-op "already separate" candidate, ranked by plausibility.
func Split(joined string) []SplitResult {
	var results []SplitResult

	// The trivial split: the string was never joined (common for the
	// common case of no boundary interaction).
	if i := strings.IndexByte(joined, ' '); i >= 0 {
		results = append(results, rank(SplitResult{First: joined[:i], Second: joined[i+1:]}))
	}

	for _, rule := range sandhi.ExternalTable {
		if idx := strings.Index(joined, strings.TrimSpace(rule.Joined)); idx >= 0 {
			first := joined[:idx] + rule.FirstSuffix
			second := rule.SecondPrefix + joined[idx+len(strings.TrimSpace(rule.Joined)):]
			results = append(results, rank(SplitResult{First: first, Second: second}))
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Rank > results[j].Rank })
	return results
}

func rank(r SplitResult) SplitResult {
	for _, p := range knownPrefixes {
		if strings.HasPrefix(r.Second, p) {
			r.Rank = 1
			return r
		}
	}
	return r
}

// Rejoin joins a split candidate back into one string with
// sandhi.JoinPadas; under the sandhi-closure invariant from spec.md §8 the
// result must equal the string that was split.
func Rejoin(r SplitResult) string {
	return sandhi.JoinPadas(r.First, r.Second)
}
