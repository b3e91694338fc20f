package core

import "github.com/sanskritgo/vyakarana/internal/sounds"

// TermView is a lightweight window [Start, End] over a contiguous span of
// terms, used so a pratyaya plus its āgamas can be queried as one object
// (spec.md §4.2). Construction convention: starting at a given term,
// extend forward through the agama terms that immediately follow it; the
// next non-agama term is not included.
type TermView struct {
	p          *Prakriya
	Start, End int
}

// NewTermView builds a TermView starting at index i and extending through
// any immediately following āgama terms.
func NewTermView(p *Prakriya, i int) *TermView {
	end := i
	for end+1 < len(p.Terms) && p.Terms[end+1].IsAgama() {
		end++
	}
	return &TermView{p: p, Start: i, End: end}
}

// First returns the first term in the view.
func (v *TermView) First() *Term { return v.p.Terms[v.Start] }

// Last returns the last term in the view.
func (v *TermView) Last() *Term { return v.p.Terms[v.End] }

// Text returns the concatenated text of every term in the view.
func (v *TermView) Text() string {
	var out []byte
	for i := v.Start; i <= v.End; i++ {
		out = append(out, v.p.Terms[i].Text...)
	}
	return string(out)
}

// HasAdi reports whether the view's concatenated first sound matches
// pattern.
func (v *TermView) HasAdi(p sounds.Pattern) bool {
	text := v.Text()
	if text == "" {
		return false
	}
	return p.Matches(text[0])
}

// Upadha returns the penultimate sound of the view's concatenated text.
func (v *TermView) Upadha() (byte, bool) {
	text := v.Text()
	if len(text) < 2 {
		return 0, false
	}
	return text[len(text)-2], true
}

// IsKnit reports whether the view's last term is kit or ṅit.
func (v *TermView) IsKnit() bool { return v.Last().IsKnit() }

// HasLakshana reports whether the view's last term has u among its former
// aupadeśikas.
func (v *TermView) HasLakshana(u string) bool { return v.Last().HasLakshana(u) }
