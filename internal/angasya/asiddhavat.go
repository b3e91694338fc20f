package angasya

import "github.com/sanskritgo/vyakarana/internal/core"

// AsiddhavatBlock runs the 6.4.22-6.4.175 sub-block described in spec.md
// §4.6: every rule in the block tests only the frozen input snapshot
// taken at block entry, and writes into the live Prakriya; a rule in the
// block therefore never sees another rule in the same block having
// already fired, which is what makes the block commutative in its
// observable effect. Grounded on
// vidyut-prakriya/src/angasya/asiddhavat.rs.
func AsiddhavatBlock(d *core.Driver, dhatuIdx int) {
	frozen := make([]core.Term, len(d.P.Terms))
	for i, t := range d.P.Terms {
		frozen[i] = *t
	}
	snapshot := func(i int) *core.Term {
		if i < 0 || i >= len(frozen) {
			return nil
		}
		return &frozen[i]
	}

	// DirghaSarvanamasthana reads the live Prakriya, so it runs first,
	// while the live state still equals the snapshot.
	DirghaSarvanamasthana(d, dhatuIdx)
	naLopa(d, snapshot, dhatuIdx)
	atLopaSarvanamasthana(d, snapshot, dhatuIdx)
}

// naLopa runs 6.4.24: na-lopa of a penultimate "n" before a kṅit-jhal
// pratyaya (e.g. hanti -> han's n survives, but certain forms delete it;
// modeled here for the common "if penultimate n precedes a kit/Nit
// consonant-initial pratyaya, drop it" case).
func naLopa(d *core.Driver, snapshot func(int) *core.Term, dhatuIdx int) {
	dhatu := snapshot(dhatuIdx)
	if dhatu == nil {
		return
	}
	up, ok := dhatu.Upadha()
	if !ok || up != 'n' {
		return
	}
	j := d.NextNonEmpty(dhatuIdx)
	n := snapshot(j)
	if n == nil || !n.IsKnit() {
		return
	}
	d.RunAt("6.4.24", dhatuIdx, func(t *core.Term) bool {
		if len(t.Text) < 2 {
			return false
		}
		i := len(t.Text) - 2
		t.Text = t.Text[:i] + t.Text[i+1:]
		return true
	})
}

// atLopaSarvanamasthana runs a sarvanāmasthāna-conditioned variant of
// 6.4.134-class at-lopa: a pada's final short "a" drops before a vowel-
// initial sarvanāmasthāna ending (e.g. rājan-class weak stems).
func atLopaSarvanamasthana(d *core.Driver, snapshot func(int) *core.Term, dhatuIdx int) {
	anga := snapshot(dhatuIdx)
	if anga == nil {
		return
	}
	a, ok := anga.Antya()
	if !ok || a != 'a' {
		return
	}
	j := d.NextNonEmpty(dhatuIdx)
	n := snapshot(j)
	if n == nil || !n.IsSarvanamasthana() {
		return
	}
	c, ok := n.Adi()
	if !ok || !isVowelByte(c) {
		return
	}
	d.RunAt("6.4.134", dhatuIdx, func(t *core.Term) bool {
		if len(t.Text) == 0 {
			return false
		}
		t.Text = t.Text[:len(t.Text)-1]
		return true
	})
}

func isVowelByte(c byte) bool {
	switch c {
	case 'a', 'A', 'i', 'I', 'u', 'U', 'f', 'F', 'x', 'X', 'e', 'E', 'o', 'O':
		return true
	}
	return false
}
