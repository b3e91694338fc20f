package vyakarana

import (
	"github.com/sanskritgo/vyakarana/internal/args"
	"github.com/sanskritgo/vyakarana/internal/core"
)

// DeriveDhatus derives the bare root itself: it-saṁjñā analysis plus any
// sanādi (causative/desiderative/intensive) layering requested, with no
// tiṅ, kṛt, or sup attached. Useful on its own (e.g. listing a
// dhātupāṭha's surface roots) and as the first stage every other
// Derive*-with-a-dhātu call shares. Per spec.md §6's derive_dhātus.
func (v *Vyakarana) DeriveDhatus(dh args.Dhatu) []*Prakriya {
	prakriyas := v.deriveAll(func(d *core.Driver) {
		dhatuIdx := attachDhatu(d, dh)
		attachSanadis(d, dhatuIdx, dh.Sanadis)
	})
	return v.finishAll(prakriyas)
}
