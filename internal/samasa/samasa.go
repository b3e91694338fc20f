// Package samasa implements compound (samāsa) formation: joining a
// pūrvapada and uttarapada into one prātipadika and, for certain
// compound types, appending a samāsānta suffix to the result. Grounded
// on vidyut-prakriya/src/taddhita/samasanta_prakarana.rs (the
// "operations scoped to the compound's final member" pattern) and
// spec.md §6's derive_samāsas.
package samasa

import (
	"github.com/sanskritgo/vyakarana/internal/args"
	"github.com/sanskritgo/vyakarana/internal/core"
	"github.com/sanskritgo/vyakarana/internal/sandhi"
)

// samasaTag maps each SamasaType to the saṁjñā it contributes to the
// compound term (2.1.3-2.2.38's classification rules, abridged).
var samasaTag = map[args.SamasaType]core.Tag{
	args.Tatpurusha:      core.Tatpurusha,
	args.Bahuvrihi:       core.Bahuvrihi,
	args.SamaharaDvandva: core.SamaharaDvandva,
	args.Dvandva:         core.Itaretara,
}

// Join builds the compound's pratipadika term from pūrvapada and
// uttarapada (already-finalized subanta texts with their own sup
// stripped, per 2.4.71's luk of the madhya-pada's sup), joining them
// with internal sandhi and tagging the result Pratipadika/Samasa plus
// the specific compound-class tag.
func Join(d *core.Driver, purvaIdx, uttaraIdx int, kind args.SamasaType) int {
	purva := d.P.Term(purvaIdx)
	uttara := d.P.Term(uttaraIdx)
	if purva == nil || uttara == nil {
		return -1
	}

	joined := sandhi.JoinWithinPada(purva.Text, uttara.Text)
	compound := core.MakeText(joined)
	compound.AddTags(core.Pratipadika, core.Samasa)
	if tag, ok := samasaTag[kind]; ok {
		compound.AddTag(tag)
	}

	var iCompound int
	d.TryRun("2.1.3", func(p *core.Prakriya) bool {
		p.RemoveAt(uttaraIdx)
		p.RemoveAt(purvaIdx)
		p.InsertBefore(purvaIdx, compound)
		iCompound = purvaIdx
		return true
	})
	return iCompound
}

// SamasantaSuffix appends a samāsānta suffix (e.g. "wac", "kap") named
// by the taddhita/samasanta_prakarana.rs dispatch when the compound's
// final member belongs to a listed class; unlisted compounds take no
// samāsānta and this is a no-op.
func SamasantaSuffix(d *core.Driver, compoundIdx int, suffix string) int {
	if suffix == "" {
		return compoundIdx
	}
	compound := d.P.Term(compoundIdx)
	if compound == nil {
		return -1
	}
	s := core.MakeUpadesha(suffix)
	s.AddTags(core.Pratyaya, core.Taddhita)
	var iSuffix int
	d.TryRun("5.4.68", func(p *core.Prakriya) bool {
		p.InsertAfter(compoundIdx, s)
		iSuffix = compoundIdx + 1
		return true
	})
	return iSuffix
}
