package vyakarana

import (
	"github.com/sanskritgo/vyakarana/internal/abhyasa"
	"github.com/sanskritgo/vyakarana/internal/angasya"
	"github.com/sanskritgo/vyakarana/internal/args"
	"github.com/sanskritgo/vyakarana/internal/core"
	"github.com/sanskritgo/vyakarana/internal/dhatukarya"
	"github.com/sanskritgo/vyakarana/internal/itsamjna"
	"github.com/sanskritgo/vyakarana/internal/sandhi"
	"github.com/sanskritgo/vyakarana/internal/sup"
	"github.com/sanskritgo/vyakarana/internal/svara"
	"github.com/sanskritgo/vyakarana/internal/tripadi"
)

// lakaraPada resolves the pada (parasmaipada/ātmanepada) a tinanta request
// actually derives in, honoring an explicit PadaOverride first and
// otherwise falling back to prayoga (karmani/bhave always take
// ātmanepada endings, per 1.3.13 Bhavakarmanoh).
func lakaraPada(t args.Tinanta) args.Pada {
	if t.PadaOverride != nil {
		return *t.PadaOverride
	}
	if t.Prayoga == args.Karmani || t.Prayoga == args.Bhave {
		return args.Atmanepada
	}
	return args.Parasmaipada
}

// litLakshana is the classical upadeśa for liṭ, recorded on the tiṅ
// term's lakṣaṇa stack so abhyasa.TriggersDvitva's lakṣaṇa lookup finds
// it (6.1.8 liṭi).
const litLakshana = "li~w"

// DeriveTinantas derives every Prakriya reachable from a finite-verb
// request: attaching the dhātu, any sanādi (causative/desiderative/
// intensive) layering, the vikaraṇa or reduplication the lakāra calls
// for, and the tiṅ-pratyaya itself, then running the aṅga section,
// tripādī, and (if enabled) svara passes.
func (v *Vyakarana) DeriveTinantas(t args.Tinanta) []*Prakriya {
	prakriyas := v.deriveAll(func(d *core.Driver) {
		dhatuIdx := attachDhatu(d, t.Dhatu)
		dhatuIdx = attachSanadis(d, dhatuIdx, t.Dhatu.Sanadis)

		pada := lakaraPada(t)
		if t.Lakara == args.Lit {
			deriveLitTinanta(d, dhatuIdx, pada, t.Purusha, t.Vacana)
		} else if sup.IsSarvadhatuka(t.Lakara) {
			deriveSarvadhatukaTinanta(d, dhatuIdx, t, pada)
		} else {
			deriveArdhadhatukaTinanta(d, dhatuIdx, t, pada)
		}

		tripadi.Run(d)
		if v.useSvaras {
			svara.Run(d)
		}
	})
	return v.finishAll(prakriyas)
}

func attachDhatu(d *core.Driver, dh args.Dhatu) int {
	dhatu := core.MakeDhatu(string(dh.Upadesha), core.Gana(dh.Gana), core.Antargana(dh.Antargana))
	for _, up := range dh.Upasargas {
		dhatu.Tags.Add(core.Upasarga) // noted on the dhatu until a proper upasarga term is prefixed
		_ = up
	}
	itsamjna.Analyze(dhatu)
	d.P.AddTerm(dhatu)
	return d.P.Len() - 1
}

// attachSanadis layers causative/desiderative/intensive pratyayas onto
// the dhātu in sequence (spec.md §10's sanādi chaining), running dvitva
// immediately when the newly attached sanādi is one of san/yaN (6.1.9).
func attachSanadis(d *core.Driver, dhatuIdx int, sanadis []args.Sanadi) int {
	anga := dhatuIdx
	for _, sanadi := range sanadis {
		u := sanadi.AsStr()
		if u == "" {
			continue
		}
		s := core.MakeUpadesha(u)
		s.AddTags(core.Pratyaya, core.Ardhadhatuka)
		itsamjna.Analyze(s)

		var iSanadi int
		d.TryRun("3.1.5", func(p *core.Prakriya) bool {
			p.InsertAfter(anga, s)
			iSanadi = anga + 1
			return true
		})

		if rule, ok := abhyasa.TriggersDvitva(d, anga); ok {
			iAbhyasa := abhyasa.Dvitva(d, rule, anga)
			if iAbhyasa >= 0 {
				abhyasa.Simplify(d, iAbhyasa)
				if sanadi == args.San {
					abhyasa.SanIGuna(d, iAbhyasa)
					angasya.ApplySaniItDirgha(d, iAbhyasa+1)
				}
				iSanadi++
			}
		}
		anga = iSanadi
	}
	return anga
}

// sarvadhatukaVikaranaFor picks the vikaraṇa a sārvadhātuka derivation
// inserts between the dhātu and the tiṅ-pratyaya. Karmaṇi/bhāve prayoga
// always takes "yak" (3.1.67) regardless of gaṇa; a handful of roots
// (BrAS, Bram, kram, ...) optionally take "Syan" ahead of their ordinary
// gaṇa-based vikaraṇa (3.1.70 vibhāṣā, e.g. Bramyati alongside Bramati),
// forked through Driver.OptionalRun so both surface forms are reachable.
func sarvadhatukaVikaranaFor(d *core.Driver, dhatu *core.Term, t args.Tinanta, gana core.Gana) string {
	if t.Prayoga != args.Kartari {
		d.Run("3.1.67", func(*core.Prakriya) {})
		return "yak"
	}
	if dhatukarya.OptionalSyanRoots[dhatu.Text] {
		if d.OptionalRun("3.1.70", func(*core.Prakriya) bool { return true }) {
			return "Syan"
		}
	}
	return dhatukarya.SarvadhatukaVikarana(args.Gana(gana))
}

// deriveSarvadhatukaTinanta handles laṭ/loṭ/laṅ/vidhi-liṅ: a vikaraṇa
// attaches between the dhātu and the tiṅ-pratyaya, and the aṅga section
// (guṇa/vṛddhi) runs against it before the tiṅ ending is appended.
func deriveSarvadhatukaTinanta(d *core.Driver, dhatuIdx int, t args.Tinanta, pada args.Pada) {
	dhatu := d.P.Term(dhatuIdx)
	gana, _ := dhatu.Gana()
	vikaranaText := sarvadhatukaVikaranaFor(d, dhatu, t, gana)

	iVikarana := dhatuIdx
	if vikaranaText != "" {
		vik := core.MakeUpadesha(vikaranaText)
		vik.AddTags(core.Pratyaya, core.Sarvadhatuka)
		itsamjna.Analyze(vik)
		d.TryRun("3.1.68", func(p *core.Prakriya) bool {
			p.InsertAfter(dhatuIdx, vik)
			iVikarana = dhatuIdx + 1
			return true
		})
		angasya.RunAngaSection(d, dhatuIdx, iVikarana)
	}

	tinText := sup.TinPratyaya(t.Lakara, pada, t.Purusha, t.Vacana)
	tin := core.MakeUpadesha(tinText)
	tin.AddTags(core.Pratyaya, core.Tin, core.Sarvadhatuka)
	if pada == args.Atmanepada {
		tin.AddTag(core.Atmanepada)
	} else {
		tin.AddTag(core.Parasmaipada)
	}
	itsamjna.Analyze(tin)
	d.TryRun("3.4.78", func(p *core.Prakriya) bool {
		p.InsertAfter(iVikarana, tin)
		return true
	})
}

// deriveArdhadhatukaTinanta handles the ārdhadhātuka lakāras other than
// liṭ (luṭ, ḷṛṭ, āśīrliṅ, luṅ, ḷṛṅ): the tiṅ-pratyaya attaches directly
// after (an optional iṭ-āgama/at-lopa aside), since none of them take a
// sārvadhātuka vikaraṇa.
func deriveArdhadhatukaTinanta(d *core.Driver, dhatuIdx int, t args.Tinanta, pada args.Pada) {
	tinText := sup.TinPratyaya(t.Lakara, pada, t.Purusha, t.Vacana)
	tin := core.MakeUpadesha(tinText)
	tin.AddTags(core.Pratyaya, core.Tin, core.Ardhadhatuka)
	if pada == args.Atmanepada {
		tin.AddTag(core.Atmanepada)
	} else {
		tin.AddTag(core.Parasmaipada)
	}
	itsamjna.Analyze(tin)

	var iTin int
	d.TryRun("3.4.78", func(p *core.Prakriya) bool {
		p.InsertAfter(dhatuIdx, tin)
		iTin = dhatuIdx + 1
		return true
	})

	angasya.ApplyAtLopa(d, dhatuIdx, iTin)
	angasya.ApplyItAgama(d, dhatuIdx, iTin)
}

// deriveLitTinanta handles liṭ (the perfect): no vikaraṇa; the liṭ-specific
// tiṅ ending is attached first (its liṭ lakṣaṇa is what 6.1.8 checks), then
// come dvitva of the dhātu (6.1.8), abhyāsa simplification, and 1.2.5's
// asaṁyogāl-liṭ-kit guṇa block.
func deriveLitTinanta(d *core.Driver, dhatuIdx int, pada args.Pada, purusha args.Purusha, vacana args.Vacana) {
	tinText := sup.TinPratyaya(args.Lit, pada, purusha, vacana)
	tin := core.MakeUpadesha(tinText)
	tin.AddTags(core.Pratyaya, core.Tin, core.Ardhadhatuka)
	if pada == args.Atmanepada {
		tin.AddTag(core.Atmanepada)
	} else {
		tin.AddTag(core.Parasmaipada)
	}
	tin.Lakshanas = append(tin.Lakshanas, litLakshana)
	itsamjna.Analyze(tin)

	var iTin int
	d.TryRun("3.4.78", func(p *core.Prakriya) bool {
		p.InsertAfter(dhatuIdx, tin)
		iTin = dhatuIdx + 1
		return true
	})

	if rule, ok := abhyasa.TriggersDvitva(d, dhatuIdx); ok {
		iAbhyasa := abhyasa.Dvitva(d, rule, dhatuIdx)
		if iAbhyasa >= 0 {
			newDhatuIdx := iAbhyasa + 1
			newTinIdx := newDhatuIdx + 1
			dhatu := d.P.Term(newDhatuIdx)
			litTin := d.P.Term(newTinIdx)
			angasya.MarkLitKit(dhatu, litTin)
			abhyasa.Simplify(d, iAbhyasa)
			abhyasa.LitADirgha(d, iAbhyasa)
			if !angasya.TryVrddhi(d, newDhatuIdx) {
				angasya.TryGuna(d, newDhatuIdx)
			}
		}
	}
}

// finishAll renders each internal Prakriya into its public counterpart,
// joining term texts with internal sandhi for the final surface form.
func (v *Vyakarana) finishAll(ps []*core.Prakriya) []*Prakriya {
	out := make([]*Prakriya, len(ps))
	for i, p := range ps {
		out[i] = v.finish(p, joinedText(p))
	}
	return out
}

func joinedText(p *core.Prakriya) string {
	texts := make([]string, len(p.Terms))
	for i, t := range p.Terms {
		texts[i] = t.Text
	}
	return sandhi.JoinTerms(texts)
}
