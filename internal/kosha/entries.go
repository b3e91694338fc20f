// Package kosha builds and queries a lexicon of derived Sanskrit word
// forms: a disk-backed index from surface text to the packed grammatical
// entries that produced it, the counterpart of the derivation engine's
// "generate every form, then look one up fast" use case described in
// spec.md §6's derive_vakyas and the kośa builder CLI. Grounded on
// vidyut-data/src/bin/create_kosha.rs's Builder/PackedEntry shape, backed
// here by modernc.org/sqlite rather than the original's custom on-disk
// trie, since the pack's teacher stack reaches for sqlite for exactly
// this kind of packed key-value store.
package kosha

import "github.com/sanskritgo/vyakarana/internal/args"

// EntryKind distinguishes the three record shapes a kośa stores, mirroring
// vidyut-kosha::entries::{DhatuEntry, PratipadikaEntry, PadaEntry}.
type EntryKind int

const (
	// KindDhatu is a bare verbal root, keyed by its upadeśa text.
	KindDhatu EntryKind = iota
	// KindPratipadika is a bare nominal stem.
	KindPratipadika
	// KindPada is a fully inflected word form (subanta or tinanta).
	KindPada
)

// DhatuEntry packs the derivational inputs that produced a dhātu-level
// record: just enough to reconstruct the request that derived it.
type DhatuEntry struct {
	Upadesha string
	Gana     args.Gana
}

// PratipadikaEntry packs a nominal stem record.
type PratipadikaEntry struct {
	Text  string
	Linga args.Linga
}

// PadaEntry packs one fully-inflected word: the surface text plus enough
// of the morphological request to recover vibhakti/vacana or
// lakara/puruṣa/vacana without re-deriving it.
type PadaEntry struct {
	Lemma string
	// Subanta fields (zero value when this is a verb form).
	Linga    args.Linga
	Vibhakti args.Vibhakti
	// Tinanta fields (zero value when this is a nominal form).
	Lakara  args.Lakara
	Purusha args.Purusha
	Prayoga args.Prayoga
	// Vacana is shared between both shapes.
	Vacana args.Vacana
	IsVerb bool
}

// Entry is one kośa record: the surface text it was derived from, plus
// exactly one of the three packed payload shapes.
type Entry struct {
	Text  string
	Kind  EntryKind
	Dhatu *DhatuEntry
	Prati *PratipadikaEntry
	Pada  *PadaEntry
}
