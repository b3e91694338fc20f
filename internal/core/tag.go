package core

// Tag generalizes the samjñā (grammatical-category) concept plus assorted
// bookkeeping flags (luk/ślu/lup, "already tried", accent markers). It is
// the Go analogue of the Rust `enumset`-backed `Tag` enum referenced by
// spec.md §3; see TagSet for the bitset it is stored in.
type Tag int

const (
	// Core saṁjñās.
	Dhatu Tag = iota
	Pratyaya
	Anga
	Pratipadika
	Pada
	Sup
	Tin
	Krt
	Krtya
	Unadi
	Taddhita
	Samasa
	Nipata
	Nipatana
	Nistha
	Gati
	Upasarga
	Vibhakti
	Sankhya
	Sarvanama
	Sarvanamasthana
	Sambuddhi
	Vrddha
	Avyaya

	// it (anubandha-derived) saṁjñās, see it_samjna rules.
	Kit
	Ngit // ṅit
	Njit // ñit, anunasika of 'Y'
	Pit
	Sit
	Tit
	Udit
	Rdit // ṛdit
	Xdit // ḷdit
	Irit
	Rit // retroflex-consonant it (wu~ pratyāhāra member at a pratyaya's ādi)
	Anudattet
	Svaritet

	// voice / paradigm.
	Parasmaipada
	Atmanepada
	Karmani
	Bhave
	Kartari

	// ardhadhatuka / sarvadhatuka split (vikaraṇa-dependent).
	Ardhadhatuka
	Sarvadhatuka

	// abhyasa / reduplication.
	Abhyasa
	Abhyasta

	// agama / lopa bookkeeping.
	Agama
	Luk
	Slu
	Lup
	AtLopa

	// gender/number prakriya-level tags (also usable on terms for sup).
	Stri
	Pum
	Napumsaka
	Ekavacana
	Dvivacana
	Bahuvacana

	// samāsa classification.
	Bahuvrihi
	Tatpurusha
	SamaharaDvandva
	Itaretara

	// misc sandhi-adjacent bookkeeping.
	Aprkta
	Final
	Chandasi

	// aṅga-section bookkeeping flags: not saṁjñās in their own right, but
	// state threaded between rules in the same pass (spec.md §4.5-4.6).
	FlagGuna
	FlagVrddhi
	FlagGunaApavada
	FlagNumAgama
	FlagAtLopa

	numTags
)

func init() {
	if numTags > 128 {
		panic("core: too many Tag values for a 128-bit TagSet")
	}
}

// TagSet is a 128-bit-capacity bitset of Tags, the Go analogue of
// `EnumSet<Tag>`. It is a value type: cheap to copy, O(1) to query/mutate.
type TagSet [2]uint64

func (s *TagSet) word(t Tag) (*uint64, uint64) {
	idx := int(t)
	return &s[idx/64], 1 << uint(idx%64)
}

// Add inserts tag into the set.
func (s *TagSet) Add(tag Tag) {
	w, bit := s.word(tag)
	*w |= bit
}

// AddAll inserts every tag in tags.
func (s *TagSet) AddAll(tags ...Tag) {
	for _, t := range tags {
		s.Add(t)
	}
}

// Remove deletes tag from the set.
func (s *TagSet) Remove(tag Tag) {
	w, bit := s.word(tag)
	*w &^= bit
}

// RemoveAll deletes every tag in tags.
func (s *TagSet) RemoveAll(tags ...Tag) {
	for _, t := range tags {
		s.Remove(t)
	}
}

// Has reports whether tag is present.
func (s TagSet) Has(tag Tag) bool {
	idx := int(tag)
	return s[idx/64]&(1<<uint(idx%64)) != 0
}

// HasAny reports whether any of tags is present.
func (s TagSet) HasAny(tags ...Tag) bool {
	for _, t := range tags {
		if s.Has(t) {
			return true
		}
	}
	return false
}

// HasAll reports whether every tag in tags is present.
func (s TagSet) HasAll(tags ...Tag) bool {
	for _, t := range tags {
		if !s.Has(t) {
			return false
		}
	}
	return true
}
