package args

import (
	"github.com/sanskritgo/vyakarana/internal/core"
	"github.com/sanskritgo/vyakarana/internal/sounds"
)

// SLP1String is a validated Sanskrit string in the SLP1 encoding,
// ported method-for-method from vidyut-prakriya/src/args/slp1_string.rs.
type SLP1String string

// NewSLP1String validates text and returns it wrapped, or a *core.Error
// with ErrorKind ParseError naming the offending index.
func NewSLP1String(text string) (SLP1String, error) {
	ok, idx, reason := sounds.ValidateSLP1(text)
	if !ok {
		return "", core.NewError(core.ParseError, idx, "%s", reason)
	}
	return SLP1String(text), nil
}

// Dhatu is a verbal root together with its gaṇa and any secondary-suffix
// (sanādi) layering. spec.md §10 extends the single-Sanadi arg type into
// an ordered list to support sanādi chaining (e.g. ṇic + san).
type Dhatu struct {
	Upadesha   SLP1String
	Gana       Gana
	Antargana  Antargana
	Sanadis    []Sanadi
	Upasargas  []Upasarga
	Prefixes   []Upasarga // alias kept for readability at call sites
}

// Tinanta is a finite verb-form request: a dhātu plus tense/mood, voice,
// person, and number.
type Tinanta struct {
	Dhatu   Dhatu
	Lakara  Lakara
	Prayoga Prayoga
	Purusha Purusha
	Vacana  Vacana
	// PadaOverride, if set, forces parasmaipada/ātmanepada rather than letting the
	// engine derive it from Prayoga/the dhātu's registered pada.
	PadaOverride *Pada
}

// Pada names parasmaipada or ātmanepada explicitly.
type Pada int

const (
	Parasmaipada Pada = iota
	Atmanepada
)

// Pratipadika is a nominal stem: either a dhātu-independent stem string
// or the output of a kṛt/taddhita/samāsa derivation (handled by those
// request types feeding back into a Pratipadika via their own Derive).
type Pratipadika struct {
	Text  SLP1String
	Linga Linga
	// IsSarvanama marks pronominal stems (tad, etad, idam, ...) that take
	// the sarvanāma sup paradigm rather than the regular one.
	IsSarvanama bool
	// IsNyapAnta marks stems already ending in a strī-pratyaya (ā, I) so
	// the strī-pratyaya stage is skipped.
	IsNyapAnta bool
}

// Subanta is a nominal inflection request: a prātipadika plus case and
// number.
type Subanta struct {
	Pratipadika Pratipadika
	Vibhakti    Vibhakti
	Vacana      Vacana
}

// Krdanta is a primary-suffix (kṛt) derivation request.
type Krdanta struct {
	Dhatu   Dhatu
	Krt     BaseKrt
	Unadi   Unadi
	// Upapada, if set, names a word that conditions the kṛt choice
	// (upapada-kṛt), e.g. "kumBa" + "kf" + "kta" style compounds.
	Upapada SLP1String
}

// Taddhitanta is a secondary-suffix derivation request.
type Taddhitanta struct {
	Pratipadika Pratipadika
	Taddhita    Taddhita
}

// SamasaType names the compound category.
type SamasaType int

const (
	Tatpurusha SamasaType = iota
	Bahuvrihi
	Dvandva
	SamaharaDvandva
	Avyayibhava
)

// Samasa is a compound-formation request: an ordered list of member
// prātipadikas plus the compound type.
type Samasa struct {
	Members []Pratipadika
	Type    SamasaType
}

// VakyaPada is one pada (word) within a sentence-level request: either a
// finite verb or an inflected nominal.
type VakyaPada struct {
	Tinanta *Tinanta
	Subanta *Subanta
}

// Vakya is a sentence-level derivation request: an ordered list of padas.
// Internal (ac-)sandhi never crosses pada boundaries; only external
// sandhi joins adjacent padas, per spec.md §4.9 and SPEC_FULL.md §10.
type Vakya struct {
	Padas []VakyaPada
}
