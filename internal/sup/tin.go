// Package sup implements the sup/tiṅ/strī dispatch described in spec.md
// §4.8: nominal case suffixes, verbal personal endings, and the
// feminine-stem pratyayas. Grounded on
// vidyut-prakriya/src/angasya/subanta.rs and vikarana.rs for the tiṅ
// table shape.
package sup

import "github.com/sanskritgo/vyakarana/internal/args"

// tinKey indexes the tiṅ tables below by (purusha, vacana). Each pada has
// its own table: parasmaipadaLat and atmanepadaLat hold the aupadeśika
// tiṅ-pratyayas that TinPratyaya returns for every lakāra other than liṭ.
type tinKey struct {
	Purusha args.Purusha
	Vacana  args.Vacana
}

var parasmaipadaLat = map[tinKey]string{
	{args.Prathamapurusha, args.Eka}: "tip",
	{args.Prathamapurusha, args.Dvi}: "tas",
	{args.Prathamapurusha, args.Bahu}: "Ji",
	{args.Madhyamapurusha, args.Eka}: "sip",
	{args.Madhyamapurusha, args.Dvi}: "Tas",
	{args.Madhyamapurusha, args.Bahu}: "Ta",
	{args.Uttamapurusha, args.Eka}: "mip",
	{args.Uttamapurusha, args.Dvi}: "vas",
	{args.Uttamapurusha, args.Bahu}: "mas",
}

var atmanepadaLat = map[tinKey]string{
	{args.Prathamapurusha, args.Eka}: "ta",
	{args.Prathamapurusha, args.Dvi}: "AtAm",
	{args.Prathamapurusha, args.Bahu}: "Ja",
	{args.Madhyamapurusha, args.Eka}: "TAs",
	{args.Madhyamapurusha, args.Dvi}: "ATAm",
	{args.Madhyamapurusha, args.Bahu}: "Dvam",
	{args.Uttamapurusha, args.Eka}: "iw",
	{args.Uttamapurusha, args.Dvi}: "vahi",
	{args.Uttamapurusha, args.Bahu}: "mahiN",
}

// parasmaipadaLit/atmanepadaLit are the liṭ-specific endings (perfect
// tense), which differ from the laṭ tables in most cells.
var parasmaipadaLit = map[tinKey]string{
	{args.Prathamapurusha, args.Eka}: "Ral",
	{args.Prathamapurusha, args.Dvi}: "atus",
	{args.Prathamapurusha, args.Bahu}: "us",
	{args.Madhyamapurusha, args.Eka}: "Tal",
	{args.Madhyamapurusha, args.Dvi}: "aTus",
	{args.Madhyamapurusha, args.Bahu}: "a",
	{args.Uttamapurusha, args.Eka}: "Ral",
	{args.Uttamapurusha, args.Dvi}: "va",
	{args.Uttamapurusha, args.Bahu}: "ma",
}

var atmanepadaLit = map[tinKey]string{
	{args.Prathamapurusha, args.Eka}: "e",
	{args.Prathamapurusha, args.Dvi}: "AtAm",
	{args.Prathamapurusha, args.Bahu}: "ire",
	{args.Madhyamapurusha, args.Eka}: "se",
	{args.Madhyamapurusha, args.Dvi}: "ATe",
	{args.Madhyamapurusha, args.Bahu}: "Dve",
	{args.Uttamapurusha, args.Eka}: "e",
	{args.Uttamapurusha, args.Dvi}: "vahe",
	{args.Uttamapurusha, args.Bahu}: "mahe",
}

// TinPratyaya returns the aupadeśika tiṅ-pratyaya for the given lakāra,
// voice, person, and number.
func TinPratyaya(lakara args.Lakara, pada args.Pada, purusha args.Purusha, vacana args.Vacana) string {
	key := tinKey{purusha, vacana}
	table := parasmaipadaLat
	if lakara == args.Lit {
		table = parasmaipadaLit
		if pada == args.Atmanepada {
			table = atmanepadaLit
		}
	} else if pada == args.Atmanepada {
		table = atmanepadaLat
	}
	return table[key]
}

// IsSarvadhatuka reports whether lakara takes sārvadhātuka-conditioned
// aṅga rules (laṭ, loṭ, laṅ, vidhi-liṅ) as opposed to ārdhadhātuka ones
// (the rest), per the classical sārvadhātuka/ārdhadhātuka split spec.md
// §2 names as a top-level anga-section distinction.
func IsSarvadhatuka(lakara args.Lakara) bool {
	switch lakara {
	case args.Lat, args.Lot, args.Lan, args.LinVidhi:
		return true
	}
	return false
}
