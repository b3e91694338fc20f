package sup

import (
	"github.com/sanskritgo/vyakarana/internal/args"
	"github.com/sanskritgo/vyakarana/internal/core"
)

type supKey struct {
	Vibhakti args.Vibhakti
	Vacana   args.Vacana
}

// supTable is the common (non-napuṃsaka) sup-pratyaya table: 7
// vibhaktis x 3 vacanas. Napuṃsaka prathamā/dvitīyā cells are
// substituted separately (7.1.19-7.1.20 śi-ādeśa) in AttachSup.
var supTable = map[supKey]string{
	{args.Prathama, args.Eka}:  "su",
	{args.Prathama, args.Dvi}:  "O",
	{args.Prathama, args.Bahu}: "jas",
	{args.Dvitiya, args.Eka}:   "am",
	{args.Dvitiya, args.Dvi}:   "O",
	{args.Dvitiya, args.Bahu}:  "Sas",
	{args.Trtiya, args.Eka}:    "wA",
	{args.Trtiya, args.Dvi}:    "ByAm",
	{args.Trtiya, args.Bahu}:   "Bis",
	{args.Caturthi, args.Eka}:  "Ne",
	{args.Caturthi, args.Dvi}:  "ByAm",
	{args.Caturthi, args.Bahu}: "Byas",
	{args.Panchami, args.Eka}:  "Nasi",
	{args.Panchami, args.Dvi}:  "ByAm",
	{args.Panchami, args.Bahu}: "Byas",
	{args.Sasthi, args.Eka}:  "Nas",
	{args.Sasthi, args.Dvi}:  "os",
	{args.Sasthi, args.Bahu}: "Am",
	{args.Saptami, args.Eka}:   "Ni",
	{args.Saptami, args.Dvi}:   "os",
	{args.Saptami, args.Bahu}:  "sup",
}

// napumsakaPrathamaDvitiya holds a napuṃsaka stem's prathamā/dvitīyā
// endings, already in their post-it-saṁjñā surface form: "am" for the
// eka-vacana, "I" (śī, 7.1.19) for au, and "i" (śi, 7.1.20) for jas/śas.
var napumsakaPrathamaDvitiya = map[args.Vacana]string{
	args.Eka:  "am",
	args.Dvi:  "I",
	args.Bahu: "i",
}

// asmadYushmadGenitivePlural is the 7.1.33 nipātana: aśmad/yuṣmad's
// genitive-plural sup-pratyaya combination is replaced wholesale by
// "Akam", not built compositionally from stem + "Am".
var asmadYushmadGenitivePlural = map[string]string{
	"asmad": "asmAkam",
	"yuzmad": "yuzmAkam",
}

// AttachSup computes the sup-pratyaya text for the given prātipadika
// (linga/vibhakti/vacana) and either overrides the whole surface word
// (for the asmad/yuṣmad nipātana) or inserts the sup term normally.
func AttachSup(d *core.Driver, pratipadikaIdx int, linga args.Linga, vibhakti args.Vibhakti, vacana args.Vacana) int {
	base := d.P.Term(pratipadikaIdx)
	if base == nil {
		return -1
	}

	if vibhakti == args.Sasthi && vacana == args.Bahu {
		if whole, ok := asmadYushmadGenitivePlural[base.Text]; ok {
			d.RunAt("7.1.33", pratipadikaIdx, func(t *core.Term) bool {
				t.Text = whole
				return true
			})
			return pratipadikaIdx
		}
	}

	text := supTable[supKey{vibhakti, vacana}]
	if linga == args.Napumsaka && (vibhakti == args.Prathama || vibhakti == args.Dvitiya) {
		text = napumsakaPrathamaDvitiya[vacana]
		d.Run("7.1.19", func(*core.Prakriya) {})
	}

	sup := core.MakeUpadesha(text)
	sup.AddTags(core.Pratyaya, core.Sup)
	if vacana == args.Bahu && (vibhakti == args.Prathama || vibhakti == args.Dvitiya) {
		sup.AddTag(core.Sarvanamasthana)
	}

	var iSup int
	d.TryRun("4.1.2", func(p *core.Prakriya) bool {
		p.InsertAfter(pratipadikaIdx, sup)
		iSup = pratipadikaIdx + 1
		return true
	})
	return iSup
}

// NumAgama runs 7.1.72 (naḥ kye puṃsi): a neuter stem's final vowel gets
// a "n" inserted before a vowel-initial sup-pratyaya, e.g. deva + i ->
// devan + i (subsequently lengthened by 6.4.8 to devAni).
func NumAgama(d *core.Driver, angaIdx, supIdx int) bool {
	anga := d.P.Term(angaIdx)
	supT := d.P.Term(supIdx)
	if anga == nil || supT == nil {
		return false
	}
	if !supT.IsSarvanamasthana() {
		return false
	}
	if c, ok := supT.Adi(); !ok || !isVowel(c) {
		return false
	}
	return d.RunAt("7.1.72", angaIdx, func(t *core.Term) bool {
		t.Text += "n"
		return true
	})
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'A', 'i', 'I', 'u', 'U', 'f', 'F', 'x', 'X', 'e', 'E', 'o', 'O':
		return true
	}
	return false
}
