// Package dhatukarya implements dhātu-karya (root preparation) and
// sanādi layering: selecting the vikaraṇa for a given gaṇa/lakāra, and
// attaching causative/desiderative/intensive suffixes in sequence, per
// spec.md GLOSSARY "Sanādi / Vikaraṇa" and §4.5. Grounded on
// vidyut-prakriya/src/vikarana.rs and ardhadhatuka.rs.
package dhatukarya

import "github.com/sanskritgo/vyakarana/internal/args"

// OptionalSyanRoots take an optional "Syan" vikaraṇa (3.1.70) ahead of
// their ordinary gaṇa-based one, e.g. Bramyati alongside Bramati.
var OptionalSyanRoots = map[string]bool{
	"BrAS": true, "BlAS": true, "Bram": true, "kram": true,
	"klam": true, "tras": true, "truw": true, "laz": true,
}

// SarvadhatukaVikarana returns the aupadeśika vikaraṇa inserted between a
// dhātu of the given gaṇa and a sārvadhātuka tiṅ-pratyaya (3.1.68 and
// neighboring rules).
func SarvadhatukaVikarana(gana args.Gana) string {
	switch gana {
	case args.Bhvadi, args.Tudadi:
		return "Sap"
	case args.Adadi:
		return "" // luk of śap, 2.4.72
	case args.Juhotyadi:
		return "Slu" // triggers reduplication directly
	case args.Divadi:
		return "Syan"
	case args.Svadi:
		return "Snu"
	case args.Kryadi:
		return "SnA"
	case args.Rudhadi:
		return "Snam"
	case args.Tanadi:
		return "u"
	case args.Curadi:
		return "Ric" // followed by a (ayAdi) in actual formation
	}
	return "Sap"
}
