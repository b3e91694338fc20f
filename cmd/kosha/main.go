// Command kosha is the create-kosha CLI named in spec.md §6: it reads a
// dhātupāṭha CSV, derives a bounded set of surface forms per dhātu, and
// packs them into an on-disk kośa via internal/kosha. Argument handling
// follows the teacher's cmd/funxy/main.go style of scanning os.Args by
// hand rather than the flag package.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/unicode/norm"

	"github.com/sanskritgo/vyakarana/internal/args"
	"github.com/sanskritgo/vyakarana/internal/config"
	"github.com/sanskritgo/vyakarana/internal/kosha"
	"github.com/sanskritgo/vyakarana/pkg/vyakarana"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: kosha create-kosha --input-dir DIR --dhatupatha FILE --output-dir DIR [--num-dhatus N] [--filters k,t,b,a]")
}

type cliArgs struct {
	inputDir   string
	dhatupatha string
	outputDir  string
	numDhatus  int
	filters    map[string]bool
}

func parseArgs(argv []string) (cliArgs, error) {
	out := cliArgs{filters: map[string]bool{"k": true, "t": true, "b": true, "a": true}}
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		val := func() string {
			if i+1 >= len(argv) {
				return ""
			}
			i++
			return argv[i]
		}
		switch {
		case arg == "--input-dir":
			out.inputDir = val()
		case arg == "--dhatupatha":
			out.dhatupatha = val()
		case arg == "--output-dir":
			out.outputDir = val()
		case arg == "--num-dhatus":
			n, err := strconv.Atoi(val())
			if err != nil {
				return out, fmt.Errorf("--num-dhatus: %w", err)
			}
			out.numDhatus = n
		case arg == "--filters":
			out.filters = map[string]bool{}
			for _, f := range strings.Split(val(), ",") {
				if f != "" {
					out.filters[f] = true
				}
			}
		default:
			return out, fmt.Errorf("unrecognized argument %q", arg)
		}
	}
	if out.dhatupatha == "" || out.outputDir == "" {
		return out, fmt.Errorf("--dhatupatha and --output-dir are required")
	}
	return out, nil
}

// dhatupathaRow is one parsed CSV row: upadeśa, gaṇa (1-10), and an
// optional antargaṇa label.
type dhatupathaRow struct {
	upadesha  string
	gana      args.Gana
	antargana args.Antargana
}

// Compare orders rows by upadeśa then gaṇa, so collections.BinTree can
// both sort and (with UniqValues) dedupe dhātupāṭha exports that list the
// same root/gaṇa pair more than once (a recurring issue in scraped
// dhātupāṭha CSVs, where a root appears once per sense gloss).
func (r *dhatupathaRow) Compare(other collections.Comparable) int {
	o, ok := other.(*dhatupathaRow)
	if !ok {
		return -1
	}
	if r.upadesha != o.upadesha {
		return strings.Compare(r.upadesha, o.upadesha)
	}
	return int(r.gana) - int(o.gana)
}

func loadDhatupatha(path string, limit int) ([]dhatupathaRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dhatupatha: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing dhatupatha csv: %w", err)
	}

	tree := new(collections.BinTree[*dhatupathaRow])
	tree.UniqValues = true
	for i, rec := range records {
		if i == 0 && len(rec) > 0 && strings.EqualFold(rec[0], "upadesha") {
			continue // header row
		}
		if len(rec) < 2 {
			continue
		}
		ganaNum, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil || ganaNum < 1 || ganaNum > 10 {
			continue
		}
		// Upstream dhātupāṭha exports are often IAST/Devanagari-derived and
		// not guaranteed NFC; normalize before anything downstream treats
		// the text as pure SLP1 byte sequences.
		row := &dhatupathaRow{upadesha: norm.NFC.String(strings.TrimSpace(rec[0])), gana: args.Gana(ganaNum)}
		if len(rec) >= 3 {
			row.antargana = args.Antargana(strings.TrimSpace(rec[2]))
		}
		tree.Add(row)
	}

	unique := tree.ToSlice()
	rows := make([]dhatupathaRow, 0, len(unique))
	for _, row := range unique {
		rows = append(rows, *row)
		if limit > 0 && len(rows) >= limit {
			break
		}
	}
	return rows, nil
}

// deriveFiltered derives the form classes named by filters for one dhātu
// row and inserts each into b: "b" for a basic laṭ tinanta, "a" for every
// ārdhadhātuka-scope lakāra (here abridged to luṭ/luṅ), "k" for the
// kta kṛdanta, and "t" for the matup taddhitānta over the row's upadeśa
// taken as a masculine prātipadika.
func deriveFiltered(v *vyakarana.Vyakarana, b *kosha.Builder, row dhatupathaRow, filters map[string]bool) {
	dhatu := args.Dhatu{Upadesha: args.SLP1String(row.upadesha), Gana: row.gana, Antargana: row.antargana}

	if filters["b"] {
		for _, r := range v.DeriveTinantas(args.Tinanta{Dhatu: dhatu, Lakara: args.Lat, Purusha: args.Prathamapurusha, Vacana: args.Eka}) {
			insertPada(b, r, row, args.Lat)
		}
	}
	if filters["a"] {
		for _, lakara := range []args.Lakara{args.Lut, args.Lun} {
			for _, r := range v.DeriveTinantas(args.Tinanta{Dhatu: dhatu, Lakara: lakara, Purusha: args.Prathamapurusha, Vacana: args.Eka}) {
				insertPada(b, r, row, lakara)
			}
		}
	}
	if filters["k"] {
		for _, r := range v.DeriveKrdantas(args.Krdanta{Dhatu: dhatu, Krt: "kta"}) {
			_ = b.Insert(kosha.Entry{Text: r.Text(), Kind: kosha.KindPratipadika,
				Prati: &kosha.PratipadikaEntry{Text: r.Text(), Linga: args.Pum}})
		}
	}
	if filters["t"] {
		for _, r := range v.DeriveTaddhitantas(args.Taddhitanta{
			Pratipadika: args.Pratipadika{Text: args.SLP1String(row.upadesha), Linga: args.Pum},
			Taddhita:    "matup",
		}) {
			_ = b.Insert(kosha.Entry{Text: r.Text(), Kind: kosha.KindPratipadika,
				Prati: &kosha.PratipadikaEntry{Text: r.Text(), Linga: args.Pum}})
		}
	}

	_ = b.Insert(kosha.Entry{Text: row.upadesha, Kind: kosha.KindDhatu,
		Dhatu: &kosha.DhatuEntry{Upadesha: row.upadesha, Gana: row.gana}})
}

func insertPada(b *kosha.Builder, r *vyakarana.Prakriya, row dhatupathaRow, lakara args.Lakara) {
	_ = b.Insert(kosha.Entry{Text: r.Text(), Kind: kosha.KindPada, Pada: &kosha.PadaEntry{
		Lemma:   row.upadesha,
		Lakara:  lakara,
		Purusha: args.Prathamapurusha,
		Vacana:  args.Eka,
		IsVerb:  true,
	}})
}

func run(argv []string) error {
	parsed, err := parseArgs(argv)
	if err != nil {
		usage()
		return err
	}

	dhatupathaPath := parsed.dhatupatha
	if parsed.inputDir != "" && !filepath.IsAbs(dhatupathaPath) {
		dhatupathaPath = filepath.Join(parsed.inputDir, dhatupathaPath)
	}
	rows, err := loadDhatupatha(dhatupathaPath, parsed.numDhatus)
	if err != nil {
		return err
	}

	builder, err := kosha.NewBuilder(parsed.outputDir)
	if err != nil {
		return err
	}

	v := vyakarana.New()
	for i, row := range rows {
		deriveFiltered(v, builder, row, parsed.filters)
		if (i+1)%500 == 0 {
			config.Log.Info().Int("processed", i+1).Int("total", len(rows)).Msg("create-kosha progress")
		}
	}

	return builder.Finish()
}

func main() {
	if len(os.Args) < 2 || os.Args[1] != "create-kosha" {
		usage()
		os.Exit(2)
	}
	if err := run(os.Args[2:]); err != nil {
		prefix := "kosha:"
		if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
			prefix = "\033[31mkosha:\033[0m"
		}
		fmt.Fprintln(os.Stderr, prefix, err)
		os.Exit(1)
	}
}
