// Command prakriya is an ad-hoc single-derivation CLI: given a dhātu or a
// prātipadika and a target category (tiṅanta, subanta, kṛdanta), it prints
// the derived surface form and, if requested, the rule-by-rule history.
// Argument handling follows cmd/kosha's (and ultimately the teacher's
// cmd/funxy/main.go) style of scanning os.Args by hand.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/sanskritgo/vyakarana/internal/args"
	"github.com/sanskritgo/vyakarana/pkg/vyakarana"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: prakriya tinanta --dhatu UPADESHA --gana N [--lakara lat|lit|lut|...] [--purusha prathama|madhyama|uttama] [--vacana eka|dvi|bahu] [--steps]")
	fmt.Fprintln(os.Stderr, "       prakriya subanta --pratipadika TEXT --linga pum|stri|napumsaka --vibhakti 1-7 [--vacana eka|dvi|bahu] [--steps]")
	fmt.Fprintln(os.Stderr, "       prakriya krdanta --dhatu UPADESHA --gana N --krt SUFFIX [--steps]")
}

var lakaraByName = map[string]args.Lakara{
	"lat": args.Lat, "lit": args.Lit, "lut": args.Lut, "lrt": args.Lrt,
	"let": args.Let, "lot": args.Lot, "lan": args.Lan,
	"linvidhi": args.LinVidhi, "linashih": args.LinAshih,
	"lun": args.Lun, "lrn": args.Lrn,
}

var purushaByName = map[string]args.Purusha{
	"prathama": args.Prathamapurusha, "madhyama": args.Madhyamapurusha, "uttama": args.Uttamapurusha,
}

var vacanaByName = map[string]args.Vacana{
	"eka": args.Eka, "dvi": args.Dvi, "bahu": args.Bahu,
}

var lingaByName = map[string]args.Linga{
	"pum": args.Pum, "stri": args.Stri, "napumsaka": args.Napumsaka,
}

type flagSet map[string]string

func scanFlags(argv []string) flagSet {
	out := flagSet{}
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if !strings.HasPrefix(arg, "--") {
			continue
		}
		name := strings.TrimPrefix(arg, "--")
		if name == "steps" {
			out[name] = "true"
			continue
		}
		if i+1 >= len(argv) {
			out[name] = ""
			continue
		}
		i++
		out[name] = argv[i]
	}
	return out
}

func printResult(results []*vyakarana.Prakriya, showSteps bool) error {
	if len(results) == 0 {
		return fmt.Errorf("no derivation produced a result")
	}
	for _, r := range results {
		fmt.Println(r.Text())
		if showSteps {
			for _, step := range r.History() {
				fmt.Printf("  %s: %s\n", step.Rule, strings.Join(step.Texts, " + "))
			}
		}
	}
	return nil
}

func runTinanta(f flagSet) error {
	gana, err := strconv.Atoi(f["gana"])
	if err != nil {
		return fmt.Errorf("--gana: %w", err)
	}
	dhatu := args.Dhatu{Upadesha: args.SLP1String(f["dhatu"]), Gana: args.Gana(gana)}

	lakara := args.Lat
	if v, ok := lakaraByName[strings.ToLower(f["lakara"])]; ok {
		lakara = v
	}
	purusha := args.Prathamapurusha
	if v, ok := purushaByName[strings.ToLower(f["purusha"])]; ok {
		purusha = v
	}
	vacana := args.Eka
	if v, ok := vacanaByName[strings.ToLower(f["vacana"])]; ok {
		vacana = v
	}

	v := vyakarana.New().LogSteps(f["steps"] == "true")
	results := v.DeriveTinantas(args.Tinanta{Dhatu: dhatu, Lakara: lakara, Purusha: purusha, Vacana: vacana})
	return printResult(results, f["steps"] == "true")
}

func runSubanta(f flagSet) error {
	vibhaktiNum, err := strconv.Atoi(f["vibhakti"])
	if err != nil {
		return fmt.Errorf("--vibhakti: %w", err)
	}
	linga := lingaByName[strings.ToLower(f["linga"])]
	vacana := args.Eka
	if v, ok := vacanaByName[strings.ToLower(f["vacana"])]; ok {
		vacana = v
	}

	v := vyakarana.New().LogSteps(f["steps"] == "true")
	results := v.DeriveSubantas(args.Subanta{
		Pratipadika: args.Pratipadika{Text: args.SLP1String(f["pratipadika"]), Linga: linga},
		Vibhakti:    args.Vibhakti(vibhaktiNum),
		Vacana:      vacana,
	})
	return printResult(results, f["steps"] == "true")
}

func runKrdanta(f flagSet) error {
	gana, err := strconv.Atoi(f["gana"])
	if err != nil {
		return fmt.Errorf("--gana: %w", err)
	}
	dhatu := args.Dhatu{Upadesha: args.SLP1String(f["dhatu"]), Gana: args.Gana(gana)}

	v := vyakarana.New().LogSteps(f["steps"] == "true")
	results := v.DeriveKrdantas(args.Krdanta{Dhatu: dhatu, Krt: args.BaseKrt(f["krt"])})
	return printResult(results, f["steps"] == "true")
}

func run(argv []string) error {
	if len(argv) < 1 {
		usage()
		return fmt.Errorf("missing subcommand")
	}
	f := scanFlags(argv[1:])
	switch argv[0] {
	case "tinanta":
		return runTinanta(f)
	case "subanta":
		return runSubanta(f)
	case "krdanta":
		return runKrdanta(f)
	default:
		usage()
		return fmt.Errorf("unrecognized subcommand %q", argv[0])
	}
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		prefix := "prakriya:"
		if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
			prefix = "\033[31mprakriya:\033[0m"
		}
		fmt.Fprintln(os.Stderr, prefix, err)
		os.Exit(1)
	}
}
