package vyakarana

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanskritgo/vyakarana/internal/args"
	"github.com/sanskritgo/vyakarana/internal/core"
)

// golden is a parsed fixture from internal/testdata: the expected final
// surface text on the first line, followed by the expected rule-ID
// history in order, one per line.
type golden struct {
	text  string
	rules []core.RuleID
}

func loadGolden(t *testing.T, name string) golden {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "internal", "testdata", name))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.NotEmpty(t, lines)

	g := golden{text: lines[0]}
	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		g.rules = append(g.rules, core.RuleID(line))
	}
	return g
}

func ruleHistory(steps []core.Step) []core.RuleID {
	out := make([]core.RuleID, len(steps))
	for i, s := range steps {
		out[i] = s.Rule
	}
	return out
}

// requireGolden asserts a derivation's surface text and full ordered
// rule history against a golden fixture, so a rule-ordering regression
// fails the same way a wrong-output regression would.
func requireGolden(t *testing.T, name string, p *Prakriya) {
	t.Helper()
	want := loadGolden(t, name)
	require.Equal(t, want.text, p.Text())
	require.Equal(t, want.rules, ruleHistory(p.History()))
}

// TestScenarioBhuLat is spec scenario 1: BU, laT, kartari, parasmaipada,
// prathama-puruSa, eka-vacana -> Bavati.
func TestScenarioBhuLat(t *testing.T) {
	v := New()
	results := v.DeriveTinantas(bhuLatKartariPrathamaEka())
	require.NotEmpty(t, results)
	requireGolden(t, "scenario1_bhu_lat.golden", results[0])
}

// TestScenarioKrLit is spec scenario 2: kf, liT, Atmanepada, prathama,
// eka -> cakre, exercising dvitva, abhyAsa ku->cu, and abhyAsa vowel
// reduction to "a" (7.4.66), with no liTyAdirgha (7.4.70) since the
// abhyAsa never reduces to the bare vowel "a" for a hal-Adi dhAtu.
func TestScenarioKrLit(t *testing.T) {
	v := New()
	atmane := args.Atmanepada
	req := args.Tinanta{
		Dhatu:        args.Dhatu{Upadesha: "kf", Gana: args.Tanadi},
		Lakara:       args.Lit,
		Prayoga:      args.Kartari,
		Purusha:      args.Prathamapurusha,
		Vacana:       args.Eka,
		PadaOverride: &atmane,
	}
	results := v.DeriveTinantas(req)
	require.NotEmpty(t, results)
	requireGolden(t, "scenario2_kr_lit.golden", results[0])
}

// TestScenarioDevaNapumsakaJas is spec scenario 3: deva, napuMsaka, jas,
// bahu-vacana -> devAni, exercising num-Agama (7.1.72) and the
// num-conditioned branch of dIrgha sArvanAmasthAna (6.4.8).
func TestScenarioDevaNapumsakaJas(t *testing.T) {
	v := New()
	req := args.Subanta{
		Pratipadika: args.Pratipadika{Text: "deva", Linga: args.Napumsaka},
		Vibhakti:    args.Prathama,
		Vacana:      args.Bahu,
	}
	results := v.DeriveSubantas(req)
	require.NotEmpty(t, results)
	requireGolden(t, "scenario3_deva_napumsaka_jas.golden", results[0])
}

// TestScenarioKrSanLat is spec scenario 4: kf + san + laT, prathama,
// eka, parasmaipada -> cikIrzati, exercising san insertion, dvitva,
// abhyAsa simplification, the iT-Agama block for a san-derived f-final
// root (7.2.12), at-lopa of san's own vowel before the Sap vikaraNa
// (6.4.48), and cross-term SatvA (8.3.59).
func TestScenarioKrSanLat(t *testing.T) {
	v := New()
	req := args.Tinanta{
		Dhatu: args.Dhatu{
			Upadesha: "kf",
			Gana:     args.Tanadi,
			Sanadis:  []args.Sanadi{args.San},
		},
		Lakara:  args.Lat,
		Prayoga: args.Kartari,
		Purusha: args.Prathamapurusha,
		Vacana:  args.Eka,
	}
	results := v.DeriveTinantas(req)
	require.NotEmpty(t, results)
	requireGolden(t, "scenario4_kr_san_lat.golden", results[0])
}

// TestScenarioPacKta is spec scenario 5: pac + kta, kartari -> pakva via
// the 8.2.52 nipAtana overriding the regular "pakta".
func TestScenarioPacKta(t *testing.T) {
	v := New()
	req := args.Krdanta{
		Dhatu: args.Dhatu{Upadesha: "pac", Gana: args.Bhvadi},
		Krt:   "kta",
	}
	results := v.DeriveKrdantas(req)
	require.NotEmpty(t, results)
	requireGolden(t, "scenario5_pac_kta.golden", results[0])
}

// TestScenarioAsmadSasthiBahu is spec scenario 6: asmad, SaSThI, bahu ->
// asmAkam via the 7.1.33 nipAtana.
func TestScenarioAsmadSasthiBahu(t *testing.T) {
	v := New()
	req := args.Subanta{
		Pratipadika: args.Pratipadika{Text: "asmad", Linga: args.Pum},
		Vibhakti:    args.Sasthi,
		Vacana:      args.Bahu,
	}
	results := v.DeriveSubantas(req)
	require.NotEmpty(t, results)
	requireGolden(t, "scenario6_asmad_sasthi_bahu.golden", results[0])
}
