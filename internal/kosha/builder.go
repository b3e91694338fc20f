package kosha

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/sanskritgo/vyakarana/internal/config"
)

// progressEvery controls how often Builder logs a running entry count;
// named the way create_kosha.rs's own "every N dhatus, log progress" loop
// is structured.
const progressEvery = 5000

// Builder accumulates packed entries into a fresh on-disk kośa, the Go
// analogue of vidyut_kosha::Builder: callers stream in (text, Entry)
// pairs via Insert and call Finish once to flush and index the result.
type Builder struct {
	db        *sql.DB
	buildDir  string
	finalPath string
	count     int
}

// NewBuilder creates a fresh kośa at outputDir/kosha.db, building it in a
// uuid-named scratch directory first so a crash mid-build never leaves a
// half-written store at the final path.
func NewBuilder(outputDir string) (*Builder, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("kosha: creating output dir: %w", err)
	}
	buildDir := filepath.Join(outputDir, ".build-"+uuid.NewString())
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return nil, fmt.Errorf("kosha: creating build dir: %w", err)
	}

	dbPath := filepath.Join(buildDir, "kosha.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("kosha: opening build db: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE entries (text TEXT NOT NULL, payload BLOB NOT NULL)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("kosha: creating entries table: %w", err)
	}
	// The three registries named in spec.md §6: dhātu, prātipadika, and
	// subanta-paradigm, each a small dedup table a packed entry can
	// reference by index instead of repeating the full string.
	registryDDL := []string{
		`CREATE TABLE dhatu_registry (id INTEGER PRIMARY KEY, upadesha TEXT NOT NULL, gana INTEGER NOT NULL)`,
		`CREATE TABLE pratipadika_registry (id INTEGER PRIMARY KEY, text TEXT NOT NULL, linga INTEGER NOT NULL)`,
		`CREATE TABLE subanta_paradigm_registry (id INTEGER PRIMARY KEY, vibhakti INTEGER NOT NULL, vacana INTEGER NOT NULL)`,
	}
	for _, ddl := range registryDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("kosha: creating registry table: %w", err)
		}
	}

	return &Builder{
		db:        db,
		buildDir:  buildDir,
		finalPath: filepath.Join(outputDir, "kosha.db"),
	}, nil
}

// Insert packs and stores one entry under its surface text. Multiple
// entries may share the same text (homonyms, or the same surface form
// reachable from several derivations). As a side effect it registers the
// entry's dhātu, prātipadika, or subanta-paradigm shape in the matching
// registry table, so a reader can enumerate the distinct dhātus or
// paradigms a kośa covers without scanning every packed entry.
func (b *Builder) Insert(e Entry) error {
	blob, err := pack(e)
	if err != nil {
		return err
	}
	if _, err := b.db.Exec(`INSERT INTO entries (text, payload) VALUES (?, ?)`, e.Text, blob); err != nil {
		return fmt.Errorf("kosha: inserting entry for %q: %w", e.Text, err)
	}
	if err := b.registerPayload(e); err != nil {
		return err
	}
	b.count++
	if b.count%progressEvery == 0 {
		config.Log.Info().Str("entries", humanize.Comma(int64(b.count))).Msg("kosha build progress")
	}
	return nil
}

// registerPayload records e's dhātu, prātipadika, or subanta-paradigm
// shape in the matching registry table. A KindPada entry registers its
// paradigm (vibhakti/vacana) when it is a subanta; a tinanta pada names
// no paradigm slot and is left unregistered.
func (b *Builder) registerPayload(e Entry) error {
	switch e.Kind {
	case KindDhatu:
		_, err := b.RegisterDhatu(e.Dhatu.Upadesha, int(e.Dhatu.Gana))
		return err
	case KindPratipadika:
		_, err := b.RegisterPratipadika(e.Prati.Text, int(e.Prati.Linga))
		return err
	case KindPada:
		if e.Pada.IsVerb {
			return nil
		}
		_, err := b.RegisterSubantaParadigm(int(e.Pada.Vibhakti), int(e.Pada.Vacana))
		return err
	default:
		return nil
	}
}

// RegisterDhatu inserts (or finds) upadesha/gana in the dhātu registry
// and returns its registered index, for callers that want to pack
// references instead of repeating the dhātu string in every entry.
func (b *Builder) RegisterDhatu(upadesha string, gana int) (int64, error) {
	var id int64
	err := b.db.QueryRow(`SELECT id FROM dhatu_registry WHERE upadesha = ? AND gana = ?`, upadesha, gana).Scan(&id)
	if err == nil {
		return id, nil
	}
	res, err := b.db.Exec(`INSERT INTO dhatu_registry (upadesha, gana) VALUES (?, ?)`, upadesha, gana)
	if err != nil {
		return 0, fmt.Errorf("kosha: registering dhatu %q: %w", upadesha, err)
	}
	return res.LastInsertId()
}

// RegisterPratipadika inserts (or finds) text/linga in the prātipadika
// registry and returns its registered index.
func (b *Builder) RegisterPratipadika(text string, linga int) (int64, error) {
	var id int64
	err := b.db.QueryRow(`SELECT id FROM pratipadika_registry WHERE text = ? AND linga = ?`, text, linga).Scan(&id)
	if err == nil {
		return id, nil
	}
	res, err := b.db.Exec(`INSERT INTO pratipadika_registry (text, linga) VALUES (?, ?)`, text, linga)
	if err != nil {
		return 0, fmt.Errorf("kosha: registering pratipadika %q: %w", text, err)
	}
	return res.LastInsertId()
}

// RegisterSubantaParadigm inserts (or finds) a vibhakti/vacana pair in
// the subanta-paradigm registry and returns its registered index.
func (b *Builder) RegisterSubantaParadigm(vibhakti, vacana int) (int64, error) {
	var id int64
	err := b.db.QueryRow(`SELECT id FROM subanta_paradigm_registry WHERE vibhakti = ? AND vacana = ?`, vibhakti, vacana).Scan(&id)
	if err == nil {
		return id, nil
	}
	res, err := b.db.Exec(`INSERT INTO subanta_paradigm_registry (vibhakti, vacana) VALUES (?, ?)`, vibhakti, vacana)
	if err != nil {
		return 0, fmt.Errorf("kosha: registering subanta paradigm: %w", err)
	}
	return res.LastInsertId()
}

// dump writes every (key, packed-entry) pair to dumpPath in key-sorted
// order, the flat-sorted-file artifact spec.md §6 names alongside the
// three registries: one `ORDER BY key` query written out, mirroring
// create_kosha.rs's final packaging step.
func (b *Builder) dump(dumpPath string) error {
	rows, err := b.db.Query(`SELECT text, payload FROM entries ORDER BY text`)
	if err != nil {
		return fmt.Errorf("kosha: querying sorted entries: %w", err)
	}
	defer rows.Close()

	f, err := os.Create(dumpPath)
	if err != nil {
		return fmt.Errorf("kosha: creating flat dump %s: %w", dumpPath, err)
	}
	defer f.Close()

	var lenBuf [4]byte
	for rows.Next() {
		var text string
		var payload []byte
		if err := rows.Scan(&text, &payload); err != nil {
			return fmt.Errorf("kosha: scanning sorted entry: %w", err)
		}
		for _, field := range [][]byte{[]byte(text), payload} {
			binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(field)))
			if _, err := f.Write(lenBuf[:]); err != nil {
				return fmt.Errorf("kosha: writing flat dump %s: %w", dumpPath, err)
			}
			if _, err := f.Write(field); err != nil {
				return fmt.Errorf("kosha: writing flat dump %s: %w", dumpPath, err)
			}
		}
	}
	return rows.Err()
}

// Finish indexes the surface-text column for lookup, writes the flat
// sorted dump file, closes the build database, and moves it into place
// at outputDir/kosha.db, replacing any existing kośa there.
func (b *Builder) Finish() error {
	if _, err := b.db.Exec(`CREATE INDEX idx_entries_text ON entries(text)`); err != nil {
		b.db.Close()
		return fmt.Errorf("kosha: indexing entries: %w", err)
	}
	dumpPath := filepath.Join(b.buildDir, "kosha.flat")
	if err := b.dump(dumpPath); err != nil {
		b.db.Close()
		return err
	}
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("kosha: closing build db: %w", err)
	}

	dbPath := filepath.Join(b.buildDir, "kosha.db")
	if err := os.Rename(dbPath, b.finalPath); err != nil {
		return fmt.Errorf("kosha: publishing kosha to %s: %w", b.finalPath, err)
	}
	finalDumpPath := strings.TrimSuffix(b.finalPath, ".db") + ".flat"
	if err := os.Rename(dumpPath, finalDumpPath); err != nil {
		return fmt.Errorf("kosha: publishing flat dump to %s: %w", finalDumpPath, err)
	}
	if err := os.RemoveAll(b.buildDir); err != nil {
		config.Log.Warn().Err(err).Str("dir", b.buildDir).Msg("kosha: leftover build dir could not be removed")
	}

	config.Log.Info().
		Str("entries", humanize.Comma(int64(b.count))).
		Str("path", b.finalPath).
		Msg("kosha build finished")
	return nil
}
