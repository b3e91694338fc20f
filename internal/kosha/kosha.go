package kosha

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Kosha is a read-only handle to a built kośa, opened for lookups.
type Kosha struct {
	db *sql.DB
}

// Open opens the kośa at path (as produced by Builder.Finish) for
// lookups.
func Open(path string) (*Kosha, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("kosha: opening %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("kosha: %s is not a valid kosha: %w", path, err)
	}
	return &Kosha{db: db}, nil
}

// Close releases the underlying database handle.
func (k *Kosha) Close() error { return k.db.Close() }

// Lookup returns every entry stored under the given surface text,
// unpacked, in insertion order. An empty result means the text is not in
// the kośa, not necessarily that it is ungrammatical.
func (k *Kosha) Lookup(text string) ([]Entry, error) {
	rows, err := k.db.Query(`SELECT payload FROM entries WHERE text = ?`, text)
	if err != nil {
		return nil, fmt.Errorf("kosha: querying %q: %w", text, err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var blob []byte
		if err := rows.Scan(&blob); err != nil {
			return nil, fmt.Errorf("kosha: scanning entry for %q: %w", text, err)
		}
		e, err := unpack(text, blob)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Contains reports whether any entry is stored under text.
func (k *Kosha) Contains(text string) (bool, error) {
	var n int
	err := k.db.QueryRow(`SELECT COUNT(1) FROM entries WHERE text = ?`, text).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("kosha: checking %q: %w", text, err)
	}
	return n > 0, nil
}
