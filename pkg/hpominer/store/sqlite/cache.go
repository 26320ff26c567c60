// Package sqlite caches a compiled dictionary on disk, keyed by a hash of
// the ontology content it was built from, so repeated runs against the same
// ontology file skip re-walking the subtree and re-indexing every label and
// synonym.
package sqlite

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/cognicore/hpominer/pkg/hpominer/dictionary"
	"github.com/cognicore/hpominer/pkg/hpominer/term"
)

// Cache is a SQLite-backed store of compiled dictionaries.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if necessary) a cache database at path, with WAL
// mode enabled for concurrent readers.
func Open(ctx context.Context, path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{db: db}, nil
}

// Close closes the underlying database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS dictionary_cache (
	content_hash TEXT PRIMARY KEY,
	built_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS cached_concepts (
	content_hash TEXT NOT NULL,
	original TEXT NOT NULL,
	term_id TEXT NOT NULL,
	FOREIGN KEY(content_hash) REFERENCES dictionary_cache(content_hash) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_cached_concepts_hash ON cached_concepts(content_hash);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Has reports whether a compiled dictionary is cached for contentHash.
func (c *Cache) Has(ctx context.Context, contentHash string) (bool, error) {
	var count int
	err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM dictionary_cache WHERE content_hash=?`, contentHash).Scan(&count)
	return count > 0, err
}

// Load rebuilds a dictionary.Dictionary from the rows cached under
// contentHash. ok is false if nothing is cached for that hash.
func (c *Cache) Load(ctx context.Context, contentHash string) (*dictionary.Dictionary, bool, error) {
	ok, err := c.Has(ctx, contentHash)
	if err != nil || !ok {
		return nil, false, err
	}

	rows, err := c.db.QueryContext(ctx, `SELECT original, term_id FROM cached_concepts WHERE content_hash=?`, contentHash)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	d := dictionary.NewDictionary()
	for rows.Next() {
		var original, termIDStr string
		if err := rows.Scan(&original, &termIDStr); err != nil {
			return nil, false, err
		}
		id, err := term.Parse(termIDStr)
		if err != nil {
			continue
		}
		d.AddSurface(original, id)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	return d, true, nil
}

// Store persists every surface form backing dict under contentHash,
// replacing any previous entry for that hash in one transaction.
func (c *Cache) Store(ctx context.Context, contentHash string, dict *dictionary.Dictionary) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM dictionary_cache WHERE content_hash=?`, contentHash); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO dictionary_cache (content_hash, built_at) VALUES (?, datetime('now'))`, contentHash); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO cached_concepts (content_hash, original, term_id) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, surface := range dict.Surfaces() {
		if _, err := stmt.ExecContext(ctx, contentHash, surface.Original, surface.TermID.String()); err != nil {
			return err
		}
	}

	return tx.Commit()
}
