// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package checkpoint persists which (page, revision) pairs have already been
// committed, so a re-run against a partially migrated repository skips work
// already done instead of duplicating commits.
package checkpoint

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const (
	// stateSubdir is the ledger's directory inside the target repository.
	stateSubdir = ".moin2git"
	dbFile      = "checkpoint.db"
)

// Ledger is the migration checkpoint database.
type Ledger struct {
	db *sql.DB
}

// Open opens or creates the ledger at repoDir/.moin2git/checkpoint.db and
// bootstraps the schema.
func Open(repoDir string) (*Ledger, error) {
	dir := filepath.Join(repoDir, stateSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating checkpoint directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile)+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening checkpoint database: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating checkpoint schema: %w", err)
	}
	return l, nil
}

// Close releases the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) createSchema() error {
	_, err := l.db.Exec(`CREATE TABLE IF NOT EXISTS revisions (
		page TEXT NOT NULL,
		revision TEXT NOT NULL,
		commit_hash TEXT NOT NULL,
		committed_at TEXT NOT NULL,
		PRIMARY KEY (page, revision)
	)`)
	return err
}

// Seen reports whether the revision of the page was already committed.
func (l *Ledger) Seen(page, revision string) (bool, error) {
	var one int
	err := l.db.QueryRow(
		`SELECT 1 FROM revisions WHERE page = ? AND revision = ?`, page, revision,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying checkpoint for %s r%s: %w", page, revision, err)
	}
	return true, nil
}

// Record marks a revision as committed.
func (l *Ledger) Record(page, revision, commitHash string) error {
	_, err := l.db.Exec(
		`INSERT OR REPLACE INTO revisions (page, revision, commit_hash, committed_at)
		 VALUES (?, ?, ?, ?)`,
		page, revision, commitHash, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording checkpoint for %s r%s: %w", page, revision, err)
	}
	return nil
}

// PageStats summarizes committed revisions for one page.
type PageStats struct {
	Page    string
	Commits int
}

// Stats returns per-page committed revision counts, ordered by page name.
func (l *Ledger) Stats() ([]PageStats, error) {
	rows, err := l.db.Query(
		`SELECT page, COUNT(*) FROM revisions GROUP BY page ORDER BY page`)
	if err != nil {
		return nil, fmt.Errorf("querying checkpoint stats: %w", err)
	}
	defer rows.Close()

	var stats []PageStats
	for rows.Next() {
		var s PageStats
		if err := rows.Scan(&s.Page, &s.Commits); err != nil {
			return nil, fmt.Errorf("scanning checkpoint stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
