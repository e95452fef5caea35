// Package profilecache persists evaluated reports in SQLite, keyed by
// the canonical selection hash. The engine itself stays pure; this is
// the optional external memoization layer, plus a provenance log of
// when and why each evaluation ran. Invalidation is the caller's job:
// a changed selection is simply a different key.
package profilecache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/vitalsign/habit-engine/internal/report"
	"github.com/vitalsign/habit-engine/internal/selection"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS reports (
	selection_hash  TEXT PRIMARY KEY,
	selection_canon TEXT NOT NULL,
	report_json     TEXT NOT NULL,
	created_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS evaluation_log (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	evaluation_id   TEXT NOT NULL,
	selection_hash  TEXT NOT NULL,
	trigger_type    TEXT NOT NULL,
	reason          TEXT,
	created_at      TEXT NOT NULL
);
`
// #endregion schema

// #region types

// Entry pairs a cached report with its storage metadata.
type Entry struct {
	SelectionHash  string
	SelectionCanon string
	Report         report.Report
	CreatedAt      time.Time
}

// LogRow is one provenance row from the evaluation log.
type LogRow struct {
	EvaluationID  string
	SelectionHash string
	TriggerType   string
	Reason        string
	CreatedAt     time.Time
}

// #endregion types

// #region store

// Store manages cached reports and the evaluation log in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for tooling.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion store

// #region put

// Put caches a report under its selection hash and logs the
// evaluation. Re-putting the same selection replaces the cached row;
// the log keeps every evaluation. Returns the evaluation id.
func (s *Store) Put(rep report.Report, trigger, reason string) (string, error) {
	repJSON, err := json.Marshal(rep)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	evalID := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339Nano)
	canon := selection.Canonical(rep.Selection)

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO reports (selection_hash, selection_canon, report_json, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(selection_hash) DO UPDATE SET
		 	report_json = excluded.report_json,
		 	created_at = excluded.created_at`,
		rep.SelectionHash, canon, string(repJSON), now,
	)
	if err != nil {
		return "", fmt.Errorf("insert report: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO evaluation_log (evaluation_id, selection_hash, trigger_type, reason, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		evalID, rep.SelectionHash, trigger, nullIfEmpty(reason), now,
	)
	if err != nil {
		return "", fmt.Errorf("log evaluation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return evalID, nil
}

// #endregion put

// #region get

// Get retrieves a cached report by selection hash. The second return
// reports whether the hash was present.
func (s *Store) Get(hash string) (report.Report, bool, error) {
	var repJSON string
	err := s.db.QueryRow(
		`SELECT report_json FROM reports WHERE selection_hash = ?`, hash,
	).Scan(&repJSON)
	if err == sql.ErrNoRows {
		return report.Report{}, false, nil
	}
	if err != nil {
		return report.Report{}, false, fmt.Errorf("get report: %w", err)
	}

	var rep report.Report
	if err := json.Unmarshal([]byte(repJSON), &rep); err != nil {
		return report.Report{}, false, fmt.Errorf("unmarshal report: %w", err)
	}
	return rep, true, nil
}

// GetBySelection is Get keyed by the selection itself.
func (s *Store) GetBySelection(sel selection.Selection) (report.Report, bool, error) {
	return s.Get(selection.Hash(sel))
}

// #endregion get

// #region history

// History returns the n most recent cached entries, newest first.
func (s *Store) History(n int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT selection_hash, selection_canon, report_json, created_at
		 FROM reports ORDER BY created_at DESC, rowid DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var repJSON, created string
		if err := rows.Scan(&e.SelectionHash, &e.SelectionCanon, &repJSON, &created); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		if err := json.Unmarshal([]byte(repJSON), &e.Report); err != nil {
			return nil, fmt.Errorf("unmarshal report %s: %w", e.SelectionHash, err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Log returns the n most recent evaluation log rows, newest first.
func (s *Store) Log(n int) ([]LogRow, error) {
	rows, err := s.db.Query(
		`SELECT evaluation_id, selection_hash, trigger_type, reason, created_at
		 FROM evaluation_log ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("query log: %w", err)
	}
	defer rows.Close()

	var out []LogRow
	for rows.Next() {
		var r LogRow
		var reason sql.NullString
		var created string
		if err := rows.Scan(&r.EvaluationID, &r.SelectionHash, &r.TriggerType, &reason, &created); err != nil {
			return nil, fmt.Errorf("scan log row: %w", err)
		}
		if reason.Valid {
			r.Reason = reason.String
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		out = append(out, r)
	}
	return out, rows.Err()
}

// #endregion history

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
