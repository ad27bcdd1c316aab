// log_storage.go implements SQLite-based persistent audit logging.
//
// Separated from log.go to isolate database concerns. The main log.go provides
// the fluent API for building log entries, while this file handles persistence
// and the queries behind `vetted log`. The project field uses a hash of the
// working directory to enable aggregation while preserving privacy.
//
// Design: Errors during logging are silently ignored (best-effort). A check
// must report its result even if we can't record it in the audit log.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// DefaultLimit caps query results when Filter.Limit is unset.
const DefaultLimit = 50

// Logger writes audit log entries to a SQLite database.
type Logger struct {
	db      *sql.DB
	project string
}

// Filter selects log entries for Query and Summary.
type Filter struct {
	Source      string    // source prefix, e.g. "check:" or "mcp:"
	Since       time.Time // only entries started at or after this time
	FailedOnly  bool      // only failed checks
	ProjectOnly bool      // only entries from the current project
	Limit       int       // maximum entries, DefaultLimit when zero
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	_, err := l.db.Exec(`
		INSERT INTO log (start, end, project, source, author, action, field, length,
		                 kind, rule, success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, l.project, e.Source, nilIfEmpty(e.Author), e.Action,
		nilIfEmpty(e.Field), nilIfZero(e.Length),
		nilIfEmpty(e.Kind), nilIfEmpty(e.Rule),
		success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		// Best-effort logging: don't break main operation, but report failure
		_, _ = fmt.Fprintf(os.Stderr, "vetted: audit log write failed: %v\n", err)
	}
}

// where builds the WHERE clause and arguments for f.
func (l *Logger) where(f Filter) (string, []any) {
	var conds []string
	var args []any
	if f.Source != "" {
		conds = append(conds, "source LIKE ? ESCAPE '\\'")
		args = append(args, escapeLike(f.Source)+"%")
	}
	if !f.Since.IsZero() {
		conds = append(conds, "start >= ?")
		args = append(args, f.Since.Unix())
	}
	if f.FailedOnly {
		conds = append(conds, "success = 0")
	}
	if f.ProjectOnly {
		conds = append(conds, "project = ?")
		args = append(args, l.project)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (l *Logger) query(f Filter) ([]Entry, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	where, args := l.where(f)
	rows, err := l.db.Query(`
		SELECT id, start, end, source, author, action, field, length,
		       kind, rule, success, error, detail
		FROM log`+where+` ORDER BY id DESC LIMIT ?`, append(args, limit)...)
	if err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var author, field, kind, rule, errMsg, detail sql.NullString
		var length sql.NullInt64
		var success int
		if err := rows.Scan(&e.ID, &e.Start, &e.End, &e.Source, &author, &e.Action,
			&field, &length, &kind, &rule, &success, &errMsg, &detail); err != nil {
			return nil, fmt.Errorf("reading audit log: %w", err)
		}
		e.Author = author.String
		e.Field = field.String
		e.Length = int(length.Int64)
		e.Kind = kind.String
		e.Rule = rule.String
		e.Success = success == 1
		e.Error = errMsg.String
		if detail.Valid {
			_ = json.Unmarshal([]byte(detail.String), &e.Detail)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (l *Logger) summary(f Filter) (map[string]int, error) {
	where, args := l.where(f)
	rows, err := l.db.Query(`SELECT COALESCE(rule, ''), COUNT(*) FROM log`+where+` GROUP BY 1`, args...)
	if err != nil {
		return nil, fmt.Errorf("summarising audit log: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var rule string
		var n int
		if err := rows.Scan(&rule, &n); err != nil {
			return nil, fmt.Errorf("reading audit log: %w", err)
		}
		counts[rule] = n
	}
	return counts, rows.Err()
}

func (l *Logger) prune(cutoff time.Time, dryRun bool) (int64, error) {
	if dryRun {
		var n int64
		err := l.db.QueryRow(`SELECT COUNT(*) FROM log WHERE start < ?`, cutoff.Unix()).Scan(&n)
		if err != nil {
			return 0, fmt.Errorf("counting audit log entries: %w", err)
		}
		return n, nil
	}
	res, err := l.db.Exec(`DELETE FROM log WHERE start < ?`, cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("pruning audit log: %w", err)
	}
	return res.RowsAffected()
}

// escapeLike escapes LIKE wildcards so a source prefix matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// dbPathFunc is the function that returns the database path.
// Tests can override this to use a temp directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to current directory if home cannot be determined.
		return filepath.Join(".vetted", "log", "vetted-log.db")
	}
	return filepath.Join(home, ".vetted", "log", "vetted-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the log database.
func DBPath() string {
	return dbPath()
}

// hash creates a project identifier from the directory path, enabling
// cross-project log queries while preserving privacy.
func hash(s string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		// Should never happen with nil key, but don't silently ignore
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the log table if it doesn't exist. Safe for concurrent access.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS log (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			start    INTEGER NOT NULL,
			end      INTEGER NOT NULL,
			project  TEXT NOT NULL,
			source   TEXT NOT NULL,
			author   TEXT,
			action   TEXT NOT NULL,
			field    TEXT,
			length   INTEGER,
			kind     TEXT,
			rule     TEXT,
			success  INTEGER NOT NULL,
			error    TEXT,
			detail   TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_log_start ON log(start);
		CREATE INDEX IF NOT EXISTS idx_log_project ON log(project);
		CREATE INDEX IF NOT EXISTS idx_log_source ON log(source);
		CREATE INDEX IF NOT EXISTS idx_log_rule ON log(rule);
	`)
	return err
}

// nilIfEmpty returns nil for empty strings, reducing NULL checks in queries.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// nilIfZero returns nil for zero values.
func nilIfZero(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}
