package graph

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLite is a statement store backed by a SQLite database. The primary
// key over the full triple gives set semantics at the storage layer, and
// an existing database reopens as the prior run's statement set.
type SQLite struct {
	db     *sql.DB
	dbPath string
}

// OpenSQLite opens or creates a statement database at the given path.
func OpenSQLite(dbPath string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	s := &SQLite{db: db, dbPath: dbPath}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

// OpenSQLiteMemory opens an in-memory statement database (for testing).
func OpenSQLiteMemory() (*SQLite, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open memory db: %w", err)
	}
	s := &SQLite{db: db, dbPath: ":memory:"}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

func (s *SQLite) initSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS statements (
	subject   TEXT NOT NULL,
	predicate TEXT NOT NULL,
	object    TEXT NOT NULL,
	literal   INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (subject, predicate, object, literal)
);
CREATE INDEX IF NOT EXISTS idx_statements_subject ON statements(subject);
`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Add inserts a statement, returning true if it was new.
func (s *SQLite) Add(st Statement) bool {
	res, err := s.db.Exec(
		"INSERT OR IGNORE INTO statements (subject, predicate, object, literal) VALUES (?, ?, ?, ?)",
		st.Subject, st.Predicate, st.Object, boolToInt(st.Literal))
	if err != nil {
		return false
	}
	n, err := res.RowsAffected()
	return err == nil && n > 0
}

// Has reports whether the exact statement is present.
func (s *SQLite) Has(st Statement) bool {
	var one int
	err := s.db.QueryRow(
		"SELECT 1 FROM statements WHERE subject=? AND predicate=? AND object=? AND literal=?",
		st.Subject, st.Predicate, st.Object, boolToInt(st.Literal)).Scan(&one)
	return err == nil
}

// BySubject returns all statements with the given subject.
func (s *SQLite) BySubject(subject string) []Statement {
	rows, err := s.db.Query(
		"SELECT subject, predicate, object, literal FROM statements WHERE subject=?", subject)
	if err != nil {
		return nil
	}
	defer rows.Close()
	return scanStatements(rows)
}

// Len returns the number of distinct statements.
func (s *SQLite) Len() int {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM statements").Scan(&n); err != nil {
		return 0
	}
	return n
}

// ForEach visits every statement.
func (s *SQLite) ForEach(fn func(st Statement) error) error {
	rows, err := s.db.Query("SELECT subject, predicate, object, literal FROM statements")
	if err != nil {
		return fmt.Errorf("iterate statements: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var st Statement
		var lit int
		if err := rows.Scan(&st.Subject, &st.Predicate, &st.Object, &lit); err != nil {
			return fmt.Errorf("scan statement: %w", err)
		}
		st.Literal = lit != 0
		if err := fn(st); err != nil {
			return err
		}
	}
	return rows.Err()
}

func scanStatements(rows *sql.Rows) []Statement {
	var out []Statement
	for rows.Next() {
		var st Statement
		var lit int
		if err := rows.Scan(&st.Subject, &st.Predicate, &st.Object, &lit); err != nil {
			return out
		}
		st.Literal = lit != 0
		out = append(out, st)
	}
	return out
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
