// Package xref maintains a SQLite index of identifier occurrences across
// resolved units: which names appear where, and what each use was found to
// denote. The store answers name lookups and per-kind tallies without the
// trees in memory.
package xref

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)

	"github.com/funvibe/syntree/internal/ast"
)

//go:embed schema.sql
var schemaSQL string

// Store is a SQLite-backed occurrence index.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// NewStore creates an unopened store. A nil logger discards.
func NewStore(log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{log: log}
}

// Open opens the database at path. Use ":memory:" for an in-memory index.
func (s *Store) Open(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open xref database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping xref database: %w", err)
	}
	s.db = db
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// InitSchema creates the tables when they do not exist yet.
func (s *Store) InitSchema(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// Occurrence is one identifier use inside an indexed unit.
type Occurrence struct {
	UnitID string
	File   string
	Name   string
	Kind   string
	Line   int
	Col    int
	Offset int
}

// IndexUnit records every identifier use of the program as one new unit and
// returns the unit id. Unresolved uses are recorded too, under the
// "unresolved" kind.
func (s *Store) IndexUnit(ctx context.Context, prog *ast.Program) (string, error) {
	if s.db == nil {
		return "", fmt.Errorf("database not opened")
	}
	if prog == nil {
		return "", fmt.Errorf("no program to index")
	}

	occ := occurrencesOf(prog)
	unitID := uuid.New().String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO units (id, file, indexed_at) VALUES (?, ?, ?)`,
		unitID, prog.File, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert unit: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO occurrences (unit_id, name, kind, line, col, "offset") VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare occurrence insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range occ {
		if _, err := stmt.ExecContext(ctx, unitID, o.Name, o.Kind, o.Line, o.Col, o.Offset); err != nil {
			return "", fmt.Errorf("failed to insert occurrence of %q: %w", o.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit unit: %w", err)
	}

	s.log.Debug("unit indexed", "file", prog.File, "unit", unitID, "occurrences", len(occ))
	return unitID, nil
}

// Lookup returns every recorded occurrence of name, across all units, in
// file then position order.
func (s *Store) Lookup(ctx context.Context, name string) ([]Occurrence, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT o.unit_id, u.file, o.name, o.kind, o.line, o.col, o."offset"
		 FROM occurrences o JOIN units u ON u.id = o.unit_id
		 WHERE o.name = ?
		 ORDER BY u.file, o.line, o.col`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to look up %q: %w", name, err)
	}
	defer rows.Close()

	var out []Occurrence
	for rows.Next() {
		var o Occurrence
		if err := rows.Scan(&o.UnitID, &o.File, &o.Name, &o.Kind, &o.Line, &o.Col, &o.Offset); err != nil {
			return nil, fmt.Errorf("failed to scan occurrence: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read occurrences: %w", err)
	}
	return out, nil
}

// KindCounts tallies recorded occurrences by resolution kind.
func (s *Store) KindCounts(ctx context.Context) (map[string]int, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT kind, COUNT(*) FROM occurrences GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("failed to count kinds: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("failed to scan kind count: %w", err)
		}
		counts[kind] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read kind counts: %w", err)
	}
	return counts, nil
}

// occurrencesOf collects the identifier uses of a program in walk order.
func occurrencesOf(prog *ast.Program) []Occurrence {
	var occ []Occurrence
	w := ast.NewWalker(ast.Hooks{
		Expr: func(k func(ast.Expression), e ast.Expression) {
			if id, ok := e.(*ast.Identifier); ok {
				occ = append(occ, Occurrence{
					Name:   id.Value,
					Kind:   id.Resolved.Kind().String(),
					Line:   id.Token.Pos.Line,
					Col:    id.Token.Pos.Column,
					Offset: id.Token.Pos.Offset,
				})
			}
			k(e)
		},
	})
	w.WalkProgram(prog)
	return occ
}
