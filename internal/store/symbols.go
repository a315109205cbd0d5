package store

import (
	"database/sql"
	"fmt"
)

// Symbol is one row of backend symbol data: a code entity with usage
// metadata, as computed server-side.
type Symbol struct {
	ID          int64
	Name        string
	Path        string
	Kind        string
	RefCount    int
	CallerCount int
	CalleeCount int
	Dead        bool
	InCycle     bool
	Entry       bool
}

const symbolCols = "id, name, path, kind, ref_count, caller_count, callee_count, dead, in_cycle, entry"

// InsertSymbol adds one symbol and returns its row ID.
func (s *Store) InsertSymbol(sym *Symbol) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO symbols (name, path, kind, ref_count, caller_count, callee_count, dead, in_cycle, entry)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sym.Name, sym.Path, sym.Kind, sym.RefCount, sym.CallerCount, sym.CalleeCount,
		sym.Dead, sym.InCycle, sym.Entry,
	)
	if err != nil {
		return 0, fmt.Errorf("insert symbol: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	sym.ID = id
	return id, nil
}

// ReplaceSymbols transactionally swaps the whole symbol set for a fresh
// snapshot from the backend.
func (s *Store) ReplaceSymbols(syms []*Symbol) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM symbols"); err != nil {
		return fmt.Errorf("clear symbols: %w", err)
	}
	stmt, err := tx.Prepare(
		`INSERT INTO symbols (name, path, kind, ref_count, caller_count, callee_count, dead, in_cycle, entry)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, sym := range syms {
		res, err := stmt.Exec(
			sym.Name, sym.Path, sym.Kind, sym.RefCount, sym.CallerCount, sym.CalleeCount,
			sym.Dead, sym.InCycle, sym.Entry,
		)
		if err != nil {
			return fmt.Errorf("insert symbol %q: %w", sym.Name, err)
		}
		if sym.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}
	}
	return tx.Commit()
}

// Symbols returns every symbol, ordered by name then path for stable
// output.
func (s *Store) Symbols() ([]*Symbol, error) {
	rows, err := s.db.Query("SELECT " + symbolCols + " FROM symbols ORDER BY name, path")
	if err != nil {
		return nil, fmt.Errorf("list symbols: %w", err)
	}
	defer rows.Close()

	var syms []*Symbol
	for rows.Next() {
		sym, err := scanSymbol(rows)
		if err != nil {
			return nil, fmt.Errorf("scan symbol: %w", err)
		}
		syms = append(syms, sym)
	}
	return syms, rows.Err()
}

// SymbolByID returns one symbol, or nil when absent.
func (s *Store) SymbolByID(id int64) (*Symbol, error) {
	row := s.db.QueryRow("SELECT "+symbolCols+" FROM symbols WHERE id = ?", id)
	sym, err := scanSymbol(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("symbol by id: %w", err)
	}
	return sym, nil
}

// CountSymbols returns the total number of stored symbols.
func (s *Store) CountSymbols() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM symbols").Scan(&n); err != nil {
		return 0, fmt.Errorf("count symbols: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSymbol(row scanner) (*Symbol, error) {
	sym := &Symbol{}
	err := row.Scan(
		&sym.ID, &sym.Name, &sym.Path, &sym.Kind,
		&sym.RefCount, &sym.CallerCount, &sym.CalleeCount,
		&sym.Dead, &sym.InCycle, &sym.Entry,
	)
	if err != nil {
		return nil, err
	}
	return sym, nil
}
