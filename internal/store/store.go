// Package store persists processed result tables to DuckDB so they can be
// queried downstream.
package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/jorgeholguin/VCF-functions/internal/table"
)

// Store manages a DuckDB connection holding result tables.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// SaveTable writes t as a DuckDB table with one VARCHAR column per table
// column, replacing any existing table of the same name. Rows are inserted
// through the Appender API.
func (s *Store) SaveTable(name string, t *table.Table) error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("save table %s: no columns", name)
	}

	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = quoteIdent(c) + " VARCHAR"
	}
	ddl := fmt.Sprintf("CREATE OR REPLACE TABLE %s (%s)",
		quoteIdent(name), strings.Join(cols, ", "))
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("create table %s: %w", name, err)
	}

	if t.Len() == 0 {
		return nil
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", name)
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	values := make([]driver.Value, len(t.Columns))
	for _, row := range t.Rows {
		for i, c := range t.Columns {
			values[i] = row[c]
		}
		if err := appender.AppendRow(values...); err != nil {
			return fmt.Errorf("append row: %w", err)
		}
	}

	return appender.Flush()
}

// CountRows returns the row count of a stored table.
func (s *Store) CountRows(name string) (int64, error) {
	var n int64
	err := s.db.QueryRow("SELECT count(*) FROM " + quoteIdent(name)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count rows in %s: %w", name, err)
	}
	return n, nil
}

// quoteIdent quotes an identifier for DuckDB. Column names such as #CHROM
// are not bare-safe.
func quoteIdent(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}
