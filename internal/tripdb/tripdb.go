// Package tripdb mirrors a filtered trip table into an in-memory SQLite
// database so it can be queried with SQL. The database is read-only once
// loaded.
package tripdb

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/bikeshare/bikeshare/internal/trips"
)

// TableName is the name the trips are loaded under.
const TableName = "trips"

// numericColumns get a numeric affinity so comparisons and aggregates work.
var numericColumns = map[string]string{
	trips.ColTripDuration: "REAL",
	trips.ColBirthYear:    "REAL",
	trips.ColMonth:        "INTEGER",
}

// DB is an in-memory SQLite copy of one trips.Table.
type DB struct {
	db *sql.DB
}

// Result is the outcome of a query, every value rendered as text. NULL
// becomes the empty string.
type Result struct {
	Columns []string
	Rows    [][]string
}

// Open creates the database and loads every row of t into table trips.
func Open(ctx context.Context, t *trips.Table) (*DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := load(ctx, db, t); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA query_only = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set query_only: %w", err)
	}
	return &DB{db: db}, nil
}

func load(ctx context.Context, db *sql.DB, t *trips.Table) error {
	names := t.Columns()
	cols := make([][]string, len(names))
	defs := make([]string, len(names))
	for i, name := range names {
		vals, err := t.Strings(name)
		if err != nil {
			return err
		}
		cols[i] = vals
		typ, ok := numericColumns[name]
		if !ok {
			typ = "TEXT"
		}
		defs[i] = quote(name) + " " + typ
	}

	create := fmt.Sprintf("CREATE TABLE %s (%s)", TableName, strings.Join(defs, ", "))
	if _, err := db.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	marks := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s VALUES (%s)", TableName, marks))
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(names))
	for row := 0; row < t.Len(); row++ {
		for i := range cols {
			if v := cols[i][row]; v != "" {
				args[i] = v
			} else {
				args[i] = nil
			}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert row %d: %w", row, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Query runs one statement and collects all of its rows.
func (d *DB) Query(ctx context.Context, query string) (*Result, error) {
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	res := &Result{Columns: columns}

	vals := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		row := make([]string, len(vals))
		for i, v := range vals {
			row[i] = format(v)
		}
		res.Rows = append(res.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return res, nil
}

// Close releases the database.
func (d *DB) Close() error {
	return d.db.Close()
}

func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func format(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
