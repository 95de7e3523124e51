package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	// Registers the "sqlite" driver.
	_ "modernc.org/sqlite"

	"github.com/rshade/listctl/internal/listing"
)

// LoadSQLite runs query against the database at path and captures the result
// set. When query is empty, every row of the table named table is read.
func LoadSQLite(ctx context.Context, path, table, query string) (*listing.Host, error) {
	// The driver creates missing databases; a loader must not.
	if err := checkExists(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	id := table
	if query == "" {
		if table == "" {
			return nil, fmt.Errorf("%w: no table or query given", ErrHostNotFound)
		}
		var name string
		err := db.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type IN ('table', 'view') AND name = ?`, table).Scan(&name)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: table %q", ErrHostNotFound, table)
		}
		if err != nil {
			return nil, fmt.Errorf("looking up table: %w", err)
		}
		query = "SELECT * FROM " + quoteIdent(name)
	}
	if id == "" {
		id = "query"
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("running query: %w", err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}
	columns := make([]listing.Column, len(names))
	for i, name := range names {
		columns[i] = listing.Column{Title: name, Sortable: true}
	}

	var records [][]string
	values := make([]any, len(names))
	ptrs := make([]any, len(names))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		record := make([]string, len(values))
		for i, v := range values {
			record[i] = displayValue(v)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return listing.NewHost(id, columns, records), nil
}

// displayValue renders a scanned column the way a listing would show it.
// NULL renders as "".
func displayValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(x)
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
