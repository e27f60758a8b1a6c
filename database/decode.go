// database/decode.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
)

// DecodeError reports a result set that does not have the shape its record
// type expects, or a row whose values could not be scanned into it.
type DecodeError struct {
	Record string
	Want   []string
	Got    []string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s: %v", e.Record, e.Err)
	}
	return fmt.Sprintf("decode %s: columns [%s] do not match expected [%s]",
		e.Record, strings.Join(e.Got, ", "), strings.Join(e.Want, ", "))
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// queryRecords runs query and decodes every row with scan. The result
// columns must match columns exactly, in order.
func queryRecords[T any](
	ctx context.Context,
	q queryer,
	record string,
	columns []string,
	scan func(*sql.Rows) (T, error),
	query string,
	args ...any,
) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", record, err)
	}
	defer rows.Close()

	got, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s columns: %w", record, err)
	}
	if !slices.Equal(got, columns) {
		return nil, &DecodeError{Record: record, Want: columns, Got: got}
	}

	var out []T
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, &DecodeError{Record: record, Want: columns, Got: got, Err: err}
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", record, err)
	}
	return out, nil
}

func nullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullFloat(nf sql.NullFloat64) float64 {
	if nf.Valid {
		return nf.Float64
	}
	return 0
}

func nullInt(ni sql.NullInt64) int {
	if ni.Valid {
		return int(ni.Int64)
	}
	return 0
}
