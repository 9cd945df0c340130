// Package querybuilder renders the small set of Postgres statements the
// repositories need, with $n placeholders bound in order.
package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// binder hands out $n placeholders and collects their arguments.
type binder struct {
	args []any
}

func (b *binder) bind(value any) string {
	b.args = append(b.args, value)
	return "$" + strconv.Itoa(len(b.args))
}

type Condition interface {
	render(buf *strings.Builder, b *binder)
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) render(buf *strings.Builder, b *binder) {
	buf.WriteString(c.column)
	buf.WriteString(" = ")
	buf.WriteString(b.bind(c.value))
}

func renderWhere(buf *strings.Builder, b *binder, conditions []Condition) {
	for i, c := range conditions {
		if i == 0 {
			buf.WriteString(" WHERE ")
		} else {
			buf.WriteString(" AND ")
		}
		c.render(buf, b)
	}
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (s *SelectBuilder) From(table string) *SelectBuilder {
	s.table = table
	return s
}

func (s *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	s.where = append(s.where, conditions...)
	return s
}

func (s *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	s.orderBy = append(s.orderBy, parts...)
	return s
}

// Limit caps the row count; zero or less means no LIMIT clause.
func (s *SelectBuilder) Limit(limit int) *SelectBuilder {
	s.limit = limit
	return s
}

func (s *SelectBuilder) ToSQL() (string, []any, error) {
	if len(s.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(s.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var (
		buf strings.Builder
		b   binder
	)
	buf.WriteString("SELECT ")
	buf.WriteString(strings.Join(s.columns, ", "))
	buf.WriteString(" FROM ")
	buf.WriteString(s.table)
	renderWhere(&buf, &b, s.where)
	if len(s.orderBy) > 0 {
		buf.WriteString(" ORDER BY ")
		buf.WriteString(strings.Join(s.orderBy, ", "))
	}
	if s.limit > 0 {
		buf.WriteString(" LIMIT ")
		buf.WriteString(strconv.Itoa(s.limit))
	}

	return buf.String(), b.args, nil
}

// InsertBuilder renders a multi-row INSERT. The suffix is appended verbatim,
// typically an ON CONFLICT clause.
type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (i *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	i.columns = append([]string(nil), columns...)
	return i
}

func (i *InsertBuilder) Values(values ...any) *InsertBuilder {
	i.rows = append(i.rows, append([]any(nil), values...))
	return i
}

func (i *InsertBuilder) Suffix(sql string) *InsertBuilder {
	i.suffix = strings.TrimSpace(sql)
	return i
}

func (i *InsertBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(i.table) == "":
		return "", nil, fmt.Errorf("insert table is required")
	case len(i.columns) == 0:
		return "", nil, fmt.Errorf("insert columns are required")
	case len(i.rows) == 0:
		return "", nil, fmt.Errorf("insert values are required")
	}

	var (
		buf strings.Builder
		b   = binder{args: make([]any, 0, len(i.rows)*len(i.columns))}
	)
	buf.WriteString("INSERT INTO ")
	buf.WriteString(i.table)
	buf.WriteString(" (")
	buf.WriteString(strings.Join(i.columns, ", "))
	buf.WriteString(") VALUES ")

	for rowIdx, row := range i.rows {
		if len(row) != len(i.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(i.columns))
		}
		if rowIdx > 0 {
			buf.WriteString(", ")
		}
		buf.WriteByte('(')
		for colIdx, value := range row {
			if colIdx > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(b.bind(value))
		}
		buf.WriteByte(')')
	}

	if i.suffix != "" {
		buf.WriteByte(' ')
		buf.WriteString(i.suffix)
	}

	return buf.String(), b.args, nil
}

type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (d *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	d.where = append(d.where, conditions...)
	return d
}

func (d *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(d.table) == "" {
		return "", nil, fmt.Errorf("delete table is required")
	}

	var (
		buf strings.Builder
		b   binder
	)
	buf.WriteString("DELETE FROM ")
	buf.WriteString(d.table)
	renderWhere(&buf, &b, d.where)

	return buf.String(), b.args, nil
}

// Truncate renders a single TRUNCATE for every table, restarting identities.
func Truncate(tables ...string) (string, error) {
	if len(tables) == 0 {
		return "", fmt.Errorf("truncate tables are required")
	}
	for _, table := range tables {
		if strings.TrimSpace(table) == "" {
			return "", fmt.Errorf("truncate table name cannot be empty")
		}
	}
	return "TRUNCATE TABLE " + strings.Join(tables, ", ") + " RESTART IDENTITY", nil
}
