package postgres

import (
	"strconv"
	"strings"
)

// updateBuilder assembles "UPDATE table SET a = $1, b = $2 WHERE id = $3".
// Column names come from code, never from input; every value, the target
// id included, is a positional parameter.
type updateBuilder struct {
	table string
	sets  strings.Builder
	args  []any
}

func newUpdateBuilder(table string) *updateBuilder {
	return &updateBuilder{table: table}
}

// Set appends "column = $n" with value as the next parameter.
func (b *updateBuilder) Set(column string, value any) *updateBuilder {
	if len(b.args) > 0 {
		b.sets.WriteString(", ")
	}
	b.sets.WriteString(column)
	b.sets.WriteString(" = ")
	b.writePlaced(value)
	return b
}

// SetNonEmpty calls Set only when value is not empty.
func (b *updateBuilder) SetNonEmpty(column, value string) *updateBuilder {
	if value == "" {
		return b
	}
	return b.Set(column, value)
}

func (b *updateBuilder) Len() int {
	return len(b.args)
}

// Where finishes the statement with "WHERE column = $n" and returns the SQL
// and its arguments.
func (b *updateBuilder) Where(column string, value any) (string, []any) {
	var s strings.Builder
	s.WriteString("UPDATE ")
	s.WriteString(b.table)
	s.WriteString(" SET ")
	s.WriteString(b.sets.String())
	s.WriteString(" WHERE ")
	s.WriteString(column)
	s.WriteString(" = $")
	s.WriteString(strconv.Itoa(len(b.args) + 1))

	args := make([]any, 0, len(b.args)+1)
	args = append(args, b.args...)
	args = append(args, value)
	return s.String(), args
}

func (b *updateBuilder) writePlaced(value any) {
	b.args = append(b.args, value)
	b.sets.WriteString("$")
	b.sets.WriteString(strconv.Itoa(len(b.args)))
}
