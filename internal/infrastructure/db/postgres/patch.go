package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5"
)

// setClauses accumulates SET assignments for a dynamic partial update. Each
// present patch field contributes exactly one "column = @column" assignment;
// the named arguments make the generated SQL independent of field order.
type setClauses struct {
	assignments []string
	args        pgx.NamedArgs
}

func newSetClauses() *setClauses {
	return &setClauses{args: pgx.NamedArgs{}}
}

func (s *setClauses) add(column string, value any) {
	s.assignments = append(s.assignments, column+" = @"+column)
	s.args[column] = value
}

func (s *setClauses) empty() bool {
	return len(s.assignments) == 0
}

func (s *setClauses) clause() string {
	return strings.Join(s.assignments, ", ")
}
