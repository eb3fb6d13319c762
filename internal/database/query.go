package database

import (
	"strings"

	"golang.org/x/text/cases"
)

// Placeholders returns n comma separated bind markers, e.g. "?, ?, ?".
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// Tuples returns count parenthesised groups of width bind markers,
// e.g. Tuples(2, 2) == "(?, ?), (?, ?)".
func Tuples(count, width int) string {
	if count <= 0 || width <= 0 {
		return ""
	}
	group := "(" + Placeholders(width) + ")"
	return strings.TrimSuffix(strings.Repeat(group+", ", count), ", ")
}

// IntArgs converts ids into bind arguments.
func IntArgs(ids []int) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

// Assignments collects "column = ?" pairs for an UPDATE statement. Column
// names must come from constants in the calling package; values are always
// bound.
type Assignments struct {
	columns []string
	args    []any
}

func (a *Assignments) Set(column string, value any) {
	a.columns = append(a.columns, column)
	a.args = append(a.args, value)
}

func (a *Assignments) Len() int {
	return len(a.columns)
}

// Clause renders the SET list without the SET keyword.
func (a *Assignments) Clause() string {
	parts := make([]string, len(a.columns))
	for i, c := range a.columns {
		parts[i] = c + " = ?"
	}
	return strings.Join(parts, ", ")
}

// Args returns the bound values in column order followed by extra.
func (a *Assignments) Args(extra ...any) []any {
	out := make([]any, 0, len(a.args)+len(extra))
	out = append(out, a.args...)
	return append(out, extra...)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchKey case-folds s with Unicode rules. SQLite's LOWER only folds
// ASCII, so searchable columns keep a *_key copy built with SearchKey and are
// matched against a pattern from ContainsPattern.
func SearchKey(s string) string {
	return cases.Fold().String(s)
}

// ContainsPattern builds a LIKE pattern matching the folded s anywhere in a
// key column. Use it with ESCAPE '\'.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(SearchKey(s)) + "%"
}
