package repository

import (
	"fmt"
	"strings"
)

// whereBuilder assembles a parameterized WHERE clause from a fixed base
// scope predicate plus optional filter predicates. Filters are only ever
// ANDed onto the base, so no combination of inputs can widen the scope.
// User input is always bound, never interpolated into query text.
type whereBuilder struct {
	clauses []string
	args    []any
}

// newWhereBuilder starts a builder with the mandatory scope predicate.
// The base expression uses $%d for its bound value, e.g. "department=$%d".
func newWhereBuilder(base string, baseArgs ...any) *whereBuilder {
	b := &whereBuilder{}
	if base == "" {
		b.clauses = []string{"1=1"}
		return b
	}
	b.and(base, baseArgs...)
	return b
}

// and appends one predicate. expr contains one $%d verb per value, filled
// with the positional parameter indexes in order.
func (b *whereBuilder) and(expr string, values ...any) {
	indexes := make([]any, 0, len(values))
	for _, v := range values {
		b.args = append(b.args, v)
		indexes = append(indexes, len(b.args))
	}
	b.clauses = append(b.clauses, fmt.Sprintf(expr, indexes...))
}

// andEquals appends an equality predicate when the filter value is present
// and non-empty. Absent filters contribute nothing.
func (b *whereBuilder) andEquals(column string, value *string) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return
	}
	b.and(column+"=$%d", *value)
}

// andBool appends an equality predicate for an explicitly supplied flag.
func (b *whereBuilder) andBool(column string, value *bool) {
	if value == nil {
		return
	}
	b.and(column+"=$%d", *value)
}

// andSearch appends a case-insensitive substring OR-group across the given
// columns, all bound to the same wildcard-wrapped term. Empty or blank
// terms contribute nothing.
func (b *whereBuilder) andSearch(term *string, columns ...string) {
	if term == nil || strings.TrimSpace(*term) == "" {
		return
	}
	b.args = append(b.args, "%"+strings.ToLower(strings.TrimSpace(*term))+"%")
	placeholder := fmt.Sprintf("$%d", len(b.args))
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = fmt.Sprintf("LOWER(%s) LIKE %s", col, placeholder)
	}
	b.clauses = append(b.clauses, "("+strings.Join(parts, " OR ")+")")
}

// SQL returns the conjoined WHERE clause body.
func (b *whereBuilder) SQL() string {
	return strings.Join(b.clauses, " AND ")
}

// Args returns the bound values in placeholder order.
func (b *whereBuilder) Args() []any {
	return b.args
}

// priorityRankExpr orders urgent before high before medium before low.
const priorityRankExpr = `CASE priority
        WHEN 'urgent' THEN 1
        WHEN 'high' THEN 2
        WHEN 'medium' THEN 3
        WHEN 'low' THEN 4
        ELSE 5 END`
