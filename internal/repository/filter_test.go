package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestWhereBuilderBaseOnly(t *testing.T) {
	where := newWhereBuilder("department=$%d", "IT")

	assert.Equal(t, "department=$1", where.SQL())
	assert.Equal(t, []any{"IT"}, where.Args())
}

func TestWhereBuilderEmptyFiltersAddNothing(t *testing.T) {
	where := newWhereBuilder("requester_id=$%d", int64(42))
	where.andSearch(nil, "subject", "description")
	where.andSearch(strPtr("   "), "subject", "description")
	where.andEquals("status", nil)
	where.andEquals("status", strPtr(""))
	where.andBool("is_active", nil)

	assert.Equal(t, "requester_id=$1", where.SQL())
	assert.Equal(t, []any{int64(42)}, where.Args())
}

func TestWhereBuilderSearchGroup(t *testing.T) {
	where := newWhereBuilder("department=$%d", "IT")
	where.andSearch(strPtr(" Ali "), "first_name", "last_name", "email")

	assert.Equal(t,
		"department=$1 AND (LOWER(first_name) LIKE $2 OR LOWER(last_name) LIKE $2 OR LOWER(email) LIKE $2)",
		where.SQL())
	assert.Equal(t, []any{"IT", "%ali%"}, where.Args())
}

func TestWhereBuilderEqualityFilters(t *testing.T) {
	where := newWhereBuilder("requester_department=$%d", "Sales")
	where.andEquals("status", strPtr("open"))
	where.andEquals("priority", strPtr("urgent"))

	assert.Equal(t, "requester_department=$1 AND status=$2 AND priority=$3", where.SQL())
	assert.Equal(t, []any{"Sales", "open", "urgent"}, where.Args())
}

func TestWhereBuilderBoolFilter(t *testing.T) {
	where := newWhereBuilder("department=$%d", "HR")
	where.andBool("is_active", boolPtr(false))

	assert.Equal(t, "department=$1 AND is_active=$2", where.SQL())
	assert.Equal(t, []any{"HR", false}, where.Args())
}

// Filters may only ever narrow: whatever combination is applied, the scope
// predicate stays first and every addition is conjoined with AND.
func TestWhereBuilderScopeIsNeverWidened(t *testing.T) {
	combos := []TicketFilter{
		{},
		{SearchTerm: strPtr("printer")},
		{Status: strPtr("open")},
		{SearchTerm: strPtr("') OR 1=1 --"), Status: strPtr("open"), Priority: strPtr("low"), TicketType: strPtr("repair")},
	}

	for _, filter := range combos {
		where := ticketWhere("requester_department=$%d", "IT", filter)
		sql := where.SQL()

		assert.True(t, strings.HasPrefix(sql, "requester_department=$1"), sql)
		assert.NotContains(t, sql, "OR 1=1")
		assert.Equal(t, "IT", where.Args()[0])
		// every clause beyond the base is ANDed on
		if len(where.Args()) > 1 {
			assert.Contains(t, sql, " AND ")
		}
	}
}

func TestWhereBuilderNoBase(t *testing.T) {
	where := newWhereBuilder("")
	assert.Equal(t, "1=1", where.SQL())
	assert.Empty(t, where.Args())
}

func TestTicketOrderClauses(t *testing.T) {
	assert.Equal(t, "created_at DESC", OrderByRecency.clause())

	ranked := OrderByPriorityThenRecency.clause()
	assert.True(t, strings.HasPrefix(ranked, "CASE priority"), ranked)
	assert.True(t, strings.HasSuffix(ranked, "created_at DESC"), ranked)
}
