package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freightops/freight_broker_app/internal/core/domain"
	"github.com/freightops/freight_broker_app/internal/models"
	"github.com/freightops/freight_broker_app/internal/utils/mapping"
)

func testLoadRepo() *PgxEntityRepository[domain.Load, models.Load] {
	return newPgxEntityRepository[domain.Load, models.Load](nil, loadTableSpec, mapping.ToDomainLoad)
}

func TestBuildWhere_SoftDeleteFilterAlwaysFirst(t *testing.T) {
	r := testLoadRepo()
	where, args := r.buildWhere(domain.QueryDescriptor{}, false)
	assert.Equal(t, " WHERE deleted_at IS NULL", where)
	assert.Empty(t, args)

	where, args = r.buildWhere(domain.QueryDescriptor{}, true)
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildWhere_OperatorsRenderWithPositionalArgs(t *testing.T) {
	r := testLoadRepo()
	q := domain.QueryDescriptor{
		Conditions: []domain.Condition{
			{Field: "status", Op: domain.OpIn, Value: []string{"listed", "dispatched"}},
			{Field: "customerId", Op: domain.OpEq, Value: "cust-1"},
			{Field: "notes", Op: domain.OpContains, Value: "hazmat"},
		},
	}
	where, args := r.buildWhere(q, false)

	assert.Equal(t,
		" WHERE deleted_at IS NULL AND status = ANY($1) AND customer_id = $2 AND notes::text ILIKE $3",
		where)
	assert.Equal(t, []any{[]string{"listed", "dispatched"}, "cust-1", "%hazmat%"}, args)
}

func TestBuildWhere_UnknownFieldsAreDropped(t *testing.T) {
	r := testLoadRepo()
	q := domain.QueryDescriptor{
		Conditions: []domain.Condition{
			{Field: "status; DROP TABLE loads", Op: domain.OpEq, Value: "x"},
			{Field: "status", Op: domain.OpEq, Value: "listed"},
		},
	}
	where, args := r.buildWhere(q, false)

	assert.Equal(t, " WHERE deleted_at IS NULL AND status = $1", where)
	assert.Equal(t, []any{"listed"}, args)
}

func TestBuildWhere_SearchSpansFieldsWithOneArg(t *testing.T) {
	r := testLoadRepo()
	q := domain.QueryDescriptor{
		Search:       "chicago",
		SearchFields: []string{"refNumber", "notes"},
	}
	where, args := r.buildWhere(q, false)

	assert.Equal(t,
		" WHERE deleted_at IS NULL AND (ref_number::text ILIKE $1 OR notes::text ILIKE $1)",
		where)
	assert.Equal(t, []any{"%chicago%"}, args)
}

func TestBuildWhere_SearchWithNoWhitelistedFieldsReleasesArg(t *testing.T) {
	r := testLoadRepo()
	q := domain.QueryDescriptor{
		Search:       "chicago",
		SearchFields: []string{"nope"},
	}
	where, args := r.buildWhere(q, false)

	assert.Equal(t, " WHERE deleted_at IS NULL", where)
	assert.Empty(t, args)
}

func TestOrderClause_TieBreaksOnSeq(t *testing.T) {
	r := testLoadRepo()

	assert.Equal(t, " ORDER BY rate DESC, seq ASC",
		r.orderClause(domain.QueryDescriptor{SortBy: "rate", SortDesc: true}))
	assert.Equal(t, " ORDER BY pickup_date ASC, seq ASC",
		r.orderClause(domain.QueryDescriptor{SortBy: "pickupDate"}))
}

func TestOrderClause_UnknownSortFallsBackToCreatedAt(t *testing.T) {
	r := testLoadRepo()
	assert.Equal(t, " ORDER BY created_at ASC, seq ASC",
		r.orderClause(domain.QueryDescriptor{SortBy: "rate; DROP TABLE loads"}))
}
