package query_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/freightops/freight_broker_app/internal/core/domain"
	"github.com/freightops/freight_broker_app/internal/utils/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Defaults(t *testing.T) {
	q := query.Build(url.Values{}, nil)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, "createdAt", q.SortBy)
	assert.True(t, q.SortDesc)
	assert.Empty(t, q.Conditions)
	assert.Empty(t, q.Search)
}

func TestBuild_MembershipSortAndPaging(t *testing.T) {
	params := url.Values{
		"statusIn":  {"Listed,Dispatched"},
		"sortBy":    {"value"},
		"sortOrder": {"asc"},
		"page":      {"2"},
		"limit":     {"5"},
	}

	q := query.Build(params, []string{"status"})

	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 5, q.Limit)
	assert.Equal(t, "value", q.SortBy)
	assert.False(t, q.SortDesc)
	require.Len(t, q.Conditions, 1)
	cond := q.Conditions[0]
	assert.Equal(t, "status", cond.Field)
	assert.Equal(t, domain.OpIn, cond.Op)
	assert.Equal(t, []string{"Listed", "Dispatched"}, cond.Value)
	assert.Equal(t, 5, q.Offset())
}

func TestBuild_SearchUsesDeclaredFields(t *testing.T) {
	q := query.Build(url.Values{"search": {"acme"}}, []string{"companyName", "email"})

	assert.Equal(t, "acme", q.Search)
	assert.Equal(t, []string{"companyName", "email"}, q.SearchFields)
}

func TestBuild_DateRange(t *testing.T) {
	params := url.Values{"pickupDate": {"2026-03-01 to 2026-03-05"}}

	q := query.Build(params, nil)
	require.Len(t, q.Conditions, 2)

	from := q.Conditions[0]
	assert.Equal(t, domain.OpGte, from.Op)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), from.Value)

	to := q.Conditions[1]
	assert.Equal(t, domain.OpLte, to.Op)
	upper, ok := to.Value.(time.Time)
	require.True(t, ok)
	assert.Equal(t, 5, upper.Day(), "upper bound stays on the named day")
	assert.Equal(t, 23, upper.Hour(), "date-only upper bound is widened to end of day")
}

func TestBuild_SingleDateEquality(t *testing.T) {
	q := query.Build(url.Values{"deliveryDate": {"2026-04-10"}}, nil)

	require.Len(t, q.Conditions, 1)
	assert.Equal(t, domain.OpEq, q.Conditions[0].Op)
	assert.Equal(t, time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), q.Conditions[0].Value)
}

func TestBuild_UnparseableDateDegradesToEquality(t *testing.T) {
	q := query.Build(url.Values{"pickupDate": {"not-a-date"}}, nil)

	require.Len(t, q.Conditions, 1)
	assert.Equal(t, domain.OpEq, q.Conditions[0].Op)
	assert.Equal(t, "not-a-date", q.Conditions[0].Value)
}

func TestBuild_BadPagingDegradesToDefaults(t *testing.T) {
	q := query.Build(url.Values{"page": {"-3"}, "limit": {"zebra"}}, nil)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
}

func TestBuild_PlainEqualityAndDeterministicOrder(t *testing.T) {
	params := url.Values{
		"status":     {"listed"},
		"customerId": {"cu-1"},
	}

	q := query.Build(params, nil)
	require.Len(t, q.Conditions, 2)
	assert.Equal(t, "customerId", q.Conditions[0].Field)
	assert.Equal(t, "status", q.Conditions[1].Field)
	assert.Equal(t, "listed", q.Conditions[1].Value)
}
