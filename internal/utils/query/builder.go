// Package query turns a flat bag of request parameters into a typed
// QueryDescriptor. Building never fails: unparseable values degrade to
// permissive filters instead of erroring out.
package query

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/freightops/freight_broker_app/internal/core/domain"
)

const (
	DefaultPage   = 1
	DefaultLimit  = 10
	DefaultSortBy = "createdAt"

	rangeSeparator = " to "
)

// reservedParams are interpreted as paging/sorting/search controls; every
// other parameter becomes a filter condition on the same-named field.
var reservedParams = map[string]struct{}{
	"page":      {},
	"limit":     {},
	"sortBy":    {},
	"sortOrder": {},
	"search":    {},
}

var dateLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// Build parses request parameters against a caller-declared list of
// searchable fields. It is a pure function of its inputs.
func Build(params url.Values, searchable []string) domain.QueryDescriptor {
	q := domain.QueryDescriptor{
		Page:   positiveIntOr(params.Get("page"), DefaultPage),
		Limit:  positiveIntOr(params.Get("limit"), DefaultLimit),
		SortBy: DefaultSortBy,
	}

	if sortBy := strings.TrimSpace(params.Get("sortBy")); sortBy != "" {
		q.SortBy = sortBy
	}
	q.SortDesc = !strings.EqualFold(params.Get("sortOrder"), "asc")

	if search := strings.TrimSpace(params.Get("search")); search != "" {
		q.Search = search
		q.SearchFields = searchable
	}

	// Deterministic condition order regardless of map iteration.
	names := make([]string, 0, len(params))
	for name := range params {
		if _, reserved := reservedParams[name]; reserved {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := params.Get(name)
		if value == "" {
			continue
		}
		q.Conditions = append(q.Conditions, buildConditions(name, value)...)
	}
	return q
}

func buildConditions(name, value string) []domain.Condition {
	// "statusIn=Listed,Dispatched" filters the base field by set membership.
	if base, ok := strings.CutSuffix(name, "In"); ok && base != "" {
		values := splitNonEmpty(value, ",")
		if len(values) > 0 {
			return []domain.Condition{{Field: base, Op: domain.OpIn, Value: values}}
		}
		return nil
	}

	if isDateField(name) {
		if before, after, found := strings.Cut(value, rangeSeparator); found {
			var conds []domain.Condition
			if from, ok := parseDate(strings.TrimSpace(before)); ok {
				conds = append(conds, domain.Condition{Field: name, Op: domain.OpGte, Value: from})
			}
			if to, ok := parseDate(strings.TrimSpace(after)); ok {
				conds = append(conds, domain.Condition{Field: name, Op: domain.OpLte, Value: endOfDayIfDateOnly(strings.TrimSpace(after), to)})
			}
			return conds
		}
		if ts, ok := parseDate(value); ok {
			return []domain.Condition{{Field: name, Op: domain.OpEq, Value: ts}}
		}
		// Unparseable date degrades to a plain equality filter.
	}

	return []domain.Condition{{Field: name, Op: domain.OpEq, Value: value}}
}

func isDateField(name string) bool {
	return strings.HasSuffix(name, "Date") || strings.HasSuffix(name, "At")
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// endOfDayIfDateOnly widens a date-only upper bound to the end of that day
// so "a to b" behaves as a closed range.
func endOfDayIfDateOnly(raw string, ts time.Time) time.Time {
	if len(raw) == len("2006-01-02") || len(raw) == len("01/02/2006") {
		return ts.Add(24*time.Hour - time.Nanosecond)
	}
	return ts
}

func positiveIntOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func splitNonEmpty(value, sep string) []string {
	parts := strings.Split(value, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
