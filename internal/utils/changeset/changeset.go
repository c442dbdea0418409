// Package changeset decides whether two values for the same field are
// actually different and builds field-level change lists for audit records.
// The same comparison drives the reduced write-set on update, so a request
// that changes nothing never touches storage.
package changeset

import (
	"encoding/json"
	"reflect"
	"sort"
	"strings"

	"github.com/freightops/freight_broker_app/internal/core/domain"
)

// excludedFields are bookkeeping fields never considered for comparison:
// the identifier, timestamps, audit stamps and the insertion-order marker.
var excludedFields = map[string]struct{}{
	"id":            {},
	"createdAt":     {},
	"createdBy":     {},
	"lastUpdatedAt": {},
	"lastUpdatedBy": {},
	"deletedAt":     {},
	"deletedBy":     {},
	"seq":           {},
}

// IsExcluded reports whether a field is exempt from change tracking.
func IsExcluded(field string) bool {
	_, ok := excludedFields[field]
	return ok
}

// ToFieldMap flattens an entity struct into a wire-field -> value map using
// its json tags. Embedded structs are flattened; fields tagged "-" are
// skipped. Values keep their native Go types so the storage layer can bind
// them directly.
func ToFieldMap(entity any) map[string]any {
	out := make(map[string]any)
	collectFields(reflect.ValueOf(entity), out)
	return out
}

func collectFields(rv reflect.Value, out map[string]any) {
	rv = reflect.Indirect(rv)
	if !rv.IsValid() || rv.Kind() != reflect.Struct {
		return
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if field.PkgPath != "" {
			continue // unexported
		}
		if field.Anonymous && reflect.Indirect(rv.Field(i)).Kind() == reflect.Struct {
			collectFields(rv.Field(i), out)
			continue
		}
		name := field.Name
		if tag := field.Tag.Get("json"); tag != "" {
			parts := strings.SplitN(tag, ",", 2)
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
		}
		out[name] = rv.Field(i).Interface()
	}
}

// Changed implements the value comparison policy:
//   - both sides absent/null: not changed
//   - exactly one side absent/null: changed
//   - both strings: changed iff trimmed values differ
//   - both structured: changed iff canonical JSON forms differ
//   - otherwise: changed iff not strictly equal (compared through the same
//     canonical form, so 100 and 100.0 are one value)
func Changed(oldVal, newVal any) bool {
	oldNil, newNil := isNilValue(oldVal), isNilValue(newVal)
	if oldNil && newNil {
		return false
	}
	if oldNil != newNil {
		return true
	}
	if oldStr, newStr, ok := bothStrings(oldVal, newVal); ok {
		return strings.TrimSpace(oldStr) != strings.TrimSpace(newStr)
	}
	return canonicalJSON(oldVal) != canonicalJSON(newVal)
}

// Diff compares an entity's current field map against a proposed patch and
// returns the ordered change list plus the reduced set of fields that need
// writing. Excluded bookkeeping fields are ignored even if present in the
// patch.
func Diff(current map[string]any, patch map[string]any) ([]domain.FieldChange, map[string]any) {
	fields := make([]string, 0, len(patch))
	for field := range patch {
		if IsExcluded(field) {
			continue
		}
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var changes []domain.FieldChange
	writeSet := make(map[string]any)
	for _, field := range fields {
		oldVal := current[field]
		newVal := patch[field]
		if !Changed(oldVal, newVal) {
			continue
		}
		changes = append(changes, domain.FieldChange{
			Field:    field,
			OldValue: oldVal,
			NewValue: newVal,
		})
		writeSet[field] = newVal
	}
	return changes, writeSet
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

func bothStrings(a, b any) (string, string, bool) {
	ra, rb := reflect.Indirect(reflect.ValueOf(a)), reflect.Indirect(reflect.ValueOf(b))
	if ra.Kind() == reflect.String && rb.Kind() == reflect.String {
		return ra.String(), rb.String(), true
	}
	return "", "", false
}

// canonicalJSON round-trips a value through encoding/json so maps come out
// with sorted keys and numeric types collapse to one representation.
func canonicalJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return reflect.TypeOf(v).String() + ":unserializable"
	}
	var normalized any
	if err := json.Unmarshal(b, &normalized); err != nil {
		return string(b)
	}
	out, err := json.Marshal(normalized)
	if err != nil {
		return string(b)
	}
	return string(out)
}
