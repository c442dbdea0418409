// Package rules applies per-entity, per-operation validation rule sets to
// entity field maps. A rule set maps a field path (dot notation for nested
// fields) to a go-playground/validator tag string; the rule sets themselves
// are owned by each entity's service configuration and immutable at runtime.
package rules

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/freightops/freight_broker_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// RuleSet maps field paths to validator tags, e.g.
//
//	rules.RuleSet{"email": "required,email", "rate": "gte=0"}
type RuleSet map[string]string

// Checker evaluates rule sets against field maps.
type Checker struct {
	validate *validator.Validate
}

// NewChecker builds a Checker with a dedicated validator instance.
func NewChecker() *Checker {
	return &Checker{validate: validator.New()}
}

// Check validates fields against the rule set and reports every violated
// field at once. When partial is true (update semantics) rules only apply
// to fields present in the map; absent fields are not treated as missing.
func (c *Checker) Check(rs RuleSet, fields map[string]any, partial bool) error {
	if len(rs) == 0 {
		return nil
	}

	paths := make([]string, 0, len(rs))
	for path := range rs {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var violations []apperrors.FieldViolation
	for _, path := range paths {
		tag := rs[path]
		value, present := lookupPath(fields, path)

		required := hasRequired(tag)
		if !present || isEmptyValue(value) {
			if present && !required {
				// Explicit empty value without a required rule is allowed.
				continue
			}
			if required && !(!present && partial) {
				violations = append(violations, apperrors.FieldViolation{
					Field:   path,
					Message: "is required",
				})
			}
			continue
		}

		rest := stripRequired(tag)
		if rest == "" {
			continue
		}
		if err := c.validate.Var(value, rest); err != nil {
			violations = append(violations, apperrors.FieldViolation{
				Field:   path,
				Message: violationMessage(err, rest),
			})
		}
	}

	if len(violations) > 0 {
		return apperrors.NewValidationError(violations...)
	}
	return nil
}

// lookupPath resolves a dot path through nested maps and structs, using
// json tags for struct fields.
func lookupPath(fields map[string]any, path string) (any, bool) {
	var current any = fields
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			val, ok := node[part]
			if !ok {
				return nil, false
			}
			current = val
		default:
			val, ok := structField(current, part)
			if !ok {
				return nil, false
			}
			current = val
		}
	}
	return current, true
}

func structField(v any, name string) (any, bool) {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if !rv.IsValid() || rv.Kind() != reflect.Struct {
		return nil, false
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		tagName := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if tagName == name || (tagName == "" && field.Name == name) {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}

func hasRequired(tag string) bool {
	for _, part := range strings.Split(tag, ",") {
		if strings.TrimSpace(part) == "required" {
			return true
		}
	}
	return false
}

func stripRequired(tag string) string {
	parts := strings.Split(tag, ",")
	kept := parts[:0]
	for _, part := range parts {
		if strings.TrimSpace(part) != "required" && strings.TrimSpace(part) != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, ",")
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	default:
		return false
	}
}

func violationMessage(err error, tag string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Param() != "" {
			return fmt.Sprintf("must satisfy %s=%s", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("must satisfy %s", fe.Tag())
	}
	return fmt.Sprintf("must satisfy %s", tag)
}
