package rules_test

import (
	"errors"
	"testing"

	"github.com/freightops/freight_broker_app/internal/apperrors"
	"github.com/freightops/freight_broker_app/internal/core/domain"
	"github.com/freightops/freight_broker_app/internal/utils/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createRules = rules.RuleSet{
	"refNumber":   "required",
	"customerId":  "required,uuid4",
	"status":      "required,oneof=listed dispatched in_transit delivered completed cancelled",
	"rate":        "gte=0",
	"origin.city": "required",
}

func TestCheck_ReportsEveryViolation(t *testing.T) {
	checker := rules.NewChecker()
	fields := map[string]any{
		"customerId": "not-a-uuid",
		"status":     "teleporting",
		"rate":       -5.0,
		"origin":     map[string]any{"state": "TX"},
	}

	err := checker.Check(createRules, fields, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	violated := make(map[string]bool)
	for _, v := range verr.Violations {
		violated[v.Field] = true
	}
	assert.True(t, violated["refNumber"], "missing required field reported")
	assert.True(t, violated["customerId"])
	assert.True(t, violated["status"])
	assert.True(t, violated["rate"])
	assert.True(t, violated["origin.city"], "nested path resolved")
}

func TestCheck_PassesValidPayload(t *testing.T) {
	checker := rules.NewChecker()
	fields := map[string]any{
		"refNumber":  "FB-1001",
		"customerId": "0d4f9a62-6a4c-4b35-b2d8-09b6c1f1a111",
		"status":     domain.LoadStatusListed,
		"rate":       1500.0,
		"origin":     domain.Address{City: "Dallas", State: "TX"},
	}

	assert.NoError(t, checker.Check(createRules, fields, false))
}

func TestCheck_PartialSkipsAbsentFields(t *testing.T) {
	checker := rules.NewChecker()
	patch := map[string]any{"rate": 2000.0}

	assert.NoError(t, checker.Check(createRules, patch, true),
		"update validation only applies to fields present in the patch")
}

func TestCheck_PartialStillChecksPresentFields(t *testing.T) {
	checker := rules.NewChecker()
	patch := map[string]any{"status": "nope", "refNumber": "   "}

	err := checker.Check(createRules, patch, true)
	require.Error(t, err)
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Violations, 2)
}

func TestCheck_EmptyRuleSetIsNoop(t *testing.T) {
	checker := rules.NewChecker()
	assert.NoError(t, checker.Check(nil, map[string]any{"anything": 1}, false))
}
