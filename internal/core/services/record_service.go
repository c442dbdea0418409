package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/freightops/freight_broker_app/internal/apperrors"
	"github.com/freightops/freight_broker_app/internal/core/domain"
	portsrepo "github.com/freightops/freight_broker_app/internal/core/ports/repositories"
	portssvc "github.com/freightops/freight_broker_app/internal/core/ports/services"
	"github.com/freightops/freight_broker_app/internal/dto"
	"github.com/freightops/freight_broker_app/internal/utils/changeset"
	"github.com/freightops/freight_broker_app/internal/utils/rules"
)

// RecordConfig declares how the generic record engine behaves for one
// entity: where rows live, which rule sets guard writes, which fields are
// searchable, and which must stay unique.
type RecordConfig[T any] struct {
	EntityType   domain.EntityType
	EntityName   string
	Repo         portsrepo.EntityRepositoryFacade[T]
	History      portsrepo.HistoryWriter
	CreateRules  rules.RuleSet
	UpdateRules  rules.RuleSet
	SearchFields []string
	UniqueFields []string
	SoftDelete   bool
}

// RecordService is the engine every entity service is built on. All CRUD,
// audit, validation and cache behavior lives here; entity services only add
// their own domain operations on top.
type RecordService[T any] struct {
	BaseService
	cfg          RecordConfig[T]
	checker      *rules.Checker
	cache        portssvc.ListCache[T]
	beforeCreate func(ctx context.Context, fields map[string]any) error
	beforeUpdate func(ctx context.Context, current *T, fields map[string]any) error
	now          func() time.Time
}

// RecordOption configures a RecordService.
type RecordOption[T any] func(*RecordService[T])

// WithListCache enables list result caching. Without it every list hits
// storage.
func WithListCache[T any](cache portssvc.ListCache[T]) RecordOption[T] {
	return func(s *RecordService[T]) {
		s.cache = cache
	}
}

// WithBeforeCreate installs a hook that may normalize or default fields
// before create validation runs.
func WithBeforeCreate[T any](hook func(ctx context.Context, fields map[string]any) error) RecordOption[T] {
	return func(s *RecordService[T]) {
		s.beforeCreate = hook
	}
}

// WithBeforeUpdate installs a hook that sees the current record and may
// normalize the patch before update validation runs.
func WithBeforeUpdate[T any](hook func(ctx context.Context, current *T, fields map[string]any) error) RecordOption[T] {
	return func(s *RecordService[T]) {
		s.beforeUpdate = hook
	}
}

// WithRecordClock overrides the time source, for tests.
func WithRecordClock[T any](now func() time.Time) RecordOption[T] {
	return func(s *RecordService[T]) {
		s.now = now
	}
}

// NewRecordService builds the engine for one entity.
func NewRecordService[T any](cfg RecordConfig[T], opts ...RecordOption[T]) *RecordService[T] {
	s := &RecordService[T]{
		cfg:     cfg,
		checker: rules.NewChecker(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RecordService[T]) ListRecords(ctx context.Context, q domain.QueryDescriptor) ([]T, int64, error) {
	// a free-text term combines with explicit filters, matching across the
	// entity's searchable fields
	if q.Search != "" {
		q.SearchFields = s.cfg.SearchFields
	}
	return s.findCached(ctx, q)
}

func (s *RecordService[T]) SearchRecords(ctx context.Context, q domain.QueryDescriptor) ([]T, int64, error) {
	if q.Search == "" {
		return nil, 0, apperrors.NewInvalidArgumentError("search term is required")
	}
	q.SearchFields = s.cfg.SearchFields
	return s.findCached(ctx, q)
}

func (s *RecordService[T]) findCached(ctx context.Context, q domain.QueryDescriptor) ([]T, int64, error) {
	key := q.CacheKey(s.cfg.EntityName)
	if s.cache != nil {
		if items, total, ok := s.cache.Get(key); ok {
			s.LogDebug(ctx, "list cache hit", slog.String("entity", s.cfg.EntityName))
			return items, total, nil
		}
	}
	items, total, err := s.cfg.Repo.Find(ctx, q, false)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %s records: %w", s.cfg.EntityName, err)
	}
	if s.cache != nil {
		s.cache.Set(key, items, total)
	}
	return items, total, nil
}

func (s *RecordService[T]) GetRecordByID(ctx context.Context, id string) (*T, error) {
	if err := s.requireID(id); err != nil {
		return nil, err
	}
	return s.cfg.Repo.FindByID(ctx, id)
}

func (s *RecordService[T]) CreateRecord(ctx context.Context, fields map[string]any, actorID string) (*T, error) {
	if len(fields) == 0 {
		return nil, apperrors.NewInvalidArgumentError("request body is empty")
	}
	fields = stripBookkeeping(fields)

	if s.beforeCreate != nil {
		if err := s.beforeCreate(ctx, fields); err != nil {
			return nil, err
		}
	}
	if err := s.checker.Check(s.cfg.CreateRules, fields, false); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, fields, ""); err != nil {
		return nil, err
	}

	now := s.now()
	id := uuid.NewString()
	fields["id"] = id
	fields["createdAt"] = now
	fields["createdBy"] = actorID
	fields["lastUpdatedAt"] = now
	fields["lastUpdatedBy"] = actorID

	created, err := s.cfg.Repo.Insert(ctx, fields)
	if err != nil {
		return nil, err
	}

	s.writeHistory(ctx, domain.ActionCreated, id, actorID, nil)
	s.invalidateCache()
	s.LogInfo(ctx, "record created",
		slog.String("entity", s.cfg.EntityName), slog.String("id", id))
	return created, nil
}

func (s *RecordService[T]) UpdateRecord(ctx context.Context, id string, fields map[string]any, actorID string) (*T, bool, error) {
	return s.updateWithAction(ctx, id, fields, actorID, domain.ActionUpdated)
}

// updateWithAction is the single write path for partial updates. It reports
// whether storage was actually touched so bulk operations can count real
// modifications.
func (s *RecordService[T]) updateWithAction(ctx context.Context, id string, fields map[string]any, actorID string, action domain.HistoryAction) (*T, bool, error) {
	if err := s.requireID(id); err != nil {
		return nil, false, err
	}
	current, err := s.cfg.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	fields = stripBookkeeping(fields)
	if s.beforeUpdate != nil {
		if err := s.beforeUpdate(ctx, current, fields); err != nil {
			return nil, false, err
		}
	}
	if err := s.checker.Check(s.cfg.UpdateRules, fields, true); err != nil {
		return nil, false, err
	}

	changes, writeSet := changeset.Diff(changeset.ToFieldMap(*current), fields)
	if len(writeSet) == 0 {
		// nothing actually changed, skip storage and audit entirely
		return current, false, nil
	}
	if err := s.checkUnique(ctx, writeSet, id); err != nil {
		return nil, false, err
	}

	writeSet["lastUpdatedAt"] = s.now()
	writeSet["lastUpdatedBy"] = actorID
	modified, err := s.cfg.Repo.UpdateFields(ctx, id, writeSet)
	if err != nil {
		return nil, false, err
	}
	if modified == 0 {
		return nil, false, apperrors.NewNotFoundError(s.cfg.EntityName, id)
	}

	updated, err := s.cfg.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	s.writeHistory(ctx, action, id, actorID, changes)
	s.invalidateCache()
	return updated, true, nil
}

func (s *RecordService[T]) DeleteRecord(ctx context.Context, id string, actorID string) error {
	if err := s.requireID(id); err != nil {
		return err
	}
	if s.cfg.SoftDelete {
		if err := s.cfg.Repo.SoftDelete(ctx, id, s.now(), actorID); err != nil {
			return err
		}
	} else {
		if err := s.cfg.Repo.HardDelete(ctx, id); err != nil {
			return err
		}
	}

	s.writeHistory(ctx, domain.ActionDeleted, id, actorID, nil)
	s.invalidateCache()
	s.LogInfo(ctx, "record deleted",
		slog.String("entity", s.cfg.EntityName), slog.String("id", id))
	return nil
}

func (s *RecordService[T]) BulkUpdateRecords(ctx context.Context, ids []string, fields map[string]any, actorID string) (int64, error) {
	if len(ids) == 0 {
		return 0, apperrors.NewInvalidArgumentError("ids are required")
	}
	if len(stripBookkeeping(fields)) == 0 {
		return 0, apperrors.NewInvalidArgumentError("no updatable fields in request")
	}

	var modified int64
	for _, id := range ids {
		patch := make(map[string]any, len(fields))
		for k, v := range fields {
			patch[k] = v
		}
		_, wrote, err := s.updateWithAction(ctx, id, patch, actorID, domain.ActionUpdated)
		if err != nil {
			s.LogWarn(ctx, "bulk update skipped record",
				slog.String("entity", s.cfg.EntityName),
				slog.String("id", id),
				slog.String("error", err.Error()))
			continue
		}
		if wrote {
			modified++
		}
	}
	return modified, nil
}

func (s *RecordService[T]) BulkDeleteRecords(ctx context.Context, ids []string, actorID string) (int64, error) {
	if len(ids) == 0 {
		return 0, apperrors.NewInvalidArgumentError("ids are required")
	}

	var modified int64
	for _, id := range ids {
		if err := s.DeleteRecord(ctx, id, actorID); err != nil {
			s.LogWarn(ctx, "bulk delete skipped record",
				slog.String("entity", s.cfg.EntityName),
				slog.String("id", id),
				slog.String("error", err.Error()))
			continue
		}
		modified++
	}
	return modified, nil
}

func (s *RecordService[T]) RecordStats(ctx context.Context, period string) (*dto.StatsResult, error) {
	from, to, err := resolveStatsWindow(period, s.now())
	if err != nil {
		return nil, err
	}
	total, err := s.cfg.Repo.CountCreatedBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to compute %s stats: %w", s.cfg.EntityName, err)
	}
	return &dto.StatsResult{
		Period:    period,
		Total:     total,
		DateRange: dto.DateRange{From: from, To: to},
	}, nil
}

// requireID rejects missing or malformed identifiers before they reach
// storage, where a non-uuid value would fail to encode against the uuid
// primary key.
func (s *RecordService[T]) requireID(id string) error {
	if id == "" {
		return apperrors.NewInvalidArgumentError(s.cfg.EntityName + " id is required")
	}
	if err := uuid.Validate(id); err != nil {
		return apperrors.NewInvalidArgumentError("malformed " + s.cfg.EntityName + " id: " + id)
	}
	return nil
}

// checkUnique pre-checks configured unique fields so most duplicates are
// reported before the insert; the database constraint remains the backstop
// for races.
func (s *RecordService[T]) checkUnique(ctx context.Context, fields map[string]any, excludeID string) error {
	for _, field := range s.cfg.UniqueFields {
		value, present := fields[field]
		if !present || value == nil || value == "" {
			continue
		}
		exists, err := s.cfg.Repo.ExistsWhere(ctx, field, value, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check uniqueness of %s.%s: %w", s.cfg.EntityName, field, err)
		}
		if exists {
			return apperrors.NewDuplicateError(field, value)
		}
	}
	return nil
}

// writeHistory records the mutation best-effort. A missing actor or a
// failed save is logged, never propagated to the caller.
func (s *RecordService[T]) writeHistory(ctx context.Context, action domain.HistoryAction, entityID, actorID string, changes []domain.FieldChange) {
	if s.cfg.History == nil {
		return
	}
	if actorID == "" {
		s.LogWarn(ctx, "skipping audit record, no actor in request",
			slog.String("entity", s.cfg.EntityName),
			slog.String("id", entityID),
			slog.String("action", string(action)))
		return
	}
	if (action == domain.ActionUpdated || action == domain.ActionStatusUpdated) && len(changes) == 0 {
		return
	}

	record := domain.HistoryRecord{
		HistoryID:  uuid.NewString(),
		EntityType: s.cfg.EntityType,
		EntityID:   entityID,
		Action:     action,
		ActorID:    actorID,
		Changes:    changes,
		CreatedAt:  s.now(),
	}
	if err := s.cfg.History.SaveHistory(ctx, record); err != nil {
		s.LogError(ctx, err, "failed to save audit record",
			slog.String("entity", s.cfg.EntityName),
			slog.String("id", entityID),
			slog.String("action", string(action)))
	}
}

func (s *RecordService[T]) invalidateCache() {
	if s.cache != nil {
		s.cache.Invalidate()
	}
}

// stripBookkeeping drops identifier, audit and soft-delete fields a client
// may have echoed back in its payload.
func stripBookkeeping(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if changeset.IsExcluded(k) {
			continue
		}
		out[k] = v
	}
	return out
}

// resolveStatsWindow maps a period name onto a concrete [from, to) window
// ending now. An explicit "<date> to <date>" range covers both whole days.
func resolveStatsWindow(period string, now time.Time) (time.Time, time.Time, error) {
	if before, after, found := strings.Cut(period, " to "); found {
		from, errFrom := time.Parse("2006-01-02", strings.TrimSpace(before))
		to, errTo := time.Parse("2006-01-02", strings.TrimSpace(after))
		if errFrom != nil || errTo != nil || to.Before(from) {
			return time.Time{}, time.Time{}, apperrors.NewInvalidArgumentError("invalid stats date range " + period)
		}
		return from, to.AddDate(0, 0, 1), nil
	}
	switch period {
	case "today":
		from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return from, now, nil
	case "week":
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7 // weeks start on Monday
		}
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return day.AddDate(0, 0, -(weekday - 1)), now, nil
	case "month":
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return from, now, nil
	case "year":
		from := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return from, now, nil
	case "all", "":
		return time.Time{}, now, nil
	default:
		return time.Time{}, time.Time{}, apperrors.NewInvalidArgumentError("unknown stats period " + period)
	}
}
