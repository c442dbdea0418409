package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freightops/freight_broker_app/internal/apperrors"
	"github.com/freightops/freight_broker_app/internal/core/domain"
)

const uniqueViolationCode = "23505"

// TableSpec describes how one entity maps onto its table. Columns is the
// whitelist from wire field names to column names; field names not listed
// are silently dropped, which keeps caller-supplied names out of SQL.
type TableSpec struct {
	Table      string
	IDColumn   string
	IDField    string
	Columns    map[string]string
	SoftDelete bool
	// UniqueConstraints maps constraint names to the wire field they guard,
	// used to attribute unique violations raised by the database.
	UniqueConstraints map[string]string
}

// PgxEntityRepository is the generic row store behind every record type.
// M is the db-tagged model scanned with RowToStructByName; toDomain lifts
// it into the domain shape T.
type PgxEntityRepository[T any, M any] struct {
	pool     *pgxpool.Pool
	spec     TableSpec
	toDomain func(M) T
}

func newPgxEntityRepository[T any, M any](pool *pgxpool.Pool, spec TableSpec, toDomain func(M) T) *PgxEntityRepository[T, M] {
	return &PgxEntityRepository[T, M]{pool: pool, spec: spec, toDomain: toDomain}
}

// buildWhere renders the descriptor's conditions and search term as a WHERE
// clause with positional args. Unknown fields are dropped, never quoted in.
func (r *PgxEntityRepository[T, M]) buildWhere(q domain.QueryDescriptor, includeDeleted bool) (string, []any) {
	var clauses []string
	var args []any
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if r.spec.SoftDelete && !includeDeleted {
		clauses = append(clauses, "deleted_at IS NULL")
	}

	for _, c := range q.Conditions {
		col, ok := r.spec.Columns[c.Field]
		if !ok {
			continue
		}
		switch c.Op {
		case domain.OpEq:
			clauses = append(clauses, col+" = "+next(c.Value))
		case domain.OpIn:
			clauses = append(clauses, col+" = ANY("+next(c.Value)+")")
		case domain.OpGte:
			clauses = append(clauses, col+" >= "+next(c.Value))
		case domain.OpLte:
			clauses = append(clauses, col+" <= "+next(c.Value))
		case domain.OpContains:
			clauses = append(clauses, col+"::text ILIKE "+next("%"+fmt.Sprint(c.Value)+"%"))
		}
	}

	if q.Search != "" && len(q.SearchFields) > 0 {
		var ors []string
		ph := next("%" + q.Search + "%")
		for _, f := range q.SearchFields {
			if col, ok := r.spec.Columns[f]; ok {
				ors = append(ors, col+"::text ILIKE "+ph)
			}
		}
		if len(ors) > 0 {
			clauses = append(clauses, "("+strings.Join(ors, " OR ")+")")
		} else {
			// the search arg was reserved but no field survived the whitelist
			args = args[:len(args)-1]
		}
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// orderClause renders the sort key. seq breaks ties so equal sort values
// keep insertion order across pages.
func (r *PgxEntityRepository[T, M]) orderClause(q domain.QueryDescriptor) string {
	col, ok := r.spec.Columns[q.SortBy]
	if !ok {
		col = "created_at"
	}
	dir := "ASC"
	if q.SortDesc {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, seq ASC", col, dir)
}

func (r *PgxEntityRepository[T, M]) Find(ctx context.Context, q domain.QueryDescriptor, includeDeleted bool) ([]T, int64, error) {
	where, args := r.buildWhere(q, includeDeleted)

	var total int64
	countSQL := "SELECT COUNT(*) FROM " + r.spec.Table + where
	if err := r.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", r.spec.Table, err)
	}

	pageSQL := fmt.Sprintf("SELECT * FROM %s%s%s LIMIT $%d OFFSET $%d",
		r.spec.Table, where, r.orderClause(q), len(args)+1, len(args)+2)
	rows, err := r.pool.Query(ctx, pageSQL, append(args, q.Limit, q.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query %s: %w", r.spec.Table, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan %s rows: %w", r.spec.Table, err)
	}

	out := make([]T, len(ms))
	for i, m := range ms {
		out[i] = r.toDomain(m)
	}
	return out, total, nil
}

func (r *PgxEntityRepository[T, M]) FindByID(ctx context.Context, id string) (*T, error) {
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1", r.spec.Table, r.spec.IDColumn)
	if r.spec.SoftDelete {
		query += " AND deleted_at IS NULL"
	}
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s by id: %w", r.spec.Table, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[M])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(r.spec.Table, id)
		}
		return nil, fmt.Errorf("failed to scan %s row: %w", r.spec.Table, err)
	}
	d := r.toDomain(m)
	return &d, nil
}

func (r *PgxEntityRepository[T, M]) Insert(ctx context.Context, fields map[string]any) (*T, error) {
	names := make([]string, 0, len(fields))
	for f := range fields {
		names = append(names, f)
	}
	sort.Strings(names)

	var cols, phs []string
	var args []any
	for _, f := range names {
		col, ok := r.spec.Columns[f]
		if !ok {
			continue
		}
		args = append(args, fields[f])
		cols = append(cols, col)
		phs = append(phs, fmt.Sprintf("$%d", len(args)))
	}
	if len(cols) == 0 {
		return nil, apperrors.NewInvalidArgumentError("no persistable fields")
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		r.spec.Table, strings.Join(cols, ", "), strings.Join(phs, ", "))
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, r.mapWriteError(err, fields)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, r.mapWriteError(err, fields)
	}
	d := r.toDomain(m)
	return &d, nil
}

func (r *PgxEntityRepository[T, M]) UpdateFields(ctx context.Context, id string, fields map[string]any) (int64, error) {
	names := make([]string, 0, len(fields))
	for f := range fields {
		if f == r.spec.IDField {
			continue
		}
		names = append(names, f)
	}
	sort.Strings(names)

	var sets []string
	var args []any
	for _, f := range names {
		col, ok := r.spec.Columns[f]
		if !ok {
			continue
		}
		args = append(args, fields[f])
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if len(sets) == 0 {
		return 0, nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		r.spec.Table, strings.Join(sets, ", "), r.spec.IDColumn, len(args))
	if r.spec.SoftDelete {
		query += " AND deleted_at IS NULL"
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, r.mapWriteError(err, fields)
	}
	return tag.RowsAffected(), nil
}

func (r *PgxEntityRepository[T, M]) SoftDelete(ctx context.Context, id string, deletedAt time.Time, deletedBy string) error {
	if !r.spec.SoftDelete {
		return fmt.Errorf("%s does not support soft delete", r.spec.Table)
	}
	query := fmt.Sprintf(`UPDATE %s
		SET deleted_at = $1, deleted_by = $2, last_updated_at = $1, last_updated_by = $2
		WHERE %s = $3 AND deleted_at IS NULL`, r.spec.Table, r.spec.IDColumn)
	tag, err := r.pool.Exec(ctx, query, deletedAt, deletedBy, id)
	if err != nil {
		return fmt.Errorf("failed to soft delete from %s: %w", r.spec.Table, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(r.spec.Table, id)
	}
	return nil
}

func (r *PgxEntityRepository[T, M]) HardDelete(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", r.spec.Table, r.spec.IDColumn)
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", r.spec.Table, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(r.spec.Table, id)
	}
	return nil
}

func (r *PgxEntityRepository[T, M]) ExistsWhere(ctx context.Context, field string, value any, excludeID string) (bool, error) {
	col, ok := r.spec.Columns[field]
	if !ok {
		return false, apperrors.NewInvalidArgumentError("unknown field " + field)
	}
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1", r.spec.Table, col)
	args := []any{value}
	if r.spec.SoftDelete {
		query += " AND deleted_at IS NULL"
	}
	if excludeID != "" {
		args = append(args, excludeID)
		query += fmt.Sprintf(" AND %s <> $2", r.spec.IDColumn)
	}
	query += ")"

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check %s.%s: %w", r.spec.Table, col, err)
	}
	return exists, nil
}

func (r *PgxEntityRepository[T, M]) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE created_at >= $1 AND created_at < $2", r.spec.Table)
	if r.spec.SoftDelete {
		query += " AND deleted_at IS NULL"
	}
	var total int64
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count %s by creation window: %w", r.spec.Table, err)
	}
	return total, nil
}

// mapWriteError attributes unique violations to the wire field guarded by
// the violated constraint; anything else is wrapped as-is.
func (r *PgxEntityRepository[T, M]) mapWriteError(err error, fields map[string]any) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		field, ok := r.spec.UniqueConstraints[pgErr.ConstraintName]
		if !ok {
			field = pgErr.ConstraintName
		}
		return apperrors.NewDuplicateError(field, fields[field])
	}
	return fmt.Errorf("%s write failed: %w", r.spec.Table, err)
}
