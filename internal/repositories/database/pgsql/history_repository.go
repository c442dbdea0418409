package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freightops/freight_broker_app/internal/core/domain"
	portsrepo "github.com/freightops/freight_broker_app/internal/core/ports/repositories"
	"github.com/freightops/freight_broker_app/internal/models"
	"github.com/freightops/freight_broker_app/internal/utils/mapping"
)

// PgxHistoryRepository stores audit records. The table is insert-only.
type PgxHistoryRepository struct {
	pool *pgxpool.Pool
}

func newPgxHistoryRepository(pool *pgxpool.Pool) portsrepo.HistoryRepositoryFacade {
	return &PgxHistoryRepository{pool: pool}
}

var _ portsrepo.HistoryRepositoryFacade = (*PgxHistoryRepository)(nil)

func (r *PgxHistoryRepository) SaveHistory(ctx context.Context, record domain.HistoryRecord) error {
	m := mapping.ToModelHistoryRecord(record)
	query := `
		INSERT INTO history_records (history_id, entity_type, entity_id, action, actor_id, changes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		m.HistoryID,
		m.EntityType,
		m.EntityID,
		m.Action,
		m.ActorID,
		m.Changes,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save history record: %w", err)
	}
	return nil
}

func (r *PgxHistoryRepository) FindHistoryByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit, offset int) ([]domain.HistoryRecord, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM history_records WHERE entity_type = $1 AND entity_id = $2`
	if err := r.pool.QueryRow(ctx, countQuery, string(entityType), entityID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count history records: %w", err)
	}

	query := `
		SELECT * FROM history_records
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC, seq DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.pool.Query(ctx, query, string(entityType), entityID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query history records: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.HistoryRecord])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan history rows: %w", err)
	}

	out := make([]domain.HistoryRecord, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainHistoryRecord(m)
	}
	return out, total, nil
}
