package services

import (
	"context"
	"fmt"

	"github.com/freightops/freight_broker_app/internal/apperrors"
	"github.com/freightops/freight_broker_app/internal/core/domain"
	portsrepo "github.com/freightops/freight_broker_app/internal/core/ports/repositories"
	portssvc "github.com/freightops/freight_broker_app/internal/core/ports/services"
)

type historyService struct {
	BaseService
	historyRepo portsrepo.HistoryRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
}

// NewHistoryService builds the audit trail read service.
func NewHistoryService(repos portsrepo.RepositoryProvider) portssvc.HistorySvcFacade {
	return &historyService{
		historyRepo: repos.HistoryRepo,
		userRepo:    repos.UserRepo,
	}
}

var _ portssvc.HistorySvcFacade = (*historyService)(nil)

func (s *historyService) GetEntityHistory(ctx context.Context, entityType domain.EntityType, entityID string, limit, offset int) ([]domain.HistoryRecord, int64, error) {
	if entityID == "" {
		return nil, 0, apperrors.NewInvalidArgumentError("entity id is required")
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.historyRepo.FindHistoryByEntity(ctx, entityType, entityID, limit, offset)
}

func (s *historyService) ResolveActors(ctx context.Context, records []domain.HistoryRecord) (map[string]domain.User, error) {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		if r.ActorID != "" && r.ActorID != systemActor {
			ids = append(ids, r.ActorID)
		}
	}

	actors, err := findByIDs[domain.User](ctx, s.userRepo, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve audit actors: %w", err)
	}
	out := make(map[string]domain.User, len(actors))
	for _, u := range actors {
		out[u.UserID] = u
	}
	return out, nil
}
