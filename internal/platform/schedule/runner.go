// Package schedule runs periodic background jobs alongside the HTTP server.
package schedule

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/freightops/freight_broker_app/internal/core/ports/services"
	"github.com/freightops/freight_broker_app/internal/dto"
)

// OverdueSweeper periodically flips receivables whose due date has passed
// to overdue. One sweep runs immediately on start, then on every tick until
// the context is cancelled.
type OverdueSweeper struct {
	receivables portssvc.ReceivableSvcFacade
	interval    time.Duration
	logger      *slog.Logger
}

func NewOverdueSweeper(receivables portssvc.ReceivableSvcFacade, interval time.Duration, logger *slog.Logger) *OverdueSweeper {
	return &OverdueSweeper{
		receivables: receivables,
		interval:    interval,
		logger:      logger,
	}
}

// Run blocks until ctx is cancelled. It is meant to be started in its own
// goroutine.
func (s *OverdueSweeper) Run(ctx context.Context) {
	s.logger.Info("Overdue receivable sweeper started", slog.Duration("interval", s.interval))

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Overdue receivable sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *OverdueSweeper) sweep(ctx context.Context) {
	modified, err := s.receivables.MarkOverdueReceivables(ctx)
	if err != nil {
		s.logger.Error("Overdue sweep failed", slog.String("error", err.Error()))
		return
	}
	if modified > 0 {
		s.logger.Info("Receivables marked overdue", slog.Int64("count", modified))
	}
}

// StatsSource is one entity's creation-count entry point.
type StatsSource func(ctx context.Context) (*dto.StatsResult, error)

// StatsReporter periodically recomputes per-entity creation counts and logs
// them, keeping daily business numbers visible off the request path.
type StatsReporter struct {
	sources  map[string]StatsSource
	interval time.Duration
	logger   *slog.Logger
}

func NewStatsReporter(sources map[string]StatsSource, interval time.Duration, logger *slog.Logger) *StatsReporter {
	return &StatsReporter{
		sources:  sources,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled. It is meant to be started in its own
// goroutine.
func (r *StatsReporter) Run(ctx context.Context) {
	r.logger.Info("Stats reporter started", slog.Duration("interval", r.interval))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Stats reporter stopped")
			return
		case <-ticker.C:
			r.report(ctx)
		}
	}
}

func (r *StatsReporter) report(ctx context.Context) {
	for name, source := range r.sources {
		result, err := source(ctx)
		if err != nil {
			r.logger.Error("Stats recomputation failed",
				slog.String("entity", name),
				slog.String("error", err.Error()))
			continue
		}
		r.logger.Info("Daily creation stats",
			slog.String("entity", name),
			slog.Int64("created", result.Total))
	}
}
