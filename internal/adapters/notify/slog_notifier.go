// Package notify delivers load lifecycle notifications.
package notify

import (
	"context"
	"log/slog"

	"github.com/freightops/freight_broker_app/internal/core/domain"
	portssvc "github.com/freightops/freight_broker_app/internal/core/ports/services"
)

// SlogNotifier writes notifications to the structured log. It stands in for
// an email or messaging integration in environments that have none.
type SlogNotifier struct {
	logger *slog.Logger
}

func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogNotifier{logger: logger}
}

var _ portssvc.Notifier = (*SlogNotifier)(nil)

func (n *SlogNotifier) NotifyLoadStatusChange(ctx context.Context, load domain.Load, previous domain.LoadStatus) error {
	n.logger.InfoContext(ctx, "load status notification",
		slog.String("load_id", load.LoadID),
		slog.String("ref_number", load.RefNumber),
		slog.String("from", string(previous)),
		slog.String("to", string(load.Status)))
	return nil
}
