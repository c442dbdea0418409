package services

import (
	"context"
	"io"

	"github.com/freightops/freight_broker_app/internal/core/domain"
)

// FileStorage persists uploaded documents and serves them back.
type FileStorage interface {
	// Save stores the content under a generated name and returns the public
	// URL path of the stored file.
	Save(ctx context.Context, filename string, content io.Reader) (string, error)

	// Open retrieves a previously stored file by its URL path.
	Open(ctx context.Context, urlPath string) (io.ReadCloser, error)
}

// Notifier receives load lifecycle events. Delivery is best effort; a
// failed notification never fails the triggering operation.
type Notifier interface {
	NotifyLoadStatusChange(ctx context.Context, load domain.Load, previous domain.LoadStatus) error
}

// DocumentRenderer produces printable artifacts (rate confirmations,
// invoices) from a formatted entity view and stores them, returning the
// stored file's URL path. No renderer ships in this repository; deployments
// plug their own in.
type DocumentRenderer interface {
	RenderDocument(ctx context.Context, kind string, view any) (string, error)
}

// ListCache caches list query results per entity. Any write through the
// record service invalidates the whole entity's cache.
type ListCache[T any] interface {
	Get(key string) ([]T, int64, bool)
	Set(key string, items []T, total int64)
	Invalidate()
}
