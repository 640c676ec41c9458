package ports

import (
	"context"
	"time"

	"emberwild/internal/domain/discovery"
)

// ProgressRepository keeps durable snapshots of the engine-owned records so
// a restarted server can rehydrate the session. The engine is authoritative;
// Save upserts by template id and a stale snapshot (lower version) never
// overwrites a newer one.
type ProgressRepository interface {
	GetByTemplateID(ctx context.Context, templateID string) (discovery.Progress, error)
	Save(ctx context.Context, progress discovery.Progress) error
	ListAll(ctx context.Context) ([]discovery.Progress, error)
	DeleteAll(ctx context.Context) error
}

type CompletionRow struct {
	TemplateID   string
	CompletedDay int
	DiscoveredBy string
	Reason       string
	CompletedAt  time.Time
}

// CompletionRepository is the durable, append-only record of completed ids.
// Unlock tag sets are not stored; they are rebuilt from the catalog at
// hydration time.
type CompletionRepository interface {
	MarkCompleted(ctx context.Context, row CompletionRow) error
	ListCompleted(ctx context.Context) ([]CompletionRow, error)
	Clear(ctx context.Context) error
}

// NotificationRecord is one stored outbound notification. Body is the typed
// domain value; repos serialize it as-is.
type NotificationRecord struct {
	ID         string                     `json:"id"`
	Kind       discovery.NotificationKind `json:"kind"`
	TemplateID string                     `json:"template_id"`
	OccurredAt time.Time                  `json:"occurred_at"`
	Body       any                        `json:"body"`
}

type NotificationRepository interface {
	Append(ctx context.Context, records []NotificationRecord) error
	List(ctx context.Context, limit int, kind discovery.NotificationKind, templateID string) ([]NotificationRecord, error)
	Clear(ctx context.Context) error
}
