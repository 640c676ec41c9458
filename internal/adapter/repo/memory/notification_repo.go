package memory

import (
	"context"

	"emberwild/internal/app/ports"
	"emberwild/internal/domain/discovery"
)

type NotificationRepo struct {
	store *Store
}

func NewNotificationRepo(store *Store) NotificationRepo {
	return NotificationRepo{store: store}
}

func (r NotificationRepo) Append(_ context.Context, records []ports.NotificationRecord) error {
	if len(records) == 0 {
		return nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.notifications = append(r.store.notifications, records...)
	return nil
}

// List returns newest first, filtered by kind and template id when set.
func (r NotificationRepo) List(_ context.Context, limit int, kind discovery.NotificationKind, templateID string) ([]ports.NotificationRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]ports.NotificationRecord, 0, len(r.store.notifications))
	for i := len(r.store.notifications) - 1; i >= 0; i-- {
		rec := r.store.notifications[i]
		if kind != "" && rec.Kind != kind {
			continue
		}
		if templateID != "" && rec.TemplateID != templateID {
			continue
		}
		out = append(out, rec)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r NotificationRepo) Clear(_ context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.notifications = nil
	return nil
}
