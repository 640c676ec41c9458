package memory

import (
	"context"

	"emberwild/internal/app/ports"
	"emberwild/internal/domain/discovery"
)

type ProgressRepo struct {
	store *Store
}

func NewProgressRepo(store *Store) ProgressRepo {
	return ProgressRepo{store: store}
}

func (r ProgressRepo) GetByTemplateID(_ context.Context, templateID string) (discovery.Progress, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	p, ok := r.store.progress[templateID]
	if !ok {
		return discovery.Progress{}, ports.ErrNotFound
	}
	return p, nil
}

func (r ProgressRepo) Save(_ context.Context, p discovery.Progress) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, exists := r.store.progress[p.TemplateID]
	if exists && current.Version > p.Version {
		// Stale snapshot; the newer row wins.
		return nil
	}
	if !exists {
		r.store.progressOrder = append(r.store.progressOrder, p.TemplateID)
	}
	r.store.progress[p.TemplateID] = p
	return nil
}

func (r ProgressRepo) ListAll(_ context.Context) ([]discovery.Progress, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]discovery.Progress, 0, len(r.store.progressOrder))
	for _, id := range r.store.progressOrder {
		out = append(out, r.store.progress[id])
	}
	return out, nil
}

func (r ProgressRepo) DeleteAll(_ context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.progress = map[string]discovery.Progress{}
	r.store.progressOrder = nil
	return nil
}
